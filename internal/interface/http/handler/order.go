package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	apporder "github.com/oyemayanq/bookstore-api/internal/application/order"
	"github.com/oyemayanq/bookstore-api/internal/interface/http/dto"
	"github.com/oyemayanq/bookstore-api/internal/interface/http/middleware"
	"github.com/oyemayanq/bookstore-api/pkg/errors"
	"github.com/oyemayanq/bookstore-api/pkg/response"
)

// OrderHandler 订单HTTP处理器
type OrderHandler struct {
	createUseCase *apporder.CreateOrderUseCase
	getUseCase    *apporder.GetOrderUseCase
	listUseCase   *apporder.ListOrdersUseCase
}

// NewOrderHandler 创建订单处理器
func NewOrderHandler(
	createUseCase *apporder.CreateOrderUseCase,
	getUseCase *apporder.GetOrderUseCase,
	listUseCase *apporder.ListOrdersUseCase,
) *OrderHandler {
	return &OrderHandler{
		createUseCase: createUseCase,
		getUseCase:    getUseCase,
		listUseCase:   listUseCase,
	}
}

// Create 创建订单
// @Summary      创建订单
// @Description  提交(图书,数量)列表;金额由服务端按目录价重算,客户端价格一律忽略
// @Tags         订单
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.CreateOrderRequest true "订单明细"
// @Success      200 {object} response.Response{data=apporder.OrderData} "下单成功"
// @Failure      200 {object} response.Response "明细为空(40900)/图书不存在(40402)"
// @Router       /api/v1/orders [post]
func (h *OrderHandler) Create(c *gin.Context) {
	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, errors.ErrBindError)
		return
	}

	if v := req.Validate(); v.HasErrors() {
		response.Error(c, errors.NewInvalidRequest(v.Errors()))
		return
	}

	items := make([]apporder.CreateOrderItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, apporder.CreateOrderItem{
			BookID:   item.BookID,
			Quantity: item.Quantity,
		})
	}

	result, err := h.createUseCase.Execute(c.Request.Context(), apporder.CreateOrderRequest{
		UserID: middleware.GetUserID(c),
		Items:  items,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// Get 订单详情
// @Summary      订单详情
// @Description  只能查询自己的订单
// @Tags         订单
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "订单ID"
// @Success      200 {object} response.Response{data=apporder.OrderData} "查询成功"
// @Failure      200 {object} response.Response "无权访问(40104)/订单不存在(40403)"
// @Router       /api/v1/orders/{id} [get]
func (h *OrderHandler) Get(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	result, err := h.getUseCase.Execute(c.Request.Context(), id, middleware.GetUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// List 订单列表
// @Summary      订单列表
// @Description  分页查询当前用户的订单
// @Tags         订单
// @Produce      json
// @Security     BearerAuth
// @Param        page query int false "页码(默认1)"
// @Param        size query int false "每页数量(默认10)"
// @Success      200 {object} response.Response{data=apporder.ListOrdersResponse} "查询成功"
// @Router       /api/v1/orders [get]
func (h *OrderHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(c.DefaultQuery("size", "10"))

	result, err := h.listUseCase.Execute(c.Request.Context(), apporder.ListOrdersRequest{
		UserID:   middleware.GetUserID(c),
		Page:     page,
		PageSize: size,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPage(c, result.Orders, result.Total, result.Page, result.Size)
}
