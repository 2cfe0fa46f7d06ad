package handler

import (
	"io"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	appbook "github.com/oyemayanq/bookstore-api/internal/application/book"
	"github.com/oyemayanq/bookstore-api/internal/infrastructure/config"
	"github.com/oyemayanq/bookstore-api/internal/interface/http/dto"
	"github.com/oyemayanq/bookstore-api/internal/interface/http/middleware"
	"github.com/oyemayanq/bookstore-api/pkg/errors"
	"github.com/oyemayanq/bookstore-api/pkg/response"
)

// BookHandler 图书HTTP处理器
type BookHandler struct {
	publishUseCase   *appbook.PublishBookUseCase
	getUseCase       *appbook.GetBookUseCase
	listUseCase      *appbook.ListBooksUseCase
	updateUseCase    *appbook.UpdateBookUseCase
	deleteUseCase    *appbook.DeleteBookUseCase
	userBooksUseCase *appbook.UserBooksUseCase
	addReviewUseCase *appbook.AddReviewUseCase
	maxUploadSize    int64
}

// NewBookHandler 创建图书处理器
func NewBookHandler(
	publishUseCase *appbook.PublishBookUseCase,
	getUseCase *appbook.GetBookUseCase,
	listUseCase *appbook.ListBooksUseCase,
	updateUseCase *appbook.UpdateBookUseCase,
	deleteUseCase *appbook.DeleteBookUseCase,
	userBooksUseCase *appbook.UserBooksUseCase,
	addReviewUseCase *appbook.AddReviewUseCase,
	cfg *config.Config,
) *BookHandler {
	return &BookHandler{
		publishUseCase:   publishUseCase,
		getUseCase:       getUseCase,
		listUseCase:      listUseCase,
		updateUseCase:    updateUseCase,
		deleteUseCase:    deleteUseCase,
		userBooksUseCase: userBooksUseCase,
		addReviewUseCase: addReviewUseCase,
		maxUploadSize:    cfg.Upload.MaxSize,
	}
}

// Create 上架图书
// @Summary      上架图书
// @Description  multipart表单提交图书信息和封面图
// @Tags         图书
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        title formData string true "书名"
// @Param        image formData file true "封面图(png/jpg/jpeg)"
// @Success      200 {object} response.Response{data=appbook.BookData} "上架成功"
// @Failure      200 {object} response.Response "参数错误(40900)"
// @Router       /api/v1/books [post]
func (h *BookHandler) Create(c *gin.Context) {
	// 1. 绑定表单字段
	var req dto.CreateBookRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, errors.ErrBindError)
		return
	}

	// 2. 字段校验
	v := req.Validate()
	coverData, coverType, err := h.readCover(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	v.Exists("image", coverData)
	if v.HasErrors() {
		response.Error(c, errors.NewInvalidRequest(v.Errors()))
		return
	}

	// 3. 解析出版日期(格式已通过正则校验)
	publishedDate, err := time.Parse("2006-01-02", req.PublishedDate)
	if err != nil {
		response.Error(c, errors.NewInvalidRequest(map[string]string{
			"publishedDate": "Published date should be in YYYY-MM-DD format.",
		}))
		return
	}

	// 4. 调用应用层用例
	result, err := h.publishUseCase.Execute(c.Request.Context(), appbook.PublishBookRequest{
		Title:         req.Title,
		Authors:       req.Authors,
		Genres:        req.Genres,
		Description:   req.Description,
		Price:         req.Price,
		Publisher:     req.Publisher,
		PublishedDate: publishedDate,
		CoverData:     coverData,
		CoverType:     coverType,
		UploaderID:    middleware.GetUserID(c),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// Get 图书详情
// @Summary      图书详情
// @Description  按ID查询图书(含评论)
// @Tags         图书
// @Produce      json
// @Param        id path int true "图书ID"
// @Success      200 {object} response.Response{data=appbook.BookData} "查询成功"
// @Failure      200 {object} response.Response "图书不存在(40402)"
// @Router       /api/v1/books/{id} [get]
func (h *BookHandler) Get(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	result, err := h.getUseCase.Execute(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// List 图书列表
// @Summary      图书列表
// @Description  分页查询图书,支持关键词搜索(匹配书名/作者/分类)
// @Tags         图书
// @Produce      json
// @Param        page query int false "页码(默认1)"
// @Param        size query int false "每页数量(默认9)"
// @Param        keyword query string false "搜索关键词"
// @Success      200 {object} response.Response{data=appbook.ListBooksResponse} "查询成功"
// @Router       /api/v1/books [get]
func (h *BookHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(c.DefaultQuery("size", "9"))

	result, err := h.listUseCase.Execute(c.Request.Context(), appbook.ListBooksRequest{
		Page:     page,
		PageSize: size,
		Keyword:  c.Query("keyword"),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPage(c, result.Books, result.Total, result.Page, result.Size)
}

// GetEdit 图书编辑视图
// @Summary      图书编辑视图
// @Description  按ID查询待编辑的图书(不含评论),仅上架者本人可访问
// @Tags         图书
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "图书ID"
// @Success      200 {object} response.Response{data=appbook.BookData} "查询成功"
// @Failure      200 {object} response.Response "无权访问(40104)或图书不存在(40402)"
// @Router       /api/v1/books/{id}/edit [get]
func (h *BookHandler) GetEdit(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	result, err := h.getUseCase.ExecuteEditView(c.Request.Context(), id, middleware.GetUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// Update 更新图书
// @Summary      更新图书
// @Description  只有上架者可以修改;空值字段保持原值;可选上传新封面
// @Tags         图书
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "图书ID"
// @Success      200 {object} response.Response{data=appbook.BookData} "更新成功"
// @Failure      200 {object} response.Response "无权操作(40104)/图书不存在(40402)"
// @Router       /api/v1/books/{id} [patch]
func (h *BookHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.UpdateBookRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, errors.ErrBindError)
		return
	}

	if v := req.Validate(); v.HasErrors() {
		response.Error(c, errors.NewInvalidRequest(v.Errors()))
		return
	}

	// 新封面可选
	coverData, coverType, err := h.readCover(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var publishedDate time.Time
	if req.PublishedDate != "" {
		publishedDate, _ = time.Parse("2006-01-02", req.PublishedDate)
	}

	result, err := h.updateUseCase.Execute(c.Request.Context(), appbook.UpdateBookRequest{
		ID:            id,
		UserID:        middleware.GetUserID(c),
		Title:         req.Title,
		Authors:       req.Authors,
		Genres:        req.Genres,
		Description:   req.Description,
		Price:         req.Price,
		Publisher:     req.Publisher,
		PublishedDate: publishedDate,
		CoverData:     coverData,
		CoverType:     coverType,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// Delete 删除图书
// @Summary      删除图书
// @Description  只有上架者可以删除;同时清理封面文件,返回被删除的图书
// @Tags         图书
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "图书ID"
// @Success      200 {object} response.Response{data=appbook.BookData} "删除成功"
// @Failure      200 {object} response.Response "无权操作(40104)/图书不存在(40402)"
// @Router       /api/v1/books/{id} [delete]
func (h *BookHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	data, err := h.deleteUseCase.Execute(c.Request.Context(), id, middleware.GetUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, data)
}

// UserBooks 我的图书
// @Summary      我的图书
// @Description  查询当前用户上架的全部图书
// @Tags         图书
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} response.Response{data=[]appbook.BookData} "查询成功"
// @Router       /api/v1/users/books [get]
func (h *BookHandler) UserBooks(c *gin.Context) {
	result, err := h.userBooksUseCase.Execute(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// AddReview 添加评论
// @Summary      添加评论
// @Description  对图书发表评分和评论;同一用户对同一图书只能评论一次
// @Tags         图书
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "图书ID"
// @Param        request body dto.AddReviewRequest true "评论内容"
// @Success      200 {object} response.Response{data=appbook.AddReviewResponse} "评论成功"
// @Failure      200 {object} response.Response "重复评论(40010)/图书不存在(40402)"
// @Router       /api/v1/books/{id}/reviews [post]
func (h *BookHandler) AddReview(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.AddReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, errors.ErrBindError)
		return
	}

	if v := req.Validate(); v.HasErrors() {
		response.Error(c, errors.NewInvalidRequest(v.Errors()))
		return
	}

	result, err := h.addReviewUseCase.Execute(c.Request.Context(), appbook.AddReviewRequest{
		BookID:  id,
		UserID:  middleware.GetUserID(c),
		Rating:  req.Rating,
		Comment: req.Comment,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// readCover 读取multipart中的封面图(字段名image)
// 未携带文件时返回(nil, "", nil),由调用方决定是否必填
func (h *BookHandler) readCover(c *gin.Context) ([]byte, string, error) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return nil, "", nil
	}

	if h.maxUploadSize > 0 && fileHeader.Size > h.maxUploadSize {
		return nil, "", errors.NewInvalidRequest(map[string]string{
			"image": "Image is too large.",
		})
	}

	f, err := fileHeader.Open()
	if err != nil {
		return nil, "", errors.Wrap(err, "Could not read the uploaded image.")
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, "", errors.Wrap(err, "Could not read the uploaded image.")
	}

	return data, fileHeader.Header.Get("Content-Type"), nil
}

// parseIDParam 解析路径中的资源ID
func parseIDParam(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, errors.NewInvalidRequest(map[string]string{
			"id": "Id must be a positive integer.",
		})
	}
	return uint(id), nil
}
