package order

import (
	"context"

	"github.com/oyemayanq/bookstore-api/internal/domain/order"
)

// TxManager 事务管理接口(由infrastructure层实现)
type TxManager interface {
	Transaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// CreateOrderUseCase 创建订单用例
// 核心规则:金额由服务端重算
// 1. 客户端只提交(book_id, quantity),价格字段一律忽略
// 2. 从图书目录解析权威单价,任一图书不存在则整单失败
// 3. 总价 = Σ 权威单价 × 数量
type CreateOrderUseCase struct {
	orderRepo     order.Repository
	priceResolver order.PriceResolver
	txManager     TxManager
}

// NewCreateOrderUseCase 创建订单用例
func NewCreateOrderUseCase(
	orderRepo order.Repository,
	priceResolver order.PriceResolver,
	txManager TxManager,
) *CreateOrderUseCase {
	return &CreateOrderUseCase{
		orderRepo:     orderRepo,
		priceResolver: priceResolver,
		txManager:     txManager,
	}
}

// CreateOrderRequest 创建订单请求
type CreateOrderRequest struct {
	UserID uint // 来自Token
	Items  []CreateOrderItem
}

// CreateOrderItem 订单明细项(只含图书和数量)
type CreateOrderItem struct {
	BookID   uint
	Quantity int
}

// Execute 执行创建订单
func (uc *CreateOrderUseCase) Execute(ctx context.Context, req CreateOrderRequest) (*OrderData, error) {
	// 1. 明细校验
	if len(req.Items) == 0 {
		return nil, order.ErrEmptyOrder
	}
	ids := make([]uint, 0, len(req.Items))
	for _, item := range req.Items {
		if item.Quantity <= 0 {
			return nil, order.ErrInvalidQuantity
		}
		ids = append(ids, item.BookID)
	}

	// 2. 解析权威单价(任一id缺失则失败,不建部分订单)
	prices, err := uc.priceResolver.ResolvePrices(ctx, ids)
	if err != nil {
		return nil, err
	}

	// 3. 组装订单,总价由明细重算
	items := make([]order.OrderItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, order.OrderItem{
			BookID:   item.BookID,
			Quantity: item.Quantity,
			Price:    prices[item.BookID],
		})
	}
	o := order.NewOrder(order.GenerateOrderNo(), req.UserID, items)

	// 4. 订单与明细在同一事务中落库
	err = uc.txManager.Transaction(ctx, func(ctx context.Context) error {
		return uc.orderRepo.Create(ctx, o)
	})
	if err != nil {
		return nil, err
	}

	return toOrderData(o), nil
}
