package order

import (
	"time"

	"github.com/oyemayanq/bookstore-api/internal/domain/order"
)

// OrderData 订单数据(用例响应的公共载体)
type OrderData struct {
	ID        uint            `json:"id"`
	OrderNo   string          `json:"order_no"`
	Total     int64           `json:"total"`
	Items     []OrderItemData `json:"items"`
	CreatedAt time.Time       `json:"created_at"`
}

// OrderItemData 订单明细数据
type OrderItemData struct {
	BookID   uint  `json:"book_id"`
	Quantity int   `json:"quantity"`
	Price    int64 `json:"price"`    // 下单时单价(分)
	Subtotal int64 `json:"subtotal"` // 小计(分)
}

// toOrderData 领域实体转响应数据
func toOrderData(o *order.Order) *OrderData {
	items := make([]OrderItemData, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, OrderItemData{
			BookID:   item.BookID,
			Quantity: item.Quantity,
			Price:    item.Price,
			Subtotal: item.Subtotal(),
		})
	}
	return &OrderData{
		ID:        o.ID,
		OrderNo:   o.OrderNo,
		Total:     o.Total,
		Items:     items,
		CreatedAt: o.CreatedAt,
	}
}
