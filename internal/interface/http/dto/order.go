package dto

import (
	"github.com/oyemayanq/bookstore-api/pkg/validator"
)

// CreateOrderRequest 创建订单请求
// 客户端只提交图书和数量,价格字段不被接受(金额由服务端重算)
type CreateOrderRequest struct {
	Items []OrderItemRequest `json:"items"`
}

// OrderItemRequest 订单明细项
type OrderItemRequest struct {
	BookID   uint `json:"book_id"`
	Quantity int  `json:"quantity"`
}

// Validate 校验订单参数
// 明细为空/数量非正等业务规则由用例层判定,此处只验结构
func (r *CreateOrderRequest) Validate() *validator.Validator {
	v := validator.New()
	v.Check(len(r.Items) > 0, "items", "No order items.")
	return v
}
