package order

import (
	"time"
)

// Order 订单实体(聚合根)
// 设计说明:
// 1. Order是聚合根,OrderItem是子实体
// 2. Total是服务端根据权威单价重算的金额,创建后不再变化
//    (客户端提交的价格/总价一律忽略,防止改价攻击)
// 3. OrderItem.Price是下单时的价格快照,图书后续改价不影响历史订单
type Order struct {
	ID        uint
	OrderNo   string      // 订单号(业务主键,全局唯一)
	UserID    uint        // 买家用户ID(来自验签后的Token)
	Total     int64       // 订单总金额(分)
	Items     []OrderItem // 订单明细
	CreatedAt time.Time
	UpdatedAt time.Time
}

// OrderItem 订单明细项
// 不直接关联Book对象,只保存BookID(避免跨聚合引用)
type OrderItem struct {
	ID       uint
	OrderID  uint
	BookID   uint
	Quantity int   // 购买数量(>0)
	Price    int64 // 下单时单价(分),服务端解析的权威价格
}

// Subtotal 明细小计
func (i OrderItem) Subtotal() int64 {
	return i.Price * int64(i.Quantity)
}

// NewOrder 创建新订单(工厂方法)
// Total由明细重算得出,不接受外部传入
// 不变式:Total == Σ item.Price * item.Quantity
func NewOrder(orderNo string, userID uint, items []OrderItem) *Order {
	now := time.Now()
	o := &Order{
		OrderNo:   orderNo,
		UserID:    userID,
		Items:     items,
		CreatedAt: now,
		UpdatedAt: now,
	}
	o.Total = o.CalculateTotal()
	return o
}

// CalculateTotal 计算订单总金额
func (o *Order) CalculateTotal() int64 {
	var total int64
	for _, item := range o.Items {
		total += item.Subtotal()
	}
	return total
}

// IsOwnedBy 检查订单是否属于指定用户
// 权限校验,防止用户访问他人订单
func (o *Order) IsOwnedBy(userID uint) bool {
	return o.UserID == userID
}
