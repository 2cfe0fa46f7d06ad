package order

import (
	apperrors "github.com/oyemayanq/bookstore-api/pkg/errors"
)

// 订单领域错误定义
var (
	// ErrOrderNotFound 订单不存在
	ErrOrderNotFound = apperrors.New(apperrors.ErrCodeOrderNotFound, "Could not find the order.")

	// ErrEmptyOrder 订单明细为空
	ErrEmptyOrder = apperrors.New(apperrors.ErrCodeInvalidParams, "No order items.")

	// ErrInvalidQuantity 购买数量不合法
	ErrInvalidQuantity = apperrors.New(apperrors.ErrCodeInvalidParams, "Quantity must be greater than 0.")

	// ErrOrderForbidden 无权访问他人订单
	ErrOrderForbidden = apperrors.New(apperrors.ErrCodeForbidden, "You are not allowed to access this order.")
)
