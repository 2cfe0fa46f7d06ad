package book

import (
	apperrors "github.com/oyemayanq/bookstore-api/pkg/errors"
)

// 图书领域错误定义
var (
	// ErrBookNotFound 图书不存在
	ErrBookNotFound = apperrors.New(apperrors.ErrCodeBookNotFound, "Could not find the book for the provided id.")

	// ErrAlreadyReviewed 重复评论
	ErrAlreadyReviewed = apperrors.New(apperrors.ErrCodeAlreadyReviewed, "Book already reviewed.")

	// ErrInvalidRating 评分超出[1,5]区间
	ErrInvalidRating = apperrors.New(apperrors.ErrCodeInvalidParams, "Rating should be between 1 and 5.")

	// ErrInvalidPrice 无效的价格
	ErrInvalidPrice = apperrors.New(apperrors.ErrCodeInvalidParams, "Price must be greater than 0.")

	// ErrNotOwner 无权操作此图书
	ErrNotOwner = apperrors.New(apperrors.ErrCodeForbidden, "You are not allowed to modify this book.")
)
