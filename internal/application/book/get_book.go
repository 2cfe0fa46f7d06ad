package book

import (
	"context"

	"github.com/oyemayanq/bookstore-api/internal/domain/book"
)

// GetBookUseCase 查询图书详情用例
type GetBookUseCase struct {
	bookService book.Service
}

// NewGetBookUseCase 创建查询图书用例
func NewGetBookUseCase(bookService book.Service) *GetBookUseCase {
	return &GetBookUseCase{bookService: bookService}
}

// Execute 按ID查询图书详情(含评论)
func (uc *GetBookUseCase) Execute(ctx context.Context, id uint) (*BookData, error) {
	b, err := uc.bookService.GetBookByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toBookData(b, true), nil
}

// ExecuteEditView 查询待编辑的图书(不含评论)
// 只有上架者本人可以查看编辑视图
func (uc *GetBookUseCase) ExecuteEditView(ctx context.Context, id, userID uint) (*BookData, error) {
	b, err := uc.bookService.GetBookByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !b.IsOwnedBy(userID) {
		return nil, book.ErrNotOwner
	}
	return toBookData(b, false), nil
}
