package book

import (
	"context"

	"github.com/oyemayanq/bookstore-api/internal/domain/book"
)

// UserBooksUseCase 查询当前用户上架的图书
type UserBooksUseCase struct {
	bookService book.Service
}

// NewUserBooksUseCase 创建用户图书用例
func NewUserBooksUseCase(bookService book.Service) *UserBooksUseCase {
	return &UserBooksUseCase{bookService: bookService}
}

// Execute 查询用户上架的全部图书
func (uc *UserBooksUseCase) Execute(ctx context.Context, userID uint) ([]*BookData, error) {
	books, err := uc.bookService.ListBooksByUploader(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toBookList(books), nil
}
