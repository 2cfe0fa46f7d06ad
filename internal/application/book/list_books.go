package book

import (
	"context"

	"github.com/oyemayanq/bookstore-api/internal/domain/book"
)

// 列表分页默认值
const (
	DefaultPage     = 1
	DefaultPageSize = 9
	MaxPageSize     = 100
)

// ListBooksUseCase 图书列表查询用例(公开接口)
type ListBooksUseCase struct {
	bookService book.Service
}

// NewListBooksUseCase 创建图书列表用例
func NewListBooksUseCase(bookService book.Service) *ListBooksUseCase {
	return &ListBooksUseCase{bookService: bookService}
}

// ListBooksRequest 列表查询请求
type ListBooksRequest struct {
	Page     int
	PageSize int
	Keyword  string // 搜索关键词(匹配标题/作者/分类)
}

// ListBooksResponse 列表查询响应
type ListBooksResponse struct {
	Books []*BookData `json:"books"`
	Total int64       `json:"total"`
	Page  int         `json:"page"`
	Size  int         `json:"size"`
}

// Execute 执行查询
// 非法分页参数回退默认值(page=1, size=9),不报错
func (uc *ListBooksUseCase) Execute(ctx context.Context, req ListBooksRequest) (*ListBooksResponse, error) {
	if req.Page < 1 {
		req.Page = DefaultPage
	}
	if req.PageSize < 1 {
		req.PageSize = DefaultPageSize
	}
	if req.PageSize > MaxPageSize {
		req.PageSize = MaxPageSize
	}

	books, total, err := uc.bookService.ListBooks(ctx, book.ListParams{
		Page:     req.Page,
		PageSize: req.PageSize,
		Keyword:  req.Keyword,
	})
	if err != nil {
		return nil, err
	}

	return &ListBooksResponse{
		Books: toBookList(books),
		Total: total,
		Page:  req.Page,
		Size:  req.PageSize,
	}, nil
}
