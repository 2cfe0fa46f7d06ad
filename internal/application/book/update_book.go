package book

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/oyemayanq/bookstore-api/internal/domain/book"
	"github.com/oyemayanq/bookstore-api/pkg/logger"
)

// UpdateBookUseCase 更新图书用例
// 携带新封面时先落盘新图,更新成功后再删除旧图
// (删除失败只记日志,残留文件可由离线任务清理)
type UpdateBookUseCase struct {
	bookService book.Service
	imageStore  book.ImageStore
}

// NewUpdateBookUseCase 创建更新图书用例
func NewUpdateBookUseCase(bookService book.Service, imageStore book.ImageStore) *UpdateBookUseCase {
	return &UpdateBookUseCase{
		bookService: bookService,
		imageStore:  imageStore,
	}
}

// UpdateBookRequest 更新图书请求
// 空值字段保持原值(部分更新语义);CoverData为空表示不换封面
type UpdateBookRequest struct {
	ID            uint
	UserID        uint // 当前登录用户(归属校验)
	Title         string
	Authors       []string
	Genres        []string
	Description   string
	Price         int64
	Publisher     string
	PublishedDate time.Time
	CoverData     []byte
	CoverType     string
}

// Execute 执行更新
func (uc *UpdateBookUseCase) Execute(ctx context.Context, req UpdateBookRequest) (*BookData, error) {
	// 1. 有新封面则先落盘
	var coverPath string
	if len(req.CoverData) > 0 {
		path, err := uc.imageStore.Put(ctx, req.CoverData, req.CoverType)
		if err != nil {
			return nil, err
		}
		coverPath = path
	}

	// 2. 更新图书(领域服务做归属校验)
	b, oldCover, err := uc.bookService.UpdateBook(ctx, req.ID, req.UserID, req.Title,
		req.Authors, req.Genres, req.Description, coverPath, req.Price,
		req.Publisher, req.PublishedDate)
	if err != nil {
		if coverPath != "" {
			_ = uc.imageStore.Delete(ctx, coverPath)
		}
		return nil, err
	}

	// 3. 更新成功后清理被替换的旧封面
	if oldCover != "" {
		if err := uc.imageStore.Delete(ctx, oldCover); err != nil {
			logger.L().Warn("delete old cover failed",
				zap.Uint("book_id", b.ID), zap.String("path", oldCover), zap.Error(err))
		}
	}

	return toBookData(b, false), nil
}
