package book

import (
	"context"

	"go.uber.org/zap"

	"github.com/oyemayanq/bookstore-api/internal/domain/book"
	"github.com/oyemayanq/bookstore-api/pkg/logger"
)

// DeleteBookUseCase 删除图书用例
// 记录删除成功后再清理封面文件(文件删除失败只记日志)
type DeleteBookUseCase struct {
	bookService book.Service
	imageStore  book.ImageStore
}

// NewDeleteBookUseCase 创建删除图书用例
func NewDeleteBookUseCase(bookService book.Service, imageStore book.ImageStore) *DeleteBookUseCase {
	return &DeleteBookUseCase{
		bookService: bookService,
		imageStore:  imageStore,
	}
}

// Execute 执行删除,返回被删除的图书
// 只有上架者本人可以删除(领域服务校验)
func (uc *DeleteBookUseCase) Execute(ctx context.Context, id, userID uint) (*BookData, error) {
	b, err := uc.bookService.DeleteBook(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if b.CoverPath != "" {
		if err := uc.imageStore.Delete(ctx, b.CoverPath); err != nil {
			logger.L().Warn("delete cover failed",
				zap.Uint("book_id", b.ID), zap.String("path", b.CoverPath), zap.Error(err))
		}
	}

	return toBookData(b, false), nil
}
