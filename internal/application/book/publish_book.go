package book

import (
	"context"
	"time"

	"github.com/oyemayanq/bookstore-api/internal/domain/book"
)

// PublishBookUseCase 上架图书用例
// 流程:保存封面图 → 创建图书记录
// 封面先落盘再建记录;记录创建失败时回收封面文件
type PublishBookUseCase struct {
	bookService book.Service
	imageStore  book.ImageStore
}

// NewPublishBookUseCase 创建上架图书用例
func NewPublishBookUseCase(bookService book.Service, imageStore book.ImageStore) *PublishBookUseCase {
	return &PublishBookUseCase{
		bookService: bookService,
		imageStore:  imageStore,
	}
}

// PublishBookRequest 上架图书请求
// 字段格式已在接口层校验完毕
type PublishBookRequest struct {
	Title         string
	Authors       []string
	Genres        []string
	Description   string
	Price         int64 // 单位:分
	Publisher     string
	PublishedDate time.Time
	CoverData     []byte // 封面图二进制内容
	CoverType     string // 封面图Content-Type
	UploaderID    uint   // 当前登录用户
}

// Execute 执行上架
func (uc *PublishBookUseCase) Execute(ctx context.Context, req PublishBookRequest) (*BookData, error) {
	// 1. 保存封面图,取得存储路径
	coverPath, err := uc.imageStore.Put(ctx, req.CoverData, req.CoverType)
	if err != nil {
		return nil, err
	}

	// 2. 创建图书(领域服务校验价格范围)
	b, err := uc.bookService.PublishBook(ctx, req.Title, req.Authors, req.Genres,
		req.Description, coverPath, req.Price, req.Publisher, req.PublishedDate, req.UploaderID)
	if err != nil {
		// 记录创建失败,回收已落盘的封面
		_ = uc.imageStore.Delete(ctx, coverPath)
		return nil, err
	}

	return toBookData(b, false), nil
}
