package book

import (
	"context"
	"time"
)

// Service 图书领域服务接口
// 设计说明:
// 1. 领域服务封装跨实体的业务规则(价格范围、归属权校验)
// 2. 字段格式校验(标题长度、日期格式等)在接口层由Validator完成
// 3. 不依赖具体的Repository实现(依赖倒置)
type Service interface {
	// PublishBook 上架图书
	// 业务规则:价格必须在1-9999999分之间
	PublishBook(ctx context.Context, title string, authors, genres []string,
		description, coverPath string, price int64, publisher string,
		publishedDate time.Time, uploaderID uint) (*Book, error)

	// GetBookByID 根据ID获取图书详情(含评论)
	GetBookByID(ctx context.Context, id uint) (*Book, error)

	// UpdateBook 更新图书信息
	// 业务规则:只有上架者本人可以修改;返回(更新后的图书, 被替换的旧封面路径)
	UpdateBook(ctx context.Context, id, userID uint, title string, authors, genres []string,
		description, coverPath string, price int64, publisher string,
		publishedDate time.Time) (*Book, string, error)

	// DeleteBook 删除图书,返回被删除的图书
	// 业务规则:只有上架者本人可以删除
	DeleteBook(ctx context.Context, id, userID uint) (*Book, error)

	// ListBooks 分页查询图书列表(公开接口)
	ListBooks(ctx context.Context, params ListParams) ([]*Book, int64, error)

	// ListBooksByUploader 查询某用户上架的图书
	ListBooksByUploader(ctx context.Context, userID uint) ([]*Book, error)

	// ResolvePrices 批量解析权威单价(订单重算用)
	ResolvePrices(ctx context.Context, ids []uint) (map[uint]int64, error)
}

// service 领域服务实现
type service struct {
	repo Repository
}

// NewService 创建图书领域服务
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// PublishBook 上架图书
func (s *service) PublishBook(ctx context.Context, title string, authors, genres []string,
	description, coverPath string, price int64, publisher string,
	publishedDate time.Time, uploaderID uint) (*Book, error) {
	// 价格范围校验(1分-99999.99元)
	if price < 1 || price > 9999999 {
		return nil, ErrInvalidPrice
	}

	b := NewBook(title, authors, genres, description, coverPath, price, publisher, publishedDate, uploaderID)

	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}

	return b, nil
}

// GetBookByID 根据ID获取图书
func (s *service) GetBookByID(ctx context.Context, id uint) (*Book, error) {
	return s.repo.FindByID(ctx, id)
}

// UpdateBook 更新图书信息
func (s *service) UpdateBook(ctx context.Context, id, userID uint, title string,
	authors, genres []string, description, coverPath string, price int64,
	publisher string, publishedDate time.Time) (*Book, string, error) {
	// 1. 查询图书
	b, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, "", err
	}

	// 2. 权限检查:只有上架者可以修改
	if !b.IsOwnedBy(userID) {
		return nil, "", ErrNotOwner
	}

	// 3. 更新信息(空值字段保持原值)
	b.UpdateInfo(title, authors, genres, description, price, publisher, publishedDate)

	// 4. 封面替换(记录旧路径,由调用方删除旧文件)
	var oldCover string
	if coverPath != "" {
		oldCover = b.ReplaceCover(coverPath)
	}

	// 5. 持久化
	if err := s.repo.Update(ctx, b); err != nil {
		return nil, "", err
	}

	return b, oldCover, nil
}

// DeleteBook 删除图书
func (s *service) DeleteBook(ctx context.Context, id, userID uint) (*Book, error) {
	b, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !b.IsOwnedBy(userID) {
		return nil, ErrNotOwner
	}

	return s.repo.Delete(ctx, id)
}

// ListBooks 分页查询图书列表
func (s *service) ListBooks(ctx context.Context, params ListParams) ([]*Book, int64, error) {
	return s.repo.List(ctx, params)
}

// ListBooksByUploader 查询某用户上架的图书
func (s *service) ListBooksByUploader(ctx context.Context, userID uint) ([]*Book, error) {
	return s.repo.ListByUploader(ctx, userID)
}

// ResolvePrices 批量解析权威单价
func (s *service) ResolvePrices(ctx context.Context, ids []uint) (map[uint]int64, error) {
	return s.repo.ResolvePrices(ctx, ids)
}
