package book

import (
	"context"
)

// Repository 图书仓储接口(依赖倒置原则)
// 设计说明:
// 1. 由domain层定义接口,infrastructure层实现
// 2. 便于Mock测试,不依赖具体数据库实现
// 3. 评论与图书同属一个聚合,评论的读写也经由本仓储
type Repository interface {
	// Create 创建图书
	Create(ctx context.Context, book *Book) error

	// FindByID 根据ID查找图书(含评论)
	FindByID(ctx context.Context, id uint) (*Book, error)

	// LockByID 悲观锁查询图书(含评论)
	// 使用SELECT FOR UPDATE锁定图书行,串行化同一图书上的评分聚合更新
	LockByID(ctx context.Context, id uint) (*Book, error)

	// Update 更新图书基本信息(不含评分聚合字段)
	Update(ctx context.Context, book *Book) error

	// UpdateRating 更新评分聚合字段
	// 只允许在持有LockByID行锁的事务内调用,避免无锁信息更新
	// 覆盖并发评论的聚合结果
	UpdateRating(ctx context.Context, book *Book) error

	// Delete 删除图书(软删除),返回被删除的图书(供调用方清理封面文件)
	Delete(ctx context.Context, id uint) (*Book, error)

	// List 分页查询图书列表
	List(ctx context.Context, params ListParams) ([]*Book, int64, error)

	// ListByUploader 查询某用户上架的全部图书
	ListByUploader(ctx context.Context, userID uint) ([]*Book, error)

	// CreateReview 追加一条评论
	// 同一(book_id, user_id)已有评论时返回ErrAlreadyReviewed
	// (唯一索引兜底,应用层先在锁内检查)
	CreateReview(ctx context.Context, review *Review) error

	// ResolvePrices 批量解析图书的权威单价(id→价格)
	// 任一id无对应图书时返回ErrBookNotFound并指明缺失id
	ResolvePrices(ctx context.Context, ids []uint) (map[uint]int64, error)
}

// ListParams 列表查询参数
type ListParams struct {
	Page     int    // 页码(从1开始)
	PageSize int    // 每页数量
	Keyword  string // 搜索关键词(匹配标题、作者、分类)
}
