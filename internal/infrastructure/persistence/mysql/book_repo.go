package mysql

import (
	"encoding/json"
	"errors"

	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/oyemayanq/bookstore-api/internal/domain/book"
	apperrors "github.com/oyemayanq/bookstore-api/pkg/errors"
)

// bookRepository 图书仓储实现(MySQL)
// 设计说明:
// 1. 实现domain/book/repository.go定义的接口
// 2. 负责domain实体与GORM模型之间的转换(含Authors/Genres的JSON编解码)
// 3. 处理数据库特定的错误(如唯一索引冲突),转换为业务错误
type bookRepository struct {
	db *gorm.DB
}

// NewBookRepository 创建图书仓储
func NewBookRepository(db *gorm.DB) book.Repository {
	return &bookRepository{db: db}
}

// Create 创建图书
func (r *bookRepository) Create(ctx context.Context, b *book.Book) error {
	model, err := toBookModel(b)
	if err != nil {
		return err
	}

	db := dbFromContext(ctx, r.db)
	if err := db.Create(model).Error; err != nil {
		return wrapDBError(err, apperrors.ErrCodePersistence, "Could not save the book, please try again.")
	}

	// 回填自增ID和时间戳
	b.ID = model.ID
	b.CreatedAt = model.CreatedAt
	b.UpdatedAt = model.UpdatedAt

	return nil
}

// FindByID 根据ID查找图书(含评论)
func (r *bookRepository) FindByID(ctx context.Context, id uint) (*book.Book, error) {
	var model BookModel
	db := dbFromContext(ctx, r.db)

	err := db.Preload("Reviews").First(&model, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, book.ErrBookNotFound
		}
		return nil, wrapDBError(err, apperrors.ErrCodeInternal, "Something went wrong, could not find the book.")
	}

	return toBookEntity(&model)
}

// LockByID 悲观锁查询图书(含评论)
// SELECT FOR UPDATE锁定图书行:同一图书上的评分聚合更新被串行化,
// 避免并发评论时读-改-写丢失更新
func (r *bookRepository) LockByID(ctx context.Context, id uint) (*book.Book, error) {
	var model BookModel
	db := dbFromContext(ctx, r.db)

	err := db.Clauses(clause.Locking{Strength: "UPDATE"}).First(&model, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, book.ErrBookNotFound
		}
		return nil, wrapDBError(err, apperrors.ErrCodeInternal, "Something went wrong, could not find the book.")
	}

	// 评论在锁内读取,保证聚合重算基于最新列表
	if err := db.Where("book_id = ?", id).Order("id ASC").Find(&model.Reviews).Error; err != nil {
		return nil, wrapDBError(err, apperrors.ErrCodeInternal, "Something went wrong, could not find the book.")
	}

	return toBookEntity(&model)
}

// Update 更新图书基本信息
// 不写评分聚合字段:信息更新走无锁路径,写回内存里的聚合值
// 会覆盖并发评论刚提交的结果(聚合字段只经由UpdateRating在锁内更新)
func (r *bookRepository) Update(ctx context.Context, b *book.Book) error {
	model, err := toBookModel(b)
	if err != nil {
		return err
	}

	db := dbFromContext(ctx, r.db)
	result := db.Model(&BookModel{}).Where("id = ?", b.ID).Updates(map[string]interface{}{
		"title":          model.Title,
		"authors":        model.Authors,
		"genres":         model.Genres,
		"description":    model.Description,
		"cover_path":     model.CoverPath,
		"price":          model.Price,
		"publisher":      model.Publisher,
		"published_date": model.PublishedDate,
		"updated_at":     b.UpdatedAt,
	})

	if result.Error != nil {
		return wrapDBError(result.Error, apperrors.ErrCodePersistence, "Something went wrong, could not update the book.")
	}

	if result.RowsAffected == 0 {
		return book.ErrBookNotFound
	}

	return nil
}

// UpdateRating 更新评分聚合字段
// 只在AddReview的事务内调用,此时图书行已被LockByID锁定
func (r *bookRepository) UpdateRating(ctx context.Context, b *book.Book) error {
	db := dbFromContext(ctx, r.db)
	result := db.Model(&BookModel{}).Where("id = ?", b.ID).Updates(map[string]interface{}{
		"rating":            b.Rating,
		"number_of_ratings": b.NumberOfRatings,
		"updated_at":        b.UpdatedAt,
	})

	if result.Error != nil {
		return wrapDBError(result.Error, apperrors.ErrCodePersistence, "Something went wrong, could not add the review.")
	}

	if result.RowsAffected == 0 {
		return book.ErrBookNotFound
	}

	return nil
}

// Delete 删除图书(软删除),返回被删除的图书
func (r *bookRepository) Delete(ctx context.Context, id uint) (*book.Book, error) {
	var model BookModel
	db := dbFromContext(ctx, r.db)

	if err := db.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, book.ErrBookNotFound
		}
		return nil, wrapDBError(err, apperrors.ErrCodeInternal, "Something went wrong, could not delete the book.")
	}

	if err := db.Delete(&BookModel{}, id).Error; err != nil {
		return nil, wrapDBError(err, apperrors.ErrCodePersistence, "Something went wrong, could not delete the book.")
	}

	return toBookEntity(&model)
}

// List 分页查询图书列表
// 关键词同时匹配标题、作者、分类(Authors/Genres是JSON文本,LIKE即可覆盖)
func (r *bookRepository) List(ctx context.Context, params book.ListParams) ([]*book.Book, int64, error) {
	var models []BookModel
	var total int64

	db := dbFromContext(ctx, r.db)
	query := db.Model(&BookModel{})

	if params.Keyword != "" {
		keyword := "%" + params.Keyword + "%"
		query = query.Where("title LIKE ? OR authors LIKE ? OR genres LIKE ?", keyword, keyword, keyword)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, wrapDBError(err, apperrors.ErrCodeInternal, "Could not get books, please try again later.")
	}

	offset := (params.Page - 1) * params.PageSize
	err := query.Order("created_at DESC").
		Limit(params.PageSize).
		Offset(offset).
		Find(&models).Error
	if err != nil {
		return nil, 0, wrapDBError(err, apperrors.ErrCodeInternal, "Could not get books, please try again later.")
	}

	books := make([]*book.Book, len(models))
	for i := range models {
		b, err := toBookEntity(&models[i])
		if err != nil {
			return nil, 0, err
		}
		books[i] = b
	}

	return books, total, nil
}

// ListByUploader 查询某用户上架的全部图书
func (r *bookRepository) ListByUploader(ctx context.Context, userID uint) ([]*book.Book, error) {
	var models []BookModel
	db := dbFromContext(ctx, r.db)

	err := db.Where("uploader_id = ?", userID).Order("created_at DESC").Find(&models).Error
	if err != nil {
		return nil, wrapDBError(err, apperrors.ErrCodeInternal, "Something went wrong, could not find books.")
	}

	books := make([]*book.Book, len(models))
	for i := range models {
		b, err := toBookEntity(&models[i])
		if err != nil {
			return nil, err
		}
		books[i] = b
	}

	return books, nil
}

// CreateReview 追加一条评论
// (book_id, user_id)唯一索引兜底并发窗口下的重复评论
func (r *bookRepository) CreateReview(ctx context.Context, review *book.Review) error {
	model := &ReviewModel{
		BookID:  review.BookID,
		UserID:  review.UserID,
		Rating:  review.Rating,
		Comment: review.Comment,
	}

	db := dbFromContext(ctx, r.db)
	if err := db.Create(model).Error; err != nil {
		if isDuplicateError(err) {
			return book.ErrAlreadyReviewed
		}
		return wrapDBError(err, apperrors.ErrCodePersistence, "Could not add review.")
	}

	review.ID = model.ID
	review.CreatedAt = model.CreatedAt

	return nil
}

// ResolvePrices 批量解析图书的权威单价
// 任一id无对应图书时整体失败,错误信息指明缺失id
func (r *bookRepository) ResolvePrices(ctx context.Context, ids []uint) (map[uint]int64, error) {
	type row struct {
		ID    uint
		Price int64
	}

	var rows []row
	db := dbFromContext(ctx, r.db)

	err := db.Model(&BookModel{}).
		Select("id", "price").
		Where("id IN ?", ids).
		Find(&rows).Error
	if err != nil {
		return nil, wrapDBError(err, apperrors.ErrCodeInternal, "Could not place your order. Please try again later.")
	}

	prices := make(map[uint]int64, len(rows))
	for _, r := range rows {
		prices[r.ID] = r.Price
	}

	for _, id := range ids {
		if _, ok := prices[id]; !ok {
			return nil, apperrors.Newf(apperrors.ErrCodeBookNotFound,
				"Could not find the book for id %d.", id)
		}
	}

	return prices, nil
}

// =========================================
// 辅助函数:模型转换
// =========================================

// toBookModel 领域实体 → GORM模型(Authors/Genres编码为JSON)
func toBookModel(b *book.Book) (*BookModel, error) {
	authors, err := json.Marshal(b.Authors)
	if err != nil {
		return nil, apperrors.Wrap(err, "Could not save the book, please try again.")
	}
	genres, err := json.Marshal(b.Genres)
	if err != nil {
		return nil, apperrors.Wrap(err, "Could not save the book, please try again.")
	}

	return &BookModel{
		ID:              b.ID,
		Title:           b.Title,
		Authors:         string(authors),
		Genres:          string(genres),
		Description:     b.Description,
		CoverPath:       b.CoverPath,
		Price:           b.Price,
		Publisher:       b.Publisher,
		PublishedDate:   b.PublishedDate,
		Rating:          b.Rating,
		NumberOfRatings: b.NumberOfRatings,
		UploaderID:      b.UploaderID,
	}, nil
}

// toBookEntity GORM模型 → 领域实体(JSON解码回有序列表)
func toBookEntity(model *BookModel) (*book.Book, error) {
	var authors, genres []string
	if model.Authors != "" {
		if err := json.Unmarshal([]byte(model.Authors), &authors); err != nil {
			return nil, apperrors.Wrap(err, "Something went wrong, could not find the book.")
		}
	}
	if model.Genres != "" {
		if err := json.Unmarshal([]byte(model.Genres), &genres); err != nil {
			return nil, apperrors.Wrap(err, "Something went wrong, could not find the book.")
		}
	}

	reviews := make([]book.Review, len(model.Reviews))
	for i, rm := range model.Reviews {
		reviews[i] = book.Review{
			ID:        rm.ID,
			BookID:    rm.BookID,
			UserID:    rm.UserID,
			Rating:    rm.Rating,
			Comment:   rm.Comment,
			CreatedAt: rm.CreatedAt,
		}
	}

	return &book.Book{
		ID:              model.ID,
		Title:           model.Title,
		Authors:         authors,
		Genres:          genres,
		Description:     model.Description,
		CoverPath:       model.CoverPath,
		Price:           model.Price,
		Publisher:       model.Publisher,
		PublishedDate:   model.PublishedDate,
		Reviews:         reviews,
		Rating:          model.Rating,
		NumberOfRatings: model.NumberOfRatings,
		UploaderID:      model.UploaderID,
		CreatedAt:       model.CreatedAt,
		UpdatedAt:       model.UpdatedAt,
	}, nil
}
