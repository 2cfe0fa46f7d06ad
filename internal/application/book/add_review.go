package book

import (
	"context"

	"github.com/oyemayanq/bookstore-api/internal/domain/book"
)

// AddReviewUseCase 添加评论用例
// 并发控制:
// 1. 事务内SELECT FOR UPDATE锁定图书行,同一图书上的评论追加串行执行
// 2. 锁内检查重复评论 → 追加评论 → 全量重算评分 → 写回
// 3. (book_id, user_id)唯一索引兜底,锁外竞态也不会产生重复评论
type AddReviewUseCase struct {
	bookRepo  book.Repository
	txManager TxManager
}

// NewAddReviewUseCase 创建添加评论用例
func NewAddReviewUseCase(bookRepo book.Repository, txManager TxManager) *AddReviewUseCase {
	return &AddReviewUseCase{
		bookRepo:  bookRepo,
		txManager: txManager,
	}
}

// AddReviewRequest 添加评论请求
type AddReviewRequest struct {
	BookID  uint
	UserID  uint // 来自Token,不信任客户端传入
	Rating  int  // [1,5]
	Comment string
}

// AddReviewResponse 添加评论响应
// 返回更新后的聚合评分,客户端无需再查一次
type AddReviewResponse struct {
	BookID          uint    `json:"book_id"`
	Rating          float64 `json:"rating"`
	NumberOfRatings int     `json:"number_of_ratings"`
}

// Execute 执行添加评论
func (uc *AddReviewUseCase) Execute(ctx context.Context, req AddReviewRequest) (*AddReviewResponse, error) {
	r, err := book.NewReview(req.BookID, req.UserID, req.Rating, req.Comment)
	if err != nil {
		return nil, err
	}

	var resp *AddReviewResponse
	err = uc.txManager.Transaction(ctx, func(ctx context.Context) error {
		// 1. 锁定图书行(含已有评论)
		b, err := uc.bookRepo.LockByID(ctx, req.BookID)
		if err != nil {
			return err
		}

		// 2. 领域行为:查重 + 追加 + 重算评分
		if err := b.AddReview(*r); err != nil {
			return err
		}

		// 3. 持久化评论和聚合字段(同一事务)
		if err := uc.bookRepo.CreateReview(ctx, r); err != nil {
			return err
		}
		if err := uc.bookRepo.UpdateRating(ctx, b); err != nil {
			return err
		}

		resp = &AddReviewResponse{
			BookID:          b.ID,
			Rating:          b.Rating,
			NumberOfRatings: b.NumberOfRatings,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return resp, nil
}
