package book

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oyemayanq/bookstore-api/internal/domain/book"
	apperrors "github.com/oyemayanq/bookstore-api/pkg/errors"
)

// fakeBookRepo 内存图书仓储
// 读取返回副本,Update/UpdateRating按列写回,与mysql实现的语义对齐
type fakeBookRepo struct {
	books        map[uint]*book.Book
	nextReviewID uint
	afterFind    func() // FindByID返回后触发,模拟读写间隙的并发提交
}

func newFakeBookRepo() *fakeBookRepo {
	return &fakeBookRepo{books: make(map[uint]*book.Book)}
}

func copyBook(b *book.Book) *book.Book {
	c := *b
	c.Authors = append([]string(nil), b.Authors...)
	c.Genres = append([]string(nil), b.Genres...)
	c.Reviews = append([]book.Review(nil), b.Reviews...)
	return &c
}

func (r *fakeBookRepo) Create(_ context.Context, b *book.Book) error {
	r.books[b.ID] = b
	return nil
}

func (r *fakeBookRepo) FindByID(_ context.Context, id uint) (*book.Book, error) {
	b, ok := r.books[id]
	if !ok {
		return nil, book.ErrBookNotFound
	}
	c := copyBook(b)
	if r.afterFind != nil {
		hook := r.afterFind
		r.afterFind = nil
		hook()
	}
	return c, nil
}

func (r *fakeBookRepo) LockByID(_ context.Context, id uint) (*book.Book, error) {
	b, ok := r.books[id]
	if !ok {
		return nil, book.ErrBookNotFound
	}
	return copyBook(b), nil
}

func (r *fakeBookRepo) Update(_ context.Context, b *book.Book) error {
	stored, ok := r.books[b.ID]
	if !ok {
		return book.ErrBookNotFound
	}
	stored.Title = b.Title
	stored.Authors = b.Authors
	stored.Genres = b.Genres
	stored.Description = b.Description
	stored.CoverPath = b.CoverPath
	stored.Price = b.Price
	stored.Publisher = b.Publisher
	stored.PublishedDate = b.PublishedDate
	stored.UpdatedAt = b.UpdatedAt
	return nil
}

func (r *fakeBookRepo) UpdateRating(_ context.Context, b *book.Book) error {
	stored, ok := r.books[b.ID]
	if !ok {
		return book.ErrBookNotFound
	}
	stored.Rating = b.Rating
	stored.NumberOfRatings = b.NumberOfRatings
	stored.UpdatedAt = b.UpdatedAt
	return nil
}

func (r *fakeBookRepo) Delete(_ context.Context, id uint) (*book.Book, error) {
	b, ok := r.books[id]
	if !ok {
		return nil, book.ErrBookNotFound
	}
	delete(r.books, id)
	return b, nil
}

func (r *fakeBookRepo) List(_ context.Context, params book.ListParams) ([]*book.Book, int64, error) {
	var result []*book.Book
	for _, b := range r.books {
		result = append(result, b)
	}
	return result, int64(len(result)), nil
}

func (r *fakeBookRepo) ListByUploader(_ context.Context, userID uint) ([]*book.Book, error) {
	var result []*book.Book
	for _, b := range r.books {
		if b.UploaderID == userID {
			result = append(result, b)
		}
	}
	return result, nil
}

func (r *fakeBookRepo) CreateReview(_ context.Context, review *book.Review) error {
	stored, ok := r.books[review.BookID]
	if !ok {
		return book.ErrBookNotFound
	}
	for _, existing := range stored.Reviews {
		if existing.UserID == review.UserID {
			return book.ErrAlreadyReviewed
		}
	}
	r.nextReviewID++
	review.ID = r.nextReviewID
	stored.Reviews = append(stored.Reviews, *review)
	return nil
}

func (r *fakeBookRepo) ResolvePrices(_ context.Context, ids []uint) (map[uint]int64, error) {
	result := make(map[uint]int64, len(ids))
	for _, id := range ids {
		b, ok := r.books[id]
		if !ok {
			return nil, book.ErrBookNotFound
		}
		result[id] = b.Price
	}
	return result, nil
}

// fakeTxManager 直通事务管理器
type fakeTxManager struct {
	calls int
}

func (m *fakeTxManager) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(ctx)
}

func seedBook(repo *fakeBookRepo, id uint) *book.Book {
	b := book.NewBook("Go语言实战", []string{"Alice"}, []string{"technology"},
		"desc", "uploads/images/c.png", 5900, "PubHouse",
		time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC), 1)
	b.ID = id
	repo.books[id] = b
	return b
}

// TestAddReviewUseCase 测试添加评论用例
func TestAddReviewUseCase(t *testing.T) {
	t.Run("评论成功并返回新聚合评分", func(t *testing.T) {
		repo := newFakeBookRepo()
		seedBook(repo, 1)
		tx := &fakeTxManager{}
		uc := NewAddReviewUseCase(repo, tx)

		result, err := uc.Execute(context.Background(), AddReviewRequest{
			BookID: 1, UserID: 10, Rating: 4, Comment: "不错",
		})
		require.NoError(t, err)

		assert.Equal(t, uint(1), result.BookID)
		assert.Equal(t, 4.0, result.Rating)
		assert.Equal(t, 1, result.NumberOfRatings)
		assert.Equal(t, 1, tx.calls, "评论写入应在事务中执行")

		// 聚合已写回仓储
		b, _ := repo.FindByID(context.Background(), 1)
		assert.Len(t, b.Reviews, 1)
		assert.Equal(t, 4.0, b.Rating)
	})

	t.Run("多个用户评论后评分为算术平均", func(t *testing.T) {
		repo := newFakeBookRepo()
		seedBook(repo, 1)
		uc := NewAddReviewUseCase(repo, &fakeTxManager{})

		_, err := uc.Execute(context.Background(), AddReviewRequest{BookID: 1, UserID: 10, Rating: 5})
		require.NoError(t, err)
		result, err := uc.Execute(context.Background(), AddReviewRequest{BookID: 1, UserID: 11, Rating: 2})
		require.NoError(t, err)

		assert.Equal(t, 2, result.NumberOfRatings)
		assert.InDelta(t, 3.5, result.Rating, 1e-9)
	})

	t.Run("重复评论返回Conflict且聚合不变", func(t *testing.T) {
		repo := newFakeBookRepo()
		seedBook(repo, 1)
		uc := NewAddReviewUseCase(repo, &fakeTxManager{})

		_, err := uc.Execute(context.Background(), AddReviewRequest{BookID: 1, UserID: 10, Rating: 4})
		require.NoError(t, err)

		_, err = uc.Execute(context.Background(), AddReviewRequest{BookID: 1, UserID: 10, Rating: 5})
		require.Error(t, err)
		assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeAlreadyReviewed))

		b, _ := repo.FindByID(context.Background(), 1)
		assert.Equal(t, 1, b.NumberOfRatings)
		assert.Equal(t, 4.0, b.Rating)
	})

	t.Run("评分超出区间不进入事务", func(t *testing.T) {
		repo := newFakeBookRepo()
		seedBook(repo, 1)
		tx := &fakeTxManager{}
		uc := NewAddReviewUseCase(repo, tx)

		_, err := uc.Execute(context.Background(), AddReviewRequest{BookID: 1, UserID: 10, Rating: 9})
		require.Error(t, err)
		assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeInvalidParams))
		assert.Equal(t, 0, tx.calls)
	})

	t.Run("图书不存在返回NotFound", func(t *testing.T) {
		repo := newFakeBookRepo()
		uc := NewAddReviewUseCase(repo, &fakeTxManager{})

		_, err := uc.Execute(context.Background(), AddReviewRequest{BookID: 99, UserID: 10, Rating: 4})
		require.Error(t, err)
		assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeBookNotFound))
	})
}
