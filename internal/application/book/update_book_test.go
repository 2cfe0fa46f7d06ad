package book

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oyemayanq/bookstore-api/internal/domain/book"
	apperrors "github.com/oyemayanq/bookstore-api/pkg/errors"
)

// fakeImageStore 内存封面图存储
type fakeImageStore struct {
	nextID  int
	deleted []string
}

func (s *fakeImageStore) Put(_ context.Context, _ []byte, _ string) (string, error) {
	s.nextID++
	return fmt.Sprintf("uploads/images/fake-%d.png", s.nextID), nil
}

func (s *fakeImageStore) Delete(_ context.Context, path string) error {
	s.deleted = append(s.deleted, path)
	return nil
}

// TestUpdateBookUseCase 测试更新图书用例
func TestUpdateBookUseCase(t *testing.T) {
	t.Run("部分更新保持未提交字段原值", func(t *testing.T) {
		repo := newFakeBookRepo()
		seedBook(repo, 1)
		uc := NewUpdateBookUseCase(book.NewService(repo), &fakeImageStore{})

		result, err := uc.Execute(context.Background(), UpdateBookRequest{
			ID: 1, UserID: 1, Title: "修订版", Price: 6900,
		})
		require.NoError(t, err)

		assert.Equal(t, "修订版", result.Title)
		assert.Equal(t, int64(6900), result.Price)
		assert.Equal(t, "PubHouse", result.Publisher)
	})

	t.Run("非上架者不能修改", func(t *testing.T) {
		repo := newFakeBookRepo()
		seedBook(repo, 1)
		uc := NewUpdateBookUseCase(book.NewService(repo), &fakeImageStore{})

		_, err := uc.Execute(context.Background(), UpdateBookRequest{
			ID: 1, UserID: 99, Title: "篡改书名",
		})
		require.Error(t, err)
		assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeForbidden))
	})

	t.Run("换封面后删除旧图", func(t *testing.T) {
		repo := newFakeBookRepo()
		seedBook(repo, 1)
		store := &fakeImageStore{}
		uc := NewUpdateBookUseCase(book.NewService(repo), store)

		result, err := uc.Execute(context.Background(), UpdateBookRequest{
			ID: 1, UserID: 1, CoverData: []byte{0x89, 0x50}, CoverType: "image/png",
		})
		require.NoError(t, err)

		assert.Equal(t, "uploads/images/fake-1.png", result.CoverPath)
		assert.Equal(t, []string{"uploads/images/c.png"}, store.deleted)
	})

	t.Run("信息更新不回写评分聚合", func(t *testing.T) {
		repo := newFakeBookRepo()
		seedBook(repo, 1)
		reviewUC := NewAddReviewUseCase(repo, &fakeTxManager{})
		uc := NewUpdateBookUseCase(book.NewService(repo), &fakeImageStore{})

		// 读取和写回之间有并发评论提交
		repo.afterFind = func() {
			_, err := reviewUC.Execute(context.Background(), AddReviewRequest{
				BookID: 1, UserID: 10, Rating: 4,
			})
			require.NoError(t, err)
		}

		_, err := uc.Execute(context.Background(), UpdateBookRequest{
			ID: 1, UserID: 1, Title: "修订版",
		})
		require.NoError(t, err)

		// 并发提交的聚合结果不被信息更新覆盖
		b, err := repo.FindByID(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, "修订版", b.Title)
		assert.Equal(t, 4.0, b.Rating)
		assert.Equal(t, 1, b.NumberOfRatings)
	})
}
