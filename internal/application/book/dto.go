package book

import (
	"context"
	"time"

	"github.com/oyemayanq/bookstore-api/internal/domain/book"
)

// TxManager 事务管理接口(由infrastructure层实现)
// 应用层只依赖接口,不感知具体数据库
type TxManager interface {
	Transaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// BookData 图书数据(用例响应的公共载体)
type BookData struct {
	ID              uint         `json:"id"`
	Title           string       `json:"title"`
	Authors         []string     `json:"authors"`
	Genres          []string     `json:"genres"`
	Description     string       `json:"description"`
	CoverPath       string       `json:"cover_path"`
	Price           int64        `json:"price"`
	Publisher       string       `json:"publisher"`
	PublishedDate   string       `json:"published_date"`
	Rating          float64      `json:"rating"`
	NumberOfRatings int          `json:"number_of_ratings"`
	UploaderID      uint         `json:"uploader_id"`
	Reviews         []ReviewData `json:"reviews,omitempty"`
	CreatedAt       time.Time    `json:"created_at"`
}

// ReviewData 评论数据
type ReviewData struct {
	ID        uint      `json:"id"`
	UserID    uint      `json:"user_id"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

// toBookData 领域实体转响应数据
// withReviews为false时不携带评论(列表接口瘦身)
func toBookData(b *book.Book, withReviews bool) *BookData {
	data := &BookData{
		ID:              b.ID,
		Title:           b.Title,
		Authors:         b.Authors,
		Genres:          b.Genres,
		Description:     b.Description,
		CoverPath:       b.CoverPath,
		Price:           b.Price,
		Publisher:       b.Publisher,
		PublishedDate:   b.PublishedDate.Format("2006-01-02"),
		Rating:          b.Rating,
		NumberOfRatings: b.NumberOfRatings,
		UploaderID:      b.UploaderID,
		CreatedAt:       b.CreatedAt,
	}
	if withReviews {
		data.Reviews = make([]ReviewData, 0, len(b.Reviews))
		for _, r := range b.Reviews {
			data.Reviews = append(data.Reviews, ReviewData{
				ID:        r.ID,
				UserID:    r.UserID,
				Rating:    r.Rating,
				Comment:   r.Comment,
				CreatedAt: r.CreatedAt,
			})
		}
	}
	return data
}

// toBookList 批量转换(不带评论)
func toBookList(books []*book.Book) []*BookData {
	list := make([]*BookData, 0, len(books))
	for _, b := range books {
		list = append(list, toBookData(b, false))
	}
	return list
}
