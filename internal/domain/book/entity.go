package book

import (
	"time"
)

// Book 图书实体(聚合根)
// DDD设计说明:
// 1. Book是图书聚合的根实体,Review是聚合内的子实体
// 2. 价格使用int64存储"分"为单位(避免浮点数精度问题)
// 3. Rating/NumberOfRatings是评论的聚合快照,只能通过AddReview维护
// 4. UploaderID关联上架图书的用户
type Book struct {
	ID              uint
	Title           string
	Authors         []string // 作者列表(有序,至少一个)
	Genres          []string // 分类列表(有序,至少一个)
	Description     string
	CoverPath       string // 封面图存储路径(二进制资产存储返回)
	Price           int64  // 价格(单位:分,1元=100分)
	Publisher       string
	PublishedDate   time.Time
	Reviews         []Review // 评论列表
	Rating          float64  // 平均评分(全量重算得出)
	NumberOfRatings int      // 评论数
	UploaderID      uint     // 上架者用户ID(关联User表)
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Review 图书评论
// 不变式:同一(图书,用户)最多一条评论;评分在[1,5]区间
type Review struct {
	ID        uint
	BookID    uint
	UserID    uint
	Rating    int // [1,5]
	Comment   string
	CreatedAt time.Time
}

// NewBook 创建新图书(工厂方法)
// 字段格式校验由接口层Validator完成,此处只建立初始状态
func NewBook(title string, authors, genres []string, description, coverPath string,
	price int64, publisher string, publishedDate time.Time, uploaderID uint) *Book {
	now := time.Now()
	return &Book{
		Title:         title,
		Authors:       authors,
		Genres:        genres,
		Description:   description,
		CoverPath:     coverPath,
		Price:         price,
		Publisher:     publisher,
		PublishedDate: publishedDate,
		UploaderID:    uploaderID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// NewReview 创建评论
func NewReview(bookID, userID uint, rating int, comment string) (*Review, error) {
	if rating < 1 || rating > 5 {
		return nil, ErrInvalidRating
	}
	return &Review{
		BookID:    bookID,
		UserID:    userID,
		Rating:    rating,
		Comment:   comment,
		CreatedAt: time.Now(),
	}, nil
}

// ReviewedBy 用户是否已评论过本书
func (b *Book) ReviewedBy(userID uint) bool {
	for _, r := range b.Reviews {
		if r.UserID == userID {
			return true
		}
	}
	return false
}

// AddReview 追加评论并维护聚合评分(领域行为)
// 不变式:
// - 同一用户只能评论一次(违反返回ErrAlreadyReviewed)
// - rating == sum(reviews.rating)/len(reviews)
func (b *Book) AddReview(r Review) error {
	if r.Rating < 1 || r.Rating > 5 {
		return ErrInvalidRating
	}
	if b.ReviewedBy(r.UserID) {
		return ErrAlreadyReviewed
	}

	b.Reviews = append(b.Reviews, r)
	b.RecalculateRating()
	b.UpdatedAt = time.Now()
	return nil
}

// RecalculateRating 从评论列表全量重算平均分
// 不使用增量公式:长评论历史下增量平均会累积浮点误差
func (b *Book) RecalculateRating() {
	b.NumberOfRatings = len(b.Reviews)
	if b.NumberOfRatings == 0 {
		b.Rating = 0
		return
	}

	var sum int64
	for _, r := range b.Reviews {
		sum += int64(r.Rating)
	}
	b.Rating = float64(sum) / float64(b.NumberOfRatings)
}

// UpdateInfo 更新图书基本信息
// 空值字段保持原值(部分更新语义)
func (b *Book) UpdateInfo(title string, authors, genres []string, description string,
	price int64, publisher string, publishedDate time.Time) {
	if title != "" {
		b.Title = title
	}
	if len(authors) > 0 {
		b.Authors = authors
	}
	if len(genres) > 0 {
		b.Genres = genres
	}
	if description != "" {
		b.Description = description
	}
	if price > 0 {
		b.Price = price
	}
	if publisher != "" {
		b.Publisher = publisher
	}
	if !publishedDate.IsZero() {
		b.PublishedDate = publishedDate
	}
	b.UpdatedAt = time.Now()
}

// ReplaceCover 更换封面,返回旧封面路径(供调用方删除旧文件)
func (b *Book) ReplaceCover(path string) string {
	old := b.CoverPath
	b.CoverPath = path
	b.UpdatedAt = time.Now()
	return old
}

// IsOwnedBy 检查图书是否由指定用户上架
func (b *Book) IsOwnedBy(userID uint) bool {
	return b.UploaderID == userID
}
