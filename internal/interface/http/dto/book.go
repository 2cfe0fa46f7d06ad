package dto

import (
	"regexp"

	"github.com/oyemayanq/bookstore-api/pkg/validator"
)

// datePattern 出版日期格式(YYYY-MM-DD)
var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// CreateBookRequest 上架图书请求(multipart/form-data)
// authors/genres使用重复表单字段提交;封面图在文件部分,由Handler单独读取
type CreateBookRequest struct {
	Title         string   `form:"title"`
	Authors       []string `form:"authors"`
	Genres        []string `form:"genres"`
	Description   string   `form:"description"`
	Price         int64    `form:"price"` // 单位:分
	Publisher     string   `form:"publisher"`
	PublishedDate string   `form:"publishedDate"` // YYYY-MM-DD
}

// Validate 校验上架参数
// 规则:
// - title 非空且至少3个字符
// - authors/genres 至少一个
// - description/publisher 非空
// - price 至少为1(分)
// - publishedDate 非空且符合YYYY-MM-DD
func (r *CreateBookRequest) Validate() *validator.Validator {
	v := validator.New()

	if v.Exists("title", r.Title) {
		v.MinLength("title", r.Title, 3, "Title should be at least 3 characters long.")
	}
	v.Exists("authors", r.Authors)
	v.Exists("genres", r.Genres)
	v.Exists("description", r.Description)
	if v.Exists("price", r.Price) {
		v.MinValue("price", float64(r.Price), 1, "Price must be greater than 0.")
	}
	v.Exists("publisher", r.Publisher)
	if v.Exists("publishedDate", r.PublishedDate) {
		v.MatchesPattern("publishedDate", r.PublishedDate, datePattern,
			"Published date should be in YYYY-MM-DD format.")
	}

	return v
}

// UpdateBookRequest 更新图书请求(multipart/form-data)
// 部分更新:空值字段保持原值,只校验提交了的字段
type UpdateBookRequest struct {
	Title         string   `form:"title"`
	Authors       []string `form:"authors"`
	Genres        []string `form:"genres"`
	Description   string   `form:"description"`
	Price         int64    `form:"price"`
	Publisher     string   `form:"publisher"`
	PublishedDate string   `form:"publishedDate"`
}

// Validate 校验更新参数(只验提交了的字段)
func (r *UpdateBookRequest) Validate() *validator.Validator {
	v := validator.New()

	if r.Title != "" {
		v.MinLength("title", r.Title, 3, "Title should be at least 3 characters long.")
	}
	if r.Price != 0 {
		v.MinValue("price", float64(r.Price), 1, "Price must be greater than 0.")
	}
	if r.PublishedDate != "" {
		v.MatchesPattern("publishedDate", r.PublishedDate, datePattern,
			"Published date should be in YYYY-MM-DD format.")
	}

	return v
}

// AddReviewRequest 添加评论请求
type AddReviewRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// Validate 校验评论参数
// 规则:rating在[1,5]区间;comment非空
func (r *AddReviewRequest) Validate() *validator.Validator {
	v := validator.New()

	if v.Exists("rating", r.Rating) {
		v.MinValue("rating", float64(r.Rating), 1, "Rating should be between 1 and 5.")
		v.MaxValue("rating", float64(r.Rating), 5, "Rating should be between 1 and 5.")
	}
	v.Exists("comment", r.Comment)

	return v
}
