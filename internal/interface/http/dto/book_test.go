package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCreateBookRequest() CreateBookRequest {
	return CreateBookRequest{
		Title:         "Go语言实战",
		Authors:       []string{"Alice"},
		Genres:        []string{"technology"},
		Description:   "A book about Go.",
		Price:         5900,
		Publisher:     "PubHouse",
		PublishedDate: "2023-05-01",
	}
}

// TestCreateBookValidate 测试上架参数校验
func TestCreateBookValidate(t *testing.T) {
	t.Run("合法请求通过", func(t *testing.T) {
		req := validCreateBookRequest()
		assert.False(t, req.Validate().HasErrors())
	})

	t.Run("全部字段为空时逐字段归集错误", func(t *testing.T) {
		req := CreateBookRequest{}
		v := req.Validate()

		require.True(t, v.HasErrors())
		errs := v.Errors()
		assert.Equal(t, "Title cannot be empty", errs["title"])
		assert.Equal(t, "Authors cannot be empty", errs["authors"])
		assert.Equal(t, "Genres cannot be empty", errs["genres"])
		assert.Equal(t, "Description cannot be empty", errs["description"])
		assert.Equal(t, "Price cannot be empty", errs["price"])
		assert.Equal(t, "Publisher cannot be empty", errs["publisher"])
		assert.Equal(t, "PublishedDate cannot be empty", errs["publishedDate"])
	})

	t.Run("标题过短", func(t *testing.T) {
		req := validCreateBookRequest()
		req.Title = "Go"
		v := req.Validate()
		assert.Equal(t, "Title should be at least 3 characters long.", v.Errors()["title"])
	})

	t.Run("日期格式错误", func(t *testing.T) {
		req := validCreateBookRequest()
		req.PublishedDate = "01/05/2023"
		v := req.Validate()
		assert.Equal(t, "Published date should be in YYYY-MM-DD format.", v.Errors()["publishedDate"])
	})
}

// TestUpdateBookValidate 测试部分更新只校验提交了的字段
func TestUpdateBookValidate(t *testing.T) {
	t.Run("空请求不报错", func(t *testing.T) {
		req := UpdateBookRequest{}
		assert.False(t, req.Validate().HasErrors())
	})

	t.Run("提交的字段仍按规则校验", func(t *testing.T) {
		req := UpdateBookRequest{Title: "Go", PublishedDate: "bad-date"}
		v := req.Validate()
		assert.Len(t, v.Errors(), 2)
	})
}

// TestAddReviewValidate 测试评论参数校验
func TestAddReviewValidate(t *testing.T) {
	t.Run("合法评论通过", func(t *testing.T) {
		req := AddReviewRequest{Rating: 5, Comment: "很好"}
		assert.False(t, req.Validate().HasErrors())
	})

	t.Run("评分越界", func(t *testing.T) {
		req := AddReviewRequest{Rating: 6, Comment: "x"}
		v := req.Validate()
		assert.Equal(t, "Rating should be between 1 and 5.", v.Errors()["rating"])
	})

	t.Run("评分为空", func(t *testing.T) {
		req := AddReviewRequest{Comment: "x"}
		v := req.Validate()
		assert.Equal(t, "Rating cannot be empty", v.Errors()["rating"])
	})
}

// TestSignupValidate 测试注册参数校验
func TestSignupValidate(t *testing.T) {
	t.Run("合法请求通过", func(t *testing.T) {
		req := SignupRequest{Name: "Alice", Email: "a@b.com", Password: "secret123"}
		assert.False(t, req.Validate().HasErrors())
	})

	t.Run("邮箱格式错误", func(t *testing.T) {
		req := SignupRequest{Name: "Alice", Email: "not-an-email", Password: "secret123"}
		v := req.Validate()
		assert.Equal(t, "Email is not valid.", v.Errors()["email"])
	})

	t.Run("密码过短", func(t *testing.T) {
		req := SignupRequest{Name: "Alice", Email: "a@b.com", Password: "12345"}
		v := req.Validate()
		assert.Equal(t, "Password should be at least 6 characters long.", v.Errors()["password"])
	})

	t.Run("全空时只报cannot be empty", func(t *testing.T) {
		req := SignupRequest{}
		v := req.Validate()
		assert.Equal(t, "Name cannot be empty", v.Errors()["name"])
		assert.Equal(t, "Email cannot be empty", v.Errors()["email"])
		assert.Equal(t, "Password cannot be empty", v.Errors()["password"])
		assert.Len(t, v.Errors(), 3)
	})
}
