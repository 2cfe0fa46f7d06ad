package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 图书模块集成测试
//
// 测试场景:
// 1. 上架图书(multipart表单+封面图)
// 2. 图书详情与列表(公开接口)
// 3. 修改/删除图书的归属校验
// 4. 评论与聚合评分

// TestBookPublish 测试上架图书
func TestBookPublish(t *testing.T) {
	_, token := SignupTestUser(t, "publisher")

	t.Run("正常上架", func(t *testing.T) {
		book := PublishTestBook(t, token, "集成测试图书", 5900)

		assert.NotZero(t, book.ID)
		assert.Equal(t, "集成测试图书", book.Title)
		assert.Equal(t, int64(5900), book.Price)
		assert.Equal(t, []string{"测试作者"}, book.Authors)
		assert.NotEmpty(t, book.CoverPath, "上架应保存封面并返回路径")
		assert.Equal(t, 0.0, book.Rating, "新书无评分")
	})

	t.Run("未登录不能上架", func(t *testing.T) {
		resp := PostMultipart(t, http.MethodPost, BaseURL+"/books", map[string]interface{}{
			"title": "未登录上架",
		}, testPNG, "")
		assert.Equal(t, 40100, resp.Code)
	})

	t.Run("缺少字段时错误按字段归集", func(t *testing.T) {
		resp := PostMultipart(t, http.MethodPost, BaseURL+"/books", map[string]interface{}{
			"title": "ab", // 过短
		}, nil, token)

		require.Equal(t, 40900, resp.Code)
		assert.Contains(t, resp.Errors, "title")
		assert.Contains(t, resp.Errors, "authors")
		assert.Contains(t, resp.Errors, "image")
		assert.Equal(t, "Authors cannot be empty", resp.Errors["authors"])
	})
}

// TestBookGetAndList 测试图书查询
func TestBookGetAndList(t *testing.T) {
	_, token := SignupTestUser(t, "lister")
	book := PublishTestBook(t, token, "可检索的独特书名", 8900)

	t.Run("详情接口公开可访问", func(t *testing.T) {
		resp := GetJSON(t, fmt.Sprintf("%s/books/%d", BaseURL, book.ID), "")
		require.Equal(t, 0, resp.Code)

		var data BookData
		require.NoError(t, json.Unmarshal(resp.Data, &data))
		assert.Equal(t, book.Title, data.Title)
		assert.Equal(t, "2023-05-01", data.PublishedDate)
	})

	t.Run("不存在的图书返回NotFound", func(t *testing.T) {
		resp := GetJSON(t, BaseURL+"/books/999999999", "")
		assert.Equal(t, 40402, resp.Code)
	})

	t.Run("关键词搜索命中书名", func(t *testing.T) {
		resp := GetJSON(t, BaseURL+"/books?keyword=可检索的独特书名", "")
		require.Equal(t, 0, resp.Code)

		var page struct {
			List  []BookData `json:"list"`
			Total int64      `json:"total"`
		}
		require.NoError(t, json.Unmarshal(resp.Data, &page))
		require.NotEmpty(t, page.List, "搜索应命中刚上架的图书")
	})

	t.Run("我的图书需要登录", func(t *testing.T) {
		resp := GetJSON(t, BaseURL+"/users/books", token)
		require.Equal(t, 0, resp.Code)

		var books []BookData
		require.NoError(t, json.Unmarshal(resp.Data, &books))
		require.NotEmpty(t, books)
	})
}

// TestBookOwnership 测试修改/删除的归属校验
func TestBookOwnership(t *testing.T) {
	_, ownerToken := SignupTestUser(t, "owner")
	_, otherToken := SignupTestUser(t, "other")
	book := PublishTestBook(t, ownerToken, "归属校验测试图书", 5900)

	t.Run("非上架者不能修改", func(t *testing.T) {
		resp := PostMultipart(t, http.MethodPatch, fmt.Sprintf("%s/books/%d", BaseURL, book.ID),
			map[string]interface{}{"title": "篡改书名"}, nil, otherToken)
		assert.Equal(t, 40104, resp.Code)
	})

	t.Run("上架者可以修改", func(t *testing.T) {
		resp := PostMultipart(t, http.MethodPatch, fmt.Sprintf("%s/books/%d", BaseURL, book.ID),
			map[string]interface{}{"title": "修改后的书名", "price": 6900}, nil, ownerToken)
		require.Equal(t, 0, resp.Code, "修改失败: %s", resp.Message)

		var data BookData
		require.NoError(t, json.Unmarshal(resp.Data, &data))
		assert.Equal(t, "修改后的书名", data.Title)
		assert.Equal(t, int64(6900), data.Price)
		// 未提交的字段保持原值
		assert.Equal(t, book.Publisher, data.Publisher)
	})

	t.Run("上架者可以访问编辑视图", func(t *testing.T) {
		resp := GetJSON(t, fmt.Sprintf("%s/books/%d/edit", BaseURL, book.ID), ownerToken)
		require.Equal(t, 0, resp.Code)

		var data BookData
		require.NoError(t, json.Unmarshal(resp.Data, &data))
		assert.Equal(t, book.ID, data.ID)
		// 编辑视图不带评论
		assert.Empty(t, data.Reviews)
	})

	t.Run("非上架者不能访问编辑视图", func(t *testing.T) {
		resp := GetJSON(t, fmt.Sprintf("%s/books/%d/edit", BaseURL, book.ID), otherToken)
		assert.Equal(t, 40104, resp.Code)
	})

	t.Run("非上架者不能删除", func(t *testing.T) {
		req, err := http.NewRequest(http.MethodDelete, fmt.Sprintf("%s/books/%d", BaseURL, book.ID), nil)
		require.NoError(t, err)
		resp := do(t, req, otherToken)
		assert.Equal(t, 40104, resp.Code)
	})

	t.Run("上架者删除后图书不可见", func(t *testing.T) {
		req, err := http.NewRequest(http.MethodDelete, fmt.Sprintf("%s/books/%d", BaseURL, book.ID), nil)
		require.NoError(t, err)
		resp := do(t, req, ownerToken)
		require.Equal(t, 0, resp.Code)

		getResp := GetJSON(t, fmt.Sprintf("%s/books/%d", BaseURL, book.ID), "")
		assert.Equal(t, 40402, getResp.Code)
	})
}

// TestBookReview 测试评论与聚合评分
func TestBookReview(t *testing.T) {
	_, ownerToken := SignupTestUser(t, "review_owner")
	book := PublishTestBook(t, ownerToken, "评论测试图书", 5900)
	reviewURL := fmt.Sprintf("%s/books/%d/reviews", BaseURL, book.ID)

	_, token1 := SignupTestUser(t, "reviewer1")
	_, token2 := SignupTestUser(t, "reviewer2")

	t.Run("首条评论后评分等于该评分", func(t *testing.T) {
		resp := PostJSON(t, reviewURL, map[string]interface{}{
			"rating": 4, "comment": "不错的书",
		}, token1)
		require.Equal(t, 0, resp.Code, "评论失败: %s", resp.Message)

		var data ReviewData
		require.NoError(t, json.Unmarshal(resp.Data, &data))
		assert.Equal(t, 4.0, data.Rating)
		assert.Equal(t, 1, data.NumberOfRatings)
	})

	t.Run("第二条评论后评分为平均值", func(t *testing.T) {
		resp := PostJSON(t, reviewURL, map[string]interface{}{
			"rating": 5, "comment": "很好",
		}, token2)
		require.Equal(t, 0, resp.Code)

		var data ReviewData
		require.NoError(t, json.Unmarshal(resp.Data, &data))
		assert.Equal(t, 4.5, data.Rating)
		assert.Equal(t, 2, data.NumberOfRatings)
	})

	t.Run("重复评论返回Conflict", func(t *testing.T) {
		resp := PostJSON(t, reviewURL, map[string]interface{}{
			"rating": 1, "comment": "改个评分",
		}, token1)
		assert.Equal(t, 40010, resp.Code)

		// 聚合不受失败评论影响
		getResp := GetJSON(t, fmt.Sprintf("%s/books/%d", BaseURL, book.ID), "")
		var data BookData
		require.NoError(t, json.Unmarshal(getResp.Data, &data))
		assert.Equal(t, 4.5, data.Rating)
		assert.Equal(t, 2, data.NumberOfRatings)
	})

	t.Run("信息更新不影响评分聚合", func(t *testing.T) {
		resp := PostMultipart(t, http.MethodPatch, fmt.Sprintf("%s/books/%d", BaseURL, book.ID),
			map[string]interface{}{"title": "评论测试图书(修订)"}, nil, ownerToken)
		require.Equal(t, 0, resp.Code, "修改失败: %s", resp.Message)

		getResp := GetJSON(t, fmt.Sprintf("%s/books/%d", BaseURL, book.ID), "")
		var data BookData
		require.NoError(t, json.Unmarshal(getResp.Data, &data))
		assert.Equal(t, "评论测试图书(修订)", data.Title)
		assert.Equal(t, 4.5, data.Rating)
		assert.Equal(t, 2, data.NumberOfRatings)
	})

	t.Run("评分越界被拒绝", func(t *testing.T) {
		_, token3 := SignupTestUser(t, "reviewer3")
		resp := PostJSON(t, reviewURL, map[string]interface{}{
			"rating": 6, "comment": "越界",
		}, token3)
		require.Equal(t, 40900, resp.Code)
		assert.Equal(t, "Rating should be between 1 and 5.", resp.Errors["rating"])
	})
}
