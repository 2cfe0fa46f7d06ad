package integration

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 用户模块集成测试
//
// 测试场景:
// 1. 注册成功直接返回Token
// 2. 重复邮箱注册失败
// 3. 字段校验错误按字段归集
// 4. 登录/登出与Token黑名单

// TestUserSignup 测试用户注册
func TestUserSignup(t *testing.T) {
	t.Run("正常注册返回Token", func(t *testing.T) {
		email := GenerateTestEmail("signup_ok")
		resp := PostJSON(t, BaseURL+"/users/signup", map[string]string{
			"name":     "测试用户",
			"email":    email,
			"password": "Test1234",
		}, "")

		require.Equal(t, 0, resp.Code, "注册应该成功")

		var data AuthData
		require.NoError(t, json.Unmarshal(resp.Data, &data))
		assert.NotZero(t, data.ID)
		assert.Equal(t, email, data.Email)
		assert.NotEmpty(t, data.Token, "注册成功应直接返回Token")
		assert.Positive(t, data.ExpiresIn)
	})

	t.Run("重复邮箱注册应失败", func(t *testing.T) {
		email := GenerateTestEmail("signup_dup")
		req := map[string]string{
			"name":     "测试用户",
			"email":    email,
			"password": "Test1234",
		}

		resp1 := PostJSON(t, BaseURL+"/users/signup", req, "")
		require.Equal(t, 0, resp1.Code, "第一次注册应该成功")

		resp2 := PostJSON(t, BaseURL+"/users/signup", req, "")
		assert.Equal(t, 40003, resp2.Code, "重复邮箱应返回Conflict")
	})

	t.Run("字段校验错误按字段归集", func(t *testing.T) {
		resp := PostJSON(t, BaseURL+"/users/signup", map[string]string{
			"name":     "ab",            // 少于3个字符
			"email":    "not-an-email",  // 格式错误
			"password": "12345",         // 少于6个字符
		}, "")

		require.Equal(t, 40900, resp.Code)
		assert.Len(t, resp.Errors, 3, "三个字段应各有一条错误")
		assert.Contains(t, resp.Errors, "name")
		assert.Contains(t, resp.Errors, "email")
		assert.Contains(t, resp.Errors, "password")
	})

	t.Run("空字段只报cannot be empty", func(t *testing.T) {
		resp := PostJSON(t, BaseURL+"/users/signup", map[string]string{}, "")

		require.Equal(t, 40900, resp.Code)
		assert.Equal(t, "Name cannot be empty", resp.Errors["name"])
		assert.Equal(t, "Email cannot be empty", resp.Errors["email"])
		assert.Equal(t, "Password cannot be empty", resp.Errors["password"])
	})
}

// TestUserLogin 测试用户登录
func TestUserLogin(t *testing.T) {
	email, _ := SignupTestUser(t, "login_user")

	t.Run("正确密码登录成功", func(t *testing.T) {
		resp := PostJSON(t, BaseURL+"/users/login", map[string]string{
			"email":    email,
			"password": "Test1234",
		}, "")

		require.Equal(t, 0, resp.Code)

		var data AuthData
		require.NoError(t, json.Unmarshal(resp.Data, &data))
		assert.NotEmpty(t, data.Token)
	})

	t.Run("错误密码返回统一凭证错误", func(t *testing.T) {
		resp := PostJSON(t, BaseURL+"/users/login", map[string]string{
			"email":    email,
			"password": "WrongPass",
		}, "")
		assert.Equal(t, 40103, resp.Code)
	})

	t.Run("不存在的邮箱返回同样的错误码", func(t *testing.T) {
		// 不泄露邮箱是否已注册
		resp := PostJSON(t, BaseURL+"/users/login", map[string]string{
			"email":    GenerateTestEmail("nobody"),
			"password": "Test1234",
		}, "")
		assert.Equal(t, 40103, resp.Code)
	})
}

// TestUserLogout 测试登出与Token黑名单
func TestUserLogout(t *testing.T) {
	_, token := SignupTestUser(t, "logout_user")

	// 登出前Token有效
	resp := GetJSON(t, BaseURL+"/users/books", token)
	require.Equal(t, 0, resp.Code, "登出前Token应有效")

	// 登出
	resp = PostJSON(t, BaseURL+"/users/logout", nil, token)
	require.Equal(t, 0, resp.Code, "登出应该成功")

	// 登出后Token进黑名单,立即失效
	resp = GetJSON(t, BaseURL+"/users/books", token)
	assert.Equal(t, 40102, resp.Code, "登出后Token应立即失效")
}

// TestAuthRequired 测试认证保护
func TestAuthRequired(t *testing.T) {
	t.Run("无Token访问受保护接口", func(t *testing.T) {
		resp := GetJSON(t, BaseURL+"/users/books", "")
		assert.Equal(t, 40100, resp.Code)
	})

	t.Run("伪造Token被拒绝", func(t *testing.T) {
		resp := GetJSON(t, BaseURL+"/users/books", "fake.token.value")
		assert.Equal(t, 40101, resp.Code)
	})
}
