package handler

import (
	"github.com/gin-gonic/gin"

	appuser "github.com/oyemayanq/bookstore-api/internal/application/user"
	"github.com/oyemayanq/bookstore-api/internal/interface/http/dto"
	"github.com/oyemayanq/bookstore-api/internal/interface/http/middleware"
	"github.com/oyemayanq/bookstore-api/pkg/errors"
	"github.com/oyemayanq/bookstore-api/pkg/response"
)

// UserHandler 用户HTTP处理器
// 设计说明：
// 1. Handler只负责HTTP相关的事情：解析请求、字段校验、调用应用层、返回响应
// 2. 不包含业务逻辑(业务逻辑在domain和application层)
// 3. 字段校验用Validator按字段归集错误,一次性返回全部问题
type UserHandler struct {
	signupUseCase *appuser.SignupUseCase
	loginUseCase  *appuser.LoginUseCase
	logoutUseCase *appuser.LogoutUseCase
}

// NewUserHandler 创建用户处理器
func NewUserHandler(
	signupUseCase *appuser.SignupUseCase,
	loginUseCase *appuser.LoginUseCase,
	logoutUseCase *appuser.LogoutUseCase,
) *UserHandler {
	return &UserHandler{
		signupUseCase: signupUseCase,
		loginUseCase:  loginUseCase,
		logoutUseCase: logoutUseCase,
	}
}

// Signup 用户注册
// @Summary      用户注册
// @Description  创建新用户账号,注册成功直接返回Token
// @Tags         用户
// @Accept       json
// @Produce      json
// @Param        request body dto.SignupRequest true "注册信息"
// @Success      200 {object} response.Response{data=appuser.SignupResponse} "注册成功"
// @Failure      200 {object} response.Response "参数错误(40900)/邮箱已存在(40003)"
// @Router       /api/v1/users/signup [post]
func (h *UserHandler) Signup(c *gin.Context) {
	// 1. 绑定参数
	var req dto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, errors.ErrBindError)
		return
	}

	// 2. 字段校验(错误按字段归集)
	if v := req.Validate(); v.HasErrors() {
		response.Error(c, errors.NewInvalidRequest(v.Errors()))
		return
	}

	// 3. 调用应用层用例
	result, err := h.signupUseCase.Execute(c.Request.Context(), appuser.SignupRequest{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// Login 用户登录
// @Summary      用户登录
// @Description  验证邮箱密码,返回JWT Token
// @Tags         用户
// @Accept       json
// @Produce      json
// @Param        request body dto.LoginRequest true "登录信息"
// @Success      200 {object} response.Response{data=appuser.LoginResponse} "登录成功"
// @Failure      200 {object} response.Response "邮箱或密码错误(40103)"
// @Router       /api/v1/users/login [post]
func (h *UserHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, errors.ErrBindError)
		return
	}

	if v := req.Validate(); v.HasErrors() {
		response.Error(c, errors.NewInvalidRequest(v.Errors()))
		return
	}

	result, err := h.loginUseCase.Execute(c.Request.Context(), appuser.LoginRequest{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// Logout 用户登出
// @Summary      用户登出
// @Description  清除会话,Token加入黑名单
// @Tags         用户
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} response.Response "登出成功"
// @Router       /api/v1/users/logout [post]
func (h *UserHandler) Logout(c *gin.Context) {
	userID := middleware.GetUserID(c)
	token := middleware.GetToken(c)

	if err := h.logoutUseCase.Execute(c.Request.Context(), userID, token); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, nil)
}
