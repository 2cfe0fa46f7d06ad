package user

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	apperrors "github.com/oyemayanq/bookstore-api/pkg/errors"
)

// Service 用户领域服务
// 设计说明：
// 1. Service包含不属于单个实体的业务逻辑（密码加密、验证）
// 2. Service依赖Repository接口，不依赖具体实现（依赖倒置）
// 3. 字段格式校验（邮箱格式、密码长度）在接口层由Validator完成，
//    Service只负责业务规则（邮箱唯一、密码匹配）
type Service interface {
	// Signup 用户注册
	// 邮箱已存在返回ErrEmailDuplicate
	Signup(ctx context.Context, name, email, password string) (*User, error)

	// Login 用户登录
	// 邮箱不存在或密码错误统一返回ErrInvalidCredentials
	Login(ctx context.Context, email, password string) (*User, error)
}

type service struct {
	repo Repository
}

// NewService 创建用户服务
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// Signup 用户注册
// 业务规则：
// 1. 邮箱不能重复（先查再插，数据库UNIQUE索引兜底并发窗口）
// 2. 密码bcrypt加密（自动加盐，cost=10）
func (s *service) Signup(ctx context.Context, name, email, password string) (*User, error) {
	// 1. 邮箱重复检查
	existing, err := s.repo.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, ErrUserNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailDuplicate
	}

	// 2. 密码加密
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperrors.Wrap(err, "Signing up failed, please try again later.")
	}

	// 3. 创建并持久化（邮箱撞并发窗口时Repository返回ErrEmailDuplicate）
	u := NewUser(name, email, string(hashed))
	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}

	return u, nil
}

// Login 用户登录
func (s *service) Login(ctx context.Context, email, password string) (*User, error) {
	u, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return nil, ErrInvalidCredentials
		}
		return nil, apperrors.Wrap(err, "Logging in failed, please try again later.")
	}

	return u, nil
}
