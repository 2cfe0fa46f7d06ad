package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	apperrors "github.com/oyemayanq/bookstore-api/pkg/errors"
)

// Manager JWT管理器
// 设计说明：
// 1. 签发携带用户身份的Token，下游只从验签后的Token读取身份
//    （绝不信任请求体里的user id，这是整个信任边界的根基）
// 2. 签名算法固定为HS256，验签时校验token.Method
//    （防止算法混淆攻击：alg头来自客户端，不可信）
type Manager struct {
	secret string        // JWT签名密钥
	expire time.Duration // Token有效期
}

// NewManager 创建JWT管理器
func NewManager(secret string, expire time.Duration) *Manager {
	return &Manager{
		secret: secret,
		expire: expire,
	}
}

// Claims 自定义JWT Claims
// 嵌入jwt.RegisteredClaims获取标准字段（exp、iat、nbf等）
type Claims struct {
	UserID uint   `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// Token 签发结果
type Token struct {
	Value     string `json:"token"`
	ExpiresIn int64  `json:"expires_in"` // 有效期（秒）
}

// GenerateToken 签发Token
// 密钥缺失或签名失败返回凭证基础设施错误（50004）
func (m *Manager) GenerateToken(userID uint, email string) (*Token, error) {
	if m.secret == "" {
		return nil, apperrors.WrapCode(apperrors.ErrCodeCredential,
			errors.New("jwt secret is empty"), "Could not process credentials, please try again later.")
	}

	now := time.Now()
	claims := Claims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(m.expire)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    "bookstore-api",
			Subject:   fmt.Sprintf("%d", userID),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(m.secret))
	if err != nil {
		return nil, apperrors.WrapCode(apperrors.ErrCodeCredential, err,
			"Could not process credentials, please try again later.")
	}

	return &Token{
		Value:     signed,
		ExpiresIn: int64(m.expire.Seconds()),
	}, nil
}

// ParseToken 解析并验证Token
// 校验内容：
// 1. 签名（篡改的payload/signature一律拒绝）
// 2. 签名算法（只接受HMAC，不读取Token自带的alg）
// 3. 过期时间（exp）与生效时间（nbf）
func (m *Manager) ParseToken(tokenString string) (*Claims, error) {
	if m.secret == "" {
		return nil, apperrors.WrapCode(apperrors.ErrCodeCredential,
			errors.New("jwt secret is empty"), "Could not process credentials, please try again later.")
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(m.secret), nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperrors.ErrTokenExpired
		}
		return nil, apperrors.ErrInvalidToken
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, apperrors.ErrInvalidToken
}

// Expire 返回Token有效期（黑名单TTL与之对齐）
func (m *Manager) Expire() time.Duration {
	return m.expire
}
