package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	apperrors "github.com/oyemayanq/bookstore-api/pkg/errors"
)

// SessionStore 会话存储
// 设计说明：
// 1. JWT是无状态的,服务端无法主动让Token失效
// 2. 通过Redis黑名单实现登出/强制下线:登出时Token进黑名单,
//    TTL与Token剩余有效期对齐,过期自动清理
// 3. Key设计：session:{user_id}、blacklist:{token}
type SessionStore struct {
	client *redis.Client
}

// NewSessionStore 创建会话存储
func NewSessionStore(client *redis.Client) *SessionStore {
	return &SessionStore{client: client}
}

// SaveSession 保存用户会话(登录时间等元信息)
func (s *SessionStore) SaveSession(ctx context.Context, userID uint, sessionData map[string]interface{}, ttl time.Duration) error {
	key := fmt.Sprintf("session:%d", userID)

	if err := s.client.HMSet(ctx, key, sessionData).Err(); err != nil {
		return apperrors.WrapCode(apperrors.ErrCodeRedisError, err, "Could not save session.")
	}

	if err := s.client.Expire(ctx, key, ttl).Err(); err != nil {
		return apperrors.WrapCode(apperrors.ErrCodeRedisError, err, "Could not save session.")
	}

	return nil
}

// DeleteSession 删除用户会话（用于登出）
func (s *SessionStore) DeleteSession(ctx context.Context, userID uint) error {
	key := fmt.Sprintf("session:%d", userID)

	if err := s.client.Del(ctx, key).Err(); err != nil {
		return apperrors.WrapCode(apperrors.ErrCodeRedisError, err, "Could not delete session.")
	}

	return nil
}

// AddToBlacklist 将Token加入黑名单
// 使用场景：用户登出、Token泄露后强制失效
func (s *SessionStore) AddToBlacklist(ctx context.Context, token string, ttl time.Duration) error {
	key := fmt.Sprintf("blacklist:%s", token)

	if err := s.client.Set(ctx, key, "revoked", ttl).Err(); err != nil {
		return apperrors.WrapCode(apperrors.ErrCodeRedisError, err, "Could not revoke token.")
	}

	return nil
}

// IsInBlacklist 检查Token是否在黑名单中
func (s *SessionStore) IsInBlacklist(ctx context.Context, token string) (bool, error) {
	key := fmt.Sprintf("blacklist:%s", token)

	exists, err := s.client.Exists(ctx, key).Result()
	if err != nil {
		return false, apperrors.WrapCode(apperrors.ErrCodeRedisError, err, "Could not verify token.")
	}

	return exists > 0, nil
}
