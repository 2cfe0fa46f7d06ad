package jwt

import (
	"strings"
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/oyemayanq/bookstore-api/pkg/errors"
)

const testSecret = "test-secret-key"

// TestGenerateAndParse 测试签发与验签往返
func TestGenerateAndParse(t *testing.T) {
	t.Run("签发后验签还原用户身份", func(t *testing.T) {
		m := NewManager(testSecret, time.Hour)

		token, err := m.GenerateToken(42, "user@example.com")
		require.NoError(t, err)
		require.NotEmpty(t, token.Value)
		assert.Equal(t, int64(3600), token.ExpiresIn)

		claims, err := m.ParseToken(token.Value)
		require.NoError(t, err)
		assert.Equal(t, uint(42), claims.UserID)
		assert.Equal(t, "user@example.com", claims.Email)
	})

	t.Run("密钥缺失时签发失败", func(t *testing.T) {
		m := NewManager("", time.Hour)

		_, err := m.GenerateToken(1, "a@b.com")
		require.Error(t, err)
		assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeCredential))
	})
}

// TestParseRejectsTampered 测试篡改Token被拒绝
func TestParseRejectsTampered(t *testing.T) {
	m := NewManager(testSecret, time.Hour)

	t.Run("签名被篡改", func(t *testing.T) {
		token, err := m.GenerateToken(1, "a@b.com")
		require.NoError(t, err)

		// 翻转签名中段的一个字符
		parts := strings.Split(token.Value, ".")
		require.Len(t, parts, 3)
		sig := []byte(parts[2])
		mid := len(sig) / 2
		if sig[mid] == 'A' {
			sig[mid] = 'B'
		} else {
			sig[mid] = 'A'
		}
		tampered := parts[0] + "." + parts[1] + "." + string(sig)

		_, err = m.ParseToken(tampered)
		require.Error(t, err)
		assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeInvalidToken))
	})

	t.Run("密钥不一致", func(t *testing.T) {
		other := NewManager("another-secret", time.Hour)
		token, err := other.GenerateToken(1, "a@b.com")
		require.NoError(t, err)

		_, err = m.ParseToken(token.Value)
		assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeInvalidToken))
	})

	t.Run("格式错误的Token", func(t *testing.T) {
		_, err := m.ParseToken("not.a.jwt")
		assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeInvalidToken))
	})

	t.Run("alg为none的Token被拒绝", func(t *testing.T) {
		claims := Claims{UserID: 1, Email: "a@b.com"}
		token := gojwt.NewWithClaims(gojwt.SigningMethodNone, claims)
		unsigned, err := token.SignedString(gojwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = m.ParseToken(unsigned)
		assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeInvalidToken))
	})
}

// TestParseExpired 测试过期Token
func TestParseExpired(t *testing.T) {
	m := NewManager(testSecret, -time.Minute) // 签出即过期

	token, err := m.GenerateToken(1, "a@b.com")
	require.NoError(t, err)

	_, err = m.ParseToken(token.Value)
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeTokenExpired))
}
