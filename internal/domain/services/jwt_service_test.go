package services

import (
	"testing"
	"time"

	"membership-http-service/internal/domain/models"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedAccount(t *testing.T, svc InterfaceJWTService) *AuthResult {
	t.Helper()
	result, err := svc.Register("John", "Doe", "john@example.com", "john_doe", "Secret@123")
	require.NoError(t, err)
	return result
}

func TestGenerateTokenClaims(t *testing.T) {
	db := newTestDB(t)
	svc := NewJWTService(newTestConfig(), db)

	member := &models.Member{
		ID:       "member-1",
		UserName: "john_doe",
		Email:    "john@example.com",
		IsAdmin:  true,
	}

	tokenString, err := svc.GenerateToken(member)
	require.NoError(t, err)

	claims := &JWTClaims{}
	_, err = jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("test-secret-key"), nil
	})
	require.NoError(t, err)

	assert.Equal(t, "member-1", claims.UserID)
	assert.Equal(t, "john_doe", claims.Username)
	assert.Equal(t, "john@example.com", claims.Email)
	assert.True(t, claims.IsAdmin)
	assert.Equal(t, "membership-http-service", claims.Issuer)

	// 有效期应为7天
	expected := time.Now().Add(TokenLifetime)
	assert.WithinDuration(t, expected, claims.ExpiresAt.Time, time.Minute)
}

func TestValidateTokenRejectsBadSignature(t *testing.T) {
	db := newTestDB(t)
	svc := NewJWTService(newTestConfig(), db)

	otherKeyToken := jwt.NewWithClaims(jwt.SigningMethodHS256, &JWTClaims{UserID: "x"})
	tokenString, err := otherKeyToken.SignedString([]byte("a-different-secret"))
	require.NoError(t, err)

	_, err = svc.ValidateToken(tokenString)
	assert.Error(t, err)
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	db := newTestDB(t)
	svc := NewJWTService(newTestConfig(), db)

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, &JWTClaims{
		UserID: "member-1",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	})
	tokenString, err := expired.SignedString([]byte("test-secret-key"))
	require.NoError(t, err)

	_, err = svc.ValidateToken(tokenString)
	assert.Error(t, err)
}

func TestExtractClaims(t *testing.T) {
	db := newTestDB(t)
	svc := NewJWTService(newTestConfig(), db)

	tokenString, err := svc.GenerateToken(&models.Member{
		ID:       "member-1",
		UserName: "john_doe",
		Email:    "john@example.com",
	})
	require.NoError(t, err)

	claims, err := svc.ExtractClaims(tokenString)
	require.NoError(t, err)
	assert.Equal(t, "member-1", claims.UserID)
	assert.Equal(t, "john_doe", claims.Username)
	assert.False(t, claims.IsAdmin)
}

func TestLoginByEmailAndUsername(t *testing.T) {
	db := newTestDB(t)
	svc := NewJWTService(newTestConfig(), db)

	seedAccount(t, svc)

	// 邮箱和用户名都可以作为登录标识
	byEmail, err := svc.Login("john@example.com", "Secret@123")
	require.NoError(t, err)
	assert.Equal(t, "john_doe", byEmail.Username)
	assert.NotEmpty(t, byEmail.Token)

	byUsername, err := svc.Login("john_doe", "Secret@123")
	require.NoError(t, err)
	assert.Equal(t, "john@example.com", byUsername.Email)
}

func TestLoginWrongPassword(t *testing.T) {
	db := newTestDB(t)
	svc := NewJWTService(newTestConfig(), db)

	seedAccount(t, svc)

	_, err := svc.Login("john_doe", "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUnknownIdentifier(t *testing.T) {
	db := newTestDB(t)
	svc := NewJWTService(newTestConfig(), db)

	_, err := svc.Login("nobody@example.com", "whatever")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegisterDuplicate(t *testing.T) {
	db := newTestDB(t)
	svc := NewJWTService(newTestConfig(), db)

	seedAccount(t, svc)

	_, err := svc.Register("Johnny", "Doeman", "john@example.com", "johnny", "Secret@123")
	assert.ErrorIs(t, err, ErrEmailTaken)

	_, err = svc.Register("Johnny", "Doeman", "johnny@example.com", "john_doe", "Secret@123")
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestCurrentUserIssuesFreshToken(t *testing.T) {
	db := newTestDB(t)
	svc := NewJWTService(newTestConfig(), db)

	registered := seedAccount(t, svc)

	claims, err := svc.ExtractClaims(registered.Token)
	require.NoError(t, err)

	current, err := svc.CurrentUser(claims.UserID)
	require.NoError(t, err)
	assert.Equal(t, "john_doe", current.Username)
	assert.NotEmpty(t, current.Token)

	_, err = svc.CurrentUser("no-such-id")
	assert.ErrorIs(t, err, ErrMemberNotFound)
}
