package services

import (
	"errors"
	"fmt"
	"membership-http-service/internal/domain/models"
	"membership-http-service/internal/infrastructure/config"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"
)

// ErrInvalidCredentials 用户名或密码错误
var ErrInvalidCredentials = errors.New("invalid username or password")

// TokenLifetime 令牌有效期为7天
const TokenLifetime = 7 * 24 * time.Hour

// InterfaceJWTService 定义JWT服务接口
type InterfaceJWTService interface {
	GenerateToken(member *models.Member) (string, error)
	ValidateToken(tokenString string) (*jwt.Token, error)
	ExtractClaims(tokenString string) (*JWTClaims, error)
	Login(identifier, password string) (*AuthResult, error)
	Register(firstName, lastName, email, userName, password string) (*AuthResult, error)
	CurrentUser(userID string) (*AuthResult, error)
}

// AuthResult 表示登录或注册成功后返回给前端的结果
type AuthResult struct {
	Username string `json:"username"`
	Token    string `json:"token"`
	Email    string `json:"email"`
}

// JWTService 提供JWT相关服务
type JWTService struct {
	secretKey string
	issuer    string
	DB        *gorm.DB
}

// JWTClaims 定义JWT令牌的声明结构
type JWTClaims struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	IsAdmin  bool   `json:"is_admin"`
	jwt.RegisteredClaims
}

// NewJWTService 创建一个新的JWT服务
func NewJWTService(cfg *config.Config, db *gorm.DB) InterfaceJWTService {
	return &JWTService{
		secretKey: cfg.JWTSecretKey,
		issuer:    "membership-http-service",
		DB:        db,
	}
}

// GenerateToken 生成JWT令牌
func (s *JWTService) GenerateToken(member *models.Member) (string, error) {
	expirationTime := time.Now().Add(TokenLifetime)

	claims := &JWTClaims{
		UserID:   member.ID,
		Username: member.UserName,
		Email:    member.Email,
		IsAdmin:  member.IsAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expirationTime),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
			Issuer:    s.issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.secretKey))
}

// ValidateToken 验证JWT令牌
func (s *JWTService) ValidateToken(tokenString string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// 验证签名算法
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.secretKey), nil
	})
}

// ExtractClaims 从令牌中提取声明
func (s *JWTService) ExtractClaims(tokenString string) (*JWTClaims, error) {
	token, err := s.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		jwtClaims := &JWTClaims{}

		if userID, ok := claims["user_id"].(string); ok {
			jwtClaims.UserID = userID
		}
		if username, ok := claims["username"].(string); ok {
			jwtClaims.Username = username
		}
		if email, ok := claims["email"].(string); ok {
			jwtClaims.Email = email
		}
		if isAdmin, ok := claims["is_admin"].(bool); ok {
			jwtClaims.IsAdmin = isAdmin
		}
		if issuer, ok := claims["iss"].(string); ok {
			jwtClaims.Issuer = issuer
		}

		return jwtClaims, nil
	}

	return nil, errors.New("invalid token claims")
}

// Login 处理用户登录请求，identifier可以是邮箱或用户名
func (s *JWTService) Login(identifier, password string) (*AuthResult, error) {
	var member models.Member
	err := s.DB.Where("email = ? OR user_name = ?", identifier, identifier).First(&member).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !models.CheckPasswordHash(password, member.Password) {
		return nil, ErrInvalidCredentials
	}

	token, err := s.GenerateToken(&member)
	if err != nil {
		return nil, err
	}

	return &AuthResult{
		Username: member.UserName,
		Token:    token,
		Email:    member.Email,
	}, nil
}

// Register 注册新账户并直接返回登录态
func (s *JWTService) Register(firstName, lastName, email, userName, password string) (*AuthResult, error) {
	// 验证邮箱唯一性
	var count int64
	if err := s.DB.Model(&models.Member{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrEmailTaken
	}

	// 验证用户名唯一性
	if err := s.DB.Model(&models.Member{}).Where("user_name = ?", userName).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrUsernameTaken
	}

	member := models.Member{
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		UserName:  userName,
		Password:  password, // BeforeCreate钩子负责哈希
		IsActive:  true,
	}
	if err := s.DB.Create(&member).Error; err != nil {
		return nil, err
	}

	token, err := s.GenerateToken(&member)
	if err != nil {
		return nil, err
	}

	return &AuthResult{
		Username: member.UserName,
		Token:    token,
		Email:    member.Email,
	}, nil
}

// CurrentUser 根据令牌中的用户ID返回当前登录用户，并签发新令牌
func (s *JWTService) CurrentUser(userID string) (*AuthResult, error) {
	var member models.Member
	err := s.DB.First(&member, "id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, err
	}

	token, err := s.GenerateToken(&member)
	if err != nil {
		return nil, err
	}

	return &AuthResult{
		Username: member.UserName,
		Token:    token,
		Email:    member.Email,
	}, nil
}
