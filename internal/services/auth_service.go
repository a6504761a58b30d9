package services

import (
	"errors"
	"time"

	"github.com/DailyLogTracker/dailylog_backend/internal/config"
	"github.com/DailyLogTracker/dailylog_backend/internal/models"
	"github.com/DailyLogTracker/dailylog_backend/internal/repository"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	// ErrUsernameTaken ユーザー名が既に使用されている
	ErrUsernameTaken = errors.New("このユーザー名は既に使用されています")
	// ErrEmailTaken メールアドレスが既に使用されている
	ErrEmailTaken = errors.New("このメールアドレスは既に使用されています")
	// ErrInvalidCredentials ユーザー名またはパスワードが正しくない
	ErrInvalidCredentials = errors.New("ユーザー名またはパスワードが正しくありません")
)

// AuthService 認証に関するサービスインターフェース
type AuthService interface {
	Register(username, password, email string) (*models.User, error)
	Login(username, password string) (*models.User, string, error)
	ValidateToken(tokenString string) (*Claims, error)
	GetUserFromToken(tokenString string) (*models.User, error)
}

// authService AuthServiceの実装
type authService struct {
	userRepo repository.UserRepository
	config   *config.Config
}

// NewAuthService AuthServiceを作成
func NewAuthService(userRepo repository.UserRepository, cfg *config.Config) AuthService {
	return &authService{
		userRepo: userRepo,
		config:   cfg,
	}
}

// Claims JWTのペイロード
type Claims struct {
	UserID uint `json:"user_id"`
	jwt.StandardClaims
}

// Register ユーザー登録。パスワードはbcryptでハッシュ化して保存する
func (s *authService) Register(username, password, email string) (*models.User, error) {
	// ユーザー名・メールアドレスの重複を確認
	if existing, err := s.userRepo.FindByUsername(username); err == nil && existing != nil {
		return nil, ErrUsernameTaken
	}
	if existing, err := s.userRepo.FindByEmail(email); err == nil && existing != nil {
		return nil, ErrEmailTaken
	}

	// パスワードをハッシュ化
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:     username,
		PasswordHash: string(hashedPassword),
		Email:        email,
	}

	if err := s.userRepo.Create(user); err != nil {
		// 同時登録との競合は一意制約違反として現れる
		if isDuplicateKey(err) {
			return nil, ErrUsernameTaken
		}
		return nil, err
	}

	return user, nil
}

// Login ログイン。成功時はユーザーとJWTトークンを返す
func (s *authService) Login(username, password string) (*models.User, string, error) {
	user, err := s.userRepo.FindByUsername(username)
	if err != nil {
		return nil, "", ErrInvalidCredentials
	}

	// パスワードを検証
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.generateToken(user.ID)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

// ValidateToken トークンを検証
func (s *authService) ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.config.Auth.JWTSecret), nil
	})

	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, errors.New("無効なトークンです")
	}

	return claims, nil
}

// GetUserFromToken トークンからユーザーを取得
func (s *authService) GetUserFromToken(tokenString string) (*models.User, error) {
	claims, err := s.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByID(claims.UserID)
	if err != nil {
		return nil, err
	}

	return user, nil
}

// isDuplicateKey 一意制約違反かどうかを判定
func isDuplicateKey(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

// generateToken JWTトークンを生成
func (s *authService) generateToken(userID uint) (string, error) {
	claims := &Claims{
		UserID: userID,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(s.config.Auth.TokenExpiry).Unix(),
			IssuedAt:  time.Now().Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.Auth.JWTSecret))
}
