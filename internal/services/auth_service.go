package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/ahmetcoskunkizilkaya/music-catalog/internal/apierr"
	"github.com/ahmetcoskunkizilkaya/music-catalog/internal/dto"
	"github.com/ahmetcoskunkizilkaya/music-catalog/internal/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthService registers users, checks credentials and resolves token keys.
// A token key is an HS256-signed JWT carrying the user id; the tokens table
// remains the source of truth for which keys are live.
type AuthService struct {
	db     *gorm.DB
	users  *UserService
	secret []byte
}

func NewAuthService(db *gorm.DB, users *UserService, secret string) *AuthService {
	return &AuthService{db: db, users: users, secret: []byte(secret)}
}

// Register stores a new user and its token in one transaction. email and
// password must already have passed validation.
func (s *AuthService) Register(ctx context.Context, email, password string) (*dto.RegisterResponse, error) {
	user, token, err := s.createUser(ctx, email, password, false)
	if err != nil {
		return nil, err
	}

	return &dto.RegisterResponse{
		ID:        user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		ContactNo: user.ContactNo,
		Created:   user.Created,
		Token:     token.Key,
	}, nil
}

// CreateSuperuser is Register for operator accounts created from the CLI.
func (s *AuthService) CreateSuperuser(ctx context.Context, email, password string) (*models.User, error) {
	user, _, err := s.createUser(ctx, email, password, true)
	return user, err
}

func (s *AuthService) createUser(ctx context.Context, email, password string, admin bool) (*models.User, *models.Token, error) {
	db := s.db.WithContext(ctx)

	taken, err := emailTaken(db, email)
	if err != nil {
		return nil, nil, err
	}
	if taken {
		return nil, nil, apierr.ErrUserAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{Email: email, Password: string(hash), IsAdmin: admin}
	var token *models.Token

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		token, err = s.issueToken(tx, user.ID)
		return err
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, nil, apierr.ErrUserAlreadyExists
		}
		return nil, nil, fmt.Errorf("failed to create user: %w", err)
	}

	return &user, token, nil
}

// Login resolves the account by email, verifies the password and returns
// the user's existing token.
func (s *AuthService) Login(ctx context.Context, email, password string) (*dto.LoginResponse, error) {
	user, err := s.users.FindUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, apierr.ErrInvalidEmailOrPassword
	}

	var token models.Token
	if err := s.db.WithContext(ctx).Where(&models.Token{UserID: user.ID}).First(&token).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierr.ErrTokenNotFound
		}
		return nil, fmt.Errorf("fetch token: %w", err)
	}

	return &dto.LoginResponse{
		ID:      user.ID,
		Email:   user.Email,
		Token:   token.Key,
		Message: apierr.MsgLoginSuccessful,
	}, nil
}

// ResolveToken maps a signature-checked key to its principal id.
func (s *AuthService) ResolveToken(ctx context.Context, key string) (uint, error) {
	var token models.Token
	err := s.db.WithContext(ctx).
		Joins("JOIN users ON users.id = tokens.user_id AND users.is_deleted = ?", false).
		Where(&models.Token{Key: key}).
		First(&token).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, apierr.ErrTokenNotFound
		}
		return 0, fmt.Errorf("resolve token: %w", err)
	}
	return token.UserID, nil
}

func (s *AuthService) issueToken(tx *gorm.DB, userID uint) (*models.Token, error) {
	claims := jwt.MapClaims{
		"sub": strconv.FormatUint(uint64(userID), 10),
		"jti": uuid.NewString(),
		"iat": time.Now().Unix(),
	}
	key, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	token := models.Token{Key: key, UserID: userID}
	if err := tx.Create(&token).Error; err != nil {
		return nil, fmt.Errorf("failed to store token: %w", err)
	}
	return &token, nil
}
