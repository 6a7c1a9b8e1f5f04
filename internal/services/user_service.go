package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/ahmetcoskunkizilkaya/music-catalog/internal/apierr"
	"github.com/ahmetcoskunkizilkaya/music-catalog/internal/dto"
	"github.com/ahmetcoskunkizilkaya/music-catalog/internal/models"
	"gorm.io/gorm"
)

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

func (s *UserService) FindUser(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Scopes(models.Active).First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierr.ErrUserDoesNotExist
		}
		return nil, fmt.Errorf("find user %d: %w", id, err)
	}
	return &user, nil
}

// FindUserByEmail expects an already normalized (lower-cased) address.
func (s *UserService) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Scopes(models.Active).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierr.ErrUserWithEmailDoesNotExist
		}
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return &user, nil
}

// UpdateProfile applies the fields present in req. email must already be
// validated and normalized.
func (s *UserService) UpdateProfile(ctx context.Context, user *models.User, email string, req *dto.UpdateProfileRequest) (*models.User, error) {
	if email != user.Email {
		taken, err := emailTaken(s.db.WithContext(ctx), email)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, apierr.ErrUserAlreadyExists
		}
	}

	user.Email = email
	if req.FirstName != nil {
		user.FirstName = req.FirstName
	}
	if req.LastName != nil {
		user.LastName = req.LastName
	}
	if req.CountryCode != nil {
		user.CountryCode = req.CountryCode
	}
	if req.ContactNo != nil {
		user.ContactNo = req.ContactNo
	}
	if req.City != nil {
		user.City = req.City
	}
	if req.State != nil {
		user.State = req.State
	}
	if req.Country != nil {
		user.Country = req.Country
	}

	if err := s.db.WithContext(ctx).Save(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apierr.ErrUserAlreadyExists
		}
		return nil, fmt.Errorf("update user %d: %w", user.ID, err)
	}
	return user, nil
}

func ToProfile(u *models.User) dto.ProfileResponse {
	return dto.ProfileResponse{
		Email:       u.Email,
		ID:          u.ID,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		Created:     u.Created,
		CountryCode: u.CountryCode,
		ContactNo:   u.ContactNo,
		City:        u.City,
		State:       u.State,
		Country:     u.Country,
	}
}

func emailTaken(db *gorm.DB, email string) (bool, error) {
	var count int64
	if err := db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return false, fmt.Errorf("check email: %w", err)
	}
	return count > 0, nil
}
