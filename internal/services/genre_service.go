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

type GenreService struct {
	db *gorm.DB
}

func NewGenreService(db *gorm.DB) *GenreService {
	return &GenreService{db: db}
}

func (s *GenreService) FindGenre(ctx context.Context, id uint) (*models.Genre, error) {
	var genre models.Genre
	if err := s.db.WithContext(ctx).Scopes(models.Active).First(&genre, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierr.ErrGenreDoesNotExist
		}
		return nil, fmt.Errorf("find genre %d: %w", id, err)
	}
	return &genre, nil
}

func (s *GenreService) Create(ctx context.Context, userID uint, req *dto.CreateGenreRequest) (*models.Genre, error) {
	genre := models.Genre{UserID: userID, Genre: *req.Genre}
	if req.IsFavorite != nil {
		genre.IsFavorite = *req.IsFavorite
	}
	if err := s.db.WithContext(ctx).Create(&genre).Error; err != nil {
		return nil, fmt.Errorf("failed to create genre: %w", err)
	}
	return &genre, nil
}

func (s *GenreService) ListForUser(ctx context.Context, userID uint) ([]models.Genre, error) {
	genres := []models.Genre{}
	if err := s.db.WithContext(ctx).Scopes(models.Active, models.OwnedBy(userID)).Order("id").Find(&genres).Error; err != nil {
		return nil, fmt.Errorf("list genres: %w", err)
	}
	return genres, nil
}

func (s *GenreService) Update(ctx context.Context, genre *models.Genre, req *dto.UpdateGenreRequest) (*models.Genre, error) {
	if req.Genre != nil {
		genre.Genre = *req.Genre
	}
	if req.IsFavorite != nil {
		genre.IsFavorite = *req.IsFavorite
	}
	if err := s.db.WithContext(ctx).Save(genre).Error; err != nil {
		return nil, fmt.Errorf("update genre %d: %w", genre.ID, err)
	}
	return genre, nil
}

func ToGenre(g *models.Genre) dto.GenreResponse {
	return dto.GenreResponse{ID: g.ID, Genre: g.Genre, IsFavorite: g.IsFavorite}
}

func ToGenres(genres []models.Genre) []dto.GenreResponse {
	out := make([]dto.GenreResponse, 0, len(genres))
	for i := range genres {
		out = append(out, ToGenre(&genres[i]))
	}
	return out
}
