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

type SongService struct {
	db *gorm.DB
}

func NewSongService(db *gorm.DB) *SongService {
	return &SongService{db: db}
}

func (s *SongService) FindSong(ctx context.Context, id uint) (*models.Song, error) {
	var song models.Song
	if err := s.db.WithContext(ctx).Scopes(models.Active).First(&song, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierr.ErrSongDoesNotExist
		}
		return nil, fmt.Errorf("find song %d: %w", id, err)
	}
	return &song, nil
}

func (s *SongService) Create(ctx context.Context, userID uint, req *dto.CreateSongRequest) (*models.Song, error) {
	song := models.Song{UserID: userID, SongTitle: *req.SongTitle, Genre: *req.Genre}
	if req.AudioFile != nil {
		song.AudioFile = *req.AudioFile
	}
	if req.Ratings != nil {
		song.Ratings = *req.Ratings
	}
	if err := s.db.WithContext(ctx).Create(&song).Error; err != nil {
		return nil, storeError("create song", err)
	}
	return &song, nil
}

// List returns the user's songs, narrowed by title or, failing that, by
// genre label.
func (s *SongService) List(ctx context.Context, userID uint, filter dto.TrackFilter) ([]models.Song, error) {
	q := s.db.WithContext(ctx).Scopes(models.Active, models.OwnedBy(userID))
	switch {
	case filter.SongTitle != nil:
		q = q.Where("song_title = ?", *filter.SongTitle)
	case filter.Genre != nil:
		q = q.Where("genre = ?", *filter.Genre)
	}

	songs := []models.Song{}
	if err := q.Order("id").Find(&songs).Error; err != nil {
		return nil, fmt.Errorf("list songs: %w", err)
	}
	return songs, nil
}

func (s *SongService) Update(ctx context.Context, song *models.Song, req *dto.UpdateSongRequest) (*models.Song, error) {
	if req.SongTitle != nil {
		song.SongTitle = *req.SongTitle
	}
	if req.Genre != nil {
		song.Genre = *req.Genre
	}
	if req.AudioFile != nil {
		song.AudioFile = *req.AudioFile
	}
	if req.Ratings != nil {
		song.Ratings = *req.Ratings
	}
	if err := s.db.WithContext(ctx).Save(song).Error; err != nil {
		return nil, storeError(fmt.Sprintf("update song %d", song.ID), err)
	}
	return song, nil
}

// storeError surfaces the ratings bound enforced by the store as a field
// failure; anything else stays an internal error.
func storeError(op string, err error) error {
	if errors.Is(err, gorm.ErrCheckConstraintViolated) {
		return apierr.Fields(map[string][]string{
			"ratings": {"Ensure this value is between 0 and 5."},
		})
	}
	return fmt.Errorf("%s: %w", op, err)
}

func ToSong(s *models.Song) dto.SongResponse {
	return dto.SongResponse{
		ID:        s.ID,
		SongTitle: s.SongTitle,
		Genre:     s.Genre,
		AudioFile: s.AudioFile,
		Ratings:   s.Ratings,
	}
}

func ToSongs(songs []models.Song) []dto.SongResponse {
	out := make([]dto.SongResponse, 0, len(songs))
	for i := range songs {
		out = append(out, ToSong(&songs[i]))
	}
	return out
}
