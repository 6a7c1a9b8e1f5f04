package dto

type CreateGenreRequest struct {
	Genre      *string `json:"genre" validate:"required,min=1,max=100"`
	IsFavorite *bool   `json:"is_favorite"`
}

type UpdateGenreRequest struct {
	Genre      *string `json:"genre" validate:"omitnil,min=1,max=100"`
	IsFavorite *bool   `json:"is_favorite"`
}

type GenreResponse struct {
	ID         uint   `json:"id"`
	Genre      string `json:"genre"`
	IsFavorite bool   `json:"is_favorite"`
}

type CreateSongRequest struct {
	SongTitle *string `json:"song_title" validate:"required,min=1,max=250"`
	Genre     *string `json:"genre" validate:"required,min=1,max=100"`
	AudioFile *string `json:"audio_file" validate:"omitempty,max=255"`
	Ratings   *int    `json:"ratings" validate:"omitnil,min=0,max=5"`
}

type UpdateSongRequest struct {
	SongTitle *string `json:"song_title" validate:"omitnil,min=1,max=250"`
	Genre     *string `json:"genre" validate:"omitnil,min=1,max=100"`
	AudioFile *string `json:"audio_file" validate:"omitempty,max=255"`
	Ratings   *int    `json:"ratings" validate:"omitnil,min=0,max=5"`
}

type SongResponse struct {
	ID        uint   `json:"id"`
	SongTitle string `json:"song_title"`
	Genre     string `json:"genre"`
	AudioFile string `json:"audio_file"`
	Ratings   int    `json:"ratings"`
}

// TrackFilter narrows a track listing. A nil field means the query key was
// absent; SongTitle wins whenever it is present, even if empty.
type TrackFilter struct {
	SongTitle *string
	Genre     *string
}
