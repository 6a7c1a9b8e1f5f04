package models

// Song is a track owned by one user. Genre is a free label, not a reference
// to the genre table. AudioFile is an opaque handle stored as given.
type Song struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	UserID    uint   `gorm:"not null;index" json:"-"`
	SongTitle string `gorm:"size:250;not null;index" json:"song_title"`
	Genre     string `gorm:"size:100;not null;index" json:"genre"`
	AudioFile string `gorm:"size:255;not null;default:''" json:"audio_file"`
	Ratings   int    `gorm:"not null;default:0;check:chk_songs_ratings,ratings >= 0 AND ratings <= 5" json:"ratings"`
	IsDeleted bool   `gorm:"not null;default:false" json:"-"`
	User      User   `gorm:"foreignKey:UserID" json:"-"`
}

func (Song) TableName() string { return "songs" }
