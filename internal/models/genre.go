package models

type Genre struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	UserID     uint   `gorm:"not null;index" json:"-"`
	Genre      string `gorm:"size:100;not null" json:"genre"`
	IsFavorite bool   `gorm:"not null;default:false" json:"is_favorite"`
	IsDeleted  bool   `gorm:"not null;default:false" json:"-"`
	User       User   `gorm:"foreignKey:UserID" json:"-"`
}

func (Genre) TableName() string { return "genre" }
