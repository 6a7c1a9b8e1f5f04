package models

import "time"

// Token is the single authentication credential issued to a user at
// registration. It is never rotated.
type Token struct {
	Key     string    `gorm:"primaryKey;size:512"`
	UserID  uint      `gorm:"not null;uniqueIndex"`
	Created time.Time `gorm:"autoCreateTime"`
	User    User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

func (Token) TableName() string { return "tokens" }
