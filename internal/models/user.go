package models

import "time"

// User is a catalog account. Email is stored lower-cased and is unique.
type User struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Email       string    `gorm:"size:254;not null;uniqueIndex" json:"email"`
	Password    string    `gorm:"size:255;not null" json:"-"`
	FirstName   *string   `gorm:"size:100" json:"first_name"`
	LastName    *string   `gorm:"size:100" json:"last_name"`
	CountryCode *int      `json:"country_code"`
	ContactNo   *int64    `json:"contact_no"`
	City        *string   `gorm:"size:100" json:"city"`
	State       *string   `gorm:"size:100" json:"state"`
	Country     *string   `gorm:"size:100" json:"country"`
	IsAdmin     bool      `gorm:"not null;default:false" json:"-"`
	IsDeleted   bool      `gorm:"not null;default:false;index" json:"-"`
	Created     time.Time `gorm:"autoCreateTime" json:"created"`
	Modified    time.Time `gorm:"autoUpdateTime" json:"modified"`
}

func (User) TableName() string { return "users" }
