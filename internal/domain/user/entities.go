package user

import (
	"errors"
	"time"
)

var (
	ErrNotFound = errors.New("user not found")
)

// User mirrors the profile the identity provider hands us. The id is the
// provider's subject claim; everything else is pass-through.
type User struct {
	ID              string    `gorm:"column:id;type:varchar(64);primaryKey" json:"id"`
	Email           string    `gorm:"column:email;type:varchar(255);uniqueIndex:ux_users_email" json:"email"`
	FirstName       string    `gorm:"column:first_name;type:varchar(255)" json:"firstName"`
	LastName        string    `gorm:"column:last_name;type:varchar(255)" json:"lastName"`
	ProfileImageURL string    `gorm:"column:profile_image_url;type:text" json:"profileImageUrl"`
	CreatedAt       time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt       time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}

func (User) TableName() string { return "users" }
