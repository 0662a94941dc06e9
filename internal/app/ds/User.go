package ds

import "time"

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"username"`
	Email     string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"column:password_hash;type:varchar(255);not null" json:"-"`
	AvatarURL string    `gorm:"type:varchar(255)" json:"avatar_url"`
	Enabled   bool      `gorm:"type:boolean;default:true" json:"enabled"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
