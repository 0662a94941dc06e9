package ds

import "time"

// UserProfile is the 1:1 demographic and medical-history record of a user.
// Created empty at registration, filled in via PUT /api/profile.
type UserProfile struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	UserID    uint       `gorm:"uniqueIndex;not null" json:"user_id"`
	RealName  string     `gorm:"type:varchar(50)" json:"real_name"`
	Gender    string     `gorm:"type:varchar(10)" json:"gender"`
	BirthDate *time.Time `gorm:"type:date" json:"birth_date"`
	Phone     string     `gorm:"type:varchar(20)" json:"phone"`
	Address   string     `gorm:"type:varchar(255)" json:"address"`

	Height    *float64 `gorm:"type:decimal(5,2)" json:"height"` // cm
	Weight    *float64 `gorm:"type:decimal(5,2)" json:"weight"` // kg
	BloodType string   `gorm:"type:varchar(10)" json:"blood_type"`

	Allergies      string `gorm:"type:text" json:"allergies"`
	MedicalHistory string `gorm:"type:text" json:"medical_history"`
	FamilyHistory  string `gorm:"type:text" json:"family_history"`

	EmergencyContact string `gorm:"type:varchar(50)" json:"emergency_contact"`
	EmergencyPhone   string `gorm:"type:varchar(20)" json:"emergency_phone"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}
