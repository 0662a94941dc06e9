package ds

import "time"

type MedicationRecord struct {
	ID             uint       `gorm:"primaryKey" json:"id"`
	UserID         uint       `gorm:"index;not null" json:"user_id"`
	MedicationName string     `gorm:"type:varchar(100);not null" json:"medication_name"`
	Dosage         string     `gorm:"type:varchar(50)" json:"dosage"`
	Method         string     `gorm:"type:varchar(30)" json:"method"`    // oral, injection, topical, ...
	Frequency      string     `gorm:"type:varchar(50)" json:"frequency"` // once daily, twice daily, ...
	TakeTime       string     `gorm:"type:varchar(5)" json:"take_time"`  // HH:MM
	StartDate      time.Time  `gorm:"type:date;not null" json:"start_date"`
	EndDate        *time.Time `gorm:"type:date" json:"end_date"`
	Active         bool       `gorm:"type:boolean;default:true" json:"active"`
	Note           string     `gorm:"type:text" json:"note"`
	ReminderID     *uint      `json:"reminder_id"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}
