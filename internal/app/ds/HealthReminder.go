package ds

import "time"

// HealthReminder carries a derived NextReminderTime: always the nearest future
// instant with the reminder's time-of-day, recomputed on create/update/toggle.
// RepeatType and RepeatDays are stored verbatim; interpretation is a client concern.
type HealthReminder struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	UserID       uint   `gorm:"index;not null" json:"user_id"`
	ReminderType string `gorm:"type:varchar(30)" json:"reminder_type"` // medication, checkup, exercise, water, custom
	Content      string `gorm:"type:varchar(255);not null" json:"content"`
	ReminderTime string `gorm:"type:varchar(5)" json:"reminder_time"` // HH:MM
	RepeatType   string `gorm:"type:varchar(20)" json:"repeat_type"`  // once | daily | weekly | monthly
	RepeatDays   string `gorm:"type:varchar(50)" json:"repeat_days"`  // comma list

	Enabled          bool       `gorm:"type:boolean;default:true" json:"enabled"`
	Completed        bool       `gorm:"type:boolean;default:false" json:"completed"`
	NextReminderTime *time.Time `json:"next_reminder_time"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}
