package ds

import "time"

// LifeRecord is one logged diet, exercise or sleep activity. Only the field
// group matching RecordType is populated, the rest stay null.
type LifeRecord struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"index;not null" json:"user_id"`
	RecordType string    `gorm:"type:varchar(20);not null" json:"record_type"` // diet | exercise | sleep
	RecordDate time.Time `gorm:"type:date;not null" json:"record_date"`
	RecordTime string    `gorm:"type:varchar(5)" json:"record_time"` // HH:MM

	// diet
	MealType    string   `gorm:"type:varchar(20)" json:"meal_type"`
	FoodContent string   `gorm:"type:text" json:"food_content"`
	Calories    *float64 `gorm:"type:decimal(8,2)" json:"calories"`

	// exercise
	ExerciseType    string   `gorm:"type:varchar(30)" json:"exercise_type"`
	DurationMinutes *int     `json:"duration_minutes"`
	CaloriesBurned  *float64 `gorm:"type:decimal(8,2)" json:"calories_burned"`
	Distance        *float64 `gorm:"type:decimal(8,2)" json:"distance"` // km
	Steps           *int     `json:"steps"`

	// sleep
	SleepStart    string   `gorm:"type:varchar(5)" json:"sleep_start"` // HH:MM
	SleepEnd      string   `gorm:"type:varchar(5)" json:"sleep_end"`
	SleepDuration *float64 `gorm:"type:decimal(4,2)" json:"sleep_duration"` // hours
	SleepQuality  string   `gorm:"type:varchar(20)" json:"sleep_quality"`   // good | normal | poor

	Mood      string    `gorm:"type:varchar(20)" json:"mood"`
	Note      string    `gorm:"type:text" json:"note"`
	CreatedAt time.Time `json:"created_at"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}
