package ds

import "time"

// HealthData is one measurement event. Single-value metrics use Value+Unit,
// blood pressure uses the systolic/diastolic pair instead.
type HealthData struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	UserID   uint   `gorm:"index;not null" json:"user_id"`
	DataType string `gorm:"type:varchar(30);not null" json:"data_type"`

	Value             *float64 `gorm:"type:decimal(10,2)" json:"value"`
	SystolicPressure  *int     `json:"systolic_pressure"`
	DiastolicPressure *int     `json:"diastolic_pressure"`
	Unit              string   `gorm:"type:varchar(20)" json:"unit"`

	RecordDate time.Time `gorm:"type:date;not null" json:"record_date"`
	RecordTime string    `gorm:"type:varchar(20)" json:"record_time"` // free label, e.g. "morning"
	Note       string    `gorm:"type:text" json:"note"`
	CreatedAt  time.Time `json:"created_at"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}
