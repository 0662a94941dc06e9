package ds

import "time"

type MedicalRecordImage struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	RecordID  uint      `gorm:"index;not null" json:"record_id"`
	FilePath  string    `gorm:"type:varchar(255);not null" json:"file_path"`
	FileName  string    `gorm:"type:varchar(255)" json:"file_name"`
	FileType  string    `gorm:"type:varchar(100)" json:"file_type"`
	FileSize  int64     `json:"file_size"`
	SortOrder int       `gorm:"not null" json:"sort_order"`
	CreatedAt time.Time `json:"created_at"`

	Record MedicalRecord `gorm:"foreignKey:RecordID" json:"-"`
}

// PrimaryImage returns the image with the lowest sort order, or nil for an
// empty slice. Ties resolve to the earliest element, matching insert order.
func PrimaryImage(images []MedicalRecordImage) *MedicalRecordImage {
	var primary *MedicalRecordImage
	for i := range images {
		if primary == nil || images[i].SortOrder < primary.SortOrder {
			primary = &images[i]
		}
	}
	return primary
}
