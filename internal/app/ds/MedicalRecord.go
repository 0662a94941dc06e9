package ds

import "time"

// MedicalRecord owns an ordered collection of images. The File* columns mirror
// the image with the lowest sort order so single-file clients keep working;
// when the collection is empty all four are null.
type MedicalRecord struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	UserID      uint       `gorm:"index;not null" json:"user_id"`
	Title       string     `gorm:"type:varchar(100);not null" json:"title"`
	RecordType  string     `gorm:"type:varchar(30)" json:"record_type"`
	Description string     `gorm:"type:text" json:"description"`
	Hospital    string     `gorm:"type:varchar(100)" json:"hospital"`
	Doctor      string     `gorm:"type:varchar(50)" json:"doctor"`
	RecordDate  *time.Time `gorm:"type:date" json:"record_date"`

	FilePath string `gorm:"type:varchar(255)" json:"file_path"`
	FileName string `gorm:"type:varchar(255)" json:"file_name"`
	FileType string `gorm:"type:varchar(100)" json:"file_type"`
	FileSize *int64 `json:"file_size"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	User   User                 `gorm:"foreignKey:UserID" json:"-"`
	Images []MedicalRecordImage `gorm:"foreignKey:RecordID" json:"images,omitempty"`
}

// SetPrimary mirrors the given image into the record's file columns.
// A nil image clears all four together.
func (r *MedicalRecord) SetPrimary(img *MedicalRecordImage) {
	if img == nil {
		r.FilePath = ""
		r.FileName = ""
		r.FileType = ""
		r.FileSize = nil
		return
	}
	r.FilePath = img.FilePath
	r.FileName = img.FileName
	r.FileType = img.FileType
	size := img.FileSize
	r.FileSize = &size
}

// HasFile reports whether the record currently carries a primary file.
func (r *MedicalRecord) HasFile() bool {
	return r.FilePath != ""
}
