package repository

import (
	"github.com/lucian886/healthManagement/internal/app/ds"
)

func (r *Repository) CreateMedicalRecord(rec *ds.MedicalRecord) error {
	return r.db.Create(rec).Error
}

func (r *Repository) GetMedicalRecord(id uint) (*ds.MedicalRecord, error) {
	var rec ds.MedicalRecord
	if err := r.db.First(&rec, id).Error; err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *Repository) ListMedicalRecords(userID uint) ([]ds.MedicalRecord, error) {
	var list []ds.MedicalRecord
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&list).Error
	return list, err
}

func (r *Repository) SaveMedicalRecord(rec *ds.MedicalRecord) error {
	return r.db.Save(rec).Error
}

// DeleteMedicalRecord removes the record row and its image rows. Blob cleanup
// happens at the handler before this is called.
func (r *Repository) DeleteMedicalRecord(id uint) error {
	if err := r.db.Where("record_id = ?", id).Delete(&ds.MedicalRecordImage{}).Error; err != nil {
		return err
	}
	return r.db.Delete(&ds.MedicalRecord{}, id).Error
}

func (r *Repository) ListRecordImages(recordID uint) ([]ds.MedicalRecordImage, error) {
	var list []ds.MedicalRecordImage
	err := r.db.Where("record_id = ?", recordID).
		Order("sort_order ASC").
		Find(&list).Error
	return list, err
}

func (r *Repository) CountRecordImages(recordID uint) (int64, error) {
	var count int64
	err := r.db.Model(&ds.MedicalRecordImage{}).
		Where("record_id = ?", recordID).
		Count(&count).Error
	return count, err
}

func (r *Repository) CreateRecordImage(img *ds.MedicalRecordImage) error {
	return r.db.Create(img).Error
}

func (r *Repository) GetRecordImage(id uint) (*ds.MedicalRecordImage, error) {
	var img ds.MedicalRecordImage
	if err := r.db.First(&img, id).Error; err != nil {
		return nil, err
	}
	return &img, nil
}

func (r *Repository) SaveRecordImage(img *ds.MedicalRecordImage) error {
	return r.db.Save(img).Error
}

func (r *Repository) DeleteRecordImage(id uint) error {
	return r.db.Delete(&ds.MedicalRecordImage{}, id).Error
}
