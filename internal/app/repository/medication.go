package repository

import (
	"github.com/lucian886/healthManagement/internal/app/ds"
)

func (r *Repository) CreateMedication(m *ds.MedicationRecord) error {
	return r.db.Create(m).Error
}

func (r *Repository) GetMedication(id uint) (*ds.MedicationRecord, error) {
	var m ds.MedicationRecord
	if err := r.db.First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *Repository) ListMedications(userID uint) ([]ds.MedicationRecord, error) {
	var list []ds.MedicationRecord
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&list).Error
	return list, err
}

func (r *Repository) ListActiveMedications(userID uint) ([]ds.MedicationRecord, error) {
	var list []ds.MedicationRecord
	err := r.db.Where("user_id = ? AND active = ?", userID, true).
		Order("created_at DESC").
		Find(&list).Error
	return list, err
}

func (r *Repository) SaveMedication(m *ds.MedicationRecord) error {
	return r.db.Save(m).Error
}

func (r *Repository) DeleteMedication(id uint) error {
	return r.db.Delete(&ds.MedicationRecord{}, id).Error
}
