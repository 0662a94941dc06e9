package repository

import (
	"time"

	"github.com/lucian886/healthManagement/internal/app/ds"
)

func (r *Repository) CreateLifeRecord(rec *ds.LifeRecord) error {
	return r.db.Create(rec).Error
}

func (r *Repository) GetLifeRecord(id uint) (*ds.LifeRecord, error) {
	var rec ds.LifeRecord
	if err := r.db.First(&rec, id).Error; err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *Repository) ListLifeRecordsByDate(userID uint, date time.Time) ([]ds.LifeRecord, error) {
	var list []ds.LifeRecord
	err := r.db.Where("user_id = ? AND record_date = ?", userID, date).
		Order("record_time DESC").
		Find(&list).Error
	return list, err
}

func (r *Repository) ListLifeRecordsByType(userID uint, recordType string) ([]ds.LifeRecord, error) {
	var list []ds.LifeRecord
	err := r.db.Where("user_id = ? AND record_type = ?", userID, recordType).
		Order("record_date DESC").
		Find(&list).Error
	return list, err
}

func (r *Repository) ListRecentLifeRecords(userID uint, recordType string, limit int) ([]ds.LifeRecord, error) {
	var list []ds.LifeRecord
	err := r.db.Where("user_id = ? AND record_type = ?", userID, recordType).
		Order("record_date DESC").
		Limit(limit).
		Find(&list).Error
	return list, err
}

func (r *Repository) DeleteLifeRecord(id uint) error {
	return r.db.Delete(&ds.LifeRecord{}, id).Error
}
