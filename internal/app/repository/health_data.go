package repository

import (
	"time"

	"github.com/lucian886/healthManagement/internal/app/ds"
)

func (r *Repository) CreateHealthData(d *ds.HealthData) error {
	return r.db.Create(d).Error
}

func (r *Repository) GetHealthData(id uint) (*ds.HealthData, error) {
	var d ds.HealthData
	if err := r.db.First(&d, id).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

// ListLatestHealthData returns all of the user's measurements newest-date-first;
// the client picks the freshest row per type.
func (r *Repository) ListLatestHealthData(userID uint) ([]ds.HealthData, error) {
	var list []ds.HealthData
	err := r.db.Where("user_id = ?", userID).
		Order("record_date DESC, id DESC").
		Find(&list).Error
	return list, err
}

func (r *Repository) ListHealthDataTrend(userID uint, dataType string, from, to time.Time) ([]ds.HealthData, error) {
	var list []ds.HealthData
	err := r.db.Where("user_id = ? AND data_type = ? AND record_date BETWEEN ? AND ?",
		userID, dataType, from, to).
		Order("record_date ASC").
		Find(&list).Error
	return list, err
}

func (r *Repository) ListHealthDataByDate(userID uint, date time.Time) ([]ds.HealthData, error) {
	var list []ds.HealthData
	err := r.db.Where("user_id = ? AND record_date = ?", userID, date).
		Find(&list).Error
	return list, err
}

func (r *Repository) ListHealthDataHistory(userID uint, dataType string, limit int) ([]ds.HealthData, error) {
	var list []ds.HealthData
	err := r.db.Where("user_id = ? AND data_type = ?", userID, dataType).
		Order("record_date DESC, id DESC").
		Limit(limit).
		Find(&list).Error
	return list, err
}

func (r *Repository) DeleteHealthData(id uint) error {
	return r.db.Delete(&ds.HealthData{}, id).Error
}
