package repository

import (
	"github.com/lucian886/healthManagement/internal/app/ds"
)

func (r *Repository) CreateReminder(rem *ds.HealthReminder) error {
	return r.db.Create(rem).Error
}

func (r *Repository) GetReminder(id uint) (*ds.HealthReminder, error) {
	var rem ds.HealthReminder
	if err := r.db.First(&rem, id).Error; err != nil {
		return nil, err
	}
	return &rem, nil
}

func (r *Repository) ListReminders(userID uint) ([]ds.HealthReminder, error) {
	var list []ds.HealthReminder
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&list).Error
	return list, err
}

func (r *Repository) ListActiveReminders(userID uint) ([]ds.HealthReminder, error) {
	var list []ds.HealthReminder
	err := r.db.Where("user_id = ? AND enabled = ?", userID, true).
		Order("reminder_time ASC").
		Find(&list).Error
	return list, err
}

func (r *Repository) SaveReminder(rem *ds.HealthReminder) error {
	return r.db.Save(rem).Error
}

func (r *Repository) DeleteReminder(id uint) error {
	return r.db.Delete(&ds.HealthReminder{}, id).Error
}
