package repository

import (
	"errors"

	"github.com/lucian886/healthManagement/internal/app/ds"

	"gorm.io/gorm"
)

// GetProfile returns nil, nil when the user has no profile row yet.
func (r *Repository) GetProfile(userID uint) (*ds.UserProfile, error) {
	var p ds.UserProfile
	err := r.db.Where("user_id = ?", userID).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *Repository) CreateProfile(p *ds.UserProfile) error {
	return r.db.Create(p).Error
}

func (r *Repository) SaveProfile(p *ds.UserProfile) error {
	return r.db.Save(p).Error
}
