package main

import (
	"github.com/lucian886/healthManagement/internal/app/ds"
	"github.com/lucian886/healthManagement/internal/app/dsn"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	_ = godotenv.Load()
	db, err := gorm.Open(postgres.Open(dsn.FromEnv()), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}

	// Migrate the schema
	err = db.AutoMigrate(
		&ds.User{},
		&ds.UserProfile{},
		&ds.HealthData{},
		&ds.LifeRecord{},
		&ds.MedicalRecord{},
		&ds.MedicalRecordImage{},
		&ds.MedicationRecord{},
		&ds.HealthReminder{},
		&ds.ChatHistory{},
	)
	if err != nil {
		panic("cant migrate db")
	}
}
