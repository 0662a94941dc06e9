package main

import (
	"fmt"
	"log"
	"time"

	"github.com/lucian886/healthManagement/internal/app/ds"
	"github.com/lucian886/healthManagement/internal/app/dsn"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

func main() {
	_ = godotenv.Load()

	db, err := gorm.Open(postgres.Open(dsn.FromEnv()), &gorm.Config{})
	if err != nil {
		log.Fatal("failed to connect database")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("demo123456"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal(err)
	}

	user := ds.User{
		Username: "demo",
		Email:    "demo@example.com",
		Password: string(hash),
		Enabled:  true,
	}
	if err := db.Where("username = ?", user.Username).FirstOrCreate(&user).Error; err != nil {
		log.Fatal(err)
	}
	fmt.Printf("user: %s (id %d)\n", user.Username, user.ID)

	profile := ds.UserProfile{
		UserID:    user.ID,
		RealName:  "Demo User",
		Gender:    "female",
		Height:    floatPtr(168),
		Weight:    floatPtr(58.5),
		BloodType: "O",
	}
	db.Where("user_id = ?", user.ID).FirstOrCreate(&profile)

	today := time.Now()
	measurements := []ds.HealthData{
		{UserID: user.ID, DataType: "weight", Value: floatPtr(58.5), Unit: "kg", RecordDate: today},
		{UserID: user.ID, DataType: "blood_pressure", SystolicPressure: intPtr(118), DiastolicPressure: intPtr(76), Unit: "mmHg", RecordDate: today, RecordTime: "morning"},
		{UserID: user.ID, DataType: "heart_rate", Value: floatPtr(68), Unit: "beats/min", RecordDate: today},
		{UserID: user.ID, DataType: "sleep", Value: floatPtr(7.5), Unit: "hours", RecordDate: today},
	}
	for _, m := range measurements {
		db.Create(&m)
		fmt.Printf("health data: %s\n", m.DataType)
	}

	lifeRecords := []ds.LifeRecord{
		{UserID: user.ID, RecordType: "diet", RecordDate: today, RecordTime: "08:00", MealType: "breakfast", FoodContent: "oatmeal with fruit", Calories: floatPtr(350)},
		{UserID: user.ID, RecordType: "exercise", RecordDate: today, RecordTime: "18:30", ExerciseType: "running", DurationMinutes: intPtr(30), CaloriesBurned: floatPtr(280), Distance: floatPtr(5)},
		{UserID: user.ID, RecordType: "sleep", RecordDate: today, SleepStart: "23:00", SleepEnd: "06:30", SleepDuration: floatPtr(7.5), SleepQuality: "good"},
	}
	for _, r := range lifeRecords {
		db.Create(&r)
		fmt.Printf("life record: %s\n", r.RecordType)
	}

	medication := ds.MedicationRecord{
		UserID:         user.ID,
		MedicationName: "Vitamin D",
		Dosage:         "1000 IU",
		Method:         "oral",
		Frequency:      "once daily",
		TakeTime:       "08:00",
		StartDate:      today,
		Active:         true,
	}
	db.Create(&medication)
	fmt.Printf("medication: %s\n", medication.MedicationName)

	reminder := ds.HealthReminder{
		UserID:       user.ID,
		ReminderType: "water",
		Content:      "Drink a glass of water",
		ReminderTime: "10:00",
		RepeatType:   "daily",
		Enabled:      true,
	}
	db.Create(&reminder)
	fmt.Printf("reminder: %s\n", reminder.Content)

	fmt.Println("\nseed complete")
}
