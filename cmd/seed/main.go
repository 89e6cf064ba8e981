package main

import (
	"flag"
	"fmt"
	"time"

	"dental-clinic-booking/config"
	"dental-clinic-booking/internal/domain/entity"
	"dental-clinic-booking/internal/infrastructure/database"
	"dental-clinic-booking/internal/repository"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var seedServices = []string{
	"Dental Cleaning",
	"Dental Check-up",
	"Root Canal",
	"Teeth Whitening",
	"Dental Filling",
	"Braces",
}

var seedStatuses = []string{
	string(entity.AppointmentStatusConfirmed),
	string(entity.AppointmentStatusPending),
	string(entity.AppointmentStatusCanceled),
}

func main() {
	fake := flag.Int("fake", 0, "number of random appointments to add after the board rows")
	from := flag.String("from", "2025-04-01", "first date for random appointments (YYYY-MM-DD)")
	to := flag.String("to", "2025-04-30", "last date for random appointments (YYYY-MM-DD)")
	flag.Parse()

	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	logrus.Info("seed starting")

	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("load config: %v", err)
	}
	if !cfg.DB.Enabled() {
		logrus.Fatal("DB_HOST is required")
	}

	start, err := entity.ParseDate(*from)
	if err != nil {
		logrus.Fatalf("invalid -from: %v", err)
	}
	end, err := entity.ParseDate(*to)
	if err != nil {
		logrus.Fatalf("invalid -to: %v", err)
	}
	if end.Before(start) {
		logrus.Fatal("-to must not be before -from")
	}

	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		logrus.Fatalf("connect postgres: %v", err)
	}
	if err := database.RunMigrations(db); err != nil {
		logrus.Fatalf("run migrations: %v", err)
	}

	if err := seedBoard(db); err != nil {
		logrus.Fatalf("seed board: %v", err)
	}
	if *fake > 0 {
		if err := seedRandom(db, *fake, start, end); err != nil {
			logrus.Fatalf("seed random appointments: %v", err)
		}
	}

	logrus.Info("seed complete")
}

// seedBoard inserts the fixed board rows into an empty table
func seedBoard(db *gorm.DB) error {
	var count int64
	if err := db.Model(&entity.Appointment{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		logrus.Infof("admin_appointments already has %d rows, skipping board rows", count)
		return nil
	}

	rows := repository.MockAppointments()
	for i := range rows {
		rows[i].ID = 0
	}
	if err := db.Create(&rows).Error; err != nil {
		return err
	}

	logrus.Infof("board rows seeded: %d", len(rows))
	return nil
}

func seedRandom(db *gorm.DB, count int, start, end time.Time) error {
	logrus.Infof("seeding %d random appointments", count)

	const batchSize = 500

	gofakeit.Seed(time.Now().UnixNano())
	days := int(end.Sub(start).Hours()/24) + 1

	rows := make([]entity.Appointment, 0, count)
	for i := 0; i < count; i++ {
		date := start.AddDate(0, 0, gofakeit.Number(0, days-1))
		// Half-hour starts from 09:00 to 16:30
		slot := time.Date(2000, 1, 1, 9, 0, 0, 0, time.UTC).Add(time.Duration(gofakeit.Number(0, 15)) * 30 * time.Minute)

		rows = append(rows, entity.Appointment{
			PatientName: gofakeit.Name(),
			Date:        date.Format(entity.DateLayout),
			Time:        slot.Format("03:04 PM"),
			Service:     gofakeit.RandomString(seedServices),
			Status:      entity.AppointmentStatus(gofakeit.RandomString(seedStatuses)),
		})
	}

	if err := db.CreateInBatches(&rows, batchSize).Error; err != nil {
		return fmt.Errorf("insert appointments: %w", err)
	}

	logrus.Infof("random appointments seeded: %d", len(rows))
	return nil
}
