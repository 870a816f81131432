package services

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"chukchukgo-backend/config"
	"chukchukgo-backend/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// In-memory sqlite is per-connection; keep the pool at one.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, config.Migrate(db))
	return db
}

type catalog struct {
	User    models.User
	NDLS    models.Station
	MAS     models.Station
	Train   models.Train
	Class3A models.TrainClass
}

// seedCatalog creates a user, two stations, and train 12301 (NDLS -> MAS,
// runs daily) offering class 3A with 24 seats at base fare 1960.
func seedCatalog(t *testing.T, db *gorm.DB) catalog {
	t.Helper()

	c := catalog{
		User: models.User{
			Username: "ravi", Password: "secret", Email: "ravi@example.com",
			FullName: "Ravi Kumar", Phone: "9876543210",
		},
		NDLS: models.Station{Code: "NDLS", Name: "New Delhi", City: "Delhi", State: "Delhi", Zone: "NR"},
		MAS:  models.Station{Code: "MAS", Name: "Chennai Central", City: "Chennai", State: "Tamil Nadu", Zone: "SR"},
	}
	require.NoError(t, db.Create(&c.User).Error)
	require.NoError(t, db.Create(&c.NDLS).Error)
	require.NoError(t, db.Create(&c.MAS).Error)

	c.Train = models.Train{
		Number: "12301", Name: "Howrah Rajdhani",
		FromStationID: c.NDLS.ID, ToStationID: c.MAS.ID,
		DepartureTime: "16:55", ArrivalTime: "09:55", Duration: "17h 0m",
		Distance: 1451,
		RunsOn:   []byte(`["Mon","Tue","Wed","Thu","Fri","Sat","Sun"]`),
		Status:   models.TrainOnTime,
	}
	require.NoError(t, db.Create(&c.Train).Error)

	c.Class3A = models.TrainClass{
		TrainID: c.Train.ID, Class: models.ClassAC3Tier, BaseFare: 1960, TotalSeats: 24,
	}
	require.NoError(t, db.Create(&c.Class3A).Error)

	return c
}

func seedAvailability(t *testing.T, db *gorm.DB, trainID uint, class models.TrainClassCode, date time.Time, seats, fare int) models.Availability {
	t.Helper()
	avail := models.Availability{
		TrainID:        trainID,
		Class:          class,
		JourneyDate:    NormalizeDate(date),
		AvailableSeats: seats,
		Fare:           fare,
	}
	require.NoError(t, db.Create(&avail).Error)
	return avail
}

func availableSeats(t *testing.T, db *gorm.DB, trainID uint, class models.TrainClassCode, date time.Time) int {
	t.Helper()
	var avail models.Availability
	require.NoError(t, db.
		Where("train_id = ? AND class = ? AND journey_date = ?", trainID, class, NormalizeDate(date)).
		First(&avail).Error)
	return avail.AvailableSeats
}

func somePassengers(n int) []models.Passenger {
	names := []string{"Asha", "Vikram", "Meera", "Arjun", "Priya", "Rahul", "Divya"}
	out := make([]models.Passenger, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, models.Passenger{
			Name:   names[i%len(names)],
			Age:    25 + i,
			Gender: "F",
		})
	}
	return out
}
