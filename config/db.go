package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"gorm.io/datatypes"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"chukchukgo-backend/models"
)

var DB *gorm.DB

func envOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

func mysqlDSNFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	user := u.User.Username()
	pass, _ := u.User.Password()
	host := u.Hostname()
	port := u.Port()
	if port == "" {
		port = "3306"
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", fmt.Errorf("mysql url missing database name")
	}

	q := u.Query()
	if q.Get("charset") == "" {
		q.Set("charset", "utf8mb4")
	}
	if q.Get("parseTime") == "" {
		q.Set("parseTime", "True")
	}
	if q.Get("loc") == "" {
		q.Set("loc", "UTC")
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", user, pass, host, port, dbName, q.Encode()), nil
}

func resolveMySQLDSN() (string, error) {
	raw := strings.TrimSpace(os.Getenv("MYSQL_URL"))
	if raw == "" {
		raw = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	}

	if raw != "" {
		if strings.HasPrefix(raw, "mysql://") {
			return mysqlDSNFromURL(raw)
		}
		return raw, nil
	}

	user := envOrDefault("DB_USER", "root")
	pass := envOrDefault("DB_PASS", "")
	host := envOrDefault("DB_HOST", "127.0.0.1")
	port := envOrDefault("DB_PORT", "3306")
	dbName := envOrDefault("DB_NAME", "chukchukgo_db")

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
		user, pass, host, port, dbName,
	), nil
}

// Migrate applies the schema in parent->child order. Shared with the test
// suite, which runs it against its own database handle.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Station{},
		&models.Train{},
		&models.TrainStop{},
		&models.TrainClass{},
		&models.Availability{},
		&models.Booking{},
		&models.Passenger{},
		&models.FoodOrder{},
		&models.FoodOrderItem{},
	)
}

func ConnectDatabase() error {
	dsn, err := resolveMySQLDSN()
	if err != nil {
		return err
	}

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: time.Second,
			LogLevel:      logger.Warn,
			Colorful:      true,
		},
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{Logger: newLogger})
	if err != nil {
		return err
	}

	DB = db

	if err := Migrate(DB); err != nil {
		return err
	}

	SeedDatabase(DB)
	return nil
}

func runsOn(days ...string) datatypes.JSON {
	out := "["
	for i, d := range days {
		if i > 0 {
			out += ","
		}
		out += `"` + d + `"`
	}
	out += "]"
	return datatypes.JSON(out)
}

var daily = runsOn("Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun")

// SeedDatabase loads the reference catalog once: stations, trains, stops,
// classes, and an availability window for the next two weeks. Booking and
// cancellation mutate availability from there.
func SeedDatabase(db *gorm.DB) {
	var stationCount int64
	db.Model(&models.Station{}).Count(&stationCount)
	if stationCount > 0 {
		log.Println("catalog already seeded")
		return
	}

	stations := []models.Station{
		{Code: "NDLS", Name: "New Delhi", City: "Delhi", State: "Delhi", Zone: "NR"},
		{Code: "HWH", Name: "Howrah Junction", City: "Kolkata", State: "West Bengal", Zone: "ER"},
		{Code: "MAS", Name: "Chennai Central", City: "Chennai", State: "Tamil Nadu", Zone: "SR"},
		{Code: "BCT", Name: "Mumbai Central", City: "Mumbai", State: "Maharashtra", Zone: "WR"},
		{Code: "SBC", Name: "KSR Bengaluru", City: "Bengaluru", State: "Karnataka", Zone: "SWR"},
		{Code: "BPL", Name: "Bhopal Junction", City: "Bhopal", State: "Madhya Pradesh", Zone: "WCR"},
		{Code: "NGP", Name: "Nagpur Junction", City: "Nagpur", State: "Maharashtra", Zone: "CR"},
		{Code: "BZA", Name: "Vijayawada Junction", City: "Vijayawada", State: "Andhra Pradesh", Zone: "SCR"},
	}
	if err := db.Create(&stations).Error; err != nil {
		log.Printf("warning: failed to seed stations: %v", err)
		return
	}
	byCode := make(map[string]uint, len(stations))
	for _, s := range stations {
		byCode[s.Code] = s.ID
	}

	trains := []models.Train{
		{
			Number: "12301", Name: "Howrah Rajdhani",
			FromStationID: byCode["NDLS"], ToStationID: byCode["HWH"],
			DepartureTime: "16:55", ArrivalTime: "09:55", Duration: "17h 0m",
			Distance: 1451, RunsOn: daily, Status: models.TrainOnTime,
		},
		{
			Number: "12951", Name: "Mumbai Rajdhani",
			FromStationID: byCode["BCT"], ToStationID: byCode["NDLS"],
			DepartureTime: "17:00", ArrivalTime: "08:32", Duration: "15h 32m",
			Distance: 1386, RunsOn: daily, Status: models.TrainOnTime,
		},
		{
			Number: "12622", Name: "Tamil Nadu Express",
			FromStationID: byCode["NDLS"], ToStationID: byCode["MAS"],
			DepartureTime: "22:30", ArrivalTime: "07:05", Duration: "32h 35m",
			Distance: 2180, RunsOn: daily, Status: models.TrainOnTime,
		},
		{
			Number: "12628", Name: "Karnataka Express",
			FromStationID: byCode["NDLS"], ToStationID: byCode["SBC"],
			DepartureTime: "21:15", ArrivalTime: "13:40", Duration: "40h 25m",
			Distance: 2444, RunsOn: runsOn("Mon", "Wed", "Fri", "Sun"), Status: models.TrainOnTime,
		},
	}
	if err := db.Create(&trains).Error; err != nil {
		log.Printf("warning: failed to seed trains: %v", err)
		return
	}
	byNumber := make(map[string]uint, len(trains))
	for _, t := range trains {
		byNumber[t.Number] = t.ID
	}

	stops := []models.TrainStop{
		{TrainID: byNumber["12622"], StationID: byCode["NDLS"], StopNumber: 1, DepartureTime: "22:30", Distance: 0, DayCount: 1},
		{TrainID: byNumber["12622"], StationID: byCode["BPL"], StopNumber: 2, ArrivalTime: "06:55", DepartureTime: "07:00", HaltTime: 5, Distance: 702, DayCount: 2},
		{TrainID: byNumber["12622"], StationID: byCode["NGP"], StopNumber: 3, ArrivalTime: "12:15", DepartureTime: "12:25", HaltTime: 10, Distance: 1092, DayCount: 2},
		{TrainID: byNumber["12622"], StationID: byCode["BZA"], StopNumber: 4, ArrivalTime: "21:40", DepartureTime: "21:50", HaltTime: 10, Distance: 1749, DayCount: 2},
		{TrainID: byNumber["12622"], StationID: byCode["MAS"], StopNumber: 5, ArrivalTime: "07:05", Distance: 2180, DayCount: 3},
	}
	if err := db.Create(&stops).Error; err != nil {
		log.Printf("warning: failed to seed train stops: %v", err)
	}

	classes := []models.TrainClass{
		{TrainID: byNumber["12301"], Class: models.ClassAC1st, BaseFare: 4755, TotalSeats: 24},
		{TrainID: byNumber["12301"], Class: models.ClassAC2Tier, BaseFare: 2825, TotalSeats: 52},
		{TrainID: byNumber["12301"], Class: models.ClassAC3Tier, BaseFare: 1960, TotalSeats: 128},
		{TrainID: byNumber["12951"], Class: models.ClassAC1st, BaseFare: 4905, TotalSeats: 24},
		{TrainID: byNumber["12951"], Class: models.ClassAC2Tier, BaseFare: 2930, TotalSeats: 52},
		{TrainID: byNumber["12951"], Class: models.ClassAC3Tier, BaseFare: 2040, TotalSeats: 128},
		{TrainID: byNumber["12622"], Class: models.ClassSleeper, BaseFare: 790, TotalSeats: 360},
		{TrainID: byNumber["12622"], Class: models.ClassAC3Tier, BaseFare: 2080, TotalSeats: 128},
		{TrainID: byNumber["12622"], Class: models.ClassAC2Tier, BaseFare: 3045, TotalSeats: 52},
		{TrainID: byNumber["12628"], Class: models.ClassSleeper, BaseFare: 855, TotalSeats: 360},
		{TrainID: byNumber["12628"], Class: models.ClassAC3Tier, BaseFare: 2255, TotalSeats: 128},
	}
	if err := db.Create(&classes).Error; err != nil {
		log.Printf("warning: failed to seed train classes: %v", err)
		return
	}

	// Availability window: each class at full capacity and base fare for the
	// next 14 days.
	today := time.Now().UTC()
	today = time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	var window []models.Availability
	for day := 0; day < 14; day++ {
		date := today.AddDate(0, 0, day)
		for _, tc := range classes {
			window = append(window, models.Availability{
				TrainID:        tc.TrainID,
				Class:          tc.Class,
				JourneyDate:    date,
				AvailableSeats: tc.TotalSeats,
				Fare:           tc.BaseFare,
			})
		}
	}
	if err := db.Create(&window).Error; err != nil {
		log.Printf("warning: failed to seed availability: %v", err)
		return
	}

	log.Println("catalog seeded")
}
