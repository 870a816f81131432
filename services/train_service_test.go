package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chukchukgo-backend/models"
)

func TestSearchTrainsAnnotatesClasses(t *testing.T) {
	db := newTestDB(t)
	c := seedCatalog(t, db)
	date := time.Date(2026, time.September, 10, 0, 0, 0, 0, time.UTC)
	seedAvailability(t, db, c.Train.ID, models.ClassAC3Tier, date, 12, 2150)
	svc := NewTrainService(db)

	results, err := svc.SearchTrains("NDLS", "MAS", date)
	require.NoError(t, err)
	require.Len(t, results, 1)

	train := results[0]
	assert.Equal(t, "12301", train.Number)
	assert.Equal(t, "Howrah Rajdhani", train.Name)
	assert.Equal(t, "NDLS", train.From)
	assert.Equal(t, "MAS", train.To)
	assert.Equal(t, "Delhi", train.FromCity)
	assert.Equal(t, "Chennai", train.ToCity)
	assert.Equal(t, "2026-09-10", train.Date)
	assert.Equal(t, models.TrainOnTime, train.Status)

	require.Len(t, train.Classes, 1)
	assert.Equal(t, models.ClassAC3Tier, train.Classes[0].Type)
	assert.Equal(t, 12, train.Classes[0].Available)
	assert.Equal(t, 2150, train.Classes[0].Fare)
}

func TestSearchTrainsFallsBackToBaseFare(t *testing.T) {
	db := newTestDB(t)
	seedCatalog(t, db)
	svc := NewTrainService(db)

	// No ledger row for the date: the class still shows up, priced at base
	// fare with zero availability.
	results, err := svc.SearchTrains("NDLS", "MAS", time.Date(2026, time.October, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.Len(t, results[0].Classes, 1)
	assert.Equal(t, 1960, results[0].Classes[0].Fare)
	assert.Zero(t, results[0].Classes[0].Available)
	assert.Zero(t, results[0].Classes[0].WaitingList)
}

func TestSearchTrainsUnknownStationIsEmpty(t *testing.T) {
	db := newTestDB(t)
	seedCatalog(t, db)
	svc := NewTrainService(db)

	date := time.Date(2026, time.September, 10, 0, 0, 0, 0, time.UTC)

	results, err := svc.SearchTrains("XXXX", "MAS", date)
	require.NoError(t, err)
	assert.Empty(t, results)

	results, err = svc.SearchTrains("NDLS", "XXXX", date)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestSearchTrainsFiltersByRunningDay(t *testing.T) {
	db := newTestDB(t)
	c := seedCatalog(t, db)
	svc := NewTrainService(db)

	// Restrict the train to a single weekday, then search the following day.
	runDate := time.Date(2026, time.September, 10, 0, 0, 0, 0, time.UTC)
	day := runDate.Weekday().String()[:3]
	require.NoError(t, db.Model(&models.Train{}).
		Where("id = ?", c.Train.ID).
		Update("runs_on", []byte(`["`+day+`"]`)).Error)

	results, err := svc.SearchTrains("NDLS", "MAS", runDate)
	require.NoError(t, err)
	assert.Len(t, results, 1)

	results, err = svc.SearchTrains("NDLS", "MAS", runDate.AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestSearchTrainsAcceptsPastDates(t *testing.T) {
	db := newTestDB(t)
	seedCatalog(t, db)
	svc := NewTrainService(db)

	results, err := svc.SearchTrains("NDLS", "MAS", time.Date(2001, time.March, 5, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Len(t, results, 1)
}

func TestListStations(t *testing.T) {
	db := newTestDB(t)
	seedCatalog(t, db)
	svc := NewTrainService(db)

	stations, err := svc.ListStations()
	require.NoError(t, err)
	require.Len(t, stations, 2)
	// Ordered by name.
	assert.Equal(t, "MAS", stations[0].Code)
	assert.Equal(t, "NDLS", stations[1].Code)
}

func TestGetSchedule(t *testing.T) {
	db := newTestDB(t)
	c := seedCatalog(t, db)
	stops := []models.TrainStop{
		{TrainID: c.Train.ID, StationID: c.MAS.ID, StopNumber: 2, ArrivalTime: "09:55", Distance: 1451, DayCount: 2},
		{TrainID: c.Train.ID, StationID: c.NDLS.ID, StopNumber: 1, DepartureTime: "16:55", Distance: 0, DayCount: 1},
	}
	require.NoError(t, db.Create(&stops).Error)
	svc := NewTrainService(db)

	schedule, err := svc.GetSchedule("12301")
	require.NoError(t, err)
	require.Len(t, schedule, 2)
	assert.Equal(t, "NDLS", schedule[0].StationCode)
	assert.Equal(t, 1, schedule[0].StopNumber)
	assert.Equal(t, "MAS", schedule[1].StationCode)
	assert.Equal(t, "09:55", schedule[1].ArrivalTime)

	_, err = svc.GetSchedule("99999")
	assert.ErrorIs(t, err, ErrTrainNotFound)
}
