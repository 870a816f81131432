package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"chukchukgo-backend/models"
)

type TrainService struct {
	DB *gorm.DB
}

func NewTrainService(db *gorm.DB) *TrainService {
	return &TrainService{DB: db}
}

// ClassAvailability annotates one class offered on a train with the fare and
// seat count for a specific journey date.
type ClassAvailability struct {
	Type        models.TrainClassCode `json:"type"`
	Available   int                   `json:"available"`
	Fare        int                   `json:"fare"`
	WaitingList int                   `json:"waitingList"`
}

// TrainResult is one row of a search response.
type TrainResult struct {
	ID            uint                `json:"id"`
	Number        string              `json:"number"`
	Name          string              `json:"name"`
	From          string              `json:"from"`
	To            string              `json:"to"`
	FromCity      string              `json:"fromCity"`
	ToCity        string              `json:"toCity"`
	DepartureTime string              `json:"departureTime"`
	ArrivalTime   string              `json:"arrivalTime"`
	Duration      string              `json:"duration"`
	Distance      int                 `json:"distance"`
	Date          string              `json:"date"`
	RunsOn        []string            `json:"runsOn"`
	Status        string              `json:"status"`
	Classes       []ClassAvailability `json:"classes"`
}

// ScheduleStop is one row of a train's stop listing.
type ScheduleStop struct {
	StopNumber    int    `json:"stopNumber"`
	StationCode   string `json:"stationCode"`
	StationName   string `json:"stationName"`
	ArrivalTime   string `json:"arrivalTime,omitempty"`
	DepartureTime string `json:"departureTime,omitempty"`
	HaltTime      int    `json:"haltTime,omitempty"`
	Distance      int    `json:"distance"`
	DayCount      int    `json:"dayCount"`
}

// NormalizeDate truncates t to midnight UTC. Journey dates are stored and
// compared at day granularity everywhere.
func NormalizeDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func weekdayAbbrev(t time.Time) string {
	return t.Weekday().String()[:3]
}

// SearchTrains returns every train running from one station code to another
// on the weekday of journeyDate, annotated per class with the fare and
// availability for that date. Unknown station codes yield an empty result,
// not an error. Past dates are not rejected.
func (s *TrainService) SearchTrains(fromCode, toCode string, journeyDate time.Time) ([]TrainResult, error) {
	results := []TrainResult{}

	var from, to models.Station
	if err := s.DB.Where("code = ?", fromCode).First(&from).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return results, nil
		}
		return nil, fmt.Errorf("failed to resolve origin station: %w", err)
	}
	if err := s.DB.Where("code = ?", toCode).First(&to).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return results, nil
		}
		return nil, fmt.Errorf("failed to resolve destination station: %w", err)
	}

	var trains []models.Train
	if err := s.DB.
		Preload("Classes").
		Where("from_station_id = ? AND to_station_id = ?", from.ID, to.ID).
		Find(&trains).Error; err != nil {
		return nil, fmt.Errorf("failed to query trains: %w", err)
	}

	date := NormalizeDate(journeyDate)
	day := weekdayAbbrev(date)

	for _, train := range trains {
		var runsOn []string
		if err := json.Unmarshal(train.RunsOn, &runsOn); err != nil {
			return nil, fmt.Errorf("bad runs_on payload for train %s: %w", train.Number, err)
		}
		if !contains(runsOn, day) {
			continue
		}

		var avail []models.Availability
		if err := s.DB.
			Where("train_id = ? AND journey_date = ?", train.ID, date).
			Find(&avail).Error; err != nil {
			return nil, fmt.Errorf("failed to query availability: %w", err)
		}
		byClass := make(map[models.TrainClassCode]models.Availability, len(avail))
		for _, a := range avail {
			byClass[a.Class] = a
		}

		classes := make([]ClassAvailability, 0, len(train.Classes))
		for _, tc := range train.Classes {
			ca := ClassAvailability{Type: tc.Class, Fare: tc.BaseFare}
			if a, ok := byClass[tc.Class]; ok {
				ca.Available = a.AvailableSeats
				ca.Fare = a.Fare
				ca.WaitingList = a.WaitingList
			}
			classes = append(classes, ca)
		}

		results = append(results, TrainResult{
			ID:            train.ID,
			Number:        train.Number,
			Name:          train.Name,
			From:          from.Code,
			To:            to.Code,
			FromCity:      from.City,
			ToCity:        to.City,
			DepartureTime: train.DepartureTime,
			ArrivalTime:   train.ArrivalTime,
			Duration:      train.Duration,
			Distance:      train.Distance,
			Date:          date.Format("2006-01-02"),
			RunsOn:        runsOn,
			Status:        train.Status,
			Classes:       classes,
		})
	}

	return results, nil
}

// ListStations returns the full station catalog, ordered by name. Feeds the
// origin/destination autocomplete on the search form.
func (s *TrainService) ListStations() ([]models.Station, error) {
	var stations []models.Station
	if err := s.DB.Order("name").Find(&stations).Error; err != nil {
		return nil, fmt.Errorf("failed to list stations: %w", err)
	}
	return stations, nil
}

// GetSchedule returns the ordered stop list for a train number.
func (s *TrainService) GetSchedule(trainNumber string) ([]ScheduleStop, error) {
	var train models.Train
	if err := s.DB.Where("number = ?", trainNumber).First(&train).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTrainNotFound
		}
		return nil, fmt.Errorf("failed to look up train: %w", err)
	}

	var stops []models.TrainStop
	if err := s.DB.
		Preload("Station").
		Where("train_id = ?", train.ID).
		Order("stop_number").
		Find(&stops).Error; err != nil {
		return nil, fmt.Errorf("failed to load stops: %w", err)
	}

	schedule := make([]ScheduleStop, 0, len(stops))
	for _, stop := range stops {
		schedule = append(schedule, ScheduleStop{
			StopNumber:    stop.StopNumber,
			StationCode:   stop.Station.Code,
			StationName:   stop.Station.Name,
			ArrivalTime:   stop.ArrivalTime,
			DepartureTime: stop.DepartureTime,
			HaltTime:      stop.HaltTime,
			Distance:      stop.Distance,
			DayCount:      stop.DayCount,
		})
	}
	return schedule, nil
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
