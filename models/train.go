package models

import (
	"gorm.io/datatypes"
)

type Train struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Number string `gorm:"column:number;size:10;uniqueIndex;not null" json:"number"`
	Name   string `gorm:"column:name;size:100;not null" json:"name"`

	FromStationID uint `gorm:"column:from_station_id;not null;index" json:"fromStationId"`
	ToStationID   uint `gorm:"column:to_station_id;not null;index" json:"toStationId"`

	// Time-of-day strings in "HH:MM"; the schedule feed delivers them
	// pre-formatted and nothing in the booking flow does arithmetic on them.
	DepartureTime string `gorm:"column:departure_time;size:5;not null" json:"departureTime"`
	ArrivalTime   string `gorm:"column:arrival_time;size:5;not null" json:"arrivalTime"`
	Duration      string `gorm:"column:duration;size:10;not null" json:"duration"`
	Distance      int    `gorm:"column:distance;not null" json:"distance"`

	// JSON array of weekday abbreviations, e.g. ["Mon","Wed","Sat"].
	RunsOn datatypes.JSON `gorm:"column:runs_on;not null" json:"runsOn"`

	Status string `gorm:"column:status;size:20;default:ON_TIME;not null" json:"status"`

	FromStation Station      `gorm:"foreignKey:FromStationID" json:"-"`
	ToStation   Station      `gorm:"foreignKey:ToStationID" json:"-"`
	Stops       []TrainStop  `gorm:"foreignKey:TrainID" json:"-"`
	Classes     []TrainClass `gorm:"foreignKey:TrainID" json:"-"`
}

type TrainStop struct {
	ID uint `gorm:"primaryKey" json:"id"`

	TrainID   uint `gorm:"column:train_id;not null;index" json:"trainId"`
	StationID uint `gorm:"column:station_id;not null" json:"stationId"`

	StopNumber    int    `gorm:"column:stop_number;not null" json:"stopNumber"`
	ArrivalTime   string `gorm:"column:arrival_time;size:5" json:"arrivalTime,omitempty"`
	DepartureTime string `gorm:"column:departure_time;size:5" json:"departureTime,omitempty"`
	HaltTime      int    `gorm:"column:halt_time" json:"haltTime,omitempty"`
	Distance      int    `gorm:"column:distance" json:"distance,omitempty"`
	DayCount      int    `gorm:"column:day_count;default:1" json:"dayCount"`

	Station Station `gorm:"foreignKey:StationID" json:"-"`
}

type TrainClass struct {
	ID uint `gorm:"primaryKey" json:"id"`

	TrainID uint           `gorm:"column:train_id;not null;index:idx_train_class,unique" json:"trainId"`
	Class   TrainClassCode `gorm:"column:class;size:5;not null;index:idx_train_class,unique" json:"class"`

	BaseFare   int `gorm:"column:base_fare;not null" json:"baseFare"`
	TotalSeats int `gorm:"column:total_seats;not null" json:"totalSeats"`
}
