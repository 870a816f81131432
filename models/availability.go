package models

import "time"

// Availability is the seat ledger for one (train, class, journey date).
// It is the only shared mutable row in the schema: bookings decrement it and
// cancellations restore it inside their transactions. The composite unique
// index keeps the ledger to one row per tuple.
type Availability struct {
	ID uint `gorm:"primaryKey" json:"id"`

	TrainID     uint           `gorm:"column:train_id;not null;index:idx_avail_tuple,unique" json:"trainId"`
	Class       TrainClassCode `gorm:"column:class;size:5;not null;index:idx_avail_tuple,unique" json:"class"`
	JourneyDate time.Time      `gorm:"column:journey_date;not null;index:idx_avail_tuple,unique" json:"journeyDate"`

	AvailableSeats int `gorm:"column:available_seats;not null" json:"availableSeats"`
	WaitingList    int `gorm:"column:waiting_list;default:0" json:"waitingList"`
	Fare           int `gorm:"column:fare;not null" json:"fare"`
}

func (Availability) TableName() string { return "availability" }
