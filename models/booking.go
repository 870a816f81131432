package models

import "time"

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// Public identifier: 10 numeric digits, unique across all bookings ever.
	PNR string `gorm:"column:pnr;size:10;uniqueIndex;not null" json:"pnr"`

	UserID        uint      `gorm:"column:user_id;not null;index" json:"userId"`
	TrainID       uint      `gorm:"column:train_id;not null;index" json:"trainId"`
	JourneyDate   time.Time `gorm:"column:journey_date;not null" json:"journeyDate"`
	FromStationID uint      `gorm:"column:from_station_id;not null" json:"fromStationId"`
	ToStationID   uint      `gorm:"column:to_station_id;not null" json:"toStationId"`

	Class TrainClassCode `gorm:"column:class;size:5;not null" json:"class"`
	Quota QuotaCode      `gorm:"column:quota;size:5;default:GN;not null" json:"quota"`

	BookingDate time.Time `gorm:"column:booking_date;autoCreateTime" json:"bookingDate"`
	TotalFare   int       `gorm:"column:total_fare;not null" json:"totalFare"`
	Status      string    `gorm:"column:status;size:20;default:CONFIRMED;not null" json:"status"`

	PaymentID     string `gorm:"column:payment_id;size:100" json:"paymentId,omitempty"`
	PaymentMethod string `gorm:"column:payment_method;size:20" json:"paymentMethod,omitempty"`

	User        User        `gorm:"foreignKey:UserID" json:"-"`
	Train       Train       `gorm:"foreignKey:TrainID" json:"-"`
	FromStation Station     `gorm:"foreignKey:FromStationID" json:"-"`
	ToStation   Station     `gorm:"foreignKey:ToStationID" json:"-"`
	Passengers  []Passenger `gorm:"foreignKey:BookingID" json:"passengers,omitempty"`
}

// Passenger belongs to exactly one booking and shares its lifetime.
// Cancellation operates on the whole booking, never on single passengers.
type Passenger struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BookingID uint `gorm:"column:booking_id;not null;index" json:"bookingId"`

	Name   string `gorm:"column:name;size:100;not null" json:"name"`
	Age    int    `gorm:"column:age;not null" json:"age"`
	Gender string `gorm:"column:gender;size:1;not null" json:"gender"`

	SeatNumber string `gorm:"column:seat_number;size:10" json:"seatNumber,omitempty"`
	Berth      string `gorm:"column:berth;size:10" json:"berth,omitempty"`

	Concession string `gorm:"column:concession;size:50" json:"concession,omitempty"`
	IDType     string `gorm:"column:id_type;size:20" json:"idType,omitempty"`
	IDNumber   string `gorm:"column:id_number;size:50" json:"idNumber,omitempty"`
}
