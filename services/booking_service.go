package services

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"gorm.io/gorm"

	"chukchukgo-backend/models"
	"chukchukgo-backend/utils"
)

type BookingService struct {
	DB *gorm.DB
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{DB: db}
}

// CreateBookingInput carries everything needed to create a booking. Payment
// is already settled (or simulated) by the time this is called; the service
// only records the reference.
type CreateBookingInput struct {
	UserID        uint
	TrainID       uint
	JourneyDate   time.Time
	FromStationID uint
	ToStationID   uint
	Class         models.TrainClassCode
	Quota         models.QuotaCode
	TotalFare     int
	PaymentMethod string
	PaymentID     string
	Passengers    []models.Passenger
}

// TrainSummary identifies a train inside a booking view.
type TrainSummary struct {
	Number string `json:"number"`
	Name   string `json:"name"`
}

// PassengerView mirrors the booking status: no per-passenger status exists
// in the model.
type PassengerView struct {
	Name   string `json:"name"`
	Age    int    `json:"age"`
	Gender string `json:"gender"`
	Seat   string `json:"seat,omitempty"`
	Berth  string `json:"berth,omitempty"`
	Status string `json:"status"`
}

// BookingView is the denormalized PNR-enquiry response.
type BookingView struct {
	PNR        string                `json:"pnr"`
	Train      TrainSummary          `json:"train"`
	Date       string                `json:"date"`
	From       string                `json:"from"`
	To         string                `json:"to"`
	Class      models.TrainClassCode `json:"class"`
	Quota      models.QuotaCode      `json:"quota"`
	Fare       int                   `json:"fare"`
	Status     string                `json:"status"`
	Passengers []PassengerView       `json:"passengers"`
}

const maxPNRAttempts = 5

// CreateBooking creates a CONFIRMED booking with its passengers and
// decrements the availability ledger, all in one transaction. The decrement
// is conditional on sufficient seats, so the ledger can never go negative;
// insufficient seats fail the whole booking with ErrNotEnoughSeats.
//
// PNR collisions are a birthday-bound event over ~9e9 candidates, but they
// must not fail the caller: the whole transaction is retried with a fresh
// PNR when the unique constraint rejects one.
func (s *BookingService) CreateBooking(in CreateBookingInput) (*models.Booking, error) {
	if len(in.Passengers) < 1 || len(in.Passengers) > 6 {
		return nil, ErrPassengerCount
	}
	for _, p := range in.Passengers {
		concession := strings.ToLower(strings.TrimSpace(p.Concession))
		if concession != "" && concession != "none" && strings.TrimSpace(p.IDNumber) == "" {
			return nil, ErrIDProofRequired
		}
	}
	if in.Quota == "" {
		in.Quota = models.QuotaGeneral
	}

	journeyDate := NormalizeDate(in.JourneyDate)

	var booking models.Booking
	var lastErr error
	for attempt := 0; attempt < maxPNRAttempts; attempt++ {
		booking = models.Booking{
			PNR:           utils.GeneratePNR(),
			UserID:        in.UserID,
			TrainID:       in.TrainID,
			JourneyDate:   journeyDate,
			FromStationID: in.FromStationID,
			ToStationID:   in.ToStationID,
			Class:         in.Class,
			Quota:         in.Quota,
			TotalFare:     in.TotalFare,
			Status:        models.BookingConfirmed,
			PaymentID:     in.PaymentID,
			PaymentMethod: in.PaymentMethod,
		}

		lastErr = s.DB.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&booking).Error; err != nil {
				return err
			}

			for i := range in.Passengers {
				in.Passengers[i].ID = 0
				in.Passengers[i].BookingID = booking.ID
				if err := tx.Create(&in.Passengers[i]).Error; err != nil {
					return err
				}
			}

			return s.debitLedger(tx, in.TrainID, in.Class, journeyDate, len(in.Passengers))
		})
		if lastErr == nil {
			booking.Passengers = in.Passengers
			return &booking, nil
		}
		if isDuplicateKey(lastErr) && strings.Contains(strings.ToLower(lastErr.Error()), "pnr") {
			log.Printf("pnr collision on attempt %d, regenerating", attempt+1)
			continue
		}
		return nil, lastErr
	}
	return nil, fmt.Errorf("failed to allocate a unique pnr after %d attempts: %w", maxPNRAttempts, lastErr)
}

// debitLedger subtracts seats from the (train, class, date) availability row.
// A missing row is created on the spot from the class's base seat count and
// fare, then debited like any other. The UPDATE carries the sufficiency check
// so concurrent bookings cannot jointly oversell the row.
func (s *BookingService) debitLedger(tx *gorm.DB, trainID uint, class models.TrainClassCode, journeyDate time.Time, seats int) error {
	var avail models.Availability
	err := tx.
		Where("train_id = ? AND class = ? AND journey_date = ?", trainID, class, journeyDate).
		First(&avail).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		avail, err = s.ensureLedgerRow(tx, trainID, class, journeyDate)
		if err != nil {
			return err
		}
	} else if err != nil {
		return fmt.Errorf("failed to read availability: %w", err)
	}

	res := tx.Model(&models.Availability{}).
		Where("id = ? AND available_seats >= ?", avail.ID, seats).
		UpdateColumn("available_seats", gorm.Expr("available_seats - ?", seats))
	if res.Error != nil {
		return fmt.Errorf("failed to debit availability: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotEnoughSeats
	}
	return nil
}

// ensureLedgerRow creates the (train, class, date) availability row from the
// class's base seat count and fare. Two bookings for a fresh tuple can both
// miss the read and race to the insert; the loser hits the composite unique
// index and re-reads the winner's row instead of failing the booking.
func (s *BookingService) ensureLedgerRow(tx *gorm.DB, trainID uint, class models.TrainClassCode, journeyDate time.Time) (models.Availability, error) {
	var tc models.TrainClass
	if err := tx.Where("train_id = ? AND class = ?", trainID, class).First(&tc).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Availability{}, ErrClassNotOffered
		}
		return models.Availability{}, fmt.Errorf("failed to load train class: %w", err)
	}

	avail := models.Availability{
		TrainID:        trainID,
		Class:          class,
		JourneyDate:    journeyDate,
		AvailableSeats: tc.TotalSeats,
		Fare:           tc.BaseFare,
	}
	if err := tx.Create(&avail).Error; err != nil {
		if !isDuplicateKey(err) {
			return models.Availability{}, fmt.Errorf("failed to create availability row: %w", err)
		}
		if err := tx.
			Where("train_id = ? AND class = ? AND journey_date = ?", trainID, class, journeyDate).
			First(&avail).Error; err != nil {
			return models.Availability{}, fmt.Errorf("failed to re-read availability row: %w", err)
		}
	}
	return avail, nil
}

// CancelBooking flips a CONFIRMED booking to CANCELLED and credits its seats
// back to the ledger. Returns false when the PNR is unknown or the booking is
// already cancelled; a second cancel never double-credits.
func (s *BookingService) CancelBooking(pnr string) (bool, error) {
	cancelled := false
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var booking models.Booking
		if err := tx.Where("pnr = ?", pnr).First(&booking).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return fmt.Errorf("failed to look up booking: %w", err)
		}
		if booking.Status == models.BookingCancelled {
			return nil
		}

		var seats int64
		if err := tx.Model(&models.Passenger{}).
			Where("booking_id = ?", booking.ID).
			Count(&seats).Error; err != nil {
			return fmt.Errorf("failed to count passengers: %w", err)
		}

		if err := tx.Model(&booking).Update("status", models.BookingCancelled).Error; err != nil {
			return fmt.Errorf("failed to update booking status: %w", err)
		}

		res := tx.Model(&models.Availability{}).
			Where("train_id = ? AND class = ? AND journey_date = ?",
				booking.TrainID, booking.Class, booking.JourneyDate).
			UpdateColumn("available_seats", gorm.Expr("available_seats + ?", seats))
		if res.Error != nil {
			return fmt.Errorf("failed to credit availability: %w", res.Error)
		}
		// No ledger row means nothing to credit; the cancellation still
		// stands.

		cancelled = true
		return nil
	})
	return cancelled, err
}

// GetBookingByPNR builds the denormalized PNR-enquiry view.
func (s *BookingService) GetBookingByPNR(pnr string) (*BookingView, error) {
	var booking models.Booking
	err := s.DB.
		Preload("Train").
		Preload("FromStation").
		Preload("ToStation").
		Preload("Passengers").
		Where("pnr = ?", pnr).
		First(&booking).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to load booking: %w", err)
	}

	view := &BookingView{
		PNR:    booking.PNR,
		Train:  TrainSummary{Number: booking.Train.Number, Name: booking.Train.Name},
		Date:   booking.JourneyDate.Format("2006-01-02"),
		From:   booking.FromStation.Code,
		To:     booking.ToStation.Code,
		Class:  booking.Class,
		Quota:  booking.Quota,
		Fare:   booking.TotalFare,
		Status: booking.Status,
	}
	for _, p := range booking.Passengers {
		view.Passengers = append(view.Passengers, PassengerView{
			Name:   p.Name,
			Age:    p.Age,
			Gender: p.Gender,
			Seat:   p.SeatNumber,
			Berth:  p.Berth,
			Status: booking.Status,
		})
	}
	return view, nil
}

// ListBookingsForUser returns a user's booking history, newest first.
func (s *BookingService) ListBookingsForUser(userID uint) ([]BookingView, error) {
	var bookings []models.Booking
	if err := s.DB.
		Preload("Train").
		Preload("FromStation").
		Preload("ToStation").
		Preload("Passengers").
		Where("user_id = ?", userID).
		Order("booking_date DESC").
		Find(&bookings).Error; err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}

	views := make([]BookingView, 0, len(bookings))
	for _, booking := range bookings {
		view := BookingView{
			PNR:    booking.PNR,
			Train:  TrainSummary{Number: booking.Train.Number, Name: booking.Train.Name},
			Date:   booking.JourneyDate.Format("2006-01-02"),
			From:   booking.FromStation.Code,
			To:     booking.ToStation.Code,
			Class:  booking.Class,
			Quota:  booking.Quota,
			Fare:   booking.TotalFare,
			Status: booking.Status,
		}
		for _, p := range booking.Passengers {
			view.Passengers = append(view.Passengers, PassengerView{
				Name:   p.Name,
				Age:    p.Age,
				Gender: p.Gender,
				Seat:   p.SeatNumber,
				Berth:  p.Berth,
				Status: booking.Status,
			})
		}
		views = append(views, view)
	}
	return views, nil
}
