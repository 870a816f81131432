package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"chukchukgo-backend/models"
	"chukchukgo-backend/services"
	"chukchukgo-backend/utils"
)

type PassengerPayload struct {
	Name       string `json:"name" binding:"required"`
	Age        int    `json:"age" binding:"required"`
	Gender     string `json:"gender" binding:"required"`
	SeatNumber string `json:"seatNumber"`
	Berth      string `json:"berth"`
	Concession string `json:"concession"`
	IDType     string `json:"idType"`
	IDNumber   string `json:"idNumber"`
}

type CreateBookingPayload struct {
	UserID        uint               `json:"userId" binding:"required"`
	TrainID       uint               `json:"trainId" binding:"required"`
	JourneyDate   string             `json:"journeyDate" binding:"required"`
	FromStationID uint               `json:"fromStationId" binding:"required"`
	ToStationID   uint               `json:"toStationId" binding:"required"`
	ClassType     string             `json:"classType" binding:"required"`
	Quota         string             `json:"quota"`
	TotalFare     int                `json:"totalFare" binding:"required"`
	PaymentMethod string             `json:"paymentMethod"`
	PaymentID     string             `json:"paymentId"`
	Passengers    []PassengerPayload `json:"passengers" binding:"required"`
}

type BookingController struct {
	BookingSvc *services.BookingService
}

func NewBookingController(svc *services.BookingService) *BookingController {
	return &BookingController{BookingSvc: svc}
}

// Create handles POST /api/bookings
func (ctrl *BookingController) Create(c *gin.Context) {
	var payload CreateBookingPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Missing required fields")
		return
	}

	journeyDate, err := time.Parse("2006-01-02", payload.JourneyDate)
	if err != nil {
		if journeyDate, err = time.Parse(time.RFC3339, payload.JourneyDate); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid journey date format")
			return
		}
	}

	passengers := make([]models.Passenger, 0, len(payload.Passengers))
	for _, p := range payload.Passengers {
		passengers = append(passengers, models.Passenger{
			Name:       p.Name,
			Age:        p.Age,
			Gender:     p.Gender,
			SeatNumber: p.SeatNumber,
			Berth:      p.Berth,
			Concession: p.Concession,
			IDType:     p.IDType,
			IDNumber:   p.IDNumber,
		})
	}

	booking, err := ctrl.BookingSvc.CreateBooking(services.CreateBookingInput{
		UserID:        payload.UserID,
		TrainID:       payload.TrainID,
		JourneyDate:   journeyDate,
		FromStationID: payload.FromStationID,
		ToStationID:   payload.ToStationID,
		Class:         models.TrainClassCode(payload.ClassType),
		Quota:         models.QuotaCode(payload.Quota),
		TotalFare:     payload.TotalFare,
		PaymentMethod: payload.PaymentMethod,
		PaymentID:     payload.PaymentID,
		Passengers:    passengers,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrPassengerCount):
			utils.JSONError(c, http.StatusBadRequest, "A booking must have between 1 and 6 passengers")
		case errors.Is(err, services.ErrIDProofRequired):
			utils.JSONError(c, http.StatusBadRequest, "ID proof is required for concession passengers")
		case errors.Is(err, services.ErrClassNotOffered):
			utils.JSONError(c, http.StatusBadRequest, "Selected class is not offered on this train")
		case errors.Is(err, services.ErrNotEnoughSeats):
			utils.JSONError(c, http.StatusConflict, "Not enough seats available")
		default:
			log.Printf("booking create error: %v", err)
			utils.JSONError(c, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.JSONSuccess(c, http.StatusCreated, gin.H{"pnr": booking.PNR})
}

// GetByPNR handles GET /api/pnr/:pnr
func (ctrl *BookingController) GetByPNR(c *gin.Context) {
	pnr := c.Param("pnr")
	if !utils.IsValidPNR(pnr) {
		utils.JSONError(c, http.StatusBadRequest, "Invalid PNR")
		return
	}

	view, err := ctrl.BookingSvc.GetBookingByPNR(pnr)
	if err != nil {
		if errors.Is(err, services.ErrBookingNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Booking not found")
			return
		}
		log.Printf("pnr lookup error: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.JSONSuccess(c, http.StatusOK, view)
}

// Cancel handles POST /api/bookings/:pnr/cancel
func (ctrl *BookingController) Cancel(c *gin.Context) {
	pnr := c.Param("pnr")
	if !utils.IsValidPNR(pnr) {
		utils.JSONError(c, http.StatusBadRequest, "Invalid PNR")
		return
	}

	cancelled, err := ctrl.BookingSvc.CancelBooking(pnr)
	if err != nil {
		log.Printf("cancel error for pnr %s: %v", pnr, err)
		utils.JSONError(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	if !cancelled {
		utils.JSONError(c, http.StatusNotFound, "Booking not found or already cancelled")
		return
	}

	utils.JSONMessage(c, http.StatusOK, "Booking cancelled successfully")
}

// ListForUser handles GET /api/users/:id/bookings
func (ctrl *BookingController) ListForUser(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid user id")
		return
	}

	views, err := ctrl.BookingSvc.ListBookingsForUser(uint(id))
	if err != nil {
		log.Printf("booking history error for user %d: %v", id, err)
		utils.JSONError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.JSONSuccess(c, http.StatusOK, views)
}
