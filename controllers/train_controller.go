package controllers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"chukchukgo-backend/services"
	"chukchukgo-backend/utils"
)

type TrainController struct {
	TrainSvc *services.TrainService
}

func NewTrainController(svc *services.TrainService) *TrainController {
	return &TrainController{TrainSvc: svc}
}

// Search handles GET /api/trains?from=&to=&date=
func (ctrl *TrainController) Search(c *gin.Context) {
	from := c.Query("from")
	to := c.Query("to")
	date := c.Query("date")
	if from == "" || to == "" || date == "" {
		utils.JSONError(c, http.StatusBadRequest, "Missing required parameters")
		return
	}

	journeyDate, err := time.Parse("2006-01-02", date)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid date format, expected YYYY-MM-DD")
		return
	}

	results, err := ctrl.TrainSvc.SearchTrains(from, to, journeyDate)
	if err != nil {
		log.Printf("train search error: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.JSONSuccess(c, http.StatusOK, results)
}

// ListStations handles GET /api/stations
func (ctrl *TrainController) ListStations(c *gin.Context) {
	stations, err := ctrl.TrainSvc.ListStations()
	if err != nil {
		log.Printf("station list error: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, stations)
}

// GetSchedule handles GET /api/trains/:number/schedule
func (ctrl *TrainController) GetSchedule(c *gin.Context) {
	schedule, err := ctrl.TrainSvc.GetSchedule(c.Param("number"))
	if err != nil {
		if errors.Is(err, services.ErrTrainNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Train not found")
			return
		}
		log.Printf("schedule error: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, schedule)
}
