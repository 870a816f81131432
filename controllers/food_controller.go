package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"chukchukgo-backend/services"
	"chukchukgo-backend/utils"
)

type FoodItemPayload struct {
	Name     string  `json:"name" binding:"required"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

type CreateFoodOrderPayload struct {
	PNR             string            `json:"pnr" binding:"required"`
	DeliveryStation string            `json:"deliveryStation" binding:"required"`
	DeliveryTime    string            `json:"deliveryTime"`
	TotalAmount     float64           `json:"totalAmount"`
	Items           []FoodItemPayload `json:"items" binding:"required,min=1"`
}

type FoodController struct {
	FoodSvc *services.FoodService
}

func NewFoodController(svc *services.FoodService) *FoodController {
	return &FoodController{FoodSvc: svc}
}

// Create handles POST /api/food-orders
func (ctrl *FoodController) Create(c *gin.Context) {
	var payload CreateFoodOrderPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Missing required fields")
		return
	}

	items := make([]services.FoodItemInput, 0, len(payload.Items))
	for _, item := range payload.Items {
		items = append(items, services.FoodItemInput{
			Name:     item.Name,
			Price:    item.Price,
			Quantity: item.Quantity,
		})
	}

	order, err := ctrl.FoodSvc.CreateFoodOrder(services.CreateFoodOrderInput{
		PNR:             payload.PNR,
		DeliveryStation: payload.DeliveryStation,
		DeliveryTime:    payload.DeliveryTime,
		TotalAmount:     payload.TotalAmount,
		Items:           items,
	})
	if err != nil {
		if errors.Is(err, services.ErrBookingNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Booking not found")
			return
		}
		log.Printf("food order error: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.JSONSuccess(c, http.StatusCreated, gin.H{"orderId": order.OrderID})
}

// Cancel handles POST /api/food-orders/:pnr/:orderId/cancel
func (ctrl *FoodController) Cancel(c *gin.Context) {
	pnr := c.Param("pnr")
	if !utils.IsValidPNR(pnr) {
		utils.JSONError(c, http.StatusBadRequest, "Invalid PNR")
		return
	}

	cancelled, err := ctrl.FoodSvc.CancelFoodOrder(pnr, c.Param("orderId"))
	if err != nil {
		log.Printf("food order cancel error: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	if !cancelled {
		utils.JSONError(c, http.StatusNotFound, "Order not found")
		return
	}

	utils.JSONMessage(c, http.StatusOK, "Food order cancelled successfully. Amount will be refunded.")
}

// ListByPNR handles GET /api/food-orders/:pnr
func (ctrl *FoodController) ListByPNR(c *gin.Context) {
	pnr := c.Param("pnr")
	if !utils.IsValidPNR(pnr) {
		utils.JSONError(c, http.StatusBadRequest, "Invalid PNR")
		return
	}

	orders, err := ctrl.FoodSvc.ListFoodOrdersByPNR(pnr)
	if err != nil {
		log.Printf("food order list error: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.JSONSuccess(c, http.StatusOK, orders)
}
