package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"chukchukgo-backend/services"
	"chukchukgo-backend/utils"
)

type AuthorizePaymentPayload struct {
	Amount float64 `json:"amount" binding:"required"`
	Method string  `json:"method" binding:"required"`
}

type PaymentController struct {
	PaymentSvc *services.PaymentService
}

func NewPaymentController(svc *services.PaymentService) *PaymentController {
	return &PaymentController{PaymentSvc: svc}
}

// Authorize handles POST /api/payments. The gateway is simulated: every
// well-formed request succeeds and returns references for the booking call.
func (ctrl *PaymentController) Authorize(c *gin.Context) {
	var payload AuthorizePaymentPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Missing required fields")
		return
	}

	receipt := ctrl.PaymentSvc.Authorize(payload.Amount, payload.Method)
	utils.JSONSuccess(c, http.StatusOK, receipt)
}
