package services

import (
	"time"

	"github.com/google/uuid"
)

// PaymentService simulates a payment gateway. No money moves anywhere: every
// authorization succeeds and only the generated references are persisted,
// attached to the booking that follows.
type PaymentService struct{}

func NewPaymentService() *PaymentService {
	return &PaymentService{}
}

type PaymentReceipt struct {
	PaymentID   string    `json:"paymentId"`
	TxnID       string    `json:"txnId"`
	Amount      float64   `json:"amount"`
	Method      string    `json:"method"`
	Status      string    `json:"status"`
	ProcessedAt time.Time `json:"processedAt"`
}

func (s *PaymentService) Authorize(amount float64, method string) PaymentReceipt {
	return PaymentReceipt{
		PaymentID:   "PAY-" + uuid.NewString(),
		TxnID:       uuid.NewString(),
		Amount:      amount,
		Method:      method,
		Status:      "SUCCESS",
		ProcessedAt: time.Now().UTC(),
	}
}
