package services

import (
	"errors"
	"fmt"
	"log"

	"gorm.io/gorm"

	"chukchukgo-backend/models"
	"chukchukgo-backend/utils"
)

type FoodService struct {
	DB *gorm.DB
}

func NewFoodService(db *gorm.DB) *FoodService {
	return &FoodService{DB: db}
}

type FoodItemInput struct {
	Name     string
	Price    float64
	Quantity int
}

type CreateFoodOrderInput struct {
	PNR             string
	DeliveryStation string
	DeliveryTime    string
	TotalAmount     float64
	Items           []FoodItemInput
}

const maxOrderIDAttempts = 5

// CreateFoodOrder records a meal order against an existing booking. Header
// and items are written in one transaction; order-id collisions retry with a
// fresh id the same way PNRs do.
func (s *FoodService) CreateFoodOrder(in CreateFoodOrderInput) (*models.FoodOrder, error) {
	var booking models.Booking
	if err := s.DB.Where("pnr = ?", in.PNR).First(&booking).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to look up booking: %w", err)
	}

	var order models.FoodOrder
	var lastErr error
	for attempt := 0; attempt < maxOrderIDAttempts; attempt++ {
		order = models.FoodOrder{
			OrderID:         utils.GenerateFoodOrderID(),
			PNR:             in.PNR,
			DeliveryStation: in.DeliveryStation,
			DeliveryTime:    in.DeliveryTime,
			TotalAmount:     in.TotalAmount,
			Status:          "Confirmed",
		}

		lastErr = s.DB.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&order).Error; err != nil {
				return err
			}
			for _, item := range in.Items {
				qty := item.Quantity
				if qty <= 0 {
					qty = 1
				}
				row := models.FoodOrderItem{
					FoodOrderID: order.ID,
					Name:        item.Name,
					Price:       item.Price,
					Quantity:    qty,
				}
				if err := tx.Create(&row).Error; err != nil {
					return err
				}
				order.Items = append(order.Items, row)
			}
			return nil
		})
		if lastErr == nil {
			return &order, nil
		}
		if isDuplicateKey(lastErr) {
			log.Printf("food order id collision on attempt %d, regenerating", attempt+1)
			order.Items = nil
			continue
		}
		return nil, fmt.Errorf("failed to create food order: %w", lastErr)
	}
	return nil, fmt.Errorf("failed to allocate a unique order id after %d attempts: %w", maxOrderIDAttempts, lastErr)
}

// CancelFoodOrder flips a Confirmed order to Cancelled. Returns false when
// the (pnr, order id) pair is unknown or the order is already cancelled;
// a second cancel never reports success.
func (s *FoodService) CancelFoodOrder(pnr, orderID string) (bool, error) {
	var order models.FoodOrder
	if err := s.DB.Where("pnr = ? AND order_id = ?", pnr, orderID).First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to look up food order: %w", err)
	}
	if order.Status == "Cancelled" {
		return false, nil
	}

	if err := s.DB.Model(&order).Update("status", "Cancelled").Error; err != nil {
		return false, fmt.Errorf("failed to cancel food order: %w", err)
	}
	return true, nil
}

// ListFoodOrdersByPNR returns all meal orders placed against a booking,
// newest first.
func (s *FoodService) ListFoodOrdersByPNR(pnr string) ([]models.FoodOrder, error) {
	var orders []models.FoodOrder
	if err := s.DB.
		Preload("Items").
		Where("pnr = ?", pnr).
		Order("order_date DESC").
		Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to list food orders: %w", err)
	}
	return orders, nil
}
