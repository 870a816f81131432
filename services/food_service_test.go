package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chukchukgo-backend/models"
)

func TestCreateFoodOrder(t *testing.T) {
	db := newTestDB(t)
	c := seedCatalog(t, db)
	bookingSvc := NewBookingService(db)
	booking, err := bookingSvc.CreateBooking(bookingInput(c, somePassengers(1)))
	require.NoError(t, err)

	svc := NewFoodService(db)
	order, err := svc.CreateFoodOrder(CreateFoodOrderInput{
		PNR:             booking.PNR,
		DeliveryStation: "Nagpur Junction",
		DeliveryTime:    "12:15 - 12:25",
		TotalAmount:     340,
		Items: []FoodItemInput{
			{Name: "Veg Thali", Price: 180, Quantity: 1},
			{Name: "Masala Chai", Price: 40, Quantity: 4},
		},
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(order.OrderID, "FO-"))
	assert.Len(t, order.OrderID, 11)
	assert.Equal(t, "Confirmed", order.Status)
	require.Len(t, order.Items, 2)

	var itemCount int64
	require.NoError(t, db.Model(&models.FoodOrderItem{}).
		Where("food_order_id = ?", order.ID).Count(&itemCount).Error)
	assert.EqualValues(t, 2, itemCount)
}

func TestCreateFoodOrderUnknownPNR(t *testing.T) {
	db := newTestDB(t)
	seedCatalog(t, db)
	svc := NewFoodService(db)

	_, err := svc.CreateFoodOrder(CreateFoodOrderInput{
		PNR:             "1234567890",
		DeliveryStation: "Nagpur Junction",
		Items:           []FoodItemInput{{Name: "Veg Thali", Price: 180, Quantity: 1}},
	})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestCancelFoodOrder(t *testing.T) {
	db := newTestDB(t)
	c := seedCatalog(t, db)
	bookingSvc := NewBookingService(db)
	booking, err := bookingSvc.CreateBooking(bookingInput(c, somePassengers(1)))
	require.NoError(t, err)

	svc := NewFoodService(db)
	order, err := svc.CreateFoodOrder(CreateFoodOrderInput{
		PNR:             booking.PNR,
		DeliveryStation: "Nagpur Junction",
		TotalAmount:     180,
		Items:           []FoodItemInput{{Name: "Veg Thali", Price: 180, Quantity: 1}},
	})
	require.NoError(t, err)

	cancelled, err := svc.CancelFoodOrder(booking.PNR, order.OrderID)
	require.NoError(t, err)
	assert.True(t, cancelled)

	var stored models.FoodOrder
	require.NoError(t, db.Where("order_id = ?", order.OrderID).First(&stored).Error)
	assert.Equal(t, "Cancelled", stored.Status)

	// A second cancel finds nothing left to cancel.
	cancelled, err = svc.CancelFoodOrder(booking.PNR, order.OrderID)
	require.NoError(t, err)
	assert.False(t, cancelled)
}

func TestCancelFoodOrderUnknown(t *testing.T) {
	db := newTestDB(t)
	c := seedCatalog(t, db)
	bookingSvc := NewBookingService(db)
	booking, err := bookingSvc.CreateBooking(bookingInput(c, somePassengers(1)))
	require.NoError(t, err)

	svc := NewFoodService(db)
	order, err := svc.CreateFoodOrder(CreateFoodOrderInput{
		PNR:             booking.PNR,
		DeliveryStation: "Nagpur Junction",
		TotalAmount:     180,
		Items:           []FoodItemInput{{Name: "Veg Thali", Price: 180, Quantity: 1}},
	})
	require.NoError(t, err)

	cancelled, err := svc.CancelFoodOrder(booking.PNR, "FO-00000000")
	require.NoError(t, err)
	assert.False(t, cancelled)

	// The order id alone is not enough; the PNR must match too.
	cancelled, err = svc.CancelFoodOrder("9999999999", order.OrderID)
	require.NoError(t, err)
	assert.False(t, cancelled)

	var stored models.FoodOrder
	require.NoError(t, db.Where("order_id = ?", order.OrderID).First(&stored).Error)
	assert.Equal(t, "Confirmed", stored.Status)
}

func TestListFoodOrdersByPNR(t *testing.T) {
	db := newTestDB(t)
	c := seedCatalog(t, db)
	bookingSvc := NewBookingService(db)
	booking, err := bookingSvc.CreateBooking(bookingInput(c, somePassengers(1)))
	require.NoError(t, err)

	svc := NewFoodService(db)
	for _, station := range []string{"Bhopal Junction", "Nagpur Junction"} {
		_, err := svc.CreateFoodOrder(CreateFoodOrderInput{
			PNR:             booking.PNR,
			DeliveryStation: station,
			TotalAmount:     180,
			Items:           []FoodItemInput{{Name: "Veg Thali", Price: 180, Quantity: 1}},
		})
		require.NoError(t, err)
	}

	orders, err := svc.ListFoodOrdersByPNR(booking.PNR)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Len(t, orders[0].Items, 1)

	orders, err = svc.ListFoodOrdersByPNR("9999999999")
	require.NoError(t, err)
	assert.Empty(t, orders)
}
