package models

import "time"

// FoodOrder is an onboard meal order placed against an existing booking,
// delivered at a chosen stop along the route.
type FoodOrder struct {
	ID uint `gorm:"primaryKey" json:"id"`

	OrderID string `gorm:"column:order_id;size:20;uniqueIndex;not null" json:"orderId"`
	PNR     string `gorm:"column:pnr;size:10;not null;index" json:"pnr"`

	DeliveryStation string  `gorm:"column:delivery_station;size:255;not null" json:"deliveryStation"`
	DeliveryTime    string  `gorm:"column:delivery_time;size:100" json:"deliveryTime,omitempty"`
	TotalAmount     float64 `gorm:"column:total_amount;type:decimal(10,2)" json:"totalAmount"`

	OrderDate time.Time `gorm:"column:order_date;autoCreateTime" json:"orderDate"`
	Status    string    `gorm:"column:status;size:20;default:Confirmed" json:"status"`

	Items []FoodOrderItem `gorm:"foreignKey:FoodOrderID" json:"items"`
}

type FoodOrderItem struct {
	ID uint `gorm:"primaryKey" json:"id"`

	FoodOrderID uint `gorm:"column:food_order_id;not null;index" json:"-"`

	Name     string  `gorm:"column:name;size:255;not null" json:"name"`
	Price    float64 `gorm:"column:price;type:decimal(10,2)" json:"price"`
	Quantity int     `gorm:"column:quantity;default:1" json:"quantity"`
}
