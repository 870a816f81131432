package models

import "time"

type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Username string `gorm:"column:username;size:50;uniqueIndex;not null" json:"username"`
	Password string `gorm:"column:password;size:100;not null" json:"-"`
	Email    string `gorm:"column:email;size:100;uniqueIndex;not null" json:"email"`
	FullName string `gorm:"column:full_name;size:100;not null" json:"fullName"`
	Phone    string `gorm:"column:phone;size:15;not null" json:"phone"`

	DateCreated time.Time  `gorm:"column:date_created;autoCreateTime" json:"dateCreated"`
	LastLogin   *time.Time `gorm:"column:last_login" json:"lastLogin,omitempty"`

	Bookings []Booking `gorm:"foreignKey:UserID" json:"-"`
}
