package models

type Station struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Code  string `gorm:"column:code;size:10;uniqueIndex;not null" json:"code"`
	Name  string `gorm:"column:name;size:100;not null" json:"name"`
	City  string `gorm:"column:city;size:50;not null" json:"city"`
	State string `gorm:"column:state;size:50;not null" json:"state"`
	Zone  string `gorm:"column:zone;size:10" json:"zone,omitempty"`
}
