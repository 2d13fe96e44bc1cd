package model

import (
	"time"

	"gorm.io/gorm"
)

type Product struct {
	Id          uint    `gorm:"primaryKey;autoIncrement"`
	Name        string  `gorm:"type:varchar(255);not null;uniqueIndex"`
	Description string  `gorm:"type:text"`
	Price       float64 `gorm:"not null"`
	// MinPrice is the floor below which no offer may go. Nullable; the
	// policy falls back to a configured fraction of Price.
	MinPrice  *float64
	Stock     int    `gorm:"not null;default:0"`
	Image     string `gorm:"type:text"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (Product) TableName() string {
	return "products"
}
