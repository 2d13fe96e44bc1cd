package model

import "time"

type CartItem struct {
	Id          uint    `gorm:"primaryKey;autoIncrement"`
	UserEmail   string  `gorm:"type:varchar(255);not null;index:idx_cart_user_product"`
	ProductId   uint    `gorm:"not null;index:idx_cart_user_product"`
	ProductName string  `gorm:"type:varchar(255)"`
	Price       float64 `gorm:"not null"`
	Quantity    int     `gorm:"not null;default:1"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (CartItem) TableName() string {
	return "cart_items"
}
