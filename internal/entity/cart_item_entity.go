package entity

import "time"

type CartItem struct {
	Id          uint
	UserEmail   string
	ProductId   uint
	ProductName string
	Price       float64
	Quantity    int
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}
