package entity

import "time"

type Product struct {
	Id          uint
	Name        string
	Description string
	Price       float64
	MinPrice    *float64
	Stock       int
	Image       string
	CreatedAt   time.Time
	UpdatedAt   *time.Time
	DeletedAt   *time.Time
	IsDeleted   bool
}
