package specification

import "gorm.io/gorm"

type ByProductID struct {
	ProductID uint
}

func (s ByProductID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("product_id = ?", s.ProductID)
}

type ByUserEmail struct {
	Email string
}

func (s ByUserEmail) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("user_email = ?", s.Email)
}

type BySessionID struct {
	SessionID string
}

func (s BySessionID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("session_id = ?", s.SessionID)
}

// ByProductName matches product names case-insensitively
type ByProductName struct {
	Name string
}

func (s ByProductName) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("name ILIKE ?", "%"+s.Name+"%")
}

// InStock keeps only products with at least one unit available
type InStock struct{}

func (s InStock) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("stock > 0")
}
