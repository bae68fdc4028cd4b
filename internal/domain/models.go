// Package domain defines the persistence model for products. The types here
// are mapped with GORM and form the core data layer of the catalog service.
package domain

import "time"

// Product represents a single catalog entry. Records are created through the
// public API and carry storage-assigned identity and timestamps; clients never
// set ID, CreatedAt, or UpdatedAt directly.
//
// Fields:
//   - ID: stable UUID primary key (char(36)), assigned by the repository.
//   - Name: product display name, at most 100 characters after trimming.
//   - Price: unit price, never negative.
//   - Quantity: units in stock, never negative; defaults to 0.
//   - CreatedAt / UpdatedAt: timestamps managed by GORM.
type Product struct {
	ID        string    `json:"id"        gorm:"type:char(36);primaryKey"`
	Name      string    `json:"name"      gorm:"type:varchar(100);not null"`
	Price     float64   `json:"price"     gorm:"not null;check:price >= 0"`
	Quantity  float64   `json:"quantity"  gorm:"not null;default:0;check:quantity >= 0"`
	CreatedAt time.Time `json:"createdAt" gorm:"index"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the database table name for Product.
func (Product) TableName() string { return "products" }
