// Package repo implements the data persistence layer for the product catalog,
// backed by GORM. This file provides repository functions for the Product model.
//
// All functions are context-aware and accept a *gorm.DB handle, making them
// safe for use within transactions or connection-scoped operations.
// They follow the "thin repository" approach: no business logic, only CRUD
// persistence and query composition.
//
// Error semantics:
//   - When a product is not found, functions return gorm.ErrRecordNotFound
//     (also exported here as ErrNotFound for convenience).
//   - On DB errors (constraint violations, connectivity issues, etc.),
//     the raw gorm error is propagated.
//
// Callers are expected to hand these functions well-formed identifiers; UUID
// format checking belongs to the service layer (see services.ProductService).
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/openmart/go-product-backend/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
// It aliases gorm.ErrRecordNotFound for convenience and consistency
// across the service layer and handlers.
var ErrNotFound = gorm.ErrRecordNotFound

// CreateProduct inserts a new product row. The ID is a randomly generated
// UUID (string), and both timestamps start at the same UTC instant.
//
// On success, it returns the persisted Product. On failure, it returns a DB error.
func CreateProduct(ctx context.Context, db *gorm.DB, name string, price, quantity float64) (*domain.Product, error) {
	now := time.Now().UTC()
	p := &domain.Product{
		ID:        uuid.NewString(),
		Name:      name,
		Price:     price,
		Quantity:  quantity,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := db.WithContext(ctx).Create(p).Error; err != nil {
		return nil, err
	}
	return p, nil
}

// ListProducts returns all products ordered by creation time descending
// (most recent first). It returns an empty slice when the table is empty.
// On DB error, it returns the error.
func ListProducts(ctx context.Context, db *gorm.DB) ([]domain.Product, error) {
	out := []domain.Product{}
	err := db.WithContext(ctx).
		Order("created_at desc").
		Find(&out).Error
	return out, err
}

// GetProduct fetches a single product by its ID. If the record does not
// exist, it returns ErrNotFound. On other DB errors, the raw error is returned.
func GetProduct(ctx context.Context, db *gorm.DB, id string) (*domain.Product, error) {
	var p domain.Product
	err := db.WithContext(ctx).
		Where("id = ?", id).
		First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// UpdateProduct replaces the name, price, and quantity of the product
// identified by id and refreshes UpdatedAt. ID and CreatedAt are left
// untouched. If the record does not exist, it returns ErrNotFound.
//
// The row is loaded first so absence is reported before any write; the
// subsequent update is a single statement, so a record is never observably
// half-written.
func UpdateProduct(ctx context.Context, db *gorm.DB, id, name string, price, quantity float64) (*domain.Product, error) {
	p, err := GetProduct(ctx, db, id)
	if err != nil {
		return nil, err
	}
	res := db.WithContext(ctx).
		Model(p).
		Updates(map[string]any{
			"name":       name,
			"price":      price,
			"quantity":   quantity,
			"updated_at": time.Now().UTC(),
		})
	if res.Error != nil {
		return nil, res.Error
	}
	return p, nil
}

// DeleteProduct removes the product identified by id and returns the removed
// record. If the record does not exist (including a repeated delete of the
// same id), it returns ErrNotFound.
func DeleteProduct(ctx context.Context, db *gorm.DB, id string) (*domain.Product, error) {
	p, err := GetProduct(ctx, db, id)
	if err != nil {
		return nil, err
	}
	if err := db.WithContext(ctx).Delete(&domain.Product{}, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return p, nil
}

// NewID returns a fresh identifier in the same format the repository assigns
// at insert. Exposed for tests that need well-formed but absent IDs.
func NewID() string { return uuid.NewString() }
