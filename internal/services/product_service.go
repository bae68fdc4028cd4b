// Package services – ProductService
//
// This file implements the ProductService, which owns the record schema for
// products and coordinates repository operations for creating, listing,
// fetching, updating, and deleting them. Every write passes through the same
// validation pipeline before it reaches storage, so an invalid record can
// never persist.
//
// Service-level errors (ErrProductNotFound, ErrInvalidProductID, and
// *ValidationError) are returned for predictable cases so handlers can map
// them to HTTP results consistently; anything else is a storage fault.
package services

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/openmart/go-product-backend/internal/domain"
)

// MaxNameLen caps product names by rune length.
const MaxNameLen = 100

// ProductInput is the candidate payload for create and update operations.
// Price and Quantity are pointers so that an absent field can be told apart
// from an explicit zero: price is required, quantity defaults to 0 when
// omitted.
type ProductInput struct {
	Name     string
	Price    *float64
	Quantity *float64
}

// ProductRepo defines the repository contract required by ProductService.
// Implementations are responsible for persistence of product records.
type ProductRepo interface {
	// CreateProduct inserts a new product row with generated ID and timestamps.
	CreateProduct(ctx context.Context, db *gorm.DB, name string, price, quantity float64) (*domain.Product, error)

	// ListProducts returns all products, most recently created first.
	ListProducts(ctx context.Context, db *gorm.DB) ([]domain.Product, error)

	// GetProduct fetches a product by ID, or repo.ErrNotFound.
	GetProduct(ctx context.Context, db *gorm.DB, id string) (*domain.Product, error)

	// UpdateProduct replaces name/price/quantity of an existing product.
	UpdateProduct(ctx context.Context, db *gorm.DB, id, name string, price, quantity float64) (*domain.Product, error)

	// DeleteProduct removes a product and returns the removed record.
	DeleteProduct(ctx context.Context, db *gorm.DB, id string) (*domain.Product, error)
}

// ProductService provides the product use-cases behind the HTTP layer.
// It validates candidates against the record schema, normalizes identifiers,
// and persists through the injected repository. The service holds no
// per-request state and is safe for concurrent use.
type ProductService struct {
	// DB is the GORM handle used for all product operations.
	DB *gorm.DB
	// Repo is the product repository used by this service.
	Repo ProductRepo
}

// NewProductService constructs a ProductService bound to db and repo.
func NewProductService(db *gorm.DB, r ProductRepo) *ProductService {
	return &ProductService{DB: db, Repo: r}
}

// validate enforces the product record schema on in and returns the
// normalized field values. Violations are collected per field, in declaration
// order, into a single *ValidationError.
//
// Rules:
//   - name: required, non-empty after trimming, at most MaxNameLen runes
//   - price: required, >= 0
//   - quantity: >= 0 when present, 0 when absent
func validate(in ProductInput) (name string, price, quantity float64, err error) {
	var msgs []string

	name = strings.TrimSpace(in.Name)
	switch {
	case name == "":
		msgs = append(msgs, "Product name is required")
	case utf8.RuneCountInString(name) > MaxNameLen:
		msgs = append(msgs, "Product name cannot exceed 100 characters")
	}

	switch {
	case in.Price == nil:
		msgs = append(msgs, "Product price is required")
	case *in.Price < 0:
		msgs = append(msgs, "Price cannot be negative")
	default:
		price = *in.Price
	}

	if in.Quantity != nil {
		if *in.Quantity < 0 {
			msgs = append(msgs, "Quantity cannot be negative")
		} else {
			quantity = *in.Quantity
		}
	}

	if len(msgs) > 0 {
		return "", 0, 0, &ValidationError{Messages: msgs}
	}
	return name, price, quantity, nil
}

// parseID checks that id is a well-formed product identifier (UUID). A value
// that does not parse yields ErrInvalidProductID so handlers can answer 400
// instead of 404.
func parseID(id string) (string, error) {
	u, err := uuid.Parse(strings.TrimSpace(id))
	if err != nil {
		return "", ErrInvalidProductID
	}
	return u.String(), nil
}

// Create validates in and inserts a new product. On success it returns the
// stored record with its generated ID and timestamps.
func (s *ProductService) Create(ctx context.Context, in ProductInput) (*domain.Product, error) {
	name, price, quantity, err := validate(in)
	if err != nil {
		return nil, err
	}
	return s.Repo.CreateProduct(ctx, s.DB, name, price, quantity)
}

// List returns every product, ordered by creation time descending. An empty
// catalog yields an empty slice, never an error.
func (s *ProductService) List(ctx context.Context) ([]domain.Product, error) {
	return s.Repo.ListProducts(ctx, s.DB)
}

// Get fetches a single product by id. Malformed identifiers yield
// ErrInvalidProductID; well-formed identifiers without a record yield
// ErrProductNotFound.
func (s *ProductService) Get(ctx context.Context, id string) (*domain.Product, error) {
	pid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	p, err := s.Repo.GetProduct(ctx, s.DB, pid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return p, nil
}

// Update replaces the name, price, and quantity of an existing product and
// refreshes its updated-at timestamp. The full schema is re-validated against
// in; there is no field-by-field merge (an omitted quantity becomes 0, an
// omitted name or price fails validation). ID and created-at never change.
func (s *ProductService) Update(ctx context.Context, id string, in ProductInput) (*domain.Product, error) {
	pid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	name, price, quantity, err := validate(in)
	if err != nil {
		return nil, err
	}
	p, err := s.Repo.UpdateProduct(ctx, s.DB, pid, name, price, quantity)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return p, nil
}

// Delete removes a product and returns the removed record. Deleting an
// already-deleted id yields ErrProductNotFound, not a second success.
func (s *ProductService) Delete(ctx context.Context, id string) (*domain.Product, error) {
	pid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	p, err := s.Repo.DeleteProduct(ctx, s.DB, pid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return p, nil
}
