// Product HTTP handlers.
//
// This file exposes REST endpoints for the product resource:
//   - POST   /products       (create)
//   - GET    /products       (list)
//   - GET    /products/:id   (fetch)
//   - PUT    /products/:id   (update, full replace)
//   - DELETE /products/:id   (delete)
//
// Handlers are transport-thin: they bind input, call the product service, and
// translate results into the response envelope. All failure classification
// lives in classify() (errors.go); handlers never invent status codes.
package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/openmart/go-product-backend/internal/domain"
	"github.com/openmart/go-product-backend/internal/services"
)

// ProductService defines the product operations consumed by HTTP handlers.
//
// Implementations should be safe for concurrent use and must honor the
// provided context for cancellation and timeouts.
type ProductService interface {
	// Create validates and stores a new product.
	Create(ctx context.Context, in services.ProductInput) (*domain.Product, error)
	// List returns all products, most recently created first.
	List(ctx context.Context) ([]domain.Product, error)
	// Get fetches one product by id.
	Get(ctx context.Context, id string) (*domain.Product, error)
	// Update replaces the mutable fields of an existing product.
	Update(ctx context.Context, id string, in services.ProductInput) (*domain.Product, error)
	// Delete removes a product and returns the removed record.
	Delete(ctx context.Context, id string) (*domain.Product, error)
}

// Handlers groups the HTTP endpoints for the product resource.
// It depends on an abstract service interface to keep transport concerns
// separate from business logic.
type Handlers struct {
	svc ProductService
	dev bool
}

// New constructs a Handlers instance bound to svc. When dev is true, error
// envelopes include the underlying failure detail.
func New(svc ProductService, dev bool) *Handlers {
	return &Handlers{svc: svc, dev: dev}
}

// ProductRequest is the JSON payload for creating or updating a product.
// Price and Quantity are pointers so a missing field is distinguishable from
// an explicit zero; a field of the wrong JSON type fails binding outright.
type ProductRequest struct {
	Name     string   `json:"name" example:"Mechanical keyboard"`
	Price    *float64 `json:"price" example:"99.99"`
	Quantity *float64 `json:"quantity" example:"10"`
}

// input converts the bound request into the service-level candidate.
func (r ProductRequest) input() services.ProductInput {
	return services.ProductInput{Name: r.Name, Price: r.Price, Quantity: r.Quantity}
}

// failErr renders err through the error classifier. Storage faults expose
// their detail only in development mode.
func (h *Handlers) failErr(c *gin.Context, err error) {
	status, msg := classify(err)
	detail := ""
	if h.dev && status >= http.StatusInternalServerError {
		detail = err.Error()
	}
	fail(c, status, msg, detail)
}

// CreateProduct handles POST /products.
//
// A valid payload yields 201 with the stored record (fresh id and
// timestamps); schema violations yield 400 with the joined field messages.
func (h *Handlers) CreateProduct(c *gin.Context) {
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, MsgBadBody, "")
		return
	}

	p, err := h.svc.Create(c.Request.Context(), req.input())
	if err != nil {
		h.failErr(c, err)
		return
	}
	ok(c, http.StatusCreated, p)
}

// ListProducts handles GET /products.
//
// Always 200; an empty catalog is an empty array with count 0.
func (h *Handlers) ListProducts(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context())
	if err != nil {
		h.failErr(c, err)
		return
	}
	okList(c, items, len(items))
}

// GetProduct handles GET /products/:id.
func (h *Handlers) GetProduct(c *gin.Context) {
	p, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.failErr(c, err)
		return
	}
	ok(c, http.StatusOK, p)
}

// UpdateProduct handles PUT /products/:id.
//
// Update is a full replace: the payload is re-validated against the complete
// schema and all three mutable fields are overwritten.
func (h *Handlers) UpdateProduct(c *gin.Context) {
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, MsgBadBody, "")
		return
	}

	p, err := h.svc.Update(c.Request.Context(), c.Param("id"), req.input())
	if err != nil {
		h.failErr(c, err)
		return
	}
	ok(c, http.StatusOK, p)
}

// DeleteProduct handles DELETE /products/:id.
//
// A second delete of the same id is a 404, not a repeated success.
func (h *Handlers) DeleteProduct(c *gin.Context) {
	if _, err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.failErr(c, err)
		return
	}
	okMessage(c, "Product deleted successfully", gin.H{})
}
