package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/openmart/go-product-backend/internal/domain"
)

// stubRepo implements ProductRepo with per-call hooks; unset hooks fail the test.
type stubRepo struct {
	t      *testing.T
	create func(name string, price, quantity float64) (*domain.Product, error)
	list   func() ([]domain.Product, error)
	get    func(id string) (*domain.Product, error)
	update func(id, name string, price, quantity float64) (*domain.Product, error)
	del    func(id string) (*domain.Product, error)
}

func (s stubRepo) CreateProduct(_ context.Context, _ *gorm.DB, name string, price, quantity float64) (*domain.Product, error) {
	if s.create == nil {
		s.t.Fatal("unexpected CreateProduct call")
	}
	return s.create(name, price, quantity)
}

func (s stubRepo) ListProducts(_ context.Context, _ *gorm.DB) ([]domain.Product, error) {
	if s.list == nil {
		s.t.Fatal("unexpected ListProducts call")
	}
	return s.list()
}

func (s stubRepo) GetProduct(_ context.Context, _ *gorm.DB, id string) (*domain.Product, error) {
	if s.get == nil {
		s.t.Fatal("unexpected GetProduct call")
	}
	return s.get(id)
}

func (s stubRepo) UpdateProduct(_ context.Context, _ *gorm.DB, id, name string, price, quantity float64) (*domain.Product, error) {
	if s.update == nil {
		s.t.Fatal("unexpected UpdateProduct call")
	}
	return s.update(id, name, price, quantity)
}

func (s stubRepo) DeleteProduct(_ context.Context, _ *gorm.DB, id string) (*domain.Product, error) {
	if s.del == nil {
		s.t.Fatal("unexpected DeleteProduct call")
	}
	return s.del(id)
}

func f(v float64) *float64 { return &v }

func TestCreate_Validation(t *testing.T) {
	tests := []struct {
		name string
		in   ProductInput
		want string // expected joined message
	}{
		{"missing name", ProductInput{Price: f(1)}, "Product name is required"},
		{"blank name", ProductInput{Name: "   ", Price: f(1)}, "Product name is required"},
		{"name too long", ProductInput{Name: strings.Repeat("x", 101), Price: f(1)}, "Product name cannot exceed 100 characters"},
		{"missing price", ProductInput{Name: "ok"}, "Product price is required"},
		{"negative price", ProductInput{Name: "ok", Price: f(-0.01)}, "Price cannot be negative"},
		{"negative quantity", ProductInput{Name: "ok", Price: f(1), Quantity: f(-1)}, "Quantity cannot be negative"},
		{
			"all invalid joins in declaration order",
			ProductInput{Name: "", Price: f(-1), Quantity: f(-1)},
			"Product name is required, Price cannot be negative, Quantity cannot be negative",
		},
	}

	svc := NewProductService(nil, stubRepo{t: t})
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tc.in)
			ve := AsValidation(err)
			if ve == nil {
				t.Fatalf("expected *ValidationError, got %v", err)
			}
			if ve.Error() != tc.want {
				t.Fatalf("message = %q, want %q", ve.Error(), tc.want)
			}
		})
	}
}

func TestCreate_TrimsNameAndDefaultsQuantity(t *testing.T) {
	var gotName string
	var gotQty float64
	svc := NewProductService(nil, stubRepo{t: t, create: func(name string, price, quantity float64) (*domain.Product, error) {
		gotName, gotQty = name, quantity
		return &domain.Product{ID: uuid.NewString(), Name: name, Price: price, Quantity: quantity}, nil
	}})

	p, err := svc.Create(context.Background(), ProductInput{Name: "  Widget  ", Price: f(2.5)})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if gotName != "Widget" {
		t.Fatalf("name not trimmed: %q", gotName)
	}
	if gotQty != 0 {
		t.Fatalf("quantity should default to 0, got %v", gotQty)
	}
	if p.Price != 2.5 {
		t.Fatalf("price mismatch: %v", p.Price)
	}
}

func TestCreate_NameAtLimitIsValid(t *testing.T) {
	svc := NewProductService(nil, stubRepo{t: t, create: func(name string, price, quantity float64) (*domain.Product, error) {
		return &domain.Product{ID: uuid.NewString(), Name: name}, nil
	}})
	if _, err := svc.Create(context.Background(), ProductInput{Name: strings.Repeat("y", 100), Price: f(0)}); err != nil {
		t.Fatalf("100-char name must be valid, got %v", err)
	}
}

func TestCreate_ZeroPriceAndQuantityAreValid(t *testing.T) {
	svc := NewProductService(nil, stubRepo{t: t, create: func(name string, price, quantity float64) (*domain.Product, error) {
		return &domain.Product{ID: uuid.NewString()}, nil
	}})
	if _, err := svc.Create(context.Background(), ProductInput{Name: "free", Price: f(0), Quantity: f(0)}); err != nil {
		t.Fatalf("zero values must be valid, got %v", err)
	}
}

func TestGet_MalformedID(t *testing.T) {
	svc := NewProductService(nil, stubRepo{t: t})
	_, err := svc.Get(context.Background(), "invalid-id")
	if !errors.Is(err, ErrInvalidProductID) {
		t.Fatalf("expected ErrInvalidProductID, got %v", err)
	}
}

func TestGet_NotFoundMapsSentinel(t *testing.T) {
	svc := NewProductService(nil, stubRepo{t: t, get: func(id string) (*domain.Product, error) {
		return nil, gorm.ErrRecordNotFound
	}})
	_, err := svc.Get(context.Background(), uuid.NewString())
	if !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestGet_StorageErrorPassesThrough(t *testing.T) {
	boom := errors.New("disk on fire")
	svc := NewProductService(nil, stubRepo{t: t, get: func(id string) (*domain.Product, error) {
		return nil, boom
	}})
	_, err := svc.Get(context.Background(), uuid.NewString())
	if !errors.Is(err, boom) {
		t.Fatalf("expected storage error to pass through, got %v", err)
	}
}

func TestUpdate_ValidatesBeforeTouchingRepo(t *testing.T) {
	svc := NewProductService(nil, stubRepo{t: t}) // update hook unset: repo call would fail the test
	_, err := svc.Update(context.Background(), uuid.NewString(), ProductInput{Name: "", Price: nil})
	if AsValidation(err) == nil {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestUpdate_MalformedIDWinsOverValidation(t *testing.T) {
	svc := NewProductService(nil, stubRepo{t: t})
	_, err := svc.Update(context.Background(), "not-a-uuid", ProductInput{})
	if !errors.Is(err, ErrInvalidProductID) {
		t.Fatalf("expected ErrInvalidProductID, got %v", err)
	}
}

func TestUpdate_FullReplaceSemantics(t *testing.T) {
	id := uuid.NewString()
	var got struct {
		name     string
		price    float64
		quantity float64
	}
	svc := NewProductService(nil, stubRepo{t: t, update: func(uid, name string, price, quantity float64) (*domain.Product, error) {
		if uid != id {
			t.Fatalf("id = %q, want %q", uid, id)
		}
		got.name, got.price, got.quantity = name, price, quantity
		return &domain.Product{ID: uid, Name: name, Price: price, Quantity: quantity}, nil
	}})

	// Quantity omitted: full-replace resets it to 0 rather than merging.
	if _, err := svc.Update(context.Background(), id, ProductInput{Name: "Updated", Price: f(150)}); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if got.name != "Updated" || got.price != 150 || got.quantity != 0 {
		t.Fatalf("unexpected replacement values: %+v", got)
	}
}

func TestDelete_NotFoundAndMalformed(t *testing.T) {
	svc := NewProductService(nil, stubRepo{t: t, del: func(id string) (*domain.Product, error) {
		return nil, gorm.ErrRecordNotFound
	}})

	if _, err := svc.Delete(context.Background(), "junk"); !errors.Is(err, ErrInvalidProductID) {
		t.Fatalf("expected ErrInvalidProductID, got %v", err)
	}
	if _, err := svc.Delete(context.Background(), uuid.NewString()); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestList_PassesThrough(t *testing.T) {
	want := []domain.Product{{ID: uuid.NewString(), Name: "a"}}
	svc := NewProductService(nil, stubRepo{t: t, list: func() ([]domain.Product, error) { return want, nil }})

	got, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 1 || got[0].Name != "a" {
		t.Fatalf("unexpected list: %+v", got)
	}
}
