package domain_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vladislavdragonenkov/tienda/internal/domain"
)

// helper для создания базового заказа с одной позицией.
func makeOrder() domain.Order {
	return domain.Order{
		ID:            1,
		CustomerID:    7,
		Total:         decimal.RequireFromString("20.00"),
		Fecha:         time.Now().UTC(),
		PaymentMethod: domain.PaymentMethodCash,
		Lines: []domain.OrderLine{
			{OrderID: 1, ProductID: 3, Quantity: decimal.RequireFromString("2.00")},
		},
	}
}

func TestOrderValidateInvariants_Ok(t *testing.T) {
	order := makeOrder()
	if errs := order.ValidateInvariants(); len(errs) != 0 {
		t.Fatalf("expected no validation errors, got %v", errs)
	}
}

func TestOrderValidateInvariants_EmptyLinesOk(t *testing.T) {
	// Пустой набор позиций допустим: заказ с N=0 позициями валиден.
	order := makeOrder()
	order.Lines = nil
	order.Total = decimal.Zero
	if errs := order.ValidateInvariants(); len(errs) != 0 {
		t.Fatalf("expected no validation errors for empty line set, got %v", errs)
	}
}

func TestOrderValidateInvariants_Errors(t *testing.T) {
	cases := []struct {
		name string
		mut  func(o *domain.Order)
		want error
	}{
		{
			name: "no customer",
			mut: func(o *domain.Order) {
				o.CustomerID = 0
			},
			want: domain.ErrCustomerRequired,
		},
		{
			name: "negative total",
			mut: func(o *domain.Order) {
				o.Total = decimal.RequireFromString("-0.01")
			},
			want: domain.ErrTotalNegative,
		},
		{
			name: "qty zero",
			mut: func(o *domain.Order) {
				o.Lines[0].Quantity = decimal.Zero
			},
			want: domain.ErrInvalidQuantity,
		},
		{
			name: "qty negative",
			mut: func(o *domain.Order) {
				o.Lines[0].Quantity = decimal.RequireFromString("-1")
			},
			want: domain.ErrInvalidQuantity,
		},
		{
			name: "no product",
			mut: func(o *domain.Order) {
				o.Lines[0].ProductID = 0
			},
			want: domain.ErrProductRequired,
		},
		{
			name: "duplicate product line",
			mut: func(o *domain.Order) {
				o.Lines = append(o.Lines, domain.OrderLine{
					OrderID: o.ID, ProductID: 3, Quantity: decimal.NewFromInt(1),
				})
			},
			want: domain.ErrDuplicateOrderLine,
		},
		{
			name: "unknown payment method",
			mut: func(o *domain.Order) {
				o.PaymentMethod = "barter"
			},
			want: domain.ErrPaymentMethodUnknown,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			order := makeOrder()
			tc.mut(&order)

			errs := order.ValidateInvariants()
			if len(errs) == 0 {
				t.Fatalf("expected validation errors for case %s", tc.name)
			}
			found := false
			for _, err := range errs {
				if err == tc.want {
					found = true
				}
			}
			if !found {
				t.Fatalf("expected %v among %v", tc.want, errs)
			}
		})
	}
}

func TestCategoryValidateInvariants(t *testing.T) {
	long := make([]rune, domain.CategoryNameMaxLen+1)
	for i := range long {
		long[i] = 'x'
	}

	cases := []struct {
		name     string
		category domain.Category
		wantErr  bool
	}{
		{name: "ok", category: domain.Category{Name: "Cigarrillos"}, wantErr: false},
		{name: "empty name", category: domain.Category{}, wantErr: true},
		{name: "too long", category: domain.Category{Name: string(long)}, wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			errs := tc.category.ValidateInvariants()
			if tc.wantErr && len(errs) == 0 {
				t.Fatalf("expected validation errors")
			}
			if !tc.wantErr && len(errs) != 0 {
				t.Fatalf("expected no validation errors, got %v", errs)
			}
		})
	}
}

func TestProductValidateInvariants(t *testing.T) {
	ok := domain.Product{Name: "Tabaco rubio", Price: decimal.RequireFromString("10.00"), CategoryID: 1}
	if errs := ok.ValidateInvariants(); len(errs) != 0 {
		t.Fatalf("expected no validation errors, got %v", errs)
	}

	bad := domain.Product{Price: decimal.RequireFromString("-1"), CategoryID: 0}
	if errs := bad.ValidateInvariants(); len(errs) != 3 {
		t.Fatalf("expected 3 validation errors, got %v", errs)
	}
}
