package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestIsNotFound(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "order not found",
			err:  ErrOrderNotFound,
			want: true,
		},
		{
			name: "customer not found",
			err:  ErrCustomerNotFound,
			want: true,
		},
		{
			name: "wrapped product not found",
			err:  fmt.Errorf("resolve line: %w", ErrProductNotFound),
			want: true,
		},
		{
			name: "category not found",
			err:  ErrCategoryNotFound,
			want: true,
		},
		{
			name: "validation error",
			err:  ErrInvalidQuantity,
			want: false,
		},
		{
			name: "plain error",
			err:  errors.New("boom"),
			want: false,
		},
		{
			name: "nil error",
			err:  nil,
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsNotFound(tt.err); got != tt.want {
				t.Errorf("IsNotFound() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsValidation(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "invalid quantity",
			err:  ErrInvalidQuantity,
			want: true,
		},
		{
			name: "duplicate line",
			err:  ErrDuplicateOrderLine,
			want: true,
		},
		{
			name: "wrapped unknown payment method",
			err:  fmt.Errorf("draft: %w", ErrPaymentMethodUnknown),
			want: true,
		},
		{
			name: "category name too long",
			err:  ErrCategoryNameTooLong,
			want: true,
		},
		{
			name: "not found is not validation",
			err:  ErrOrderNotFound,
			want: false,
		},
		{
			name: "conflict is not validation",
			err:  ErrCategoryNameTaken,
			want: false,
		},
		{
			name: "nil error",
			err:  nil,
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidation(tt.err); got != tt.want {
				t.Errorf("IsValidation() = %v, want %v", got, tt.want)
			}
		})
	}
}
