package order

import (
	"errors"
	"testing"

	"github.com/antt-creator/beyondthetrenchesproject/internal/dto"
	"github.com/antt-creator/beyondthetrenchesproject/internal/entity"
)

func validRequest() dto.CreateOrderRequest {
	return dto.CreateOrderRequest{
		Name:        "Ann Lee",
		Phone:       "+12345678",
		Address:     "1 Main St, City",
		Qty:         2,
		PaymentType: entity.PaymentCOD,
		Country:     "US",
	}
}

func fieldErrors(t *testing.T, err error) FieldErrors {
	t.Helper()
	var fields FieldErrors
	if !errors.As(err, &fields) {
		t.Fatalf("expected FieldErrors, got %T: %v", err, err)
	}
	return fields
}

func TestValidateCreateAccepts(t *testing.T) {
	got, err := ValidateCreate(validRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.PaymentType != entity.PaymentCOD {
		t.Errorf("paymentType = %q, want COD", got.PaymentType)
	}
}

func TestValidateCreateCollectsAllErrors(t *testing.T) {
	_, err := ValidateCreate(dto.CreateOrderRequest{})
	fields := fieldErrors(t, err)

	for _, name := range []string{"name", "phone", "address", "qty", "paymentType", "country"} {
		if _, ok := fields[name]; !ok {
			t.Errorf("missing field error for %q in %v", name, fields)
		}
	}
}

func TestValidateCreateFieldRules(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*dto.CreateOrderRequest)
		wantKey string
	}{
		{"short name", func(r *dto.CreateOrderRequest) { r.Name = "A" }, "name"},
		{"short phone", func(r *dto.CreateOrderRequest) { r.Phone = "1234567" }, "phone"},
		{"short address", func(r *dto.CreateOrderRequest) { r.Address = "1 St" }, "address"},
		{"zero qty", func(r *dto.CreateOrderRequest) { r.Qty = 0 }, "qty"},
		{"negative qty", func(r *dto.CreateOrderRequest) { r.Qty = -3 }, "qty"},
		{"bad payment type", func(r *dto.CreateOrderRequest) { r.PaymentType = "Wire" }, "paymentType"},
		{"missing payment type", func(r *dto.CreateOrderRequest) { r.PaymentType = "" }, "paymentType"},
		{"unknown country", func(r *dto.CreateOrderRequest) { r.Country = "ZZ" }, "country"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validRequest()
			tc.mutate(&req)
			_, err := ValidateCreate(req)
			fields := fieldErrors(t, err)
			if _, ok := fields[tc.wantKey]; !ok {
				t.Errorf("expected error on %q, got %v", tc.wantKey, fields)
			}
			if len(fields) != 1 {
				t.Errorf("expected exactly one field error, got %v", fields)
			}
		})
	}
}

func TestValidateCreateNormalizesCashOnDelivery(t *testing.T) {
	req := validRequest()
	req.PaymentType = "CashOnDelivery"
	got, err := ValidateCreate(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.PaymentType != entity.PaymentCOD {
		t.Errorf("paymentType = %q, want COD", got.PaymentType)
	}
}

func TestValidateCreateTrimsWhitespace(t *testing.T) {
	req := validRequest()
	req.Name = "  Ann Lee  "
	req.Address = " 1 Main St, City "
	got, err := ValidateCreate(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Name != "Ann Lee" {
		t.Errorf("name = %q, want trimmed", got.Name)
	}
	if got.Address != "1 Main St, City" {
		t.Errorf("address = %q, want trimmed", got.Address)
	}
}
