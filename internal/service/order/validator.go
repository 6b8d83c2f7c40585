package order

import (
	"fmt"
	"sort"
	"strings"

	"github.com/antt-creator/beyondthetrenchesproject/internal/catalog"
	"github.com/antt-creator/beyondthetrenchesproject/internal/dto"
	"github.com/antt-creator/beyondthetrenchesproject/internal/entity"
)

// FieldErrors maps field names to human-readable problems. All violations are
// collected in one pass so the caller can render every problem at once.
type FieldErrors map[string]string

// Error satisfies the error interface with a stable, sorted rendering.
func (f FieldErrors) Error() string {
	fields := make([]string, 0, len(f))
	for name := range f {
		fields = append(fields, name)
	}
	sort.Strings(fields)
	parts := make([]string, 0, len(fields))
	for _, name := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", name, f[name]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Details converts the field errors into errorbank detail values.
func (f FieldErrors) Details() map[string]any {
	details := make(map[string]any, len(f))
	for name, msg := range f {
		details[name] = msg
	}
	return details
}

// ValidateCreate checks a candidate submission against the field rules and
// returns a normalized copy, or the full set of field errors. It never fails
// fast: every violated rule is reported.
func ValidateCreate(req dto.CreateOrderRequest) (dto.CreateOrderRequest, error) {
	errs := FieldErrors{}

	req.Name = strings.TrimSpace(req.Name)
	req.Phone = strings.TrimSpace(req.Phone)
	req.Address = strings.TrimSpace(req.Address)
	req.Notes = strings.TrimSpace(req.Notes)
	req.Country = strings.TrimSpace(req.Country)

	if len([]rune(req.Name)) < 2 {
		errs["name"] = "name is too short"
	}
	if len([]rune(req.Phone)) < 8 {
		errs["phone"] = "invalid phone number"
	}
	if len([]rune(req.Address)) < 5 {
		errs["address"] = "please provide a more detailed address"
	}
	if req.Qty < 1 {
		errs["qty"] = "minimum 1 copy"
	}

	switch req.PaymentType {
	case entity.PaymentPrepaid, entity.PaymentCOD:
		// stored as-is
	case "CashOnDelivery":
		req.PaymentType = entity.PaymentCOD
	default:
		errs["paymentType"] = "payment type must be Prepaid or COD"
	}

	if _, ok := catalog.Lookup(req.Country); !ok {
		errs["country"] = "unknown country"
	}

	if len(errs) > 0 {
		return dto.CreateOrderRequest{}, errs
	}
	return req, nil
}
