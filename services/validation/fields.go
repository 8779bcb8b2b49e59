package validation

import (
	"github.com/MarcGrol/shopfront/lib/myerrors"
)

// Field enumerates the checkout fields that can carry a validation rule.
// Unknown names are rejected at the boundary instead of silently passing.
type Field string

const (
	FieldPayment Field = "payment"
	FieldEmail   Field = "email"
	FieldPhone   Field = "phone"
	FieldAddress Field = "address"
)

// AllFields returns the recognized fields in their canonical order.
func AllFields() []Field {
	return []Field{FieldPayment, FieldEmail, FieldPhone, FieldAddress}
}

func ParseField(name string) (Field, error) {
	switch Field(name) {
	case FieldPayment, FieldEmail, FieldPhone, FieldAddress:
		return Field(name), nil
	}
	return "", myerrors.NewInvalidInputErrorf("unknown field name %q", name)
}
