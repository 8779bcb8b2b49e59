package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MarcGrol/shopfront/lib/myconfig"
)

func newTestEngine(t *testing.T) *Engine {
	rules, err := CompileRules(myconfig.DefaultValidationRules())
	assert.NoError(t, err)
	return NewEngine(rules)
}

func TestValidateField(t *testing.T) {
	engine := newTestEngine(t)

	testCases := []struct {
		name        string
		field       Field
		value       string
		expectError bool
	}{
		{
			name:        "Email pattern mismatch fails",
			field:       FieldEmail,
			value:       "x",
			expectError: true,
		},
		{
			name:        "Valid email passes",
			field:       FieldEmail,
			value:       "a@b.co",
			expectError: false,
		},
		{
			name:        "Empty required phone fails",
			field:       FieldPhone,
			value:       "",
			expectError: true,
		},
		{
			name:        "Valid phone passes",
			field:       FieldPhone,
			value:       "+79991234567",
			expectError: false,
		},
		{
			name:        "Whitespace-only address fails",
			field:       FieldAddress,
			value:       "   ",
			expectError: true,
		},
		{
			name:        "Non-empty address passes",
			field:       FieldAddress,
			value:       "Main St",
			expectError: false,
		},
		{
			name:        "Empty payment fails",
			field:       FieldPayment,
			value:       "",
			expectError: true,
		},
		{
			name:        "Chosen payment passes",
			field:       FieldPayment,
			value:       "cash",
			expectError: false,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			message := engine.ValidateField(tc.field, tc.value)
			if tc.expectError {
				assert.NotEmpty(t, message)
			} else {
				assert.Empty(t, message)
			}
		})
	}
}

func TestValidateFieldWithoutRule(t *testing.T) {
	// given: an engine that carries no rule for email
	engine := NewEngine(RuleSet{})

	// when
	message := engine.ValidateField(FieldEmail, "not-an-email")

	// then: a field without a rule is always valid
	assert.Empty(t, message)
}

func TestValidateFieldMessageIsVerbatim(t *testing.T) {
	engine := newTestEngine(t)

	specs := myconfig.DefaultValidationRules()

	message := engine.ValidateField(FieldPhone, "")
	assert.Equal(t, specs["phone"].Message, message)
}

func TestValidateForm(t *testing.T) {
	engine := newTestEngine(t)

	t.Run("Complete valid form yields no errors", func(t *testing.T) {
		errors := engine.ValidateForm(map[Field]string{
			FieldPayment: "cash",
			FieldEmail:   "a@b.co",
			FieldPhone:   "+79991234567",
			FieldAddress: "Main St",
		})

		assert.Len(t, errors, 0)
	})

	t.Run("Only failing fields are reported", func(t *testing.T) {
		errors := engine.ValidateForm(map[Field]string{
			FieldEmail: "not-an-email",
			FieldPhone: "+79991234567",
		})

		assert.Len(t, errors, 1)
		assert.NotEmpty(t, errors[FieldEmail])
	})

	t.Run("Partial form only validates the given subset", func(t *testing.T) {
		errors := engine.ValidateForm(map[Field]string{
			FieldPayment: "card",
			FieldAddress: "Main St",
		})

		assert.Len(t, errors, 0)
	})
}

func TestParseField(t *testing.T) {
	t.Run("Recognized fields parse", func(t *testing.T) {
		for _, name := range []string{"payment", "email", "phone", "address"} {
			field, err := ParseField(name)
			assert.NoError(t, err)
			assert.Equal(t, Field(name), field)
		}
	})

	t.Run("Unknown field is rejected", func(t *testing.T) {
		_, err := ParseField("nickname")
		assert.Error(t, err)
	})
}

func TestCompileRules(t *testing.T) {
	t.Run("Unknown field name is rejected", func(t *testing.T) {
		_, err := CompileRules(map[string]myconfig.ValidationRule{
			"nickname": {Required: true, Message: "enter a nickname"},
		})
		assert.Error(t, err)
	})

	t.Run("Broken pattern is rejected", func(t *testing.T) {
		_, err := CompileRules(map[string]myconfig.ValidationRule{
			"email": {Pattern: "([", Message: "broken"},
		})
		assert.Error(t, err)
	})
}
