package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type contactForm struct {
	Name  string `json:"name" validate:"notblank"`
	Email string `json:"email" validate:"notblank,basicemail"`
	Phone string `json:"phone" validate:"notblank,phone10"`
	Age   int    `json:"age" validate:"gte=0"`
	Code  string `validate:"max=3"`
}

func TestValidate_FieldRules(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name   string
		form   contactForm
		errors map[string]string
	}{
		{
			name: "valid",
			form: contactForm{Name: "Jane Smith", Email: "jane@example.com", Phone: "(555) 123-4567"},
		},
		{
			name: "blank name",
			form: contactForm{Name: "   ", Email: "jane@example.com", Phone: "5551234567"},
			errors: map[string]string{
				"name": "name is required",
			},
		},
		{
			name: "loose email and short phone",
			form: contactForm{Name: "Jane", Email: "jane@example", Phone: "555-123"},
			errors: map[string]string{
				"email": "email must be a valid email address",
				"phone": "phone must contain exactly 10 digits",
			},
		},
		{
			name: "field without json tag keeps struct name",
			form: contactForm{Name: "Jane", Email: "a@b.c", Phone: "555.123.4567", Code: "ABCD"},
			errors: map[string]string{
				"Code": "Code must be at most 3 characters",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.form)
			if tt.errors == nil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.errors, v.FormatValidationErrors(err))
		})
	}
}

func TestRegisterMessages_OverridesDefaults(t *testing.T) {
	v := NewValidator()
	v.RegisterMessages(map[string]string{
		"phone.phone10": "Please enter a valid 10-digit phone number",
	})

	err := v.Validate(contactForm{Name: "Jane", Email: "jane@example.com", Phone: "555-123"})
	require.Error(t, err)
	assert.Equal(t, map[string]string{"phone": "Please enter a valid 10-digit phone number"}, v.FormatValidationErrors(err))
}

func TestDigitsOnly(t *testing.T) {
	assert.Equal(t, "5551234567", DigitsOnly("(555) 123-4567"))
	assert.Equal(t, "", DigitsOnly("call me"))
}
