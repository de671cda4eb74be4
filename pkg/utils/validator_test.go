package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Name   string `validate:"required,max=10"`
	Email  string `validate:"required,email"`
	Status string `validate:"omitempty,contact_status"`
}

func TestValidateStructReportsAllViolations(t *testing.T) {
	err := ValidateStruct(&sampleRequest{Name: "", Email: "not-an-email"})
	require.Error(t, err)

	// Both violated fields appear in a single error, not just the first.
	assert.Contains(t, err.Error(), "Name")
	assert.Contains(t, err.Error(), "Email")
}

func TestContactStatusTag(t *testing.T) {
	valid := []string{"new", "read", "replied", "archived"}
	for _, status := range valid {
		err := ValidateStruct(&sampleRequest{Name: "a", Email: "a@b.co", Status: status})
		assert.NoError(t, err, "status %q should be accepted", status)
	}

	err := ValidateStruct(&sampleRequest{Name: "a", Email: "a@b.co", Status: "pending"})
	assert.Error(t, err)
}

func TestPhoneTag(t *testing.T) {
	type withPhone struct {
		Phone string `validate:"omitempty,phone"`
	}

	assert.NoError(t, ValidateStruct(&withPhone{Phone: "+1 (555) 123-4567"}))

	err := ValidateStruct(&withPhone{Phone: "not a phone"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Phone")
}

func TestSanitizeEmailCanonicalForm(t *testing.T) {
	assert.Equal(t, "admin@example.com", SanitizeEmail("  Admin@Example.COM "))
}
