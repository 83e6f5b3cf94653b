package lib

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type checkoutBody struct {
	Type          string `json:"type" validate:"required,oneof=mesa delivery"`
	DeliveryPhone string `json:"delivery_phone,omitempty" validate:"omitempty,min=8,max=20"`
}

func TestExtractAndValidateBody_Valid(t *testing.T) {
	r := httptest.NewRequest("POST", "/checkout", strings.NewReader(`{"type":"mesa"}`))

	body, err := ExtractAndValidateBody[checkoutBody](r)
	require.NoError(t, err)
	assert.Equal(t, "mesa", body.Type)
}

func TestExtractAndValidateBody_OneofViolation(t *testing.T) {
	r := httptest.NewRequest("POST", "/checkout", strings.NewReader(`{"type":"retirada"}`))

	_, err := ExtractAndValidateBody[checkoutBody](r)
	require.Error(t, err)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	require.Len(t, ve.Errors, 1)
	assert.Equal(t, "type", ve.Errors[0].Field)
	assert.Contains(t, ve.Errors[0].Message, "must be one of")
}

func TestExtractAndValidateBody_MissingRequiredField(t *testing.T) {
	r := httptest.NewRequest("POST", "/checkout", strings.NewReader(`{}`))

	_, err := ExtractAndValidateBody[checkoutBody](r)
	require.Error(t, err)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "is required", ve.Errors[0].Message)
}

func TestExtractAndValidateBody_RejectsUnknownFields(t *testing.T) {
	r := httptest.NewRequest("POST", "/checkout", strings.NewReader(`{"type":"mesa","bogus":true}`))

	_, err := ExtractAndValidateBody[checkoutBody](r)
	assert.Error(t, err)
}

func TestExtractAndValidateBody_RejectsMalformedJSON(t *testing.T) {
	r := httptest.NewRequest("POST", "/checkout", strings.NewReader(`{"type":`))

	_, err := ExtractAndValidateBody[checkoutBody](r)
	assert.Error(t, err)
}

func TestNewValidationError(t *testing.T) {
	err := NewValidationError("cart", "cart is empty")

	require.Len(t, err.Errors, 1)
	assert.Equal(t, "cart", err.Errors[0].Field)
	assert.Equal(t, "cart is empty", err.Errors[0].Message)
	assert.Equal(t, "validation failed", err.Error())
}
