package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type createPayload struct {
	CustomerName string `json:"customerName" validate:"required"`
	StartTime    *int64 `json:"startTime" validate:"required"`
}

func TestStruct_Valid(t *testing.T) {
	v := New()
	start := int64(1700000000000)
	err := v.Struct(&createPayload{CustomerName: "Alice", StartTime: &start})
	assert.NoError(t, err)
}

func TestStruct_MissingFieldsUseJSONNames(t *testing.T) {
	v := New()
	err := v.Struct(&createPayload{})
	require.Error(t, err)

	fieldErrs, ok := err.(FieldErrors)
	require.True(t, ok)
	require.Len(t, fieldErrs, 2)

	assert.Equal(t, "customerName", fieldErrs[0].Field)
	assert.Equal(t, "customerName is required", fieldErrs[0].Message)
	assert.Equal(t, "startTime is required", fieldErrs[1].Message)
}

func TestStruct_ZeroPointerTargetStillPasses(t *testing.T) {
	// required on a pointer checks presence, not the pointed-to value, so
	// an explicit zero timestamp is accepted.
	v := New()
	zero := int64(0)
	err := v.Struct(&createPayload{CustomerName: "Alice", StartTime: &zero})
	assert.NoError(t, err)
}

func TestFieldErrors_JoinsMessages(t *testing.T) {
	errs := FieldErrors{
		{Field: "title", Message: "title is required"},
		{Field: "name", Message: "name is required"},
	}
	assert.Equal(t, "title is required; name is required", errs.Error())
	assert.Empty(t, FieldErrors{}.Error())
}
