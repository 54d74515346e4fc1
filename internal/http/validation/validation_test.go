package validation

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleInput struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name" validate:"required,min=2"`
	Plain string `validate:"required"`
}

func TestFromBindErrorUsesJSONTags(t *testing.T) {
	v := validator.New()
	err := v.Struct(&sampleInput{Email: "not-an-email", Name: "x"})
	require.Error(t, err)

	out := FromBindError(err, &sampleInput{})
	assert.Equal(t, "الرجاء إدخال بريد إلكتروني صحيح.", out["email"])
	assert.Equal(t, "الحد الأدنى 2 أحرف.", out["name"])
	// fields without a json tag fall back to the lowercased struct name
	assert.Equal(t, "هذا الحقل مطلوب.", out["plain"])
}

func TestFromBindErrorNonValidationError(t *testing.T) {
	out := FromBindError(assert.AnError, &sampleInput{})
	assert.Contains(t, out, "_")
}
