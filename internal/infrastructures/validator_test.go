package infrastructures

import (
	"testing"

	goerrors "errors"

	"github.com/dealora/dealora-core/internal/app/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type validatorFixture struct {
	Title   string `json:"title" validate:"required,max=10"`
	PageURL string `json:"pageUrl" validate:"omitempty,url"`
	Kind    string `json:"kind" validate:"required,oneof=coupon deal"`
}

func TestValidateReportsJSONFieldNames(t *testing.T) {
	v := NewValidator()

	err := v.Validate(&validatorFixture{PageURL: "not a url", Kind: "bogus"})
	require.Error(t, err)

	var appErr *errors.AppError
	require.True(t, goerrors.As(err, &appErr))
	assert.Equal(t, 400, appErr.StatusCode)

	assert.Equal(t, "This field is required", appErr.Fields["title"])
	assert.Equal(t, "Must be a valid URL", appErr.Fields["pageUrl"])
	assert.Equal(t, "Must be one of: coupon deal", appErr.Fields["kind"])
	assert.NotContains(t, appErr.Fields, "Title")
}

func TestValidatePasses(t *testing.T) {
	v := NewValidator()

	err := v.Validate(&validatorFixture{Title: "Hello", Kind: "deal"})
	assert.NoError(t, err)
}

func TestValidateNilBody(t *testing.T) {
	v := NewValidator()

	err := v.Validate(nil)
	var appErr *errors.AppError
	require.True(t, goerrors.As(err, &appErr))
	assert.Equal(t, 400, appErr.StatusCode)
}
