package validation

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"
)

type signupForm struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Color    string `json:"color" validate:"omitempty,hexcolor"`
}

func TestToDetails(t *testing.T) {
	v := validator.New()

	err := v.Struct(signupForm{Email: "not-an-email", Password: "short", Color: "red"})
	require.Error(t, err)

	details := ToDetails(err)
	require.Equal(t, "must be a valid email", details["Email"])
	require.Equal(t, "must be at least 8 characters long", details["Password"])
	require.Equal(t, "must be a valid hex color", details["Color"])
}

func TestToDetails_NonValidationError(t *testing.T) {
	require.Nil(t, ToDetails(nil))

	details := ToDetails(assertError{})
	require.Equal(t, map[string]string{"payload": "invalid payload"}, details)
}

type assertError struct{}

func (assertError) Error() string { return "boom" }
