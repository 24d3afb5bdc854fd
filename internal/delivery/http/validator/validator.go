// Package validator adapts go-playground/validator to Echo's Validator hook.
package validator

import (
	"net/http"

	playground "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// CustomValidator wraps a single shared validate instance; it caches struct
// metadata, so one instance serves the whole server.
type CustomValidator struct {
	validate *playground.Validate
}

// New creates the validator used by the Echo server.
func New() *CustomValidator {
	return &CustomValidator{validate: playground.New()}
}

// Validate implements echo.Validator. Violations surface as a 400 carrying
// the validator's field report.
func (v *CustomValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return nil
}
