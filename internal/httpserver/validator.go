package httpserver

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/stitchfit/marketplace/internal/models"
)

type requestValidator struct {
	validate *validator.Validate
}

// NewValidator builds the echo request validator with the domain rules
// registered ("material" checks the closed material vocabulary).
func NewValidator() echo.Validator {
	v := validator.New()
	_ = v.RegisterValidation("material", func(fl validator.FieldLevel) bool {
		_, err := models.ParseMaterial(fl.Field().String())
		return err == nil
	})
	return &requestValidator{validate: v}
}

func (rv *requestValidator) Validate(i any) error {
	if err := rv.validate.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}
