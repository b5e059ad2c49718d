package middleware

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/hanifz/tracerstudy/internal/pkg/logger"
	"github.com/hanifz/tracerstudy/internal/pkg/validation"
)

// RegisterValidations attaches domain specific validation tags to the
// validator engine used by gin binding. Call once during startup,
// before any request is handled.
func RegisterValidations() {
	engine, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		logger.Warn().Msg("Gin binding validator engine is not validator.Validate, custom tags not registered")
		return
	}

	if err := engine.RegisterValidation("tahun_akademik", validTahunAkademik); err != nil {
		logger.Error().Err(err).Msg("Failed to register tahun_akademik validation")
	}
}

// validTahunAkademik accepts academic years in the 2023/2024 form.
func validTahunAkademik(fl validator.FieldLevel) bool {
	return validation.IsValidTahunAkademik(fl.Field().String())
}
