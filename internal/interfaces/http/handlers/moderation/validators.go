package moderation

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/EchoNews615/komibot/internal/domain/moderation"
)

// The "month" rule accepts calendar-month labels like 2024-02.
func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("month", func(fl validator.FieldLevel) bool {
			_, err := moderation.ParsePeriod(fl.Field().String())
			return err == nil
		})
	}
}
