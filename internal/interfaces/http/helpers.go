package http

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/supermercado-pro/internal/application/dto"
)

var validate = validator.New()

func init() {
	// Registra decimal.Decimal como tipo numérico para que tags como
	// min=0, gt=0, required funcionen sin panic ("Bad field type decimal.Decimal").
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if v, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := v.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
}

// parseAndValidate decodifica el cuerpo JSON y corre las tags de
// go-playground/validator. Devuelve false y escribe la respuesta de error
// si falla; el caller debe retornar nil de inmediato.
func parseAndValidate(c *fiber.Ctx, req interface{}) bool {
	if err := c.BodyParser(req); err != nil {
		_ = c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
		return false
	}
	if err := validate.Struct(req); err != nil {
		var fields []string
		for _, fe := range err.(validator.ValidationErrors) {
			fields = append(fields, fe.Field()+":"+fe.Tag())
		}
		_ = c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code:    "VALIDATION",
			Message: strings.Join(fields, ", "),
		})
		return false
	}
	return true
}
