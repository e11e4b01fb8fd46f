package handler

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldError is a single field-level validation failure. The wire field
// names (campo/mensaje) are kept from the legacy service, whose clients
// parse this exact shape.
type FieldError struct {
	Field   string `json:"campo"`
	Message string `json:"mensaje"`
}

// ValidationError carries every field failure from one request body. It is
// rendered by the central HTTP error handler as a JSON array.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, fe := range e.Fields {
		msgs = append(msgs, fe.Field+": "+fe.Message)
	}
	return strings.Join(msgs, "; ")
}

// echoValidator wraps go-playground/validator so Echo can call c.Validate(req).
type echoValidator struct {
	v *validator.Validate
}

// NewValidator returns an echoValidator ready to be assigned to echo.Echo.Validator.
// Field names are reported by their json tag so error payloads match the wire.
func NewValidator() *echoValidator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &echoValidator{v: v}
}

// Validate satisfies the echo.Validator interface. Failures come back as a
// *ValidationError so the error handler can render the field list.
func (ev *echoValidator) Validate(i any) error {
	if err := ev.v.Struct(i); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			fields := make([]FieldError, 0, len(ve))
			for _, fe := range ve {
				fields = append(fields, fieldError(fe))
			}
			return &ValidationError{Fields: fields}
		}
		return err
	}
	return nil
}

// fieldError converts a single ValidationError into a field/message pair.
// Messages reproduce the legacy service's validation texts.
func fieldError(fe validator.FieldError) FieldError {
	field := strings.ToLower(fe.Field())

	var msg string
	switch field {
	case "nombre":
		if fe.Tag() == "required" {
			msg = "El nombre es obligatorio"
		} else {
			msg = "El nombre debe tener entre 2 y 100 caracteres"
		}
	case "email":
		if fe.Tag() == "required" {
			msg = "El email es obligatorio"
		} else {
			msg = "El email no es válido"
		}
	case "contrasena":
		if fe.Tag() == "required" {
			msg = "La contraseña es obligatoria"
		} else {
			msg = "La contraseña debe tener mínimo 8 caracteres"
		}
	case "telefono":
		msg = "Teléfono inválido. Debe tener entre 7 y 15 dígitos"
	case "rol":
		msg = "El rol es obligatorio"
	default:
		msg = fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}

	return FieldError{Field: field, Message: msg}
}
