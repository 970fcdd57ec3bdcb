package validate

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"oneclickticket/constants"
	"oneclickticket/model"
	"oneclickticket/utils"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
)

var validate = newValidator()

var copyFields = copier.Copy

// build copies the matching fields of a checked form into the entity.
func build(entity, input any) error {
	if err := copyFields(entity, input); err != nil {
		return fmt.Errorf("copy %T into %T: %w", input, entity, err)
	}
	return nil
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// report fields under their form key
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	_ = v.RegisterValidation("genre", func(fl validator.FieldLevel) bool {
		_, ok := model.ParseGenre(fl.Field().String())
		return ok
	})
	return v
}

// Mode tells the shared validators which form they are checking.
type Mode int

const (
	Create Mode = iota
	Edit
)

func (m Mode) String() string {
	if m == Edit {
		return "edit"
	}
	return "create"
}

// messages maps "Field.tag" (or just "Field") to the text shown next to the field.
type messages map[string]string

func (m messages) lookup(field, tag string) string {
	if msg, ok := m[field+"."+tag]; ok {
		return msg
	}
	if msg, ok := m[field]; ok {
		return msg
	}
	return fmt.Sprintf("%s is invalid.", field)
}

func codeFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return constants.CODE_REQUIRED
	case "min", "max", "gte", "lte", "gt", "lt":
		if fe.Kind() == reflect.String {
			return constants.CODE_LENGTH
		}
		return constants.CODE_RANGE
	default:
		return constants.CODE_INVALID
	}
}

// collect runs the struct tag rules on input and returns every failing field.
func collect(input any, msgs messages) model.FieldErrors {
	err := validate.Struct(input)
	if err == nil {
		return nil
	}
	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		return model.FieldErrors{{Code: constants.CODE_INVALID, Message: err.Error()}}
	}
	out := make(model.FieldErrors, 0, len(ves))
	for _, fe := range ves {
		out = append(out, model.FieldError{
			Field:   fe.Field(),
			Code:    codeFor(fe),
			Message: msgs.lookup(fe.Field(), fe.Tag()),
		})
	}
	return out
}

func GetById(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		valueKey, err := strconv.ParseUint(c.Params(key), 10, 64)
		if err != nil || valueKey == 0 {
			return utils.NotFound(c)
		}

		c.Locals("inputId", uint(valueKey))
		return c.Next()
	}
}

// bindForm parses the request body into a fresh T and stores it under "input".
func bindForm[T any]() fiber.Handler {
	return func(c *fiber.Ctx) error {
		input := new(T)
		if err := c.BodyParser(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		c.Locals("input", input)
		return c.Next()
	}
}

// bindJSON parses and validates an API body, answering 400 on failure.
func bindJSON[T any]() fiber.Handler {
	return func(c *fiber.Ctx) error {
		input := new(T)
		if err := c.BodyParser(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		c.Locals("input", input)
		return c.Next()
	}
}
