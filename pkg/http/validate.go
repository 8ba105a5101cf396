package http

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	// report json field names instead of Go field names
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// Bind decodes the body into req, applies `default` tags and runs the validator.
// A nil result means req is valid.
func Bind(c echo.Context, req interface{}) []Problem {
	if err := c.Bind(req); err != nil {
		return problems(err)
	}
	if err := defaults.Set(req); err != nil {
		return problems(err)
	}
	if err := validate.StructCtx(c.Request().Context(), req); err != nil {
		return problems(err)
	}
	return nil
}

func problems(err error) []Problem {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		msg := err.Error()
		var he *echo.HTTPError
		if errors.As(err, &he) {
			msg = fmt.Sprint(he.Message)
		}
		return []Problem{{Code: "ERR_MALFORMED", Message: msg}}
	}

	out := make([]Problem, len(verrs))
	for i, fe := range verrs {
		out[i] = Problem{
			Code:    "ERR_" + strings.ToUpper(fe.Tag()),
			Field:   fe.Field(),
			Message: describe(fe),
			Params:  ruleParams(fe),
		}
	}
	return out
}

func describe(fe validator.FieldError) string {
	f, p := fe.Field(), fe.Param()
	unit := ""
	if fe.Kind() == reflect.String {
		unit = " characters"
	}
	switch fe.Tag() {
	case "required":
		return f + " is required"
	case "min":
		return fmt.Sprintf("%s must be at least %s%s", f, p, unit)
	case "max":
		return fmt.Sprintf("%s must be at most %s%s", f, p, unit)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", f, strings.Join(strings.Fields(p), ", "))
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", f, p)
	case "gte":
		return fmt.Sprintf("%s must be %s or more", f, p)
	case "lte":
		return fmt.Sprintf("%s must be %s or less", f, p)
	}
	return fmt.Sprintf("%s is invalid (%s)", f, fe.Tag())
}

func ruleParams(fe validator.FieldError) map[string]interface{} {
	switch fe.Tag() {
	case "min", "gte":
		return map[string]interface{}{"min": fe.Param()}
	case "max", "lte":
		return map[string]interface{}{"max": fe.Param()}
	case "gt":
		return map[string]interface{}{"value": fe.Param()}
	case "oneof":
		return map[string]interface{}{"options": strings.Fields(fe.Param())}
	}
	return nil
}
