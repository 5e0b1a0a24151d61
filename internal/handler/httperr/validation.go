package httperr

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"ifuut-api/internal/pkg/errs"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

const nonFieldErrors = "non_field_errors"

// RegisterJSONFieldNames makes validator report json field names instead of Go struct field names.
func RegisterJSONFieldNames() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	v.RegisterTagNameFunc(jsonTagName)
}

func jsonTagName(f reflect.StructField) string {
	name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	if name == "-" || name == "" {
		return f.Name
	}
	return name
}

// ValidationDetail turns binding and use-case validation failures into a per-field message map.
func ValidationDetail(err error) map[string][]string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		detail := make(map[string][]string, len(verrs))
		for _, fe := range verrs {
			detail[fe.Field()] = append(detail[fe.Field()], fieldMessage(fe))
		}
		return detail
	}

	if fe, ok := errs.AsFieldError(err); ok {
		return fe.Fields
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return map[string][]string{typeErr.Field: {"A valid " + typeErr.Type.String() + " is required."}}
	}

	return map[string][]string{nonFieldErrors: {err.Error()}}
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "max":
		return fmt.Sprintf("Ensure this field has no more than %s characters.", fe.Param())
	case "min", "gt", "gte":
		return fmt.Sprintf("Ensure this value is greater than or equal to %s.", fe.Param())
	case "email":
		return "Enter a valid email address."
	case "oneof":
		return fmt.Sprintf("\"%v\" is not a valid choice.", fe.Value())
	default:
		return fmt.Sprintf("Failed on the %q rule.", fe.Tag())
	}
}
