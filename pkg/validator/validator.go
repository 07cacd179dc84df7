package validator

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/ghuser/shoppinglist/pkg/httpx"
)

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]

		// ignore unexported or explicitly ignored
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
}

// PartialUpdate is implemented by update DTOs whose fields are all optional.
// ValidateRequest rejects a payload for which IsEmpty reports true.
type PartialUpdate interface {
	IsEmpty() bool
}

// ErrEmptyUpdate is returned by Validate for a PartialUpdate with no fields set.
var ErrEmptyUpdate = errors.New("at least one field must be provided")

// Validate runs struct-level validation using go-playground/validator tags.
func Validate(s any) error {
	if p, ok := s.(PartialUpdate); ok && p.IsEmpty() {
		return ErrEmptyUpdate
	}
	return validate.Struct(s)
}

// Var validates a single value against a tag string, e.g. Var(id, "uuid").
func Var(v any, tag string) error {
	return validate.Var(v, tag)
}

// FormatValidationErrors converts validator.ValidationErrors into a map of
// field path → human-readable message. Nested fields keep their index,
// e.g. "items[0].name".
func FormatValidationErrors(err error) map[string]string {
	errs := make(map[string]string)
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return errs
	}
	for _, e := range ve {
		errs[fieldPath(e)] = formatFieldError(e)
	}
	return errs
}

// fieldPath strips the root struct name from the namespace.
func fieldPath(e validator.FieldError) string {
	ns := e.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return e.Field()
}

func formatFieldError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "This field is required"
	case "uuid", "uuid4":
		return "Must be a valid UUID"
	case "min":
		return fmt.Sprintf("Minimum length is %s", e.Param())
	case "max":
		return fmt.Sprintf("Maximum length is %s", e.Param())
	case "oneof":
		return fmt.Sprintf("Must be one of: %s", strings.ReplaceAll(e.Param(), " ", ", "))
	case "datetime":
		return "Must be an ISO 8601 UTC date-time (e.g. 2024-01-15T10:30:00Z)"
	case "dive":
		return "Invalid element"
	case "gte":
		return fmt.Sprintf("Must be greater than or equal to %s", e.Param())
	case "lte":
		return fmt.Sprintf("Must be less than or equal to %s", e.Param())
	default:
		return fmt.Sprintf("Validation failed on '%s'", e.Tag())
	}
}

// ValidateRequest decodes the JSON request body into T, validates it, and
// writes a 400 VALIDATION_ERROR response if either step fails.
// Returns (parsedStruct, true) on success or (nil, false) on failure.
func ValidateRequest[T any](w http.ResponseWriter, r *http.Request) (*T, bool) {
	var req T
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.ValidationError(w, r, "Invalid JSON", nil)
		return nil, false
	}
	return check(w, r, &req)
}

// DecodeOptional is ValidateRequest for endpoints whose body may be omitted.
// An empty body yields the zero value of T.
func DecodeOptional[T any](w http.ResponseWriter, r *http.Request) (*T, bool) {
	var req T
	if r.Body == nil || r.Body == http.NoBody {
		return &req, true
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		httpx.ValidationError(w, r, "Invalid JSON", nil)
		return nil, false
	}
	if err := validate.Struct(&req); err != nil {
		httpx.ValidationError(w, r, "Validation failed", FormatValidationErrors(err))
		return nil, false
	}
	return &req, true
}

func check[T any](w http.ResponseWriter, r *http.Request, req *T) (*T, bool) {
	if err := Validate(req); err != nil {
		if errors.Is(err, ErrEmptyUpdate) {
			httpx.ValidationError(w, r, "At least one field must be provided", nil)
			return nil, false
		}
		httpx.ValidationError(w, r, "Validation failed", FormatValidationErrors(err))
		return nil, false
	}
	return req, true
}
