package httpx

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
}

// RegisterValidation adds a custom validation tag.
func RegisterValidation(tag string, fn validator.Func) {
	if err := validate.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register validation %q: %v", tag, err))
	}
}

// ValidateStruct returns one ErrorDetail per failing field, or nil.
func ValidateStruct(s any) []ErrorDetail {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return []ErrorDetail{{Field: "", Message: err.Error()}}
	}

	details := make([]ErrorDetail, 0, len(validationErrors))
	for _, fe := range validationErrors {
		field := fe.Field()
		param := fe.Param()

		var message string
		switch fe.Tag() {
		case "required":
			message = fmt.Sprintf("%s is required", field)
		case "max":
			message = fmt.Sprintf("%s must be at most %s characters", field, param)
		case "len":
			message = fmt.Sprintf("%s must be exactly %s characters", field, param)
		case "datetime":
			message = fmt.Sprintf("%s must be a date in YYYY-MM-DD format", field)
		case "oneof":
			message = fmt.Sprintf("%s must be one of: %s", field, param)
		case "gt":
			message = fmt.Sprintf("%s must be greater than %s", field, param)
		case "uuid":
			message = fmt.Sprintf("%s must be a UUID", field)
		case "loanstatus":
			message = fmt.Sprintf("%s must be one of m, o, a, r", field)
		default:
			message = fmt.Sprintf("%s is invalid", field)
		}

		details = append(details, ErrorDetail{
			Field:   field,
			Message: message,
		})
	}
	return details
}

// DecodeAndValidate reads a JSON body into dst and validates it. On failure
// it writes the error response and returns false.
func DecodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			JSONError(w, r, http.StatusRequestEntityTooLarge, "PAYLOAD_TOO_LARGE", "Request body too large", nil)
			return false
		}
		JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid JSON body", nil)
		return false
	}
	if details := ValidateStruct(dst); details != nil {
		JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", details)
		return false
	}
	return true
}
