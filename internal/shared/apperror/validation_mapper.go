package apperror

import (
	"errors"
	"net/http"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// formatFieldName turns "activity_type" or "activityType" into "Activity Type".
func formatFieldName(s string) string {
	var b strings.Builder
	for i, r := range s {
		if i > 0 && unicode.IsUpper(r) {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	caser := cases.Title(language.English)
	return caser.String(strings.ReplaceAll(b.String(), "_", " "))
}

func MapValidationError(err error) error {
	var errs validator.ValidationErrors
	if errors.As(err, &errs) && len(errs) > 0 {
		// Ambil error pertama saja
		e := errs[0]
		field := formatFieldName(e.Field())

		switch e.Tag() {
		case "required":
			return RequiredField(field)
		case "oneof":
			return New(CodeValidationError, field+" must be one of: "+e.Param(), http.StatusBadRequest)
		case "ymd":
			return New(CodeValidationError, field+" must be a date in YYYY-MM-DD format", http.StatusBadRequest)
		case "hourslot":
			return New(CodeValidationError, field+" must look like HH:MM-HH:MM", http.StatusBadRequest)
		case "email":
			return New(CodeValidationError, field+" must be a valid email", http.StatusBadRequest)
		case "min", "gte":
			return New(CodeValidationError, field+" must be at least "+e.Param(), http.StatusBadRequest)
		case "max", "lte":
			return New(CodeValidationError, field+" must be at most "+e.Param(), http.StatusBadRequest)
		default:
			return InvalidField(field)
		}
	}

	return New(
		CodeValidationError,
		"Invalid input",
		http.StatusBadRequest,
	)
}
