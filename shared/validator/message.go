package validator

import (
	"errors"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var (
	templates = map[string]string{
		"required":    "{field} is required",
		"gt":          "{field} must be greater than {param}",
		"gte":         "{field} must be greater than or equal to {param}",
		"lte":         "{field} must be less than or equal to {param}",
		"oneof":       "{field} must be one of {param}",
		"max":         "{field} must be less than or equal to {param}",
		"min":         "{field} must be greater than or equal to {param}",
		"email":       "{field} must be a valid email address",
		"uuid":        "{field} must be a valid UUID",
		"date":        "{field} must be a date in YYYY-MM-DD format",
		"mimetypes":   "{field} must be one of {param}",
		"maxfilesize": "{field} must not exceed {param} MB",
	}
)

// messages renders the first failing rule as the headline and every failing field into a map.
func messages(err error) (string, map[string]string) {
	var valErrors val.ValidationErrors

	if !errors.As(err, &valErrors) {
		return err.Error(), nil
	}

	fields := make(map[string]string, len(valErrors))
	headline := ""

	for _, valErr := range valErrors {
		msg := render(valErr)

		if _, seen := fields[valErr.Field()]; !seen {
			fields[valErr.Field()] = msg
		}

		if headline == "" {
			headline = msg
		}
	}

	return headline, fields
}

func render(valErr val.FieldError) string {
	tmpl := templates[valErr.Tag()]
	if tmpl == "" {
		return valErr.Field() + " is invalid"
	}

	msg := strings.ReplaceAll(tmpl, "{field}", valErr.Field())

	return strings.ReplaceAll(msg, "{param}", valErr.Param())
}
