package validator

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"reflect"
	"slices"
	"strconv"
	"strings"
	"time"

	"rental/shared/constant"
	"rental/shared/failure"

	val "github.com/go-playground/validator/v10"
)

var validate *val.Validate

func registerMimetypeValidation(field val.FieldLevel) bool {
	var contentType string

	switch file := field.Field().Interface().(type) {
	case multipart.FileHeader:
		contentType = file.Header.Get(constant.RequestHeaderContentType)
	case *multipart.FileHeader:
		if file == nil {
			return true
		}

		contentType = file.Header.Get(constant.RequestHeaderContentType)
	default:
		return false
	}

	allowedTypes := strings.Split(field.Param(), " ")

	return slices.Contains(allowedTypes, contentType)
}

func registerFileSizeValidation(field val.FieldLevel) bool {
	var fileSize int64

	switch file := field.Field().Interface().(type) {
	case multipart.FileHeader:
		fileSize = file.Size
	case *multipart.FileHeader:
		if file == nil {
			return true
		}

		fileSize = file.Size
	default:
		return false
	}

	maxSizeMB, err := strconv.ParseFloat(field.Param(), 64)
	if err != nil {
		return false
	}

	bytesConversion := 1024.0
	maxSizeBytes := int64(maxSizeMB * bytesConversion * bytesConversion)

	return fileSize <= maxSizeBytes
}

// registerDateValidation accepts calendar dates in the YYYY-MM-DD layout.
func registerDateValidation(field val.FieldLevel) bool {
	value := field.Field().String()

	_, err := time.Parse(constant.DateOnlyFormat, value)

	return err == nil
}

func jsonTagName(field reflect.StructField) string {
	for _, tag := range []string{"json", "form", "query"} {
		name := strings.SplitN(field.Tag.Get(tag), ",", 2)[0]
		if name == "-" {
			return ""
		}

		if name != "" {
			return name
		}
	}

	return field.Name
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(jsonTagName)

	err := validate.RegisterValidation("empty", func(fl val.FieldLevel) bool {
		return fl.Field().IsZero()
	})
	if err != nil {
		panic(err)
	}

	err = validate.RegisterValidation("mimetypes", registerMimetypeValidation)
	if err != nil {
		panic(err)
	}

	err = validate.RegisterValidation("maxfilesize", registerFileSizeValidation)
	if err != nil {
		panic(err)
	}

	err = validate.RegisterValidation("date", registerDateValidation)
	if err != nil {
		panic(err)
	}
}

// Validate reads from the given io.Reader into the given struct, and then performs validation
// on the struct using the validator package. If the struct is invalid according to the
// validation rules, an error listing every failing field is returned.
// https://github.com/go-playground/validator
func Validate[T any](r io.Reader, data *T) error {
	decoder := json.NewDecoder(r)
	err := decoder.Decode(data)

	if err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	return ValidateStruct(data)
}

func ValidateStruct[T any](data *T) error {
	err := validate.Struct(data)

	if err != nil {
		msg, fields := messages(err)

		return failure.Validation(msg, fields) //nolint:wrapcheck
	}

	return nil
}

// ValidateVar checks a single value, such as a path or query parameter, reporting failures
// under name.
func ValidateVar(name string, field any, tag string) error {
	err := validate.Var(field, tag)
	if err == nil {
		return nil
	}

	var valErrors val.ValidationErrors
	if !errors.As(err, &valErrors) || len(valErrors) == 0 {
		return failure.BadRequest(err) //nolint:wrapcheck
	}

	msg := strings.TrimSpace(name + render(valErrors[0]))

	return failure.Validation(msg, map[string]string{name: msg}) //nolint:wrapcheck
}
