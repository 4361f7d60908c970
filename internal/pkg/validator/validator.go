// Package validator wraps the go-playground/validator package,
// validation errors are translated to human readable messages.
package validator

import (
	"fmt"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslation "github.com/go-playground/validator/v10/translations/en"

	"github.com/keboola/go-docstore/internal/pkg/utils/errors"
)

// Validate a single value against the rules defined in the tag.
// The fieldName is used in the error message instead of an empty string.
func Validate(value any, tag string, fieldName string) error {
	validate, translator := newValidator()

	if err := validate.Var(value, tag); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return processValidateError(validationErrs, translator, fieldName)
		}
		panic(err)
	}

	return nil
}

func newValidator() (*validator.Validate, ut.Translator) {
	validate := validator.New()

	// Register default EN translator
	enLocale := en.New()
	enTranslator, found := ut.New(enLocale, enLocale).GetTranslator("en")
	if !found {
		panic(fmt.Errorf("en translator was not found"))
	}
	if err := enTranslation.RegisterDefaultTranslations(validate, enTranslator); err != nil {
		panic(fmt.Errorf("translator was not registered: %w", err))
	}

	return validate, enTranslator
}

func processValidateError(errs validator.ValidationErrors, translator ut.Translator, fieldName string) error {
	messages := make([]string, 0, len(errs))
	for _, e := range errs {
		// Var validation has no field name, prepend the provided one.
		messages = append(messages, fieldName+strings.TrimRight(e.Translate(translator), " "))
	}
	return errors.New(strings.Join(messages, "; "))
}
