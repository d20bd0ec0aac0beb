package helper

import (
	"errors"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"gopkg.in/go-playground/validator.v9"
	en_translations "gopkg.in/go-playground/validator.v9/translations/en"

	"scholar-catalog/models"
)

// Validator bundles a struct validator with its English translator so field
// errors can be reported as readable messages.
type Validator struct {
	Validate   *validator.Validate
	Translator ut.Translator
}

// NewValidator builds the validator with English messages and the isodate
// rule registered.
// Field names in messages use the json tag of each field.
func NewValidator() *Validator {
	english := en.New()
	uni := ut.New(english, english)
	trans, _ := uni.GetTranslator("en")

	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	_ = en_translations.RegisterDefaultTranslations(validate, trans)

	_ = validate.RegisterValidation("isodate", validateISODate)
	_ = validate.RegisterTranslation("isodate", trans, func(ut ut.Translator) error {
		return ut.Add("isodate", "{0} must be a date formatted as YYYY-MM-DD", true)
	}, func(ut ut.Translator, fe validator.FieldError) string {
		t, _ := ut.T("isodate", fe.Field())
		return t
	})

	return &Validator{Validate: validate, Translator: trans}
}

func validateISODate(fl validator.FieldLevel) bool {
	_, err := time.Parse(models.DateLayout, fl.Field().String())
	return err == nil
}

// Struct validates s and returns validator.ValidationErrors on failure.
func (v *Validator) Struct(s interface{}) error {
	return v.Validate.Struct(s)
}

// FieldErrors translates validation errors into messages keyed by field
// name. Element errors such as authors[1] are reported under their parent.
func (v *Validator) FieldErrors(err error) map[string][]string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return nil
	}
	out := map[string][]string{}
	for _, fe := range validationErrors {
		key := fe.Field()
		if i := strings.IndexByte(key, '['); i > 0 {
			key = key[:i]
		}
		out[key] = append(out[key], fe.Translate(v.Translator))
	}
	return out
}
