package utils

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"

	"Backend-Yeoun-Survey/src/services/catalog"
)

var (
	Validate   *validator.Validate
	Translator ut.Translator
)

const (
	mainPositionTag     = "mainposition"
	detailedPositionTag = "detailedposition"
)

func init() {
	Validate = validator.New()

	_en := en.New()
	uni := ut.New(_en, _en)
	Translator, _ = uni.GetTranslator("en")
	_ = en_translations.RegisterDefaultTranslations(Validate, Translator)

	// report json field names
	Validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = Validate.RegisterValidation(mainPositionTag, func(fl validator.FieldLevel) bool {
		return catalog.IsMainPosition(fl.Field().String())
	})
	_ = Validate.RegisterValidation(detailedPositionTag, func(fl validator.FieldLevel) bool {
		return catalog.IsDetailedPosition(fl.Field().String())
	})
	registerTranslation(mainPositionTag, "{0} must be a main position")
	registerTranslation(detailedPositionTag, "{0} must be a detailed position")
}

func registerTranslation(tag, text string) {
	_ = Validate.RegisterTranslation(
		tag, Translator,
		func(t ut.Translator) error { return t.Add(tag, text, false) },
		func(t ut.Translator, fe validator.FieldError) string {
			s, _ := t.T(tag, fe.Field())
			return s
		},
	)
}

// ValidationDetails flattens validator errors into field -> message.
func ValidationDetails(err error) map[string]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		out[fe.Field()] = fe.Translate(Translator)
	}
	return out
}
