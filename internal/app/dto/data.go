package dto

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
)

var (
	Validate = validator.New()
	trans    ut.Translator

	iataPattern = regexp.MustCompile(`^[A-Z]{3}$`)
)

type ErrorResponse struct {
	Error string `json:"error"`
}

type customValidation struct {
	tag     string
	message string
	fn      validator.Func
}

var customValidations = []customValidation{
	{
		tag:     "iata",
		message: "{0} must be a 3-letter IATA airport code",
		fn: func(fl validator.FieldLevel) bool {
			return iataPattern.MatchString(fl.Field().String())
		},
	},
	{
		tag:     "local_datetime",
		message: "{0} must be an ISO-8601 date-time like 2006-01-02T15:04",
		fn: func(fl validator.FieldLevel) bool {
			_, err := ParseDateTime(fl.Field().String())
			return err == nil
		},
	},
}

func InitValidator() error {
	uni := ut.New(en.New(), en.New())
	trans, _ = uni.GetTranslator("en")

	err := enTranslations.RegisterDefaultTranslations(Validate, trans)
	if err != nil {
		return err
	}

	for _, cv := range customValidations {
		if err := Validate.RegisterValidation(cv.tag, cv.fn); err != nil {
			return err
		}

		err := Validate.RegisterTranslation(cv.tag, trans,
			func(ut ut.Translator) error {
				return ut.Add(cv.tag, cv.message, true)
			},
			func(ut ut.Translator, fe validator.FieldError) string {
				msg, _ := ut.T(fe.Tag(), fe.Field())
				return msg
			},
		)
		if err != nil {
			return err
		}
	}

	Validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return nil
}

func ValidateSingleError(req interface{}) error {
	if err := Validate.Struct(req); err != nil {
		if ve, ok := err.(validator.ValidationErrors); ok {
			return errors.New(ve[0].Translate(trans))
		}
		return err
	}
	return nil
}
