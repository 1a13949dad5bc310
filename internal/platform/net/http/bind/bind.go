// Package bind fills handler inputs from chi route params and query values and validates them
package bind

import (
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

var (
	vOnce sync.Once
	vInst *validator.Validate
	vTr   ut.Translator
)

// validate returns the shared validator; messages use the json name of a field
func validate() (*validator.Validate, ut.Translator) {
	vOnce.Do(func() {
		loc := en.New()
		vTr, _ = ut.New(loc, loc).GetTranslator("en")

		vInst = validator.New(validator.WithRequiredStructEnabled())
		vInst.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
			if name == "" || name == "-" {
				return f.Name
			}
			return name
		})
		_ = en_translations.RegisterDefaultTranslations(vInst, vTr)
	})
	return vInst, vTr
}

// firstFailure returns the field and english message of the first validation failure
func firstFailure(err error) (field, msg string) {
	_, tr := validate()
	if verrs, ok := err.(validator.ValidationErrors); ok && len(verrs) > 0 {
		return verrs[0].Field(), verrs[0].Translate(tr)
	}
	return "", err.Error()
}
