// Package validate plugs tinyid checks into go-playground/validator.
package validate

import (
	"reflect"

	"github.com/go-playground/validator/v10"

	"github.com/tinyid-go/tinyid/tinyid"
)

// Tag is the struct tag registered by Register.
const Tag = "tinyid"

var idType = reflect.TypeOf(tinyid.ID{}) //nolint:gochecknoglobals

// Register adds the tinyid tag to v. On string fields the tag requires text
// that Decode accepts. On tinyid.ID fields it requires a non-null ID.
func Register(v *validator.Validate) error {
	return v.RegisterValidation(Tag, isTinyID) //nolint:wrapcheck
}

// New returns a validator with the tinyid tag registered.
func New() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	if err := Register(v); err != nil {
		panic(err)
	}

	return v
}

func isTinyID(fl validator.FieldLevel) bool {
	field := fl.Field()

	switch {
	case field.Type() == idType:
		id, _ := field.Interface().(tinyid.ID)

		return id.IsValid()
	case field.Kind() == reflect.String:
		_, err := tinyid.Decode(field.String())

		return err == nil
	default:
		return false
	}
}
