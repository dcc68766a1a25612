package book

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// NewBook is the input accepted by Store.Add.
type NewBook struct {
	Title  string `json:"title" validate:"required"`
	Author string `json:"author" validate:"required"`
}

// Normalize trims surrounding whitespace from every field.
func (n NewBook) Normalize() NewBook {
	return NewBook{
		Title:  strings.TrimSpace(n.Title),
		Author: strings.TrimSpace(n.Author),
	}
}

// Validate normalizes n and reports every field that is still invalid.
func (n NewBook) Validate() []FieldError {
	err := validate.Struct(n.Normalize())
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Field: "", Message: err.Error()}}
	}

	var fields []FieldError
	for _, fe := range verrs {
		name := strings.ToLower(fe.Field()[:1]) + fe.Field()[1:]

		var message string
		switch fe.Tag() {
		case "required":
			message = fmt.Sprintf("%s is required", name)
		default:
			message = fmt.Sprintf("%s is invalid", name)
		}
		fields = append(fields, FieldError{Field: name, Message: message})
	}
	return fields
}
