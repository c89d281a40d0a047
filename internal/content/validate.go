// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package content

import (
	"errors"
	"fmt"
	"net/url"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/gorilla/schema"
)

var (
	validate = newValidator()

	// fieldDecoder rejects keys a draft does not have.
	fieldDecoder = newDecoder(false)
	// formDecoder ignores extra keys posted alongside a draft (action, draft id).
	formDecoder = newDecoder(true)
)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(err)
	}
	v.RegisterTagNameFunc(fieldName)
	return v
}

func newDecoder(ignoreUnknown bool) *schema.Decoder {
	d := schema.NewDecoder()
	d.SetAliasTag("json")
	d.IgnoreUnknownKeys(ignoreUnknown)
	d.ZeroEmpty(true)
	return d
}

// fieldName names a draft field by its json key, falling back to the
// lowercased Go name for fields that are not decoded from forms.
func fieldName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	if name == "" || name == "-" {
		return strings.ToLower(f.Name)
	}
	return name
}

// Validate checks that every required field of draft is filled in.
func Validate(draft any) error {
	err := validate.Struct(draft)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("validating draft: %w", err)
	}

	ve := &ValidationError{}
	for _, fe := range fieldErrs {
		ve.Fields = append(ve.Fields, fe.Field())
	}
	return ve
}

// decodeField sets a single field of dst from a form key.
func decodeField(dst any, key, value string) error {
	err := fieldDecoder.Decode(dst, url.Values{key: {value}})
	if err == nil {
		return nil
	}

	var multi schema.MultiError
	if errors.As(err, &multi) {
		for _, e := range multi {
			var unknown schema.UnknownKeyError
			if errors.As(e, &unknown) {
				return fmt.Errorf("%w: %s", ErrUnknownField, key)
			}
		}
	}
	return fmt.Errorf("setting %s: %w", key, err)
}

// decodeForm copies the draft fields present in values into dst.
func decodeForm(dst any, values url.Values) error {
	if err := formDecoder.Decode(dst, values); err != nil {
		return fmt.Errorf("decoding form: %w", err)
	}
	return nil
}

// Decode fills a fresh draft from submitted form values, ignoring keys the
// draft does not have.
func Decode[D any](values url.Values) (D, error) {
	var d D
	err := decodeForm(&d, values)
	return d, err
}
