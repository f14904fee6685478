// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package claims reads the list of publications claimed for an author.
//
// A claims file is YAML:
//
//	author:
//	  name: Jane Doe
//	  institution_ror: https://ror.org/00hx57361
//	claims:
//	  - title: "A Study: On Things, and Stuff"
//	    year: 2021
//	  - title: Untitled Notes
//
// The author block is optional when the author is given on the command line.
package claims

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/orcid-works/pkg/types"
)

// File is the on-disk representation of an author and their claims.
type File struct {
	Author *types.AuthorQuery `yaml:"author,omitempty"`
	Claims []types.WorkClaim  `yaml:"claims" validate:"required,min=1,dive"`
}

// ValidationError lists every invalid field found in one pass.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, field+": "+msg)
	}
	slices.Sort(parts)
	return "invalid claims: " + strings.Join(parts, "; ")
}

// Validator wraps go-playground/validator, reporting fields by YAML name.
type Validator struct {
	v *validator.Validate
}

// NewValidator creates a validator that names fields by their yaml tag.
func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("yaml"), ",")
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	return &Validator{v: v}
}

// Validate checks s against its validate tags.
func (v *Validator) Validate(s any) error {
	err := v.v.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fieldPath(fe.Namespace())] = message(fe)
	}
	return &ValidationError{Fields: fields}
}

// fieldPath drops the root struct name from a validator namespace.
func fieldPath(ns string) string {
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return ns
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("must contain at least %s item(s)", fe.Param())
		}
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	default:
		return "failed " + fe.Tag() + " check"
	}
}

// Parse decodes and validates a claims document.
func Parse(data []byte, v *Validator) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing claims file: %w", err)
	}
	for i := range f.Claims {
		f.Claims[i].Title = strings.TrimSpace(f.Claims[i].Title)
	}
	if err := v.Validate(&f); err != nil {
		return nil, err
	}
	return &f, nil
}

// ReadFile loads and validates the claims file at path.
func ReadFile(path string, v *Validator) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading claims file: %w", err)
	}
	return Parse(data, v)
}

// CountDir reads every *.yaml claims file in dir and returns how many files
// and claims it found. A missing dir counts as empty.
func CountDir(dir string, v *Validator) (files, claims int, err error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		return 0, 0, err
	}
	for _, p := range paths {
		f, err := ReadFile(p, v)
		if err != nil {
			return 0, 0, fmt.Errorf("%s: %w", p, err)
		}
		files++
		claims += len(f.Claims)
	}
	return files, claims, nil
}
