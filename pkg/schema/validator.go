// Package schema is the trust boundary between model output and the rest of
// the service. Payloads are checked for presence, JSON type and field
// constraints, and nothing is coerced.
package schema

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _ := jsonName(fld)
		return name
	})
	return v
}

type Issue struct {
	Path   string `json:"path"`
	Reason string `json:"reason"`
}

type ValidationError struct {
	Schema string  `json:"schema"`
	Issues []Issue `json:"issues"`
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		if issue.Path == "" {
			parts = append(parts, issue.Reason)
			continue
		}
		parts = append(parts, issue.Path+": "+issue.Reason)
	}
	return fmt.Sprintf("%s failed validation: %s", e.Schema, strings.Join(parts, "; "))
}

// Validate checks payload against the shape of T.
//
// Fields must be present and non-null unless they are pointers or marked
// optional with omitempty or `schema:"optional"`. Unknown keys are dropped.
// `validate` tags are enforced after decoding.
func Validate[T any](payload []byte) Result[T] {
	var out T
	schemaType := reflect.TypeOf(out)
	verr := &ValidationError{Schema: schemaType.Name()}

	var raw any
	if err := json.Unmarshal(payload, &raw); err != nil {
		verr.Issues = append(verr.Issues, Issue{Reason: "invalid JSON: " + err.Error()})
		return Fail[T](verr)
	}
	if _, ok := raw.(map[string]any); !ok {
		verr.Issues = append(verr.Issues, Issue{Reason: "expected a JSON object at the top level"})
		return Fail[T](verr)
	}

	checkPresence(schemaType, raw, "", &verr.Issues)
	if len(verr.Issues) > 0 {
		return Fail[T](verr)
	}

	if err := json.Unmarshal(payload, &out); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			verr.Issues = append(verr.Issues, Issue{
				Path:   typeErr.Field,
				Reason: fmt.Sprintf("expected %s, got %s", typeErr.Type, typeErr.Value),
			})
		} else {
			verr.Issues = append(verr.Issues, Issue{Reason: err.Error()})
		}
		return Fail[T](verr)
	}

	if schemaType.Kind() == reflect.Struct {
		if err := validate.Struct(out); err != nil {
			var fieldErrs validator.ValidationErrors
			if !errors.As(err, &fieldErrs) {
				verr.Issues = append(verr.Issues, Issue{Reason: err.Error()})
				return Fail[T](verr)
			}
			for _, fe := range fieldErrs {
				verr.Issues = append(verr.Issues, Issue{
					Path:   trimRoot(fe.Namespace()),
					Reason: describe(fe),
				})
			}
			return Fail[T](verr)
		}
	}

	return Ok(out)
}

func checkPresence(t reflect.Type, data any, path string, issues *[]Issue) {
	switch t.Kind() {
	case reflect.Ptr:
		if data != nil {
			checkPresence(t.Elem(), data, path, issues)
		}
	case reflect.Struct:
		obj, ok := data.(map[string]any)
		if !ok {
			*issues = append(*issues, Issue{Path: path, Reason: "expected an object"})
			return
		}
		for i := 0; i < t.NumField(); i++ {
			fld := t.Field(i)
			if !fld.IsExported() {
				continue
			}
			name, optional := jsonName(fld)
			if name == "" {
				continue
			}
			fieldPath := joinPath(path, name)
			value, present := obj[name]
			if !present || value == nil {
				if !optional && fld.Type.Kind() != reflect.Ptr {
					*issues = append(*issues, Issue{Path: fieldPath, Reason: "is required"})
				}
				continue
			}
			checkPresence(fld.Type, value, fieldPath, issues)
		}
	case reflect.Slice:
		items, ok := data.([]any)
		if !ok {
			*issues = append(*issues, Issue{Path: path, Reason: "expected an array"})
			return
		}
		for i, item := range items {
			itemPath := fmt.Sprintf("%s[%d]", path, i)
			if item == nil && t.Elem().Kind() != reflect.Ptr {
				*issues = append(*issues, Issue{Path: itemPath, Reason: "must not be null"})
				continue
			}
			checkPresence(t.Elem(), item, itemPath, issues)
		}
	}
}

// jsonName returns the field's JSON key and whether the key may be omitted.
// `schema:"optional"` lets a field be optional on input while still encoding
// when empty.
func jsonName(fld reflect.StructField) (string, bool) {
	tag := fld.Tag.Get("json")
	if tag == "-" {
		return "", false
	}
	name, opts, _ := strings.Cut(tag, ",")
	if name == "" {
		name = fld.Name
	}
	optional := strings.Contains(opts, "omitempty") || fld.Tag.Get("schema") == "optional"
	return name, optional
}

func joinPath(parent, name string) string {
	if parent == "" {
		return name
	}
	return parent + "." + name
}

func trimRoot(namespace string) string {
	if _, rest, ok := strings.Cut(namespace, "."); ok {
		return rest
	}
	return namespace
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "oneof":
		return fmt.Sprintf("must be one of [%s], got %q", fe.Param(), fmt.Sprint(fe.Value()))
	case "min":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("must contain at least %s item(s)", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be >= %s", fe.Param())
	case "lte":
		return fmt.Sprintf("must be <= %s", fe.Param())
	case "required":
		return "is required"
	}
	return fmt.Sprintf("failed %q constraint", fe.Tag())
}
