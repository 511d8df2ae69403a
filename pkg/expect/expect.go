// Package expect builds predicates over decoded JSON response bodies.
// Paths use gjson syntax (e.g., "data.items", "data.items.0.handle").
package expect

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/tidwall/gjson"
)

// Predicate inspects a decoded body and returns an error describing the
// first mismatch, or nil.
type Predicate func(body gjson.Result) error

// True requires path to hold the JSON literal true.
func True(path string) Predicate {
	return func(body gjson.Result) error {
		v := body.Get(path)
		if v.Type != gjson.True {
			return fmt.Errorf("%s: got %s, want true", path, describe(v))
		}
		return nil
	}
}

// Equal requires the value at path, rendered as a string, to equal want.
func Equal(path, want string) Predicate {
	return func(body gjson.Result) error {
		v := body.Get(path)
		if !v.Exists() {
			return fmt.Errorf("%s: missing, want %q", path, want)
		}
		if v.String() != want {
			return fmt.Errorf("%s: got %q, want %q", path, v.String(), want)
		}
		return nil
	}
}

// Exists requires path to be present, with any value including null.
func Exists(path string) Predicate {
	return func(body gjson.Result) error {
		if !body.Get(path).Exists() {
			return fmt.Errorf("%s: missing", path)
		}
		return nil
	}
}

// Bool requires path to hold true or false.
func Bool(path string) Predicate {
	return kind(path, "bool", gjson.Result.IsBool)
}

// Object requires path to hold a JSON object.
func Object(path string) Predicate {
	return kind(path, "object", gjson.Result.IsObject)
}

// Array requires path to hold a JSON array.
func Array(path string) Predicate {
	return kind(path, "array", gjson.Result.IsArray)
}

// Int requires path to hold an integral number.
func Int(path string) Predicate {
	return kind(path, "integer", func(v gjson.Result) bool {
		return v.Type == gjson.Number && v.Num == math.Trunc(v.Num)
	})
}

// All runs each predicate in order and returns the first error.
func All(preds ...Predicate) Predicate {
	return func(body gjson.Result) error {
		for _, p := range preds {
			if p == nil {
				continue
			}
			if err := p(body); err != nil {
				return err
			}
		}
		return nil
	}
}

// Path parses "path" or "path=value" into Exists or Equal.
func Path(expr string) (Predicate, error) {
	path, value, hasValue := strings.Cut(expr, "=")
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errors.New("JSON path is empty")
	}
	if hasValue {
		return Equal(path, value), nil
	}
	return Exists(path), nil
}

func kind(path, want string, ok func(gjson.Result) bool) Predicate {
	return func(body gjson.Result) error {
		v := body.Get(path)
		if !ok(v) {
			return fmt.Errorf("%s: got %s, want %s", path, describe(v), want)
		}
		return nil
	}
}

// describe names the JSON type of v, including the value for scalars.
func describe(v gjson.Result) string {
	switch {
	case !v.Exists():
		return "nothing"
	case v.IsObject():
		return "object"
	case v.IsArray():
		return "array"
	case v.Type == gjson.String:
		return fmt.Sprintf("string %q", v.Str)
	default:
		return v.Raw
	}
}
