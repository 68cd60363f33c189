// Package access reads values out of nested structs, maps and slices by path.
//
// A path is a list of steps. Each step selects an exported struct field by
// name, a map entry by key, or a slice or array element by decimal index
// (negative indices count from the end). Pointers and interfaces are followed
// transparently. A step that cannot be taken yields an empty result instead
// of an error.
package access

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/mitchellh/mapstructure"

	"martianoff/galaseq/opt"
)

// Get returns the value found by following path from root.
func Get(root any, path ...string) opt.Opt[any] {
	cur := reflect.ValueOf(root)
	for _, step := range path {
		next, ok := lookup(cur, step)
		if !ok {
			return opt.None[any]()
		}
		cur = next
	}
	if !cur.IsValid() || !cur.CanInterface() {
		return opt.None[any]()
	}
	return opt.Of(cur.Interface())
}

// GetAs returns the value found at path decoded into T. Decoding is weakly
// typed: "3" decodes into an int and maps decode into structs by
// mapstructure tags or field names. A missing path is not an error.
func GetAs[T any](root any, path ...string) (opt.Opt[T], error) {
	found, ok := Get(root, path...).Unwrap()
	if !ok {
		return opt.None[T](), nil
	}
	if v, ok := found.(T); ok {
		return opt.Of(v), nil
	}

	var out T
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       mapstructure.TextUnmarshallerHookFunc(),
		WeaklyTypedInput: true,
		Result:           &out,
	})
	if err != nil {
		return opt.None[T](), err
	}
	if err := decoder.Decode(found); err != nil {
		return opt.None[T](), fmt.Errorf("decoding %q: %w", strings.Join(path, "."), err)
	}
	return opt.Of(out), nil
}

// Getter returns a function reading path from its argument, ready to be used
// with seq.Map.
func Getter(path ...string) func(any) opt.Opt[any] {
	path = append([]string(nil), path...)
	return func(root any) opt.Opt[any] {
		return Get(root, path...)
	}
}

// Split turns a dotted path such as "pipeline.steps.0" into its steps.
func Split(dotted string) []string {
	if dotted == "" {
		return nil
	}
	return strings.Split(dotted, ".")
}

func indirect(v reflect.Value) (reflect.Value, bool) {
	for v.IsValid() && (v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface) {
		if v.IsNil() {
			return reflect.Value{}, false
		}
		v = v.Elem()
	}
	return v, v.IsValid()
}

func lookup(v reflect.Value, step string) (reflect.Value, bool) {
	v, ok := indirect(v)
	if !ok {
		return reflect.Value{}, false
	}

	switch v.Kind() {
	case reflect.Struct:
		f, ok := v.Type().FieldByName(step)
		if !ok || !f.IsExported() {
			return reflect.Value{}, false
		}
		field, err := v.FieldByIndexErr(f.Index)
		return field, err == nil
	case reflect.Map:
		key, ok := mapKey(v.Type().Key(), step)
		if !ok {
			return reflect.Value{}, false
		}
		e := v.MapIndex(key)
		return e, e.IsValid()
	case reflect.Slice, reflect.Array:
		i, err := strconv.Atoi(step)
		if err != nil {
			return reflect.Value{}, false
		}
		if i < 0 {
			i += v.Len()
		}
		if i < 0 || i >= v.Len() {
			return reflect.Value{}, false
		}
		return v.Index(i), true
	default:
		return reflect.Value{}, false
	}
}

// mapKey converts step into a key of type t. String and integer keys are
// parsed; other key types are not addressable by path.
func mapKey(t reflect.Type, step string) (reflect.Value, bool) {
	switch t.Kind() {
	case reflect.String:
		return reflect.ValueOf(step).Convert(t), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(step, 10, t.Bits())
		if err != nil {
			return reflect.Value{}, false
		}
		return reflect.ValueOf(n).Convert(t), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(step, 10, t.Bits())
		if err != nil {
			return reflect.Value{}, false
		}
		return reflect.ValueOf(n).Convert(t), true
	case reflect.Interface:
		if reflect.TypeOf(step).Implements(t) {
			return reflect.ValueOf(step).Convert(t), true
		}
		return reflect.Value{}, false
	default:
		return reflect.Value{}, false
	}
}
