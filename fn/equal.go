package fn

import "reflect"

// Equatable is implemented by types with their own notion of equality.
type Equatable[T any] interface {
	Equal(other T) bool
}

// Equal compares two values. Types implementing Equatable decide for
// themselves; everything else falls back to reflect.DeepEqual.
func Equal[T any](v1, v2 T) bool {
	if e, ok := any(v1).(Equatable[T]); ok {
		return e.Equal(v2)
	}

	val1 := reflect.ValueOf(v1)
	val2 := reflect.ValueOf(v2)

	// T may be an interface type holding an Equatable implementation.
	if val1.IsValid() && val2.IsValid() {
		equalMeth := val1.MethodByName("Equal")
		if equalMeth.IsValid() && equalMeth.Type().NumIn() == 1 && equalMeth.Type().NumOut() == 1 && equalMeth.Type().Out(0).Kind() == reflect.Bool {
			if val2.Type().AssignableTo(equalMeth.Type().In(0)) {
				return equalMeth.Call([]reflect.Value{val2})[0].Bool()
			}
		}
	}

	return reflect.DeepEqual(v1, v2)
}

// IsNil reports whether v is nil or a nil pointer, map, channel, function or
// interface. Nil slices are not considered nil: they are valid empty slices.
func IsNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Chan, reflect.Func, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}
