package pred

import (
	"fmt"
	"reflect"
	"slices"

	"martianoff/galaseq/fn"
)

// length returns the length of strings, slices, arrays, maps and channels.
// Pointers are dereferenced.
func length(v any) (int, bool) {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer && !rv.IsNil() {
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.String, reflect.Slice, reflect.Array, reflect.Map, reflect.Chan:
		return rv.Len(), true
	default:
		return 0, false
	}
}

// LenMatches holds for sized values (strings, slices, arrays, maps, channels)
// whose length satisfies p. It never holds for values without a length.
func LenMatches[T any](p Predicate[int]) Predicate[T] {
	return New("len("+p.name+")", func(v T) bool {
		n, ok := length(v)
		return ok && p.test(n)
	})
}

// HasLen holds for sized values of length n.
func HasLen[T any](n int) Predicate[T] {
	return LenMatches[T](Eq(n)).Named(fmt.Sprintf("has_len(%d)", n))
}

// IsEmpty holds for sized values of length zero.
func IsEmpty[T any]() Predicate[T] {
	return LenMatches[T](Zero[int]()).Named("empty")
}

// NotEmpty holds for sized values with at least one element.
func NotEmpty[T any]() Predicate[T] {
	return LenMatches[T](Positive[int]()).Named("not_empty")
}

// In holds for values that are one of values.
func In[T comparable](values ...T) Predicate[T] {
	set := make(map[T]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return New(call("in", values), func(x T) bool {
		_, ok := set[x]
		return ok
	})
}

// Contains holds for slices containing v.
func Contains[S ~[]E, E comparable](v E) Predicate[S] {
	return New(call("contains", v), func(s S) bool {
		return slices.Contains(s, v)
	})
}

// ContainsAllOf holds for slices containing every one of values.
func ContainsAllOf[S ~[]E, E comparable](values ...E) Predicate[S] {
	return New(call("contains_all_of", values), func(s S) bool {
		for _, v := range values {
			if !slices.Contains(s, v) {
				return false
			}
		}
		return true
	})
}

// ContainsAnyOf holds for slices containing at least one of values.
func ContainsAnyOf[S ~[]E, E comparable](values ...E) Predicate[S] {
	return New(call("contains_any_of", values), func(s S) bool {
		return slices.ContainsFunc(s, func(e E) bool {
			return slices.Contains(values, e)
		})
	})
}

// ContainsNoneOf holds for slices containing none of values.
func ContainsNoneOf[S ~[]E, E comparable](values ...E) Predicate[S] {
	return ContainsAnyOf[S](values...).Not().Named(call("contains_none_of", values))
}

// HasKeys holds for maps containing every one of keys.
func HasKeys[M ~map[K]V, K comparable, V any](keys ...K) Predicate[M] {
	return New(call("has_keys", keys), func(m M) bool {
		for _, k := range keys {
			if _, ok := m[k]; !ok {
				return false
			}
		}
		return true
	})
}

// OfType holds for values whose dynamic type is U or, when U is an
// interface, implements U.
func OfType[U any]() Predicate[any] {
	return New(fmt.Sprintf("of_type(%v)", reflect.TypeFor[U]()), func(v any) bool {
		_, ok := v.(U)
		return ok
	})
}

// IsNil holds for nil values, including typed nil pointers, maps, channels,
// functions and interfaces. Nil slices are empty, not nil.
func IsNil[T any]() Predicate[T] {
	return New("is_nil", func(v T) bool { return fn.IsNil(v) })
}

func NotNil[T any]() Predicate[T] {
	return IsNil[T]().Not().Named("not_nil")
}

// Truthy holds for values that are neither nil, zero nor empty.
func Truthy[T any]() Predicate[T] {
	return New("truthy", func(v T) bool { return truthy(v) })
}

// Falsy is the negation of Truthy.
func Falsy[T any]() Predicate[T] {
	return New("falsy", func(v T) bool { return !truthy(v) })
}

func truthy(v any) bool {
	if fn.IsNil(v) {
		return false
	}
	if n, ok := length(v); ok {
		return n > 0
	}
	return !reflect.ValueOf(v).IsZero()
}
