package fn

import "golang.org/x/exp/constraints"

// Number is satisfied by every integer and floating point type.
type Number interface {
	constraints.Integer | constraints.Float
}
