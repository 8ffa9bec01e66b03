package internal

import (
	"cmp"
	"errors"
	"fmt"
	"math"
	"strconv"
)

// DataType tags the runtime type of a Value.
type DataType int

const (
	TypeUnknown DataType = iota
	TypeInteger
	TypeFloat
	TypeBoolean
	TypeString
)

func (d DataType) String() string {
	switch d {
	case TypeInteger:
		return "Integer"
	case TypeFloat:
		return "Float"
	case TypeBoolean:
		return "Boolean"
	case TypeString:
		return "String"
	}
	return "Unknown"
}

// Value is a runtime value produced by evaluation. The only external
// rendering is String: integers and floats in their native decimal form,
// booleans as true/false, strings as their raw contents without quoting.
type Value interface {
	Type() DataType
	String() string
}

type arcInt int64

type arcFloat float64

type arcBool bool

type arcString string

func (arcInt) Type() DataType    { return TypeInteger }
func (arcFloat) Type() DataType  { return TypeFloat }
func (arcBool) Type() DataType   { return TypeBoolean }
func (arcString) Type() DataType { return TypeString }

func (n arcInt) String() string {
	return strconv.FormatInt(int64(n), 10)
}

func (f arcFloat) String() string {
	return strconv.FormatFloat(float64(f), 'g', -1, 64)
}

func (b arcBool) String() string {
	if b {
		return "true"
	}
	return "false"
}

func (s arcString) String() string {
	return string(s)
}

// commonType coerces a pair of operands to a shared type: identical tags
// pass through, an integer paired with a float widens to float, and a string
// paired with anything converts the other operand to its text form.
func commonType(left, right Value) (Value, Value, error) {
	if left.Type() == right.Type() {
		return left, right, nil
	}
	if l, ok := left.(arcInt); ok {
		if r, ok := right.(arcFloat); ok {
			return arcFloat(l), r, nil
		}
	}
	if l, ok := left.(arcFloat); ok {
		if r, ok := right.(arcInt); ok {
			return l, arcFloat(r), nil
		}
	}
	if l, ok := left.(arcString); ok {
		return l, arcString(right.String()), nil
	}
	if r, ok := right.(arcString); ok {
		return arcString(left.String()), r, nil
	}
	return nil, nil, fmt.Errorf("Cannot coerce %s and %s to a common type", left.Type(), right.Type())
}

// truthy maps any value to a boolean for logical contexts: booleans pass
// through, zero numbers and empty strings are false, everything else true.
func truthy(v Value) bool {
	switch val := v.(type) {
	case arcBool:
		return bool(val)
	case arcInt:
		return val != 0
	case arcFloat:
		return val != 0
	case arcString:
		return val != ""
	}
	return false
}

var errStringToInteger = errors.New("Cannot convert string to integer for bitwise operations")

// toInteger converts a value to a 64-bit integer for bitwise operations.
// Floats truncate toward zero, booleans map to 0/1, strings do not convert.
func toInteger(v Value) (int64, error) {
	switch val := v.(type) {
	case arcInt:
		return int64(val), nil
	case arcFloat:
		return int64(val), nil
	case arcBool:
		if val {
			return 1, nil
		}
		return 0, nil
	}
	return 0, errStringToInteger
}

var floatEps = math.Nextafter(1, 2) - 1

// valuesEqual compares same-type values directly and promotes integer/float
// pairs. Float equality tolerates machine epsilon rather than requiring
// bit-exact values.
func valuesEqual(left, right Value) (bool, error) {
	switch l := left.(type) {
	case arcInt:
		switch r := right.(type) {
		case arcInt:
			return l == r, nil
		case arcFloat:
			return math.Abs(float64(l)-float64(r)) < floatEps, nil
		}
	case arcFloat:
		switch r := right.(type) {
		case arcFloat:
			return math.Abs(float64(l)-float64(r)) < floatEps, nil
		case arcInt:
			return math.Abs(float64(l)-float64(r)) < floatEps, nil
		}
	case arcBool:
		if r, ok := right.(arcBool); ok {
			return l == r, nil
		}
	case arcString:
		if r, ok := right.(arcString); ok {
			return l == r, nil
		}
	}
	return false, fmt.Errorf("Cannot compare %s and %s for equality", left.Type(), right.Type())
}

// valuesCompare orders two values, returning a negative, zero or positive
// result. Integer/float pairs promote; any other mixed pairing is an error.
func valuesCompare(left, right Value) (int, error) {
	switch l := left.(type) {
	case arcInt:
		switch r := right.(type) {
		case arcInt:
			return cmp.Compare(int64(l), int64(r)), nil
		case arcFloat:
			return cmp.Compare(float64(l), float64(r)), nil
		}
	case arcFloat:
		switch r := right.(type) {
		case arcFloat:
			return cmp.Compare(float64(l), float64(r)), nil
		case arcInt:
			return cmp.Compare(float64(l), float64(r)), nil
		}
	case arcBool:
		if r, ok := right.(arcBool); ok {
			return cmp.Compare(boolBit(bool(l)), boolBit(bool(r))), nil
		}
	case arcString:
		if r, ok := right.(arcString); ok {
			return cmp.Compare(string(l), string(r)), nil
		}
	}
	return 0, fmt.Errorf("Cannot compare %s and %s", left.Type(), right.Type())
}

func boolBit(b bool) int64 {
	if b {
		return 1
	}
	return 0
}
