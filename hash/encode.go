package hash

import (
	"encoding/binary"
	"fmt"
	"math"
)

// encodeBytes renders v to a canonical byte slice so any of this package's
// byte-oriented hash functions can consume it regardless of T's underlying
// type. Floats are canonicalized through their bit pattern so that -0 and
// +0, and any two floats at the same value, always hash identically.
func encodeBytes(v any) []byte {
	switch x := v.(type) {
	case string:
		return []byte(x)
	case []byte:
		return x
	case int:
		return uintBytes(uint64(x))
	case int8:
		return uintBytes(uint64(x))
	case int16:
		return uintBytes(uint64(x))
	case int32:
		return uintBytes(uint64(x))
	case int64:
		return uintBytes(uint64(x))
	case uint:
		return uintBytes(uint64(x))
	case uint8:
		return uintBytes(uint64(x))
	case uint16:
		return uintBytes(uint64(x))
	case uint32:
		return uintBytes(uint64(x))
	case uint64:
		return uintBytes(x)
	case float32:
		return uintBytes(uint64(math.Float32bits(canonicalizeFloat32(x))))
	case float64:
		return uintBytes(math.Float64bits(canonicalizeFloat64(x)))
	case fmt.Stringer:
		return []byte(x.String())
	default:
		return []byte(fmt.Sprint(v))
	}
}

func uintBytes(v uint64) []byte {
	buf := make([]byte, 8)
	binary.LittleEndian.PutUint64(buf, v)
	return buf
}

// canonicalizeFloat32 maps -0 to +0 so the two hash identically.
func canonicalizeFloat32(f float32) float32 {
	if f == 0 {
		return 0
	}
	return f
}

// canonicalizeFloat64 maps -0 to +0 so the two hash identically.
func canonicalizeFloat64(f float64) float64 {
	if f == 0 {
		return 0
	}
	return f
}
