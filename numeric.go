package liskvalidator

import (
	"encoding/json"
	"math"
	"math/big"
	"strings"
)

// Inclusive integer bounds of the codec primitives.
var (
	minUint    = big.NewInt(0)
	maxUint32  = new(big.Int).SetUint64(math.MaxUint32)
	minSint32  = big.NewInt(math.MinInt32)
	maxSint32  = big.NewInt(math.MaxInt32)
	maxUint64  = new(big.Int).SetUint64(math.MaxUint64)
	minSint64  = big.NewInt(math.MinInt64)
	maxSint64  = big.NewInt(math.MaxInt64)
	floatLimit = math.Ldexp(1, 53)
)

// toBigInt converts an integer value to an exact *big.Int. Floats are only
// accepted when allowFloat is set and the value is integral and within the
// range a float64 represents exactly.
func toBigInt(v any, allowFloat bool) (*big.Int, bool) {
	switch t := v.(type) {
	case int:
		return big.NewInt(int64(t)), true
	case int8:
		return big.NewInt(int64(t)), true
	case int16:
		return big.NewInt(int64(t)), true
	case int32:
		return big.NewInt(int64(t)), true
	case int64:
		return big.NewInt(t), true
	case uint:
		return new(big.Int).SetUint64(uint64(t)), true
	case uint8:
		return new(big.Int).SetUint64(uint64(t)), true
	case uint16:
		return new(big.Int).SetUint64(uint64(t)), true
	case uint32:
		return new(big.Int).SetUint64(uint64(t)), true
	case uint64:
		return new(big.Int).SetUint64(t), true
	case *big.Int:
		if t == nil {
			return nil, false
		}
		return new(big.Int).Set(t), true
	case big.Int:
		return new(big.Int).Set(&t), true
	case json.Number:
		return parseDecimalInt(string(t))
	case float64:
		if !allowFloat {
			return nil, false
		}
		return floatToBigInt(t)
	case float32:
		if !allowFloat {
			return nil, false
		}
		return floatToBigInt(float64(t))
	default:
		return nil, false
	}
}

// parseDecimalInt accepts only plain base-10 integers ("-12", "0"), so that
// json.Number values such as "1e3" or "1.0" are not silently widened.
func parseDecimalInt(s string) (*big.Int, bool) {
	digits := strings.TrimPrefix(s, "-")
	if digits == "" {
		return nil, false
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return nil, false
		}
	}
	return new(big.Int).SetString(s, 10)
}

func floatToBigInt(f float64) (*big.Int, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) || math.Abs(f) > floatLimit {
		return nil, false
	}
	return big.NewInt(int64(f)), true
}

func inRange(v, lo, hi *big.Int) bool { return v.Cmp(lo) >= 0 && v.Cmp(hi) <= 0 }

func isUint32(v any) bool {
	i, ok := toBigInt(v, true)
	return ok && inRange(i, minUint, maxUint32)
}

func isSint32(v any) bool {
	i, ok := toBigInt(v, true)
	return ok && inRange(i, minSint32, maxSint32)
}

func isUint64(v any) bool {
	i, ok := toBigInt(v, false)
	return ok && inRange(i, minUint, maxUint64)
}

func isSint64(v any) bool {
	i, ok := toBigInt(v, false)
	return ok && inRange(i, minSint64, maxSint64)
}
