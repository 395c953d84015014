package progopts

import (
	"fmt"
	"time"

	"github.com/napalu/progopts/internal/util"
)

// Get converts the parameter of the offset-th occurrence of a single-parameter option into T.
// See GetBool, GetInt, GetFloat, GetDuration and GetTime for the common cases.
func Get[T any](r *Result, key OptionKey, offset int) (T, error) {
	var zero T
	value, err := r.single(key, offset)
	if err != nil {
		return zero, err
	}

	var out T
	if err = util.ConvertString(value, &out); err != nil {
		return zero, fmt.Errorf("%w %s: %w", ErrConversion, key, err)
	}

	return out, nil
}

// GetList converts the parameters of the offset-th occurrence of an option whose arity is greater than 1
func GetList[T any](r *Result, key OptionKey, offset int) ([]T, error) {
	params, ok := r.Param(key, offset)
	if !ok {
		return nil, fmt.Errorf(FmtErrorWithString, ErrOptionNotPresent, key)
	}
	values, ok := params.List()
	if !ok {
		return nil, fmt.Errorf(FmtErrorWithString, ErrNotListParam, key)
	}

	out, err := util.ConvertStrings[T](values)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrConversion, key, err)
	}

	return out, nil
}

// GetBool returns true for options with arity 0 which were matched. For single-parameter options the
// parameter of the first occurrence is converted with strconv.ParseBool.
func (r *Result) GetBool(key OptionKey) (bool, error) {
	params, ok := r.Param(key, 0)
	if !ok {
		return false, nil
	}
	if params.Kind() == ParamsNone {
		return true, nil
	}

	return Get[bool](r, key, 0)
}

// GetInt converts the parameter of the offset-th occurrence to an integer of the given bit size
func (r *Result) GetInt(key OptionKey, offset int, bitSize int) (int64, error) {
	switch bitSize {
	case 8:
		v, err := Get[int8](r, key, offset)
		return int64(v), err
	case 16:
		v, err := Get[int16](r, key, offset)
		return int64(v), err
	case 32:
		v, err := Get[int32](r, key, offset)
		return int64(v), err
	default:
		return Get[int64](r, key, offset)
	}
}

// GetFloat converts the parameter of the offset-th occurrence to a float of the given bit size
func (r *Result) GetFloat(key OptionKey, offset int, bitSize int) (float64, error) {
	if bitSize == 32 {
		v, err := Get[float32](r, key, offset)
		return float64(v), err
	}

	return Get[float64](r, key, offset)
}

// GetDuration converts the parameter of the offset-th occurrence with time.ParseDuration
func (r *Result) GetDuration(key OptionKey, offset int) (time.Duration, error) {
	return Get[time.Duration](r, key, offset)
}

// GetTime converts the parameter of the offset-th occurrence to a time in the local time zone.
// Most common date layouts are accepted (2006-01-02, 01/02/2006, RFC3339, ...).
func (r *Result) GetTime(key OptionKey, offset int) (time.Time, error) {
	return Get[time.Time](r, key, offset)
}

func (r *Result) single(key OptionKey, offset int) (string, error) {
	params, ok := r.Param(key, offset)
	if !ok {
		return "", fmt.Errorf(FmtErrorWithString, ErrOptionNotPresent, key)
	}
	value, ok := params.Value()
	if !ok {
		return "", fmt.Errorf(FmtErrorWithString, ErrNotSingleParam, key)
	}

	return value, nil
}
