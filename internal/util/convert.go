package util

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/araddon/dateparse"
)

var (
	ErrUnsupportedType = errors.New("unsupported type conversion")
	ErrParseBool       = errors.New("invalid boolean value")
	ErrParseInt        = errors.New("invalid integer value")
	ErrParseFloat      = errors.New("invalid floating point value")
	ErrParseDuration   = errors.New("invalid duration")
	ErrParseTime       = errors.New("invalid date/time")
)

// ConvertString converts value and stores the result in data, which must be a pointer to one of
// string, bool, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64,
// time.Duration or time.Time. Dates are parsed in the local time zone and may use any layout
// understood by dateparse.
func ConvertString(value string, data any) error {
	switch t := data.(type) {
	case *string:
		*t = value
	case *bool:
		v, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%w: %s", ErrParseBool, value)
		}
		*t = v
	case *int:
		v, err := parseInt(value, strconv.IntSize)
		if err != nil {
			return err
		}
		*t = int(v)
	case *int8:
		v, err := parseInt(value, 8)
		if err != nil {
			return err
		}
		*t = int8(v)
	case *int16:
		v, err := parseInt(value, 16)
		if err != nil {
			return err
		}
		*t = int16(v)
	case *int32:
		v, err := parseInt(value, 32)
		if err != nil {
			return err
		}
		*t = int32(v)
	case *int64:
		v, err := parseInt(value, 64)
		if err != nil {
			return err
		}
		*t = v
	case *uint:
		v, err := parseUint(value, strconv.IntSize)
		if err != nil {
			return err
		}
		*t = uint(v)
	case *uint8:
		v, err := parseUint(value, 8)
		if err != nil {
			return err
		}
		*t = uint8(v)
	case *uint16:
		v, err := parseUint(value, 16)
		if err != nil {
			return err
		}
		*t = uint16(v)
	case *uint32:
		v, err := parseUint(value, 32)
		if err != nil {
			return err
		}
		*t = uint32(v)
	case *uint64:
		v, err := parseUint(value, 64)
		if err != nil {
			return err
		}
		*t = v
	case *float32:
		v, err := parseFloat(value, 32)
		if err != nil {
			return err
		}
		*t = float32(v)
	case *float64:
		v, err := parseFloat(value, 64)
		if err != nil {
			return err
		}
		*t = v
	case *time.Duration:
		v, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("%w: %s", ErrParseDuration, value)
		}
		*t = v
	case *time.Time:
		v, err := dateparse.ParseLocal(value)
		if err != nil {
			return fmt.Errorf("%w: %s", ErrParseTime, value)
		}
		*t = v
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, data)
	}

	return nil
}

// ConvertStrings converts every value with ConvertString and returns the results in order
func ConvertStrings[T any](values []string) ([]T, error) {
	out := make([]T, len(values))
	for i, v := range values {
		if err := ConvertString(v, &out[i]); err != nil {
			return nil, err
		}
	}

	return out, nil
}

func parseInt(value string, bitSize int) (int64, error) {
	v, err := strconv.ParseInt(value, 0, bitSize)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", ErrParseInt, value)
	}

	return v, nil
}

func parseUint(value string, bitSize int) (uint64, error) {
	v, err := strconv.ParseUint(value, 0, bitSize)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", ErrParseInt, value)
	}

	return v, nil
}

func parseFloat(value string, bitSize int) (float64, error) {
	v, err := strconv.ParseFloat(value, bitSize)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", ErrParseFloat, value)
	}

	return v, nil
}
