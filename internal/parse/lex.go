package parse

import (
	"errors"
	"fmt"

	"github.com/google/shlex"
)

// ErrSplit is returned when a command string cannot be split, e.g. because of an unterminated quote
var ErrSplit = errors.New("cannot split command string")

// Split splits a command string into arguments using POSIX shell quoting and escaping rules
func Split(s string) ([]string, error) {
	args, err := shlex.Split(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSplit, err)
	}
	if args == nil {
		args = []string{}
	}

	return args, nil
}
