package completion

import (
	"errors"
	"fmt"
)

var ErrUnsupportedShell = errors.New("unsupported shell")

type Generator interface {
	Generate(programName string, data Data) string
}

// GetGenerator returns the script generator for shell, one of "bash", "zsh" or "fish"
func GetGenerator(shell string) (Generator, error) {
	switch shell {
	case "bash":
		return &BashGenerator{}, nil
	case "zsh":
		return &ZshGenerator{}, nil
	case "fish":
		return &FishGenerator{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedShell, shell)
	}
}
