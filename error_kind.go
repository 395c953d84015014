package progopts

import "fmt"

// String returns the name of the ErrorKind
func (k ErrorKind) String() string {
	switch k {
	case OptionNotSpecified:
		return "OptionNotSpecified"
	case EqualOptionNotSingleParam:
		return "EqualOptionNotSingleParam"
	case EqualFirstChar:
		return "EqualFirstChar"
	case OptionNotEnoughParams:
		return "OptionNotEnoughParams"
	case AdjoiningOptionNotSingleParam:
		return "AdjoiningOptionNotSingleParam"
	case EqualOptionEmptyParameter:
		return "EqualOptionEmptyParameter"
	}

	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Recoverable is false for the kinds which end scanning
func (k ErrorKind) Recoverable() bool {
	switch k {
	case OptionNotEnoughParams, AdjoiningOptionNotSingleParam:
		return false
	}

	return true
}

// Err returns the sentinel error matching the kind
func (k ErrorKind) Err() error {
	switch k {
	case OptionNotSpecified:
		return ErrOptionNotSpecified
	case EqualOptionNotSingleParam:
		return ErrEqualOptionNotSingleParam
	case EqualFirstChar:
		return ErrEqualFirstChar
	case OptionNotEnoughParams:
		return ErrOptionNotEnoughParams
	case AdjoiningOptionNotSingleParam:
		return ErrAdjoiningOptionNotSingleParam
	case EqualOptionEmptyParameter:
		return ErrEqualOptionEmptyParameter
	}

	return fmt.Errorf("unknown error kind %d", int(k))
}

// Error describes the illegal occurrence, e.g. "option not specified: -q (argument 3)"
func (i IllegalOccurrence) Error() string {
	return i.Unwrap().Error() + ": " + i.display() + fmt.Sprintf(" (argument %d)", i.Index)
}

// Unwrap allows matching an IllegalOccurrence with errors.Is against its kind's sentinel
func (i IllegalOccurrence) Unwrap() error {
	return i.Kind.Err()
}

func (i IllegalOccurrence) display() string {
	switch {
	case i.Kind == EqualFirstChar:
		return i.Arg
	case len(i.Arg) > 1 && i.Arg[1] != '-':
		return "-" + i.Name
	default:
		return "--" + i.Name
	}
}

// String returns the name of the StopReason
func (r StopReason) String() string {
	switch r {
	case StopExhausted:
		return "exhausted"
	case StopTerminator:
		return "terminator"
	case StopAborted:
		return "aborted"
	}

	return "unknown"
}
