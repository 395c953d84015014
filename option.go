package progopts

import (
	"fmt"
	"strings"
)

// NewOption convenience initialization method to configure an OptionSpec. MaxOccurs defaults to 1.
func NewOption(configs ...ConfigureOptionFunc) *OptionSpec {
	spec := &OptionSpec{MaxOccurs: 1}
	for _, config := range configs {
		config(spec, nil)
	}

	return spec
}

// Set configures the OptionSpec with the provided ConfigureOptionFunc(s), and returns an error if a
// configuration results in an error.
//
// Usage example:
//
//	spec := &OptionSpec{}
//	err := spec.Set(
//	    WithShort('f'),
//	    WithLong("file"),
//	    WithArity(1),
//	)
//	if err != nil {
//	    // handle error
//	}
func (o *OptionSpec) Set(configs ...ConfigureOptionFunc) error {
	var err error
	for _, config := range configs {
		config(o, &err)
		if err != nil {
			return err
		}
	}

	return nil
}

// String returns the option names as they appear on the command line, e.g. "-f, --file"
func (o *OptionSpec) String() string {
	names := make([]string, 0, 2)
	if o.Short != 0 {
		names = append(names, "-"+string(o.Short))
	}
	if o.Long != "" {
		names = append(names, "--"+o.Long)
	}

	return strings.Join(names, ", ")
}

// Name returns the long name when set, otherwise the short name
func (o *OptionSpec) Name() string {
	if o.Long != "" {
		return o.Long
	}

	return string(o.Short)
}

// HasShort is true when the option can be used after a single dash
func (o *OptionSpec) HasShort() bool {
	return o.Short != 0
}

// HasLong is true when the option can be used after a double dash
func (o *OptionSpec) HasLong() bool {
	return o.Long != ""
}

func (o *OptionSpec) validate() error {
	if o.Short == 0 && o.Long == "" {
		return ErrNamelessOption
	}
	if o.Arity < 0 {
		return fmt.Errorf(FmtErrorWithString, ErrNegativeArity, o.String())
	}
	if o.MaxOccurs < 0 {
		return fmt.Errorf(FmtErrorWithString, ErrInvalidMaxOccurs, o.String())
	}

	return nil
}

// allowedIn reports whether the option may be recognized when only the given groups are enabled
func (o *OptionSpec) allowedIn(groups map[Group]struct{}) bool {
	if o.Group == NoGroup {
		return true
	}
	_, ok := groups[o.Group]

	return ok
}

// params builds the payload from exactly Arity values
func (o *OptionSpec) params(values []string) Params {
	switch o.Arity {
	case 0:
		return Params{kind: ParamsNone}
	case 1:
		return Params{kind: ParamsSingle, single: values[0]}
	default:
		return Params{kind: ParamsList, list: values}
	}
}
