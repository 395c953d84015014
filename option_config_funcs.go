package progopts

import "fmt"

// WithShort sets the single-character name used after one dash, as in -f or clustered as in -af
func WithShort(short rune) ConfigureOptionFunc {
	return func(spec *OptionSpec, err *error) {
		spec.Short = short
	}
}

// WithLong sets the name used after two dashes, as in --file or --file=name
func WithLong(long string) ConfigureOptionFunc {
	return func(spec *OptionSpec, err *error) {
		spec.Long = long
	}
}

// WithArity sets the number of parameters the option consumes. Options with arity 0 are flags, options
// with arity 1 accept --name=value and -nvalue forms, options with a greater arity consume that many
// following arguments. A negative arity is kept when no error target is given (NewOption) so that
// NewParserWith rejects the option.
func WithArity(arity int) ConfigureOptionFunc {
	return func(spec *OptionSpec, err *error) {
		if arity < 0 && err != nil {
			*err = fmt.Errorf("%w: %d", ErrNegativeArity, arity)
			return
		}
		spec.Arity = arity
	}
}

// WithMaxOccurs records how often the option may be repeated. The value is informational. As with WithArity,
// an invalid value is kept when there is no error target and reported when the Parser is built.
func WithMaxOccurs(maxOccurs int) ConfigureOptionFunc {
	return func(spec *OptionSpec, err *error) {
		if maxOccurs < 1 && err != nil {
			*err = fmt.Errorf("%w: %d", ErrInvalidMaxOccurs, maxOccurs)
			return
		}
		spec.MaxOccurs = maxOccurs
	}
}

// WithGroup places the option in a group. Grouped options are only recognized when their group is
// passed to ParseFrom.
func WithGroup(group Group) ConfigureOptionFunc {
	return func(spec *OptionSpec, err *error) {
		spec.Group = group
	}
}

// WithDescription the description is used in generated completion scripts
func WithDescription(description string) ConfigureOptionFunc {
	return func(spec *OptionSpec, err *error) {
		spec.Description = description
	}
}
