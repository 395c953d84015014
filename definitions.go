package progopts

import (
	"errors"

	orderedmap "github.com/wk8/go-ordered-map"
)

// Group partitions options into subsets which can be enabled per Parse call. The empty Group
// (NoGroup) marks an option which is always recognized.
type Group string

// NoGroup is the Group of options which are not gated
const NoGroup Group = ""

// OptionSpec declares a recognized option. At least one of Short and Long must be set.
type OptionSpec struct {
	// Short is the single-character name used after one dash (0 when the option has no short form)
	Short rune
	// Long is the name used after two dashes (empty when the option has no long form)
	Long string
	// Arity is the number of parameters the option consumes when matched
	Arity int
	// MaxOccurs is informational and not enforced during parsing
	MaxOccurs int
	// Group gates recognition of the option - see ParseFrom
	Group Group
	// Description is used by completion scripts
	Description string
}

// ConfigureOptionFunc is used when defining an OptionSpec with NewOption
type ConfigureOptionFunc func(spec *OptionSpec, err *error)

// ConfigureParserFunc is used when defining a Parser with NewParserWith
type ConfigureParserFunc func(parser *Parser, err *error)

// ParamKind tells which form of payload an Occurrence carries
type ParamKind int

const (
	// ParamsNone is the payload of options with arity 0
	ParamsNone ParamKind = iota
	// ParamsSingle is the payload of options with arity 1
	ParamsSingle
	// ParamsList is the payload of options with arity > 1
	ParamsList
)

// Params holds the parameters consumed by one Occurrence. It is either empty, a single string or an
// ordered list of strings - never a mix.
type Params struct {
	kind   ParamKind
	single string
	list   []string
}

// Occurrence is one match of an OptionSpec against the input
type Occurrence struct {
	// Spec is a copy of the matched option
	Spec OptionSpec
	// Index is the position of the option token in the argument list
	Index int
	// Clustered is set when the option was matched inside a single-dash token holding more than one character.
	// This includes the last option of a cluster (both a and i in -ai), unlike parsers which only mark the
	// options followed by another character of the same token.
	Clustered bool
	Params    Params
}

// ErrorKind classifies an IllegalOccurrence
type ErrorKind int

const (
	// OptionNotSpecified - the option is not in the table or its group is not allowed
	OptionNotSpecified ErrorKind = iota
	// EqualOptionNotSingleParam - --name=value was used for an option whose arity is not 1
	EqualOptionNotSingleParam
	// EqualFirstChar - the token starts with --=
	EqualFirstChar
	// OptionNotEnoughParams - fewer arguments remain than the option consumes. Scanning stops.
	OptionNotEnoughParams
	// AdjoiningOptionNotSingleParam - a clustered short option with arity > 1 is followed by more characters. Scanning stops.
	AdjoiningOptionNotSingleParam
	// EqualOptionEmptyParameter - nothing follows the = of --name=. The occurrence is still recorded.
	EqualOptionEmptyParameter
)

// IllegalOccurrence is a rejected option token
type IllegalOccurrence struct {
	// Name is the offending option text: the long name, the short character or "--=" for EqualFirstChar
	Name string
	// Arg is the raw argument the option was found in
	Arg   string
	Index int
	Kind  ErrorKind
}

// Positional is an argument which is neither an option nor an option parameter
type Positional struct {
	Value string
	Index int
}

// StopReason tells why a parse call stopped scanning
type StopReason int

const (
	// StopExhausted - every argument was examined
	StopExhausted StopReason = iota
	// StopTerminator - a bare "--" ended option scanning
	StopTerminator
	// StopAborted - an unrecoverable IllegalOccurrence ended scanning
	StopAborted
)

// Parser classifies argument lists against an option table. A Parser is immutable after construction
// and may be shared between goroutines.
type Parser struct {
	specs      []*OptionSpec
	shortNames map[rune]*OptionSpec
	longNames  map[string]*OptionSpec
}

// Result holds everything recorded by one parse call
type Result struct {
	parser        *Parser
	occurrences   *orderedmap.OrderedMap // *OptionSpec -> []*Occurrence, first-seen order
	all           []*Occurrence
	illegal       []IllegalOccurrence
	positionals   []Positional
	allowedGroups map[Group]struct{}
	stop          StopReason
	rest          []Positional
}

// Construction errors
var (
	ErrDuplicateShortOption = errors.New("short option specified more than once")
	ErrDuplicateLongOption  = errors.New("long option specified more than once")
	ErrNamelessOption       = errors.New("option has neither a short nor a long name")
	ErrNegativeArity        = errors.New("option arity must not be negative")
	ErrInvalidMaxOccurs     = errors.New("option max occurrences must be positive")
	ErrNilOption            = errors.New("option is nil")
)

// Parse errors - one per ErrorKind
var (
	ErrOptionNotSpecified            = errors.New("option not specified")
	ErrEqualOptionNotSingleParam     = errors.New("option does not take exactly one parameter and cannot be used with '='")
	ErrEqualFirstChar                = errors.New("'=' cannot directly follow '--'")
	ErrOptionNotEnoughParams         = errors.New("not enough parameters for option")
	ErrAdjoiningOptionNotSingleParam = errors.New("option takes more than one parameter and cannot be followed by adjoining characters")
	ErrEqualOptionEmptyParameter     = errors.New("empty parameter after '='")
)

// Accessor errors
var (
	ErrOptionNotPresent = errors.New("option not present")
	ErrNotSingleParam   = errors.New("option occurrence does not hold a single parameter")
	ErrNotListParam     = errors.New("option occurrence does not hold a parameter list")
	ErrConversion       = errors.New("cannot convert parameter")
)

const (
	FmtErrorWithString = "%w: %s"
)
