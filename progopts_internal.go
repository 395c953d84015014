package progopts

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/napalu/progopts/types/cursor"
	orderedmap "github.com/wk8/go-ordered-map"
)

// step is the outcome of scanning a token or a character of a cluster
type step int

const (
	// stepNext - continue with the next token (or the next character of a cluster)
	stepNext step = iota
	// stepDone - the current cluster is fully handled
	stepDone
	// stepHalt - stop scanning: "--" was seen or an unrecoverable error was recorded
	stepHalt
)

// session holds the per-call state of a parse
type session struct {
	parser *Parser
	cursor *cursor.Cursor
	result *Result
}

func (p *Parser) build() error {
	var errs []error

	p.shortNames = make(map[rune]*OptionSpec, len(p.specs))
	p.longNames = make(map[string]*OptionSpec, len(p.specs))
	reportedShort := map[rune]bool{}
	reportedLong := map[string]bool{}

	for _, s := range p.specs {
		if err := s.validate(); err != nil {
			errs = append(errs, err)
			continue
		}
		if s.MaxOccurs == 0 {
			s.MaxOccurs = 1
		}
		if s.HasShort() {
			if _, found := p.shortNames[s.Short]; found {
				if !reportedShort[s.Short] {
					errs = append(errs, fmt.Errorf(FmtErrorWithString, ErrDuplicateShortOption, "-"+string(s.Short)))
					reportedShort[s.Short] = true
				}
			} else {
				p.shortNames[s.Short] = s
			}
		}
		if s.HasLong() {
			if _, found := p.longNames[s.Long]; found {
				if !reportedLong[s.Long] {
					errs = append(errs, fmt.Errorf(FmtErrorWithString, ErrDuplicateLongOption, "--"+s.Long))
					reportedLong[s.Long] = true
				}
			} else {
				p.longNames[s.Long] = s
			}
		}
	}

	return errors.Join(errs...)
}

func (p *Parser) byShort(name rune) (*OptionSpec, bool) {
	s, ok := p.shortNames[name]
	return s, ok
}

func (p *Parser) byLong(name string) (*OptionSpec, bool) {
	s, ok := p.longNames[name]
	return s, ok
}

func (p *Parser) lookup(key OptionKey) (*OptionSpec, bool) {
	if key.IsShort() {
		return p.byShort(key.short)
	}

	return p.byLong(key.long)
}

func groupSet(groups []Group) map[Group]struct{} {
	set := make(map[Group]struct{}, len(groups))
	for _, g := range groups {
		set[g] = struct{}{}
	}

	return set
}

func newSession(p *Parser, args []string, offset int, allowedGroups []Group) *session {
	return &session{
		parser: p,
		cursor: cursor.New(args, offset),
		result: &Result{
			parser:        p,
			occurrences:   orderedmap.New(),
			all:           []*Occurrence{},
			illegal:       []IllegalOccurrence{},
			positionals:   []Positional{},
			allowedGroups: groupSet(allowedGroups),
			stop:          StopExhausted,
		},
	}
}

func (s *session) run() {
	for !s.cursor.Empty() {
		arg, index := s.cursor.PopFront()
		if s.scanToken(arg, index) == stepHalt {
			break
		}
	}

	for _, e := range s.cursor.Rest() {
		s.result.rest = append(s.result.rest, Positional{Value: e.Value, Index: e.Index})
	}
}

func (s *session) scanToken(arg string, index int) step {
	switch {
	case arg == "--":
		s.result.stop = StopTerminator
		return stepHalt
	case strings.HasPrefix(arg, "--"):
		return s.scanLong(arg, index)
	case len(arg) > 1 && arg[0] == '-':
		return s.scanCluster(arg, index)
	default:
		s.result.positionals = append(s.result.positionals, Positional{Value: arg, Index: index})
		return stepNext
	}
}

// scanLong handles --name, --name=value and --=value
func (s *session) scanLong(arg string, index int) step {
	body := arg[2:]
	eq := strings.IndexByte(body, '=')
	if eq == 0 {
		return s.illegal("--=", arg, index, EqualFirstChar)
	}

	if eq > 0 {
		name, value := body[:eq], body[eq+1:]
		spec, ok := s.lookupLong(name)
		if !ok {
			return s.illegal(name, arg, index, OptionNotSpecified)
		}
		if spec.Arity != 1 {
			return s.illegal(name, arg, index, EqualOptionNotSingleParam)
		}
		if value == "" {
			s.illegal(name, arg, index, EqualOptionEmptyParameter)
		}
		s.record(spec, index, false, spec.params([]string{value}))

		return stepNext
	}

	spec, ok := s.lookupLong(body)
	if !ok {
		return s.illegal(body, arg, index, OptionNotSpecified)
	}

	return s.consume(spec, body, arg, index, false)
}

// scanCluster handles -x, -xyz and -xvalue
func (s *session) scanCluster(arg string, index int) step {
	body := arg[1:]
	clustered := utf8.RuneCountInString(body) > 1

	for i := 0; i < len(body); {
		c, size := utf8.DecodeRuneInString(body[i:])
		name := body[i : i+size]
		i += size
		if st := s.scanClusterChar(c, name, body[i:], arg, index, clustered); st != stepNext {
			if st == stepDone {
				return stepNext
			}
			return st
		}
	}

	return stepNext
}

// scanClusterChar handles character c of a cluster; name is c as typed (a single byte for invalid UTF-8)
// and rest holds the characters following it
func (s *session) scanClusterChar(c rune, name, rest, arg string, index int, clustered bool) step {
	spec, ok := s.lookupShort(c)
	if !ok || name != string(c) {
		s.illegal(name, arg, index, OptionNotSpecified)
		return stepNext
	}

	isLast := rest == ""
	switch {
	case isLast:
		if st := s.consume(spec, name, arg, index, clustered); st == stepHalt {
			return stepHalt
		}
		return stepDone
	case spec.Arity == 0:
		s.record(spec, index, clustered, spec.params(nil))
		return stepNext
	case spec.Arity == 1:
		s.record(spec, index, clustered, spec.params([]string{rest}))
		return stepDone
	default:
		return s.illegal(name, arg, index, AdjoiningOptionNotSingleParam)
	}
}

// consume pulls spec.Arity parameters from the cursor and records the occurrence
func (s *session) consume(spec *OptionSpec, name, arg string, index int, clustered bool) step {
	if spec.Arity > s.cursor.Remaining() {
		return s.illegal(name, arg, index, OptionNotEnoughParams)
	}

	var values []string
	if spec.Arity > 0 {
		values = make([]string, spec.Arity)
		for i := range values {
			values[i], _ = s.cursor.PopFront()
		}
	}
	s.record(spec, index, clustered, spec.params(values))

	return stepNext
}

func (s *session) lookupShort(c rune) (*OptionSpec, bool) {
	spec, ok := s.parser.byShort(c)
	if !ok || !spec.allowedIn(s.result.allowedGroups) {
		return nil, false
	}

	return spec, true
}

func (s *session) lookupLong(name string) (*OptionSpec, bool) {
	spec, ok := s.parser.byLong(name)
	if !ok || !spec.allowedIn(s.result.allowedGroups) {
		return nil, false
	}

	return spec, true
}

func (s *session) record(spec *OptionSpec, index int, clustered bool, params Params) {
	occ := &Occurrence{
		Spec:      *spec,
		Index:     index,
		Clustered: clustered,
		Params:    params,
	}
	s.result.all = append(s.result.all, occ)

	var list []*Occurrence
	if v, ok := s.result.occurrences.Get(spec); ok {
		list = v.([]*Occurrence)
	}
	s.result.occurrences.Set(spec, append(list, occ))
}

// illegal records an IllegalOccurrence and tells whether scanning may go on
func (s *session) illegal(name, arg string, index int, kind ErrorKind) step {
	s.result.illegal = append(s.result.illegal, IllegalOccurrence{
		Name:  name,
		Arg:   arg,
		Index: index,
		Kind:  kind,
	})
	if kind.Recoverable() {
		return stepNext
	}
	s.result.stop = StopAborted

	return stepHalt
}
