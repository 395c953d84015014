package progopts

import "slices"

// Kind returns the form of the payload
func (p Params) Kind() ParamKind {
	return p.kind
}

// Value returns the parameter of a single-parameter occurrence
func (p Params) Value() (string, bool) {
	return p.single, p.kind == ParamsSingle
}

// List returns a copy of the parameters of an occurrence consuming more than one parameter
func (p Params) List() ([]string, bool) {
	if p.kind != ParamsList {
		return nil, false
	}

	return append([]string(nil), p.list...), true
}

// Success is true when no IllegalOccurrence was recorded
func (r *Result) Success() bool {
	return len(r.illegal) == 0
}

// Has is true when the option addressed by key was matched at least once
func (r *Result) Has(key OptionKey) bool {
	return r.Count(key) > 0
}

// Count returns the number of times the option addressed by key was matched
func (r *Result) Count(key OptionKey) int {
	return len(r.occurrencesOf(key))
}

// Occurrences returns the matches of the option addressed by key in input order
func (r *Result) Occurrences(key OptionKey) []Occurrence {
	list := r.occurrencesOf(key)
	occs := make([]Occurrence, len(list))
	for i, o := range list {
		occs[i] = *o
	}

	return occs
}

// Param returns the payload of the offset-th (zero-based) occurrence of the option addressed by key.
// ok is false when the option was not matched or offset is out of range.
func (r *Result) Param(key OptionKey, offset int) (params Params, ok bool) {
	list := r.occurrencesOf(key)
	if offset < 0 || offset >= len(list) {
		return Params{}, false
	}

	return list[offset].Params, true
}

// Value returns the parameter of the offset-th occurrence of a single-parameter option
func (r *Result) Value(key OptionKey, offset int) (string, bool) {
	params, ok := r.Param(key, offset)
	if !ok {
		return "", false
	}

	return params.Value()
}

// List returns the parameters of the offset-th occurrence of an option whose arity is greater than 1
func (r *Result) List(key OptionKey, offset int) ([]string, bool) {
	params, ok := r.Param(key, offset)
	if !ok {
		return nil, false
	}

	return params.List()
}

// All returns every occurrence in input order
func (r *Result) All() []Occurrence {
	occs := make([]Occurrence, len(r.all))
	for i, o := range r.all {
		occs[i] = *o
	}

	return occs
}

// Options returns the matched options in the order they were first seen
func (r *Result) Options() []OptionSpec {
	specs := make([]OptionSpec, 0, r.occurrences.Len())
	for pair := r.occurrences.Oldest(); pair != nil; pair = pair.Next() {
		specs = append(specs, *pair.Key.(*OptionSpec))
	}

	return specs
}

// Positionals returns the non-option arguments in input order
func (r *Result) Positionals() []Positional {
	return append([]Positional(nil), r.positionals...)
}

// Illegal returns the rejected options in input order
func (r *Result) Illegal() []IllegalOccurrence {
	return append([]IllegalOccurrence(nil), r.illegal...)
}

// Errors returns the rejected options as errors. Each error matches its kind's sentinel with errors.Is.
func (r *Result) Errors() []error {
	errs := make([]error, len(r.illegal))
	for i, il := range r.illegal {
		errs[i] = il
	}

	return errs
}

// StopReason tells why scanning ended
func (r *Result) StopReason() StopReason {
	return r.stop
}

// Rest returns the arguments which were never examined because scanning stopped early, either at a bare
// "--" or at an unrecoverable error. They are not included in Positionals.
func (r *Result) Rest() []Positional {
	return append([]Positional(nil), r.rest...)
}

// AllowedGroups returns the groups which were enabled for this parse, sorted
func (r *Result) AllowedGroups() []Group {
	groups := make([]Group, 0, len(r.allowedGroups))
	for g := range r.allowedGroups {
		groups = append(groups, g)
	}
	slices.Sort(groups)

	return groups
}

func (r *Result) occurrencesOf(key OptionKey) []*Occurrence {
	spec, ok := r.parser.lookup(key)
	if !ok {
		return nil
	}
	v, ok := r.occurrences.Get(spec)
	if !ok {
		return nil
	}

	return v.([]*Occurrence)
}
