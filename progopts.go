// Copyright 2021-2024, Florent Heyworth. All rights reserved.
// Use of this source code is governed by the MIT licensee
// which can be found in the LICENSE file.

// Package progopts provides POSIX/GNU-style command-line option parsing driven by a declarative option table.
//
// Each OptionSpec names a short form (-f), a long form (--file) or both, and the number of parameters
// the option consumes (its arity). Supported forms:
//
//	-a -i            - flags
//	-ai              - clustered flags
//	-f name          - short option with a parameter
//	-fname           - parameter adjoining a short option (arity 1 only)
//	--file name      - long option with a parameter
//	--file=name      - long option with an inline parameter (arity 1 only)
//	-f a b c         - options consuming several parameters
//	--               - end of options
//
// Parsing never aborts on a malformed option: problems are recorded as IllegalOccurrence values carrying
// the index of the offending argument, so that callers can build their own diagnostics. Every parse call
// returns a new Result; the Parser itself is never modified after construction.
package progopts

import (
	"fmt"

	"github.com/napalu/progopts/completion"
	"github.com/napalu/progopts/internal/parse"
)

// NewParser creates a Parser from an option table. It fails when two options share a short name or a long
// name; the returned error lists every duplicate so that all of them can be fixed in one pass.
func NewParser(specs ...OptionSpec) (*Parser, error) {
	return NewParserWith(WithOptions(specs...))
}

// Parse classifies args starting at the first element with no groups enabled
func (p *Parser) Parse(args []string) *Result {
	return p.ParseFrom(args, 0)
}

// ParseFrom classifies args starting at offset. Options declaring a Group are only recognized when
// their group is listed in allowedGroups; otherwise they are reported as OptionNotSpecified exactly
// like unknown options. This lets one table serve several sub-command contexts.
//
// ParseFrom panics when offset is negative or greater than len(args).
func (p *Parser) ParseFrom(args []string, offset int, allowedGroups ...Group) *Result {
	s := newSession(p, args, offset, allowedGroups)
	s.run()

	return s.result
}

// ParseString splits argString using shell quoting rules and calls ParseFrom with offset 0
func (p *Parser) ParseString(argString string, allowedGroups ...Group) (*Result, error) {
	args, err := parse.Split(argString)
	if err != nil {
		return nil, err
	}

	return p.ParseFrom(args, 0, allowedGroups...), nil
}

// Lookup returns a copy of the option addressed by key
func (p *Parser) Lookup(key OptionKey) (OptionSpec, bool) {
	s, ok := p.lookup(key)
	if !ok {
		return OptionSpec{}, false
	}

	return *s, true
}

// Options returns a copy of the option table in declaration order
func (p *Parser) Options() []OptionSpec {
	specs := make([]OptionSpec, len(p.specs))
	for i, s := range p.specs {
		specs[i] = *s
	}

	return specs
}

// GetCompletionData returns the options recognized when allowedGroups are enabled, in declaration order
func (p *Parser) GetCompletionData(allowedGroups ...Group) completion.Data {
	groups := groupSet(allowedGroups)
	data := completion.Data{}
	for _, s := range p.specs {
		if !s.allowedIn(groups) {
			continue
		}
		opt := completion.Option{
			Long:        s.Long,
			Description: s.Description,
			Arity:       s.Arity,
			Group:       string(s.Group),
		}
		if s.HasShort() {
			opt.Short = string(s.Short)
		}
		data.Options = append(data.Options, opt)
	}

	return data
}

// GenerateCompletion returns a completion script for shell ("bash", "zsh" or "fish")
func (p *Parser) GenerateCompletion(shell, programName string, allowedGroups ...Group) (string, error) {
	generator, err := completion.GetGenerator(shell)
	if err != nil {
		return "", fmt.Errorf("cannot generate completion for %s: %w", programName, err)
	}

	return generator.Generate(programName, p.GetCompletionData(allowedGroups...)), nil
}
