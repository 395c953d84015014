package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/napalu/progopts"
	"github.com/napalu/progopts/internal/util"
)

const (
	groupContext progopts.Group = "context"
	cmdContext                  = "context"
)

var options = []progopts.OptionSpec{
	{Short: 'a', Long: "all", Description: "print every matching line instead of the first one per input"},
	{Short: 'i', Long: "ignorecase", Description: "ignore case distinctions"},
	{Short: 'f', Long: "file", Arity: 1, MaxOccurs: 255, Description: "file to search, may be repeated"},
	{Short: 'm', Long: "max-count", Arity: 1, Description: "stop after this many matching lines"},
	{Long: "completion", Arity: 1, Description: "print a completion script for bash, zsh or fish"},
	{Short: 'h', Long: "help", Description: "show help"},
	{Short: 'C', Long: "context", Arity: 1, Group: groupContext, Description: "print lines of surrounding context"},
}

func main() {
	os.Exit(run(os.Args, os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	color := util.IsTerminal(stderr)
	prefix := util.Highlight("error", util.ColorRed, color)

	parser, err := progopts.NewParser(options...)
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", prefix, err)
		return 1
	}

	offset := 1
	var groups []progopts.Group
	if len(args) > 1 && args[1] == cmdContext {
		offset = 2
		groups = append(groups, groupContext)
	}
	if len(args) < offset {
		offset = len(args)
	}

	result := parser.ParseFrom(args, offset, groups...)
	if !result.Success() {
		for _, il := range result.Illegal() {
			fmt.Fprintf(stderr, "%s at argument %d: %v: %s\n", prefix, il.Index, il.Kind.Err(), il.Arg)
		}
		return 1
	}

	if result.Has(progopts.Long("help")) {
		printUsage(stdout, parser, groups)
		return 0
	}

	if shell, ok := result.Value(progopts.Long("completion"), 0); ok {
		script, err := parser.GenerateCompletion(shell, "progopts-demo", groups...)
		if err != nil {
			fmt.Fprintf(stderr, "%s: %v\n", prefix, err)
			return 1
		}
		fmt.Fprint(stdout, script)
		return 0
	}

	cfg, err := newSearch(result)
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", prefix, err)
		return 1
	}
	cfg.color = util.IsTerminal(stdout)

	if len(cfg.files) == 0 {
		cfg.search(stdout, "-", stdin)
		return 0
	}

	status := 0
	for _, name := range cfg.files {
		f, err := os.Open(name)
		if err != nil {
			fmt.Fprintf(stderr, "%s: %v\n", prefix, err)
			status = 1
			continue
		}
		cfg.search(stdout, name, f)
		f.Close()
	}

	return status
}

type search struct {
	pattern    string
	ignoreCase bool
	all        bool
	maxCount   int64
	context    int64
	files      []string
	color      bool
}

func newSearch(result *progopts.Result) (*search, error) {
	positionals := result.Positionals()
	if len(positionals) == 0 {
		return nil, fmt.Errorf("a search pattern is required")
	}

	s := &search{
		pattern: positionals[0].Value,
		all:     result.Has(progopts.Short('a')),
	}
	s.ignoreCase, _ = result.GetBool(progopts.Short('i'))

	if result.Has(progopts.Long("max-count")) {
		n, err := result.GetInt(progopts.Long("max-count"), 0, 64)
		if err != nil {
			return nil, err
		}
		s.maxCount = n
	}
	if result.Has(progopts.Long("context")) {
		n, err := result.GetInt(progopts.Long("context"), 0, 64)
		if err != nil {
			return nil, err
		}
		s.context = n
	}

	for i := 0; i < result.Count(progopts.Short('f')); i++ {
		name, _ := result.Value(progopts.Short('f'), i)
		s.files = append(s.files, name)
	}
	for _, p := range positionals[1:] {
		s.files = append(s.files, p.Value)
	}
	// everything after -- is a file name, even when it starts with a dash
	for _, p := range result.Rest() {
		s.files = append(s.files, p.Value)
	}
	if s.ignoreCase {
		s.pattern = strings.ToLower(s.pattern)
	}

	return s, nil
}

func (s *search) matches(line string) bool {
	if s.ignoreCase {
		line = strings.ToLower(line)
	}

	return strings.Contains(line, s.pattern)
}

func (s *search) search(w io.Writer, name string, r io.Reader) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}

	var found int64
	printed := -1
	for i, line := range lines {
		if !s.matches(line) {
			continue
		}
		found++

		from, to := i-int(s.context), i+int(s.context)
		if from <= printed {
			from = printed + 1
		}
		if to >= len(lines) {
			to = len(lines) - 1
		}
		for j := from; j <= to; j++ {
			text := lines[j]
			if j == i {
				text = util.Highlight(text, util.ColorMagenta, s.color)
			}
			if name != "-" {
				fmt.Fprintf(w, "%s:%d:%s\n", name, j+1, text)
			} else {
				fmt.Fprintln(w, text)
			}
		}
		printed = to

		if !s.all || (s.maxCount > 0 && found >= s.maxCount) {
			return
		}
	}
}

func printUsage(w io.Writer, parser *progopts.Parser, groups []progopts.Group) {
	fmt.Fprintln(w, "usage: progopts-demo [context] [options] pattern [file...] [-- file...]")
	for _, o := range parser.GetCompletionData(groups...).Options {
		names := make([]string, 0, 2)
		if o.Short != "" {
			names = append(names, "-"+o.Short)
		}
		if o.Long != "" {
			names = append(names, "--"+o.Long)
		}
		param := ""
		if o.Arity > 0 {
			param = " " + strings.TrimSuffix(strings.Repeat("value ", o.Arity), " ")
		}
		fmt.Fprintf(w, "  %-28s %s\n", strings.Join(names, ", ")+param, o.Description)
	}
}
