package completion

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func getTestCompletionData() Data {
	return Data{
		Options: []Option{
			{Short: "a", Long: "all", Description: "Show all matches"},
			{Short: "i", Description: "Ignore case"},
			{Short: "f", Long: "file", Arity: 1, Description: `File to "search"`},
			{Long: "range", Arity: 2, Description: "Line range"},
		},
	}
}

func TestDataFlags(t *testing.T) {
	got := getTestCompletionData().Flags()
	want := []string{"-a", "--all", "-i", "-f", "--file", "--range"}
	if strings.Join(got, " ") != strings.Join(want, " ") {
		t.Errorf("Flags() = %v, want %v", got, want)
	}
}

func TestBashCompletion(t *testing.T) {
	result := (&BashGenerator{}).Generate("testapp", getTestCompletionData())

	expectations := []string{
		"function __testapp_completion",
		`flags+=("-a[Show all matches]")`,
		`flags+=("--all[Show all matches]")`,
		`flags+=("-i[Ignore case]")`,
		`flags+=("--file[File to \"search\"]")`,
		"-f|--file)",
		"--range)",
		`compgen -W "${flags[*]%%[*}"`,
		"complete -F __testapp_completion testapp",
	}

	for _, expected := range expectations {
		if !strings.Contains(result, expected) {
			t.Errorf("Expected completion to contain %q", expected)
		}
	}

	if strings.Contains(result, "-a|--all)") {
		t.Error("Flags must not complete a parameter")
	}
}

func TestZshCompletion(t *testing.T) {
	result := (&ZshGenerator{}).Generate("testapp", getTestCompletionData())

	expectations := []string{
		"#compdef testapp",
		"'*-a[Show all matches]'",
		"'*--all[Show all matches]'",
		"'*-f+[File to \"search\"]:value:_files'",
		"'*--file=[File to \"search\"]:value:_files'",
		"'*--range[Line range]:value:_files:value:_files'",
		`__testapp_completion "$@"`,
	}

	for _, expected := range expectations {
		if !strings.Contains(result, expected) {
			t.Errorf("Expected completion to contain %q", expected)
		}
	}
}

func TestFishCompletion(t *testing.T) {
	result := (&FishGenerator{}).Generate("testapp", getTestCompletionData())

	expectations := []string{
		"complete -c testapp -f -s a -l all -d 'Show all matches'",
		"complete -c testapp -f -s i -d 'Ignore case'",
		`complete -c testapp -r -s f -l file -d 'File to "search"'`,
		"complete -c testapp -r -l range -d 'Line range'",
	}

	for _, expected := range expectations {
		if !strings.Contains(result, expected) {
			t.Errorf("Expected completion to contain %q", expected)
		}
	}
}

func TestGetGenerator(t *testing.T) {
	tests := []struct {
		shell   string
		want    Generator
		wantErr bool
	}{
		{shell: "bash", want: &BashGenerator{}},
		{shell: "zsh", want: &ZshGenerator{}},
		{shell: "fish", want: &FishGenerator{}},
		{shell: "tcsh", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.shell, func(t *testing.T) {
			got, err := GetGenerator(tt.shell)
			if tt.wantErr {
				if !errors.Is(err, ErrUnsupportedShell) {
					t.Errorf("GetGenerator(%q) error = %v, want %v", tt.shell, err, ErrUnsupportedShell)
				}
				return
			}
			if err != nil {
				t.Fatalf("GetGenerator(%q) unexpected error: %v", tt.shell, err)
			}
			if fmt.Sprintf("%T", got) != fmt.Sprintf("%T", tt.want) {
				t.Errorf("GetGenerator(%q) = %T, want %T", tt.shell, got, tt.want)
			}
		})
	}
}

func TestEscaping(t *testing.T) {
	tests := []struct {
		name   string
		escape func(string) string
		input  string
		want   string
	}{
		{name: "bash quotes", escape: escapeBash, input: `say "hi"`, want: `say \"hi\"`},
		{name: "bash dollar", escape: escapeBash, input: "costs $5", want: `costs \$5`},
		{name: "fish quote", escape: escapeFish, input: "don't", want: `don\'t`},
		{name: "zsh brackets", escape: escapeZsh, input: "[x]", want: `\[x\]`},
		{name: "zsh colon", escape: escapeZsh, input: "a:b", want: `a\:b`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.escape(tt.input); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFunctionName(t *testing.T) {
	if got := functionName("my-tool.v2"); got != "my_tool_v2" {
		t.Errorf("functionName() = %q, want %q", got, "my_tool_v2")
	}
}
