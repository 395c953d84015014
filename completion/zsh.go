// completion/zsh.go
package completion

import (
	"fmt"
	"strings"
)

type ZshGenerator struct{}

func (g *ZshGenerator) Generate(programName string, data Data) string {
	var script strings.Builder
	fn := functionName(programName)

	script.WriteString(fmt.Sprintf(`#compdef %s

__%s_completion() {
    _arguments -s -S \`, programName, fn))

	for _, o := range data.Options {
		desc := escapeZsh(o.Description)
		for _, flag := range o.flags() {
			script.WriteString(fmt.Sprintf(`
        '*%s%s[%s]%s' \`, flag, zshSuffix(flag, o.Arity), desc, zshParams(o.Arity)))
		}
	}

	script.WriteString(fmt.Sprintf(`
        '*:file:_files'
}

__%s_completion "$@"
`, fn))

	return script.String()
}

// zshSuffix tells _arguments how a single parameter may be attached to the option
func zshSuffix(flag string, arity int) string {
	if arity != 1 {
		return ""
	}
	if strings.HasPrefix(flag, "--") {
		return "="
	}

	return "+"
}

func zshParams(arity int) string {
	return strings.Repeat(":value:_files", arity)
}
