// completion/bash.go
package completion

import (
	"fmt"
	"strings"
)

type BashGenerator struct{}

func (g *BashGenerator) Generate(programName string, data Data) string {
	var script strings.Builder
	fn := functionName(programName)

	script.WriteString(fmt.Sprintf(`#!/bin/bash

function __%s_completion() {
    local cur prev
    COMPREPLY=()

    cur="${COMP_WORDS[COMP_CWORD]}"
    prev="${COMP_WORDS[COMP_CWORD-1]}"

    # Options consuming parameters complete file names
    case "${prev}" in`, fn))

	for _, o := range data.Options {
		if !o.takesParams() {
			continue
		}
		script.WriteString(fmt.Sprintf(`
        %s)
            COMPREPLY=( $(compgen -f -- "$cur") )
            return
            ;;`, strings.Join(o.flags(), "|")))
	}

	script.WriteString(`
    esac

    if [[ "$cur" == -* ]]; then
        local flags=()`)

	for _, o := range data.Options {
		for _, flag := range o.flags() {
			script.WriteString(fmt.Sprintf(`
        flags+=("%s[%s]")`, flag, escapeBash(o.Description)))
		}
	}

	script.WriteString(fmt.Sprintf(`

        COMPREPLY=( $(compgen -W "${flags[*]%%%%[*}" -- "$cur") )
        return
    fi

    COMPREPLY=( $(compgen -f -- "$cur") )
}

complete -F __%s_completion %s
`, fn, programName))

	return script.String()
}
