package completion

import (
	"fmt"
	"strings"
)

type FishGenerator struct{}

func (g *FishGenerator) Generate(programName string, data Data) string {
	var script strings.Builder

	for _, o := range data.Options {
		// Start with base command, add -f unless the option consumes parameters
		cmd := fmt.Sprintf("complete -c %s", programName)
		if !o.takesParams() {
			cmd = fmt.Sprintf("%s -f", cmd)
		} else {
			cmd = fmt.Sprintf("%s -r", cmd)
		}

		// Combined short and long flags
		if o.Short != "" && o.Long != "" {
			cmd = fmt.Sprintf("%s -s %s -l %s", cmd, o.Short, o.Long)
		} else if o.Short != "" {
			cmd = fmt.Sprintf("%s -s %s", cmd, o.Short)
		} else {
			cmd = fmt.Sprintf("%s -l %s", cmd, o.Long)
		}
		if o.Description != "" {
			cmd = fmt.Sprintf("%s -d '%s'", cmd, escapeFish(o.Description))
		}
		script.WriteString(cmd + "\n")
	}

	return script.String()
}
