package commands

import (
	"fmt"
	"strings"
)

func FormatHelpMessage(defs []Definition) string {
	if len(defs) == 0 {
		return "No commands available."
	}

	lines := make([]string, 0, len(defs))
	for _, def := range defs {
		desc := def.Description
		if desc == "" {
			desc = "No description"
		}
		lines = append(lines, fmt.Sprintf("%s - %s", usageOf(def), desc))
	}
	return strings.Join(lines, "\n")
}
