package commands

import "strings"

// Validate applies def's argument policy to raw. On success it returns the trimmed
// argument; a blank required argument yields a *MissingArgumentError.
func Validate(def Definition, raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if def.Args == ArgRequired && trimmed == "" {
		return "", &MissingArgumentError{
			Command: def.Name,
			Usage:   "Usage: " + usageOf(def),
		}
	}
	return trimmed, nil
}

func usageOf(def Definition) string {
	if def.Usage != "" {
		return def.Usage
	}
	return "/" + def.Name
}
