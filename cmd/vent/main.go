package main

import (
	"os"
	"strings"

	"vent-cli/internal/cli"
)

func isMessageID(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func rewriteDirectLookupArgs(argv []string) []string {
	// Convenience: `vent <id>` works like `vent show <id>`.
	//
	// Cobra treats the first non-flag token as a subcommand, so we rewrite
	// argv before parsing. Persistent flags may come first (e.g.
	// `vent --store ./v.csv 10`), so we look for the first positional
	// token, not just argv[1].
	if len(argv) < 2 {
		return argv
	}

	valueFlags := map[string]bool{
		"--store":    true,
		"--template": true,
	}
	boolFlags := map[string]bool{
		"--json":   true,
		"--pretty": true,
	}

	for i := 1; i < len(argv); i++ {
		a := strings.TrimSpace(argv[i])
		if a == "" {
			continue
		}
		if a == "--" {
			// Flag parsing stops; next token (if any) is the first positional.
			if i+1 < len(argv) && isMessageID(argv[i+1]) {
				out := make([]string, 0, len(argv)+1)
				out = append(out, argv[:i+1]...)
				out = append(out, "show")
				out = append(out, argv[i+1:]...)
				return out
			}
			return argv
		}

		if strings.HasPrefix(a, "-") {
			if strings.Contains(a, "=") {
				continue
			}
			if boolFlags[a] {
				continue
			}
			if valueFlags[a] {
				i++ // skip value if present
				continue
			}
			continue
		}

		// First positional token.
		if isMessageID(a) {
			out := make([]string, 0, len(argv)+1)
			out = append(out, argv[:i]...)
			out = append(out, "show")
			out = append(out, argv[i:]...)
			return out
		}
		return argv
	}

	return argv
}

func main() {
	os.Args = rewriteDirectLookupArgs(os.Args)

	cmd := cli.NewRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
