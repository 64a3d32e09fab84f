package cmd

import (
	"log"
	"strings"

	"github.com/jessevdk/go-flags"
)

// Run is the entry point for the CLI.
func Run(args []string) {
	if err := run(args); err != nil {
		log.Fatalf("%v", err)
	}
}

func run(args []string) error {
	// Make the schema location discoverable by sub-commands via the singleton.
	setSchemaLocation(extractSchemaLocation(args))

	opts := &Options{}
	var first string
	if len(args) > 0 {
		first = args[0]
	}
	opts.Init(first)

	parser := flags.NewParser(opts, flags.HelpFlag|flags.PassDoubleDash)
	_, err := parser.ParseArgs(args)
	return err
}

// extractSchemaLocation searches the raw argument list for the -f/--schema
// option before the full flags parsing is performed.
func extractSchemaLocation(args []string) string {
	for i, a := range args {
		switch a {
		case "-f", "--schema":
			if i+1 < len(args) {
				return args[i+1]
			}
		default:
			if strings.HasPrefix(a, "--schema=") {
				return strings.TrimPrefix(a, "--schema=")
			}
		}
	}
	return ""
}
