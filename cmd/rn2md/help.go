package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: rn2md [command] [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert RedNotebook entries to Markdown.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  show        Print notebook days as Markdown (default)")
	fmt.Fprintln(w, "  convert     Convert a RedNotebook text file or stdin")
	fmt.Fprintln(w, "  doctor      Check config and notebook")
	fmt.Fprintln(w, "  completion  Generate shell completion script")
	fmt.Fprintln(w, "  version     Show version information")
	fmt.Fprintln(w, "  help        Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Examples:")
	fmt.Fprintln(w, "  rn2md                       Today's entry")
	fmt.Fprintln(w, "  rn2md last week --workdays  Last week, Monday to Friday")
	fmt.Fprintln(w, "  rn2md 2018-03-24 --html     One day as an HTML preview")
	fmt.Fprintln(w, "  rn2md convert notes.txt     Convert a text file")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'rn2md help <command>' for details on a specific command.")
}

// printShowUsage prints usage for the show command.
func printShowUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: rn2md [show] [flags] [date expression...]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Print the notebook entries of the selected days, oldest first.")
	fmt.Fprintln(w, "Each day starts with a level-1 heading; entry headers nest below it.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Date expressions:")
	fmt.Fprintln(w, "  today, yesterday, tomorrow, 2018-03-24")
	fmt.Fprintln(w, "  3 days ago, in 2 days, 2 weeks ago, in 1 week")
	fmt.Fprintln(w, "  this week, last week, next week")
	fmt.Fprintln(w, "  last friday, next monday")
	fmt.Fprintln(w, "  (default: defaultDateRange from config, else today)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Notebook:")
	fmt.Fprintln(w, "  -c, --config <name>          Config file name or path")
	fmt.Fprintln(w, "  -d, --data-path <dir>        RedNotebook data directory")
	fmt.Fprintln(w, "      --workdays               Weeks are Monday-Friday, weekend days move to a workday")
	fmt.Fprintln(w, "  -w, --workers <n>            Parallel workers (0 = auto)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output:")
	fmt.Fprintln(w, "  -o, --output <file>          Output file (default: stdout)")
	fmt.Fprintln(w, "      --heading-format <fmt>   Day heading: rednotebook, iso, european, us, long")
	fmt.Fprintln(w, "                               or tokens such as \"dddd, MMMM D\"")
	fmt.Fprintln(w, "      --header-padding <n>     Levels added to every header (default: 1)")
	fmt.Fprintln(w, "      --html                   Output an HTML preview instead of Markdown")
	fmt.Fprintln(w, "      --style <name|file>      Preview style: notebook, plain or a .css file")
	fmt.Fprintln(w, "      --no-style               HTML preview without a stylesheet")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Logging:")
	fmt.Fprintln(w, "  -q, --quiet                  Only show errors")
	fmt.Fprintln(w, "  -v, --verbose                Show skipped files and timing")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  RN2MD_CONFIG, RN2MD_DATA_PATH, RN2MD_HEADING_FORMAT,")
	fmt.Fprintln(w, "  RN2MD_WORKDAYS, RN2MD_WORKERS")
	fmt.Fprintln(w, "  Precedence: flags > environment > config file > defaults")
}

// printConvertUsage prints usage for the convert command.
func printConvertUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: rn2md convert [flags] [file|-]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert RedNotebook markup read from a file, or stdin, line by line.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -o, --output <file>          Output file (default: stdout)")
	fmt.Fprintln(w, "      --header-padding <n>     Levels added to every header (default: 0)")
	fmt.Fprintln(w, "      --html                   Output an HTML preview instead of Markdown")
	fmt.Fprintln(w, "      --style <name|file>      Preview style: notebook, plain or a .css file")
	fmt.Fprintln(w, "      --no-style               HTML preview without a stylesheet")
	fmt.Fprintln(w, "  -q, --quiet                  Only show errors")
	fmt.Fprintln(w, "  -v, --verbose                Show timing")
}

// printDoctorUsage prints usage for the doctor command.
func printDoctorUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: rn2md doctor [--json]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Check the config file, the data directory and the platform.")
	fmt.Fprintln(w, "Exits 1 when the notebook cannot be read.")
}

// runHelp prints help for a command, or the main usage.
func runHelp(args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return ExitSuccess
	}

	switch args[0] {
	case "show":
		printShowUsage(env.Stdout)
	case "convert":
		printConvertUsage(env.Stdout)
	case "doctor":
		printDoctorUsage(env.Stdout)
	case "completion":
		printCompletionUsage(env.Stdout)
	case "version", "help":
		printUsage(env.Stdout)
	default:
		fmt.Fprintf(env.Stderr, "unknown command: %s\n", args[0])
		printUsage(env.Stderr)
		return ExitUsage
	}
	return ExitSuccess
}
