package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/alnah/go-rn2md/internal/assets"
	flag "github.com/spf13/pflag"
)

// Shell represents a supported shell for completion generation.
type Shell string

// Supported shells for completion.
const (
	ShellBash Shell = "bash"
	ShellZsh  Shell = "zsh"
	ShellFish Shell = "fish"
)

// ErrUnsupportedShell is returned when an unknown shell is requested.
var ErrUnsupportedShell = fmt.Errorf("unsupported shell")

// flagType represents the completion type for a flag.
type flagType int

const (
	flagString flagType = iota // default
	flagBool
	flagInt
	flagEnum // has predefined values
	flagFile // file with glob pattern
	flagDir  // directory
)

// flagDef describes a flag for completion purposes.
type flagDef struct {
	Long     string   // --output
	Short    string   // -o (empty if none)
	Type     flagType // completion type
	Desc     string   // help text
	Values   []string // for enum flags
	FileGlob string   // for file flags
}

// commandDef describes a command for completion.
type commandDef struct {
	Name       string
	Desc       string
	Flags      []flagDef
	TakesFiles bool     // accepts file arguments
	Words      []string // fixed positional words
}

// completionMeta holds completion-specific metadata for flags.
// Flag names, types, and descriptions come from the FlagSet.
type completionMeta struct {
	Values   []string // enum values
	FileGlob string   // file glob pattern
	IsDir    bool     // directory completion
}

// flagCompletionMeta maps flag names to their completion metadata.
var flagCompletionMeta = map[string]completionMeta{
	"heading-format": {Values: presetNames()},
	"config":         {FileGlob: "*.yaml,*.yml"},
	"style":          {Values: assets.NewEmbeddedLoader().Styles()},
	"output":         {FileGlob: "*"},
	"data-path":      {IsDir: true},
}

// dateWords are the day expressions offered for the show command.
var dateWords = []string{"today", "yesterday", "tomorrow", "this", "last", "next", "week", "ago"}

// extractFlagsFromFlagSet extracts flag definitions from a pflag.FlagSet.
// Enriches with completion metadata from flagCompletionMeta.
func extractFlagsFromFlagSet(fs *flag.FlagSet) []flagDef {
	var flags []flagDef

	fs.VisitAll(func(f *flag.Flag) {
		fd := flagDef{
			Long:  f.Name,
			Short: f.Shorthand,
			Desc:  f.Usage,
		}

		switch f.Value.Type() {
		case "bool":
			fd.Type = flagBool
		case "int":
			fd.Type = flagInt
		default:
			fd.Type = flagString
		}

		// Override type based on completion metadata
		if meta, ok := flagCompletionMeta[f.Name]; ok {
			if len(meta.Values) > 0 {
				fd.Type = flagEnum
				fd.Values = meta.Values
			} else if meta.FileGlob != "" {
				fd.Type = flagFile
				fd.FileGlob = meta.FileGlob
			} else if meta.IsDir {
				fd.Type = flagDir
			}
		}

		flags = append(flags, fd)
	})

	return flags
}

// getCommands returns the command registry for completion.
// Flags are extracted from the actual FlagSet - single source of truth.
func getCommands() []commandDef {
	return []commandDef{
		{
			Name:  "show",
			Desc:  "Print notebook days as Markdown",
			Flags: extractFlagsFromFlagSet(buildShowFlagSet(&showFlags{})),
			Words: dateWords,
		},
		{
			Name:       "convert",
			Desc:       "Convert a RedNotebook text file",
			Flags:      extractFlagsFromFlagSet(buildConvertFlagSet(&convertFlags{})),
			TakesFiles: true,
		},
		{Name: "doctor", Desc: "Check config and notebook", Flags: []flagDef{{Long: "json", Type: flagBool, Desc: "output JSON"}}},
		{Name: "completion", Desc: "Generate shell completion script", Words: []string{string(ShellBash), string(ShellZsh), string(ShellFish)}},
		{Name: "version", Desc: "Show version information"},
		{Name: "help", Desc: "Show help for a command", Words: commandNames},
	}
}

// GenerateCompletion writes shell completion script to w.
// Returns error if shell is unsupported or write fails.
func GenerateCompletion(w io.Writer, shell Shell) error {
	var script string
	switch shell {
	case ShellBash:
		script = generateBash(getCommands())
	case ShellZsh:
		script = "#compdef rn2md\n\nautoload -U +X bashcompinit && bashcompinit\n\n" + generateBash(getCommands())
	case ShellFish:
		script = generateFish(getCommands())
	default:
		return fmt.Errorf("%w: %q (supported: bash, zsh, fish)", ErrUnsupportedShell, shell)
	}
	_, err := io.WriteString(w, script)
	return err
}

// generateBash builds a bash completion function. The zsh script reuses it
// through bashcompinit.
func generateBash(cmds []commandDef) string {
	var b strings.Builder
	names := make([]string, 0, len(cmds))
	for _, c := range cmds {
		names = append(names, c.Name)
	}

	b.WriteString("# bash completion for rn2md\n")
	b.WriteString("_rn2md() {\n")
	b.WriteString("    local cur prev cmd i\n")
	b.WriteString("    cur=\"${COMP_WORDS[COMP_CWORD]}\"\n")
	b.WriteString("    prev=\"${COMP_WORDS[COMP_CWORD-1]}\"\n")
	b.WriteString("    cmd=show\n")
	b.WriteString("    for ((i = 1; i < COMP_CWORD; i++)); do\n")
	fmt.Fprintf(&b, "        case \"${COMP_WORDS[i]}\" in %s) cmd=\"${COMP_WORDS[i]}\"; break ;; esac\n", strings.Join(names, "|"))
	b.WriteString("    done\n\n")

	// Flag values
	b.WriteString("    case \"$prev\" in\n")
	seen := map[string]bool{}
	for _, c := range cmds {
		for _, f := range c.Flags {
			if seen[f.Long] {
				continue
			}
			seen[f.Long] = true
			pattern := "--" + f.Long
			if f.Short != "" {
				pattern = "-" + f.Short + "|" + pattern
			}
			switch f.Type {
			case flagEnum:
				fmt.Fprintf(&b, "        %s) COMPREPLY=($(compgen -W %q -- \"$cur\")); return ;;\n", pattern, strings.Join(f.Values, " "))
			case flagFile:
				fmt.Fprintf(&b, "        %s) COMPREPLY=($(compgen -f -- \"$cur\")); return ;;\n", pattern)
			case flagDir:
				fmt.Fprintf(&b, "        %s) COMPREPLY=($(compgen -d -- \"$cur\")); return ;;\n", pattern)
			case flagInt, flagString:
				fmt.Fprintf(&b, "        %s) return ;;\n", pattern)
			}
		}
	}
	b.WriteString("    esac\n\n")

	// Flags and words per command
	b.WriteString("    case \"$cmd\" in\n")
	for _, c := range cmds {
		var opts []string
		for _, f := range c.Flags {
			opts = append(opts, "--"+f.Long)
			if f.Short != "" {
				opts = append(opts, "-"+f.Short)
			}
		}
		words := c.Words
		if c.Name == "show" {
			words = append(append([]string{}, names...), c.Words...)
		}
		fmt.Fprintf(&b, "        %s)\n", c.Name)
		fmt.Fprintf(&b, "            if [[ \"$cur\" == -* ]]; then COMPREPLY=($(compgen -W %q -- \"$cur\")); return; fi\n", strings.Join(opts, " "))
		if c.TakesFiles {
			b.WriteString("            COMPREPLY=($(compgen -f -- \"$cur\"))\n")
		} else {
			fmt.Fprintf(&b, "            COMPREPLY=($(compgen -W %q -- \"$cur\"))\n", strings.Join(words, " "))
		}
		b.WriteString("            ;;\n")
	}
	b.WriteString("    esac\n")
	b.WriteString("}\n\n")
	b.WriteString("complete -F _rn2md rn2md\n")
	return b.String()
}

// generateFish builds fish completion commands.
func generateFish(cmds []commandDef) string {
	var b strings.Builder
	names := make([]string, 0, len(cmds))
	for _, c := range cmds {
		names = append(names, c.Name)
	}
	all := strings.Join(names, " ")

	b.WriteString("# fish completion for rn2md\n")
	b.WriteString("complete -c rn2md -f\n")
	for _, c := range cmds {
		if c.Name == "show" {
			continue
		}
		fmt.Fprintf(&b, "complete -c rn2md -n \"not __fish_seen_subcommand_from %s\" -a %s -d %q\n", all, c.Name, c.Desc)
	}

	for _, c := range cmds {
		cond := fmt.Sprintf("__fish_seen_subcommand_from %s", c.Name)
		if c.Name == "show" {
			// show is the default command
			cond = "not __fish_seen_subcommand_from " + strings.Join(names[1:], " ")
		}
		for _, f := range c.Flags {
			fmt.Fprintf(&b, "complete -c rn2md -n %q -l %s", cond, f.Long)
			if f.Short != "" {
				fmt.Fprintf(&b, " -s %s", f.Short)
			}
			switch f.Type {
			case flagEnum:
				fmt.Fprintf(&b, " -x -a %q", strings.Join(f.Values, " "))
			case flagFile:
				b.WriteString(" -r -F")
			case flagDir:
				b.WriteString(" -x -a \"(__fish_complete_directories)\"")
			case flagInt, flagString:
				b.WriteString(" -x")
			}
			fmt.Fprintf(&b, " -d %q\n", f.Desc)
		}
		if c.TakesFiles {
			fmt.Fprintf(&b, "complete -c rn2md -n %q -F\n", cond)
		} else if len(c.Words) > 0 && c.Name != "show" {
			fmt.Fprintf(&b, "complete -c rn2md -n %q -a %q\n", cond, strings.Join(c.Words, " "))
		}
	}
	return b.String()
}

// runCompletion handles the completion command.
func runCompletion(args []string, env *Environment) error {
	if len(args) == 0 {
		printCompletionUsage(env.Stdout)
		return nil
	}

	shell := Shell(args[0])
	return GenerateCompletion(env.Stdout, shell)
}

// printCompletionUsage prints help for the completion command.
func printCompletionUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: rn2md completion <shell>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Generate shell completion script for the specified shell.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Supported shells:")
	fmt.Fprintln(w, "  bash        Bash completion script")
	fmt.Fprintln(w, "  zsh         Zsh completion script")
	fmt.Fprintln(w, "  fish        Fish completion script")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Installation:")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Bash:")
	fmt.Fprintln(w, "    # Add to ~/.bashrc:")
	fmt.Fprintln(w, "    eval \"$(rn2md completion bash)\"")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Zsh:")
	fmt.Fprintln(w, "    # Add to ~/.zshrc (after compinit):")
	fmt.Fprintln(w, "    eval \"$(rn2md completion zsh)\"")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Fish:")
	fmt.Fprintln(w, "    rn2md completion fish > ~/.config/fish/completions/rn2md.fish")
}
