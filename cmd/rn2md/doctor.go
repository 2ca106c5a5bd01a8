package main

import (
	"encoding/json"
	"fmt"
	"io"
	"runtime"
	"strings"
	"time"

	"github.com/alnah/go-rn2md/internal/assets"
	"github.com/alnah/go-rn2md/internal/storage"
)

// doctorResult holds all diagnostic information.
type doctorResult struct {
	Status   string       `json:"status"` // "ready", "warnings", "errors"
	Config   configInfo   `json:"config"`
	Notebook notebookInfo `json:"notebook"`
	Styles   stylesInfo   `json:"styles"`
	System   systemInfo   `json:"system"`
	Warnings []string     `json:"warnings,omitempty"`
	Errors   []string     `json:"errors,omitempty"`
}

// configInfo holds config file resolution results.
type configInfo struct {
	Path         string `json:"path,omitempty"` // empty when defaults apply
	WorkdaysOnly bool   `json:"workdays_only"`
	DateRange    string `json:"default_date_range"`
}

// notebookInfo holds data directory results.
type notebookInfo struct {
	DataPath string `json:"data_path"`
	Found    bool   `json:"found"`
	Entries  int    `json:"entries"`
	First    string `json:"first,omitempty"`
	Last     string `json:"last,omitempty"`
	Skipped  int    `json:"skipped"`
}

// stylesInfo holds the preview styles available to --style.
type stylesInfo struct {
	CustomDir string   `json:"custom_dir,omitempty"`
	Available []string `json:"available"`
}

// systemInfo holds platform details.
type systemInfo struct {
	OS         string `json:"os"`
	Arch       string `json:"arch"`
	GOMAXPROCS int    `json:"gomaxprocs"`
	Workers    int    `json:"workers"`
}

// runDoctorCmd executes the doctor command and returns an exit code.
// Exit codes: 0 = OK (including warnings), 1 = errors found.
func runDoctorCmd(args []string, env *Environment) int {
	jsonOutput := false
	for _, arg := range args {
		if arg == "--json" {
			jsonOutput = true
		}
	}

	result := runDoctor(env)

	if jsonOutput {
		enc := json.NewEncoder(env.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(result)
	} else {
		printDoctorResult(env.Stdout, result)
	}

	if result.Status == "errors" {
		return ExitGeneral
	}
	return ExitSuccess
}

// runDoctor performs all diagnostic checks.
func runDoctor(env *Environment) *doctorResult {
	result := &doctorResult{
		Status: "ready",
		System: systemInfo{
			OS:         runtime.GOOS,
			Arch:       runtime.GOARCH,
			GOMAXPROCS: runtime.GOMAXPROCS(0),
		},
	}

	checkStyles(result, env.StyleDir())

	envCfg := loadEnvConfig(env.Getenv, io.Discard)
	for _, name := range unknownEnvVars(env.Environ()) {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("Unknown environment variable %s (typo?)", name))
	}

	cfg, path, err := loadConfig("", envCfg, env.ConfigPaths())
	if err == nil {
		applyEnvConfig(envCfg, cfg)
		err = finishConfig(cfg)
	}
	if err != nil {
		result.Config.Path = path
		result.Errors = append(result.Errors, err.Error())
		result.Status = "errors"
		return result
	}

	result.Config = configInfo{Path: path, WorkdaysOnly: cfg.WorkdaysOnly, DateRange: cfg.DefaultDateRange}
	result.System.Workers = resolvePoolSize(cfg.Workers)
	checkNotebook(result, cfg.DataPath)

	// Determine final status
	if len(result.Errors) > 0 {
		result.Status = "errors"
	} else if len(result.Warnings) > 0 {
		result.Status = "warnings"
	}

	return result
}

// checkNotebook loads the data directory and summarizes its entries.
func checkNotebook(result *doctorResult, dataPath string) {
	result.Notebook.DataPath = dataPath

	nb, err := storage.Load(dataPath)
	if err != nil {
		result.Errors = append(result.Errors, err.Error())
		return
	}
	result.Notebook.Found = true
	result.Notebook.Entries = nb.Len()
	result.Notebook.Skipped = len(nb.Skipped)

	if days := nb.Days(); len(days) > 0 {
		result.Notebook.First = days[0].Format(time.DateOnly)
		result.Notebook.Last = days[len(days)-1].Format(time.DateOnly)
	} else {
		result.Warnings = append(result.Warnings, "No entries in "+dataPath)
	}

	for _, s := range nb.Skipped {
		result.Warnings = append(result.Warnings, fmt.Sprintf("Skipped %s (%s)", s.Path, s.Reason))
	}
}

// checkStyles lists the built-in and custom preview styles.
func checkStyles(result *doctorResult, styleDir string) {
	result.Styles.CustomDir = styleDir

	resolver, err := assets.NewStyleResolver(styleDir)
	if err != nil {
		result.Warnings = append(result.Warnings, err.Error())
		resolver, _ = assets.NewStyleResolver("")
	}
	result.Styles.Available = resolver.Styles()
}

// printDoctorResult outputs human-readable diagnostic results.
func printDoctorResult(w io.Writer, r *doctorResult) {
	fmt.Fprintln(w, "rn2md doctor")
	fmt.Fprintln(w)

	// Config section
	fmt.Fprintln(w, "Config")
	if r.Config.Path != "" {
		fmt.Fprintf(w, "  [OK] File: %s\n", r.Config.Path)
	} else {
		fmt.Fprintln(w, "  [OK] File: none (defaults)")
	}
	if r.Config.DateRange != "" {
		fmt.Fprintf(w, "  [OK] Default range: %s\n", r.Config.DateRange)
		fmt.Fprintf(w, "  [OK] Workdays only: %t\n", r.Config.WorkdaysOnly)
	}
	fmt.Fprintln(w)

	// Notebook section
	fmt.Fprintln(w, "Notebook")
	if r.Notebook.Found {
		fmt.Fprintf(w, "  [OK] Data path: %s\n", r.Notebook.DataPath)
		fmt.Fprintf(w, "  [OK] Entries: %d\n", r.Notebook.Entries)
		if r.Notebook.First != "" {
			fmt.Fprintf(w, "  [OK] Range: %s to %s\n", r.Notebook.First, r.Notebook.Last)
		}
	} else {
		fmt.Fprintln(w, "  [ERROR] Not found")
	}
	fmt.Fprintln(w)

	// Styles section
	fmt.Fprintln(w, "Styles")
	if r.Styles.CustomDir != "" {
		fmt.Fprintf(w, "  [OK] Custom dir: %s\n", r.Styles.CustomDir)
	}
	fmt.Fprintf(w, "  [OK] Available: %s\n", strings.Join(r.Styles.Available, ", "))
	fmt.Fprintln(w)

	// System section
	fmt.Fprintln(w, "System")
	fmt.Fprintf(w, "  [OK] Platform: %s/%s\n", r.System.OS, r.System.Arch)
	fmt.Fprintf(w, "  [OK] GOMAXPROCS: %d\n", r.System.GOMAXPROCS)
	if r.System.Workers > 0 {
		fmt.Fprintf(w, "  [OK] Workers: %d\n", r.System.Workers)
	}
	fmt.Fprintln(w)

	// Warnings
	if len(r.Warnings) > 0 {
		fmt.Fprintln(w, "Warnings:")
		for _, warn := range r.Warnings {
			fmt.Fprintf(w, "  [WARN] %s\n", warn)
		}
		fmt.Fprintln(w)
	}

	// Errors
	if len(r.Errors) > 0 {
		fmt.Fprintln(w, "Errors:")
		for _, err := range r.Errors {
			fmt.Fprintf(w, "  [ERROR] %s\n", err)
		}
		fmt.Fprintln(w)
	}

	// Final status
	switch r.Status {
	case "ready":
		fmt.Fprintln(w, "Status: Ready to convert")
	case "warnings":
		fmt.Fprintln(w, "Status: Ready with warnings")
	case "errors":
		fmt.Fprintln(w, "Status: Not ready (see errors above)")
	}
}
