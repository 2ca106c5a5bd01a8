package main

import (
	"io"
	"os"
	"time"

	"github.com/alnah/go-rn2md/internal/config"
)

// Environment holds injectable dependencies for testability.
// Includes I/O, time, the process environment and config lookup.
type Environment struct {
	Now         func() time.Time
	Stdin       io.Reader
	Stdout      io.Writer
	Stderr      io.Writer
	Getenv      func(string) string
	Environ     func() []string
	ConfigPaths func() []string // Default config files, in lookup order
	StyleDir    func() string   // Custom preview styles base, "" for built-ins only
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	return &Environment{
		Now:         time.Now,
		Stdin:       os.Stdin,
		Stdout:      os.Stdout,
		Stderr:      os.Stderr,
		Getenv:      os.Getenv,
		Environ:     os.Environ,
		ConfigPaths: config.SearchPaths,
		StyleDir:    config.StyleDir,
	}
}
