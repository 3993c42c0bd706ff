// SPDX-License-Identifier: MIT

// Package cli implements the vecmat command line: a demonstration driver for
// the vector and matrix packages.
package cli

import (
	"context"
	"io"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Version is the semantic version (set via -ldflags).
var Version = "dev"

// rootOptions carries persistent flag values that are not viper keys.
type rootOptions struct {
	configFile string
}

// newRootCmd assembles the command tree around a fresh viper instance.
func newRootCmd() *cobra.Command {
	v := viper.New()
	ro := &rootOptions{}

	root := &cobra.Command{
		Use:   "vecmat",
		Short: "Growable vectors and row-major integer matrices",
		Long: titleStyle.Render("vecmat") + subtitleStyle.Render(" - growable vectors and row-major integer matrices") + `

Settings come from flags, VECMAT_* environment variables (for example
VECMAT_GROW_ROWS or VECMAT_SLICE_ROW_START) and an optional config file.`,
		SilenceUsage: true,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&ro.configFile, "config", "", "config file (any format viper reads: yaml, toml, json)")
	pf.BoolP("verbose", "v", false, "enable debug logging")
	_ = v.BindPFlag(keyVerbose, pf.Lookup("verbose"))

	root.AddCommand(newDemoCmd(v, ro))

	return root
}

// newLogger returns the driver logger; verbose lowers the level to debug.
func newLogger(w io.Writer, verbose bool) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		Prefix: "vecmat",
	})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}

	return logger
}

// Execute runs the command tree and exits non-zero on failure.
// This is called by main.main().
func Execute() {
	if err := fang.Execute(
		context.Background(),
		newRootCmd(),
		fang.WithVersion(Version),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		os.Exit(1)
	}
}
