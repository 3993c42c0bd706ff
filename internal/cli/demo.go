// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/vecmat/matrix"
)

// newDemoCmd wires the demo flags into v and runs the walkthrough.
func newDemoCmd(v *viper.Viper, ro *rootOptions) *cobra.Command {
	d := DefaultConfig()
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Build, grow, slice, copy/move, transpose and search a matrix",
		Long: `Runs the matrix walkthrough and prints every intermediate matrix:

  1. m1: a random rows×cols matrix
  2. m1 resized to grow-rows×grow-cols (new cells are zero)
  3. m2: the slice window of m1
  4. m3: a copy of m2, m4: m2 moved out (m2 becomes empty)
  5. m4 transposed
  6. the 1-based position of the needle in m4

Invalid slice bounds abort the run with an out-of-range error.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(v, ro.configFile)
			if err != nil {
				return err
			}
			logger := newLogger(cmd.ErrOrStderr(), cfg.Verbose)

			return runDemo(cmd.OutOrStdout(), cfg, logger)
		},
	}

	flags := cmd.Flags()
	flags.Int("rows", d.Rows, "rows of the initial matrix")
	flags.Int("cols", d.Cols, "columns of the initial matrix")
	flags.Int("grow-rows", d.GrowRows, "row count after resize")
	flags.Int("grow-cols", d.GrowCols, "column count after resize")
	flags.Int("slice-row-start", d.Slice.RowStart, "first row of the slice window")
	flags.Int("slice-row-end", d.Slice.RowEnd, "row bound (exclusive) of the slice window")
	flags.Int("slice-col-start", d.Slice.ColStart, "first column of the slice window")
	flags.Int("slice-col-end", d.Slice.ColEnd, "column bound (exclusive) of the slice window")
	flags.Int("needle", d.Needle, "value to search for in the transposed slice")
	flags.Int64("seed", d.Seed, "random seed (0 seeds from the clock)")

	for key, name := range map[string]string{
		keyRows:          "rows",
		keyCols:          "cols",
		keyGrowRows:      "grow-rows",
		keyGrowCols:      "grow-cols",
		keySliceRowStart: "slice-row-start",
		keySliceRowEnd:   "slice-row-end",
		keySliceColStart: "slice-col-start",
		keySliceColEnd:   "slice-col-end",
		keyNeedle:        "needle",
		keySeed:          "seed",
	} {
		_ = v.BindPFlag(key, flags.Lookup(name)) // only fails on a nil flag
	}

	return cmd
}

// runDemo executes the walkthrough and prints each matrix to w.
// The first error (an invalid slice window in practice) aborts the run.
func runDemo(w io.Writer, cfg Config, logger *log.Logger) error {
	var opts []matrix.Option
	if cfg.Seed != 0 {
		opts = append(opts, matrix.WithSeed(cfg.Seed))
	}

	m1, err := matrix.New(cfg.Rows, cfg.Cols, opts...)
	if err != nil {
		return fmt.Errorf("build m1: %w", err)
	}
	logger.Debug("built", "matrix", "m1", "rows", m1.Rows(), "cols", m1.Cols(), "seed", cfg.Seed)
	if err = printMatrix(w, "Matrix m1:", m1); err != nil {
		return err
	}

	if err = m1.Resize(cfg.GrowRows, cfg.GrowCols); err != nil {
		return fmt.Errorf("resize m1: %w", err)
	}
	logger.Debug("resized", "matrix", "m1", "rows", m1.Rows(), "cols", m1.Cols())
	if err = printMatrix(w, "Matrix m1 (resized):", m1); err != nil {
		return err
	}

	b := cfg.Slice
	m2, err := m1.Slice(b.RowStart, b.RowEnd, b.ColStart, b.ColEnd)
	if err != nil {
		logger.Error("slice rejected", "rows", m1.Rows(), "cols", m1.Cols(), "window", b)
		return fmt.Errorf("slice m1: %w", err)
	}
	if err = printMatrix(w, "Matrix m2 (slice of m1):", m2); err != nil {
		return err
	}

	m3 := m2.Copy()
	m4 := m2.Move()
	logger.Debug("copied and moved",
		"m2", fmt.Sprintf("%dx%d", m2.Rows(), m2.Cols()),
		"m3", fmt.Sprintf("%dx%d", m3.Rows(), m3.Cols()),
		"m4", fmt.Sprintf("%dx%d", m4.Rows(), m4.Cols()))

	m4.Transpose()
	if err = printMatrix(w, "Matrix m4 (transposed):", m4); err != nil {
		return err
	}

	row, col := m4.Find(cfg.Needle)
	var report string
	if row == matrix.NotFound {
		report = fmt.Sprintf("Value %d not found", cfg.Needle)
	} else {
		report = fmt.Sprintf("Position of %d: (%d, %d)", cfg.Needle, row+1, col+1)
	}
	if _, err = fmt.Fprintln(w, resultStyle.Render(report)); err != nil {
		return err
	}

	logger.Info("demo finished", "m1_sum", m1.Sum(), "m3_sum", m3.Sum(), "m4_sum", m4.Sum())

	return nil
}

// printMatrix writes a styled title followed by the matrix rows.
func printMatrix(w io.Writer, title string, m *matrix.Matrix) error {
	if _, err := fmt.Fprintln(w, titleStyle.Render(title)); err != nil {
		return err
	}

	return m.Display(w)
}
