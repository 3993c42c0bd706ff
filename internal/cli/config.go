// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// envPrefix namespaces environment overrides, e.g. VECMAT_GROW_ROWS.
const envPrefix = "VECMAT"

var errInvalidConfig = errors.New("vecmat: invalid configuration")

// SliceBounds is the half-open window [RowStart,RowEnd)×[ColStart,ColEnd).
type SliceBounds struct {
	RowStart int
	RowEnd   int
	ColStart int
	ColEnd   int
}

// Config drives the demo walkthrough.
type Config struct {
	Rows     int
	Cols     int
	GrowRows int
	GrowCols int
	Slice    SliceBounds
	Needle   int
	// Seed selects a reproducible value stream; 0 uses the clock-seeded
	// process source.
	Seed    int64
	Verbose bool
}

// DefaultConfig returns the walkthrough used when nothing is overridden:
// 3×3, grown to 5×5, window [1,3)×[1,3), searching for 9.
func DefaultConfig() Config {
	return Config{
		Rows:     3,
		Cols:     3,
		GrowRows: 5,
		GrowCols: 5,
		Slice:    SliceBounds{RowStart: 1, RowEnd: 3, ColStart: 1, ColEnd: 3},
		Needle:   9,
	}
}

// Viper keys; nested keys map to VECMAT_SLICE_ROW_START etc.
const (
	keyRows          = "rows"
	keyCols          = "cols"
	keyGrowRows      = "grow_rows"
	keyGrowCols      = "grow_cols"
	keySliceRowStart = "slice.row_start"
	keySliceRowEnd   = "slice.row_end"
	keySliceColStart = "slice.col_start"
	keySliceColEnd   = "slice.col_end"
	keyNeedle        = "needle"
	keySeed          = "seed"
	keyVerbose       = "verbose"
)

// loadConfig resolves the configuration from, in increasing priority:
// defaults, the optional config file, VECMAT_* environment variables and
// flags already bound to v.
func loadConfig(v *viper.Viper, configFile string) (Config, error) {
	d := DefaultConfig()
	v.SetDefault(keyRows, d.Rows)
	v.SetDefault(keyCols, d.Cols)
	v.SetDefault(keyGrowRows, d.GrowRows)
	v.SetDefault(keyGrowCols, d.GrowCols)
	v.SetDefault(keySliceRowStart, d.Slice.RowStart)
	v.SetDefault(keySliceRowEnd, d.Slice.RowEnd)
	v.SetDefault(keySliceColStart, d.Slice.ColStart)
	v.SetDefault(keySliceColEnd, d.Slice.ColEnd)
	v.SetDefault(keyNeedle, d.Needle)
	v.SetDefault(keySeed, d.Seed)
	v.SetDefault(keyVerbose, d.Verbose)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", configFile, err)
		}
	}

	cfg := Config{
		Rows:     v.GetInt(keyRows),
		Cols:     v.GetInt(keyCols),
		GrowRows: v.GetInt(keyGrowRows),
		GrowCols: v.GetInt(keyGrowCols),
		Slice: SliceBounds{
			RowStart: v.GetInt(keySliceRowStart),
			RowEnd:   v.GetInt(keySliceRowEnd),
			ColStart: v.GetInt(keySliceColStart),
			ColEnd:   v.GetInt(keySliceColEnd),
		},
		Needle:  v.GetInt(keyNeedle),
		Seed:    v.GetInt64(keySeed),
		Verbose: v.GetBool(keyVerbose),
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// validate rejects negative shapes. Slice bounds are left to the matrix,
// which reports them as out of range.
func (c Config) validate() error {
	switch {
	case c.Rows < 0 || c.Cols < 0:
		return fmt.Errorf("%w: shape %dx%d", errInvalidConfig, c.Rows, c.Cols)
	case c.GrowRows < 0 || c.GrowCols < 0:
		return fmt.Errorf("%w: resize %dx%d", errInvalidConfig, c.GrowRows, c.GrowCols)
	}

	return nil
}
