// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/strassen/matrix"
	"github.com/katalvlaran/strassen/strassen"
)

// Flag names double as configuration keys (YAML, STRASSEN_* env).
const (
	keyFile     = "file"
	keyRandom   = "random"
	keySize     = "size"
	keyPathA    = "a"
	keyPathB    = "b"
	keySeed     = "seed"
	keyParallel = "parallel"
	keyMaxDim   = "max-dim"
	keyLogLevel = "log-level"
	keyConfig   = "config"

	envPrefix = "STRASSEN"
)

// errUsage asks Run to print usage and exit successfully.
var errUsage = errors.New("cli: usage requested")

// Config is the resolved run configuration.
type Config struct {
	File     bool   // read A and B from PathA and PathB
	Random   bool   // generate A and B
	Size     int    // n
	PathA    string // default a.txt
	PathB    string // default b.txt
	Seed     int64  // 0 seeds from the clock
	Parallel bool
	MaxDim   int
	LogLevel string
}

// registerFlags declares every flag on fs with its default.
func registerFlags(fs *pflag.FlagSet) {
	fs.BoolP(keyFile, "f", false, "Read matrix A and B from files (see --a, --b)")
	fs.BoolP(keyRandom, "r", false, "Generate matrix A and B randomly")
	fs.IntP(keySize, "n", 0, "Number of rows/cols (power of two)")
	fs.String(keyPathA, "a.txt", "File holding matrix A")
	fs.String(keyPathB, "b.txt", "File holding matrix B")
	fs.Int64(keySeed, 0, "Random seed for -r (0 seeds from the clock)")
	fs.Bool(keyParallel, false, "Run the seven sub-products concurrently")
	fs.Int(keyMaxDim, strassen.DefaultMaxDimension, "Largest accepted n (power of two)")
	fs.String(keyLogLevel, "warn", "Log level: debug, info, warn, error")
	fs.String(keyConfig, "", "Optional YAML configuration file")
}

// newViper binds fs, the STRASSEN_* environment and, when --config is set,
// a YAML file. Precedence: flag > env > file > default.
func newViper(fs *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return nil, fmt.Errorf("cli: bind flags: %w", err)
	}
	if path := v.GetString(keyConfig); path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("cli: read config %s: %w", path, err)
		}
	}

	return v, nil
}

// loadConfig resolves and validates the configuration.
//
// Errors:
//   - errUsage when the input selection is missing or ambiguous, or -n is absent.
//   - a wrapped strassen.ErrInvalidDimension for a bad --max-dim.
func loadConfig(v *viper.Viper) (Config, error) {
	cfg := Config{
		File:     v.GetBool(keyFile),
		Random:   v.GetBool(keyRandom),
		Size:     v.GetInt(keySize),
		PathA:    v.GetString(keyPathA),
		PathB:    v.GetString(keyPathB),
		Seed:     v.GetInt64(keySeed),
		Parallel: v.GetBool(keyParallel),
		MaxDim:   v.GetInt(keyMaxDim),
		LogLevel: v.GetString(keyLogLevel),
	}
	if cfg.File == cfg.Random || !v.IsSet(keySize) {
		return cfg, errUsage
	}
	if !matrix.IsPowerOfTwo(cfg.MaxDim) {
		return cfg, fmt.Errorf("%w: --max-dim %d is not a power of two", strassen.ErrInvalidDimension, cfg.MaxDim)
	}

	return cfg, nil
}
