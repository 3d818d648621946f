package cli

import (
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/gridwords/pkg/buildinfo"
	"github.com/matzehuels/gridwords/pkg/cache"
	"github.com/matzehuels/gridwords/pkg/config"
	"github.com/matzehuels/gridwords/pkg/dictionary"
	errs "github.com/matzehuels/gridwords/pkg/errors"
	"github.com/matzehuels/gridwords/pkg/grid"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "gridwords"

	// defaultSide is the row and column count of a random grid when no grid
	// is given.
	defaultSide = 4
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
	cfg        config.Config
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		cfg:    config.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "gridwords finds every dictionary word hidden in a letter grid",
		Long: `gridwords finds every dictionary word that can be traced through a grid of
letters by moving between neighbouring cells (including diagonals) without
reusing a cell, as in Boggle.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(c.configPath)
			if err != nil {
				return err
			}
			c.cfg = cfg
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default: "+config.Path()+")")

	root.AddCommand(c.solveCommand())
	root.AddCommand(c.traceCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.generateCommand())
	root.AddCommand(c.benchCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Grid Input
// =============================================================================

// gridOpts selects where a command's grid comes from. At most one of rows,
// input and random may be set; with none, a random square grid is generated.
type gridOpts struct {
	rows    string // rows separated by "/", e.g. "ca/ts"
	input   string // file holding the grid, "-" for stdin
	random  string // "RxC"
	seed    uint64 // 0 = time based
	letters string // pool for random grids
}

func (o *gridOpts) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.rows, "grid", "g", "", `grid rows separated by "/" (e.g. "ca/ts" or "qu i/t s")`)
	cmd.Flags().StringVarP(&o.input, "input", "i", "", `read the grid from a file ("-" for stdin)`)
	cmd.Flags().StringVarP(&o.random, "random", "r", "", "generate a random RxC grid (e.g. 4x4)")
	cmd.Flags().Uint64Var(&o.seed, "seed", 0, "seed for random grids (default: time based)")
	cmd.Flags().StringVar(&o.letters, "letters", "", "letters random grids draw from (default: from config)")
	cmd.MarkFlagsMutuallyExclusive("grid", "input", "random")
}

// load builds the selected grid. letters is the configured default pool.
func (o *gridOpts) load(letters string) (*grid.Grid, error) {
	switch {
	case o.rows != "":
		return grid.ParseRows(strings.Split(o.rows, "/"))
	case o.input == dictionary.Stdin:
		return grid.Parse(os.Stdin)
	case o.input != "":
		if err := errs.ValidatePath(o.input); err != nil {
			return nil, err
		}
		f, err := os.Open(o.input)
		if os.IsNotExist(err) {
			return nil, errs.Wrap(errs.ErrCodeFileNotFound, err, "grid file %s not found", o.input)
		}
		if err != nil {
			return nil, errs.Wrap(errs.ErrCodeInvalidPath, err, "open grid file %s", o.input)
		}
		defer f.Close()
		return grid.Parse(f)
	}

	rows, cols := defaultSide, defaultSide
	if o.random != "" {
		var err error
		if rows, cols, err = parseDims(o.random); err != nil {
			return nil, err
		}
	}
	if o.letters != "" {
		letters = o.letters
	}
	seed := o.seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return grid.Random(rows, cols, letters, rand.New(rand.NewPCG(seed, seed>>1|1)))
}

// parseDims parses "RxC" (or a single "N" for NxN).
func parseDims(s string) (rows, cols int, err error) {
	r, c, found := strings.Cut(strings.ToLower(s), "x")
	if !found {
		c = r
	}
	rows, err1 := strconv.Atoi(strings.TrimSpace(r))
	cols, err2 := strconv.Atoi(strings.TrimSpace(c))
	if err1 != nil || err2 != nil {
		return 0, 0, errs.New(errs.ErrCodeInvalidInput, "invalid dimensions %q (want RxC, e.g. 4x4)", s)
	}
	return rows, cols, errs.ValidateDimensions(min(rows, errs.MaxGridSide), min(cols, errs.MaxGridSide))
}

// =============================================================================
// Dictionary & Cache
// =============================================================================

// dictOpts selects and fetches the word list.
type dictOpts struct {
	source  string
	noCache bool
	refresh bool
}

func (o *dictOpts) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.source, "dict", "d", "", `word list: file, "-" for stdin, or URL (default: from config)`)
	cmd.Flags().BoolVar(&o.noCache, "no-cache", false, "do not cache downloaded word lists")
	cmd.Flags().BoolVar(&o.refresh, "refresh", false, "re-download the word list even if cached")
}

// loadWords fetches the word list named by opts or the config.
func (c *CLI) loadWords(ctx context.Context, opts dictOpts) ([]string, error) {
	source := opts.source
	if source == "" {
		source = c.cfg.Dictionary
	}

	store, err := c.newCache(ctx, opts.noCache)
	if err != nil {
		return nil, err
	}
	defer store.Close()

	prog := newProgress(loggerFromContext(ctx))
	words, err := dictionary.Open(ctx, source, dictionary.NewClient(store, nil, c.cfg.CacheTTL), opts.refresh)
	if err != nil {
		return nil, err
	}
	prog.done(fmt.Sprintf("Loaded %d words from %s", len(words), source))
	return words, nil
}

// newCache opens the configured cache backend: Redis when an address is
// configured, the cache directory otherwise.
func (c *CLI) newCache(ctx context.Context, noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	if c.cfg.RedisAddr != "" {
		rc, err := cache.NewRedisCache(ctx, c.cfg.RedisAddr)
		if err != nil {
			c.Logger.Warn("Redis unavailable, caching disabled", "addr", c.cfg.RedisAddr, "error", err)
			return cache.NewNullCache(), nil
		}
		return rc, nil
	}
	fc, err := cache.NewFileCache(c.cfg.CacheDir)
	if err != nil {
		c.Logger.Warn("Cache directory unavailable, caching disabled", "dir", c.cfg.CacheDir, "error", err)
		return cache.NewNullCache(), nil
	}
	return fc, nil
}

// withTimeout applies the configured solve timeout, if any.
func (c *CLI) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.cfg.Timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, c.cfg.Timeout)
}
