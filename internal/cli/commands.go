// Package cli wires configuration, storage and the terminal UI together
// for the storyboard command.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"text/tabwriter"

	"github.com/riordanpawley/storyboard/internal/app"
	"github.com/riordanpawley/storyboard/internal/config"
	"github.com/riordanpawley/storyboard/internal/domain"
	"github.com/riordanpawley/storyboard/internal/navigator"
	"github.com/riordanpawley/storyboard/internal/services/database"
	"github.com/riordanpawley/storyboard/internal/store"
	"github.com/riordanpawley/storyboard/internal/ui/pages"
	"github.com/riordanpawley/storyboard/internal/ui/prompt"
	"github.com/riordanpawley/storyboard/internal/ui/styles"
)

var (
	_ navigator.Prompts = (*prompt.Terminal)(nil)
	_ app.Runner        = (*prompt.Terminal)(nil)
)

// Version is set at build time
var Version = "dev"

// ErrProblemsFound is returned by CheckCommand when the dataset is inconsistent
var ErrProblemsFound = errors.New("integrity problems found")

// Dependencies holds all the services needed for CLI commands
type Dependencies struct {
	Config *config.Config
	Store  store.Store
	DB     *database.Service
	Logger *slog.Logger

	closeStore func() error
}

// NewDependencies opens the configured store. A memory store starts out
// initialized since nothing else could ever write it.
func NewDependencies(cfg *config.Config, logger *slog.Logger) (*Dependencies, error) {
	if logger == nil {
		logger = slog.Default()
	}

	s, closeStore, err := store.Open(store.Options{
		Backend:     cfg.Store.Backend,
		Path:        cfg.Store.Path,
		Codec:       cfg.Store.Codec,
		Compression: cfg.Store.Compression,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}

	if cfg.Store.Backend == store.BackendMemory {
		if err := store.Init(s); err != nil {
			closeStore()
			return nil, fmt.Errorf("failed to initialize memory store: %w", err)
		}
	}

	logger.Debug("store opened",
		"backend", cfg.Store.Backend,
		"path", cfg.Store.Path,
		"codec", cfg.Store.Codec,
		"compression", cfg.Store.Compression)

	return &Dependencies{
		Config:     cfg,
		Store:      s,
		DB:         database.NewService(s, logger),
		Logger:     logger,
		closeStore: closeStore,
	}, nil
}

// Close releases the store
func (d *Dependencies) Close() error {
	if d.closeStore == nil {
		return nil
	}
	return d.closeStore()
}

// InitCommand writes an empty dataset. An existing dataset, readable or not,
// is only replaced when force is set.
func InitCommand(deps *Dependencies, force bool, out io.Writer) error {
	_, err := deps.Store.Read()
	exists := err == nil || errors.Is(err, domain.ErrFormat)
	if exists && !force {
		return fmt.Errorf("store already exists at %s (use --force to overwrite)", deps.Config.Store.Path)
	}

	if err := store.Init(deps.Store); err != nil {
		return fmt.Errorf("failed to initialize store: %w", err)
	}
	deps.Logger.Info("store initialized", "path", deps.Config.Store.Path, "overwritten", exists)

	fmt.Fprintf(out, "✓ Initialized empty %s store at %s\n", deps.Config.Store.Backend, deps.Config.Store.Path)
	return nil
}

// CheckCommand prints a summary of the dataset and every integrity problem
func CheckCommand(deps *Dependencies, out io.Writer) error {
	state, err := deps.DB.ReadDB()
	if err != nil {
		return fmt.Errorf("failed to read store: %w", err)
	}

	fmt.Fprintf(out, "Epics: %d  Stories: %d  Last ID: %d\n", len(state.Epics), len(state.Stories), state.LastItemID)

	problems := state.Verify()
	if len(problems) == 0 {
		fmt.Fprintln(out, "✓ No problems found")
		return nil
	}

	fmt.Fprintf(out, "\nProblems (%d):\n\n", len(problems))

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "KIND\tID\tPROBLEM")
	fmt.Fprintln(w, "----\t--\t-------")
	for _, p := range problems {
		fmt.Fprintf(w, "%s\t%d\t%s\n", p.Kind, p.ID, p.Message)
	}
	w.Flush()

	deps.Logger.Warn("integrity check failed", "problems", len(problems))
	return fmt.Errorf("%w: %d", ErrProblemsFound, len(problems))
}

// VersionCommand prints the build and config schema versions
func VersionCommand(out io.Writer) {
	fmt.Fprintf(out, "storyboard %s (config schema v%d)\n", Version, config.CurrentVersion)
}

// RunCommand starts the interactive tracker on the given terminal streams
func RunCommand(deps *Dependencies, in io.Reader, out io.Writer) error {
	if _, err := deps.Store.Read(); err != nil {
		if errors.Is(err, domain.ErrIO) {
			return fmt.Errorf("cannot open store at %s: %w (run 'storyboard init' first)", deps.Config.Store.Path, err)
		}
		return fmt.Errorf("cannot open store at %s: %w", deps.Config.Store.Path, err)
	}

	ui := deps.Config.UI
	s := styles.New()
	terminal := prompt.NewTerminal(
		prompt.WithIO(in, out),
		prompt.WithAltScreen(ui.AltScreen),
		prompt.WithStyles(s),
	)

	pageDeps := pages.Deps{
		DB: deps.DB,
		Layout: pages.Layout{
			ID:          ui.IDWidth,
			Name:        ui.NameWidth,
			Description: ui.DescriptionWidth,
			Status:      ui.StatusWidth,
		},
		Styles: s,
	}
	nav := navigator.New(pageDeps, terminal, deps.Logger)

	deps.Logger.Info("session started", "store", deps.Config.Store.Path)
	if err := app.New(nav, terminal, s, deps.Logger).Run(); err != nil {
		return err
	}
	deps.Logger.Info("session ended")
	return nil
}
