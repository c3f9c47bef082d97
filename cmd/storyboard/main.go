// Package main provides the entry point for storyboard, a terminal tracker
// for epics and their stories.
//
// Usage:
//
//	storyboard [flags]          start the interactive tracker
//	storyboard init [--force]   create an empty store
//	storyboard check            report integrity problems
//	storyboard version          print the version
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/riordanpawley/storyboard/internal/cli"
	"github.com/riordanpawley/storyboard/internal/config"
	"github.com/riordanpawley/storyboard/internal/store"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	configPath  string
	dbPath      string
	backend     string
	codec       string
	compression string
	memory      bool
	logLevel    string
	force       bool
)

var rootCmd = &cobra.Command{
	Use:   "storyboard",
	Short: "Track epics and stories in the terminal",
	Long: `storyboard keeps a small set of epics, each owning an ordered list of
stories, in a single local store and lets you browse and edit them from an
interactive terminal UI.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			return errors.New("storyboard needs an interactive terminal on stdin")
		}
		return withDependencies(cmd, func(deps *cli.Dependencies) error {
			return cli.RunCommand(deps, os.Stdin, os.Stdout)
		})
	},
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create an empty store",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDependencies(cmd, func(deps *cli.Dependencies) error {
			return cli.InitCommand(deps, force, cmd.OutOrStdout())
		})
	},
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Report referential integrity problems in the store",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDependencies(cmd, func(deps *cli.Dependencies) error {
			return cli.CheckCommand(deps, cmd.OutOrStdout())
		})
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cli.VersionCommand(cmd.OutOrStdout())
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "settings file (default ./"+config.FileName+")")
	flags.StringVar(&dbPath, "db", "", "store location")
	flags.StringVar(&backend, "backend", "", "store backend: file, sqlite")
	flags.StringVar(&codec, "codec", "", "store encoding: json, yaml, cbor")
	flags.StringVar(&compression, "compression", "", "store compression: none, zstd, lz4")
	flags.BoolVar(&memory, "memory", false, "keep the store in memory for this run only")
	flags.StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")

	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing store")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads the settings file and applies flags that were set
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if configPath != "" {
		cfg, err = config.LoadFile(configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("db") {
		cfg.Store.Path = dbPath
	}
	if flags.Changed("backend") {
		cfg.Store.Backend = backend
	}
	if flags.Changed("codec") {
		cfg.Store.Codec = codec
	}
	if flags.Changed("compression") {
		cfg.Store.Compression = compression
	}
	if memory {
		cfg.Store.Backend = store.BackendMemory
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = logLevel
	}
	return cfg, cfg.Validate()
}

func withDependencies(cmd *cobra.Command, run func(*cli.Dependencies) error) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, closeLog, err := cli.NewLogger(cfg.Log)
	if err != nil {
		return err
	}
	defer closeLog()

	deps, err := cli.NewDependencies(cfg, logger.With("command", cmd.Name()))
	if err != nil {
		return err
	}
	defer deps.Close()

	return run(deps)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
