package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/almanac"
	"github.com/aretw0/almanac/internal/config"
)

var (
	verbose   bool
	vaultFlag string

	cfg *config.Config
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "almanac",
	Short: "A local-first calendar and notes planner backed by plain Markdown files",
	Long: `Almanac keeps your calendar events and notes as Markdown files with
YAML frontmatter and turns them into timeline layouts and agenda listings.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, opts))
		slog.SetDefault(logger)

		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&vaultFlag, "vault", "", "Vault directory (default: config, then nearest vault root, then CWD)")
}

// vaultPath resolves the vault directory: --vault flag, then config,
// then the nearest vault root above the working directory, then the
// working directory itself.
func vaultPath() string {
	if vaultFlag != "" {
		return vaultFlag
	}
	if cfg != nil && cfg.Vault != "" && cfg.Vault != "." {
		return cfg.Vault
	}

	cwd, err := os.Getwd()
	if err != nil {
		fatal("Failed to get CWD", err)
	}
	if root, err := almanac.FindVaultRoot(cwd); err == nil {
		return root
	}
	return cwd
}

// openPlanner opens the resolved vault for an existing-vault command.
func openPlanner() *almanac.Planner {
	opts := []almanac.Option{
		almanac.WithMustExist(true),
		almanac.WithAutoInit(true),
		almanac.WithLogger(slog.Default()),
	}
	if cfg != nil && !cfg.SeedEnabled() {
		opts = append(opts, almanac.WithSeed(false))
	}

	planner, err := almanac.New(vaultPath(), opts...)
	if err != nil {
		fatal("Failed to open vault", err)
	}
	return planner
}
