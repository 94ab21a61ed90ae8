// Package cmd implements the saveslot CLI commands: inspecting a save
// directory's slot index and reconciling it against the save files
// actually present.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/agentstation/saveslot"
	"github.com/agentstation/saveslot/pkg/codec"
	"github.com/agentstation/saveslot/pkg/errors"
	"github.com/agentstation/saveslot/pkg/logging"
	"github.com/agentstation/saveslot/pkg/storage/files"
)

var (
	configFile string
	saveDir    string
	format     string
	verbose    bool
	quiet      bool
	logLevel   string

	// Version information set by main.
	Version = "dev"
	// Commit is the git commit hash.
	Commit = "unknown"
	// Date is the build date.
	Date = "unknown"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "saveslot",
	Short: "Save-slot index inspection and reconciliation",
	Long: `Saveslot manages the metadata index of a save directory: the cached
display summaries (party sprites, portraits, playtime) a game shows in
its load menu.

Save files can appear or disappear behind the index's back - copied in
from another machine, deleted by hand, restored from backup. The
reconcile command converges the index back to reality, rebuilding
summaries for untracked files and dropping entries for missing ones.`,
	PersistentPreRun: setupLogging,
}

// Execute adds all child commands to the root command and sets flags
// appropriately.
func Execute(version, commit, date string) {
	Version = version
	Commit = commit
	Date = date
	rootCmd.Version = version

	ctx, cancel := signal.NotifyContext(context.Background(),
		syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default is $HOME/.saveslot.yaml)")
	rootCmd.PersistentFlags().StringVarP(&saveDir, "dir", "d", ".", "save directory")
	rootCmd.PersistentFlags().StringVar(&format, "format", "json", "index and save encoding (json or yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "warnings and errors only")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "explicit log level (trace, debug, info, warn, error)")

	if err := viper.BindPFlag("dir", rootCmd.PersistentFlags().Lookup("dir")); err != nil {
		panic(fmt.Sprintf("Failed to bind dir flag: %v", err))
	}
	if err := viper.BindPFlag("format", rootCmd.PersistentFlags().Lookup("format")); err != nil {
		panic(fmt.Sprintf("Failed to bind format flag: %v", err))
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".saveslot")
	}

	// Load .env files first (before Viper env binding)
	for _, envFile := range []string{".env", ".env.local"} {
		_ = godotenv.Load(envFile)
	}

	viper.SetEnvPrefix("SAVESLOT")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	// Config file is optional
	_ = viper.ReadInConfig()
}

// setupLogging configures the default logger from flags, with
// --log-level taking precedence over the -v/-q shortcuts.
func setupLogging(_ *cobra.Command, _ []string) {
	level := logLevel
	if level == "" {
		switch {
		case verbose && quiet:
			fmt.Fprintln(os.Stderr, "Warning: both --verbose and --quiet specified, using --quiet")
			level = "warn"
		case verbose:
			level = "debug"
		case quiet:
			level = "warn"
		default:
			level = "info"
		}
	}

	logging.Configure(&logging.Config{
		Level:   level,
		Format:  "auto",
		Output:  "stderr",
		NoColor: os.Getenv("NO_COLOR") != "",
	})
}

// buildClient wires a client over the configured save directory.
func buildClient() (saveslot.Client, error) {
	store, err := files.New(viper.GetString("dir"))
	if err != nil {
		return nil, err
	}

	opts := []saveslot.Option{
		saveslot.WithStorage(store),
		saveslot.WithMetadata(metadataFromConfig()),
	}

	switch strings.ToLower(viper.GetString("format")) {
	case "json", "":
		// Default codecs
	case "yaml":
		yamlCodec := codec.NewYAML()
		opts = append(opts, saveslot.WithIndexCodec(yamlCodec), saveslot.WithSaveCodec(yamlCodec))
	default:
		return nil, errors.NewConfigError("cli", fmt.Sprintf("unknown format %q", viper.GetString("format")), nil)
	}

	return saveslot.New(opts...)
}

// metadataFromConfig reads game metadata from the config file or
// SAVESLOT_* environment variables, falling back to library defaults.
func metadataFromConfig() saveslot.StaticMetadata {
	return saveslot.StaticMetadata{
		GameID:       viper.GetString("game_id"),
		Title:        viper.GetString("title"),
		MaxSlots:     viper.GetInt("max_slots"),
		MaxPartySize: viper.GetInt("max_party_size"),
	}
}
