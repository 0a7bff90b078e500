package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/thywilljoshua/skillscan/internal/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	v := config.New()
	var configPath string

	root := &cobra.Command{
		Use:           "skillscan",
		Short:         "Find the skills sections of a résumé and list the skills in them",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return bindFlags(v, cmd, map[string]string{"log_level": "log-level"})
		},
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default: ./skillscan.yaml if present)")
	root.PersistentFlags().String("log-level", "info", "log level: debug|info|warn|error")

	load := func() (config.Config, error) { return config.Load(v, configPath) }

	root.AddCommand(extractCmd(v, load))
	root.AddCommand(vocabCmd(v, load))
	return root
}

func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// bindFlags ties config keys to cmd's flags. It runs from PreRunE so that
// subcommands sharing a key do not overwrite each other's binding.
func bindFlags(v *viper.Viper, cmd *cobra.Command, keys map[string]string) error {
	for key, flag := range keys {
		if err := v.BindPFlag(key, cmd.Flags().Lookup(flag)); err != nil {
			return fmt.Errorf("bind --%s: %w", flag, err)
		}
	}
	return nil
}
