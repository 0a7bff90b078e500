package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/thywilljoshua/skillscan/internal/config"
)

func vocabCmd(v *viper.Viper, load func() (config.Config, error)) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vocab",
		Short: "Print the effective vocabulary as YAML",
		Args:  cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return bindFlags(v, cmd, map[string]string{"vocabulary_file": "vocabulary"})
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}
			e, err := buildExtractor(cfg)
			if err != nil {
				return err
			}
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(e.Vocabulary()); err != nil {
				return err
			}
			return enc.Close()
		},
	}
	cmd.Flags().String("vocabulary", "", "YAML or JSON file overriding the built-in vocabulary")
	return cmd
}
