package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/thywilljoshua/skillscan/internal/ai"
	"github.com/thywilljoshua/skillscan/internal/config"
	"github.com/thywilljoshua/skillscan/internal/render"
	"github.com/thywilljoshua/skillscan/internal/resume"
	"github.com/thywilljoshua/skillscan/internal/skills"
)

func extractCmd(v *viper.Viper, load func() (config.Config, error)) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extract <file|->...",
		Short: "Extract skills from PDF or text résumés (- reads stdin)",
		Args:  cobra.MinimumNArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return bindFlags(v, cmd, map[string]string{
				"format":          "format",
				"ai_provider":     "ai",
				"gemini_model":    "gemini-model",
				"vocabulary_file": "vocabulary",
				"concurrency":     "concurrency",
			})
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}
			format, err := render.ParseFormat(cfg.Format)
			if err != nil {
				return err
			}
			logger := newLogger(cmd.ErrOrStderr(), cfg.Level())

			extractor, err := buildExtractor(cfg)
			if err != nil {
				return err
			}

			rcfg := resume.Config{
				Extractor:   resume.NewLoggingExtractor(extractor, logger),
				Transcriber: buildTranscriber(cmd.Context(), cfg, logger),
				Stdin:       cmd.InOrStdin(),
				Logger:      logger,
				Concurrency: cfg.Concurrency,
			}
			reports, err := resume.RunAll(cmd.Context(), args, rcfg)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if format == render.JSON && len(reports) > 1 {
				return writeJSONReports(out, reports)
			}
			for i, rep := range reports {
				if i > 0 && format != render.JSON {
					fmt.Fprintln(out)
				}
				name := ""
				if len(reports) > 1 || format == render.Markdown {
					name = rep.Source
				}
				if err := render.Render(out, format, name, rep.Result); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().StringP("format", "f", "text", "output format: text|markdown|json")
	cmd.Flags().String("ai", "off", "transcribe PDFs without a text layer: off|gemini")
	cmd.Flags().String("gemini-model", ai.DefaultModel, "Gemini model used for transcription")
	cmd.Flags().String("vocabulary", "", "YAML or JSON file overriding the built-in vocabulary")
	cmd.Flags().Int("concurrency", 4, "files scanned in parallel")
	return cmd
}

func buildExtractor(cfg config.Config) (*skills.Extractor, error) {
	vocab := skills.DefaultVocabulary()
	if cfg.VocabularyFile != "" {
		var err error
		if vocab, err = skills.LoadVocabulary(cfg.VocabularyFile); err != nil {
			return nil, err
		}
	}
	return skills.NewExtractor(vocab)
}

// buildTranscriber returns nil unless Gemini is selected and can be set up.
func buildTranscriber(ctx context.Context, cfg config.Config, logger *slog.Logger) ai.Transcriber {
	if !strings.EqualFold(cfg.AIProvider, "gemini") {
		return nil
	}
	key := cfg.GeminiAPIKey
	if key == "" {
		key = os.Getenv("GEMINI_API_KEY")
	}
	if key == "" {
		key = os.Getenv("GOOGLE_API_KEY")
	}
	g, err := ai.NewGemini(ctx, key, cfg.GeminiModel)
	if err != nil {
		logger.Warn("gemini transcription disabled", "err", err)
		return nil
	}
	logger.Debug("gemini transcription enabled", "model", g.Model())
	return g
}

type jsonReport struct {
	Source   string              `json:"source"`
	Sections map[string][]string `json:"sections"`
	Found    bool                `json:"found"`
}

func writeJSONReports(w io.Writer, reports []resume.Report) error {
	out := make([]jsonReport, len(reports))
	for i, r := range reports {
		out[i] = jsonReport{Source: r.Source, Sections: r.Result.Sections, Found: r.Result.Found}
	}
	b, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}
