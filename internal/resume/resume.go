// Package resume reads résumé files and runs skills extraction over them.
package resume

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"

	"github.com/thywilljoshua/skillscan/internal/pdftext"
	"github.com/thywilljoshua/skillscan/internal/skills"
)

// StdinSource names standard input as a source.
const StdinSource = "-"

var (
	ErrUnsupportedSource = errors.New("unsupported source type")
	ErrStdinRepeated     = errors.New("standard input given more than once")
)

// DetectKind picks a reader from the source name.
func DetectKind(source string) (Kind, error) {
	if source == StdinSource {
		return KindStdin, nil
	}
	switch strings.ToLower(filepath.Ext(source)) {
	case ".pdf":
		return KindPDF, nil
	case "", ".txt", ".text", ".md":
		return KindText, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedSource, source)
	}
}

// Run reads source, extracts its text and scans it for skills.
func Run(ctx context.Context, source string, cfg Config) (Report, error) {
	cfg = cfg.withDefaults()
	begin := time.Now()

	if err := ctx.Err(); err != nil {
		return Report{}, err
	}
	kind, err := DetectKind(source)
	if err != nil {
		return Report{}, err
	}

	rep := Report{Source: source, Kind: kind}
	var text string
	switch kind {
	case KindStdin:
		b, err := io.ReadAll(cfg.Stdin)
		if err != nil {
			return Report{}, fmt.Errorf("read stdin: %w", err)
		}
		text = string(b)
	case KindText:
		b, err := os.ReadFile(source)
		if err != nil {
			return Report{}, fmt.Errorf("read %s: %w", source, err)
		}
		text = string(b)
	case KindPDF:
		text, err = readPDF(ctx, source, cfg, &rep)
		if err != nil {
			return Report{}, err
		}
	}

	rep.Chars = utf8.RuneCountInString(text)
	rep.Result = cfg.Extractor.Extract(text)

	cfg.Logger.Info("scanned resume",
		"source", source,
		"kind", kind,
		"pages", rep.Pages,
		"chars", rep.Chars,
		"transcribed", rep.Transcribed,
		"found", rep.Result.Found,
		"sections", len(rep.Result.Sections),
		"skills", rep.Result.Count(),
		"duration", time.Since(begin),
	)
	return rep, nil
}

func readPDF(ctx context.Context, path string, cfg Config, rep *Report) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	doc, err := cfg.ReadPDF(b)
	if err != nil {
		return "", fmt.Errorf("%s: %w", path, err)
	}
	rep.Pages = doc.Pages
	if cfg.Transcriber == nil || utf8.RuneCountInString(strings.TrimSpace(doc.Text)) >= skills.MinTextLen {
		return doc.Text, nil
	}

	cfg.Logger.Info("pdf has no usable text layer, transcribing", "source", path, "chars", len(doc.Text))
	text, err := cfg.Transcriber.Transcribe(ctx, b)
	if err != nil {
		cfg.Logger.Warn("transcription failed, using text layer", "source", path, "err", err)
		return doc.Text, nil
	}
	if strings.TrimSpace(text) == "" {
		return doc.Text, nil
	}
	rep.Transcribed = true
	return text, nil
}

// RunAll scans sources concurrently. Reports come back in input order; the
// first failure cancels the rest. Standard input may be listed at most once.
func RunAll(ctx context.Context, sources []string, cfg Config) ([]Report, error) {
	cfg = cfg.withDefaults()
	stdin := 0
	for _, src := range sources {
		if src == StdinSource {
			stdin++
		}
	}
	if stdin > 1 {
		return nil, fmt.Errorf("%w: %q appears %d times", ErrStdinRepeated, StdinSource, stdin)
	}
	reports := make([]Report, len(sources))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Concurrency)
	for i, src := range sources {
		g.Go(func() error {
			rep, err := Run(gctx, src, cfg)
			if err != nil {
				return err
			}
			reports[i] = rep
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}

func (c Config) withDefaults() Config {
	if c.Extractor == nil {
		c.Extractor = skillsFunc(skills.Extract)
	}
	if c.ReadPDF == nil {
		c.ReadPDF = pdftext.FromBytes
	}
	if c.Stdin == nil {
		c.Stdin = os.Stdin
	}
	if c.Logger == nil {
		c.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if c.Concurrency < 1 {
		c.Concurrency = 4
	}
	return c
}

type skillsFunc func(string) skills.Result

func (f skillsFunc) Extract(raw string) skills.Result { return f(raw) }
