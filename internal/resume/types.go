package resume

import (
	"io"
	"log/slog"

	"github.com/thywilljoshua/skillscan/internal/ai"
	"github.com/thywilljoshua/skillscan/internal/pdftext"
	"github.com/thywilljoshua/skillscan/internal/skills"
)

// SkillExtractor turns raw résumé text into skills sections.
type SkillExtractor interface {
	Extract(raw string) skills.Result
}

// Kind is how a source is read.
type Kind string

const (
	KindPDF   Kind = "pdf"
	KindText  Kind = "text"
	KindStdin Kind = "stdin"
)

// Report describes one scanned source.
type Report struct {
	Source      string        `json:"source"`
	Kind        Kind          `json:"kind"`
	Pages       int           `json:"pages,omitempty"`
	Chars       int           `json:"chars"`
	Transcribed bool          `json:"transcribed,omitempty"`
	Result      skills.Result `json:"result"`
}

type Config struct {
	// Extractor defaults to the built-in vocabulary.
	Extractor SkillExtractor
	// Transcriber is asked for text when a PDF has (almost) none. Nil disables it.
	Transcriber ai.Transcriber
	// ReadPDF extracts a PDF's text layer; defaults to pdftext.FromBytes.
	ReadPDF func(b []byte) (pdftext.Document, error)
	// Stdin backs the "-" source.
	Stdin  io.Reader
	Logger *slog.Logger
	// Concurrency bounds RunAll; values below 1 mean 4.
	Concurrency int
}
