package ai

import "context"

// Transcriber turns a PDF that has no extractable text layer (a scan, an
// exported image) into plain text, one visual line per line.
type Transcriber interface {
	Transcribe(ctx context.Context, pdf []byte) (string, error)
}

// Noop never transcribes anything.
type Noop struct{}

func (Noop) Transcribe(ctx context.Context, pdf []byte) (string, error) { return "", nil }
