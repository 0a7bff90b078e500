package resume

import (
	"log/slog"
	"time"
	"unicode/utf8"

	"github.com/thywilljoshua/skillscan/internal/skills"
)

// Ensure LoggingExtractor implements SkillExtractor.
var _ SkillExtractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps a SkillExtractor with debug logging.
type LoggingExtractor struct {
	next   SkillExtractor
	logger *slog.Logger
}

func NewLoggingExtractor(next SkillExtractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs what it found.
func (e *LoggingExtractor) Extract(raw string) (res skills.Result) {
	defer func(begin time.Time) {
		e.logger.Debug("skills extraction",
			"chars", utf8.RuneCountInString(raw),
			"found", res.Found,
			"sections", res.Order,
			"skills", res.Count(),
			"duration", time.Since(begin),
		)
	}(time.Now())
	return e.next.Extract(raw)
}
