package cli

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/codialab/trim-graph/internal/gfa"
)

// KindCount pairs how many records of one kind were read with how
// many survived the trim.
type KindCount struct {
	Total int
	Kept  int
}

func (c KindCount) String() string {
	return fmt.Sprintf("%d/%d", c.Kept, c.Total)
}

// TrimSummary reports, per record kind, how much of the graph
// survived.
type TrimSummary struct {
	Total    int
	Kept     int
	Segments KindCount
	Links    KindCount
	Jumps    KindCount
	Paths    KindCount
	Walks    KindCount
	Duration time.Duration
}

func NewTrimSummary(records, kept []gfa.Record, duration time.Duration) TrimSummary {
	s := TrimSummary{
		Total:    len(records),
		Kept:     len(kept),
		Segments: kindCount(records, kept, gfa.KindSegment),
		Links:    kindCount(records, kept, gfa.KindLink),
		Jumps:    kindCount(records, kept, gfa.KindJump),
		Paths:    kindCount(records, kept, gfa.KindPath),
		Walks:    kindCount(records, kept, gfa.KindWalk),
		Duration: duration,
	}
	return s
}

// LogTrimSummary goes to the log rather than stdout: stdout carries
// the trimmed graph itself.
func LogTrimSummary(s TrimSummary) {
	slog.Info("trim finished",
		"kept", s.Kept,
		"total", s.Total,
		"segments", s.Segments,
		"links", s.Links,
		"jumps", s.Jumps,
		"paths", s.Paths,
		"walks", s.Walks,
		"duration", s.Duration.Round(time.Millisecond),
	)
}

func kindCount(records, kept []gfa.Record, kind gfa.RecordKind) KindCount {
	return KindCount{
		Total: countKind(records, kind),
		Kept:  countKind(kept, kind),
	}
}

func countKind(records []gfa.Record, kind gfa.RecordKind) int {
	n := 0
	for _, rec := range records {
		if rec.Kind == kind {
			n++
		}
	}
	return n
}
