package trim

import "github.com/codialab/trim-graph/internal/gfa"

// Options bypasses coverage filtering per record kind. An ignored
// kind is emitted unconditionally; coverage is still computed.
type Options struct {
	IgnoreSegments bool
	IgnoreLinks    bool
	IgnoreJumps    bool
}

// Apply runs the second pass: each record survives or is dropped
// whole, in input order. Retained lines are never rewritten.
func Apply(records []gfa.Record, cov Coverage, keep KeepList, opts Options) []gfa.Record {
	kept := make([]gfa.Record, 0, len(records))
	for _, rec := range records {
		if retain(rec, cov, keep, opts) {
			kept = append(kept, rec)
		}
	}
	return kept
}

func retain(rec gfa.Record, cov Coverage, keep KeepList, opts Options) bool {
	switch rec.Kind {
	case gfa.KindSegment:
		return opts.IgnoreSegments || cov.Segments[rec.SegmentID]
	case gfa.KindLink:
		return opts.IgnoreLinks || cov.Links[rec.Edge.Canonical()]
	case gfa.KindJump:
		return opts.IgnoreJumps || cov.Jumps[rec.Edge.Canonical()]
	case gfa.KindPath:
		return keep.Retains(rec.Name)
	default:
		// headers, walks and unrecognized records always pass through
		return true
	}
}
