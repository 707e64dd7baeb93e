package trim

import "github.com/codialab/trim-graph/internal/gfa"

// Coverage is what the retained traversals touch: segment ids plus
// canonical link and jump edges. The two edge sets are independent; a
// link is never satisfied by a jump declaration of the same segment
// pair, nor the other way around.
type Coverage struct {
	Segments map[string]bool
	Links    map[gfa.Edge]bool
	Jumps    map[gfa.Edge]bool
}

// CollectCoverage runs the first pass over the parsed records.
//
// Declared link and jump edges are gathered up front so that
// traversal steps can be matched against records that actually exist:
// a traversed adjacency with no declared counterpart covers nothing.
// Paths contribute only when the keep-list retains them; walks always
// contribute. The result does not depend on record order.
func CollectCoverage(records []gfa.Record, keep KeepList) Coverage {
	cov := Coverage{
		Segments: make(map[string]bool),
		Links:    make(map[gfa.Edge]bool),
		Jumps:    make(map[gfa.Edge]bool),
	}

	declaredLinks := make(map[gfa.Edge]bool)
	declaredJumps := make(map[gfa.Edge]bool)
	for _, rec := range records {
		switch rec.Kind {
		case gfa.KindLink:
			declaredLinks[rec.Edge.Canonical()] = true
		case gfa.KindJump:
			declaredJumps[rec.Edge.Canonical()] = true
		}
	}

	for _, rec := range records {
		switch rec.Kind {
		case gfa.KindPath:
			if !keep.Retains(rec.Name) {
				continue
			}
		case gfa.KindWalk:
			// selective keep for walks is unsupported; they always count
		default:
			continue
		}

		for i, step := range rec.Steps {
			cov.Segments[step.ID] = true
			if i == 0 {
				continue
			}
			edge := gfa.Edge{From: rec.Steps[i-1], To: step}.Canonical()
			if declaredLinks[edge] {
				cov.Links[edge] = true
			}
			if declaredJumps[edge] {
				cov.Jumps[edge] = true
			}
		}
	}

	return cov
}
