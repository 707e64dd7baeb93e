package gfa

// Edge is a bidirected connection between two oriented segments.
// Whether an edge is a link or a jump is not part of the value: the
// two categories live in separate sets and never mix.
type Edge struct {
	From OrientedSegment
	To   OrientedSegment
}

// ReverseComplement returns the edge as seen when traversing in the
// opposite direction: endpoints swapped, both orientations flipped.
// It denotes the same physical connection.
func (e Edge) ReverseComplement() Edge {
	return Edge{From: e.To.Flip(), To: e.From.Flip()}
}

// Canonical returns a single representative for the edge and its
// reverse complement, so both forms are matched and deduplicated as
// one. The representative is whichever of the two compares smaller.
func (e Edge) Canonical() Edge {
	rc := e.ReverseComplement()
	if rc.less(e) {
		return rc
	}
	return e
}

func (e Edge) less(other Edge) bool {
	if e.From.ID != other.From.ID {
		return e.From.ID < other.From.ID
	}
	if e.From.Orient != other.From.Orient {
		return e.From.Orient < other.From.Orient
	}
	if e.To.ID != other.To.ID {
		return e.To.ID < other.To.ID
	}
	return e.To.Orient < other.To.Orient
}

func (e Edge) String() string {
	return e.From.String() + "->" + e.To.String()
}
