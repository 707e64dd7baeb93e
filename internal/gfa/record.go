package gfa

// RecordKind represents the type of a GFA record line
type RecordKind int

const (
	KindOther RecordKind = iota
	KindHeader
	KindSegment
	KindLink
	KindJump
	KindPath
	KindWalk
)

func (k RecordKind) String() string {
	switch k {
	case KindHeader:
		return "header"
	case KindSegment:
		return "segment"
	case KindLink:
		return "link"
	case KindJump:
		return "jump"
	case KindPath:
		return "path"
	case KindWalk:
		return "walk"
	default:
		return "other"
	}
}

// Orientation is the strand a segment is read on
type Orientation uint8

const (
	Forward Orientation = iota
	Reverse
)

func (o Orientation) String() string {
	if o == Reverse {
		return "-"
	}
	return "+"
}

// Flip returns the opposite orientation.
func (o Orientation) Flip() Orientation {
	if o == Reverse {
		return Forward
	}
	return Reverse
}

// OrientedSegment is a reference to a segment on a specific strand,
// as it appears in link, jump, path and walk records.
type OrientedSegment struct {
	ID     string
	Orient Orientation
}

// Flip returns the same segment read on the opposite strand.
func (s OrientedSegment) Flip() OrientedSegment {
	return OrientedSegment{ID: s.ID, Orient: s.Orient.Flip()}
}

func (s OrientedSegment) String() string {
	return s.ID + s.Orient.String()
}

// Record is one classified input line. Line holds the verbatim text
// (without trailing newline) and Num the 1-based line number; the
// remaining fields are populated according to Kind.
type Record struct {
	Kind RecordKind
	Line string
	Num  int

	// SegmentID is set for segment records.
	SegmentID string
	// Edge is set for link and jump records.
	Edge Edge
	// Name is the path name, or the sample identifier for walks.
	Name string
	// Steps is the ordered traversal of path and walk records.
	Steps []OrientedSegment
}
