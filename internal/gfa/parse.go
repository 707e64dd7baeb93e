package gfa

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMalformedRecord reports a line that names a recognized record
// type but violates its field contract. One malformed record aborts
// the whole run: dropping it silently could corrupt coverage.
var ErrMalformedRecord = errors.New("malformed record")

// ParseLine classifies one raw GFA line. Classification is by exact
// match on the first tab-separated field; any unrecognized marker
// yields a passthrough record and never fails.
func ParseLine(line string) (Record, error) {
	fields := strings.Split(line, "\t")
	switch fields[0] {
	case "H":
		return Record{Kind: KindHeader, Line: line}, nil
	case "S":
		return parseSegment(line, fields)
	case "L":
		return parseEdgeRecord(line, fields, KindLink)
	case "J":
		return parseEdgeRecord(line, fields, KindJump)
	case "P":
		return parsePath(line, fields)
	case "W":
		return parseWalk(line, fields)
	}
	return Record{Kind: KindOther, Line: line}, nil
}

func parseSegment(line string, fields []string) (Record, error) {
	if len(fields) < 2 || fields[1] == "" {
		return Record{}, fmt.Errorf("%w: segment is missing its id", ErrMalformedRecord)
	}
	return Record{Kind: KindSegment, Line: line, SegmentID: fields[1]}, nil
}

func parseEdgeRecord(line string, fields []string, kind RecordKind) (Record, error) {
	if len(fields) < 5 {
		return Record{}, fmt.Errorf("%w: %s needs from/to ids and orientations", ErrMalformedRecord, kind)
	}
	from, err := orientedRef(fields[1], fields[2], kind)
	if err != nil {
		return Record{}, err
	}
	to, err := orientedRef(fields[3], fields[4], kind)
	if err != nil {
		return Record{}, err
	}
	return Record{Kind: kind, Line: line, Edge: Edge{From: from, To: to}}, nil
}

func orientedRef(id, orient string, kind RecordKind) (OrientedSegment, error) {
	if id == "" {
		return OrientedSegment{}, fmt.Errorf("%w: %s has an empty segment id", ErrMalformedRecord, kind)
	}
	o, ok := parseOrientation(orient)
	if !ok {
		return OrientedSegment{}, fmt.Errorf("%w: %s orientation %q is not + or -", ErrMalformedRecord, kind, orient)
	}
	return OrientedSegment{ID: id, Orient: o}, nil
}

func parseOrientation(s string) (Orientation, bool) {
	switch s {
	case "+":
		return Forward, true
	case "-":
		return Reverse, true
	}
	return Forward, false
}

func parsePath(line string, fields []string) (Record, error) {
	if len(fields) < 3 || fields[1] == "" {
		return Record{}, fmt.Errorf("%w: path needs a name and a traversal", ErrMalformedRecord)
	}
	steps, err := parsePathSteps(fields[2])
	if err != nil {
		return Record{}, err
	}
	return Record{Kind: KindPath, Line: line, Name: fields[1], Steps: steps}, nil
}

// parsePathSteps splits a path traversal into oriented steps. Comma
// and semicolon both separate steps (GFA 1.2 mixes them freely); each
// token is a segment id followed by + or -.
func parsePathSteps(trav string) ([]OrientedSegment, error) {
	tokens := strings.Split(strings.ReplaceAll(trav, ";", ","), ",")
	steps := make([]OrientedSegment, 0, len(tokens))
	for _, token := range tokens {
		token = strings.TrimSpace(token)
		if len(token) < 2 {
			return nil, fmt.Errorf("%w: path step %q is not of the form id+ or id-", ErrMalformedRecord, token)
		}
		o, ok := parseOrientation(token[len(token)-1:])
		if !ok {
			return nil, fmt.Errorf("%w: path step %q is not of the form id+ or id-", ErrMalformedRecord, token)
		}
		steps = append(steps, OrientedSegment{ID: token[:len(token)-1], Orient: o})
	}
	return steps, nil
}

func parseWalk(line string, fields []string) (Record, error) {
	if len(fields) < 7 || fields[1] == "" {
		return Record{}, fmt.Errorf("%w: walk needs a sample name and 7 fields", ErrMalformedRecord)
	}
	steps, ok := parseWalkSteps(fields[6])
	if !ok {
		return Record{}, fmt.Errorf("%w: walk traversal %q is not a sequence of >id/<id steps", ErrMalformedRecord, fields[6])
	}
	return Record{Kind: KindWalk, Line: line, Name: fields[1], Steps: steps}, nil
}

// parseWalkSteps decodes the sign-prefixed walk encoding, e.g.
// ">s1<s2>s3": > is forward, < is reverse.
func parseWalkSteps(trav string) ([]OrientedSegment, bool) {
	if trav == "" {
		return nil, false
	}
	var steps []OrientedSegment
	i := 0
	for i < len(trav) {
		var o Orientation
		switch trav[i] {
		case '>':
			o = Forward
		case '<':
			o = Reverse
		default:
			return nil, false
		}
		j := i + 1
		for j < len(trav) && trav[j] != '>' && trav[j] != '<' {
			j++
		}
		if j == i+1 {
			return nil, false
		}
		steps = append(steps, OrientedSegment{ID: trav[i+1 : j], Orient: o})
		i = j
	}
	return steps, true
}
