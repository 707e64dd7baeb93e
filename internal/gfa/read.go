package gfa

import (
	"bufio"
	"fmt"
	"io"
)

// Segment lines carry whole contig sequences; the scanner's default
// 64 KiB token limit is far too small for those.
const maxLineBytes = 1 << 30

// ReadAll classifies every line of r in order. Parse failures abort
// immediately, carrying the 1-based line number of the offending line.
func ReadAll(r io.Reader) ([]Record, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), maxLineBytes)

	var records []Record
	num := 0
	for scanner.Scan() {
		num++
		rec, err := ParseLine(scanner.Text())
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", num, err)
		}
		rec.Num = num
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	return records, nil
}
