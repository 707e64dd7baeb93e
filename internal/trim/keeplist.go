package trim

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/codialab/trim-graph/internal/gfa"
)

// KeepList is the set of path names that survive the trim. A nil
// KeepList means no list was supplied and every path is kept; an
// empty non-nil list keeps none.
type KeepList map[string]bool

// Retains reports whether a path with the given name is kept.
func (k KeepList) Retains(name string) bool {
	return k == nil || k[name]
}

// Unmatched returns the keep-list entries naming no path in the
// input, sorted for stable reporting.
func (k KeepList) Unmatched(pathNames []string) []string {
	present := make(map[string]bool, len(pathNames))
	for _, name := range pathNames {
		present[name] = true
	}
	out := make([]string, 0)
	for name := range k {
		if !present[name] {
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}

// LoadKeepList reads a keep-list file: one path name per line, taken
// verbatim, blank lines skipped.
func LoadKeepList(path string) (KeepList, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open keep-list: %w", err)
	}
	defer f.Close()

	keep, err := ParseKeepList(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read keep-list %s: %w", path, err)
	}
	return keep, nil
}

// ParseKeepList parses keep-list content from r. The result is
// non-nil even when no names are present: an empty list is valid and
// means "keep no paths".
func ParseKeepList(r io.Reader) (KeepList, error) {
	keep := make(KeepList)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		name := scanner.Text()
		if name == "" {
			continue
		}
		keep[name] = true
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return keep, nil
}

// PathNames returns the name of every path record, in input order,
// duplicates included.
func PathNames(records []gfa.Record) []string {
	names := make([]string, 0)
	for _, rec := range records {
		if rec.Kind == gfa.KindPath {
			names = append(names, rec.Name)
		}
	}
	return names
}
