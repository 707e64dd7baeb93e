package viz

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/codialab/trim-graph/internal/gfa"
)

func mustRecords(t *testing.T, input string) []gfa.Record {
	t.Helper()
	records, err := gfa.ReadAll(strings.NewReader(input))
	if err != nil {
		t.Fatalf("failed to parse test input: %v", err)
	}
	return records
}

func TestWriteDOT(t *testing.T) {
	records := mustRecords(t,
		"S\ts1\tAC\n"+
			"S\ts2\tGT\n"+
			"S\ts3\tTT\n"+
			"L\ts1\t+\ts2\t+\t0M\n"+
			"J\ts2\t+\ts3\t+\t*\n")

	path := filepath.Join(t.TempDir(), "graph.dot")
	if err := WriteDOT(path, records); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read dot output: %v", err)
	}
	dot := string(data)

	if !strings.HasPrefix(dot, "graph G {") {
		t.Fatalf("expected an undirected graph named G, got %q", firstLine(dot))
	}
	for _, fragment := range []string{`"s1"`, `"s2"`, `"s3"`, `"s1"--"s2"`, `"s2"--"s3"`, "style=dashed"} {
		if !strings.Contains(dot, fragment) {
			t.Fatalf("expected dot output to contain %q, got:\n%s", fragment, dot)
		}
	}
	if strings.Contains(dot, "->") {
		t.Fatalf("expected undirected edges only, got:\n%s", dot)
	}
}

func TestWriteDOTSkipsNonGraphRecords(t *testing.T) {
	records := mustRecords(t,
		"H\tVN:Z:1.2\n"+
			"S\ts1\tAC\n"+
			"P\tp1\ts1+\t*\n")

	path := filepath.Join(t.TempDir(), "graph.dot")
	if err := WriteDOT(path, records); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read dot output: %v", err)
	}
	if strings.Contains(string(data), "p1") || strings.Contains(string(data), "VN:Z") {
		t.Fatalf("expected only segments and edges in dot output, got:\n%s", data)
	}
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
