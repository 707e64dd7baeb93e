package viz

import (
	"fmt"
	"os"
	"strconv"

	"github.com/awalterschulze/gographviz"

	"github.com/codialab/trim-graph/internal/gfa"
)

// WriteDOT renders the retained graph for Graphviz: segments become
// nodes, links solid edges, jumps dashed ones. The graph is
// undirected since links and jumps are bidirected connections.
func WriteDOT(path string, records []gfa.Record) error {
	g, err := buildGraph(records)
	if err != nil {
		return fmt.Errorf("failed to build dot graph: %w", err)
	}
	if err := os.WriteFile(path, []byte(g.String()), 0644); err != nil {
		return fmt.Errorf("failed to write dot file: %w", err)
	}
	return nil
}

func buildGraph(records []gfa.Record) (*gographviz.Graph, error) {
	g := gographviz.NewGraph()
	if err := g.SetName("G"); err != nil {
		return nil, err
	}
	if err := g.SetDir(false); err != nil {
		return nil, err
	}

	for _, rec := range records {
		switch rec.Kind {
		case gfa.KindSegment:
			if err := g.AddNode("G", nodeName(rec.SegmentID), nil); err != nil {
				return nil, err
			}
		case gfa.KindLink:
			if err := addEdge(g, rec.Edge, nil); err != nil {
				return nil, err
			}
		case gfa.KindJump:
			if err := addEdge(g, rec.Edge, map[string]string{"style": "dashed"}); err != nil {
				return nil, err
			}
		}
	}
	return g, nil
}

func addEdge(g *gographviz.Graph, e gfa.Edge, attrs map[string]string) error {
	return g.AddEdge(nodeName(e.From.ID), nodeName(e.To.ID), false, attrs)
}

// Segment ids may contain characters that are not legal bare dot
// identifiers, so every name is emitted in quoted form.
func nodeName(id string) string {
	return strconv.Quote(id)
}
