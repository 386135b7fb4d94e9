package tsp

import "github.com/miladghaznavi/exacttsp/internal/ioformat"

// FromEdgeList builds a non-geometric Graph from a parsed edge-list file.
func FromEdgeList(g ioformat.EdgeListGraph) (*Graph, error) {
	graph := NewGraph(false)
	for i := 0; i < g.NodeCount; i++ {
		graph.AddNode()
	}
	for i := range g.Src {
		if _, err := graph.AddEdge(Identifier(g.Src[i]), Identifier(g.Dst[i]), g.Weight[i]); err != nil {
			return nil, err
		}
	}
	return graph, nil
}

// FromGeo builds a complete geometric Graph from parsed coordinates.
func FromGeo(g ioformat.GeoGraph) (*Graph, error) {
	return NewGeoGraph(g.X, g.Y)
}
