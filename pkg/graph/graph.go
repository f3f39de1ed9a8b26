package graph

import (
	"fmt"
	"sort"

	"github.com/chazu/trimesh/pkg/pointcloud"
)

// PointGraph is an undirected graph over a point cloud. Edges are stored
// canonicalised (smaller index first), deduplicated and sorted, as a flat
// row-major (E,2) table. Like the cloud it wraps, a PointGraph is never
// mutated after construction.
type PointGraph struct {
	*pointcloud.PointCloud
	edges []int
	adj   [][]int
}

// New builds a PointGraph over the points of pc from a flat (E,2) edge
// list. Duplicate edges and reversed duplicates collapse to one undirected
// edge; self-loops are dropped. An edge referencing a vertex outside
// [0, PointCount) is an error. When copyData is false the graph shares the
// cloud's coordinate storage; its landmark slot is independent either way.
func New(pc *pointcloud.PointCloud, edges []int, copyData bool) (*PointGraph, error) {
	if pc == nil {
		return nil, fmt.Errorf("graph: nil point cloud")
	}
	if len(edges)%2 != 0 {
		return nil, &pointcloud.ShapeMismatchError{
			What: "edge list length",
			Got:  len(edges),
			Want: (len(edges) / 2) * 2,
		}
	}

	cloud, err := pointcloud.New(pc.Data(), pc.Dims(), copyData)
	if err != nil {
		return nil, err
	}
	n := cloud.PointCount()

	seen := make(map[[2]int]struct{}, len(edges)/2)
	for i := 0; i+1 < len(edges); i += 2 {
		a, b := edges[i], edges[i+1]
		if a < 0 || a >= n || b < 0 || b >= n {
			return nil, fmt.Errorf("graph: edge (%d,%d) references a vertex outside %d points", a, b, n)
		}
		if a == b {
			continue
		}
		if a > b {
			a, b = b, a
		}
		seen[[2]int{a, b}] = struct{}{}
	}

	canonical := make([][2]int, 0, len(seen))
	for e := range seen {
		canonical = append(canonical, e)
	}
	sort.Slice(canonical, func(i, j int) bool {
		if canonical[i][0] != canonical[j][0] {
			return canonical[i][0] < canonical[j][0]
		}
		return canonical[i][1] < canonical[j][1]
	})

	g := &PointGraph{
		PointCloud: cloud,
		edges:      make([]int, 0, 2*len(canonical)),
		adj:        make([][]int, n),
	}
	for _, e := range canonical {
		g.edges = append(g.edges, e[0], e[1])
		g.adj[e[0]] = append(g.adj[e[0]], e[1])
		g.adj[e[1]] = append(g.adj[e[1]], e[0])
	}
	for _, nb := range g.adj {
		sort.Ints(nb)
	}
	return g, nil
}

// EdgeCount returns the number of undirected edges.
func (g *PointGraph) EdgeCount() int {
	return len(g.edges) / 2
}

// Edges returns the backing flat (E,2) canonical edge table. Callers must
// treat it as read-only.
func (g *PointGraph) Edges() []int {
	return g.edges
}

// Edge returns the endpoints of edge i, smaller index first.
func (g *PointGraph) Edge(i int) (a, b int) {
	return g.edges[2*i], g.edges[2*i+1]
}

// Neighbors returns the sorted neighbour indices of vertex v. The returned
// slice is backing storage; callers must treat it as read-only.
func (g *PointGraph) Neighbors(v int) []int {
	return g.adj[v]
}

// Degree returns the number of neighbours of vertex v.
func (g *PointGraph) Degree(v int) int {
	return len(g.adj[v])
}

// HasEdge reports whether vertices a and b are directly connected.
func (g *PointGraph) HasEdge(a, b int) bool {
	if a < 0 || a >= len(g.adj) {
		return false
	}
	for _, nb := range g.adj[a] {
		if nb == b {
			return true
		}
	}
	return false
}

func (g *PointGraph) String() string {
	return fmt.Sprintf("PointGraph: %d points (%dD), %d edges",
		g.PointCount(), g.Dims(), g.EdgeCount())
}
