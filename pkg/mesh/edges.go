package mesh

// TriListToEdges converts a flat (M,3) triangle list into a flat (3M,2)
// edge list. For a triangle (a,b,c) the pairs (a,b), (b,c) and (c,a) are
// produced; output is laid out as the block of all (a,b) pairs, then all
// (b,c) pairs, then the wrap-around (c,a) block, each block in triangle
// order. No deduplication or sorting is performed; downstream undirected
// graph construction is expected to deduplicate.
func TriListToEdges(tris []int) []int {
	m := len(tris) / 3
	edges := make([]int, 0, 6*m)
	for i := 0; i < m; i++ {
		edges = append(edges, tris[3*i], tris[3*i+1])
	}
	for i := 0; i < m; i++ {
		edges = append(edges, tris[3*i+1], tris[3*i+2])
	}
	for i := 0; i < m; i++ {
		edges = append(edges, tris[3*i+2], tris[3*i])
	}
	return edges
}
