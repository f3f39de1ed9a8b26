// Package graph defines the undirected point-graph view of a point set:
// the same points as a cloud or mesh, connected by a deduplicated
// undirected edge set.
package graph
