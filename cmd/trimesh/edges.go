package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/chazu/trimesh/pkg/mesh"
)

var edgesShowList bool

var edgesCmd = &cobra.Command{
	Use:   "edges [record.json]",
	Short: "Analyze the edge structure of a mesh record",
	Long:  "Derive the per-triangle edge list and the deduplicated undirected graph view, with degree statistics.",
	Args:  cobra.ExactArgs(1),
	Run:   runEdges,
}

func init() {
	rootCmd.AddCommand(edgesCmd)
	edgesCmd.Flags().BoolVarP(&edgesShowList, "list", "l", false, "Print the undirected edge list")
}

func runEdges(cmd *cobra.Command, args []string) {
	m := loadMesh(args[0])

	derived := mesh.TriListToEdges(m.TriList())
	pg, err := m.AsPointGraph(false)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building point graph: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Edge Structure")
	fmt.Println("==============")
	fmt.Printf("Triangles:        %d\n", m.TriangleCount())
	fmt.Printf("Derived pairs:    %d (3 per triangle, duplicates kept)\n", len(derived)/2)
	fmt.Printf("Undirected edges: %d\n\n", pg.EdgeCount())

	minDeg, maxDeg, sum := -1, 0, 0
	for v := 0; v < pg.PointCount(); v++ {
		d := pg.Degree(v)
		if minDeg < 0 || d < minDeg {
			minDeg = d
		}
		if d > maxDeg {
			maxDeg = d
		}
		sum += d
	}
	if pg.PointCount() > 0 {
		fmt.Println("Vertex Degree:")
		fmt.Printf("  Minimum: %d\n", minDeg)
		fmt.Printf("  Maximum: %d\n", maxDeg)
		fmt.Printf("  Average: %.2f\n", float64(sum)/float64(pg.PointCount()))
	}

	if edgesShowList {
		fmt.Println("\nEdges:")
		for i := 0; i < pg.EdgeCount(); i++ {
			a, b := pg.Edge(i)
			fmt.Printf("  %d -- %d\n", a, b)
		}
	}
}
