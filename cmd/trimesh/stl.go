package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/chazu/trimesh/pkg/render"
)

var (
	stlOutput  string
	stlOptions string
)

var stlCmd = &cobra.Command{
	Use:   "stl [record.json]",
	Short: "Export a 3D mesh record as binary STL",
	Args:  cobra.ExactArgs(1),
	Run:   runSTL,
}

func init() {
	rootCmd.AddCommand(stlCmd)
	stlCmd.Flags().StringVarP(&stlOutput, "output", "o", "mesh.stl", "Output STL path")
	stlCmd.Flags().StringVar(&stlOptions, "options", "", "YAML rendering options file")
}

func runSTL(cmd *cobra.Command, args []string) {
	m := loadMesh(args[0])

	opts := render.Defaults()
	if stlOptions != "" {
		var err error
		opts, err = render.LoadOptions(stlOptions)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading options: %v\n", err)
			os.Exit(1)
		}
	}

	w := render.NewSTLWriter(stlOutput)
	if err := w.Render(render.MeshScene(m), opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing STL: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Wrote %d triangles to %s\n", m.TriangleCount(), stlOutput)
}
