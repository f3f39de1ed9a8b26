package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

var (
	maskKeep   string
	maskDrop   string
	maskOutput string
)

var maskCmd = &cobra.Command{
	Use:   "mask [record.json]",
	Short: "Apply a vertex mask to a mesh record",
	Long: "Keep or drop vertices by index and write the masked mesh as a new record. " +
		"Triangles losing any vertex are removed, and vertices left without a triangle are dropped too.",
	Args: cobra.ExactArgs(1),
	Run:  runMask,
}

func init() {
	rootCmd.AddCommand(maskCmd)
	maskCmd.Flags().StringVar(&maskKeep, "keep", "", "Comma-separated vertex indices to keep")
	maskCmd.Flags().StringVar(&maskDrop, "drop", "", "Comma-separated vertex indices to drop")
	maskCmd.Flags().StringVarP(&maskOutput, "output", "o", "masked.json", "Output record path")
}

func runMask(cmd *cobra.Command, args []string) {
	if (maskKeep == "") == (maskDrop == "") {
		fmt.Fprintln(os.Stderr, "Exactly one of --keep or --drop is required.")
		os.Exit(1)
	}

	m := loadMesh(args[0])

	mask := make([]bool, m.PointCount())
	var indices []int
	var err error
	if maskKeep != "" {
		indices, err = parseIndices(maskKeep)
	} else {
		indices, err = parseIndices(maskDrop)
		for i := range mask {
			mask[i] = true
		}
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing indices: %v\n", err)
		os.Exit(1)
	}
	for _, v := range indices {
		if v < 0 || v >= len(mask) {
			fmt.Fprintf(os.Stderr, "Index %d out of range, mesh has %d points.\n", v, len(mask))
			os.Exit(1)
		}
		mask[v] = maskKeep != ""
	}

	masked, err := m.FromMask(mask)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error masking mesh: %v\n", err)
		os.Exit(1)
	}

	if err := masked.Record().WriteFile(maskOutput); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing record: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("%s -> %s\n", m, masked)
	fmt.Printf("Wrote %s\n", maskOutput)
}

func parseIndices(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		v, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("bad index %q", p)
		}
		out = append(out, v)
	}
	return out, nil
}
