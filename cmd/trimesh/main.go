package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "trimesh",
	Short: "Triangle mesh inspection and manipulation",
	Long:  `Trimesh inspects, masks and exports triangle mesh records (JSON files with points and a trilist).`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
