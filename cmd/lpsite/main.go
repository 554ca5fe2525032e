// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "lpsite",
	Short: "lpsite - localized landing page server",
	Long: `lpsite serves conversion landing pages in English and German.

Pages are assembled from a fixed section order, filled with per-locale
copy and themed with a small set of color palettes. Copy is compiled
into the binary, read from a directory or imported into a database.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
