// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thatcatcamp/lpsite/internal/backup"
	"github.com/thatcatcamp/lpsite/internal/config"
	"github.com/thatcatcamp/lpsite/internal/content"
	"github.com/thatcatcamp/lpsite/internal/db"
	"github.com/thatcatcamp/lpsite/internal/locale"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var contentDir string

var contentCmd = &cobra.Command{
	Use:   "content",
	Short: "Inspect and import page copy",
}

var contentListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the pages each locale provides",
	Run: func(cmd *cobra.Command, args []string) {
		if err := initConfig(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		repo, err := loadRepository(zap.NewNop())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		listContent(cmd.OutOrStdout(), repo)
	},
}

var contentValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate page copy",
	Long:  "Load and validate the configured content, or the content in --dir",
	Run: func(cmd *cobra.Command, args []string) {
		if err := initConfig(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		var (
			repo *content.Repository
			err  error
		)
		if contentDir != "" {
			repo, err = content.NewRepository(content.DirSource(contentDir), zap.NewNop())
		} else {
			repo, err = loadRepository(zap.NewNop())
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		count := 0
		for _, ids := range repo.Availability() {
			count += len(ids)
		}
		fmt.Printf("OK: %d documents\n", count)
	},
}

var contentImportCmd = &cobra.Command{
	Use:   "import",
	Short: "Import page copy into the database",
	Long:  "Validate the content in --dir (or the built-in content) and write it to the configured database",
	Run: func(cmd *cobra.Command, args []string) {
		if err := initConfig(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		if err := initSystemDB(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		src := content.EmbeddedSource()
		if contentDir != "" {
			src = content.DirSource(contentDir)
		}

		n, err := importContent(db.GetDB(), src)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Imported %d documents\n", n)
	},
}

var contentExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export page copy as a tar.gz archive",
	Long:  "Write the configured content to {backups.path}/content-exports as an archive laid out like a content directory",
	Run: func(cmd *cobra.Command, args []string) {
		if err := initConfig(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		filename, err := exportContent(config.GetString("backups.path"))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Exported content to %s\n", filename)
	},
}

func init() {
	contentValidateCmd.Flags().StringVar(&contentDir, "dir", "", "content directory to validate")
	contentImportCmd.Flags().StringVar(&contentDir, "dir", "", "content directory to import (default built-in content)")

	contentCmd.AddCommand(contentListCmd)
	contentCmd.AddCommand(contentValidateCmd)
	contentCmd.AddCommand(contentImportCmd)
	contentCmd.AddCommand(contentExportCmd)
	rootCmd.AddCommand(contentCmd)
}

// listContent prints one line per locale with its identifiers
func listContent(w io.Writer, repo *content.Repository) {
	available := repo.Availability()
	for _, l := range locale.All() {
		ids := available[l]
		if len(ids) == 0 {
			fmt.Fprintf(w, "%-4s (none)\n", l)
			continue
		}
		fmt.Fprintf(w, "%-4s %s\n", l, strings.Join(ids, ", "))
	}
}

// importContent validates src and writes it to database
func importContent(database *gorm.DB, src content.FSSource) (int, error) {
	// validate before writing anything
	if _, err := content.NewRepository(src, zap.NewNop()); err != nil {
		return 0, err
	}

	docs, err := src.Load()
	if err != nil {
		return 0, fmt.Errorf("failed to load content: %w", err)
	}
	return content.Import(database, docs)
}

// exportContent validates the configured content and archives it under
// backupPath. It returns the archive path.
func exportContent(backupPath string) (string, error) {
	src, err := contentSource()
	if err != nil {
		return "", err
	}
	if _, err := content.NewRepository(src, zap.NewNop()); err != nil {
		return "", err
	}

	docs, err := src.Load()
	if err != nil {
		return "", fmt.Errorf("failed to load content: %w", err)
	}

	filename, err := backup.NewContentExporter(backupPath).CreateExport(docs)
	if err != nil {
		return "", err
	}
	return filepath.Join(backupPath, "content-exports", filename), nil
}
