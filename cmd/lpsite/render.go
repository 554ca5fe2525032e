// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"io"
	"net/url"
	"os"

	"github.com/spf13/cobra"
	"github.com/thatcatcamp/lpsite/internal/blocks"
	"github.com/thatcatcamp/lpsite/internal/config"
	"github.com/thatcatcamp/lpsite/internal/content"
	"github.com/thatcatcamp/lpsite/internal/locale"
	"github.com/thatcatcamp/lpsite/internal/state"
	"github.com/thatcatcamp/lpsite/internal/templates"
	"github.com/thatcatcamp/lpsite/internal/themes"
)

var (
	renderTheme string
	renderQuery string
)

var renderCmd = &cobra.Command{
	Use:   "render <locale> <page>",
	Short: "Render a page to stdout",
	Long: `Render a landing page (example-lp, agency-lp) or legal page (privacy,
impressum) as a complete HTML document. --query carries view state such as
billing=yearly&faq=1.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		if err := initConfig(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		logger, err := newLogger()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		repo, err := loadRepository(logger)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		theme := renderTheme
		if theme == "" {
			theme = config.GetString("site.default_theme")
		}

		if err := renderPage(cmd.OutOrStdout(), repo, args[0], args[1], theme, renderQuery); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	renderCmd.Flags().StringVar(&renderTheme, "theme", "", "theme name (default site.default_theme)")
	renderCmd.Flags().StringVar(&renderQuery, "query", "", "view state query string")
	rootCmd.AddCommand(renderCmd)
}

// renderPage writes the HTML for (rawLocale, pageID) to w
func renderPage(w io.Writer, repo *content.Repository, rawLocale, pageID, themeName, query string) error {
	l, ok := locale.Parse(rawLocale)
	if !ok {
		return fmt.Errorf("unsupported locale: %s", rawLocale)
	}

	theme, ok := themes.Resolve(themeName)
	if !ok {
		return fmt.Errorf("unknown theme: %s", themeName)
	}

	values, err := url.ParseQuery(query)
	if err != nil {
		return fmt.Errorf("invalid query: %w", err)
	}

	baseURL := config.GetString("site.base_url")
	var html []byte

	switch {
	case content.IsLegalPageID(pageID):
		pc, ok := repo.LoadLegalPageCopy(l, pageID)
		if !ok {
			return fmt.Errorf("%s copy not found for locale: %s", pageID, l)
		}
		html, err = blocks.RenderLegalPage(templates.AssembleLegal(theme, l, pageID, pc).WithBaseURL(baseURL))
	default:
		pc, ok := repo.LoadPageCopy(l, pageID)
		if !ok {
			return fmt.Errorf("page not found: %s/%s", l, pageID)
		}
		html, err = blocks.RenderPage(templates.Assemble(theme, l, pc, pageID).WithBaseURL(baseURL), state.ParseView(values))
	}
	if err != nil {
		return err
	}

	_, err = w.Write(html)
	return err
}
