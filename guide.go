package main

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

//go:embed docs/guide.md
var guideMarkdown string

func newGuideCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "guide",
		Short: "Show the tabhop usage guide",
		RunE: func(cmd *cobra.Command, args []string) error {
			wordWrap := 100
			if width, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && width > 0 && width < wordWrap {
				wordWrap = width
			}

			renderer, err := glamour.NewTermRenderer(
				glamour.WithStandardStyle("dark"),
				glamour.WithWordWrap(wordWrap),
			)
			if err != nil {
				return fmt.Errorf("could not create markdown renderer: %w", err)
			}

			rendered, err := renderer.Render(guideMarkdown)
			if err != nil {
				return fmt.Errorf("could not render guide: %w", err)
			}

			fmt.Fprint(cmd.OutOrStdout(), rendered)
			return nil
		},
	}
}

func init() {
	rootCmd.AddCommand(newGuideCmd())
}
