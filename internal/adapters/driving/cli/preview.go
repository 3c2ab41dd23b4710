package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/wiki-push/internal/core/domain"
)

var previewLinksFlag bool

var previewCmd = &cobra.Command{
	Use:   "preview <file.md>",
	Short: "Print the HTML a page would be published with",
	Long: `Converts a single markdown page exactly as a migration would and prints
the resulting HTML. No session is opened and nothing is created.`,
	Args: exactArgs(1, "<file.md>"),
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().BoolVar(&previewLinksFlag, "links", false, "list the gollum links found in the page")
	rootCmd.AddCommand(previewCmd)
}

func runPreview(cmd *cobra.Command, args []string) error {
	opts, err := resolveContentOptions(cmd, configStore)
	if err != nil {
		return exitWith(ExitUsage, err)
	}

	builder, rewriter, err := newContentPipeline(opts)
	if err != nil {
		return err
	}

	path := args[0]
	name := strings.TrimSuffix(filepath.Base(path), domain.MarkdownExt)

	if previewLinksFlag {
		raw, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("%w: %w", domain.ErrRead, err)
		}
		s := newStyles(cmd.OutOrStdout())
		cmd.Println(s.Title.Render("Links"))
		for _, tok := range rewriter.Tokens(string(raw)) {
			switch tok.Kind {
			case domain.LinkKindReference:
				cmd.Printf("  reference  %s -> %s\n", tok.Text, tok.Ref)
			case domain.LinkKindResource:
				cmd.Printf("  resource   %s/%s -> %s/%s\n", tok.Dir, tok.File, name, tok.File)
			}
		}
		cmd.Println()
	}

	content, err := builder.Build(cmd.Context(), domain.SourcePage{Name: name, Path: path})
	if err != nil {
		return err
	}

	cmd.Print(content.HTML)
	if !strings.HasSuffix(content.HTML, "\n") {
		cmd.Println()
	}
	return nil
}
