package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/wiki-push/internal/core/domain"
)

// printReport writes the end-of-run summary.
func printReport(cmd *cobra.Command, s *styles, result *domain.PublishResult, dryRun bool) {
	verb := "created"
	if dryRun {
		verb = "would be created"
	}

	summary := fmt.Sprintf("%d page(s) %s", len(result.Created), verb)
	if len(result.Skipped) > 0 {
		summary += fmt.Sprintf(", %d internal page(s) skipped", len(result.Skipped))
	}
	if result.HasFailures() {
		cmd.Println(s.Warning.Render(summary + fmt.Sprintf(", %d failed", len(result.Failed))))
		cmd.Println(s.Error.Render("Failed pages: " + strings.Join(result.FailedPages(), ", ")))
	} else {
		cmd.Println(s.Success.Render(summary))
	}

	if result.Location != "" {
		label := "Pages created at:"
		if dryRun {
			label = "Pages would be created at:"
		}
		cmd.Printf("%s %s\n", s.Title.Render(label), s.Link.Render(result.Location))
	}
}

// printError writes a failed command's error to stderr.
func printError(cmd *cobra.Command, err error) {
	s := newStyles(cmd.ErrOrStderr())
	cmd.PrintErrln(s.Error.Render("Error: " + err.Error()))
}
