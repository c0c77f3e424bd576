package view

import (
	"fmt"
	"strings"

	"github.com/Iron-Ham/pitwall/internal/errors"
	"github.com/charmbracelet/x/ansi"
)

const (
	// RetryHint is shown under a failed slice.
	RetryHint = "Press r to retry"
	// UnexpectedFailure replaces a cause whose message is not fit for display.
	UnexpectedFailure = "An unexpected error occurred. Check the log for details."
)

// renderLoading renders the spinner line of a Loading slice.
func (dv *DashboardView) renderLoading(spinner, label string) string {
	if spinner == "" {
		return dv.styles.Loading.Render(label)
	}
	return spinner + " " + dv.styles.Loading.Render(label)
}

// renderFailure renders a Failed slice: headline, wrapped cause and the
// retry hint. Causes that are not user-facing are replaced by a generic line.
func (dv *DashboardView) renderFailure(what string, err error, width int) string {
	var b strings.Builder

	b.WriteString(dv.styles.Failure.Render(fmt.Sprintf("✗ Failed to load %s", what)))
	b.WriteString("\n")

	switch {
	case errors.IsUserFacing(err):
		b.WriteString(dv.styles.Muted.Render(ansi.Wordwrap(err.Error(), width, " /-")))
		b.WriteString("\n")
	case err != nil:
		b.WriteString(dv.styles.Muted.Render(ansi.Wordwrap(UnexpectedFailure, width, " ")))
		b.WriteString("\n")
	}
	if err != nil && !errors.IsRetryable(err) {
		b.WriteString(dv.styles.Warning.Render("The source returned invalid data."))
		b.WriteString("\n")
	}

	b.WriteString(dv.styles.HelpKey.Render(RetryHint))
	return b.String()
}

// renderFallback renders the "no data" line of an empty collection.
func (dv *DashboardView) renderFallback(text string) string {
	return dv.styles.Fallback.Render(text)
}

// labeled renders "Label: value" with the label muted, wrapped to width.
func (dv *DashboardView) labeled(label, value string, width int) string {
	line := ansi.Wordwrap(label+": "+value, width, " ")
	return dv.styles.ItemLabel.Render(label+":") + strings.TrimPrefix(line, label+":")
}
