package formatter

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	tt "github.com/gnoswap-labs/circconv/internal/types"
)

var (
	headerStyle  = color.New(color.FgHiWhite, color.Bold)
	ruleStyle    = color.New(color.FgYellow, color.Bold)
	fileStyle    = color.New(color.FgCyan, color.Bold)
	lineStyle    = color.New(color.FgHiBlue, color.Bold)
	removedStyle = color.New(color.FgRed)
	addedStyle   = color.New(color.FgGreen)
	dropStyle    = color.New(color.FgHiBlack)
)

// FormatRewrites renders each rule firing as a removed/added pair, in the
// order the rules fired.
func FormatRewrites(result *tt.Result) string {
	var builder strings.Builder

	builder.WriteString(headerStyle.Sprint("convert: "))
	builder.WriteString(fileStyle.Sprint(result.Filename))
	builder.WriteString("\n")

	width := len(fmt.Sprintf("%d", result.Lines))
	for _, rw := range result.Rewrites {
		builder.WriteString(lineStyle.Sprintf("%*d | ", width, rw.Line))
		builder.WriteString(ruleStyle.Sprint(rw.Rule))
		builder.WriteString("\n")

		padding := strings.Repeat(" ", width)
		builder.WriteString(lineStyle.Sprintf("%s | ", padding))
		builder.WriteString(removedStyle.Sprintf("- %s\n", rw.Original))
		builder.WriteString(lineStyle.Sprintf("%s | ", padding))
		if rw.Drop {
			builder.WriteString(dropStyle.Sprint("  (dropped)\n"))
		} else {
			builder.WriteString(addedStyle.Sprintf("+ %s\n", rw.Output))
		}
	}

	builder.WriteString(FormatSummary(result))
	return builder.String()
}

// FormatSummary is a one-line digest of a conversion.
func FormatSummary(result *tt.Result) string {
	return fmt.Sprintf("%d lines read, %d rewrites, %d dropped, outputs: %s\n",
		result.Lines, len(result.Rewrites), result.Dropped, strings.Join(result.Outputs, " "))
}
