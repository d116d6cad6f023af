package astfmt

import (
	"fmt"
	"io"
	"strings"

	"fortio.org/safecast"
	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"github.com/vovakirdan/mf2/internal/source"
)

// PreviewOpts controls Preview rendering.
type PreviewOpts struct {
	// Color underlines with ANSI color.
	Color bool
}

var caretColor = color.New(color.FgRed, color.Bold)

// Preview writes the source line containing sp followed by a caret
// underline:
//
//	Hi {$name :upper} {#b}!
//	    ^~~~~
//
// The underline is clamped to the line; alignment uses display width,
// so wide runes in the prefix stay under the right columns. Spans that
// point at no real location (empty patterns) are an error.
func Preview(w io.Writer, src string, sp source.Span, opts PreviewOpts) error {
	if sp.IsDummy() {
		return fmt.Errorf("span has no source location")
	}
	lenSrc, err := safecast.Conv[uint32](len(src))
	if err != nil {
		return fmt.Errorf("len source overflow: %w", err)
	}
	if sp.End < sp.Start || uint32(sp.End) > lenSrc {
		return fmt.Errorf("span %s out of range for %d-byte source", sp, len(src))
	}

	lineStart := strings.LastIndexByte(src[:sp.Start], '\n') + 1
	lineEnd := strings.IndexByte(src[sp.Start:], '\n')
	if lineEnd < 0 {
		lineEnd = len(src)
	} else {
		lineEnd += int(sp.Start)
	}

	prefix := runewidth.StringWidth(src[lineStart:sp.Start])
	spanEnd := min(int(sp.End), lineEnd)
	width := runewidth.StringWidth(src[int(sp.Start):spanEnd])
	if width < 1 {
		width = 1
	}
	underline := "^" + strings.Repeat("~", width-1)
	if opts.Color {
		underline = caretColor.Sprint(underline)
	}

	_, err = fmt.Fprintf(w, "%s\n%s%s\n", src[lineStart:lineEnd], strings.Repeat(" ", prefix), underline)
	return err
}
