package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"ezc/internal/diag"
	"ezc/internal/source"
)

type palette struct {
	err, warn, info, code, note, gutter, caret *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		err:    color.New(color.FgRed, color.Bold),
		warn:   color.New(color.FgYellow, color.Bold),
		info:   color.New(color.FgCyan, color.Bold),
		code:   color.New(color.Bold),
		note:   color.New(color.FgBlue),
		gutter: color.New(color.FgBlue, color.Bold),
		caret:  color.New(color.FgGreen, color.Bold),
	}
	for _, c := range []*color.Color{p.err, p.warn, p.info, p.code, p.note, p.gutter, p.caret} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p palette) severity(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return p.err
	case diag.SevWarning:
		return p.warn
	default:
		return p.info
	}
}

// Pretty writes every diagnostic of bag as
//
//	<path>:<line>:<col>: <SEV> <CODE>: <message>
//	  <line> | <source line>
//	         |     ^~~~
//
// followed by its notes. Call bag.Sort() first for a stable order.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) error {
	pal := newPalette(opts.Color)
	for _, d := range bag.Items() {
		if err := prettyOne(w, d, fs, opts, pal); err != nil {
			return err
		}
	}
	if n := bag.Dropped(); n > 0 {
		if _, err := fmt.Fprintf(w, "... %d more diagnostic(s) not shown\n", n); err != nil {
			return err
		}
	}
	return nil
}

func prettyOne(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts, pal palette) error {
	var sb strings.Builder
	f := fs.Get(d.Primary.File)
	start, end := fs.Resolve(d.Primary)

	fmt.Fprintf(&sb, "%s:%d:%d: %s %s: %s\n",
		displayPath(fs, f, opts.PathMode), start.Line, start.Col,
		pal.severity(d.Severity).Sprint(d.Severity.String()),
		pal.code.Sprint(d.Code.ID()),
		d.Message)
	writeExcerpt(&sb, f, start, end, pal)

	if opts.ShowNotes {
		for _, n := range d.Notes {
			nf := fs.Get(n.Span.File)
			ns, _ := fs.Resolve(n.Span)
			fmt.Fprintf(&sb, "  %s %s:%d:%d: %s\n",
				pal.note.Sprint("note:"), displayPath(fs, nf, opts.PathMode), ns.Line, ns.Col, n.Msg)
		}
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

// writeExcerpt prints the primary line and a caret underline aligned by
// display width. Multi-line spans are underlined to the end of the first line.
func writeExcerpt(sb *strings.Builder, f *source.File, start, end source.LineCol, pal palette) {
	line := f.GetLine(start.Line)
	if line == "" && start.Col <= 1 {
		return
	}
	col := min(int(start.Col)-1, len(line))
	stop := len(line)
	if end.Line == start.Line {
		stop = min(int(end.Col)-1, len(line))
	}

	gutter := fmt.Sprintf("%d", start.Line)
	blank := strings.Repeat(" ", len(gutter))
	fmt.Fprintf(sb, "  %s %s %s\n", pal.gutter.Sprint(gutter), pal.gutter.Sprint("|"), line)

	var pad strings.Builder
	for _, r := range line[:col] {
		if r == '\t' {
			pad.WriteByte('\t')
			continue
		}
		pad.WriteString(strings.Repeat(" ", runewidth.RuneWidth(r)))
	}
	width := runewidth.StringWidth(line[col:max(col, stop)])
	underline := "^"
	if width > 1 {
		underline += strings.Repeat("~", width-1)
	}
	fmt.Fprintf(sb, "  %s %s %s%s\n", blank, pal.gutter.Sprint("|"), pad.String(), pal.caret.Sprint(underline))
}
