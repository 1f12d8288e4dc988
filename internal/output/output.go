// Package output provides formatted output utilities for the CLI.
package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/olekukonko/tablewriter"

	"github.com/reflex-stack/tsp/internal/sizereport"
)

// Writer handles CLI output formatting.
type Writer struct {
	out   io.Writer
	err   io.Writer
	color bool
	quiet bool
}

// New creates a new Writer with default settings.
func New() *Writer {
	return &Writer{
		out:   os.Stdout,
		err:   os.Stderr,
		color: isTerminal(),
	}
}

// NewWithWriters creates a Writer with custom io.Writers (for testing).
func NewWithWriters(out, err io.Writer, color bool) *Writer {
	return &Writer{
		out:   out,
		err:   err,
		color: color,
	}
}

// SetQuiet enables or disables quiet mode.
func (w *Writer) SetQuiet(quiet bool) {
	w.quiet = quiet
}

// Quiet reports whether quiet mode is on.
func (w *Writer) Quiet() bool {
	return w.quiet
}

// Out returns the stdout writer.
func (w *Writer) Out() io.Writer {
	return w.out
}

// Err returns the stderr writer.
func (w *Writer) Err() io.Writer {
	return w.err
}

// Print writes to stdout.
func (w *Writer) Print(format string, args ...interface{}) {
	fmt.Fprintf(w.out, format, args...)
}

// Println writes a line to stdout.
func (w *Writer) Println(format string, args ...interface{}) {
	fmt.Fprintf(w.out, format+"\n", args...)
}

// Error writes to stderr.
func (w *Writer) Error(format string, args ...interface{}) {
	fmt.Fprintf(w.err, format, args...)
}

// Errorln writes a line to stderr.
func (w *Writer) Errorln(format string, args ...interface{}) {
	fmt.Fprintf(w.err, format+"\n", args...)
}

// render applies style when color output is enabled.
func (w *Writer) render(style lipgloss.Style, text string) string {
	if !w.color {
		return text
	}
	return style.Render(text)
}

// Info prints an info message (skipped in quiet mode).
func (w *Writer) Info(format string, args ...interface{}) {
	if w.quiet {
		return
	}
	w.Println(format, args...)
}

// Success prints a success message.
func (w *Writer) Success(format string, args ...interface{}) {
	w.Println("%s", w.render(SuccessStyle, fmt.Sprintf(format, args...)))
}

// Warning prints a warning message.
func (w *Writer) Warning(format string, args ...interface{}) {
	w.Errorln("%s", w.render(WarningStyle, "warning: "+fmt.Sprintf(format, args...)))
}

// Intro prints the "Working on <name> v<version>" banner.
func (w *Writer) Intro(name, version string) {
	if w.quiet {
		return
	}
	label := "Working on " + name
	if version != "" {
		label += " v" + version
	}
	w.Println("%s", w.render(TitleStyle, label))
}

// Section prints a section header.
func (w *Writer) Section(title string) {
	if w.quiet {
		return
	}
	w.Println("")
	w.Println("%s", w.render(SectionStyle, "=== "+title+" ==="))
}

// Action prints an action message (what the CLI is doing).
func (w *Writer) Action(format string, args ...interface{}) {
	if w.quiet {
		return
	}
	w.Println("%s", w.render(ActionStyle, fmt.Sprintf(format, args...)))
}

// List prints a list of items.
func (w *Writer) List(items []string) {
	for _, item := range items {
		w.Println("  - %s", item)
	}
}

// Hint prints a hint message for the user.
func (w *Writer) Hint(format string, args ...interface{}) {
	w.Println("%s", w.render(MutedStyle, fmt.Sprintf(format, args...)))
}

// ErrorPrefix prints an error message with tsp prefix to stderr.
func (w *Writer) ErrorPrefix(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	w.Errorln("%s %s", w.render(ErrorStyle, "tsp:"), msg)
}

// SummaryItem prints a labeled summary item with value.
func (w *Writer) SummaryItem(label, value string) {
	w.Println("  %s %s", w.render(MutedStyle, label+":"), value)
}

// SummaryAction prints a phase with status indicator, duration, and optional error.
func (w *Writer) SummaryAction(name string, success bool, duration string, errMsg string) {
	if w.quiet {
		return
	}
	if success {
		w.Print("    %s %-12s %s", w.render(SuccessStyle, w.glyph("✓", "+")), name, w.render(MutedStyle, duration))
	} else {
		w.Print("    %s %-12s %s", w.render(ErrorStyle, w.glyph("✗", "x")), name, w.render(MutedStyle, duration))
		if errMsg != "" {
			w.Print("  %s", w.render(MutedStyle, "("+firstLine(errMsg)+")"))
		}
	}
	w.Print("\n")
}

// SummarySkipped prints a phase that did not run.
func (w *Writer) SummarySkipped(name string) {
	if w.quiet {
		return
	}
	w.Println("    %s %s", w.render(MutedStyle, w.glyph("-", "-")), w.render(MutedStyle, name+" (skipped)"))
}

func (w *Writer) glyph(colored, plain string) string {
	if w.color {
		return colored
	}
	return plain
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

// ValidationSuccess prints a validation success message.
func (w *Writer) ValidationSuccess(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if w.color {
		w.Println("%s %s", SuccessStyle.Render("✓"), msg)
	} else {
		w.Println("%s", msg)
	}
}

// FinalSuccess prints a final success message.
func (w *Writer) FinalSuccess(format string, args ...interface{}) {
	w.Println("")
	w.Println("%s", w.render(SuccessStyle, fmt.Sprintf(format, args...)))
}

// FinalFailure prints a final failure message.
func (w *Writer) FinalFailure(format string, args ...interface{}) {
	w.Println("")
	w.Println("%s", w.render(ErrorStyle, fmt.Sprintf(format, args...)))
}

// newTable returns a borderless tablewriter writing to stdout.
func (w *Writer) newTable(headers []string) *tablewriter.Table {
	table := tablewriter.NewWriter(w.out)
	table.SetHeader(headers)
	table.SetBorder(false)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetTablePadding("  ")
	table.SetNoWhiteSpace(true)
	return table
}

// Table prints a simple table.
func (w *Writer) Table(headers []string, rows [][]string) {
	table := w.newTable(w.styleHeader(headers))
	table.AppendBulk(rows)
	table.Render()
}

// SizeTable prints a size report grid. Bundle names are bold, compressed sizes
// highlighted, file rows muted and the total emphasized.
func (w *Writer) SizeTable(t sizereport.Table) {
	table := w.newTable(w.styleHeader(t.Header))
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT})
	for _, row := range t.Rows {
		table.Append(w.sizeCells(row))
	}
	table.Render()
}

func (w *Writer) sizeCells(row sizereport.TableRow) []string {
	cells := row.Cells()
	switch row.Kind {
	case sizereport.RowBundle:
		cells[0] = w.render(BoldStyle, cells[0])
		cells[2] = w.render(CmdStyle, cells[2])
	case sizereport.RowFile:
		for i := range cells {
			cells[i] = w.render(MutedStyle, cells[i])
		}
	case sizereport.RowTotal:
		cells[0] = w.render(BoldStyle, cells[0])
		cells[2] = w.render(SuccessStyle.Bold(true), cells[2])
	}
	return cells
}

func (w *Writer) styleHeader(headers []string) []string {
	styled := make([]string, len(headers))
	for i, h := range headers {
		styled[i] = w.render(SectionStyle, h)
	}
	return styled
}

// NewLogger creates the diagnostic logger: debug output when verbose,
// warnings and errors only when quiet.
func NewLogger(out io.Writer, verbose, quiet bool) *log.Logger {
	level := log.InfoLevel
	switch {
	case verbose:
		level = log.DebugLevel
	case quiet:
		level = log.WarnLevel
	}
	return log.NewWithOptions(out, log.Options{
		Prefix: "tsp",
		Level:  level,
	})
}

// ColorSupported reports whether stdout accepts styled output.
func ColorSupported() bool {
	return isTerminal()
}

// isTerminal returns true if stdout is a terminal.
func isTerminal() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if fi, _ := os.Stdout.Stat(); fi != nil {
		return (fi.Mode() & os.ModeCharDevice) != 0
	}
	return false
}

// Indent prefixes every non-empty line of text.
func Indent(text, prefix string) string {
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = prefix + line
		}
	}
	return strings.Join(lines, "\n")
}
