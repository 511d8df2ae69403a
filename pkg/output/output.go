// Package output renders check results and run summaries for the console.
package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jwalton/go-supportscolor"

	"github.com/vertti/smokecheck/pkg/check"
	"github.com/vertti/smokecheck/pkg/results"
)

const ruleWidth = 60

type palette struct {
	green, red, dim, reset string
}

var ansi = palette{green: "\033[32m", red: "\033[31m", dim: "\033[2m", reset: "\033[0m"}

// Printer writes one line per check and the final summary.
type Printer struct {
	w       io.Writer
	colors  palette
	verbose bool

	rule    lipgloss.Style
	passed  lipgloss.Style
	failed  lipgloss.Style
	heading lipgloss.Style
}

// New returns a Printer writing to w. ANSI colors are used only when w is a
// terminal that supports them. With verbose, passing checks print their
// details too.
func New(w io.Writer, verbose bool) *Printer {
	p := &Printer{w: w, verbose: verbose}
	if f, ok := w.(*os.File); ok && supportscolor.SupportsColor(f.Fd()).SupportsColor {
		p.colors = ansi
	}

	r := lipgloss.NewRenderer(w)
	p.rule = r.NewStyle().Faint(true)
	p.passed = r.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	p.failed = r.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
	p.heading = r.NewStyle().Bold(true)
	return p
}

// Result prints "[OK] name" or "[FAIL] name - details".
func (p *Printer) Result(r check.Result) {
	c := p.colors
	if r.OK() {
		p.printf("%s[OK]%s %s\n", c.green, c.reset, r.Name)
		if p.verbose {
			for _, d := range r.Details {
				p.printf("      %s%s%s\n", c.dim, d, c.reset)
			}
		}
		return
	}

	if detail := r.Detail(); detail != "" {
		p.printf("%s[FAIL]%s %s - %s\n", c.red, c.reset, r.Name, detail)
	} else {
		p.printf("%s[FAIL]%s %s\n", c.red, c.reset, r.Name)
	}
}

// Banner prints the run header.
func (p *Printer) Banner(suite, baseURL string) {
	p.printf("Starting %s checks...\n", suite)
	p.printf("Testing against: %s\n", baseURL)
	p.printf("%s\n", p.rule.Render(strings.Repeat("=", ruleWidth)))
}

// Summary prints the pass count and every failure with its details.
func (p *Printer) Summary(s results.Summary) {
	p.printf("%s\n", p.rule.Render(strings.Repeat("=", ruleWidth)))

	line := fmt.Sprintf("Tests Summary: %d/%d passed", s.TotalPassed, s.TotalRun)
	if s.AllPassed() {
		p.printf("%s\n", p.passed.Render(line))
	} else {
		p.printf("%s\n", p.failed.Render(line))
	}

	if len(s.Failures) == 0 {
		return
	}
	p.printf("\n%s\n", p.heading.Render("Failed Tests:"))
	for _, f := range s.Failures {
		p.printf("  - %s: %s\n", f.Name, f.Detail())
	}
}

func (p *Printer) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(p.w, format, args...)
}
