package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// printer 负责所有面向用户的输出
type printer struct {
	stdout io.Writer
	stderr io.Writer

	errorLabel *color.Color
	heading    *color.Color
	highlight  *color.Color
	bad        *color.Color
	success    *color.Color
	option     *color.Color
}

func newPrinter(stdout, stderr io.Writer, noColor bool) *printer {
	p := &printer{
		stdout:     stdout,
		stderr:     stderr,
		errorLabel: color.New(color.FgRed, color.Bold),
		heading:    color.New(color.FgYellow, color.Bold),
		highlight:  color.New(color.FgYellow),
		bad:        color.New(color.FgRed),
		success:    color.New(color.FgGreen, color.Bold),
		option:     color.New(color.FgGreen),
	}
	if noColor {
		for _, c := range []*color.Color{p.errorLabel, p.heading, p.highlight, p.bad, p.success, p.option} {
			c.DisableColor()
		}
	}
	return p
}

func (p *printer) usage(name string) {
	fmt.Fprintf(p.stderr, "Creates env variables from a json object.\n\n%s: %s <INPUT PATH> <OUTPUT PATH>\n", p.heading.Sprint("Usage"), name)
	fmt.Fprintf(
		p.stderr,
		"\n%s:\n  %s, %s\n  %s, %s\n",
		p.heading.Sprint("Options"),
		p.option.Sprint("-v"), p.option.Sprint("--version"),
		p.option.Sprint("-h"), p.option.Sprint("--help"),
	)
}

func (p *printer) version(nameAndVersion string) {
	fmt.Fprintln(p.stderr, nameAndVersion)
}

func (p *printer) unexpectedOption() {
	fmt.Fprintf(
		p.stderr,
		"%s: unexpected option.\n\nDid you mean %s or %s?\n",
		p.errorLabel.Sprint("Error"),
		p.highlight.Sprint("--version"),
		p.highlight.Sprint("--help"),
	)
}

func (p *printer) invalidArgCount(received int) {
	fmt.Fprintf(
		p.stderr,
		"%s: invalid number of args. Expected %s. Received %s.\n\n",
		p.errorLabel.Sprint("Error"),
		p.highlight.Sprint(ExpectedArgs),
		p.bad.Sprint(received),
	)
}

func (p *printer) failure(err error) {
	fmt.Fprintf(p.stderr, "%s: %s\n", p.errorLabel.Sprint("Error"), err)
}

func (p *printer) wrote(count int, path string) {
	fmt.Fprintf(p.stdout, "✔ Wrote %s variables to %s\n", p.success.Sprint(count), p.success.Sprint(path))
}
