/*
File    : shark/repl/repl.go

Package repl implements Shark's interactive Read-Eval-Print Loop,
grounded on the teacher's repl.Repl (_examples/akashmaji946-go-mix/
repl/repl.go): a chzyer/readline-driven loop with fatih/color output,
adapted to drive a single session.Session.EvaluateLine call per input
line instead of the teacher's standalone eval.Evaluator.
*/
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/danieldeazevedo/shark/session"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl is an interactive Shark session bound to a banner/prompt.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	License string
	Prompt  string
}

// NewRepl builds a Repl with the given display configuration.
func NewRepl(banner, version, author, line, license, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, License: license, Prompt: prompt}
}

// PrintBannerInfo writes the startup banner and usage hints to writer.
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Welcome to Shark!")
	cyanColor.Fprintf(writer, "%s\n", "Type your code and press enter")
	cyanColor.Fprintf(writer, "%s\n", "Type '.exit' to quit")
	cyanColor.Fprintf(writer, "%s\n", "Use up/down arrows to navigate command history")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start runs the REPL main loop, writing banner, results and errors to
// writer, until the user exits (".exit") or readline reports EOF
// (Ctrl+D) or another read error. Input lines are read by readline from
// the process's standard input; reader is not read. Each line is
// evaluated against one persistent session.Session, so bindings survive
// across lines.
func (r *Repl) Start(reader io.Reader, writer io.Writer) {
	r.PrintBannerInfo(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	sess := session.New(writer)

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		line = strings.Trim(line, " \n\t\r")
		if line == "" {
			continue
		}
		if line == ".exit" {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		rl.SaveHistory(line)
		r.evaluateLine(writer, sess, line)
	}
}

// evaluateLine runs one line against sess and displays its result (or
// error) without ever crashing the loop — matching the teacher's
// executeWithRecovery, which continues the REPL after any failure.
func (r *Repl) evaluateLine(writer io.Writer, sess *session.Session, line string) {
	display, ok, err := sess.EvaluateLine(line)
	if err != nil {
		redColor.Fprintf(writer, "%s\n", err)
		return
	}
	if ok {
		yellowColor.Fprintf(writer, "%s\n", display)
	}
}
