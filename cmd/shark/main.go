/*
File    : shark/cmd/shark/main.go

Package main is Shark's CLI entry point, grounded on the teacher's
main.main (_examples/akashmaji946-go-mix/main/main.go): no arguments
starts the REPL, one non-flag argument is read as a source file and run
via session.EvaluateSource, and --version/--help print metadata and
exit. The teacher's `server <port>` mode has no home in spec.md (no
MODULE or operation calls for network-accessible sessions) and is
dropped — see DESIGN.md.
*/
package main

import (
	"os"

	"github.com/fatih/color"

	"github.com/danieldeazevedo/shark/repl"
	"github.com/danieldeazevedo/shark/session"
)

var (
	version = "v0.1.0"
	author  = "shark-lang"
	license = "MIT"
	prompt  = "shark >>> "
	line    = "----------------------------------------------------------------"
	banner  = `
  ███████╗██╗  ██╗ █████╗ ██████╗ ██╗  ██╗
  ██╔════╝██║  ██║██╔══██╗██╔══██╗██║ ██╔╝
  ███████╗███████║███████║██████╔╝█████╔╝
  ╚════██║██╔══██║██╔══██║██╔══██╗██╔═██╗
  ███████║██║  ██║██║  ██║██║  ██║██║  ██╗
  ╚══════╝╚═╝  ╚═╝╚═╝  ╚═╝╚═╝  ╚═╝╚═╝  ╚═╝
`
)

var (
	redColor  = color.New(color.FgRed)
	cyanColor = color.New(color.FgCyan)
)

func main() {
	if len(os.Args) > 1 {
		arg := os.Args[1]
		switch arg {
		case "--help", "-h":
			showHelp()
			os.Exit(0)
		case "--version", "-v":
			showVersion()
			os.Exit(0)
		}
		runFile(arg)
		return
	}

	repler := repl.NewRepl(banner, version, author, line, license, prompt)
	repler.Start(os.Stdin, os.Stdout)
}

func runFile(fileName string) {
	source, err := os.ReadFile(fileName)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[FILE ERROR] could not read file %q: %v\n", fileName, err)
		os.Exit(1)
	}

	if err := session.EvaluateSource(string(source), os.Stdout); err != nil {
		redColor.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}
}

func showHelp() {
	cyanColor.Println("Shark - a small dynamically-typed array language")
	cyanColor.Println("")
	cyanColor.Println("USAGE:")
	cyanColor.Println("  shark                   Start the interactive REPL")
	cyanColor.Println("  shark <path-to-file>    Run a .shark source file")
	cyanColor.Println("  shark --help            Display this help message")
	cyanColor.Println("  shark --version         Display version information")
}

func showVersion() {
	cyanColor.Println("Shark - a small dynamically-typed array language")
	cyanColor.Printf("Version: %s\n", version)
	cyanColor.Printf("License: %s\n", license)
}
