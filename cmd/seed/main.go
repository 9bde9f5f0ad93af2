// seed is the CLI entry point: `seed <script.sd>` parses and runs a
// script, exiting non-zero with a located diagnostic on failure. With
// no arguments it drops into a line-editing REPL, grounded on the
// teacher's cmd/msg/main.go REPL loop (liner.NewLiner, history file,
// Ctrl+C handling) but evaluating against this language's persistent
// global frame instead of MindScript's.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/peterh/liner"

	"github.com/eZanmoto/seed"
)

const (
	appName     = "seed"
	historyFile = ".seed_history"
	promptMain  = "==> "
	promptCont  = "... "
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) == 0 {
		return cmdRepl()
	}
	return cmdRun(args[0])
}

func cmdRun(file string) int {
	src, err := os.ReadFile(file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: cannot read %s: %v\n", appName, file, err)
		return 1
	}

	out, rerr := seed.Run(string(src))
	fmt.Print(out)
	if rerr != nil {
		fmt.Fprintln(os.Stderr, rerr.Error())
		return 1
	}
	return 0
}

func cmdRepl() int {
	fmt.Println("seed REPL — Ctrl+D to exit")

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigc)
	go func() {
		<-sigc
		ln.Close()
		os.Exit(130)
	}()

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	i := seed.NewInterp(os.Stdout)

	for {
		code, ok := readByParseProbe(ln, promptMain, promptCont)
		if !ok {
			fmt.Println()
			break
		}
		if strings.TrimSpace(code) == "" {
			continue
		}

		if err := i.RunProgram(code); err != nil {
			fmt.Fprintln(os.Stderr, err.Error())
			continue
		}
		ln.AppendHistory(strings.ReplaceAll(code, "\n", " "))
	}

	return 0
}

// readByParseProbe reads one or more lines until ParseProgram accepts
// the accumulated text as a complete program, mirroring the teacher's
// continuation-prompt REPL loop for a language with block statements
// that span lines.
func readByParseProbe(ln *liner.State, prompt, cont string) (string, bool) {
	var b strings.Builder

	for {
		var line string
		var err error
		if b.Len() == 0 {
			line, err = ln.Prompt(prompt)
		} else {
			line, err = ln.Prompt(cont)
		}
		if errors.Is(err, io.EOF) {
			return "", false
		}
		if err != nil {
			return "", true
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		if _, perr := seed.ParseProgram(b.String()); perr == nil {
			return b.String(), true
		}
	}
}
