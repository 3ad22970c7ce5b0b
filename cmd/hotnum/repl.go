package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	"github.com/DetachHead/hotscript"
)

const (
	historyFile = ".hotnum_history"
	promptMain  = "==> "
	promptCont  = "... "
)

func red(s string) string  { return "\x1b[31m" + s + "\x1b[0m" }
func blue(s string) string { return "\x1b[94m" + s + "\x1b[0m" }

func newReplCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Start the interactive calculator",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runRepl()
		},
	}
}

func runRepl() error {
	fmt.Printf("hotnum %s\nCtrl+C cancels input, Ctrl+D exits. Type :help for commands.\n", hotscript.Version)

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

	s := hotscript.NewSession()
	for {
		prompt := promptMain
		if _, waiting := s.Pending(); waiting {
			prompt = promptCont
		}
		line, err := ln.Prompt(prompt)
		if err == liner.ErrPromptAborted {
			fmt.Println("(cancelled)")
			continue
		}
		if err == io.EOF {
			fmt.Println()
			return nil
		}
		if err != nil {
			return err
		}

		code := strings.TrimSpace(line)
		if code == "" {
			continue
		}
		if strings.HasPrefix(code, ":") {
			if quit := replCommand(code); quit {
				return nil
			}
			continue
		}

		v, err := s.Eval(code)
		if err != nil {
			fmt.Fprintln(os.Stderr, red(err.Error()))
			continue
		}
		if b, ok := v.Pending(); ok {
			fmt.Println(blue(b.String()))
		} else {
			fmt.Println(v)
		}
		ln.AppendHistory(code)
	}
}

func replCommand(code string) (quit bool) {
	switch strings.ToLower(code) {
	case ":quit", ":q":
		return true
	case ":ops":
		reg := hotscript.Catalog()
		for _, name := range reg.Ops() {
			d, _ := reg.Op(name)
			fmt.Printf("%-20s %s\n", name, d.Doc)
		}
	case ":help":
		fmt.Print(`Commands:
  <op> <slot>...   invoke an operation; a slot is an integer, _ (placeholder), or ? (omitted)
  <slot>...        supply arguments to the pending operation
  :ops             list the operation catalog
  :quit            exit
`)
	default:
		fmt.Println("unknown command. Type :help for help.")
	}
	return false
}
