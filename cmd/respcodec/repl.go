package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/cosmez/respcodec/internal/args"
	"github.com/cosmez/respcodec/internal/output"
	"github.com/cosmez/respcodec/internal/resp"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func newReplCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Interactively encode a line of arguments, then decode the wire bytes back",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRepl(cmd.OutOrStdout())
		},
	}
	return cmd
}

// runRepl reads whitespace/quote-tokenized lines, encodes each as a RESP
// command invocation, immediately round-trips those bytes through a fresh
// Codec, and prints the decoded Value. It never opens a network connection:
// the loopback is entirely local, exercising Encode and Write/Parse against
// each other on every line.
func runRepl(w io.Writer) error {
	homeDir, _ := os.UserHomeDir()
	historyFile := filepath.Join(homeDir, ".respcodec_history")

	tw, _, _ := term.GetSize(int(os.Stdout.Fd()))
	if tw <= 0 {
		tw = 80
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "resp> ",
		HistoryFile:     historyFile,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return fmt.Errorf("initialize readline: %w", err)
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				break
			}
			continue
		} else if err == io.EOF {
			break
		} else if err != nil {
			return err
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		tokens := args.Tokenize(line)
		if len(tokens) == 0 {
			continue
		}

		rendered := make([]interface{}, len(tokens))
		for i, t := range tokens {
			if n, err := strconv.ParseInt(t, 10, 64); err == nil {
				rendered[i] = n
			} else {
				rendered[i] = t
			}
		}

		wire, err := resp.Encode(rendered...)
		if err != nil {
			color.New(color.FgRed).Fprintf(w, "encode error: %v\n", err)
			continue
		}

		codec := resp.New()
		codec.Write(wire)
		values, err := codec.Parse()
		if err != nil {
			color.New(color.FgRed).Fprintf(w, "decode error: %v\n", err)
			continue
		}

		for _, v := range values {
			output.PrintValue(w, v, output.PrintOpts{Color: true, Newline: true})
		}
	}

	return nil
}
