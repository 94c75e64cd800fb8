package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/shivendra/docanalyzer/internal/prompt"
	"github.com/shivendra/docanalyzer/internal/task"
)

// chatTurn is one question/answer pair. History is append-only for the
// session and shown bounded to the last ten turns; every turn re-sends the
// whole document in a fresh single-turn call.
type chatTurn struct {
	Question string
	Answer   string
}

const historyWindow = 10

func chatCmd() *cobra.Command {
	var f runFlags
	cmd := &cobra.Command{
		Use:   "chat <file>",
		Short: "Chat with a document (history, clear, exit)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner, cfg, err := setup(cmd, &f)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Ask something about the document. Commands: history, clear, exit.")

			var history []chatTurn
			scanner := bufio.NewScanner(cmd.InOrStdin())
			for {
				fmt.Fprint(out, "> ")
				if !scanner.Scan() {
					return scanner.Err()
				}
				line := strings.TrimSpace(scanner.Text())
				switch line {
				case "":
					continue
				case "exit", "quit":
					return nil
				case "clear":
					history = nil
					continue
				case "history":
					start := len(history) - historyWindow
					if start < 0 {
						start = 0
					}
					for _, turn := range history[start:] {
						fmt.Fprintf(out, "Q: %s\nA: %s\n\n", turn.Question, turn.Answer)
					}
					continue
				}

				res := runner.Run(cmd.Context(), task.Request{
					Kind:     prompt.Answer,
					Path:     args[0],
					Question: line,
					Options:  f.options(cmd, cfg),
				})
				fmt.Fprintln(out, res.Text)
				history = append(history, chatTurn{Question: line, Answer: res.Text})
			}
		},
	}
	addRunFlags(cmd, &f)
	return cmd
}
