package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"uxo-chatbot/internal/app"
	"uxo-chatbot/internal/chat"
	"uxo-chatbot/internal/db"
)

func newAskCmd(opts *rootOptions) *cobra.Command {
	var (
		sessionID string
		language  string
	)

	cmd := &cobra.Command{
		Use:   "ask",
		Short: "Chat with the assistant from the terminal",
		Long:  "Reads one question per line from stdin and prints each answer. Type \"exit\" or send EOF to stop.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, l, err := opts.load()
			if err != nil {
				return err
			}
			core, err := app.Build(cmd.Context(), cfg, l)
			if err != nil {
				return err
			}
			defer db.Close(core.DB)

			if sessionID == "" {
				sessionID = "cli_" + uuid.NewString()
			}
			return askLoop(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), core.Chat, sessionID, language)
		},
	}

	cmd.Flags().StringVarP(&sessionID, "session", "s", "", "session id to continue (default: a new one)")
	cmd.Flags().StringVarP(&language, "language", "l", chat.DefaultLanguage, "answer language")
	return cmd
}

// askLoop answers questions read line by line until EOF or an exit command.
func askLoop(ctx context.Context, in io.Reader, out io.Writer, uc chat.UseCase, sessionID, language string) error {
	fmt.Fprintf(out, "Session %s. Type \"exit\" to quit, \"/reset\" to clear history.\n", sessionID)

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		switch strings.ToLower(line) {
		case "":
			continue
		case "exit", "quit":
			return nil
		case "/reset":
			if err := uc.Reset(ctx, sessionID); err != nil {
				return err
			}
			fmt.Fprintln(out, "History cleared.")
			continue
		}

		res, err := uc.Answer(ctx, chat.AnswerInput{Question: line, Language: language, SessionID: sessionID})
		if err != nil {
			fmt.Fprintf(out, "error: %v\n", err)
			continue
		}
		fmt.Fprintf(out, "[%s %.2f] %s\n", res.Intent, res.Confidence, res.Answer)
	}
}
