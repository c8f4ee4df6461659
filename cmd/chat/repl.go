package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"multilanguage-agent/internal/conversation"
	"multilanguage-agent/internal/model"
)

const (
	cliSessionID = "cli"

	cmdClear = "/clear"
	cmdQuit  = "/quit"
	cmdExit  = "/exit"
)

func newREPLCmd(opts *rootOptions) *cobra.Command {
	var strategy string

	cmd := &cobra.Command{
		Use:     "repl",
		Aliases: []string{"talk"},
		Short:   "Start an interactive chat session",
		Long: `Start an interactive chat session.

Type a message and press enter. Commands:
  /clear  clear the chat history
  /quit   leave the session`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			uc, err := buildUseCase(ctx, opts.logger(), strategy)
			if err != nil {
				return err
			}
			return runREPL(ctx, os.Stdin, cmd.OutOrStdout(), uc, newRenderer(opts.plain))
		},
	}

	cmd.Flags().StringVar(&strategy, "strategy", "", "dispatch strategy: label or team (default from config)")
	return cmd
}

// runREPL reads one message per line until EOF or /quit.
func runREPL(ctx context.Context, in io.Reader, out io.Writer, uc conversation.UseCase, r renderer) error {
	sc := model.Scope{SessionID: cliSessionID, Channel: model.ChannelCLI}
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	fmt.Fprintln(out, r.notice("🌍 English or German, type /quit to leave."))
	for {
		fmt.Fprint(out, r.prompt())
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())

		switch line {
		case "":
			continue
		case cmdQuit, cmdExit:
			return nil
		case cmdClear:
			if err := uc.Clear(ctx, sc); err != nil {
				return err
			}
			fmt.Fprintln(out, r.notice("Chat history cleared!"))
			continue
		}

		output, err := uc.Send(ctx, sc, conversation.SendInput{Text: line})
		if err != nil {
			if errors.Is(err, conversation.ErrEmptyMessage) {
				continue
			}
			return err
		}
		fmt.Fprintln(out, r.exchange(output))
		fmt.Fprintln(out)
	}
}
