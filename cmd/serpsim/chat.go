package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/leofalp/serpsim/core/chat"
	"github.com/leofalp/serpsim/providers/ai"
)

func chatCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Talk to the SEO assistant",
		Long: `Start an interactive session with the SEO assistant.

Type /history [n] to see the conversation so far, /reset to start over and
/quit (or Ctrl-D) to leave.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			code, _ := cmd.Flags().GetString("lang")
			lang, err := chat.ParseLanguage(code)
			if err != nil {
				return err
			}

			a, err := newApp()
			if err != nil {
				return err
			}
			err = runChat(cmd, a.chat(), lang)
			renderCost(cmd.OutOrStdout(), a.costs.Summary())
			return err
		},
	}
	cmd.Flags().String("lang", string(chat.Portuguese), "assistant language: pt, en, es")
	return cmd
}

func runChat(cmd *cobra.Command, svc *chat.Service, lang chat.Language) error {
	out := cmd.OutOrStdout()
	s := newStyles(out)
	fmt.Fprintln(out, s.label.Render("Assistente:"), lang.Greeting())

	scanner := bufio.NewScanner(cmd.InOrStdin())
	for {
		fmt.Fprint(out, s.muted.Render("> "))
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}

		line := strings.TrimSpace(scanner.Text())
		command, arg, _ := strings.Cut(line, " ")
		switch command {
		case "":
			continue
		case "/quit", "/exit":
			return nil
		case "/reset":
			svc.Store().Reset(cmd.Context(), lang)
			fmt.Fprintln(out, s.label.Render("Assistente:"), lang.Greeting())
			continue
		case "/history":
			if err := writeHistory(cmd, svc, lang, arg, s); err != nil {
				writeChatError(out, s, err)
			}
			continue
		}

		reply, err := svc.Send(cmd.Context(), lang, line)
		if err != nil {
			// the session has been dropped; the next message starts over
			writeChatError(out, s, err)
			continue
		}
		fmt.Fprintln(out, s.label.Render("Assistente:"), reply)
	}
}

// writeHistory prints the last n messages of the session, all of them when
// arg is empty.
func writeHistory(cmd *cobra.Command, svc *chat.Service, lang chat.Language, arg string, s styles) error {
	n := 0
	if arg = strings.TrimSpace(arg); arg != "" {
		v, err := strconv.Atoi(arg)
		if err != nil || v <= 0 {
			return fmt.Errorf("/history expects a positive number, got %q", arg)
		}
		n = v
	}

	msgs, total, err := svc.History(cmd.Context(), lang, n)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if total == 0 {
		fmt.Fprintln(out, s.muted.Render("(sem mensagens)"))
		return nil
	}
	fmt.Fprintln(out, s.muted.Render(fmt.Sprintf("%d de %d mensagens", len(msgs), total)))
	for _, m := range msgs {
		who := "Você:"
		if m.Role == ai.RoleAssistant {
			who = "Assistente:"
		}
		fmt.Fprintln(out, s.label.Render(who), m.Content)
	}
	return nil
}

func writeChatError(w io.Writer, s styles, err error) {
	fmt.Fprintln(w, s.warning.Render("! "+err.Error()))
}
