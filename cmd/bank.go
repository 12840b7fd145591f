package cmd

import (
	"fmt"
	"strings"

	"github.com/abhisek/quizmaster/internal/bank"
	"github.com/spf13/cobra"
)

var bankCmd = &cobra.Command{
	Use:   "bank",
	Short: "Inspect question banks",
}

var bankCheckCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Validate a question bank and list its questions",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := bank.Load(args[0])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		title := b.Title
		if title == "" {
			title = "(untitled)"
		}
		fmt.Fprintf(out, "%s\n\n", title)

		// Header.
		fmt.Fprintf(out, "%3s  %-50s  %7s  %s\n", "#", "Prompt", "Options", "Answer")
		fmt.Fprintln(out, strings.Repeat("─", 80))

		for i, q := range b.Questions {
			prompt := q.Prompt
			if len(prompt) > 50 {
				prompt = prompt[:47] + "..."
			}
			fmt.Fprintf(out, "%3d  %-50s  %7d  %s\n",
				i+1, prompt, len(q.Options), q.Options[q.CorrectAnswer])
		}

		fmt.Fprintf(out, "\n%d questions OK\n", len(b.Questions))
		return nil
	},
}

var bankDefaultCmd = &cobra.Command{
	Use:   "default",
	Short: "Print the built-in question bank",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := cmd.OutOrStdout().Write(bank.DefaultSource())
		return err
	},
}

func init() {
	bankCmd.AddCommand(bankCheckCmd)
	bankCmd.AddCommand(bankDefaultCmd)
}
