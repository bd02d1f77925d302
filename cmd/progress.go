package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/jerrychoi/bookroad/internal/model"
)

var (
	progressSubject string
	progressStep    int
)

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Track completed books",
}

var progressListCmd = &cobra.Command{
	Use:   "list",
	Short: "List tracked books, completed first",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openLibrary()
		if err != nil {
			return err
		}
		defer store.Close()

		rows, err := store.ListProgress(cmd.Context())
		if err != nil {
			return err
		}
		if len(rows) == 0 {
			cmd.Println("no progress tracked yet")
			return nil
		}
		for _, p := range rows {
			marker := " "
			if p.Completed {
				marker = "x"
			}
			line := "[" + marker + "] " + p.Title
			if p.Author != "" {
				line += " / " + p.Author
			}
			if p.Subject != "unknown" {
				line += " (" + p.Subject + ")"
			}
			cmd.Println(line)
		}
		return nil
	},
}

var progressToggleCmd = &cobra.Command{
	Use:   "toggle <query>",
	Short: "Flip completion for the top search hit of a query",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var subject model.Subject
		if progressSubject != "" {
			s, err := model.ParseSubject(progressSubject)
			if err != nil {
				return err
			}
			subject = s
		}

		book, cleanup, err := lookupFirst(cmd, strings.Join(args, " "))
		if err != nil {
			return err
		}
		defer cleanup()

		store, err := openLibrary()
		if err != nil {
			return err
		}
		defer store.Close()

		done, err := store.ToggleCompleted(cmd.Context(), *book, subject, progressStep)
		if err != nil {
			return err
		}
		if done {
			cmd.Printf("completed: %s (%s)\n", book.Title, book.Author)
		} else {
			cmd.Printf("not completed: %s (%s)\n", book.Title, book.Author)
		}
		return nil
	},
}

var progressStatsCmd = &cobra.Command{
	Use:   "stats <subject>",
	Short: "Show completed counts for a subject's roadmap",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		subject, err := model.ParseSubject(args[0])
		if err != nil {
			return err
		}

		store, err := openLibrary()
		if err != nil {
			return err
		}
		defer store.Close()

		total, err := store.CompletedCount(cmd.Context(), subject, 0)
		if err != nil {
			return err
		}
		cmd.Printf("%s: %d completed\n", subject.Name(), total)
		for step := 1; step <= model.StepCount; step++ {
			n, err := store.CompletedCount(cmd.Context(), subject, step)
			if err != nil {
				return err
			}
			cmd.Printf("  %d단계: %d\n", step, n)
		}
		return nil
	},
}

func init() {
	progressToggleCmd.Flags().StringVar(&progressSubject, "subject", "", "roadmap subject the completion belongs to")
	progressToggleCmd.Flags().IntVar(&progressStep, "step", 0, "roadmap step (1-3) the completion belongs to")
	progressCmd.AddCommand(progressListCmd)
	progressCmd.AddCommand(progressToggleCmd)
	progressCmd.AddCommand(progressStatsCmd)
	rootCmd.AddCommand(progressCmd)
}
