package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jerrychoi/bookroad/internal/match"
	"github.com/jerrychoi/bookroad/internal/model"
	"github.com/jerrychoi/bookroad/internal/roadmap"
)

var roadmapCmd = &cobra.Command{
	Use:   "roadmap [subject]",
	Short: "Reconcile a subject's curated roadmap against the live catalog",
	Long:  "Matches every curated entry for the subject against Aladin search results and mines the bestseller listing for related extended reading, printed step by step. With no argument, lists the available subjects.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return listSubjects(cmd)
		}

		subject, err := model.ParseSubject(args[0])
		if err != nil {
			return err
		}

		api, cleanup, err := newCatalogClient()
		if err != nil {
			return err
		}
		defer cleanup()

		pipeline := roadmap.NewPipeline(match.NewEngine(api), api,
			roadmap.WithScanLimits(
				cfg.Roadmap.BestsellerPages,
				cfg.Roadmap.PageSize,
				cfg.Roadmap.ExtendedLimit,
				cfg.Roadmap.PerStepLimit,
			))
		snap, err := pipeline.Refresh(cmd.Context(), subject)
		if err != nil {
			return err
		}

		printSnapshot(cmd, snap)
		return nil
	},
}

func listSubjects(cmd *cobra.Command) error {
	var era model.Era
	for _, info := range model.AllSubjects() {
		if info.Era != era {
			era = info.Era
			cmd.Printf("\n%s\n", era)
		}
		cmd.Printf("  %-14s %s — %s\n", info.ID, info.Name, info.Blurb)
	}
	return nil
}

func printSnapshot(cmd *cobra.Command, snap *model.Snapshot) {
	cmd.Printf("%s 읽기 로드맵\n", snap.Subject.Name())

	for step := 0; step < model.StepCount; step++ {
		cmd.Printf("\n[%d단계]\n", step+1)

		for _, r := range snap.Curated[step] {
			marker := " "
			if r.Matched != nil {
				marker = "*"
			}
			line := fmt.Sprintf("%s %s (%s) — %s", marker, r.Title(), r.Author(), r.Curated.Role)
			if isbn := r.ISBN13(); isbn != "" {
				line += " [" + isbn + "]"
			}
			cmd.Println(line)
		}

		if len(snap.Extended[step]) > 0 {
			cmd.Println("  확장 읽기:")
			for _, b := range snap.Extended[step] {
				cmd.Printf("  - %s (%s)\n", b.Title, b.Author)
			}
		}
	}
}

func init() {
	rootCmd.AddCommand(roadmapCmd)
}
