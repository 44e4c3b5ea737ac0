package main

import (
	"errors"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/ngoccc0/dreamland-engine-sub007/internal/journal"
)

var journalLimit int

var journalCmd = &cobra.Command{
	Use:   "journal",
	Short: "List recent narrations from the journal",
	RunE:  runJournal,
}

func init() {
	rootCmd.AddCommand(journalCmd)
	journalCmd.Flags().IntVar(&journalLimit, "limit", 20, "maximum entries to list")
}

func runJournal(cmd *cobra.Command, args []string) error {
	if flagJournal == "" {
		return errors.New("no journal configured: pass --journal or set NARRATOR_JOURNAL")
	}

	j, err := journal.Open(flagJournal)
	if err != nil {
		return err
	}
	defer j.Close()

	entries, err := j.Recent(journalLimit)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Println(metaStyle.Render("journal is empty"))
		return nil
	}

	for _, e := range entries {
		fmt.Println(headerStyle.Render(fmt.Sprintf("%s · %s · %s",
			humanize.Time(e.CreatedAt), e.Kind, e.Terrain)))
		fmt.Println(proseStyle.Render(e.Text))
		fmt.Println()
	}
	return nil
}
