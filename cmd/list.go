package cmd

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/inovacc/stele/internal/cli"
	"github.com/inovacc/stele/internal/model"
	"github.com/spf13/cobra"
)

var (
	listPlain    bool
	listUnsynced bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Browse the record registry",
	Long:  `Display the registry in an interactive list, newest first. Use arrow keys to navigate, / to filter and Enter to show a record.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		records, err := db.Load()
		if err != nil {
			return err
		}

		if listPlain {
			return printPlainList(records, listUnsynced)
		}

		m := cli.NewRecordList(records, listUnsynced)

		p := tea.NewProgram(m)

		finalModel, err := p.Run()
		if err != nil {
			return err
		}

		listModel := finalModel.(cli.RecordListModel)
		if selected := listModel.GetSelectedRecord(); selected != nil {
			printRecord(*selected)
		}

		return nil
	},
}

func printPlainList(records []model.GraveRecord, unsyncedOnly bool) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)

	_, _ = fmt.Fprintln(w, "N°\tAISLE\tCONDITION\tPEOPLE\tSYNCED")

	for _, rec := range records {
		if unsyncedOnly && rec.IsSynced {
			continue
		}

		names := make([]string, 0, len(rec.People))
		for _, p := range rec.People {
			names = append(names, p.Name)
		}

		synced := "no"
		if rec.IsSynced {
			synced = "yes"
		}

		_, _ = fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
			rec.SteleNumber, rec.AisleNumber, rec.Condition, strings.Join(names, ", "), synced)
	}

	return w.Flush()
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVar(&listPlain, "plain", false, "Print a plain table instead of the interactive list")
	listCmd.Flags().BoolVar(&listUnsynced, "unsynced", false, "Show only records not yet synced")
}
