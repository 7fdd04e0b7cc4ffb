package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/calev/grind/internal/markdown"
	"github.com/calev/grind/internal/ui"
	"github.com/calev/grind/tracker"
)

const checklistNotesWidth = 80

var checklistCmd = &cobra.Command{
	Use:   "checklist",
	Short: "Manage problem checklists",
}

// checklist create
var checklistCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new checklist",
	Args:  cobra.NoArgs,
	RunE:  runChecklistCreate,
}

var (
	checklistCreateTitle  string
	checklistCreateEasy   int
	checklistCreateMedium int
	checklistCreateHard   int
)

// checklist list
var checklistListCmd = &cobra.Command{
	Use:   "list",
	Short: "List checklists with their progress",
	Args:  cobra.NoArgs,
	RunE:  runChecklistList,
}

// checklist show
var checklistShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a checklist's items, progress, and notes",
	Args:  cobra.ExactArgs(1),
	RunE:  runChecklistShow,
}

// checklist toggle
var checklistToggleCmd = &cobra.Command{
	Use:   "toggle <checklist-id> <item-id>",
	Short: "Toggle an item's completion",
	Args:  cobra.ExactArgs(2),
	RunE:  runChecklistToggle,
}

// checklist notes
var checklistNotesCmd = &cobra.Command{
	Use:   "notes <checklist-id> <item-id> [notes]",
	Short: "Set an item's notes (pass - to read from stdin)",
	Args:  cobra.RangeArgs(2, 3),
	RunE:  runChecklistNotes,
}

// checklist delete
var checklistDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a checklist",
	Args:  cobra.ExactArgs(1),
	RunE:  runChecklistDelete,
}

var checklistDeleteYes bool

func init() {
	rootCmd.AddCommand(checklistCmd)
	checklistCmd.AddCommand(checklistCreateCmd, checklistListCmd, checklistShowCmd,
		checklistToggleCmd, checklistNotesCmd, checklistDeleteCmd)

	checklistCreateCmd.Flags().StringVar(&checklistCreateTitle, "title", "", "Checklist title")
	checklistCreateCmd.Flags().IntVar(&checklistCreateEasy, "easy", 0, "Number of easy slots")
	checklistCreateCmd.Flags().IntVar(&checklistCreateMedium, "medium", 0, "Number of medium slots")
	checklistCreateCmd.Flags().IntVar(&checklistCreateHard, "hard", 0, "Number of hard slots")
	checklistCreateCmd.MarkFlagRequired("title")

	checklistDeleteCmd.Flags().BoolVarP(&checklistDeleteYes, "yes", "y", false, "Skip the confirmation prompt")
}

func runChecklistCreate(cmd *cobra.Command, args []string) error {
	store, b, err := openChecklistStore()
	if err != nil {
		return err
	}
	defer b.Close()

	created, err := store.Create(checklistCreateTitle, checklistCreateEasy,
		checklistCreateMedium, checklistCreateHard)
	if err != nil {
		return err
	}

	fmt.Printf("Created checklist %s: %s (%d items)\n", created.ID, created.Title, len(created.Items))
	return nil
}

func runChecklistList(cmd *cobra.Command, args []string) error {
	store, b, err := openChecklistStore()
	if err != nil {
		return err
	}
	defer b.Close()

	checklists := store.List()
	if len(checklists) == 0 {
		fmt.Println("No checklists.")
		return nil
	}

	table := ui.NewTable("ID", "TITLE", "PROGRESS")
	for _, c := range checklists {
		progress := c.Progress()
		table.AddRow(
			c.ID,
			ui.Truncate(c.Title, nameCellWidth),
			fmt.Sprintf("%d/%d (%d%%)", progress.Completed, progress.Total, progress.Percent()),
		)
	}
	fmt.Print(table.String())
	return nil
}

func runChecklistShow(cmd *cobra.Command, args []string) error {
	store, b, err := openChecklistStore()
	if err != nil {
		return err
	}
	defer b.Close()

	c, ok := store.Get(args[0])
	if !ok {
		return fmt.Errorf("no checklist with ID %q", args[0])
	}

	progress := c.Progress()
	fmt.Printf("%s  %s\n", c.Title, ui.Muted(c.ID))
	fmt.Printf("%s %d%% (%d/%d)\n\n", ui.ProgressBar(progress.Percent(), 20),
		progress.Percent(), progress.Completed, progress.Total)

	buckets := c.ProgressByDifficulty()
	for _, difficulty := range tracker.ValidDifficulties() {
		items := c.ItemsByDifficulty(difficulty)
		if len(items) == 0 {
			continue
		}
		bucket := buckets[difficulty]
		fmt.Printf("%s (%d/%d)\n", ui.DifficultyBadge(difficulty), bucket.Completed, bucket.Total)
		for _, item := range items {
			box := "[ ]"
			if item.Completed {
				box = "[x]"
			}
			fmt.Printf("  %s %s  %s\n", box, item.Title, ui.Muted(item.ID))
			if rendered := markdown.Render(checklistNotesWidth, 6, []byte(item.Notes)); rendered != nil {
				fmt.Println(string(rendered))
			}
		}
		fmt.Println()
	}
	return nil
}

func runChecklistToggle(cmd *cobra.Command, args []string) error {
	store, b, err := openChecklistStore()
	if err != nil {
		return err
	}
	defer b.Close()

	changed, err := store.Toggle(args[0], args[1])
	if err != nil {
		return err
	}
	if !changed {
		return fmt.Errorf("no item %q in checklist %q", args[1], args[0])
	}

	fmt.Println("Item toggled.")
	return nil
}

func runChecklistNotes(cmd *cobra.Command, args []string) error {
	store, b, err := openChecklistStore()
	if err != nil {
		return err
	}
	defer b.Close()

	var notes string
	if len(args) == 3 {
		notes = args[2]
	}
	if notes == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("read notes from stdin: %w", err)
		}
		notes = string(data)
	}

	changed, err := store.SetNotes(args[0], args[1], notes)
	if err != nil {
		return err
	}
	if !changed {
		return fmt.Errorf("no item %q in checklist %q", args[1], args[0])
	}

	fmt.Println("Notes updated.")
	return nil
}

func runChecklistDelete(cmd *cobra.Command, args []string) error {
	store, b, err := openChecklistStore()
	if err != nil {
		return err
	}
	defer b.Close()

	c, ok := store.Get(args[0])
	if !ok {
		return fmt.Errorf("no checklist with ID %q", args[0])
	}

	if !checklistDeleteYes && !confirm(cmd, fmt.Sprintf("Delete checklist %q?", c.Title)) {
		fmt.Println("Aborted.")
		return nil
	}

	deleted, err := store.Delete(args[0])
	if err != nil {
		return err
	}
	if !deleted {
		return fmt.Errorf("no checklist with ID %q", args[0])
	}

	fmt.Println("Checklist deleted successfully.")
	return nil
}
