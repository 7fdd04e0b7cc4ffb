package main

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/calev/grind/internal/config"
	"github.com/calev/grind/internal/ui"
	"github.com/calev/grind/tracker"
)

// add
var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a solved problem",
	Args:  cobra.NoArgs,
	RunE:  runAdd,
}

var (
	addDate       string
	addName       string
	addDifficulty string
	addTags       []string
)

// list
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded problems, newest day first",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

var (
	listDate string
	listJSON bool
)

// day
var dayCmd = &cobra.Command{
	Use:   "day [date]",
	Short: "Show the problems solved on one day",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runDay,
}

// edit
var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit a recorded problem",
	Args:  cobra.ExactArgs(1),
	RunE:  runEdit,
}

var (
	editName       string
	editDifficulty string
	editTags       []string
	editClearTags  bool
)

// delete
var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a recorded problem",
	Args:  cobra.ExactArgs(1),
	RunE:  runDelete,
}

var deleteYes bool

// stats
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show aggregate practice totals",
	Args:  cobra.NoArgs,
	RunE:  runStats,
}

// tags
var tagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "Show the tag palette",
	Args:  cobra.NoArgs,
	RunE:  runTags,
}

func init() {
	rootCmd.AddCommand(addCmd, listCmd, dayCmd, editCmd, deleteCmd, statsCmd, tagsCmd)

	addCmd.Flags().StringVar(&addDate, "date", "", "Day the problem was solved (YYYY-MM-DD, default today)")
	addCmd.Flags().StringVar(&addName, "name", "", "Problem name")
	addCmd.Flags().StringVarP(&addDifficulty, "difficulty", "d", "", "Difficulty (easy, medium, hard)")
	addCmd.Flags().StringArrayVarP(&addTags, "tag", "t", nil, "Tag (repeatable)")
	addCmd.MarkFlagRequired("name")
	addCmd.MarkFlagRequired("difficulty")

	listCmd.Flags().StringVar(&listDate, "date", "", "Only show one day (YYYY-MM-DD)")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output as JSON")

	editCmd.Flags().StringVar(&editName, "name", "", "New name")
	editCmd.Flags().StringVarP(&editDifficulty, "difficulty", "d", "", "New difficulty (easy, medium, hard)")
	editCmd.Flags().StringArrayVarP(&editTags, "tag", "t", nil, "Replacement tags (repeatable)")
	editCmd.Flags().BoolVar(&editClearTags, "clear-tags", false, "Remove all tags")

	deleteCmd.Flags().BoolVarP(&deleteYes, "yes", "y", false, "Skip the confirmation prompt")

	addDifficultyFlagAliases(addCmd, editCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	store, b, err := openTrackerStore()
	if err != nil {
		return err
	}
	defer b.Close()

	date := time.Now()
	if addDate != "" {
		date, err = parseDay(addDate)
		if err != nil {
			return err
		}
	}

	difficulty, err := tracker.ParseDifficulty(addDifficulty)
	if err != nil {
		return err
	}

	if _, err := store.Add(date, addName, difficulty, addTags); err != nil {
		return err
	}

	fmt.Println("Problem added successfully.")
	return nil
}

func runList(cmd *cobra.Command, args []string) error {
	store, b, err := openTrackerStore()
	if err != nil {
		return err
	}
	defer b.Close()

	records := store.Records()
	if listDate != "" {
		date, err := parseDay(listDate)
		if err != nil {
			return err
		}
		records = records.FilterByDate(&date)
	}
	records = records.SortedByDateDescending()

	if listJSON {
		data, err := tracker.Encode(records)
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}

	if len(records) == 0 {
		fmt.Println("No problems recorded.")
		return nil
	}

	now := time.Now()
	for i, record := range records {
		if i > 0 {
			fmt.Println()
		}
		counts := tracker.CountsByDifficulty(record.Problems)
		header := fmt.Sprintf("%s (%s)", ui.FormatRelativeDay(record.Date, now),
			formatCounts(counts))
		fmt.Println(header)
		fmt.Print(problemTable(record.Problems))
	}
	return nil
}

func runDay(cmd *cobra.Command, args []string) error {
	store, b, err := openTrackerStore()
	if err != nil {
		return err
	}
	defer b.Close()

	date := time.Now()
	if len(args) == 1 {
		date, err = parseDay(args[0])
		if err != nil {
			return err
		}
	}

	problems := store.Records().ProblemsForDate(date)
	if len(problems) == 0 {
		fmt.Printf("No problems recorded on %s.\n", tracker.DayKey(date))
		return nil
	}

	fmt.Print(problemTable(problems))
	return nil
}

func runEdit(cmd *cobra.Command, args []string) error {
	store, b, err := openTrackerStore()
	if err != nil {
		return err
	}
	defer b.Close()

	problemID := args[0]
	current, _, ok := store.FindProblem(problemID)
	if !ok {
		return fmt.Errorf("no problem with ID %q", problemID)
	}

	// Flags that were not passed leave the field unchanged.
	name := current.Name
	if cmd.Flags().Changed("name") {
		name = editName
	}
	difficulty := current.Difficulty
	if cmd.Flags().Changed("difficulty") {
		difficulty, err = tracker.ParseDifficulty(editDifficulty)
		if err != nil {
			return err
		}
	}
	tags := current.Tags
	switch {
	case editClearTags:
		tags = nil
	case cmd.Flags().Changed("tag"):
		tags = editTags
	}

	edited, err := store.Edit(problemID, name, difficulty, tags)
	if err != nil {
		return err
	}
	if !edited {
		return fmt.Errorf("no problem with ID %q", problemID)
	}

	fmt.Println("Problem updated successfully.")
	return nil
}

func runDelete(cmd *cobra.Command, args []string) error {
	store, b, err := openTrackerStore()
	if err != nil {
		return err
	}
	defer b.Close()

	problemID := args[0]
	problem, _, ok := store.FindProblem(problemID)
	if !ok {
		return fmt.Errorf("no problem with ID %q", problemID)
	}

	if !deleteYes && !confirm(cmd, fmt.Sprintf("Delete %q?", problem.Name)) {
		fmt.Println("Aborted.")
		return nil
	}

	deleted, err := store.Delete(problemID)
	if err != nil {
		return err
	}
	if !deleted {
		return fmt.Errorf("no problem with ID %q", problemID)
	}

	fmt.Println("Problem deleted successfully.")
	return nil
}

func runStats(cmd *cobra.Command, args []string) error {
	store, b, err := openTrackerStore()
	if err != nil {
		return err
	}
	defer b.Close()

	records := store.Records()
	totals := records.Totals()

	fmt.Printf("Total problems: %d\n", totals.Problems)
	fmt.Printf("Days practiced: %d\n", len(records))

	table := ui.NewTable("DIFFICULTY", "COUNT")
	for _, difficulty := range tracker.ValidDifficulties() {
		var count int
		switch difficulty {
		case tracker.DifficultyEasy:
			count = totals.Counts.Easy
		case tracker.DifficultyMedium:
			count = totals.Counts.Medium
		case tracker.DifficultyHard:
			count = totals.Counts.Hard
		}
		table.AddRow(ui.DifficultyBadge(difficulty), strconv.Itoa(count))
	}
	fmt.Print(table.String())
	return nil
}

func runTags(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	for _, tag := range tagPalette(cfg.Tags.Extra) {
		fmt.Println(tag)
	}
	return nil
}

// tagPalette appends configured extra tags to the built-in palette,
// skipping extras the palette already contains.
func tagPalette(extra []string) []string {
	palette := tracker.TagPalette()
	known := make(map[string]bool, len(palette))
	for _, tag := range palette {
		known[tag] = true
	}
	for _, tag := range tracker.NormalizeTags(extra) {
		if known[tag] {
			continue
		}
		palette = append(palette, tag)
	}
	return palette
}

// nameCellWidth caps the NAME and TITLE table columns.
const nameCellWidth = 50

func problemTable(problems []tracker.Problem) string {
	problems = tracker.SortProblemsByDifficulty(problems)
	table := ui.NewTable("ID", "NAME", "DIFFICULTY", "TAGS")
	for _, problem := range problems {
		table.AddRow(
			problem.ID,
			ui.Truncate(problem.Name, nameCellWidth),
			ui.DifficultyBadge(problem.Difficulty),
			strings.Join(problem.Tags, ", "),
		)
	}
	return table.String()
}

func formatCounts(counts tracker.Counts) string {
	return fmt.Sprintf("%d easy, %d medium, %d hard", counts.Easy, counts.Medium, counts.Hard)
}

func confirm(cmd *cobra.Command, prompt string) bool {
	fmt.Printf("%s [y/N]: ", prompt)
	reader := bufio.NewReader(cmd.InOrStdin())
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}
