// Package testsupport wires testscript environments and helper commands
// for CLI tests.
package testsupport

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/rogpeppe/go-internal/testscript"

	"github.com/calev/grind/checklist"
	"github.com/calev/grind/tracker"
)

// SetupScriptEnv configures common environment variables for testscript:
// an isolated home and data directory, with styled output disabled.
func SetupScriptEnv(env *testscript.Env) error {
	homeDir := filepath.Join(env.WorkDir, "home")
	dataDir := filepath.Join(homeDir, ".local", "share", "grind")
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return err
	}

	env.Setenv("HOME", homeDir)
	env.Setenv("GRIND_DATA_DIR", dataDir)
	env.Setenv("NO_COLOR", "1")
	return nil
}

// CmdEnvSet stores the trimmed contents of a file in an env var.
func CmdEnvSet(ts *testscript.TestScript, neg bool, args []string) {
	if neg {
		ts.Fatalf("envset does not support negation")
	}
	if len(args) != 2 {
		ts.Fatalf("usage: envset VAR FILE")
	}

	value := strings.TrimSpace(ts.ReadFile(args[1]))
	ts.Setenv(args[0], value)
}

// CmdProblemID finds a problem by name in a stored data file and stores
// its ID in an env var.
func CmdProblemID(ts *testscript.TestScript, neg bool, args []string) {
	if neg {
		ts.Fatalf("problemid does not support negation")
	}
	if len(args) != 3 {
		ts.Fatalf("usage: problemid FILE NAME VAR")
	}

	records, _, err := tracker.Decode([]byte(ts.ReadFile(args[0])))
	if err != nil {
		ts.Fatalf("parse records: %v", err)
	}

	name := args[1]
	for _, record := range records {
		for _, problem := range record.Problems {
			if problem.Name == name {
				ts.Setenv(args[2], problem.ID)
				return
			}
		}
	}

	ts.Fatalf("problem named %q not found", name)
}

// CmdChecklistID finds a checklist by title in a stored data file and
// stores its ID in an env var.
func CmdChecklistID(ts *testscript.TestScript, neg bool, args []string) {
	if neg {
		ts.Fatalf("checklistid does not support negation")
	}
	if len(args) != 3 {
		ts.Fatalf("usage: checklistid FILE TITLE VAR")
	}

	checklists := readChecklists(ts, args[0])
	title := args[1]
	for _, c := range checklists {
		if c.Title == title {
			ts.Setenv(args[2], c.ID)
			return
		}
	}

	ts.Fatalf("checklist titled %q not found", title)
}

// CmdItemID finds a checklist item by checklist title and item title and
// stores the item's ID in an env var.
func CmdItemID(ts *testscript.TestScript, neg bool, args []string) {
	if neg {
		ts.Fatalf("itemid does not support negation")
	}
	if len(args) != 4 {
		ts.Fatalf("usage: itemid FILE CHECKLIST ITEM VAR")
	}

	checklists := readChecklists(ts, args[0])
	for _, c := range checklists {
		if c.Title != args[1] {
			continue
		}
		for _, item := range c.Items {
			if item.Title == args[2] {
				ts.Setenv(args[3], item.ID)
				return
			}
		}
		ts.Fatalf("item titled %q not found in checklist %q", args[2], args[1])
	}

	ts.Fatalf("checklist titled %q not found", args[1])
}

func readChecklists(ts *testscript.TestScript, file string) []checklist.Checklist {
	checklists, _, err := checklist.Decode([]byte(ts.ReadFile(file)))
	if err != nil {
		ts.Fatalf("parse checklists: %v", err)
	}
	return checklists
}
