package test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/pmezard/go-difflib/difflib"

	"github/chapool/humtoken/internal/util"
)

var (
	DefaultSnapshotDirPathAbs = filepath.Join(util.GetProjectRootDir(), "test", ".snapshots")
	UpdateGoldenGlobal        = os.Getenv("TEST_UPDATE_GOLDEN") == "true"
)

type snapshoter struct {
	update   bool
	label    string
	replacer func(s string) string
	location string
}

// Snapshoter compares data against golden files in test/.snapshots.
// A missing golden file is written and the test passes; set
// TEST_UPDATE_GOLDEN=true to rewrite existing ones.
var Snapshoter = snapshoter{
	update:   false,
	label:    "",
	replacer: nil,
	location: DefaultSnapshotDirPathAbs,
}

// Save dumps data with spew and compares it to the snapshot.
func (s snapshoter) Save(t *testing.T, data ...interface{}) {
	t.Helper()

	s.SaveString(t, spew.Sdump(data...))
}

// SaveString compares data to the snapshot.
func (s snapshoter) SaveString(t *testing.T, data string) {
	t.Helper()

	if s.replacer != nil {
		data = s.replacer(data)
	}

	snapshotName := strings.ReplaceAll(t.Name(), "/", "-")
	if len(s.label) > 0 {
		snapshotName += "-" + s.label
	}
	snapshotAbsPath := filepath.Join(s.location, snapshotName+".golden")

	if s.update || UpdateGoldenGlobal {
		writeSnapshot(t, snapshotAbsPath, data)
		return
	}

	existing, err := os.ReadFile(snapshotAbsPath)
	if err != nil {
		if !os.IsNotExist(err) {
			t.Fatalf("Failed to read snapshot %s: %v", snapshotAbsPath, err)
		}

		writeSnapshot(t, snapshotAbsPath, data)
		t.Logf("Snapshot created: %s", snapshotAbsPath)
		return
	}

	if string(existing) == data {
		return
	}

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(existing)),
		B:        difflib.SplitLines(data),
		FromFile: "Expected",
		ToFile:   "Actual",
		Context:  3,
	})
	if err != nil {
		t.Fatalf("Failed to diff snapshot: %v", err)
	}

	t.Errorf("%s\n\nSnapshot %s differs", diff, snapshotAbsPath)
}

// Update forces writing the snapshot.
func (s snapshoter) Update(update bool) snapshoter {
	s.update = update
	return s
}

// Label appends label to the snapshot name, for several snapshots per test.
func (s snapshoter) Label(label string) snapshoter {
	s.label = label
	return s
}

// Replacer rewrites data before comparison, e.g. to strip nondeterministic values.
func (s snapshoter) Replacer(replacer func(s string) string) snapshoter {
	s.replacer = replacer
	return s
}

// Location overrides the snapshot directory.
func (s snapshoter) Location(location string) snapshoter {
	s.location = location
	return s
}

func writeSnapshot(t *testing.T, absPath string, data string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(absPath), 0o755); err != nil {
		t.Fatalf("Failed to create snapshot directory: %v", err)
	}

	if err := os.WriteFile(absPath, []byte(data), 0o600); err != nil {
		t.Fatalf("Failed to write snapshot %s: %v", absPath, err)
	}
}
