package scenario

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCorpusPasses(t *testing.T) {
	scs, err := LoadDir("testdata")
	if err != nil {
		t.Fatalf("LoadDir(testdata) error: %v", err)
	}
	for _, sc := range scs {
		sc := sc
		t.Run(sc.Name, func(t *testing.T) {
			if err := Run(sc); err != nil {
				t.Errorf("Run(%q) = %v, want pass", sc.Name, err)
			}
		})
	}
}

func TestLoadMergesDirInOrder(t *testing.T) {
	scs, err := LoadDir("testdata")
	if err != nil {
		t.Fatalf("LoadDir error: %v", err)
	}
	// blocks.yaml sorts before indent.yaml.
	if scs[0].Name != "enter adds a unit after an opener" {
		t.Errorf("first scenario = %q, want the blocks file first", scs[0].Name)
	}
	if len(scs) != 13 {
		t.Errorf("loaded %d scenarios, want 13", len(scs))
	}
}

func TestLoadPathFile(t *testing.T) {
	scs, err := LoadPath(filepath.Join("testdata", "indent.yaml"))
	if err != nil {
		t.Fatalf("LoadPath error: %v", err)
	}
	if len(scs) != 7 {
		t.Errorf("loaded %d scenarios, want 7", len(scs))
	}
}

func TestLoadRejectsEmpty(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.yaml")
	if err := os.WriteFile(path, []byte("scenarios: []\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); !errors.Is(err, ErrNoScenarios) {
		t.Errorf("Load(empty) error = %v, want ErrNoScenarios", err)
	}
}

func TestLoadBadYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(path, []byte("scenarios: [\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load(bad yaml) returned nil error")
	}
}

func TestStepEvent(t *testing.T) {
	valid := []string{"Tab", "Shift+Tab", "Enter", "}"}
	for _, spec := range valid {
		if _, err := stepEvent(spec); err != nil {
			t.Errorf("stepEvent(%q) error: %v", spec, err)
		}
	}

	invalid := []string{"a", "Escape", "Ctrl+Tab", "Backspace", ""}
	for _, spec := range invalid {
		if _, err := stepEvent(spec); err == nil {
			t.Errorf("stepEvent(%q) = nil error, want rejection", spec)
		}
	}
}

func TestRunValidation(t *testing.T) {
	tests := []struct {
		name string
		sc   Scenario
	}{
		{"missing name", Scenario{Selection: []int{0, 0}, Steps: []string{"Tab"}}},
		{"no steps", Scenario{Name: "x", Selection: []int{0, 0}}},
		{"bad selection", Scenario{Name: "x", Selection: []int{0}, Steps: []string{"Tab"}}},
		{"bad want selection", Scenario{Name: "x", Selection: []int{0, 0}, Steps: []string{"Tab"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := Run(tt.sc); !errors.Is(err, ErrInvalidScenario) {
				t.Errorf("Run() error = %v, want ErrInvalidScenario", err)
			}
		})
	}
}

func TestRunReportsMismatch(t *testing.T) {
	sc := Scenario{
		Name:      "wrong expectation",
		Buffer:    "a",
		Selection: []int{0, 0},
		Steps:     []string{"Tab"},
		Want:      Want{Buffer: "    a", Selection: []int{4, 4}},
	}
	err := Run(sc)
	if err == nil {
		t.Fatal("Run() = nil, want buffer mismatch")
	}
	if !strings.Contains(err.Error(), "buffer") {
		t.Errorf("error %q does not mention the buffer", err)
	}
}

func TestRunExpectedErrorNotSeen(t *testing.T) {
	sc := Scenario{
		Name:      "no error happens",
		Buffer:    "a",
		Selection: []int{0, 0},
		Steps:     []string{"Tab"},
		Want:      Want{Error: "invalid selection"},
	}
	if err := Run(sc); err == nil {
		t.Error("Run() = nil, want missing-error failure")
	}
}

func TestReport(t *testing.T) {
	results := []Result{
		{Name: "good", Err: nil},
		{Name: "bad", Err: errors.New("boom")},
	}

	var buf bytes.Buffer
	if Report(&buf, results) {
		t.Error("Report() = true with a failure present")
	}
	out := buf.String()
	for _, want := range []string{"ok    good", "FAIL  bad: boom", "2 scenarios, 1 failed"} {
		if !strings.Contains(out, want) {
			t.Errorf("report %q missing %q", out, want)
		}
	}

	var ok bytes.Buffer
	if !Report(&ok, results[:1]) {
		t.Error("Report() = false with no failures")
	}
}
