package harness

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/roach88/soldict/internal/lang"
)

// Snapshot captures the observable output of a scenario execution.
// The config hash is left out so that goldens survive hashing changes.
type Snapshot struct {
	ScenarioName string
	Result       *Result
}

// toCanonicalMap converts a Snapshot to a map[string]any for canonical JSON
// serialization, which only accepts maps, slices and primitives.
func (s *Snapshot) toCanonicalMap() map[string]any {
	derivations := make([]any, len(s.Result.Derivations))
	for i, d := range s.Result.Derivations {
		derivations[i] = map[string]any{
			"word":     d.Word,
			"phonemic": d.Phonemic,
			"phonetic": d.Phonetic,
			"steps":    anySlice(d.Steps),
		}
	}

	sentences := make([]any, len(s.Result.Sentences))
	for i, st := range s.Result.Sentences {
		sentences[i] = map[string]any{
			"input":    st.Input,
			"phonemic": st.Phonemic,
			"phonetic": st.Phonetic,
		}
	}

	lookups := make([]any, len(s.Result.Lookups))
	for i, l := range s.Result.Lookups {
		lookups[i] = map[string]any{
			"query":     l.Query,
			"terminals": anySlice(l.Terminals),
			"affixes":   anySlice(l.Affixes),
		}
	}

	return map[string]any{
		"scenario_name": s.ScenarioName,
		"derivations":   derivations,
		"sentences":     sentences,
		"lookups":       lookups,
	}
}

func anySlice(ss []string) []any {
	out := make([]any, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}

// RunWithGolden executes a scenario and compares its snapshot against
// testdata/golden/{scenario.Name}.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
//
// Returns error if scenario execution fails.
// Test failure (via goldie) occurs if the snapshot doesn't match.
func RunWithGolden(t *testing.T, scenario *Scenario) (*Result, error) {
	t.Helper()

	result, err := Run(scenario)
	if err != nil {
		return nil, err
	}
	if err := AssertGolden(t, scenario.Name, result); err != nil {
		return nil, err
	}
	return result, nil
}

// AssertGolden compares an existing result against a golden file without
// re-running the scenario.
func AssertGolden(t *testing.T, scenarioName string, result *Result) error {
	t.Helper()

	data, err := MarshalSnapshot(scenarioName, result)
	if err != nil {
		return err
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, scenarioName, data)

	return nil
}

// MarshalSnapshot renders a result as canonical JSON, the golden file format.
func MarshalSnapshot(scenarioName string, result *Result) ([]byte, error) {
	snapshot := Snapshot{ScenarioName: scenarioName, Result: result}
	return lang.MarshalCanonical(snapshot.toCanonicalMap())
}

// GoldenCheck compares each passing scenario against dir/{name}.golden.
// With update set it rewrites the file instead.
func GoldenCheck(dir string, update bool) Check {
	return func(scenario *Scenario, result *Result) []string {
		data, err := MarshalSnapshot(scenario.Name, result)
		if err != nil {
			return []string{fmt.Sprintf("snapshot: %v", err)}
		}

		path := filepath.Join(dir, scenario.Name+".golden")
		if update {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return []string{fmt.Sprintf("update golden: %v", err)}
			}
			if err := os.WriteFile(path, data, 0o644); err != nil {
				return []string{fmt.Sprintf("update golden: %v", err)}
			}
			return nil
		}

		want, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				return []string{fmt.Sprintf("golden file not found: %s", path)}
			}
			return []string{fmt.Sprintf("read golden: %v", err)}
		}
		if !bytes.Equal(bytes.TrimSpace(want), bytes.TrimSpace(data)) {
			return []string{fmt.Sprintf("golden mismatch: %s\n  want: %s\n  got:  %s", path, want, data)}
		}
		return nil
	}
}
