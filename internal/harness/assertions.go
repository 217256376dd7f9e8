package harness

import (
	"fmt"
	"slices"
	"strings"
)

// AssertionError is returned when an assertion fails.
// It includes detailed context to help debug the failure.
type AssertionError struct {
	Type     string   // Assertion type for categorization
	Expected string   // Human-readable expected outcome
	Actual   string   // Human-readable actual outcome
	Steps    []string // Derivation steps for context, if any
}

// Error implements the error interface.
func (e *AssertionError) Error() string {
	var buf strings.Builder

	fmt.Fprintf(&buf, "Assertion failed: %s\n", e.Type)
	fmt.Fprintf(&buf, "  Expected: %s\n", e.Expected)
	fmt.Fprintf(&buf, "  Actual: %s\n", e.Actual)

	if len(e.Steps) > 0 {
		fmt.Fprintf(&buf, "\nDerivation:\n")
		for i, s := range e.Steps {
			fmt.Fprintf(&buf, "  [%d] %s\n", i+1, s)
		}
	}

	return buf.String()
}

func notDerived(typ, word string) error {
	return &AssertionError{
		Type:     typ,
		Expected: fmt.Sprintf("derivation of %q", word),
		Actual:   "word was not derived",
	}
}

// assertDerivationContains checks that a form is one of the word's steps.
func assertDerivationContains(result *Result, a Assertion) error {
	d, ok := result.Derivation(a.Word)
	if !ok {
		return notDerived(AssertDerivationContains, a.Word)
	}
	if slices.Contains(d.Steps, a.Form) {
		return nil
	}
	return &AssertionError{
		Type:     AssertDerivationContains,
		Expected: fmt.Sprintf("%s passes through %s", a.Word, a.Form),
		Actual:   "form not found in derivation",
		Steps:    d.Steps,
	}
}

// assertDerivationOrder checks that forms appear in the given order.
// Forms need not be consecutive.
func assertDerivationOrder(result *Result, a Assertion) error {
	d, ok := result.Derivation(a.Word)
	if !ok {
		return notDerived(AssertDerivationOrder, a.Word)
	}

	// Step 1: Find first position of each expected form
	positions := make([]int, len(a.Forms))
	for i, f := range a.Forms {
		positions[i] = slices.Index(d.Steps, f)
		if positions[i] < 0 {
			return &AssertionError{
				Type:     AssertDerivationOrder,
				Expected: fmt.Sprintf("all forms present: %v", a.Forms),
				Actual:   fmt.Sprintf("missing form: %s", f),
				Steps:    d.Steps,
			}
		}
	}

	// Step 2: Verify order
	for i := 1; i < len(positions); i++ {
		if positions[i-1] >= positions[i] {
			return &AssertionError{
				Type:     AssertDerivationOrder,
				Expected: fmt.Sprintf("forms in order: %v", a.Forms),
				Actual: fmt.Sprintf("%s (step %d) should be before %s (step %d)",
					a.Forms[i-1], positions[i-1]+1, a.Forms[i], positions[i]+1),
				Steps: d.Steps,
			}
		}
	}

	return nil
}

// assertDerivationCount checks the number of steps, initial state included.
func assertDerivationCount(result *Result, a Assertion) error {
	d, ok := result.Derivation(a.Word)
	if !ok {
		return notDerived(AssertDerivationCount, a.Word)
	}
	if len(d.Steps) != a.Count {
		return &AssertionError{
			Type:     AssertDerivationCount,
			Expected: fmt.Sprintf("%d steps for %s", a.Count, a.Word),
			Actual:   fmt.Sprintf("%d steps", len(d.Steps)),
			Steps:    d.Steps,
		}
	}
	return nil
}

// assertLookupCount checks how many entries a lookup mentions.
func assertLookupCount(result *Result, a Assertion) error {
	l, ok := result.Lookup(a.Query)
	if !ok {
		return &AssertionError{
			Type:     AssertLookupCount,
			Expected: fmt.Sprintf("lookup of %q", a.Query),
			Actual:   "query was not looked up",
		}
	}
	if l.Entries != a.Count {
		return &AssertionError{
			Type:     AssertLookupCount,
			Expected: fmt.Sprintf("%d entries for %s", a.Count, a.Query),
			Actual:   fmt.Sprintf("%d entries", l.Entries),
		}
	}
	return nil
}

// EvaluateAssertions evaluates all assertions against the result.
// Returns a slice of error messages for failed assertions.
func EvaluateAssertions(result *Result, assertions []Assertion) []string {
	var errors []string

	for i, assertion := range assertions {
		var err error

		switch assertion.Type {
		case AssertDerivationContains:
			err = assertDerivationContains(result, assertion)
		case AssertDerivationOrder:
			err = assertDerivationOrder(result, assertion)
		case AssertDerivationCount:
			err = assertDerivationCount(result, assertion)
		case AssertLookupCount:
			err = assertLookupCount(result, assertion)
		default:
			err = fmt.Errorf("assertion[%d]: unknown assertion type %q", i, assertion.Type)
		}

		if err != nil {
			errors = append(errors, err.Error())
		}
	}

	return errors
}
