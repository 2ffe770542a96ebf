package cell

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func kind(c Cell) string {
	return Match(c,
		func(Int) string { return "int" },
		func(Float) string { return "float" },
		func(Text) string { return "text" },
	)
}

func TestRowHoldsMixedCells(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "collections")
	defer teardown()

	row := NewRow(Int(3), Text("blue"), Float(10.12))
	if row.Len() != 3 {
		t.Fatalf("expected 3 cells, have %d", row.Len())
	}
	var kinds, values []string
	for c := range row.All() {
		kinds = append(kinds, kind(c))
		values = append(values, c.String())
	}
	wantKinds := []string{"int", "text", "float"}
	wantValues := []string{"3", "blue", "10.12"}
	for i := range wantKinds {
		if kinds[i] != wantKinds[i] || values[i] != wantValues[i] {
			t.Errorf("cell %d: have %s %q, want %s %q", i, kinds[i], values[i], wantKinds[i], wantValues[i])
		}
	}
}

func TestMatchSumsNumbers(t *testing.T) {
	row := NewRow(Int(3), Text("blue"), Float(0.5))
	var sum float64
	for c := range row.All() {
		sum += Match(c,
			func(i Int) float64 { return float64(i) },
			func(f Float) float64 { return float64(f) },
			func(Text) float64 { return 0 },
		)
	}
	if sum != 3.5 {
		t.Errorf("expected sum 3.5, have %v", sum)
	}
}

func TestMatchRequiresAllCases(t *testing.T) {
	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrMissingCase) {
			t.Fatalf("expected ErrMissingCase, got %v", r)
		}
	}()
	Match[int](Int(1), func(Int) int { return 1 }, nil, func(Text) int { return 0 })
}
