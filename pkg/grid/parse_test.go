package grid

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	errs "github.com/matzehuels/gridwords/pkg/errors"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  [][]string
	}{
		{"compact", "ca\nts\n", [][]string{{"c", "a"}, {"t", "s"}}},
		{"spaces", "c a\nt s", [][]string{{"c", "a"}, {"t", "s"}}},
		{"pipes", "c | a\nt | s\n", [][]string{{"c", "a"}, {"t", "s"}}},
		{"commas", "c,a\nt,s", [][]string{{"c", "a"}, {"t", "s"}}},
		{"blank lines", "\n  ca\n\nts\n\n", [][]string{{"c", "a"}, {"t", "s"}}},
		{"multi-letter cells", "qu a\nt s", [][]string{{"qu", "a"}, {"t", "s"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := Parse(strings.NewReader(tt.input))
			if err != nil {
				t.Fatalf("Parse() error: %v", err)
			}
			var got [][]string
			for r := range g.Rows() {
				got = append(got, g.Row(r))
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("rows mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParse_RoundTrip(t *testing.T) {
	g := MustBuild([][]string{{"a", "b", "c"}, {"d", "e", "f"}})
	back, err := Parse(strings.NewReader(g.String()))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if diff := cmp.Diff(g.Letters(), back.Letters()); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
	if back.Rows() != 2 || back.Cols() != 3 {
		t.Errorf("dimensions = %dx%d, want 2x3", back.Rows(), back.Cols())
	}
}

func TestParse_Errors(t *testing.T) {
	for _, input := range []string{"", "\n\n", "ab\nc\n"} {
		_, err := Parse(strings.NewReader(input))
		if !errs.Is(err, errs.ErrCodeInvalidGrid) {
			t.Errorf("Parse(%q) error = %v, want %s", input, err, errs.ErrCodeInvalidGrid)
		}
	}
}

func TestRandom(t *testing.T) {
	g, err := Random(3, 5, "xyz", rand.New(rand.NewPCG(7, 7)))
	if err != nil {
		t.Fatalf("Random() error: %v", err)
	}
	if g.Rows() != 3 || g.Cols() != 5 {
		t.Fatalf("dimensions = %dx%d, want 3x5", g.Rows(), g.Cols())
	}
	for _, l := range g.Letters() {
		if !strings.Contains("xyz", l) {
			t.Errorf("letter %q not drawn from pool", l)
		}
	}
}

func TestRandom_Deterministic(t *testing.T) {
	a, _ := Random(4, 4, "", rand.New(rand.NewPCG(42, 42)))
	b, _ := Random(4, 4, "", rand.New(rand.NewPCG(42, 42)))
	if a.String() != b.String() {
		t.Error("same seed should produce the same grid")
	}
}

func TestRandom_Clamp(t *testing.T) {
	g, err := Random(50, 2, "", rand.New(rand.NewPCG(1, 1)))
	if err != nil {
		t.Fatalf("Random() error: %v", err)
	}
	if g.Rows() != errs.MaxGridSide {
		t.Errorf("Rows() = %d, want %d", g.Rows(), errs.MaxGridSide)
	}

	if _, err := Random(0, 3, "", rand.New(rand.NewPCG(1, 1))); !errs.Is(err, errs.ErrCodeInvalidGrid) {
		t.Errorf("Random(0, 3) error = %v, want %s", err, errs.ErrCodeInvalidGrid)
	}
}
