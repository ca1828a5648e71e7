package domain

import "testing"

func TestNormalizePlate(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{name: "lowercase", input: "b 123 cd", want: "B 123 CD"},
		{name: "surrounding whitespace", input: "  B 123 CD\t", want: "B 123 CD"},
		{name: "already canonical", input: "B 123 CD", want: "B 123 CD"},
		{name: "empty", input: "", want: ""},
		{name: "whitespace only", input: "   ", want: ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := NormalizePlate(tc.input)
			if got != tc.want {
				t.Fatalf("NormalizePlate(%q) = %q, want %q", tc.input, got, tc.want)
			}
			if again := NormalizePlate(got); again != got {
				t.Fatalf("normalization is not idempotent: %q -> %q", got, again)
			}
		})
	}
}

func TestIsExpenseFor(t *testing.T) {
	if IsExpenseFor(nil) {
		t.Fatal("unresolved unit must not be an expense target")
	}
	if IsExpenseFor(&Unit{Plate: "B 1 A", Category: "CUSTOMER"}) {
		t.Fatal("non-owned unit must not be an expense target")
	}
	if !IsExpenseFor(&Unit{Plate: "B 1 A", Category: CategoryBrother}) {
		t.Fatal("owned unit must be an expense target")
	}
}
