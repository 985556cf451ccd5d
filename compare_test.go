package hush

import (
	"bytes"
	"hash/maphash"
	"slices"
	"strings"
	"testing"
)

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b string
	}{
		{"same", "token", "token"},
		{"different", "token", "other"},
		{"empty", "", ""},
		{"empty vs value", "", "x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want := tt.a == tt.b
			if got := Equal(From(tt.a), From(tt.b)); got != want {
				t.Errorf("Equal(%q, %q) = %v, want %v", tt.a, tt.b, got, want)
			}
			if got := From(tt.a) == From(tt.b); got != want {
				t.Errorf("From(%q) == From(%q) = %v, want %v", tt.a, tt.b, got, want)
			}
		})
	}
}

func TestEqualFunc(t *testing.T) {
	a := From([]byte("key"))
	b := From([]byte("key"))
	c := From([]byte("other"))

	if !EqualFunc(a, b, bytes.Equal) {
		t.Error("EqualFunc() should report equal byte slices")
	}
	if EqualFunc(a, c, bytes.Equal) {
		t.Error("EqualFunc() should report different byte slices")
	}
}

func TestCompare(t *testing.T) {
	values := []int{-3, 0, 1, 1, 7}

	for _, a := range values {
		for _, b := range values {
			var want int
			switch {
			case a < b:
				want = -1
			case a > b:
				want = 1
			}
			if got := Compare(From(a), From(b)); got != want {
				t.Errorf("Compare(%d, %d) = %d, want %d", a, b, got, want)
			}
			if got := Less(From(a), From(b)); got != (a < b) {
				t.Errorf("Less(%d, %d) = %v, want %v", a, b, got, a < b)
			}
		}
	}
}

func TestCompareFunc_Sort(t *testing.T) {
	secrets := []Secret[string]{From("charlie"), From("alpha"), From("bravo")}

	slices.SortFunc(secrets, func(a, b Secret[string]) int {
		return CompareFunc(a, b, strings.Compare)
	})

	want := []string{"alpha", "bravo", "charlie"}
	for i, s := range secrets {
		if s.Inner() != want[i] {
			t.Errorf("secrets[%d] = %q, want %q", i, s.Inner(), want[i])
		}
	}
}

func TestHash(t *testing.T) {
	seed := maphash.MakeSeed()

	if Hash(seed, From("a")) != Hash(seed, From("a")) {
		t.Error("equal secrets should hash equally")
	}

	if Hash(seed, From("a")) != maphash.Comparable(seed, "a") {
		t.Error("Hash() should equal the hash of the plaintext")
	}

	if Hash(seed, From(42)) != maphash.Comparable(seed, 42) {
		t.Error("Hash() should equal the hash of the plaintext")
	}
}

func TestMapKey(t *testing.T) {
	m := map[Secret[string]]int{
		From("a"): 1,
		From("b"): 2,
	}

	if got := m[From("a")]; got != 1 {
		t.Errorf("m[From(a)] = %d, want 1", got)
	}

	m[From("a")] = 3
	if len(m) != 2 {
		t.Errorf("len(m) = %d, want 2", len(m))
	}
	if got := m[From("a")]; got != 3 {
		t.Errorf("m[From(a)] = %d, want 3", got)
	}
}
