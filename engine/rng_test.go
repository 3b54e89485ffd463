package engine

import "testing"

func TestRandRangeWithinBounds(t *testing.T) {
	seed := NewSeed(1)
	for i := 0; i < 200; i++ {
		var v uint32
		v, seed = RandRange(seed, 3, 9)
		if v < 3 || v > 9 {
			t.Fatalf("RandRange(3,9) = %d, want in [3,9]", v)
		}
	}
}

func TestRandRangeDeterministic(t *testing.T) {
	a, b := NewSeed(7), NewSeed(7)
	for i := 0; i < 20; i++ {
		var va, vb uint32
		va, a = RandRange(a, 0, 99)
		vb, b = RandRange(b, 0, 99)
		if va != vb {
			t.Fatalf("same seed diverged at step %d: %d != %d", i, va, vb)
		}
	}
}

func TestShuffleIsPermutation(t *testing.T) {
	list := []Role{RoleDuke, RoleDuke, RoleAssassin, RoleCaptain, RoleAmbassador, RoleContessa, RoleContessa}
	seed := NewSeed(42)
	shuffled, _ := Shuffle(seed, list)

	if len(shuffled) != len(list) {
		t.Fatalf("shuffled length = %d, want %d", len(shuffled), len(list))
	}

	want := map[Role]int{}
	for _, r := range list {
		want[r]++
	}
	got := map[Role]int{}
	for _, r := range shuffled {
		got[r]++
	}
	for r, n := range want {
		if got[r] != n {
			t.Errorf("role %q: got %d copies, want %d", r, got[r], n)
		}
	}
}

func TestShuffleDeterministic(t *testing.T) {
	list := []Role{RoleDuke, RoleAssassin, RoleCaptain, RoleAmbassador, RoleContessa}
	a, _ := Shuffle(NewSeed(99), list)
	b, _ := Shuffle(NewSeed(99), list)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("same seed produced different shuffles at index %d", i)
		}
	}
}

func TestShuffleEmptyList(t *testing.T) {
	out, seed := Shuffle(NewSeed(1), nil)
	if len(out) != 0 {
		t.Fatalf("shuffling an empty list produced %v", out)
	}
	_ = seed
}
