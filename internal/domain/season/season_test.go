package season

import "testing"

func TestResolve_KnownKeysPassThrough(t *testing.T) {
	for _, key := range Known() {
		if got := Resolve(key, S2024); got != key {
			t.Fatalf("Resolve(%q) = %q, want pass-through", key, got)
		}
	}
	if got := Resolve(AllTime, S2024); got != AllTime {
		t.Fatalf("Resolve(AllTime) = %q, want AllTime", got)
	}
}

func TestResolve_UnknownKeyFallsBack(t *testing.T) {
	if got := Resolve("1999/2000", S2024); got != S2024 {
		t.Fatalf("Resolve(unknown) = %q, want fallback %q", got, S2024)
	}
	if got := Resolve("", S2021); got != S2021 {
		t.Fatalf("Resolve(empty) = %q, want fallback %q", got, S2021)
	}
}

func TestFileToken(t *testing.T) {
	if got := S2017.FileToken(); got != "2017_2018" {
		t.Fatalf("FileToken() = %q, want 2017_2018", got)
	}
}

func TestKnown_ReturnsCopy(t *testing.T) {
	first := Known()
	first[0] = "mutated"
	if second := Known(); second[0] != S2017 {
		t.Fatalf("Known() shares backing array; got %q", second[0])
	}
}
