package snake

import "testing"

func TestFromMapDefaults(t *testing.T) {
	got := FromMap(nil)
	if got != DefaultConfig() {
		t.Fatalf("FromMap(nil) = %+v, want defaults %+v", got, DefaultConfig())
	}
}

func TestFromMapOverrides(t *testing.T) {
	got := FromMap(map[string]string{"w": "20", "h": "16", "wrap": "true", "len": "2"})
	want := Config{Width: 20, Height: 16, WrapEdges: true, InitialLen: 2, BrailleFriendly: true}
	if got != want {
		t.Fatalf("FromMap = %+v, want %+v", got, want)
	}
}

func TestFromMapIgnoresInvalidValues(t *testing.T) {
	got := FromMap(map[string]string{"w": "-1", "h": "zero", "len": "0", "wrap": "maybe"})
	if got != DefaultConfig() {
		t.Fatalf("FromMap with invalid values = %+v, want defaults", got)
	}
}
