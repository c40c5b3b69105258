package core

import (
	"strconv"
	"testing"
)

type mapStore map[string]string

func (m mapStore) Get(key string) (string, bool, error) {
	v, ok := m[key]
	return v, ok, nil
}

func (m mapStore) Set(key, value string) error {
	m[key] = value
	return nil
}

func TestNamespaced(t *testing.T) {
	base := mapStore{}

	ns := Namespaced(base, "classic")
	if err := ns.Set("highscore", "42"); err != nil {
		t.Fatal(err)
	}
	if base["classic:highscore"] != "42" {
		t.Errorf("underlying store = %v, want classic:highscore=42", base)
	}

	v, ok, err := ns.Get("highscore")
	if err != nil || !ok || v != "42" {
		t.Errorf("Get = (%q, %v, %v), want (42, true, nil)", v, ok, err)
	}

	if _, ok, _ := base.Get("highscore"); ok {
		t.Error("namespaced write leaked into the bare key")
	}

	if Namespaced(base, "") == nil {
		t.Error("empty prefix should return the store itself")
	}
	if Namespaced(nil, "x") != nil {
		t.Error("nil store should stay nil")
	}
}

// maxMapStore counts SetMax calls to show the fast path is taken.
type maxMapStore struct {
	mapStore
	calls int
}

func (m *maxMapStore) SetMax(key string, value int) (int, error) {
	m.calls++
	return SetMax(m.mapStore, key, value)
}

func TestSetMax(t *testing.T) {
	tests := []struct {
		name   string
		stored string
		value  int
		want   string
	}{
		{"missing", "", 50, "50"},
		{"raise", "10", 50, "50"},
		{"keep higher", "100", 50, "100"},
		{"equal", "50", 50, "50"},
		{"malformed", "abc", 7, "7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := mapStore{}
			if tt.stored != "" {
				store["best"] = tt.stored
			}
			got, err := SetMax(store, "best", tt.value)
			if err != nil {
				t.Fatalf("SetMax: %v", err)
			}
			if store["best"] != tt.want {
				t.Errorf("stored = %q, want %q", store["best"], tt.want)
			}
			if strconv.Itoa(got) != tt.want {
				t.Errorf("SetMax returned %d, want %s", got, tt.want)
			}
		})
	}
}

func TestNamespacedSetMaxForwards(t *testing.T) {
	base := &maxMapStore{mapStore: mapStore{"classic:highscore": "300"}}
	ns := Namespaced(base, "classic")

	got, err := SetMax(ns, "highscore", 120)
	if err != nil {
		t.Fatalf("SetMax: %v", err)
	}
	if got != 300 || base.mapStore["classic:highscore"] != "300" {
		t.Errorf("SetMax = %d, stored %q; want 300 kept", got, base.mapStore["classic:highscore"])
	}
	if base.calls != 1 {
		t.Errorf("underlying SetMax calls = %d, want 1", base.calls)
	}
}
