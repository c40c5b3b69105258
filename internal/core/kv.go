package core

import "strconv"

// KeyValueStore is the persistence port games use for small string values
// such as a best score. Get reports ok=false for a missing key.
type KeyValueStore interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
}

// MaxStore is implemented by stores that can raise an integer slot in one
// step, so concurrent writers never lower it.
type MaxStore interface {
	// SetMax writes value under key unless the stored integer is already
	// greater or equal. It returns the value left in the slot.
	SetMax(key string, value int) (int, error)
}

// SetMax raises the integer under key to value and returns the value left
// in the slot. Stores without MaxStore get a read-compare-write; a missing
// or malformed stored value counts as 0.
func SetMax(store KeyValueStore, key string, value int) (int, error) {
	if m, ok := store.(MaxStore); ok {
		return m.SetMax(key, value)
	}

	raw, ok, err := store.Get(key)
	if err != nil {
		return 0, err
	}
	if ok {
		if stored, err := strconv.Atoi(raw); err == nil && stored >= value {
			return stored, nil
		}
	}
	if err := store.Set(key, strconv.Itoa(value)); err != nil {
		return 0, err
	}
	return value, nil
}

// Namespaced returns a store that prefixes every key with prefix and a colon.
// An empty prefix returns store unchanged.
func Namespaced(store KeyValueStore, prefix string) KeyValueStore {
	if store == nil || prefix == "" {
		return store
	}
	return namespacedStore{store: store, prefix: prefix + ":"}
}

type namespacedStore struct {
	store  KeyValueStore
	prefix string
}

func (n namespacedStore) Get(key string) (string, bool, error) {
	return n.store.Get(n.prefix + key)
}

func (n namespacedStore) Set(key, value string) error {
	return n.store.Set(n.prefix+key, value)
}

func (n namespacedStore) SetMax(key string, value int) (int, error) {
	return SetMax(n.store, n.prefix+key, value)
}
