package ingest

// Tracker is the per-job set of reservation keys already accepted within the
// current file. Each job execution starts with a fresh tracker, and a single
// job processes its rows sequentially, so no locking is needed.
//
// A key is only recorded after its row passed full validation: an invalid
// early row must not block a later valid row reusing the same key, while two
// valid rows with the same key flag every occurrence after the first.
type Tracker struct {
	seen map[string]struct{}
}

func NewTracker() *Tracker {
	return &Tracker{seen: make(map[string]struct{})}
}

// Seen reports whether the key was already accepted in this file. Empty keys
// are never considered duplicates; they fail validation on their own.
func (t *Tracker) Seen(key string) bool {
	if key == "" {
		return false
	}
	_, ok := t.seen[key]
	return ok
}

// Record marks a key as accepted.
func (t *Tracker) Record(key string) {
	if key == "" {
		return
	}
	t.seen[key] = struct{}{}
}
