package suggest

import "sync"

// Per-submission locks serialize concurrent decisions on the same id, so a
// double-press cannot pass the existence check twice and publish twice.
// Entries are reference-counted and dropped once the last holder releases.
var (
	locksMu sync.Mutex
	locks   = make(map[int64]*submissionLock)
)

type submissionLock struct {
	mu   sync.Mutex
	refs int
}

func lockSubmission(id int64) (unlock func()) {
	locksMu.Lock()
	l, ok := locks[id]
	if !ok {
		l = &submissionLock{}
		locks[id] = l
	}
	l.refs++
	locksMu.Unlock()

	l.mu.Lock()
	return func() {
		l.mu.Unlock()

		locksMu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(locks, id)
		}
		locksMu.Unlock()
	}
}
