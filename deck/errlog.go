package deck

import "sync"

// errorLog keeps the most recent deck failures, oldest first. A nil log
// records nothing.
type errorLog struct {
	mu    sync.Mutex
	limit int
	errs  []error
}

func newErrorLog(limit int) *errorLog {
	if limit <= 0 {
		return nil
	}
	return &errorLog{limit: limit, errs: make([]error, 0, limit)}
}

func (l *errorLog) record(err error) {
	if l == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	if len(l.errs) == l.limit {
		copy(l.errs, l.errs[1:])
		l.errs = l.errs[:l.limit-1]
	}
	l.errs = append(l.errs, err)
}

func (l *errorLog) reset() {
	if l == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	clear(l.errs)
	l.errs = l.errs[:0]
}

func (l *errorLog) snapshot() []error {
	if l == nil {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.errs) == 0 {
		return nil
	}
	out := make([]error, len(l.errs))
	copy(out, l.errs)
	return out
}
