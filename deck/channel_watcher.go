package deck

import (
	"bytes"
	"context"
)

// ChannelWatcher adapts a byte channel into a Watcher. Handy in tests and
// for decks produced in memory.
type ChannelWatcher struct {
	ch   <-chan []byte
	sync bool
}

// NewChannelWatcher forwards decks from ch through an internal goroutine.
// Blank payloads and repeats of the previously forwarded deck are dropped,
// so a producer that re-sends an unchanged deck does not trigger a reload.
func NewChannelWatcher(ch <-chan []byte) *ChannelWatcher {
	return &ChannelWatcher{ch: ch}
}

// NewSyncChannelWatcher hands ch back directly, unfiltered. Pair it with
// Loader.SyncMode for deterministic tests.
func NewSyncChannelWatcher(ch <-chan []byte) *ChannelWatcher {
	return &ChannelWatcher{ch: ch, sync: true}
}

// Watch returns a channel that emits decks from the wrapped channel.
func (w *ChannelWatcher) Watch(ctx context.Context) (<-chan []byte, error) {
	if w.sync {
		return w.ch, nil
	}

	out := make(chan []byte)
	go func() {
		defer close(out)
		var last []byte
		for {
			select {
			case <-ctx.Done():
				return
			case raw, ok := <-w.ch:
				if !ok {
					return
				}
				if len(bytes.TrimSpace(raw)) == 0 {
					continue
				}
				if last != nil && bytes.Equal(raw, last) {
					continue
				}
				last = bytes.Clone(raw)
				select {
				case out <- raw:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out, nil
}
