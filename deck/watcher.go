package deck

import "context"

// Watcher observes a deck source and emits its raw bytes on a channel.
// Implementations must emit the current contents immediately so the
// initial deck can be loaded.
type Watcher interface {
	// Watch begins observing the source. The returned channel is closed
	// when the context is canceled or the source fails for good.
	Watch(ctx context.Context) (<-chan []byte, error)
}
