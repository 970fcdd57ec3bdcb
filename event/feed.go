package event

import "sync"

// Feed fans changes out to live subscribers inside this process.
type Feed struct {
	mu   sync.Mutex
	subs map[chan Change]string
}

func NewFeed() *Feed {
	return &Feed{subs: make(map[chan Change]string)}
}

// Live is the feed Emit writes to.
var Live = NewFeed()

// Subscribe returns changes for entity, or for every entity when entity is empty.
// The returned func unsubscribes and closes the channel.
func (f *Feed) Subscribe(entity string) (<-chan Change, func()) {
	ch := make(chan Change, 16)
	f.mu.Lock()
	f.subs[ch] = entity
	f.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			f.mu.Lock()
			delete(f.subs, ch)
			f.mu.Unlock()
			close(ch)
		})
	}
}

// Publish never blocks; a subscriber with a full buffer misses the change.
func (f *Feed) Publish(c Change) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for ch, entity := range f.subs {
		if entity != "" && entity != c.Entity {
			continue
		}
		select {
		case ch <- c:
		default:
		}
	}
}

func (f *Feed) Subscribers() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.subs)
}
