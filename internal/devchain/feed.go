package devchain

import (
	"context"
	"sync"
)

// feed delivers every sent value, in order, to every live subscriber. A slow
// subscriber queues up instead of blocking the sender.
type feed[T any] struct {
	mu     sync.Mutex
	subs   map[*subscription[T]]struct{}
	closed bool
}

type subscription[T any] struct {
	mu     sync.Mutex
	queue  []T
	signal chan struct{}
	done   chan struct{}
}

func newFeed[T any]() *feed[T] {
	return &feed[T]{subs: make(map[*subscription[T]]struct{})}
}

// Subscribe returns a channel that receives every value sent after the call. It
// is closed once ctx is done or the feed closes.
func (f *feed[T]) Subscribe(ctx context.Context) <-chan T {
	out := make(chan T)
	sub := &subscription[T]{
		signal: make(chan struct{}, 1),
		done:   make(chan struct{}),
	}

	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		close(out)
		return out
	}
	f.subs[sub] = struct{}{}
	f.mu.Unlock()

	go func() {
		defer close(out)
		defer f.unsubscribe(sub)
		for {
			for {
				v, ok := sub.pop()
				if !ok {
					break
				}
				select {
				case out <- v:
				case <-ctx.Done():
					return
				}
			}
			select {
			case <-ctx.Done():
				return
			case <-sub.signal:
			case <-sub.done:
				// deliver what was queued before the close
				if sub.empty() {
					return
				}
			}
		}
	}()
	return out
}

func (f *feed[T]) unsubscribe(sub *subscription[T]) {
	f.mu.Lock()
	delete(f.subs, sub)
	f.mu.Unlock()
}

func (f *feed[T]) Send(v T) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return
	}
	for sub := range f.subs {
		sub.push(v)
	}
}

// Close ends every subscription after its queued values are delivered.
func (f *feed[T]) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return
	}
	f.closed = true
	for sub := range f.subs {
		close(sub.done)
	}
}

func (s *subscription[T]) push(v T) {
	s.mu.Lock()
	s.queue = append(s.queue, v)
	s.mu.Unlock()
	select {
	case s.signal <- struct{}{}:
	default:
	}
}

func (s *subscription[T]) pop() (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var zero T
	if len(s.queue) == 0 {
		return zero, false
	}
	v := s.queue[0]
	s.queue[0] = zero
	s.queue = s.queue[1:]
	return v, true
}

func (s *subscription[T]) empty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.queue) == 0
}
