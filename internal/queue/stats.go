package queue

// Stats holds queue counters. Counts are cumulative since New.
type Stats struct {
	// Pushed counts events written to the queue.
	Pushed uint64
	// Popped counts events returned by NextEvent.
	Popped uint64
	// Dropped counts pushes refused under OverflowReject.
	Dropped uint64
	// Evicted counts unread events discarded under OverflowDropOldest.
	Evicted uint64
	// Ignored counts callbacks whose action code matched no event kind.
	Ignored uint64
	// HighWater is the largest number of unread events seen at once.
	HighWater int

	// Queued and Capacity describe the queue when the snapshot was taken.
	Queued   int
	Capacity int
}

// Lost returns the number of events that never reached a reader.
func (s Stats) Lost() uint64 {
	return s.Dropped + s.Evicted + s.Ignored
}
