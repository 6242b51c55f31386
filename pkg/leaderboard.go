package pkg

import (
	"sort"
	"sync"
	"time"
)

const DefaultLeaderboardSize = 100

type Entry struct {
	Name    string
	Score   int
	Lines   int
	Seconds int
	At      time.Time
}

// Leaderboard keeps the best entries ordered by score, then lines, then the
// time they were submitted
type Leaderboard struct {
	mu       sync.RWMutex
	entries  []Entry
	capacity int
}

func NewLeaderboard(capacity int) *Leaderboard {
	if capacity <= 0 {
		capacity = DefaultLeaderboardSize
	}
	return &Leaderboard{capacity: capacity}
}

func better(a, b Entry) bool {
	if a.Score != b.Score {
		return a.Score > b.Score
	}
	if a.Lines != b.Lines {
		return a.Lines > b.Lines
	}
	return a.At.Before(b.At)
}

// Add inserts e and returns its 1-based rank, or 0 if it did not fit
func (lb *Leaderboard) Add(e Entry) int {
	lb.mu.Lock()
	defer lb.mu.Unlock()

	i := sort.Search(len(lb.entries), func(i int) bool {
		return better(e, lb.entries[i])
	})
	if i >= lb.capacity {
		return 0
	}

	lb.entries = append(lb.entries, Entry{})
	copy(lb.entries[i+1:], lb.entries[i:])
	lb.entries[i] = e

	if len(lb.entries) > lb.capacity {
		lb.entries = lb.entries[:lb.capacity]
	}
	return i + 1
}

// Top returns a copy of the first n entries
func (lb *Leaderboard) Top(n int) []Entry {
	lb.mu.RLock()
	defer lb.mu.RUnlock()

	if n <= 0 || n > len(lb.entries) {
		n = len(lb.entries)
	}
	top := make([]Entry, n)
	copy(top, lb.entries[:n])
	return top
}

func (lb *Leaderboard) Len() int {
	lb.mu.RLock()
	defer lb.mu.RUnlock()

	return len(lb.entries)
}
