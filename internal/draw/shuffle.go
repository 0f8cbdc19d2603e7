package draw

import (
	"math/rand"
	"sync"
	"time"
)

// ShufflerConfig configures the default shuffler
type ShufflerConfig struct {
	// Optional seed for reproducible draws
	Seed int64
}

// randShuffler is a Fisher-Yates shuffler safe for concurrent use
type randShuffler struct {
	mu     sync.Mutex
	random *rand.Rand
}

// NewShuffler creates a shuffler seeded from cfg, or from the clock when no seed is set
func NewShuffler(cfg *ShufflerConfig) *randShuffler {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	return &randShuffler{
		random: rand.New(rand.NewSource(seed)),
	}
}

// Shuffle permutes n elements uniformly at random
func (s *randShuffler) Shuffle(n int, swap func(i, j int)) {
	if n < 2 {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.random.Shuffle(n, swap)
}
