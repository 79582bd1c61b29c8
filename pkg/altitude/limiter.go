package altitude

import (
	"sync"

	"golang.org/x/time/rate"
)

// maxAlertKeys bounds the alert buckets kept before idle ones are dropped.
const maxAlertKeys = 256

// RateLimiterStore hands out one token bucket per key. The servers key it by
// client host, the engine keys it by alert title and body through AllowAlert.
type RateLimiterStore struct {
	limiters     map[string]*rate.Limiter
	mu           sync.Mutex
	defaultRate  rate.Limit
	defaultBurst int
}

func NewRateLimiterStore(defaultRate rate.Limit, defaultBurst int) *RateLimiterStore {
	return &RateLimiterStore{
		limiters:     make(map[string]*rate.Limiter),
		defaultRate:  defaultRate,
		defaultBurst: defaultBurst,
	}
}

func (s *RateLimiterStore) GetLimiter(key string) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.getLocked(key)
}

func (s *RateLimiterStore) getLocked(key string) *rate.Limiter {
	limiter, exists := s.limiters[key]
	if !exists {
		limiter = rate.NewLimiter(s.defaultRate, s.defaultBurst)
		s.limiters[key] = limiter
	}
	return limiter
}

func (s *RateLimiterStore) SetLimiter(key string, keyRate rate.Limit, keyBurst int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.limiters[key] = rate.NewLimiter(keyRate, keyBurst)
}

// Allow is a nil-safe shortcut: a nil store never throttles.
func (s *RateLimiterStore) Allow(key string) bool {
	if s == nil {
		return true
	}
	return s.GetLimiter(key).Allow()
}

// AllowAlert throttles repeats of one alert. Urgent alerts always pass, and
// alerts whose body differs (another rate, another score) get their own
// bucket, so only identical repeats are held back.
func (s *RateLimiterStore) AllowAlert(title string, body string, urgent bool) bool {
	if s == nil || urgent {
		return true
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	key := alertKey(title, body)
	if _, exists := s.limiters[key]; !exists && len(s.limiters) >= maxAlertKeys {
		s.pruneIdleLocked()
	}
	return s.getLocked(key).Allow()
}

func alertKey(title string, body string) string {
	return title + "\n" + body
}

// pruneIdleLocked drops buckets that have refilled, they throttle nothing.
func (s *RateLimiterStore) pruneIdleLocked() {
	for key, limiter := range s.limiters {
		if limiter.Tokens() >= float64(limiter.Burst()) {
			delete(s.limiters, key)
		}
	}
}
