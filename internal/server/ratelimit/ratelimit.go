// Package ratelimit provides per-client request throttling using token buckets.
package ratelimit

import (
	"strings"
	"sync"
	"time"
)

// bucket is a token bucket refilled continuously at a fixed rate.
type bucket struct {
	mu         sync.Mutex
	capacity   float64
	refillRate float64 // tokens per second
	tokens     float64
	lastRefill time.Time
}

func newBucket(capacity int, refillRate float64) *bucket {
	return &bucket{
		capacity:   float64(capacity),
		refillRate: refillRate,
		tokens:     float64(capacity),
		lastRefill: time.Now(),
	}
}

// take refills the bucket for elapsed time, then tries to consume one token.
// It reports whether the token was granted, the tokens left, and when the
// bucket will next hold a full token.
func (b *bucket) take() (granted bool, remaining int, nextToken time.Time) {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := time.Now()
	b.tokens = min(b.capacity, b.tokens+now.Sub(b.lastRefill).Seconds()*b.refillRate)
	b.lastRefill = now

	if b.tokens >= 1.0 {
		b.tokens -= 1.0
		granted = true
	}

	remaining = int(b.tokens)
	if b.tokens >= 1.0 {
		nextToken = now
	} else {
		deficit := 1.0 - b.tokens
		nextToken = now.Add(time.Duration(deficit / b.refillRate * float64(time.Second)))
	}
	return granted, remaining, nextToken
}

// Rule limits requests to paths under a given prefix.
type Rule struct {
	PathPrefix string
	Limit      int // requests per Window
	Window     time.Duration
	Burst      int // bucket capacity, defaults to Limit
}

// Config holds limiter configuration.
type Config struct {
	Enabled         bool
	DefaultLimit    int
	DefaultWindow   time.Duration
	CleanupInterval time.Duration
	Rules           []Rule
}

// DefaultConfig returns the production rule set. Resume processing is the
// expensive path (it calls the extraction service), so it gets the tightest
// budget; rating mutations are cheap but stateful; reads fall through to the
// default.
func DefaultConfig() *Config {
	return &Config{
		Enabled:         true,
		DefaultLimit:    300,
		DefaultWindow:   time.Minute,
		CleanupInterval: 5 * time.Minute,
		Rules: []Rule{
			{PathPrefix: "/resumes/process", Limit: 10, Window: time.Minute, Burst: 3},
			{PathPrefix: "/resumes/analyze", Limit: 60, Window: time.Minute, Burst: 10},
			{PathPrefix: "/users/", Limit: 120, Window: time.Minute, Burst: 20},
			{PathPrefix: "/health", Limit: 0}, // unlimited
		},
	}
}

// Info describes the rate limit decision for a request.
type Info struct {
	Allowed    bool
	Limit      int
	Remaining  int
	ResetTime  time.Time
	RetryAfter time.Duration
}

// Limiter throttles requests per client and path rule.
type Limiter struct {
	config *Config

	mu         sync.Mutex
	buckets    map[string]*bucket
	lastAccess map[string]time.Time

	cleanupTicker *time.Ticker
	cleanupStop   chan struct{}
}

// NewLimiter creates a limiter for the given configuration. A nil config
// disables limiting.
func NewLimiter(config *Config) *Limiter {
	if config == nil {
		config = &Config{Enabled: false}
	}

	l := &Limiter{
		config:     config,
		buckets:    make(map[string]*bucket),
		lastAccess: make(map[string]time.Time),
	}

	if config.Enabled && config.CleanupInterval > 0 {
		l.cleanupTicker = time.NewTicker(config.CleanupInterval)
		l.cleanupStop = make(chan struct{})
		go l.cleanupLoop()
	}

	return l
}

// Allow reports whether a request from clientID to path may proceed.
func (l *Limiter) Allow(clientID, path string) (bool, Info) {
	if !l.config.Enabled {
		return true, Info{Allowed: true}
	}

	rule := l.matchRule(path)
	if rule.Limit <= 0 {
		return true, Info{Allowed: true}
	}

	key := clientID + ":" + rule.PathPrefix
	b := l.getBucket(key, rule)

	granted, remaining, nextToken := b.take()

	info := Info{
		Allowed:   granted,
		Limit:     rule.Limit,
		Remaining: remaining,
		ResetTime: nextToken,
	}
	if !granted {
		info.RetryAfter = max(time.Until(nextToken), 0)
	}
	return granted, info
}

// matchRule finds the first rule whose prefix matches the path, falling back
// to the default limit.
func (l *Limiter) matchRule(path string) Rule {
	for _, r := range l.config.Rules {
		if strings.HasPrefix(path, r.PathPrefix) {
			return r
		}
	}
	return Rule{PathPrefix: "", Limit: l.config.DefaultLimit, Window: l.config.DefaultWindow}
}

func (l *Limiter) getBucket(key string, rule Rule) *bucket {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.lastAccess[key] = time.Now()

	if b, ok := l.buckets[key]; ok {
		return b
	}

	capacity := rule.Burst
	if capacity <= 0 {
		capacity = rule.Limit
	}
	b := newBucket(capacity, float64(rule.Limit)/rule.Window.Seconds())
	l.buckets[key] = b
	return b
}

func (l *Limiter) cleanupLoop() {
	for {
		select {
		case <-l.cleanupTicker.C:
			l.evictStale()
		case <-l.cleanupStop:
			return
		}
	}
}

// evictStale drops buckets idle for over an hour.
func (l *Limiter) evictStale() {
	cutoff := time.Now().Add(-time.Hour)

	l.mu.Lock()
	defer l.mu.Unlock()

	for key, last := range l.lastAccess {
		if last.Before(cutoff) {
			delete(l.buckets, key)
			delete(l.lastAccess, key)
		}
	}
}

// Stop halts the background cleanup goroutine.
func (l *Limiter) Stop() {
	if l.cleanupTicker != nil {
		l.cleanupTicker.Stop()
	}
	if l.cleanupStop != nil {
		close(l.cleanupStop)
	}
}
