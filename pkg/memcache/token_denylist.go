package mem

import (
	"sync"
	"time"
)

type TokenDenylist interface {
	// Revoke marks a token as logged out until its natural expiry.
	Revoke(token string, ttl time.Duration)

	IsRevoked(token string) bool
}

type DenylistedTokens struct {
	mu   sync.RWMutex
	data map[string]time.Time
}

func NewDenylistedTokens() *DenylistedTokens {
	return &DenylistedTokens{
		data: make(map[string]time.Time),
	}
}

func (d *DenylistedTokens) Revoke(token string, ttl time.Duration) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.data[token] = time.Now().Add(ttl)
}

func (d *DenylistedTokens) IsRevoked(token string) bool {
	d.mu.RLock()
	expiry, ok := d.data[token]
	d.mu.RUnlock()

	if !ok {
		return false
	}
	if time.Now().After(expiry) {
		d.mu.Lock()
		delete(d.data, token)
		d.mu.Unlock()
		return false
	}
	return true
}
