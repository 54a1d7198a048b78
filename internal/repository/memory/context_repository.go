package memory

import (
	"sync"
	"time"

	"member-portal-be/pkg/store"

	"github.com/patrickmn/go-cache"
)

// Default windows for conversational state. The idle TTL bounds how long a
// session keeps its last-matched category/keywords; the choice TTL bounds how
// long a disambiguation menu stays answerable.
const (
	DefaultContextTTL = 10 * time.Minute
	DefaultChoiceTTL  = 5 * time.Minute
	DefaultSweep      = 5 * time.Minute
)

// ContextRepository holds per-session conversation context in memory with
// idle expiry. Get self-checks expiry, so the background sweep (go-cache's
// janitor) is memory hygiene only.
//
// Composite read-modify-write operations take the repository mutex so the
// sweep or a concurrent turn never interleaves inside an update. Turns for
// the same session id are assumed serialized by the caller.
type ContextRepository struct {
	cache     *cache.Cache
	mu        sync.Mutex
	ttl       time.Duration
	choiceTTL time.Duration
	now       func() time.Time
}

func NewContextRepository(ttl, choiceTTL, sweep time.Duration) *ContextRepository {
	if ttl <= 0 {
		ttl = DefaultContextTTL
	}
	if choiceTTL <= 0 {
		choiceTTL = DefaultChoiceTTL
	}
	if sweep <= 0 {
		sweep = DefaultSweep
	}
	return &ContextRepository{
		cache:     cache.New(ttl, sweep),
		ttl:       ttl,
		choiceTTL: choiceTTL,
		now:       time.Now,
	}
}

// Get returns the context for a session, or nil if none exists or it has
// expired. A miss is a normal first-turn state, not an error.
func (r *ContextRepository) Get(sessionID string) *store.ConversationContext {
	if x, found := r.cache.Get(sessionID); found {
		return x.(*store.ConversationContext)
	}
	return nil
}

// Set upserts the context with a fresh idle expiry.
func (r *ContextRepository) Set(sessionID string, c *store.ConversationContext) {
	c.SessionID = sessionID
	c.UpdatedAt = r.now()
	r.cache.Set(sessionID, c, cache.DefaultExpiration)
}

// UpdateWithFaq overwrites the continuity fields after a matched answer:
// last category, up to 5 keywords, up to 3 intents and the matched FAQ id,
// refreshing the idle expiry.
func (r *ContextRepository) UpdateWithFaq(sessionID, category string, faqID uint, keywords, intents []string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c := r.Get(sessionID)
	if c == nil {
		c = &store.ConversationContext{}
	}

	c.LastCategory = category
	c.LastFaqID = faqID
	c.LastKeywords = firstN(keywords, 5)
	c.Intents = firstN(intents, 3)
	r.Set(sessionID, c)
}

// SetPendingChoices merges a disambiguation menu into the existing context,
// preserving continuity fields. A previous menu is overwritten.
func (r *ContextRepository) SetPendingChoices(sessionID string, choices []store.PendingChoice, originalQuestion string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c := r.Get(sessionID)
	if c == nil {
		c = &store.ConversationContext{}
	}

	c.PendingChoices = choices
	c.OriginalQuestion = originalQuestion
	c.ChoiceExpiry = r.now().Add(r.choiceTTL)
	r.Set(sessionID, c)
}

// GetPendingChoices returns the pending menu and the question that produced
// it, or nil once the choice window has elapsed (clearing the stale menu).
func (r *ContextRepository) GetPendingChoices(sessionID string) ([]store.PendingChoice, string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c := r.Get(sessionID)
	if c == nil || len(c.PendingChoices) == 0 {
		return nil, ""
	}
	if r.now().After(c.ChoiceExpiry) {
		r.clearPendingChoicesLocked(sessionID, c)
		return nil, ""
	}
	return c.PendingChoices, c.OriginalQuestion
}

// ClearPendingChoices removes only the choice-related fields, leaving the
// continuity fields untouched.
func (r *ContextRepository) ClearPendingChoices(sessionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c := r.Get(sessionID)
	if c == nil {
		return
	}
	r.clearPendingChoicesLocked(sessionID, c)
}

func (r *ContextRepository) clearPendingChoicesLocked(sessionID string, c *store.ConversationContext) {
	c.PendingChoices = nil
	c.OriginalQuestion = ""
	c.ChoiceExpiry = time.Time{}
	r.Set(sessionID, c)
}

// Delete evicts a session outright.
func (r *ContextRepository) Delete(sessionID string) {
	r.cache.Delete(sessionID)
}

func firstN(items []string, n int) []string {
	if len(items) <= n {
		return items
	}
	return items[:n]
}
