package memory

import (
	"testing"
	"time"

	"member-portal-be/pkg/store"

	"github.com/stretchr/testify/assert"
)

func TestGetMissingSession(t *testing.T) {
	r := NewContextRepository(time.Minute, time.Minute, time.Minute)
	assert.Nil(t, r.Get("unknown"))
}

func TestSetAndGet(t *testing.T) {
	r := NewContextRepository(time.Minute, time.Minute, time.Minute)

	r.Set("s1", &store.ConversationContext{LastCategory: "registration"})

	got := r.Get("s1")
	assert.NotNil(t, got)
	assert.Equal(t, "s1", got.SessionID)
	assert.Equal(t, "registration", got.LastCategory)
	assert.False(t, got.UpdatedAt.IsZero())
}

func TestIdleExpiry(t *testing.T) {
	r := NewContextRepository(30*time.Millisecond, time.Minute, time.Minute)

	r.Set("s1", &store.ConversationContext{LastCategory: "contact"})
	assert.NotNil(t, r.Get("s1"))

	time.Sleep(60 * time.Millisecond)
	assert.Nil(t, r.Get("s1"), "context must expire after the idle TTL")
}

func TestUpdateWithFaqTruncatesAndOverwrites(t *testing.T) {
	r := NewContextRepository(time.Minute, time.Minute, time.Minute)

	r.UpdateWithFaq("s1", "modification", 7,
		[]string{"k1", "k2", "k3", "k4", "k5", "k6", "k7"},
		[]string{"i1", "i2", "i3", "i4"},
	)

	c := r.Get("s1")
	assert.NotNil(t, c)
	assert.Equal(t, "modification", c.LastCategory)
	assert.Equal(t, uint(7), c.LastFaqID)
	assert.Equal(t, []string{"k1", "k2", "k3", "k4", "k5"}, c.LastKeywords)
	assert.Equal(t, []string{"i1", "i2", "i3"}, c.Intents)

	// A later match replaces the continuity fields outright.
	r.UpdateWithFaq("s1", "contact", 9, []string{"โทร"}, []string{"contact"})

	c = r.Get("s1")
	assert.Equal(t, "contact", c.LastCategory)
	assert.Equal(t, uint(9), c.LastFaqID)
	assert.Equal(t, []string{"โทร"}, c.LastKeywords)
}

func TestPendingChoicesLifecycle(t *testing.T) {
	r := NewContextRepository(time.Minute, time.Minute, time.Minute)

	r.UpdateWithFaq("s1", "modification", 7, []string{"อีเมล"}, []string{"modification"})
	r.SetPendingChoices("s1", []store.PendingChoice{
		{FaqID: 1, Index: 0, Question: "q1"},
		{FaqID: 2, Index: 1, Question: "q2"},
	}, "แก้ไขอีเมล")

	pending, original := r.GetPendingChoices("s1")
	assert.Len(t, pending, 2)
	assert.Equal(t, "แก้ไขอีเมล", original)

	// Clearing the menu must not disturb continuity fields.
	r.ClearPendingChoices("s1")

	pending, original = r.GetPendingChoices("s1")
	assert.Nil(t, pending)
	assert.Empty(t, original)

	c := r.Get("s1")
	assert.NotNil(t, c)
	assert.Equal(t, "modification", c.LastCategory)
	assert.Equal(t, uint(7), c.LastFaqID)
}

func TestPendingChoicesOverwritten(t *testing.T) {
	r := NewContextRepository(time.Minute, time.Minute, time.Minute)

	r.SetPendingChoices("s1", []store.PendingChoice{{FaqID: 1}}, "คำถามแรก")
	r.SetPendingChoices("s1", []store.PendingChoice{{FaqID: 5}, {FaqID: 6}}, "คำถามที่สอง")

	pending, original := r.GetPendingChoices("s1")
	assert.Len(t, pending, 2)
	assert.Equal(t, uint(5), pending[0].FaqID)
	assert.Equal(t, "คำถามที่สอง", original)
}

func TestPendingChoicesExpireBeforeContext(t *testing.T) {
	r := NewContextRepository(time.Minute, 5*time.Minute, time.Minute)

	base := time.Now()
	r.now = func() time.Time { return base }

	r.UpdateWithFaq("s1", "modification", 7, nil, nil)
	r.SetPendingChoices("s1", []store.PendingChoice{{FaqID: 1}}, "แก้ไขอีเมล")

	// Just inside the choice window.
	r.now = func() time.Time { return base.Add(4 * time.Minute) }
	pending, _ := r.GetPendingChoices("s1")
	assert.Len(t, pending, 1)

	// Past the window: the stale menu is dropped, the session context stays.
	r.now = func() time.Time { return base.Add(6 * time.Minute) }
	pending, _ = r.GetPendingChoices("s1")
	assert.Nil(t, pending)

	c := r.Get("s1")
	assert.NotNil(t, c)
	assert.Equal(t, "modification", c.LastCategory)
}

func TestDelete(t *testing.T) {
	r := NewContextRepository(time.Minute, time.Minute, time.Minute)

	r.Set("s1", &store.ConversationContext{})
	r.Delete("s1")
	assert.Nil(t, r.Get("s1"))
}
