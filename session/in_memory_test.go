package session

import (
	"iter"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/dialogmesh/core"
)

var _ Store = (*InMemoryStore)(nil)

type emptyDomain struct{}

func (emptyDomain) InitialPlan() []core.PlanItem                        { return nil }
func (emptyDomain) Answer(core.Question) (core.Belief, bool)            { return core.Belief{}, false }
func (emptyDomain) IsRelevantAnswer(core.Question, core.Proposition) bool { return false }
func (emptyDomain) Support(core.Proposition) iter.Seq[core.Proposition] {
	return func(func(core.Proposition) bool) {}
}

func TestInMemoryStore_CreateGetDelete(t *testing.T) {
	store := NewInMemoryStore()

	sess, err := store.Create(emptyDomain{})
	require.NoError(t, err)
	require.NotEmpty(t, sess.ID)
	require.NotNil(t, sess.State)

	got, ok := store.Get(sess.ID)
	require.True(t, ok)
	assert.Same(t, sess, got)

	_, ok = store.Get("missing")
	assert.False(t, ok)

	store.Delete(sess.ID)
	_, ok = store.Get(sess.ID)
	assert.False(t, ok)
}

func TestInMemoryStore_DistinctIDs(t *testing.T) {
	store := NewInMemoryStore()
	a, _ := store.Create(emptyDomain{})
	b, _ := store.Create(emptyDomain{})
	assert.NotEqual(t, a.ID, b.ID)
}

func TestSession_Transcript(t *testing.T) {
	sess := New(emptyDomain{})
	sess.AppendUser("why?", "Ask(Why())")
	sess.AppendSystem("Because.", "Assert(...)")

	transcript := sess.Transcript()
	require.Len(t, transcript, 2)
	assert.Equal(t, "user", transcript[0].Speaker)
	assert.Equal(t, "system", transcript[1].Speaker)
	assert.Equal(t, 2, sess.Turns())
	assert.False(t, sess.Updated.Before(sess.Created))

	// The returned slice is a copy.
	transcript[0].Utterance = "mutated"
	assert.Equal(t, "why?", sess.Transcript()[0].Utterance)
}

func TestInMemoryStore_ConcurrentAccess(t *testing.T) {
	store := NewInMemoryStore()
	sess, _ := store.Create(emptyDomain{})

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sess.AppendUser("hello", "")
			store.Get(sess.ID)
		}()
	}
	wg.Wait()
	assert.Equal(t, 16, sess.Turns())
}
