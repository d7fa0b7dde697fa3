package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"petplay/internal/achievement"
	"petplay/internal/config"
	"petplay/internal/pet"
	"petplay/internal/storage"
)

// testClock pins pet and achievement time to a mutable instant.
type testClock struct {
	now time.Time
}

func newTestClock(t *testing.T) *testClock {
	t.Helper()
	c := &testClock{now: time.Date(2024, 12, 1, 12, 0, 0, 0, time.UTC)}
	oldPet := pet.TimeNow
	oldAch := achievement.TimeNow
	pet.TimeNow = func() time.Time { return c.now }
	achievement.TimeNow = func() time.Time { return c.now }
	t.Cleanup(func() {
		pet.TimeNow = oldPet
		achievement.TimeNow = oldAch
	})
	return c
}

func (c *testClock) advance(d time.Duration) { c.now = c.now.Add(d) }

// scriptRand feeds a fixed sequence to the shared random source, repeating
// the last value once exhausted.
func scriptRand(t *testing.T, vals ...float64) {
	t.Helper()
	old := pet.RandFloat64
	i := 0
	pet.RandFloat64 = func() float64 {
		v := vals[i]
		if i < len(vals)-1 {
			i++
		}
		return v
	}
	t.Cleanup(func() { pet.RandFloat64 = old })
}

func newTestStore(t *testing.T) (*Store, *storage.MemStore) {
	t.Helper()
	mem := storage.NewMemStore()
	tracker := achievement.NewTracker(mem)
	return NewStore(mem, config.Default(), tracker), mem
}

func TestNewStoreStartsFresh(t *testing.T) {
	newTestClock(t)
	s, _ := newTestStore(t)

	assert.Equal(t, 200, s.Coins())
	assert.Empty(t, s.Snapshot().Pets)
	assert.NotNil(t, s.Snapshot().MiniGameScores)
}

func TestNewStoreRestoresSavedGame(t *testing.T) {
	newTestClock(t)
	mem := storage.NewMemStore()
	tracker := achievement.NewTracker(mem)
	s := NewStore(mem, config.Default(), tracker)

	p, ok := s.AddPet("fox")
	require.True(t, ok)
	s.AddCoins(75)

	restored := NewStore(mem, config.Default(), achievement.NewTracker(mem))
	st := restored.Snapshot()
	require.Len(t, st.Pets, 1)
	assert.Equal(t, p.ID, st.Pets[0].ID)
	assert.Equal(t, p.ID, st.ActivePetID)
	assert.Equal(t, 275, restored.Coins())
	assert.Equal(t, []string{"fox"}, st.UnlockedSpecies)
}

func TestNewStoreCorruptDocumentStartsFresh(t *testing.T) {
	newTestClock(t)
	mem := storage.NewMemStore()
	require.NoError(t, mem.Set(StorageKey, "{not json"))

	s := NewStore(mem, config.Default(), nil)
	assert.Equal(t, 200, s.Coins())
	assert.Empty(t, s.Snapshot().Pets)
}

func TestCoinsOperations(t *testing.T) {
	newTestClock(t)
	s, _ := newTestStore(t)

	s.AddCoins(50)
	assert.Equal(t, 250, s.Coins())
	s.AddCoins(0)
	s.AddCoins(-10)
	assert.Equal(t, 250, s.Coins())

	assert.True(t, s.SpendCoins(250))
	assert.Equal(t, 0, s.Coins())
	assert.False(t, s.SpendCoins(1))
	assert.Equal(t, 0, s.Coins())
}

func TestAddPetUnknownSpecies(t *testing.T) {
	newTestClock(t)
	s, _ := newTestStore(t)

	_, ok := s.AddPet("gryphon")
	assert.False(t, ok)
	assert.Empty(t, s.Snapshot().Pets)
}

func TestFirstPetBecomesActive(t *testing.T) {
	newTestClock(t)
	s, _ := newTestStore(t)

	first, ok := s.AddPet("fox")
	require.True(t, ok)
	second, ok := s.AddPet("blob")
	require.True(t, ok)

	active, ok := s.ActivePet()
	require.True(t, ok)
	assert.Equal(t, first.ID, active.ID)

	require.True(t, s.SetActivePet(second.ID))
	active, _ = s.ActivePet()
	assert.Equal(t, second.ID, active.ID)

	assert.False(t, s.SetActivePet("nope"))
}

func TestDuplicateSpeciesUnlockedOnce(t *testing.T) {
	newTestClock(t)
	s, _ := newTestStore(t)

	s.AddPet("fox")
	s.AddPet("fox")
	assert.Equal(t, []string{"fox"}, s.Snapshot().UnlockedSpecies)
	assert.Len(t, s.Snapshot().Pets, 2)
}

func TestTickDecayCommitsOnlyOnChange(t *testing.T) {
	clock := newTestClock(t)
	s, _ := newTestStore(t)
	s.AddPet("fox")

	// Nothing elapsed: no-op.
	assert.False(t, s.TickDecay())

	clock.advance(2 * time.Hour)
	assert.True(t, s.TickDecay())

	p, _ := s.ActivePet()
	assert.Equal(t, 70.0, p.Stats.Hunger)
	assert.Equal(t, 74.0, p.Stats.Happiness)

	// Immediately again: under the churn guard.
	assert.False(t, s.TickDecay())
}

func TestSnapshotDoesNotShareTimestamps(t *testing.T) {
	newTestClock(t)
	s, _ := newTestStore(t)
	require.NotNil(t, s.ClaimDailyStreak())
	s.RecordMiniGame("catch", 3, 10)

	st := s.Snapshot()
	require.NotNil(t, st.LastStreakClaim)
	assert.NotSame(t, s.state.LastStreakClaim, st.LastStreakClaim)
	assert.Equal(t, *s.state.LastStreakClaim, *st.LastStreakClaim)
	assert.NotSame(t, s.state.LastDailyBonus, st.LastDailyBonus)

	live := s.state.MiniGameScores["catch"]
	copied := st.MiniGameScores["catch"]
	require.NotNil(t, copied.LastPlayed)
	assert.NotSame(t, live.LastPlayed, copied.LastPlayed)

	// Writing through the snapshot leaves live state untouched.
	*copied.LastPlayed = copied.LastPlayed.Add(time.Hour)
	assert.NotEqual(t, *live.LastPlayed, *copied.LastPlayed)
}

func TestLoadSettlesDecayFromAbsence(t *testing.T) {
	clock := newTestClock(t)
	mem := storage.NewMemStore()
	s := NewStore(mem, config.Default(), nil)
	s.AddPet("fox")

	clock.advance(24 * time.Hour)
	reloaded := NewStore(mem, config.Default(), nil)

	// A full day away drains hunger to the floor before any action runs.
	p, ok := reloaded.ActivePet()
	require.True(t, ok)
	assert.Equal(t, 0.0, p.Stats.Hunger)
	assert.Equal(t, 8.0, p.Stats.Happiness)

	// Feeding right after launch builds on the decayed value, not the
	// pre-absence one.
	_, ok = reloaded.Feed()
	require.True(t, ok)
	p, _ = reloaded.ActivePet()
	assert.Equal(t, 30.0, p.Stats.Hunger)
}

func TestCommitSurvivesWriteFailure(t *testing.T) {
	newTestClock(t)
	mem := storage.NewMemStore()
	s := NewStore(mem, config.Default(), nil)
	mem.FailWrites = true

	s.AddCoins(100)
	assert.Equal(t, 300, s.Coins())

	_, ok := s.AddPet("fox")
	assert.True(t, ok)
}
