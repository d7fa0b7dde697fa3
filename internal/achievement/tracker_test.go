package achievement

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"petplay/internal/storage"
)

func fixedTime(t *testing.T, at time.Time) {
	t.Helper()
	old := TimeNow
	TimeNow = func() time.Time { return at }
	t.Cleanup(func() { TimeNow = old })
}

func TestNewTrackerSeedsAllDefinitions(t *testing.T) {
	tr := NewTracker(storage.NewMemStore())

	all := tr.All()
	require.Len(t, all, len(Definitions))
	for i, d := range Definitions {
		assert.Equal(t, d.ID, all[i].AchievementID)
		assert.Equal(t, 0, all[i].Current)
		assert.False(t, all[i].Unlocked)
	}
}

func TestNewTrackerRestoresWithoutReseeding(t *testing.T) {
	at := time.Date(2024, 12, 1, 12, 0, 0, 0, time.UTC)
	fixedTime(t, at)
	mem := storage.NewMemStore()

	tr := NewTracker(mem)
	tr.UpdateProgress("collector", 3)
	tr.UpdateProgress("first_friend", 1)
	require.Equal(t, 50, tr.ClaimReward("first_friend"))

	restored := NewTracker(mem)
	p, ok := restored.Progress("collector")
	require.True(t, ok)
	assert.Equal(t, 3, p.Current)

	p, _ = restored.Progress("first_friend")
	assert.True(t, p.Unlocked)
	assert.True(t, p.Claimed)
	require.NotNil(t, p.UnlockedAt)
	assert.Equal(t, at, p.UnlockedAt.UTC())
}

func TestNewTrackerCorruptDocumentStartsFresh(t *testing.T) {
	mem := storage.NewMemStore()
	require.NoError(t, mem.Set(StorageKey, "no"))

	tr := NewTracker(mem)
	assert.Len(t, tr.All(), len(Definitions))
}

func TestUpdateProgressIsMonotonic(t *testing.T) {
	tr := NewTracker(storage.NewMemStore())

	tr.UpdateProgress("collector", 4)
	tr.UpdateProgress("collector", 2)

	p, _ := tr.Progress("collector")
	assert.Equal(t, 4, p.Current)
	assert.False(t, p.Unlocked)
}

func TestUpdateProgressUnlocksOnce(t *testing.T) {
	at := time.Date(2024, 12, 1, 12, 0, 0, 0, time.UTC)
	fixedTime(t, at)
	tr := NewTracker(storage.NewMemStore())

	tr.UpdateProgress("collector", 5)
	p, _ := tr.Progress("collector")
	require.True(t, p.Unlocked)
	firstUnlock := p.UnlockedAt

	assert.Equal(t, []string{"collector"}, tr.DrainNewUnlocks())
	assert.Empty(t, tr.DrainNewUnlocks())

	// Further progress keeps the original unlock time and raises no toast.
	fixedTime(t, at.Add(time.Hour))
	tr.UpdateProgress("collector", 9)
	p, _ = tr.Progress("collector")
	assert.Equal(t, 9, p.Current)
	assert.Equal(t, firstUnlock, p.UnlockedAt)
	assert.Empty(t, tr.DrainNewUnlocks())
}

func TestUpdateProgressUnknownID(t *testing.T) {
	mem := storage.NewMemStore()
	tr := NewTracker(mem)
	before, _ := mem.Get(StorageKey)

	tr.UpdateProgress("unknown", 99)

	after, _ := mem.Get(StorageKey)
	assert.Equal(t, before, after)
}

func TestClaimRewardOnce(t *testing.T) {
	tr := NewTracker(storage.NewMemStore())

	// Locked: nothing to claim.
	assert.Equal(t, 0, tr.ClaimReward("wealthy"))

	tr.UpdateProgress("wealthy", 5000)
	assert.Equal(t, 1, tr.UnclaimedCount())

	def, _ := DefinitionByID("wealthy")
	assert.Equal(t, def.Reward, tr.ClaimReward("wealthy"))
	assert.Equal(t, 0, tr.ClaimReward("wealthy"))
	assert.Equal(t, 0, tr.UnclaimedCount())
}

func TestObserveDrivesEveryWatch(t *testing.T) {
	tr := NewTracker(storage.NewMemStore())

	tr.Observe(Metrics{
		PetCount:     10,
		HasRare:      true,
		HasLegendary: true,
		HasMaxLevel:  true,
		CareActions:  100,
		Coins:        5000,
		Evolutions:   5,
		MiniGameWins: 10,
		LoginStreak:  7,
	})

	for _, id := range []string{
		"first_friend", "collector", "rare_find", "legendary_hunter",
		"master", "caring_soul", "wealthy", "evolver", "gamer", "dedicated",
	} {
		p, ok := tr.Progress(id)
		require.True(t, ok, id)
		assert.True(t, p.Unlocked, id)
	}
}

func TestObservePartialMetrics(t *testing.T) {
	tr := NewTracker(storage.NewMemStore())

	tr.Observe(Metrics{PetCount: 1, CareActions: 3, Coins: 200})

	p, _ := tr.Progress("first_friend")
	assert.True(t, p.Unlocked)
	p, _ = tr.Progress("rare_find")
	assert.False(t, p.Unlocked)
	assert.Equal(t, 0, p.Current)
	p, _ = tr.Progress("caring_soul")
	assert.Equal(t, 3, p.Current)
	assert.False(t, p.Unlocked)
}

func TestPersistedDocumentShape(t *testing.T) {
	mem := storage.NewMemStore()
	tr := NewTracker(mem)
	tr.UpdateProgress("collector", 2)

	raw, ok := mem.Get(StorageKey)
	require.True(t, ok)

	var doc struct {
		Progress []map[string]any `json:"progress"`
	}
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))
	require.NotEmpty(t, doc.Progress)
	assert.Contains(t, doc.Progress[0], "achievementId")
	assert.Contains(t, doc.Progress[0], "unlocked")
}

func TestSaveFailureDoesNotPanic(t *testing.T) {
	mem := storage.NewMemStore()
	tr := NewTracker(mem)
	mem.FailWrites = true

	tr.UpdateProgress("collector", 5)
	p, _ := tr.Progress("collector")
	assert.True(t, p.Unlocked)
}
