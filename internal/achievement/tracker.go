package achievement

import (
	"encoding/json"
	"log"
	"time"

	"petplay/internal/storage"
)

// TimeNow is swappable in tests.
var TimeNow = func() time.Time { return time.Now().UTC() }

// StorageKey is the persisted document name for achievement progress.
const StorageKey = "petplay-achievements"

// Progress is the mutable per-achievement record. Current never regresses,
// Unlocked and Claimed flip one way only.
type Progress struct {
	AchievementID string     `json:"achievementId"`
	Current       int        `json:"current"`
	Unlocked      bool       `json:"unlocked"`
	UnlockedAt    *time.Time `json:"unlockedAt"`
	Claimed       bool       `json:"claimed"`
}

type persisted struct {
	Progress []Progress `json:"progress"`
}

// Metrics is the aggregate snapshot the tracker recomputes from after every
// committed game mutation.
type Metrics struct {
	PetCount     int
	HasRare      bool
	HasLegendary bool
	HasMaxLevel  bool
	CareActions  int
	Coins        int
	Evolutions   int
	MiniGameWins int
	LoginStreak  int
}

// Tracker owns achievement progress and its persisted document.
type Tracker struct {
	store    storage.Store
	progress []Progress
	// newUnlocks queues just-unlocked ids for the UI to toast.
	newUnlocks  []string
	warnedWrite bool
}

// NewTracker loads prior progress from the store, seeding all definitions at
// zero on first run only. Corrupted or missing documents start fresh.
func NewTracker(store storage.Store) *Tracker {
	t := &Tracker{store: store}

	if raw, ok := store.Get(StorageKey); ok {
		var doc persisted
		if err := json.Unmarshal([]byte(raw), &doc); err != nil {
			log.Printf("Error loading achievement data: %v. Starting fresh.", err)
		} else {
			t.progress = doc.Progress
		}
	}

	// Seed exactly once: a restored document, even all-zero, is left alone.
	if len(t.progress) == 0 {
		for _, d := range Definitions {
			t.progress = append(t.progress, Progress{AchievementID: d.ID})
		}
	}
	return t
}

func (t *Tracker) save() {
	data, err := json.Marshal(persisted{Progress: t.progress})
	if err != nil {
		log.Printf("Error saving achievements: %v", err)
		return
	}
	if err := t.store.Set(StorageKey, string(data)); err != nil {
		if !t.warnedWrite {
			t.warnedWrite = true
			log.Printf("Achievement progress may not be saved: %v", err)
		}
	}
}

func (t *Tracker) find(id string) *Progress {
	for i := range t.progress {
		if t.progress[i].AchievementID == id {
			return &t.progress[i]
		}
	}
	return nil
}

// UpdateProgress records an observed value for an achievement. Progress is
// monotonic: lower observations never regress it. Crossing the requirement
// for the first time unlocks the achievement and stamps the time.
func (t *Tracker) UpdateProgress(id string, value int) {
	p := t.find(id)
	if p == nil {
		return
	}

	changed := false
	if value > p.Current {
		p.Current = value
		changed = true
	}

	def, ok := DefinitionByID(id)
	if ok && !p.Unlocked && p.Current >= def.Requirement {
		now := TimeNow()
		p.Unlocked = true
		p.UnlockedAt = &now
		t.newUnlocks = append(t.newUnlocks, id)
		changed = true
	}

	if changed {
		t.save()
	}
}

// ClaimReward grants the reward for an unlocked, unclaimed achievement and
// marks it claimed. Any other state returns 0 with no change; callers treat
// 0 as "nothing to claim".
func (t *Tracker) ClaimReward(id string) int {
	p := t.find(id)
	if p == nil || !p.Unlocked || p.Claimed {
		return 0
	}
	def, ok := DefinitionByID(id)
	if !ok {
		return 0
	}
	p.Claimed = true
	t.save()
	return def.Reward
}

// Progress returns the record for an achievement id.
func (t *Tracker) Progress(id string) (Progress, bool) {
	p := t.find(id)
	if p == nil {
		return Progress{}, false
	}
	return *p, true
}

// All returns a copy of every progress record, in definition order.
func (t *Tracker) All() []Progress {
	out := make([]Progress, len(t.progress))
	copy(out, t.progress)
	return out
}

// UnclaimedCount counts unlocked achievements whose reward is still pending.
func (t *Tracker) UnclaimedCount() int {
	n := 0
	for _, p := range t.progress {
		if p.Unlocked && !p.Claimed {
			n++
		}
	}
	return n
}

// DrainNewUnlocks returns and clears the just-unlocked queue.
func (t *Tracker) DrainNewUnlocks() []string {
	out := t.newUnlocks
	t.newUnlocks = nil
	return out
}

// Observe recomputes every watched achievement from a game snapshot. The
// game store calls this after each committed mutation.
func (t *Tracker) Observe(m Metrics) {
	if m.PetCount > 0 {
		t.UpdateProgress("first_friend", 1)
	}
	t.UpdateProgress("collector", m.PetCount)
	if m.HasRare {
		t.UpdateProgress("rare_find", 1)
	}
	if m.HasLegendary {
		t.UpdateProgress("legendary_hunter", 1)
	}
	if m.HasMaxLevel {
		t.UpdateProgress("master", 1)
	}
	t.UpdateProgress("caring_soul", m.CareActions)
	t.UpdateProgress("wealthy", m.Coins)
	t.UpdateProgress("evolver", m.Evolutions)
	t.UpdateProgress("gamer", m.MiniGameWins)
	t.UpdateProgress("dedicated", m.LoginStreak)
}
