package systems

import (
	"encoding/json"
	"log"
	"math"

	"github.com/automoto/herokit/components"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi"
)

// SavedStats is the part of a hero's stats stored on disk. Base values and
// growth come from tuning, so only progress is saved.
type SavedStats struct {
	Level          int     `json:"level"`
	CurrentExp     float64 `json:"currentExp"`
	ExpToNextLevel float64 `json:"expToNextLevel"`
	CurrentHealth  float64 `json:"currentHealth"`
}

const statsItem = "stats"

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for save data
func InitPersistence(appName string) error {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		log.Printf("[persistence] Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadStats returns the saved stats, or nil if there are none.
func LoadStats() (*SavedStats, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem(statsItem)
	if err != nil {
		log.Printf("[persistence] Could not load stats: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		return nil, nil
	}

	var saved SavedStats
	if err := json.Unmarshal(data, &saved); err != nil {
		log.Printf("[persistence] Could not parse saved stats: %v", err)
		return nil, err
	}
	return &saved, nil
}

// SaveStats writes the hero's progress to disk.
func SaveStats(e *donburi.Entry) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(SnapshotStats(components.Stats.Get(e)))
	if err != nil {
		log.Printf("[persistence] Could not serialize stats: %v", err)
		return err
	}
	if err := gdataManager.SaveItem(statsItem, data); err != nil {
		log.Printf("[persistence] Could not save stats: %v", err)
		return err
	}
	return nil
}

func SnapshotStats(s *components.StatsData) SavedStats {
	return SavedStats{
		Level:          s.Level,
		CurrentExp:     s.CurrentExp,
		ExpToNextLevel: s.ExpToNextLevel,
		CurrentHealth:  s.CurrentHealth,
	}
}

// ApplySavedStats restores saved progress onto a living hero. A save taken
// at zero health restores full health.
func ApplySavedStats(e *donburi.Entry, saved *SavedStats) {
	if saved == nil || isDead(e) {
		return
	}
	s := components.Stats.Get(e)
	if saved.Level >= 1 {
		s.Level = saved.Level
	}
	if saved.ExpToNextLevel > 0 {
		s.ExpToNextLevel = saved.ExpToNextLevel
	}
	s.CurrentExp = math.Max(saved.CurrentExp, 0)
	RecomputeStats(s)

	s.CurrentHealth = math.Min(saved.CurrentHealth, s.MaxHealth)
	if s.CurrentHealth <= 0 {
		s.CurrentHealth = s.MaxHealth
	}
}
