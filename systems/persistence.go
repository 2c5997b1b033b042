package systems

import (
	"encoding/json"
	"log"

	cfg "github.com/automoto/danmaku/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata"
)

// MatchRecord is the lifetime versus tally stored on disk
type MatchRecord struct {
	Wins    [2]int `json:"wins"`
	Matches int    `json:"matches"`
}

// SavedSettings represents the window settings stored on disk
type SavedSettings struct {
	Fullscreen      bool `json:"fullscreen"`
	ResolutionIndex int  `json:"resolutionIndex"`
	ShowHitboxes    bool `json:"showHitboxes"`
}

const (
	matchRecordKey = "matches"
	settingsKey    = "settings"
)

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for match records
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "danmaku",
	})
	if err != nil {
		log.Printf("[persistence] could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadMatchRecord loads the stored tally. Without persistence, or before the
// first match, it returns an empty record.
func LoadMatchRecord() (MatchRecord, error) {
	var record MatchRecord
	if !gdataInitialized || gdataManager == nil {
		return record, nil
	}

	data, err := gdataManager.LoadItem(matchRecordKey)
	if err != nil {
		log.Printf("[persistence] could not load match record: %v", err)
		return record, err
	}
	if len(data) == 0 {
		return record, nil
	}

	if err := json.Unmarshal(data, &record); err != nil {
		log.Printf("[persistence] could not parse match record: %v", err)
		return MatchRecord{}, err
	}
	return record, nil
}

// SaveMatchRecord writes the tally to disk
func SaveMatchRecord(record MatchRecord) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(record)
	if err != nil {
		log.Printf("[persistence] could not serialize match record: %v", err)
		return err
	}

	if err := gdataManager.SaveItem(matchRecordKey, data); err != nil {
		log.Printf("[persistence] could not save match record: %v", err)
		return err
	}
	return nil
}

// RecordMatch adds a finished match won by the given player slot.
func RecordMatch(winner int) {
	record, err := LoadMatchRecord()
	if err != nil {
		return
	}
	record.Apply(winner)
	_ = SaveMatchRecord(record)
}

// Apply counts one match won by winner. Out of range winners only count
// the match.
func (r *MatchRecord) Apply(winner int) {
	r.Matches++
	if winner >= 0 && winner < len(r.Wins) {
		r.Wins[winner]++
	}
}

// LoadSettings loads settings from disk. It returns nil when nothing was
// saved yet.
func LoadSettings() (*SavedSettings, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem(settingsKey)
	if err != nil {
		log.Printf("[persistence] could not load settings: %v", err)
		return nil, nil
	}
	if data == nil {
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("[persistence] could not parse saved settings: %v", err)
		return nil, err
	}
	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("[persistence] could not serialize settings: %v", err)
		return err
	}

	if err := gdataManager.SaveItem(settingsKey, data); err != nil {
		log.Printf("[persistence] could not save settings: %v", err)
		return err
	}
	return nil
}

// Resolution returns the window size selected by s, falling back to the
// default resolution for out of range indexes.
func (s *SavedSettings) Resolution() cfg.Resolution {
	index := cfg.Settings.DefaultResolutionIndex
	if s != nil && s.ResolutionIndex >= 0 && s.ResolutionIndex < len(cfg.Settings.Resolutions) {
		index = s.ResolutionIndex
	}
	return cfg.Settings.Resolutions[index]
}

// ApplySettings applies loaded settings to the window and debug options
func ApplySettings(s *SavedSettings) {
	res := s.Resolution()
	ebiten.SetWindowSize(res.Width, res.Height)
	if s == nil {
		return
	}
	ebiten.SetFullscreen(s.Fullscreen)
	cfg.Debug.ShowHitboxes = cfg.Debug.ShowHitboxes || s.ShowHitboxes
}

// WithOverrides returns s with the command line choices applied. A negative
// resolution and a nil fullscreen leave the saved values alone. changed
// reports whether anything needs saving.
func (s *SavedSettings) WithOverrides(resolution int, fullscreen *bool) (out *SavedSettings, changed bool) {
	if resolution < 0 && fullscreen == nil {
		return s, false
	}
	merged := SavedSettings{ResolutionIndex: cfg.Settings.DefaultResolutionIndex}
	if s != nil {
		merged = *s
	}
	if resolution >= 0 {
		merged.ResolutionIndex = resolution
	}
	if fullscreen != nil {
		merged.Fullscreen = *fullscreen
	}
	return &merged, true
}
