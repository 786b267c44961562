package systems

import (
	"errors"
	"log"

	cfg "github.com/automoto/strider/config"
	"github.com/quasilyte/gdata"
)

// tuningKey is the gdata item holding the viewer's saved tuning.
const tuningKey = "tuning"

// ErrPersistenceUnavailable is returned by SaveTuning when InitPersistence
// has not succeeded.
var ErrPersistenceUnavailable = errors.New("persistence unavailable")

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for tuning storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "strider",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadTuning loads the saved tuning from disk. It returns nil without an
// error when persistence is unavailable or nothing was saved yet.
func LoadTuning() (*cfg.Tuning, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem(tuningKey)
	if err != nil {
		log.Printf("Warning: Could not load tuning: %v", err)
		return nil, nil
	}
	if data == nil {
		// No saved tuning yet, use defaults
		return nil, nil
	}

	t, err := cfg.ParseTuning(data)
	if err != nil {
		log.Printf("Warning: Could not parse saved tuning: %v", err)
		return nil, err
	}
	return &t, nil
}

// SaveTuning saves t to disk
func SaveTuning(t cfg.Tuning) error {
	if !gdataInitialized || gdataManager == nil {
		return ErrPersistenceUnavailable
	}

	data, err := cfg.MarshalTuning(t)
	if err != nil {
		log.Printf("Warning: Could not serialize tuning: %v", err)
		return err
	}

	if err := gdataManager.SaveItem(tuningKey, data); err != nil {
		log.Printf("Warning: Could not save tuning: %v", err)
		return err
	}
	return nil
}

// ApplySavedTuning publishes a loaded tuning to store. Robots pick it up on
// their next physics tick.
func ApplySavedTuning(store *cfg.TuningStore, saved *cfg.Tuning) {
	if saved == nil {
		return
	}
	if err := store.Store(*saved); err != nil {
		log.Printf("Warning: Saved tuning rejected: %v", err)
	}
}
