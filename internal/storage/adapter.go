package storage

import (
	"fmt"

	json "github.com/goccy/go-json"
	log "github.com/sirupsen/logrus"

	"github.com/five82/fitjourney/internal/journal"
)

// StateKey is the versioned key the log is stored under. Bump the version when
// the blob shape changes incompatibly; data under an old key is left behind.
const StateKey = "fitness-journey-data-v1"

// Adapter loads and saves whole journal snapshots through a KV.
type Adapter struct {
	kv    KV
	key   string
	newID func() string
}

// NewAdapter returns an adapter storing under StateKey.
func NewAdapter(kv KV) *Adapter {
	return &Adapter{kv: kv, key: StateKey, newID: journal.NewID}
}

// WithKey returns a copy of the adapter that stores under key.
func (a *Adapter) WithKey(key string) *Adapter {
	dup := *a
	dup.key = key
	return &dup
}

// Key returns the key snapshots are stored under.
func (a *Adapter) Key() string {
	return a.key
}

// Load returns the saved snapshot. Missing, unreadable or unparseable data
// yields an empty state; each absent sequence defaults to empty on its own.
func (a *Adapter) Load() journal.State {
	raw, ok, err := a.kv.Get(a.key)
	if err != nil {
		log.WithError(err).Warn("state load failed, starting empty")
		return journal.Empty()
	}
	if !ok || raw == "" {
		return journal.Empty()
	}
	s, err := Decode([]byte(raw))
	if err != nil {
		log.WithError(err).Warn("saved state is corrupt, starting empty")
		return journal.Empty()
	}
	return s.Normalize(a.newID)
}

// Save writes the full snapshot. Failures are logged and dropped.
func (a *Adapter) Save(s journal.State) {
	if err := a.save(s); err != nil {
		log.WithError(err).Warn("state save dropped")
	}
}

func (a *Adapter) save(s journal.State) error {
	data, err := Encode(s)
	if err != nil {
		return err
	}
	if err := a.kv.Set(a.key, string(data)); err != nil {
		return fmt.Errorf("write state: %w", err)
	}
	log.Debugf("saved state (%d bytes)", len(data))
	return nil
}

// Encode serializes a snapshot. Nil sequences are written as empty arrays.
func Encode(s journal.State) ([]byte, error) {
	data, err := json.Marshal(s.Clone())
	if err != nil {
		return nil, fmt.Errorf("encode state: %w", err)
	}
	return data, nil
}

// Decode parses a snapshot blob. Absent sequences come back empty.
func Decode(data []byte) (journal.State, error) {
	var s journal.State
	if err := json.Unmarshal(data, &s); err != nil {
		return journal.Empty(), fmt.Errorf("decode state: %w", err)
	}
	return s.Clone(), nil
}
