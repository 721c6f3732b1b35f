package collision

import (
	"fmt"

	"github.com/arloliu/featstore/errs"
)

// Tracker tracks feature ids derived from names and detects hash collisions.
// It keeps an id-to-name mapping and the names in registration order.
type Tracker struct {
	names     map[uint32]string // id → name, empty for ids tracked without a name
	namesList []string
}

// NewTracker creates a new collision tracker.
func NewTracker() *Tracker {
	return &Tracker{
		names:     make(map[uint32]string),
		namesList: make([]string, 0),
	}
}

// TrackFeatureID tracks an id supplied without a name.
func (t *Tracker) TrackFeatureID(id uint32) error {
	if _, exists := t.names[id]; exists {
		return fmt.Errorf("%w: %d", errs.ErrDuplicateFeatureID, id)
	}
	t.names[id] = ""

	return nil
}

// TrackFeature tracks name with the id hashed from it.
//
// Unlike ids in a self-describing blob, feature ids key columns directly, so
// a collision cannot be resolved by storing names and is reported as an error.
func (t *Tracker) TrackFeature(name string, id uint32) error {
	if name == "" {
		return errs.ErrInvalidFeatureName
	}

	if existing, exists := t.names[id]; exists {
		if existing == name {
			return fmt.Errorf("%w: %q", errs.ErrDuplicateFeatureName, name)
		}

		return fmt.Errorf("%w: %q and %q both map to %d", errs.ErrHashCollision, existing, name, id)
	}

	t.names[id] = name
	t.namesList = append(t.namesList, name)

	return nil
}

// Name returns the name registered for id.
func (t *Tracker) Name(id uint32) (string, bool) {
	name, ok := t.names[id]
	return name, ok && name != ""
}

// Names returns the tracked names in registration order.
func (t *Tracker) Names() []string {
	return t.namesList
}

// Count returns the number of tracked ids.
func (t *Tracker) Count() int {
	return len(t.names)
}

// Reset clears all tracked ids, keeping allocated capacity.
func (t *Tracker) Reset() {
	clear(t.names)
	t.namesList = t.namesList[:0]
}
