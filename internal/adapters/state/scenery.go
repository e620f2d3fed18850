// Package state holds process-wide settings shared between windows.
package state

import (
	"sync/atomic"

	"tracklist/internal/ports"
)

var _ ports.SceneryToggle = (*SceneryToggle)(nil)

// SceneryToggle is the "build without scenery" setting. The zero value is
// off and ready to use.
type SceneryToggle struct {
	v atomic.Bool
}

// NewSceneryToggle returns a toggle with the given initial state.
func NewSceneryToggle(on bool) *SceneryToggle {
	t := &SceneryToggle{}
	t.v.Store(on)
	return t
}

func (t *SceneryToggle) BuildWithoutScenery() bool {
	return t.v.Load()
}

func (t *SceneryToggle) SetBuildWithoutScenery(on bool) {
	t.v.Store(on)
}
