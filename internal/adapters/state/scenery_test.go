package state

import (
	"sync"
	"testing"
)

func TestSceneryToggle(t *testing.T) {
	var toggle SceneryToggle
	if toggle.BuildWithoutScenery() {
		t.Error("zero value should be off")
	}

	toggle.SetBuildWithoutScenery(true)
	if !toggle.BuildWithoutScenery() {
		t.Error("expected on after set")
	}

	if !NewSceneryToggle(true).BuildWithoutScenery() {
		t.Error("NewSceneryToggle(true) should start on")
	}
}

func TestSceneryToggle_Concurrent(t *testing.T) {
	toggle := NewSceneryToggle(false)

	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			toggle.SetBuildWithoutScenery(i%2 == 0)
			_ = toggle.BuildWithoutScenery()
		}()
	}
	wg.Wait()
}
