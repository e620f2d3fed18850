package ports

// SceneryToggle is the process-wide "build without scenery" switch.
// When set, designs are previewed and placed without their scenery.
type SceneryToggle interface {
	BuildWithoutScenery() bool
	SetBuildWithoutScenery(v bool)
}
