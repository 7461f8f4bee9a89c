package enums

// Stage is a step of a single post analysis run. A failed run is reported
// with the stage it failed in.
type Stage string

const (
	StageValidating   Stage = "validating"
	StageFetching     Stage = "fetching"
	StageNormalizing  Stage = "normalizing"
	StageBuildingTree Stage = "building_tree"
	StageDone         Stage = "done"
)
