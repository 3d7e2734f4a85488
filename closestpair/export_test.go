package closestpair

// Test bridge: exposes unexported helpers to the closestpair_test package
// without widening the production API.
var (
	ExportedNewViews   = newViews
	ExportedSplitByX   = splitByX
	ExportedBuildStrip = buildStrip
)
