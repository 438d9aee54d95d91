package model

// CleanedRoot records a build root whose clean actions all succeeded, or
// that was only reported in a dry run.
type CleanedRoot struct {
	Path    Path
	Actions []CleanAction
	// DryRun is set when the root was only reported.
	DryRun bool
}

// Summary aggregates what a scan did.
type Summary struct {
	Visited  int
	Cleaned  []CleanedRoot
	Warnings int
}
