// Package workspace manages the directory a scenario is generated into.
//
// The workspace is the only channel between the generation stages: every
// stage reads its inputs from it and leaves its outputs in it, under fixed
// filenames. Those filenames are the on-disk protocol of the pipeline and are
// shared with the external tools (the network converter resolves some of them
// through its own configuration template), so they must never drift.
//
// The workspace is owned by exactly one run. It is created once, never
// cleaned up by the generator, and left in place for inspection when a run
// fails halfway.
package workspace
