// Package pipeline orchestrates the complete scenario generation.
//
// Ten ordered stages turn one OSM extract into a runnable simulation
// scenario. Every stage declares the artifacts it consumes and the artifacts
// it must leave behind; both sides are checked against the workspace, so a
// failing tool stops the run with the stage's name instead of letting later
// stages work against missing files. Execution is strictly sequential, one
// workspace per run, the filesystem as the only channel between stages.
package pipeline
