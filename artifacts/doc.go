// Package artifacts edits the XML artifacts the pipeline owns itself: the
// merged parking definitions and the final scenario configuration. Documents
// are handled as opaque trees so every element and attribute the generator
// does not touch survives a rewrite unchanged.
package artifacts
