// Package listing prints the branches of a repository grouped by their
// relationship to the remote.
//
// Service reads the repository through a branch status reader, BuildReport
// selects the sections for a Filter, and a Renderer writes the report as
// styled text, YAML, or TOML. CommandBuilder exposes the service as the
// `list` Cobra command.
package listing
