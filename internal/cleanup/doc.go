// Package cleanup deletes local branches whose upstream branch was removed
// from the remote.
//
// Service reads the repository, selects tracking branches with the gone
// status, and deletes each through `git branch --delete`, asking for
// confirmation first in step mode. CommandBuilder exposes it as the `clean`
// Cobra command.
package cleanup
