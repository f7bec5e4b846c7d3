// Package branchstatus turns the output of `git branch -vv` into a typed
// repository model.
//
// TokenizeLine splits a raw line into tokens, ParseRemoteReference reads the
// bracketed upstream descriptor, ClassifyLine decides whether a line is the
// detached HEAD, a local branch, or a tracking branch, and ParseRepository
// assembles a Repository with exactly one Head. Reader runs git through an
// executor and feeds its output to ParseRepository.
package branchstatus
