// Package cli constructs the gone command-line interface. It wires the Cobra
// command hierarchy to the layered configuration loader and the zap logger,
// and registers the list and clean commands.
package cli
