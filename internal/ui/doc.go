// Package ui turns git command lifecycle events into console log lines for
// people reading the terminal, while structured logs keep the full detail.
package ui
