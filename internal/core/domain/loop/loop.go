/*
Package loop defines the signal that drives the dispatch loop.
*/
package loop

// Signal tells the dispatch loop whether to prompt again or stop.
type Signal int

const (
	// Continue keeps the loop running.
	Continue Signal = iota
	// Terminate stops the loop cleanly.
	Terminate
)
