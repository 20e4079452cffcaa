package ports

/*
ProcessLauncher spawns one external process and blocks until it reaches a
terminal state. The child's exit status is discarded: a program that ran and
failed is not a launch error. This is a driven port, implemented by the one
platform-coupled adapter in the system.
*/
type ProcessLauncher interface {
	// Launch resolves tokens[0] through the system search path and runs it
	// with the full token sequence as its argument vector. It returns an
	// error only when the program could not be found or started.
	Launch(tokens []string) error
}
