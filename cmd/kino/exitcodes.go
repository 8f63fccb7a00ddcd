package main

// Exit codes for the kino CLI.
const (
	ExitOK           = 0 // A payload was printed, possibly a fallback.
	ExitMissingInput = 1 // No input argument; the placeholder was printed.
	ExitOutputFailed = 2 // stdout could not be written.
)
