package main

// Process exit codes.
const (
	ExitSuccess     = 0 // Result printed
	ExitError       = 1 // Calculation failed (division by zero, unknown operation) or runtime failure
	ExitUsageError  = 2 // Wrong argument count, malformed operand, missing or conflicting operation
	ExitConfigError = 3 // Configuration file unreadable or invalid
)
