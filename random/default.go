package random

// std is the process-wide engine behind Default.
var std = New()

// Default returns the shared process-wide engine. Callers must serialize access.
// Prefer an explicit engine per simulation run for reproducibility.
func Default() *MT { return std }
