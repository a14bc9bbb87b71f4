package tui

import "time"

// nowFunc is the clock for screens that need "today"; a variable so tests
// can pin it.
var nowFunc = time.Now
