package probe

// Supervise exports supervise for white-box testing.
var Supervise = supervise
