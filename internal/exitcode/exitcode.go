package exitcode

const (
	Success         = 0
	UsageError      = 1
	ValidationError = 2
	ConnError       = 3
	MigrateError    = 4
	ProcessError    = 5
	PartialSuccess  = 6
)
