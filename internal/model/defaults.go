package model

// Shared defaults used by the readers and the CLI binary.
const (
	// DefaultHeaderLines is the fixed header prefix discarded from custom
	// activity logs before line parsing.
	DefaultHeaderLines = 1

	// DefaultRepeatCount applies when a line carries no usable count.
	DefaultRepeatCount = 1

	// UnknownCategory labels records whose source carries no category,
	// such as wHealth export rows.
	UnknownCategory = "Unknown"
)
