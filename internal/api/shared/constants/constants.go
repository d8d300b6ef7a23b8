package constants

// Default pagination values
const (
	DEFAULT_COMMUNITIES_LIMIT = 20
	MAX_COMMUNITIES_LIMIT     = 100
	DEFAULT_OFFSET            = uint64(0)
)
