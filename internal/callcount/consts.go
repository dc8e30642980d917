package callcount

// Table bounds.
const (
	MaxN      = 40
	TableSize = MaxN + 1
)
