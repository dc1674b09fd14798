package repositories

// LoadSource tells where a collection's contents came from when its slot was
// opened. The silent-fallback behavior of the durable store is an explicit,
// observable branch rather than a swallowed error.
type LoadSource string

const (
	// LoadSourceSeeded means the slot was absent and the collection was
	// initialized from seed data (first run)
	LoadSourceSeeded LoadSource = "seeded"
	// LoadSourceLoaded means the slot held a well-formed payload
	LoadSourceLoaded LoadSource = "loaded"
	// LoadSourceRecovered means the slot was unreadable or malformed and the
	// collection fell back to seed data
	LoadSourceRecovered LoadSource = "recovered"
)

// LoadReport maps collection keys to where their contents came from
type LoadReport map[string]LoadSource
