package repositories

import "context"

// DataResetter restores every collection to its seed dataset and clears the
// session marker
type DataResetter interface {
	ResetAll(ctx context.Context) error
}
