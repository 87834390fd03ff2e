package repository

import "context"

// SequenceRepository allocates incrementing numbers per series. Next
// must be atomic: two concurrent calls for the same series must never
// return the same value. Seed is the value the counter starts from when
// the series does not exist yet; the first allocation returns seed+1.
type SequenceRepository interface {
	Next(ctx context.Context, series string, seed int64) (int64, error)
}
