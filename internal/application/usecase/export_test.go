package usecase

import "time"

// SetNowFunc overrides the package clock for deterministic tests.
func SetNowFunc(f func() time.Time) { nowUTC = f }
