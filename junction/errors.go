package junction

import "errors"

// ErrNotConfigured is returned by LinkSegments before Configure has run.
var ErrNotConfigured = errors.New("junction: tips not configured")
