package analyze

import "errors"

// ErrInvalidRoot is returned by Extract when the snapshot root handle is
// missing. It is the only error the pipeline can surface; every other
// failure is recovered locally.
var ErrInvalidRoot = errors.New("invalid input: snapshot root is nil")
