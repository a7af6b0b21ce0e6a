package sim

import "errors"

// ErrInvalidArgument is wrapped by every validation failure: bad request count,
// bad arrival bound, bad quantum or an unknown algorithm name.
// Callers match it with errors.Is.
var ErrInvalidArgument = errors.New("invalid argument")
