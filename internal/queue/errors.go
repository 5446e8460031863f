package queue

import "errors"

// ErrDataSourceUnavailable marks failures to reach the jobs database: the
// file is missing, unreadable, or the state directory was never configured.
var ErrDataSourceUnavailable = errors.New("jobs database unavailable")
