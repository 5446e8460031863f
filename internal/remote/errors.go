package remote

import "errors"

// ErrSessionFailed marks hosts whose SSH session could not connect,
// authenticate, or run the remote command.
var ErrSessionFailed = errors.New("remote session failed")
