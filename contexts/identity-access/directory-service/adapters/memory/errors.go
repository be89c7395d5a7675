package memory

import "errors"

var errStoreUnavailable = errors.New("directory store unavailable")
