package console

import "errors"

var ErrUnknownRenderer = errors.New("unknown renderer")
