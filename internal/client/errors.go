package client

import "errors"

var ErrIncompleteApp = errors.New("client app needs services and ui")
