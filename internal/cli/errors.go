package cli

import "errors"

var ErrInvalidInput = errors.New("invalid input")
