package domain

import "errors"

var ErrUnknownCommand = errors.New("unknown command")

var ErrNotDeployed = errors.New("contract not deployed")
var ErrAlreadyDeployed = errors.New("contract already deployed")
