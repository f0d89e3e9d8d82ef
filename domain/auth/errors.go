package auth

import "errors"

var ErrUnauthorized = errors.New("DidAuth__Unauthorized")
var ErrInvalidDID = errors.New("DidAuth__InvalidDID")
var ErrInvalidRole = errors.New("DidAuth__InvalidRole")
var ErrInvalidCredential = errors.New("DidAuth__InvalidCredential")
var ErrDeactivatedDID = errors.New("DidAuth__DeactivatedDID")
var ErrCredentialNotIssued = errors.New("DidAuth__CredentialNotIssued")
