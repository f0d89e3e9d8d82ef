package verifier

import "errors"

var ErrUnauthorized = errors.New("DidVerifier__Unauthorized")
var ErrInvalidIssuer = errors.New("DidVerifier__InvalidIssuer")
var ErrUntrustedIssuer = errors.New("DidVerifier__UntrustedIssuer")
var ErrInvalidCredential = errors.New("DidVerifier__InvalidCredential")
