package vault

import "errors"

var ErrNotAdmin = errors.New("DocuVault__NotAdmin")
var ErrNotIssuer = errors.New("DocuVault__NotIssuer")
var ErrNotHolder = errors.New("DocuVault__NotHolder")
var ErrNotAuthorized = errors.New("DocuVault__NotAuthorized")
var ErrZeroAddress = errors.New("DocuVault__ZeroAddress")
var ErrInvalidHash = errors.New("DocuVault__InvalidHash")
var ErrInvalidDate = errors.New("DocuVault__InvalidDate")
var ErrInvalidInput = errors.New("DocuVault__InvalidInput")
var ErrExpired = errors.New("DocuVault__Expired")
var ErrAlreadyRegistered = errors.New("DocuVault__AlreadyRegistered")
var ErrNotRegistered = errors.New("DocuVault__NotRegistered")
var ErrAlreadyVerified = errors.New("DocuVault__AlreadyVerified")
var ErrNotVerified = errors.New("DocuVault__NotVerified")
var ErrNotGranted = errors.New("DocuVault__NotGranted")
var ErrIssuerRegistered = errors.New("DocuVault__IssuerRegistered")
var ErrNotActive = errors.New("DocuVault__NotActive")
var ErrIsActive = errors.New("DocuVault__IsActive")
var ErrAlreadyAdmin = errors.New("DocuVault__AlreadyAdmin")

var ErrEnforcedPause = errors.New("EnforcedPause")
var ErrExpectedPause = errors.New("ExpectedPause")
