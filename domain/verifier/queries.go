package verifier

import (
	"github.com/Modern-Miracle/NGDocuVault-sub001/identity"
	"github.com/ethereum/go-ethereum/common"
)

func (a *DidVerifierAggregate) Admin() common.Address {
	return a.admin
}

// IsIssuerTrusted never fails.
func (a *DidVerifierAggregate) IsIssuerTrusted(credentialType string, issuer common.Address) bool {
	return a.trusted[trustKey{credentialType, issuer}]
}

// VerifyCredential fails instead of returning false: ErrUntrustedIssuer for an issuer not trusted
// for credentialType, the registry error for an unknown subject and ErrInvalidCredential for an
// inactive one.
func (a *DidVerifierAggregate) VerifyCredential(registry identity.Registry, credentialType string, issuer common.Address, subject string) (bool, error) {
	if !a.IsIssuerTrusted(credentialType, issuer) {
		return false, ErrUntrustedIssuer
	}
	active, err := registry.IsActive(subject)
	if err != nil {
		return false, err
	}
	if !active {
		return false, ErrInvalidCredential
	}
	return true, nil
}
