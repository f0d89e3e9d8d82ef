package auth

import (
	"github.com/Modern-Miracle/NGDocuVault-sub001/identity"
	"github.com/ethereum/go-ethereum/common"
)

// Owner returns the privileged owner set by the constructor.
func (a *DidAuthAggregate) Owner() common.Address {
	return a.owner
}

// isPrivileged is the owner bypass: the owner passes every role and credential predicate,
// whatever the other arguments are.
func (a *DidAuthAggregate) isPrivileged(account common.Address) bool {
	return a.deployed && account == a.owner
}

// HasDidRole never fails; unknown DIDs and roles hold nothing.
func (a *DidAuthAggregate) HasDidRole(did string, role common.Hash) bool {
	return a.didRoles[did][role]
}

// HasRole checks the DID controlled by account.
func (a *DidAuthAggregate) HasRole(registry identity.Registry, role common.Hash, account common.Address) bool {
	if a.isPrivileged(account) {
		return true
	}
	did := registry.AddressToDID(account)
	if did == "" {
		return false
	}
	return a.HasDidRole(did, role)
}

// GetUserRoles enumerates the roles held by did. Unknown DIDs fail with the registry's error.
func (a *DidAuthAggregate) GetUserRoles(registry identity.Registry, did string) ([]common.Hash, error) {
	if did == "" {
		return nil, ErrInvalidDID
	}
	if _, err := registry.ResolveDid(did); err != nil {
		return nil, err
	}
	roles := []common.Hash{}
	for _, r := range Roles {
		if a.HasDidRole(did, r.Role) {
			roles = append(roles, r.Role)
		}
	}
	return roles, nil
}

func (a *DidAuthAggregate) GetUserRolesByAddress(registry identity.Registry, account common.Address) ([]common.Hash, error) {
	did := registry.AddressToDID(account)
	if did == "" {
		return nil, ErrInvalidDID
	}
	return a.GetUserRoles(registry, did)
}

// GetRoleRequirement fails with ErrInvalidCredential for roles without a requirement.
func (a *DidAuthAggregate) GetRoleRequirement(role common.Hash) (string, error) {
	requirement, ok := a.requirements[role]
	if !ok || requirement == "" {
		return "", ErrInvalidCredential
	}
	return requirement, nil
}

func (a *DidAuthAggregate) IsTrustedIssuer(credentialType string, issuer common.Address) bool {
	return a.trustedIssuers[credentialType][issuer]
}

// VerifyCredentialForAction reports whether credentialID of credentialType was issued to did.
func (a *DidAuthAggregate) VerifyCredentialForAction(caller common.Address, did, credentialType string, credentialID common.Hash) bool {
	if a.isPrivileged(caller) {
		return true
	}
	return a.credentials[credentialKey{credentialType, did, credentialID}]
}

// HasRequiredRolesAndCredentials checks roles[i] is held by did together with the credential
// credentialIDs[i] of the type currently required for that role. Mismatched lengths are false,
// empty lists are true.
func (a *DidAuthAggregate) HasRequiredRolesAndCredentials(registry identity.Registry, caller common.Address, did string, roles []common.Hash, credentialIDs []common.Hash) bool {
	if a.isPrivileged(caller) {
		return true
	}
	if len(roles) != len(credentialIDs) {
		return false
	}
	if len(roles) == 0 {
		return true
	}
	if did == "" {
		return false
	}
	if active, err := registry.IsActive(did); err != nil || !active {
		return false
	}
	for i, role := range roles {
		if !a.HasDidRole(did, role) {
			return false
		}
		credentialType, err := a.GetRoleRequirement(role)
		if err != nil {
			return false
		}
		if !a.credentials[credentialKey{credentialType, did, credentialIDs[i]}] {
			return false
		}
	}
	return true
}

// Authenticate is HasDidRole for active DIDs.
func (a *DidAuthAggregate) Authenticate(registry identity.Registry, did string, role common.Hash) bool {
	if did == "" {
		return false
	}
	if active, err := registry.IsActive(did); err != nil || !active {
		return false
	}
	return a.HasDidRole(did, role)
}
