package auth

import (
	"github.com/Modern-Miracle/NGDocuVault-sub001/domain"
	"github.com/ethereum/go-ethereum/common"
)

var AdminRole = domain.RoleHash("ADMIN_ROLE")
var IssuerRole = domain.RoleHash("ISSUER_ROLE")
var VerifierRole = domain.RoleHash("VERIFIER_ROLE")
var HolderRole = domain.RoleHash("HOLDER_ROLE")
var ConsumerRole = domain.RoleHash("CONSUMER_ROLE")
var ProducerRole = domain.RoleHash("PRODUCER_ROLE")
var ProviderRole = domain.RoleHash("PROVIDER_ROLE")

// Roles lists the recognized DID roles in enumeration order, with their default credential type.
var Roles = []struct {
	Name           string
	Role           common.Hash
	CredentialType string
}{
	{"ADMIN_ROLE", AdminRole, "ADMIN_CREDENTIAL"},
	{"ISSUER_ROLE", IssuerRole, "ISSUER_CREDENTIAL"},
	{"VERIFIER_ROLE", VerifierRole, "VERIFIER_CREDENTIAL"},
	{"HOLDER_ROLE", HolderRole, "HOLDER_CREDENTIAL"},
	{"CONSUMER_ROLE", ConsumerRole, "CONSUMER_CREDENTIAL"},
	{"PRODUCER_ROLE", ProducerRole, "PRODUCER_CREDENTIAL"},
	{"PROVIDER_ROLE", ProviderRole, "PROVIDER_CREDENTIAL"},
}

// IsRecognizedRole reports whether role is one of Roles. The zero hash never is.
func IsRecognizedRole(role common.Hash) bool {
	for _, r := range Roles {
		if r.Role == role {
			return true
		}
	}
	return false
}

// RoleByName resolves a role name like "ISSUER_ROLE" or "ISSUER".
func RoleByName(name string) (common.Hash, bool) {
	for _, r := range Roles {
		if r.Name == name || r.Name == name+"_ROLE" {
			return r.Role, true
		}
	}
	return common.Hash{}, false
}
