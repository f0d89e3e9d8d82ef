/*
 *  DocuVault holds the logic for decentralized document custody
 *  Copyright (C) 2020 DocuVault contributors
 *
 *  This program is free software: you can redistribute it and/or modify
 *  it under the terms of the GNU General Public License as published by
 *  the Free Software Foundation, either version 3 of the License, or
 *  (at your option) any later version.
 *
 *  This program is distributed in the hope that it will be useful,
 *  but WITHOUT ANY WARRANTY; without even the implied warranty of
 *  MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 *  GNU General Public License for more details.
 *
 *  You should have received a copy of the GNU General Public License
 *  along with this program.  If not, see <https://www.gnu.org/licenses/>.
 */

package pkg

import (
	"context"
	"fmt"

	"github.com/Modern-Miracle/NGDocuVault-sub001/domain"
	"github.com/Modern-Miracle/NGDocuVault-sub001/domain/auth"
	"github.com/Modern-Miracle/NGDocuVault-sub001/identity"
	"github.com/ethereum/go-ethereum/common"
)

func (cl *DocuVault) registry() (identity.Registry, error) {
	if cl.Registry == nil {
		return nil, ErrNotStarted
	}
	return cl.Registry, nil
}

// RegisterDid registers r.DID with r.Controller, the caller, as its controller.
func (cl *DocuVault) RegisterDid(r DidRegistration) error {
	registry, err := cl.registry()
	if err != nil {
		return err
	}
	return registry.RegisterDid(r.Controller, r.DID, r.Document, r.PublicKey)
}

func (cl *DocuVault) DeactivateDid(caller common.Address, did string) error {
	registry, err := cl.registry()
	if err != nil {
		return err
	}
	return registry.DeactivateDid(caller, did)
}

func (cl *DocuVault) ReactivateDid(caller common.Address, did string) error {
	registry, err := cl.registry()
	if err != nil {
		return err
	}
	return registry.ReactivateDid(caller, did)
}

func (cl *DocuVault) ResolveDid(did string) (common.Address, error) {
	registry, err := cl.registry()
	if err != nil {
		return common.Address{}, err
	}
	return registry.ResolveDid(did)
}

func (cl *DocuVault) IsDidActive(did string) (bool, error) {
	registry, err := cl.registry()
	if err != nil {
		return false, err
	}
	return registry.IsActive(did)
}

// GetDidFromAddress returns the empty string for addresses without a DID.
func (cl *DocuVault) GetDidFromAddress(account common.Address) string {
	registry, err := cl.registry()
	if err != nil {
		return ""
	}
	return registry.AddressToDID(account)
}

// GetCallerDid is GetDidFromAddress for the caller of a transaction.
func (cl *DocuVault) GetCallerDid(caller common.Address) string {
	return cl.GetDidFromAddress(caller)
}

func (cl *DocuVault) GetDidDocument(did string) (*identity.DidRecord, error) {
	registry, err := cl.registry()
	if err != nil {
		return nil, err
	}
	return registry.GetDidDocument(did)
}

func (cl *DocuVault) GrantDidRole(ctx context.Context, caller common.Address, did string, role common.Hash) error {
	return cl.handle(ctx, &auth.GrantDidRole{ID: AuthID, Tx: cl.tx(caller), DID: did, Role: role})
}

func (cl *DocuVault) RevokeDidRole(ctx context.Context, caller common.Address, did string, role common.Hash) error {
	return cl.handle(ctx, &auth.RevokeDidRole{ID: AuthID, Tx: cl.tx(caller), DID: did, Role: role})
}

func (cl *DocuVault) SetTrustedIssuer(ctx context.Context, caller common.Address, credentialType string, issuer common.Address, trusted bool) error {
	return cl.handle(ctx, &auth.SetTrustedIssuer{ID: AuthID, Tx: cl.tx(caller), CredentialType: credentialType, Issuer: issuer, Trusted: trusted})
}

func (cl *DocuVault) SetRoleRequirement(ctx context.Context, caller common.Address, role common.Hash, credentialType string) error {
	return cl.handle(ctx, &auth.SetRoleRequirement{ID: AuthID, Tx: cl.tx(caller), Role: role, CredentialType: credentialType})
}

func (cl *DocuVault) IssueCredential(ctx context.Context, caller common.Address, credentialType, did string, credentialID common.Hash) error {
	return cl.handle(ctx, &auth.IssueCredential{ID: AuthID, Tx: cl.tx(caller), CredentialType: credentialType, DID: did, CredentialID: credentialID})
}

func (cl *DocuVault) RevokeCredential(ctx context.Context, caller common.Address, credentialType, did string, credentialID common.Hash) error {
	return cl.handle(ctx, &auth.RevokeCredential{ID: AuthID, Tx: cl.tx(caller), CredentialType: credentialType, DID: did, CredentialID: credentialID})
}

func (cl *DocuVault) authContract(ctx context.Context) (*auth.DidAuthAggregate, error) {
	agg, err := cl.load(ctx, domain.DidAuthAggregateType, AuthID)
	if err != nil {
		return nil, err
	}
	contract, ok := agg.(*auth.DidAuthAggregate)
	if !ok {
		return nil, fmt.Errorf("unexpected aggregate %T for %s", agg, domain.DidAuthAggregateType)
	}
	return contract, nil
}

// HasDidRole is false for unknown DIDs and roles and when the service is not started.
func (cl *DocuVault) HasDidRole(ctx context.Context, did string, role common.Hash) bool {
	contract, err := cl.authContract(ctx)
	if err != nil {
		return false
	}
	return contract.HasDidRole(did, role)
}

func (cl *DocuVault) HasRole(ctx context.Context, role common.Hash, account common.Address) bool {
	contract, err := cl.authContract(ctx)
	if err != nil {
		return false
	}
	return contract.HasRole(cl.Registry, role, account)
}

func (cl *DocuVault) GetUserRoles(ctx context.Context, did string) ([]common.Hash, error) {
	contract, err := cl.authContract(ctx)
	if err != nil {
		return nil, err
	}
	return contract.GetUserRoles(cl.Registry, did)
}

func (cl *DocuVault) GetUserRolesByAddress(ctx context.Context, account common.Address) ([]common.Hash, error) {
	contract, err := cl.authContract(ctx)
	if err != nil {
		return nil, err
	}
	return contract.GetUserRolesByAddress(cl.Registry, account)
}

func (cl *DocuVault) GetRoleRequirement(ctx context.Context, role common.Hash) (string, error) {
	contract, err := cl.authContract(ctx)
	if err != nil {
		return "", err
	}
	return contract.GetRoleRequirement(role)
}

func (cl *DocuVault) IsTrustedIssuer(ctx context.Context, credentialType string, issuer common.Address) bool {
	contract, err := cl.authContract(ctx)
	if err != nil {
		return false
	}
	return contract.IsTrustedIssuer(credentialType, issuer)
}

func (cl *DocuVault) VerifyCredentialForAction(ctx context.Context, caller common.Address, did, credentialType string, credentialID common.Hash) bool {
	contract, err := cl.authContract(ctx)
	if err != nil {
		return false
	}
	return contract.VerifyCredentialForAction(caller, did, credentialType, credentialID)
}

func (cl *DocuVault) HasRequiredRolesAndCredentials(ctx context.Context, caller common.Address, did string, roles []common.Hash, credentialIDs []common.Hash) bool {
	contract, err := cl.authContract(ctx)
	if err != nil {
		return false
	}
	return contract.HasRequiredRolesAndCredentials(cl.Registry, caller, did, roles, credentialIDs)
}

func (cl *DocuVault) Authenticate(ctx context.Context, did string, role common.Hash) bool {
	contract, err := cl.authContract(ctx)
	if err != nil {
		return false
	}
	return contract.Authenticate(cl.Registry, did, role)
}
