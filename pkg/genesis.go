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
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/Modern-Miracle/NGDocuVault-sub001/domain/auth"
	"github.com/Modern-Miracle/NGDocuVault-sub001/identity"
	"github.com/Modern-Miracle/NGDocuVault-sub001/pkg/logger"
	"github.com/ethereum/go-ethereum/common"
)

// Genesis seeds a freshly deployed system. Every entry is a transaction of the owner.
type Genesis struct {
	Dids     []GenesisDid    `toml:"did"`
	Vault    GenesisVault    `toml:"vault"`
	Auth     GenesisAuth     `toml:"auth"`
	Verifier GenesisVerifier `toml:"verifier"`
}

type GenesisDid struct {
	Controller string `toml:"controller"`
	DID        string `toml:"did"`
	Document   string `toml:"document"`
	PublicKey  string `toml:"publicKey"`
}

type GenesisVault struct {
	Admins  []string `toml:"admins"`
	Issuers []string `toml:"issuers"`
}

type GenesisRole struct {
	DID  string `toml:"did"`
	Role string `toml:"role"`
}

type GenesisTrust struct {
	CredentialType string `toml:"credentialType"`
	Issuer         string `toml:"issuer"`
}

type GenesisAuth struct {
	Roles          []GenesisRole  `toml:"role"`
	TrustedIssuers []GenesisTrust `toml:"trusted"`
}

type GenesisVerifier struct {
	TrustedIssuers []GenesisTrust `toml:"trusted"`
}

// LoadGenesis decodes a toml genesis file.
func LoadGenesis(path string) (*Genesis, error) {
	genesis := &Genesis{}
	if _, err := toml.DecodeFile(path, genesis); err != nil {
		return nil, fmt.Errorf("could not load genesis %s: %w", path, err)
	}
	return genesis, nil
}

func (d GenesisDid) registration() (DidRegistration, error) {
	controller, err := parseAddress(d.Controller)
	if err != nil {
		return DidRegistration{}, err
	}
	return DidRegistration{
		Controller: controller,
		DID:        d.DID,
		Document:   d.Document,
		PublicKey:  d.PublicKey,
	}, nil
}

func parseAddress(value string) (common.Address, error) {
	if !common.IsHexAddress(value) {
		return common.Address{}, fmt.Errorf("invalid address '%s'", value)
	}
	return common.HexToAddress(value), nil
}

// Apply runs the genesis transactions as the owner of dv. DIDs already in the registry are
// skipped since the registry outlives the contracts.
func (g Genesis) Apply(ctx context.Context, dv *DocuVault) error {
	owner := dv.Owner()
	for _, d := range g.Dids {
		registration, err := d.registration()
		if err != nil {
			return err
		}
		err = dv.RegisterDid(registration)
		if errors.Is(err, identity.ErrAlreadyRegistered) {
			logger.Logger().Debugf("genesis: DID %s already registered", d.DID)
			continue
		}
		if err != nil {
			return fmt.Errorf("genesis DID %s: %w", d.DID, err)
		}
	}
	for _, a := range g.Vault.Admins {
		admin, err := parseAddress(a)
		if err != nil {
			return err
		}
		if err := dv.AddAdmin(ctx, owner, admin); err != nil {
			return fmt.Errorf("genesis admin %s: %w", a, err)
		}
	}
	for _, i := range g.Vault.Issuers {
		issuer, err := parseAddress(i)
		if err != nil {
			return err
		}
		if err := dv.RegisterIssuer(ctx, owner, issuer); err != nil {
			return fmt.Errorf("genesis issuer %s: %w", i, err)
		}
	}
	for _, r := range g.Auth.Roles {
		role, ok := auth.RoleByName(r.Role)
		if !ok {
			return fmt.Errorf("genesis role %s: %w", r.Role, auth.ErrInvalidRole)
		}
		if err := dv.GrantDidRole(ctx, owner, r.DID, role); err != nil {
			return fmt.Errorf("genesis role %s for %s: %w", r.Role, r.DID, err)
		}
	}
	for _, t := range g.Auth.TrustedIssuers {
		issuer, err := parseAddress(t.Issuer)
		if err != nil {
			return err
		}
		if err := dv.SetTrustedIssuer(ctx, owner, t.CredentialType, issuer, true); err != nil {
			return fmt.Errorf("genesis trusted issuer %s: %w", t.Issuer, err)
		}
	}
	for _, t := range g.Verifier.TrustedIssuers {
		issuer, err := parseAddress(t.Issuer)
		if err != nil {
			return err
		}
		if err := dv.SetIssuerTrustStatus(ctx, owner, t.CredentialType, issuer, true); err != nil {
			return fmt.Errorf("genesis verifier issuer %s: %w", t.Issuer, err)
		}
	}
	logger.Logger().Infof("genesis applied: %d DIDs, %d vault issuers, %d role grants", len(g.Dids), len(g.Vault.Issuers), len(g.Auth.Roles))
	return nil
}
