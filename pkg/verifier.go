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
	"github.com/Modern-Miracle/NGDocuVault-sub001/domain/verifier"
	"github.com/ethereum/go-ethereum/common"
)

func (cl *DocuVault) SetIssuerTrustStatus(ctx context.Context, caller common.Address, credentialType string, issuer common.Address, trusted bool) error {
	return cl.handle(ctx, &verifier.SetIssuerTrustStatus{ID: VerifierID, Tx: cl.tx(caller), CredentialType: credentialType, Issuer: issuer, Trusted: trusted})
}

func (cl *DocuVault) verifierContract(ctx context.Context) (*verifier.DidVerifierAggregate, error) {
	agg, err := cl.load(ctx, domain.DidVerifierAggregateType, VerifierID)
	if err != nil {
		return nil, err
	}
	contract, ok := agg.(*verifier.DidVerifierAggregate)
	if !ok {
		return nil, fmt.Errorf("unexpected aggregate %T for %s", agg, domain.DidVerifierAggregateType)
	}
	return contract, nil
}

func (cl *DocuVault) IsIssuerTrusted(ctx context.Context, credentialType string, issuer common.Address) bool {
	contract, err := cl.verifierContract(ctx)
	if err != nil {
		return false
	}
	return contract.IsIssuerTrusted(credentialType, issuer)
}

// VerifyCredential fails rather than returning false, see verifier.DidVerifierAggregate.
func (cl *DocuVault) VerifyCredential(ctx context.Context, credentialType string, issuer common.Address, subject string) (bool, error) {
	contract, err := cl.verifierContract(ctx)
	if err != nil {
		return false, err
	}
	return contract.VerifyCredential(cl.Registry, credentialType, issuer, subject)
}
