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
	"github.com/Modern-Miracle/NGDocuVault-sub001/issuer"
	"github.com/ethereum/go-ethereum/common"
)

func (cl *DocuVault) credentialIssuer() (issuer.Issuer, error) {
	if cl.Issuer == nil {
		return nil, ErrNotStarted
	}
	return cl.Issuer, nil
}

// IssueDocument records hash with the credential issuer. Failures keep the issuer's plain messages.
func (cl *DocuVault) IssueDocument(caller common.Address, hash common.Hash) error {
	i, err := cl.credentialIssuer()
	if err != nil {
		return err
	}
	return i.IssueDocument(caller, hash)
}

func (cl *DocuVault) RevokeIssuedDocument(caller common.Address, hash common.Hash) error {
	i, err := cl.credentialIssuer()
	if err != nil {
		return err
	}
	return i.RevokeDocument(caller, hash)
}

func (cl *DocuVault) GetIssuedDocument(hash common.Hash) (issuer.Record, error) {
	i, err := cl.credentialIssuer()
	if err != nil {
		return issuer.Record{}, err
	}
	return i.GetDocument(hash), nil
}

func (cl *DocuVault) AddCredentialIssuer(caller, account common.Address) error {
	i, err := cl.credentialIssuer()
	if err != nil {
		return err
	}
	return i.AddIssuer(caller, account)
}
