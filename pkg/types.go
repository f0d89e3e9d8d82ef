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
	"time"

	"github.com/Modern-Miracle/NGDocuVault-sub001/domain/vault"
	"github.com/ethereum/go-ethereum/common"
)

// DocumentRegistration is one row of a (batch) document registration.
// A zero IssuanceDate means the time of the transaction.
type DocumentRegistration struct {
	ContentHash    common.Hash
	CID            string
	Holder         common.Address
	IssuanceDate   time.Time
	ExpirationDate time.Time
	DocumentType   vault.DocumentType
}

// DidRegistration registers a DID in the identity registry. An empty Document is generated
// from the DID and its controller.
type DidRegistration struct {
	Controller common.Address
	DID        string
	Document   string
	PublicKey  string
}

// TimeNow is the clock of every transaction, replaceable for testing.
var TimeNow = time.Now
