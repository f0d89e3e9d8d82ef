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

package api

import (
	"time"

	"github.com/Modern-Miracle/NGDocuVault-sub001/domain/vault"
	"github.com/ethereum/go-ethereum/common"
)

// CallerHeader carries the address of the authenticated caller.
const CallerHeader = "X-Caller-Address"

// RegisterDocumentRequest registers one document. IssuanceDate defaults to now.
type RegisterDocumentRequest struct {
	ContentHash    common.Hash    `json:"contentHash"`
	CID            string         `json:"cid"`
	Holder         common.Address `json:"holder"`
	IssuanceDate   *time.Time     `json:"issuanceDate,omitempty"`
	ExpirationDate time.Time      `json:"expirationDate"`
	DocumentType   string         `json:"documentType"`
}

type RegisterDocumentsRequest struct {
	Documents []RegisterDocumentRequest `json:"documents"`
}

type UpdateDocumentRequest struct {
	ContentHash    common.Hash `json:"contentHash"`
	CID            string      `json:"cid"`
	ExpirationDate time.Time   `json:"expirationDate"`
	DocumentType   string      `json:"documentType"`
}

type DocumentIDResponse struct {
	DocumentID common.Hash `json:"documentId"`
}

type DocumentIDsRequest struct {
	DocumentIDs []common.Hash `json:"documentIds"`
}

type DocumentIDsResponse struct {
	DocumentIDs []common.Hash `json:"documentIds"`
}

// DocumentInfoResponse is vault.DocumentInfo with the document type by name.
type DocumentInfoResponse struct {
	DocumentID     common.Hash    `json:"documentId"`
	Verified       bool           `json:"isVerified"`
	Expired        bool           `json:"isExpired"`
	Issuer         common.Address `json:"issuer"`
	Holder         common.Address `json:"holder"`
	IssuanceDate   int64          `json:"issuanceDate"`
	ExpirationDate int64          `json:"expirationDate"`
	DocumentType   string         `json:"documentType"`
}

type ShareRequest struct {
	Requester common.Address `json:"requester"`
}

type ConsentRequest struct {
	Consent    string    `json:"consent"`
	ValidUntil time.Time `json:"validUntil"`
}

type ConsentResponse struct {
	Consent    string `json:"consent"`
	ValidUntil int64  `json:"validUntil"`
}

type AddressRequest struct {
	Address common.Address `json:"address"`
}

type ActiveResponse struct {
	Active bool `json:"active"`
}

type ValidResponse struct {
	Valid bool `json:"valid"`
}

type RoleRequest struct {
	Role string `json:"role"`
}

type RolesResponse struct {
	Roles []string `json:"roles"`
}

type RequirementResponse struct {
	Role           string `json:"role"`
	CredentialType string `json:"credentialType"`
}

type IssueDocumentRequest struct {
	Hash common.Hash `json:"hash"`
}

type VerifyCredentialRequest struct {
	CredentialType string         `json:"credentialType"`
	Issuer         common.Address `json:"issuer"`
	Subject        string         `json:"subject"`
}

type PausedResponse struct {
	Paused bool `json:"paused"`
}

type AdminResponse struct {
	Admin bool `json:"admin"`
}

// DidRegistrationRequest registers a DID controlled by the caller. An empty document is generated.
type DidRegistrationRequest struct {
	DID       string `json:"did"`
	Document  string `json:"document,omitempty"`
	PublicKey string `json:"publicKey,omitempty"`
}

type AddressResponse struct {
	Address common.Address `json:"address"`
}

// DidResponse carries the empty DID for accounts without one.
type DidResponse struct {
	DID string `json:"did"`
}

type HasRoleResponse struct {
	HasRole bool `json:"hasRole"`
}

type TrustRequest struct {
	Trusted bool `json:"trusted"`
}

type TrustedResponse struct {
	Trusted bool `json:"trusted"`
}

type RequirementRequest struct {
	CredentialType string `json:"credentialType"`
}

type CredentialRequest struct {
	CredentialType string      `json:"credentialType"`
	CredentialID   common.Hash `json:"credentialId"`
}

type CredentialCheckRequest struct {
	DID            string      `json:"did"`
	CredentialType string      `json:"credentialType"`
	CredentialID   common.Hash `json:"credentialId"`
}

type AuthenticateRequest struct {
	DID  string `json:"did"`
	Role string `json:"role"`
}

// RoleCheckRequest pairs Roles[i] with CredentialIDs[i].
type RoleCheckRequest struct {
	DID           string        `json:"did"`
	Roles         []string      `json:"roles"`
	CredentialIDs []common.Hash `json:"credentialIds"`
}

// unix renders the zero time as 0.
func unix(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.Unix()
}

func documentInfoResponse(id common.Hash, info vault.DocumentInfo) DocumentInfoResponse {
	return DocumentInfoResponse{
		DocumentID:     id,
		Verified:       info.Verified,
		Expired:        info.Expired,
		Issuer:         info.Issuer,
		Holder:         info.Holder,
		IssuanceDate:   unix(info.IssuanceDate),
		ExpirationDate: unix(info.ExpirationDate),
		DocumentType:   info.DocumentType.String(),
	}
}
