package vault

import (
	"time"

	"github.com/ethereum/go-ethereum/common"
)

func (a *DocuVaultAggregate) Owner() common.Address {
	return a.owner
}

func (a *DocuVaultAggregate) Paused() bool {
	return a.paused
}

func (a *DocuVaultAggregate) HasRole(role common.Hash, account common.Address) bool {
	return a.roles[role][account]
}

// IsAdmin reports whether account holds ADMIN_ROLE or DEFAULT_ADMIN_ROLE.
func (a *DocuVaultAggregate) IsAdmin(account common.Address) bool {
	return a.HasRole(AdminRole, account) || a.HasRole(DefaultAdminRole, account)
}

func (a *DocuVaultAggregate) IsIssuerActive(issuer common.Address) bool {
	return a.issuers[issuer]
}

func (a *DocuVaultAggregate) GetDocument(documentID common.Hash) (Document, bool) {
	doc, ok := a.documents[documentID]
	return doc, ok
}

// GetDocumentInfo never fails. Unknown ids report an unverified, expired zero document.
func (a *DocuVaultAggregate) GetDocumentInfo(documentID common.Hash, now time.Time) DocumentInfo {
	return a.documents[documentID].Info(now)
}

// GetConsentStatus defaults to (PENDING, zero time).
func (a *DocuVaultAggregate) GetConsentStatus(documentID common.Hash, requester common.Address) (ConsentStatus, time.Time) {
	c := a.consents[consentKey{documentID, requester}]
	return c.status, c.validUntil
}
