package events

import (
	"time"

	"github.com/ethereum/go-ethereum/common"
	eh "github.com/looplab/eventhorizon"
)

// DocumentStored is the storage write behind every registration. The public
// log for the same registration is DocumentRegistered.
const DocumentStored = eh.EventType("docu-vault:document-stored")

const DocumentRegistered = eh.EventType("docu-vault:document-registered")
const DocumentBatchRegistered = eh.EventType("docu-vault:document-batch-registered")
const DocumentUpdated = eh.EventType("docu-vault:document-updated")
const DocumentVerified = eh.EventType("docu-vault:document-verified")
const DocumentBatchVerified = eh.EventType("docu-vault:document-batch-verified")
const VerificationRequested = eh.EventType("docu-vault:verification-requested")
const ShareRequested = eh.EventType("docu-vault:share-requested")
const ConsentChanged = eh.EventType("docu-vault:consent-changed")
const ConsentRevoked = eh.EventType("docu-vault:consent-revoked")
const DocumentShared = eh.EventType("docu-vault:document-shared")

const IssuerRegistered = eh.EventType("docu-vault:issuer-registered")
const IssuerDeactivated = eh.EventType("docu-vault:issuer-deactivated")
const IssuerActivated = eh.EventType("docu-vault:issuer-activated")
const AdminAdded = eh.EventType("docu-vault:admin-added")
const AdminRemoved = eh.EventType("docu-vault:admin-removed")
const Paused = eh.EventType("docu-vault:paused")
const Unpaused = eh.EventType("docu-vault:unpaused")

type DocumentData struct {
	DocumentID     common.Hash
	ContentHash    common.Hash
	CID            string
	Issuer         common.Address
	Holder         common.Address
	IssuanceDate   time.Time
	ExpirationDate time.Time
	Verified       bool
	DocumentType   uint8
}

// DocumentRegisteredData is DocumentRegistered(documentId, issuer, holder, timestamp).
type DocumentRegisteredData struct {
	DocumentID common.Hash
	Issuer     common.Address
	Holder     common.Address
	Timestamp  time.Time
}

// DocumentVerifiedData is DocumentVerified(documentId, verifier, timestamp).
type DocumentVerifiedData struct {
	DocumentID common.Hash
	Verifier   common.Address
	Timestamp  time.Time
}

// BatchData is DocumentBatchVerified(count, verifier, timestamp) and DocumentBatchRegistered.
type BatchData struct {
	Count     int
	Account   common.Address
	Timestamp time.Time
}

type DocumentUpdatedData struct {
	OldDocumentID common.Hash
	NewDocumentID common.Hash
	Issuer        common.Address
	Timestamp     time.Time
}

// VerificationRequestedData is VerificationRequested(documentId, holder, timestamp).
type VerificationRequestedData struct {
	DocumentID common.Hash
	Holder     common.Address
	Timestamp  time.Time
}

// ShareData is used by ShareRequested, ConsentRevoked and DocumentShared(documentId, requester, timestamp).
type ShareData struct {
	DocumentID common.Hash
	Requester  common.Address
	Timestamp  time.Time
}

type ConsentData struct {
	DocumentID common.Hash
	Requester  common.Address
	Consent    uint8
	ValidUntil time.Time
	Timestamp  time.Time
}

// AccountData is used by the issuer, admin and pause events: (address, timestamp).
type AccountData struct {
	Account   common.Address
	Timestamp time.Time
}

func init() {
	eh.RegisterEventData(DocumentStored, func() eh.EventData {
		return &DocumentData{}
	})
	eh.RegisterEventData(DocumentRegistered, func() eh.EventData {
		return &DocumentRegisteredData{}
	})
	eh.RegisterEventData(DocumentBatchRegistered, func() eh.EventData {
		return &BatchData{}
	})
	eh.RegisterEventData(DocumentUpdated, func() eh.EventData {
		return &DocumentUpdatedData{}
	})
	eh.RegisterEventData(DocumentVerified, func() eh.EventData {
		return &DocumentVerifiedData{}
	})
	eh.RegisterEventData(DocumentBatchVerified, func() eh.EventData {
		return &BatchData{}
	})
	eh.RegisterEventData(VerificationRequested, func() eh.EventData {
		return &VerificationRequestedData{}
	})
	for _, t := range []eh.EventType{ShareRequested, ConsentRevoked, DocumentShared} {
		eh.RegisterEventData(t, func() eh.EventData {
			return &ShareData{}
		})
	}
	eh.RegisterEventData(ConsentChanged, func() eh.EventData {
		return &ConsentData{}
	})
	for _, t := range []eh.EventType{IssuerRegistered, IssuerDeactivated, IssuerActivated, AdminAdded, AdminRemoved, Paused, Unpaused} {
		eh.RegisterEventData(t, func() eh.EventData {
			return &AccountData{}
		})
	}
}
