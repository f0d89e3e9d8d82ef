package vault

import (
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

type DocumentType uint8

const (
	Generic DocumentType = iota
	BirthCertificate
	DeathCertificate
	MarriageCertificate
	IDCard
	Passport
	Other
)

var documentTypeNames = []string{
	"GENERIC",
	"BIRTH_CERTIFICATE",
	"DEATH_CERTIFICATE",
	"MARRIAGE_CERTIFICATE",
	"ID_CARD",
	"PASSPORT",
	"OTHER",
}

func (t DocumentType) Valid() bool {
	return int(t) < len(documentTypeNames)
}

func (t DocumentType) String() string {
	if !t.Valid() {
		return "UNKNOWN"
	}
	return documentTypeNames[t]
}

// ParseDocumentType accepts the upper case names, case insensitive.
func ParseDocumentType(name string) (DocumentType, bool) {
	for i, n := range documentTypeNames {
		if strings.EqualFold(n, name) {
			return DocumentType(i), true
		}
	}
	return 0, false
}

type ConsentStatus uint8

const (
	Pending ConsentStatus = iota
	Granted
	Rejected
)

var consentNames = []string{"PENDING", "GRANTED", "REJECTED"}

func (c ConsentStatus) String() string {
	if int(c) >= len(consentNames) {
		return "UNKNOWN"
	}
	return consentNames[c]
}

func ParseConsentStatus(name string) (ConsentStatus, bool) {
	for i, n := range consentNames {
		if strings.EqualFold(n, name) {
			return ConsentStatus(i), true
		}
	}
	return 0, false
}

// Document is a stored registration. Verified is never cleared by expiry.
type Document struct {
	ContentHash    common.Hash
	CID            string
	Issuer         common.Address
	Holder         common.Address
	IssuanceDate   time.Time
	ExpirationDate time.Time
	Verified       bool
	DocumentType   DocumentType
}

// DocumentInfo is the read view of a document at a point in time.
type DocumentInfo struct {
	Verified       bool           `json:"isVerified"`
	Expired        bool           `json:"isExpired"`
	Issuer         common.Address `json:"issuer"`
	Holder         common.Address `json:"holder"`
	IssuanceDate   time.Time      `json:"issuanceDate"`
	ExpirationDate time.Time      `json:"expirationDate"`
	DocumentType   DocumentType   `json:"documentType"`
}

// Info evaluates expiry against now. The zero Document yields the non-existent view:
// not verified, expired, zero fields.
func (d Document) Info(now time.Time) DocumentInfo {
	return DocumentInfo{
		Verified:       d.Verified,
		Expired:        IsExpired(d.ExpirationDate, now),
		Issuer:         d.Issuer,
		Holder:         d.Holder,
		IssuanceDate:   d.IssuanceDate,
		ExpirationDate: d.ExpirationDate,
		DocumentType:   d.DocumentType,
	}
}

// IsExpired is expiration <= now. The zero time is always expired.
func IsExpired(expiration, now time.Time) bool {
	return !expiration.After(now)
}

// GenerateDocumentID is keccak256(contentHash ‖ holder ‖ cid), the packed encoding of
// (bytes32, address, string).
func GenerateDocumentID(contentHash common.Hash, holder common.Address, cid string) common.Hash {
	return crypto.Keccak256Hash(contentHash.Bytes(), holder.Bytes(), []byte(cid))
}

// VerifyCid reports whether documentID derives from (contentHash, holder, cid).
func VerifyCid(contentHash common.Hash, holder common.Address, cid string, documentID common.Hash) bool {
	return GenerateDocumentID(contentHash, holder, cid) == documentID
}
