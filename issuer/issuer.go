package issuer

import (
	"errors"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// ErrOnlyIssuer keeps the plain revert message of the issuer contract.
var ErrOnlyIssuer = errors.New("Only issuer can call this function")

var ErrUnknownDocument = errors.New("Document does not exist")

var ErrOnlyOwner = errors.New("Only owner can call this function")

// Record is what the issuer keeps per issued document hash. Issuer is the issuing contract's
// issuer, Caller the account that issued.
type Record struct {
	Hash      common.Hash    `json:"hash"`
	Issuer    common.Address `json:"issuer"`
	Caller    common.Address `json:"caller"`
	Timestamp time.Time      `json:"timestamp"`
}

// Issuer is the credential issuer collaborator.
type Issuer interface {
	IssueDocument(caller common.Address, hash common.Hash) error
	RevokeDocument(caller common.Address, hash common.Hash) error
	// GetDocument returns the zero Record for unknown hashes.
	GetDocument(hash common.Hash) Record
	AddIssuer(caller, issuer common.Address) error
}
