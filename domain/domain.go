package domain

import (
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/google/uuid"
	eh "github.com/looplab/eventhorizon"
)

const DidAuthAggregateType = eh.AggregateType("did-auth")

const DidVerifierAggregateType = eh.AggregateType("did-verifier")

const DocuVaultAggregateType = eh.AggregateType("docu-vault")

// ContractIDSpace is the namespace for deterministic contract instance ids.
var ContractIDSpace = uuid.Must(uuid.Parse("6ba7b812-9dad-11d1-80b4-00c04fd430c8"))

// ContractID returns the aggregate id of the contract instance deployed under name.
func ContractID(name string) uuid.UUID {
	return uuid.NewSHA1(ContractIDSpace, []byte(name))
}

// Tx is the transaction envelope every contract command carries.
// From is the caller (msg.sender), Time the block timestamp.
type Tx struct {
	From common.Address
	Time time.Time
}

// RoleHash returns the bytes32 identifier of a named role.
func RoleHash(name string) common.Hash {
	return crypto.Keccak256Hash([]byte(name))
}
