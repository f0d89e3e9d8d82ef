package verifier

import (
	"github.com/Modern-Miracle/NGDocuVault-sub001/domain"
	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	eh "github.com/looplab/eventhorizon"
)

const DeployCmdType = eh.CommandType("did-verifier:deploy")
const SetIssuerTrustStatusCmdType = eh.CommandType("did-verifier:set-issuer-trust-status")

func init() {
	eh.RegisterCommand(func() eh.Command { return &Deploy{} })
	eh.RegisterCommand(func() eh.Command { return &SetIssuerTrustStatus{} })
}

// Deploy makes Tx.From the verifier admin.
type Deploy struct {
	ID        uuid.UUID
	domain.Tx `eh:"optional"`
}

func (cmd Deploy) AggregateID() uuid.UUID {
	return cmd.ID
}

func (cmd Deploy) AggregateType() eh.AggregateType {
	return domain.DidVerifierAggregateType
}

func (cmd Deploy) CommandType() eh.CommandType {
	return DeployCmdType
}

// SetIssuerTrustStatus marks issuer as (un)trusted for one credential type.
// The empty credential type is a type of its own.
type SetIssuerTrustStatus struct {
	ID             uuid.UUID
	domain.Tx      `eh:"optional"`
	CredentialType string         `eh:"optional"`
	Issuer         common.Address `eh:"optional"`
	Trusted        bool           `eh:"optional"`
}

func (cmd SetIssuerTrustStatus) AggregateID() uuid.UUID {
	return cmd.ID
}

func (cmd SetIssuerTrustStatus) AggregateType() eh.AggregateType {
	return domain.DidVerifierAggregateType
}

func (cmd SetIssuerTrustStatus) CommandType() eh.CommandType {
	return SetIssuerTrustStatusCmdType
}
