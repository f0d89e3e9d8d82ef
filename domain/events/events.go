package events

import (
	"github.com/ethereum/go-ethereum/common"
	eh "github.com/looplab/eventhorizon"
)

const AuthDeployed = eh.EventType("did-auth:deployed")
const VerifierDeployed = eh.EventType("did-verifier:deployed")
const VaultDeployed = eh.EventType("docu-vault:deployed")

// DeployedData is stored when a contract instance runs its constructor.
type DeployedData struct {
	Owner common.Address
}

// TrustData is the payload of IssuerTrustStatusUpdated(credentialType, issuer, trusted).
type TrustData struct {
	CredentialType string
	Issuer         common.Address
	Trusted        bool
}

func init() {
	for _, t := range []eh.EventType{AuthDeployed, VerifierDeployed, VaultDeployed} {
		eh.RegisterEventData(t, func() eh.EventData {
			return &DeployedData{}
		})
	}
}
