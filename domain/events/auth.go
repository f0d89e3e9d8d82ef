package events

import (
	"time"

	"github.com/ethereum/go-ethereum/common"
	eh "github.com/looplab/eventhorizon"
)

const RoleGranted = eh.EventType("did-auth:role-granted")
const RoleRevoked = eh.EventType("did-auth:role-revoked")
const IssuerTrustStatusUpdated = eh.EventType("did-auth:issuer-trust-status-updated")
const RoleRequirementUpdated = eh.EventType("did-auth:role-requirement-updated")
const CredentialIssued = eh.EventType("did-auth:credential-issued")
const CredentialRevoked = eh.EventType("did-auth:credential-revoked")

// RoleData is the payload of RoleGranted and RoleRevoked: (did, role, timestamp).
type RoleData struct {
	DID       string
	Role      common.Hash
	Timestamp time.Time
}

type RequirementData struct {
	Role           common.Hash
	CredentialType string
}

type CredentialData struct {
	CredentialType string
	DID            string
	CredentialID   common.Hash
	Timestamp      time.Time
}

func init() {
	eh.RegisterEventData(RoleGranted, func() eh.EventData {
		return &RoleData{}
	})
	eh.RegisterEventData(RoleRevoked, func() eh.EventData {
		return &RoleData{}
	})
	eh.RegisterEventData(IssuerTrustStatusUpdated, func() eh.EventData {
		return &TrustData{}
	})
	eh.RegisterEventData(RoleRequirementUpdated, func() eh.EventData {
		return &RequirementData{}
	})
	eh.RegisterEventData(CredentialIssued, func() eh.EventData {
		return &CredentialData{}
	})
	eh.RegisterEventData(CredentialRevoked, func() eh.EventData {
		return &CredentialData{}
	})
}
