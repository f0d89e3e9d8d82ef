package events

import eh "github.com/looplab/eventhorizon"

const VerifierIssuerTrustStatusUpdated = eh.EventType("did-verifier:issuer-trust-status-updated")

func init() {
	eh.RegisterEventData(VerifierIssuerTrustStatusUpdated, func() eh.EventData {
		return &TrustData{}
	})
}
