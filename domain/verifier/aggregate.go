package verifier

import (
	"context"
	"fmt"

	"github.com/Modern-Miracle/NGDocuVault-sub001/domain"
	domainEvents "github.com/Modern-Miracle/NGDocuVault-sub001/domain/events"
	"github.com/Modern-Miracle/NGDocuVault-sub001/pkg/logger"
	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	eh "github.com/looplab/eventhorizon"
	"github.com/looplab/eventhorizon/aggregatestore/events"
)

func init() {
	eh.RegisterAggregate(func(id uuid.UUID) eh.Aggregate {
		return NewDidVerifierAggregate(id)
	})
}

type trustKey struct {
	credentialType string
	issuer         common.Address
}

type DidVerifierAggregate struct {
	*events.AggregateBase

	deployed bool
	admin    common.Address
	trusted  map[trustKey]bool
}

func NewDidVerifierAggregate(id uuid.UUID) *DidVerifierAggregate {
	return &DidVerifierAggregate{
		AggregateBase: events.NewAggregateBase(domain.DidVerifierAggregateType, id),
		trusted:       map[trustKey]bool{},
	}
}

func (a *DidVerifierAggregate) HandleCommand(ctx context.Context, command eh.Command) error {
	logger.Logger().Debugf("[DidVerifierAggregate] command: %v, %+v", command.CommandType(), command)

	switch cmd := command.(type) {
	case *Deploy:
		if a.deployed {
			return domain.ErrAlreadyDeployed
		}
		a.StoreEvent(domainEvents.VerifierDeployed, domainEvents.DeployedData{Owner: cmd.From}, cmd.Time)
	case *SetIssuerTrustStatus:
		if !a.deployed {
			return domain.ErrNotDeployed
		}
		if cmd.From != a.admin {
			return ErrUnauthorized
		}
		if cmd.Issuer == (common.Address{}) {
			return ErrInvalidIssuer
		}
		a.StoreEvent(domainEvents.VerifierIssuerTrustStatusUpdated, domainEvents.TrustData{
			CredentialType: cmd.CredentialType,
			Issuer:         cmd.Issuer,
			Trusted:        cmd.Trusted,
		}, cmd.Time)
	default:
		return fmt.Errorf("[DidVerifierAggregate] could not handle command '%s': %w", command.CommandType(), domain.ErrUnknownCommand)
	}
	return nil
}

func (a *DidVerifierAggregate) ApplyEvent(ctx context.Context, event eh.Event) error {
	switch data := domainEvents.Data(event).(type) {
	case domainEvents.DeployedData:
		a.deployed = true
		a.admin = data.Owner
	case domainEvents.TrustData:
		a.trusted[trustKey{data.CredentialType, data.Issuer}] = data.Trusted
	default:
		logger.Logger().Warnf("[DidVerifierAggregate] could not apply event: %s", event.EventType())
	}
	return nil
}
