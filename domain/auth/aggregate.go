package auth

import (
	"context"
	"fmt"

	"github.com/Modern-Miracle/NGDocuVault-sub001/domain"
	domainEvents "github.com/Modern-Miracle/NGDocuVault-sub001/domain/events"
	"github.com/Modern-Miracle/NGDocuVault-sub001/identity"
	"github.com/Modern-Miracle/NGDocuVault-sub001/pkg/logger"
	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	eh "github.com/looplab/eventhorizon"
	"github.com/looplab/eventhorizon/aggregatestore/events"
)

func init() {
	eh.RegisterAggregate(func(id uuid.UUID) eh.Aggregate {
		return NewDidAuthAggregate(id)
	})
}

type credentialKey struct {
	credentialType string
	did            string
	credentialID   common.Hash
}

// DidAuthAggregate is the role and credential authority. Its state only changes in ApplyEvent.
type DidAuthAggregate struct {
	*events.AggregateBase

	deployed       bool
	owner          common.Address
	didRoles       map[string]map[common.Hash]bool
	requirements   map[common.Hash]string
	trustedIssuers map[string]map[common.Address]bool
	credentials    map[credentialKey]bool
}

func NewDidAuthAggregate(id uuid.UUID) *DidAuthAggregate {
	return &DidAuthAggregate{
		AggregateBase:  events.NewAggregateBase(domain.DidAuthAggregateType, id),
		didRoles:       map[string]map[common.Hash]bool{},
		requirements:   map[common.Hash]string{},
		trustedIssuers: map[string]map[common.Address]bool{},
		credentials:    map[credentialKey]bool{},
	}
}

func (a *DidAuthAggregate) HandleCommand(ctx context.Context, command eh.Command) error {
	logger.Logger().Debugf("[DidAuthAggregate] command: %v, %+v", command.CommandType(), command)

	if deploy, ok := command.(*Deploy); ok {
		return a.deploy(ctx, deploy)
	}
	if !a.deployed {
		return domain.ErrNotDeployed
	}

	switch cmd := command.(type) {
	case *GrantDidRole:
		if err := a.checkRoleChange(ctx, cmd.Tx, cmd.DID, cmd.Role); err != nil {
			return err
		}
		a.StoreEvent(domainEvents.RoleGranted, domainEvents.RoleData{
			DID:       cmd.DID,
			Role:      cmd.Role,
			Timestamp: cmd.Time,
		}, cmd.Time)
	case *RevokeDidRole:
		if err := a.checkRoleChange(ctx, cmd.Tx, cmd.DID, cmd.Role); err != nil {
			return err
		}
		a.StoreEvent(domainEvents.RoleRevoked, domainEvents.RoleData{
			DID:       cmd.DID,
			Role:      cmd.Role,
			Timestamp: cmd.Time,
		}, cmd.Time)
	case *SetTrustedIssuer:
		if err := a.onlyAdmin(ctx, cmd.Tx); err != nil {
			return err
		}
		if cmd.Issuer == (common.Address{}) {
			return ErrInvalidDID
		}
		a.StoreEvent(domainEvents.IssuerTrustStatusUpdated, domainEvents.TrustData{
			CredentialType: cmd.CredentialType,
			Issuer:         cmd.Issuer,
			Trusted:        cmd.Trusted,
		}, cmd.Time)
	case *SetRoleRequirement:
		if err := a.onlyAdmin(ctx, cmd.Tx); err != nil {
			return err
		}
		if !IsRecognizedRole(cmd.Role) {
			return ErrInvalidRole
		}
		if cmd.CredentialType == "" {
			return ErrInvalidCredential
		}
		a.StoreEvent(domainEvents.RoleRequirementUpdated, domainEvents.RequirementData{
			Role:           cmd.Role,
			CredentialType: cmd.CredentialType,
		}, cmd.Time)
	case *IssueCredential:
		if err := a.onlyAdmin(ctx, cmd.Tx); err != nil {
			return err
		}
		if err := a.checkCredentialSubject(ctx, cmd.DID, cmd.CredentialType); err != nil {
			return err
		}
		a.StoreEvent(domainEvents.CredentialIssued, domainEvents.CredentialData{
			CredentialType: cmd.CredentialType,
			DID:            cmd.DID,
			CredentialID:   cmd.CredentialID,
			Timestamp:      cmd.Time,
		}, cmd.Time)
	case *RevokeCredential:
		if err := a.onlyAdmin(ctx, cmd.Tx); err != nil {
			return err
		}
		if cmd.DID == "" {
			return ErrInvalidDID
		}
		if !a.credentials[credentialKey{cmd.CredentialType, cmd.DID, cmd.CredentialID}] {
			return ErrCredentialNotIssued
		}
		a.StoreEvent(domainEvents.CredentialRevoked, domainEvents.CredentialData{
			CredentialType: cmd.CredentialType,
			DID:            cmd.DID,
			CredentialID:   cmd.CredentialID,
			Timestamp:      cmd.Time,
		}, cmd.Time)
	default:
		return fmt.Errorf("[DidAuthAggregate] could not handle command '%s': %w", command.CommandType(), domain.ErrUnknownCommand)
	}
	return nil
}

// deploy seeds the owner, the default role requirements and the owner's admin role.
func (a *DidAuthAggregate) deploy(ctx context.Context, cmd *Deploy) error {
	if a.deployed {
		return domain.ErrAlreadyDeployed
	}
	a.StoreEvent(domainEvents.AuthDeployed, domainEvents.DeployedData{Owner: cmd.From}, cmd.Time)
	for _, r := range Roles {
		a.StoreEvent(domainEvents.RoleRequirementUpdated, domainEvents.RequirementData{
			Role:           r.Role,
			CredentialType: r.CredentialType,
		}, cmd.Time)
	}
	if registry, err := identity.FromContext(ctx); err == nil {
		if did := registry.AddressToDID(cmd.From); did != "" {
			a.StoreEvent(domainEvents.RoleGranted, domainEvents.RoleData{
				DID:       did,
				Role:      AdminRole,
				Timestamp: cmd.Time,
			}, cmd.Time)
		}
	}
	return nil
}

func (a *DidAuthAggregate) checkRoleChange(ctx context.Context, tx domain.Tx, did string, role common.Hash) error {
	if err := a.onlyAdmin(ctx, tx); err != nil {
		return err
	}
	if did == "" {
		return ErrInvalidDID
	}
	if !IsRecognizedRole(role) {
		return ErrInvalidRole
	}
	return nil
}

func (a *DidAuthAggregate) checkCredentialSubject(ctx context.Context, did, credentialType string) error {
	if did == "" {
		return ErrInvalidDID
	}
	if credentialType == "" {
		return ErrInvalidCredential
	}
	registry, err := identity.FromContext(ctx)
	if err != nil {
		return err
	}
	active, err := registry.IsActive(did)
	if err != nil {
		return err
	}
	if !active {
		return ErrDeactivatedDID
	}
	return nil
}

// onlyAdmin passes for the privileged owner and for callers whose DID holds ADMIN_ROLE.
func (a *DidAuthAggregate) onlyAdmin(ctx context.Context, tx domain.Tx) error {
	if a.isPrivileged(tx.From) {
		return nil
	}
	registry, err := identity.FromContext(ctx)
	if err != nil {
		return ErrUnauthorized
	}
	if did := registry.AddressToDID(tx.From); did != "" && a.HasDidRole(did, AdminRole) {
		return nil
	}
	return ErrUnauthorized
}

func (a *DidAuthAggregate) ApplyEvent(ctx context.Context, event eh.Event) error {
	switch data := domainEvents.Data(event).(type) {
	case domainEvents.DeployedData:
		a.deployed = true
		a.owner = data.Owner
	case domainEvents.RoleData:
		roles, ok := a.didRoles[data.DID]
		if !ok {
			roles = map[common.Hash]bool{}
			a.didRoles[data.DID] = roles
		}
		roles[data.Role] = event.EventType() == domainEvents.RoleGranted
	case domainEvents.TrustData:
		issuers, ok := a.trustedIssuers[data.CredentialType]
		if !ok {
			issuers = map[common.Address]bool{}
			a.trustedIssuers[data.CredentialType] = issuers
		}
		issuers[data.Issuer] = data.Trusted
	case domainEvents.RequirementData:
		a.requirements[data.Role] = data.CredentialType
	case domainEvents.CredentialData:
		key := credentialKey{data.CredentialType, data.DID, data.CredentialID}
		a.credentials[key] = event.EventType() == domainEvents.CredentialIssued
	default:
		logger.Logger().Warnf("[DidAuthAggregate] could not apply event: %s", event.EventType())
	}
	return nil
}
