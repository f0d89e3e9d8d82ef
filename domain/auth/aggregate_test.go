package auth

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/Modern-Miracle/NGDocuVault-sub001/domain"
	domainEvents "github.com/Modern-Miracle/NGDocuVault-sub001/domain/events"
	"github.com/Modern-Miracle/NGDocuVault-sub001/identity"
	"github.com/Modern-Miracle/NGDocuVault-sub001/identity/mock"
	"github.com/ethereum/go-ethereum/common"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	eh "github.com/looplab/eventhorizon"
	"github.com/looplab/eventhorizon/mocks"
)

var now = time.Date(2017, time.July, 10, 23, 0, 0, 0, time.UTC)

var owner = common.HexToAddress("0x000000000000000000000000000000000000000a")
var admin = common.HexToAddress("0x000000000000000000000000000000000000000b")
var stranger = common.HexToAddress("0x000000000000000000000000000000000000000c")

const adminDID = "did:docu:admin"
const subjectDID = "did:docu:subject"

// deployedAggregate returns an aggregate in the state right after the constructor ran,
// with adminDID holding ADMIN_ROLE.
func deployedAggregate(id uuid.UUID) *DidAuthAggregate {
	agg := NewDidAuthAggregate(id)
	apply := func(t eh.EventType, data eh.EventData) {
		_ = agg.ApplyEvent(context.Background(), eh.NewEventForAggregate(t, data, now, domain.DidAuthAggregateType, id, 1))
	}
	apply(domainEvents.AuthDeployed, domainEvents.DeployedData{Owner: owner})
	for _, r := range Roles {
		apply(domainEvents.RoleRequirementUpdated, domainEvents.RequirementData{Role: r.Role, CredentialType: r.CredentialType})
	}
	apply(domainEvents.RoleGranted, domainEvents.RoleData{DID: adminDID, Role: AdminRole, Timestamp: now})
	return agg
}

func registryMock(ctrl *gomock.Controller) *mock.MockRegistry {
	registry := mock.NewMockRegistry(ctrl)
	registry.EXPECT().AddressToDID(owner).Return("did:docu:owner").AnyTimes()
	registry.EXPECT().AddressToDID(admin).Return(adminDID).AnyTimes()
	registry.EXPECT().AddressToDID(stranger).Return("").AnyTimes()
	registry.EXPECT().IsActive(subjectDID).Return(true, nil).AnyTimes()
	registry.EXPECT().IsActive("did:docu:inactive").Return(false, nil).AnyTimes()
	registry.EXPECT().IsActive("did:docu:unknown").Return(false, identity.ErrInvalidDID).AnyTimes()
	return registry
}

func TestDidAuthAggregate_HandleCommand(t *testing.T) {
	id := uuid.New()
	ownerTx := domain.Tx{From: owner, Time: now}
	adminTx := domain.Tx{From: admin, Time: now}
	strangerTx := domain.Tx{From: stranger, Time: now}
	credentialID := common.HexToHash("0xc0ffee")

	deployEvents := []eh.Event{eh.NewEventForAggregate(domainEvents.AuthDeployed, domainEvents.DeployedData{Owner: owner}, now, domain.DidAuthAggregateType, id, 1)}
	for i, r := range Roles {
		deployEvents = append(deployEvents, eh.NewEventForAggregate(domainEvents.RoleRequirementUpdated, domainEvents.RequirementData{
			Role:           r.Role,
			CredentialType: r.CredentialType,
		}, now, domain.DidAuthAggregateType, id, i+2))
	}
	deployEvents = append(deployEvents, eh.NewEventForAggregate(domainEvents.RoleGranted, domainEvents.RoleData{
		DID:       "did:docu:owner",
		Role:      AdminRole,
		Timestamp: now,
	}, now, domain.DidAuthAggregateType, id, len(Roles)+2))

	cases := map[string]struct {
		agg            *DidAuthAggregate
		cmd            eh.Command
		expectedEvents []eh.Event
		expectedError  error
	}{
		"err - unknown command": {
			agg:           deployedAggregate(id),
			cmd:           &mocks.Command{ID: id, Content: "testcontent of unknown command"},
			expectedError: domain.ErrUnknownCommand,
		},
		"err - not deployed": {
			agg:           NewDidAuthAggregate(id),
			cmd:           &GrantDidRole{ID: id, Tx: ownerTx, DID: subjectDID, Role: IssuerRole},
			expectedError: domain.ErrNotDeployed,
		},
		"ok - deploy": {
			agg:            NewDidAuthAggregate(id),
			cmd:            &Deploy{ID: id, Tx: ownerTx},
			expectedEvents: deployEvents,
		},
		"err - deploy twice": {
			agg:           deployedAggregate(id),
			cmd:           &Deploy{ID: id, Tx: ownerTx},
			expectedError: domain.ErrAlreadyDeployed,
		},
		"ok - owner grants role": {
			agg: deployedAggregate(id),
			cmd: &GrantDidRole{ID: id, Tx: ownerTx, DID: subjectDID, Role: IssuerRole},
			expectedEvents: []eh.Event{eh.NewEventForAggregate(domainEvents.RoleGranted, domainEvents.RoleData{
				DID:       subjectDID,
				Role:      IssuerRole,
				Timestamp: now,
			}, now, domain.DidAuthAggregateType, id, 1)},
		},
		"ok - DID admin revokes role": {
			agg: deployedAggregate(id),
			cmd: &RevokeDidRole{ID: id, Tx: adminTx, DID: subjectDID, Role: HolderRole},
			expectedEvents: []eh.Event{eh.NewEventForAggregate(domainEvents.RoleRevoked, domainEvents.RoleData{
				DID:       subjectDID,
				Role:      HolderRole,
				Timestamp: now,
			}, now, domain.DidAuthAggregateType, id, 1)},
		},
		"err - grant without admin": {
			agg:           deployedAggregate(id),
			cmd:           &GrantDidRole{ID: id, Tx: strangerTx, DID: subjectDID, Role: IssuerRole},
			expectedError: ErrUnauthorized,
		},
		"err - grant to empty DID": {
			agg:           deployedAggregate(id),
			cmd:           &GrantDidRole{ID: id, Tx: ownerTx, DID: "", Role: IssuerRole},
			expectedError: ErrInvalidDID,
		},
		"err - grant unknown role": {
			agg:           deployedAggregate(id),
			cmd:           &GrantDidRole{ID: id, Tx: ownerTx, DID: subjectDID},
			expectedError: ErrInvalidRole,
		},
		"err - unauthorized before invalid DID": {
			agg:           deployedAggregate(id),
			cmd:           &GrantDidRole{ID: id, Tx: strangerTx, DID: "", Role: IssuerRole},
			expectedError: ErrUnauthorized,
		},
		"ok - trust issuer": {
			agg: deployedAggregate(id),
			cmd: &SetTrustedIssuer{ID: id, Tx: adminTx, CredentialType: "CONSUMER_CREDENTIAL", Issuer: stranger, Trusted: true},
			expectedEvents: []eh.Event{eh.NewEventForAggregate(domainEvents.IssuerTrustStatusUpdated, domainEvents.TrustData{
				CredentialType: "CONSUMER_CREDENTIAL",
				Issuer:         stranger,
				Trusted:        true,
			}, now, domain.DidAuthAggregateType, id, 1)},
		},
		"err - distrust zero address": {
			agg:           deployedAggregate(id),
			cmd:           &SetTrustedIssuer{ID: id, Tx: ownerTx, CredentialType: "CONSUMER_CREDENTIAL", Trusted: false},
			expectedError: ErrInvalidDID,
		},
		"err - trust issuer without admin": {
			agg:           deployedAggregate(id),
			cmd:           &SetTrustedIssuer{ID: id, Tx: strangerTx, CredentialType: "X", Issuer: stranger, Trusted: true},
			expectedError: ErrUnauthorized,
		},
		"ok - change role requirement": {
			agg: deployedAggregate(id),
			cmd: &SetRoleRequirement{ID: id, Tx: ownerTx, Role: ConsumerRole, CredentialType: "NEW_CREDENTIAL"},
			expectedEvents: []eh.Event{eh.NewEventForAggregate(domainEvents.RoleRequirementUpdated, domainEvents.RequirementData{
				Role:           ConsumerRole,
				CredentialType: "NEW_CREDENTIAL",
			}, now, domain.DidAuthAggregateType, id, 1)},
		},
		"err - requirement for zero role": {
			agg:           deployedAggregate(id),
			cmd:           &SetRoleRequirement{ID: id, Tx: ownerTx, CredentialType: "NEW_CREDENTIAL"},
			expectedError: ErrInvalidRole,
		},
		"ok - issue credential": {
			agg: deployedAggregate(id),
			cmd: &IssueCredential{ID: id, Tx: ownerTx, CredentialType: "CONSUMER_CREDENTIAL", DID: subjectDID, CredentialID: credentialID},
			expectedEvents: []eh.Event{eh.NewEventForAggregate(domainEvents.CredentialIssued, domainEvents.CredentialData{
				CredentialType: "CONSUMER_CREDENTIAL",
				DID:            subjectDID,
				CredentialID:   credentialID,
				Timestamp:      now,
			}, now, domain.DidAuthAggregateType, id, 1)},
		},
		"err - issue credential to deactivated DID": {
			agg:           deployedAggregate(id),
			cmd:           &IssueCredential{ID: id, Tx: ownerTx, CredentialType: "CONSUMER_CREDENTIAL", DID: "did:docu:inactive", CredentialID: credentialID},
			expectedError: ErrDeactivatedDID,
		},
		"err - issue credential to unknown DID": {
			agg:           deployedAggregate(id),
			cmd:           &IssueCredential{ID: id, Tx: ownerTx, CredentialType: "CONSUMER_CREDENTIAL", DID: "did:docu:unknown", CredentialID: credentialID},
			expectedError: identity.ErrInvalidDID,
		},
		"err - revoke credential never issued": {
			agg:           deployedAggregate(id),
			cmd:           &RevokeCredential{ID: id, Tx: ownerTx, CredentialType: "CONSUMER_CREDENTIAL", DID: subjectDID, CredentialID: credentialID},
			expectedError: ErrCredentialNotIssued,
		},
	}

	for name, testcase := range cases {
		t.Run(name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			ctx := identity.NewContext(context.Background(), registryMock(ctrl))

			err := testcase.agg.HandleCommand(ctx, testcase.cmd)
			if (testcase.expectedError != nil && err == nil) ||
				(testcase.expectedError == nil && err != nil) ||
				(testcase.expectedError != nil && err != nil && !errors.Is(err, testcase.expectedError)) {
				t.Errorf("incorrect error result")
				t.Log("exp error: ", testcase.expectedError)
				t.Log("got error: ", err)
			}

			events := testcase.agg.Events()
			if len(events) == 0 && len(testcase.expectedEvents) == 0 {
				return
			}
			if !reflect.DeepEqual(events, testcase.expectedEvents) {
				t.Errorf("test case '%s': incorrect events", name)
				t.Logf("exp: %#v\n", testcase.expectedEvents)
				t.Logf("got: %#v\n", events)
			}
		})
	}
}

func TestDidAuthAggregate_NoRegistry(t *testing.T) {
	id := uuid.New()
	agg := deployedAggregate(id)

	err := agg.HandleCommand(context.Background(), &GrantDidRole{ID: id, Tx: domain.Tx{From: admin, Time: now}, DID: subjectDID, Role: IssuerRole})
	if !errors.Is(err, ErrUnauthorized) {
		t.Errorf("expected %v, got %v", ErrUnauthorized, err)
	}

	err = agg.HandleCommand(context.Background(), &GrantDidRole{ID: id, Tx: domain.Tx{From: owner, Time: now}, DID: subjectDID, Role: IssuerRole})
	if err != nil {
		t.Errorf("owner should not need a registry: %v", err)
	}
}
