package auth

import (
	"github.com/Modern-Miracle/NGDocuVault-sub001/domain"
	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	eh "github.com/looplab/eventhorizon"
)

const DeployCmdType = eh.CommandType("did-auth:deploy")
const GrantDidRoleCmdType = eh.CommandType("did-auth:grant-did-role")
const RevokeDidRoleCmdType = eh.CommandType("did-auth:revoke-did-role")
const SetTrustedIssuerCmdType = eh.CommandType("did-auth:set-trusted-issuer")
const SetRoleRequirementCmdType = eh.CommandType("did-auth:set-role-requirement")
const IssueCredentialCmdType = eh.CommandType("did-auth:issue-credential")
const RevokeCredentialCmdType = eh.CommandType("did-auth:revoke-credential")

func init() {
	eh.RegisterCommand(func() eh.Command { return &Deploy{} })
	eh.RegisterCommand(func() eh.Command { return &GrantDidRole{} })
	eh.RegisterCommand(func() eh.Command { return &RevokeDidRole{} })
	eh.RegisterCommand(func() eh.Command { return &SetTrustedIssuer{} })
	eh.RegisterCommand(func() eh.Command { return &SetRoleRequirement{} })
	eh.RegisterCommand(func() eh.Command { return &IssueCredential{} })
	eh.RegisterCommand(func() eh.Command { return &RevokeCredential{} })
}

// Deploy runs the constructor: Tx.From becomes the privileged owner.
type Deploy struct {
	ID uuid.UUID
	domain.Tx `eh:"optional"`
}

type GrantDidRole struct {
	ID        uuid.UUID
	domain.Tx `eh:"optional"`
	DID       string      `eh:"optional"`
	Role      common.Hash `eh:"optional"`
}

type RevokeDidRole struct {
	ID        uuid.UUID
	domain.Tx `eh:"optional"`
	DID       string      `eh:"optional"`
	Role      common.Hash `eh:"optional"`
}

type SetTrustedIssuer struct {
	ID             uuid.UUID
	domain.Tx      `eh:"optional"`
	CredentialType string         `eh:"optional"`
	Issuer         common.Address `eh:"optional"`
	Trusted        bool           `eh:"optional"`
}

type SetRoleRequirement struct {
	ID             uuid.UUID
	domain.Tx      `eh:"optional"`
	Role           common.Hash `eh:"optional"`
	CredentialType string      `eh:"optional"`
}

type IssueCredential struct {
	ID             uuid.UUID
	domain.Tx      `eh:"optional"`
	CredentialType string      `eh:"optional"`
	DID            string      `eh:"optional"`
	CredentialID   common.Hash `eh:"optional"`
}

type RevokeCredential struct {
	ID             uuid.UUID
	domain.Tx      `eh:"optional"`
	CredentialType string      `eh:"optional"`
	DID            string      `eh:"optional"`
	CredentialID   common.Hash `eh:"optional"`
}

func (cmd Deploy) AggregateID() uuid.UUID {
	return cmd.ID
}

func (cmd Deploy) AggregateType() eh.AggregateType {
	return domain.DidAuthAggregateType
}

func (cmd Deploy) CommandType() eh.CommandType {
	return DeployCmdType
}

func (cmd GrantDidRole) AggregateID() uuid.UUID {
	return cmd.ID
}

func (cmd GrantDidRole) AggregateType() eh.AggregateType {
	return domain.DidAuthAggregateType
}

func (cmd GrantDidRole) CommandType() eh.CommandType {
	return GrantDidRoleCmdType
}

func (cmd RevokeDidRole) AggregateID() uuid.UUID {
	return cmd.ID
}

func (cmd RevokeDidRole) AggregateType() eh.AggregateType {
	return domain.DidAuthAggregateType
}

func (cmd RevokeDidRole) CommandType() eh.CommandType {
	return RevokeDidRoleCmdType
}

func (cmd SetTrustedIssuer) AggregateID() uuid.UUID {
	return cmd.ID
}

func (cmd SetTrustedIssuer) AggregateType() eh.AggregateType {
	return domain.DidAuthAggregateType
}

func (cmd SetTrustedIssuer) CommandType() eh.CommandType {
	return SetTrustedIssuerCmdType
}

func (cmd SetRoleRequirement) AggregateID() uuid.UUID {
	return cmd.ID
}

func (cmd SetRoleRequirement) AggregateType() eh.AggregateType {
	return domain.DidAuthAggregateType
}

func (cmd SetRoleRequirement) CommandType() eh.CommandType {
	return SetRoleRequirementCmdType
}

func (cmd IssueCredential) AggregateID() uuid.UUID {
	return cmd.ID
}

func (cmd IssueCredential) AggregateType() eh.AggregateType {
	return domain.DidAuthAggregateType
}

func (cmd IssueCredential) CommandType() eh.CommandType {
	return IssueCredentialCmdType
}

func (cmd RevokeCredential) AggregateID() uuid.UUID {
	return cmd.ID
}

func (cmd RevokeCredential) AggregateType() eh.AggregateType {
	return domain.DidAuthAggregateType
}

func (cmd RevokeCredential) CommandType() eh.CommandType {
	return RevokeCredentialCmdType
}
