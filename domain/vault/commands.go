package vault

import (
	"time"

	"github.com/Modern-Miracle/NGDocuVault-sub001/domain"
	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	eh "github.com/looplab/eventhorizon"
)

const DeployCmdType = eh.CommandType("docu-vault:deploy")
const RegisterDocumentCmdType = eh.CommandType("docu-vault:register-document")
const RegisterDocumentsCmdType = eh.CommandType("docu-vault:register-documents")
const UpdateDocumentCmdType = eh.CommandType("docu-vault:update-document")
const VerifyDocumentCmdType = eh.CommandType("docu-vault:verify-document")
const VerifyDocumentsCmdType = eh.CommandType("docu-vault:verify-documents")
const RequestVerificationCmdType = eh.CommandType("docu-vault:request-verification")
const RequestShareCmdType = eh.CommandType("docu-vault:request-share")
const GiveConsentCmdType = eh.CommandType("docu-vault:give-consent")
const RevokeConsentCmdType = eh.CommandType("docu-vault:revoke-consent")
const ShareDocumentCmdType = eh.CommandType("docu-vault:share-document")
const RegisterIssuerCmdType = eh.CommandType("docu-vault:register-issuer")
const DeactivateIssuerCmdType = eh.CommandType("docu-vault:deactivate-issuer")
const ActivateIssuerCmdType = eh.CommandType("docu-vault:activate-issuer")
const AddAdminCmdType = eh.CommandType("docu-vault:add-admin")
const RemoveAdminCmdType = eh.CommandType("docu-vault:remove-admin")
const PauseCmdType = eh.CommandType("docu-vault:pause")
const UnpauseCmdType = eh.CommandType("docu-vault:unpause")

func init() {
	eh.RegisterCommand(func() eh.Command { return &Deploy{} })
	eh.RegisterCommand(func() eh.Command { return &RegisterDocument{} })
	eh.RegisterCommand(func() eh.Command { return &RegisterDocuments{} })
	eh.RegisterCommand(func() eh.Command { return &UpdateDocument{} })
	eh.RegisterCommand(func() eh.Command { return &VerifyDocument{} })
	eh.RegisterCommand(func() eh.Command { return &VerifyDocuments{} })
	eh.RegisterCommand(func() eh.Command { return &RequestVerification{} })
	eh.RegisterCommand(func() eh.Command { return &RequestShare{} })
	eh.RegisterCommand(func() eh.Command { return &GiveConsent{} })
	eh.RegisterCommand(func() eh.Command { return &RevokeConsent{} })
	eh.RegisterCommand(func() eh.Command { return &ShareDocument{} })
	eh.RegisterCommand(func() eh.Command { return &RegisterIssuer{} })
	eh.RegisterCommand(func() eh.Command { return &DeactivateIssuer{} })
	eh.RegisterCommand(func() eh.Command { return &ActivateIssuer{} })
	eh.RegisterCommand(func() eh.Command { return &AddAdmin{} })
	eh.RegisterCommand(func() eh.Command { return &RemoveAdmin{} })
	eh.RegisterCommand(func() eh.Command { return &Pause{} })
	eh.RegisterCommand(func() eh.Command { return &Unpause{} })
}

// Deploy grants DEFAULT_ADMIN_ROLE and ADMIN_ROLE to Tx.From.
type Deploy struct {
	ID        uuid.UUID
	domain.Tx `eh:"optional"`
}

// RegisterDocument stores a new document. A zero IssuanceDate means Tx.Time.
type RegisterDocument struct {
	ID             uuid.UUID
	domain.Tx      `eh:"optional"`
	ContentHash    common.Hash    `eh:"optional"`
	CID            string         `eh:"optional"`
	Holder         common.Address `eh:"optional"`
	IssuanceDate   time.Time      `eh:"optional"`
	ExpirationDate time.Time      `eh:"optional"`
	DocumentType   DocumentType   `eh:"optional"`
}

// RegisterDocuments is the column form of RegisterDocument. All slices must have the same, non-zero length.
type RegisterDocuments struct {
	ID              uuid.UUID
	domain.Tx       `eh:"optional"`
	ContentHashes   []common.Hash    `eh:"optional"`
	CIDs            []string         `eh:"optional"`
	Holders         []common.Address `eh:"optional"`
	IssuanceDates   []time.Time      `eh:"optional"`
	ExpirationDates []time.Time      `eh:"optional"`
	DocumentTypes   []DocumentType   `eh:"optional"`
}

// UpdateDocument supersedes OldDocumentID with a new document for the same holder.
type UpdateDocument struct {
	ID             uuid.UUID
	domain.Tx      `eh:"optional"`
	OldDocumentID  common.Hash  `eh:"optional"`
	ContentHash    common.Hash  `eh:"optional"`
	CID            string       `eh:"optional"`
	ExpirationDate time.Time    `eh:"optional"`
	DocumentType   DocumentType `eh:"optional"`
}

type VerifyDocument struct {
	ID         uuid.UUID
	domain.Tx  `eh:"optional"`
	DocumentID common.Hash `eh:"optional"`
}

type VerifyDocuments struct {
	ID          uuid.UUID
	domain.Tx   `eh:"optional"`
	DocumentIDs []common.Hash `eh:"optional"`
}

type RequestVerification struct {
	ID         uuid.UUID
	domain.Tx  `eh:"optional"`
	DocumentID common.Hash `eh:"optional"`
}

type RequestShare struct {
	ID         uuid.UUID
	domain.Tx  `eh:"optional"`
	DocumentID common.Hash    `eh:"optional"`
	Requester  common.Address `eh:"optional"`
}

type GiveConsent struct {
	ID         uuid.UUID
	domain.Tx  `eh:"optional"`
	DocumentID common.Hash    `eh:"optional"`
	Requester  common.Address `eh:"optional"`
	Consent    ConsentStatus  `eh:"optional"`
	ValidUntil time.Time      `eh:"optional"`
}

type RevokeConsent struct {
	ID         uuid.UUID
	domain.Tx  `eh:"optional"`
	DocumentID common.Hash    `eh:"optional"`
	Requester  common.Address `eh:"optional"`
}

type ShareDocument struct {
	ID         uuid.UUID
	domain.Tx  `eh:"optional"`
	DocumentID common.Hash    `eh:"optional"`
	Requester  common.Address `eh:"optional"`
}

type RegisterIssuer struct {
	ID        uuid.UUID
	domain.Tx `eh:"optional"`
	Issuer    common.Address `eh:"optional"`
}

type DeactivateIssuer struct {
	ID        uuid.UUID
	domain.Tx `eh:"optional"`
	Issuer    common.Address `eh:"optional"`
}

type ActivateIssuer struct {
	ID        uuid.UUID
	domain.Tx `eh:"optional"`
	Issuer    common.Address `eh:"optional"`
}

type AddAdmin struct {
	ID        uuid.UUID
	domain.Tx `eh:"optional"`
	Admin     common.Address `eh:"optional"`
}

type RemoveAdmin struct {
	ID        uuid.UUID
	domain.Tx `eh:"optional"`
	Admin     common.Address `eh:"optional"`
}

type Pause struct {
	ID        uuid.UUID
	domain.Tx `eh:"optional"`
}

type Unpause struct {
	ID        uuid.UUID
	domain.Tx `eh:"optional"`
}

func (cmd Deploy) AggregateID() uuid.UUID {
	return cmd.ID
}

func (cmd Deploy) AggregateType() eh.AggregateType {
	return domain.DocuVaultAggregateType
}

func (cmd Deploy) CommandType() eh.CommandType {
	return DeployCmdType
}

func (cmd RegisterDocument) AggregateID() uuid.UUID {
	return cmd.ID
}

func (cmd RegisterDocument) AggregateType() eh.AggregateType {
	return domain.DocuVaultAggregateType
}

func (cmd RegisterDocument) CommandType() eh.CommandType {
	return RegisterDocumentCmdType
}

func (cmd RegisterDocuments) AggregateID() uuid.UUID {
	return cmd.ID
}

func (cmd RegisterDocuments) AggregateType() eh.AggregateType {
	return domain.DocuVaultAggregateType
}

func (cmd RegisterDocuments) CommandType() eh.CommandType {
	return RegisterDocumentsCmdType
}

func (cmd UpdateDocument) AggregateID() uuid.UUID {
	return cmd.ID
}

func (cmd UpdateDocument) AggregateType() eh.AggregateType {
	return domain.DocuVaultAggregateType
}

func (cmd UpdateDocument) CommandType() eh.CommandType {
	return UpdateDocumentCmdType
}

func (cmd VerifyDocument) AggregateID() uuid.UUID {
	return cmd.ID
}

func (cmd VerifyDocument) AggregateType() eh.AggregateType {
	return domain.DocuVaultAggregateType
}

func (cmd VerifyDocument) CommandType() eh.CommandType {
	return VerifyDocumentCmdType
}

func (cmd VerifyDocuments) AggregateID() uuid.UUID {
	return cmd.ID
}

func (cmd VerifyDocuments) AggregateType() eh.AggregateType {
	return domain.DocuVaultAggregateType
}

func (cmd VerifyDocuments) CommandType() eh.CommandType {
	return VerifyDocumentsCmdType
}

func (cmd RequestVerification) AggregateID() uuid.UUID {
	return cmd.ID
}

func (cmd RequestVerification) AggregateType() eh.AggregateType {
	return domain.DocuVaultAggregateType
}

func (cmd RequestVerification) CommandType() eh.CommandType {
	return RequestVerificationCmdType
}

func (cmd RequestShare) AggregateID() uuid.UUID {
	return cmd.ID
}

func (cmd RequestShare) AggregateType() eh.AggregateType {
	return domain.DocuVaultAggregateType
}

func (cmd RequestShare) CommandType() eh.CommandType {
	return RequestShareCmdType
}

func (cmd GiveConsent) AggregateID() uuid.UUID {
	return cmd.ID
}

func (cmd GiveConsent) AggregateType() eh.AggregateType {
	return domain.DocuVaultAggregateType
}

func (cmd GiveConsent) CommandType() eh.CommandType {
	return GiveConsentCmdType
}

func (cmd RevokeConsent) AggregateID() uuid.UUID {
	return cmd.ID
}

func (cmd RevokeConsent) AggregateType() eh.AggregateType {
	return domain.DocuVaultAggregateType
}

func (cmd RevokeConsent) CommandType() eh.CommandType {
	return RevokeConsentCmdType
}

func (cmd ShareDocument) AggregateID() uuid.UUID {
	return cmd.ID
}

func (cmd ShareDocument) AggregateType() eh.AggregateType {
	return domain.DocuVaultAggregateType
}

func (cmd ShareDocument) CommandType() eh.CommandType {
	return ShareDocumentCmdType
}

func (cmd RegisterIssuer) AggregateID() uuid.UUID {
	return cmd.ID
}

func (cmd RegisterIssuer) AggregateType() eh.AggregateType {
	return domain.DocuVaultAggregateType
}

func (cmd RegisterIssuer) CommandType() eh.CommandType {
	return RegisterIssuerCmdType
}

func (cmd DeactivateIssuer) AggregateID() uuid.UUID {
	return cmd.ID
}

func (cmd DeactivateIssuer) AggregateType() eh.AggregateType {
	return domain.DocuVaultAggregateType
}

func (cmd DeactivateIssuer) CommandType() eh.CommandType {
	return DeactivateIssuerCmdType
}

func (cmd ActivateIssuer) AggregateID() uuid.UUID {
	return cmd.ID
}

func (cmd ActivateIssuer) AggregateType() eh.AggregateType {
	return domain.DocuVaultAggregateType
}

func (cmd ActivateIssuer) CommandType() eh.CommandType {
	return ActivateIssuerCmdType
}

func (cmd AddAdmin) AggregateID() uuid.UUID {
	return cmd.ID
}

func (cmd AddAdmin) AggregateType() eh.AggregateType {
	return domain.DocuVaultAggregateType
}

func (cmd AddAdmin) CommandType() eh.CommandType {
	return AddAdminCmdType
}

func (cmd RemoveAdmin) AggregateID() uuid.UUID {
	return cmd.ID
}

func (cmd RemoveAdmin) AggregateType() eh.AggregateType {
	return domain.DocuVaultAggregateType
}

func (cmd RemoveAdmin) CommandType() eh.CommandType {
	return RemoveAdminCmdType
}

func (cmd Pause) AggregateID() uuid.UUID {
	return cmd.ID
}

func (cmd Pause) AggregateType() eh.AggregateType {
	return domain.DocuVaultAggregateType
}

func (cmd Pause) CommandType() eh.CommandType {
	return PauseCmdType
}

func (cmd Unpause) AggregateID() uuid.UUID {
	return cmd.ID
}

func (cmd Unpause) AggregateType() eh.AggregateType {
	return domain.DocuVaultAggregateType
}

func (cmd Unpause) CommandType() eh.CommandType {
	return UnpauseCmdType
}
