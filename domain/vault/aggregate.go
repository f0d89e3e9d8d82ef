package vault

import (
	"context"
	"fmt"
	"time"

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
		return NewDocuVaultAggregate(id)
	})
}

type consentKey struct {
	documentID common.Hash
	requester  common.Address
}

type consent struct {
	status     ConsentStatus
	validUntil time.Time
}

// DocuVaultAggregate is the document vault. Commands validate against the applied state and only
// store events; nothing changes until the events are applied after a successful save.
type DocuVaultAggregate struct {
	*events.AggregateBase

	deployed  bool
	owner     common.Address
	paused    bool
	roles     map[common.Hash]map[common.Address]bool
	issuers   map[common.Address]bool
	documents map[common.Hash]Document
	consents  map[consentKey]consent
}

func NewDocuVaultAggregate(id uuid.UUID) *DocuVaultAggregate {
	return &DocuVaultAggregate{
		AggregateBase: events.NewAggregateBase(domain.DocuVaultAggregateType, id),
		roles: map[common.Hash]map[common.Address]bool{
			DefaultAdminRole: {},
			AdminRole:        {},
		},
		issuers:   map[common.Address]bool{},
		documents: map[common.Hash]Document{},
		consents:  map[consentKey]consent{},
	}
}

func (a *DocuVaultAggregate) HandleCommand(ctx context.Context, command eh.Command) error {
	logger.Logger().Debugf("[DocuVaultAggregate] command: %v, %+v", command.CommandType(), command)

	if deploy, ok := command.(*Deploy); ok {
		if a.deployed {
			return domain.ErrAlreadyDeployed
		}
		a.StoreEvent(domainEvents.VaultDeployed, domainEvents.DeployedData{Owner: deploy.From}, deploy.Time)
		return nil
	}
	if !a.deployed {
		return domain.ErrNotDeployed
	}

	switch cmd := command.(type) {
	case *RegisterDocument:
		return a.registerDocument(cmd)
	case *RegisterDocuments:
		return a.registerDocuments(cmd)
	case *UpdateDocument:
		return a.updateDocument(cmd)
	case *VerifyDocument:
		return a.verifyDocument(cmd)
	case *VerifyDocuments:
		return a.verifyDocuments(cmd)
	case *RequestVerification:
		return a.requestVerification(cmd)
	case *RequestShare:
		return a.requestShare(cmd)
	case *GiveConsent:
		return a.giveConsent(cmd)
	case *RevokeConsent:
		return a.revokeConsent(cmd)
	case *ShareDocument:
		return a.shareDocument(cmd)
	case *RegisterIssuer:
		return a.registerIssuer(cmd)
	case *DeactivateIssuer:
		return a.deactivateIssuer(cmd)
	case *ActivateIssuer:
		return a.activateIssuer(cmd)
	case *AddAdmin:
		return a.addAdmin(cmd)
	case *RemoveAdmin:
		return a.removeAdmin(cmd)
	case *Pause:
		return a.pause(cmd)
	case *Unpause:
		return a.unpause(cmd)
	default:
		return fmt.Errorf("[DocuVaultAggregate] could not handle command '%s': %w", command.CommandType(), domain.ErrUnknownCommand)
	}
}

func (a *DocuVaultAggregate) whenNotPaused() error {
	if a.paused {
		return ErrEnforcedPause
	}
	return nil
}

func (a *DocuVaultAggregate) onlyAdmin(tx domain.Tx) error {
	if !a.IsAdmin(tx.From) {
		return ErrNotAdmin
	}
	return nil
}

func (a *DocuVaultAggregate) onlyIssuer(tx domain.Tx) error {
	if !a.issuers[tx.From] {
		return ErrNotIssuer
	}
	return nil
}

// holderDocument returns the document if it exists and tx.From holds it.
func (a *DocuVaultAggregate) holderDocument(tx domain.Tx, documentID common.Hash) (Document, error) {
	doc, ok := a.documents[documentID]
	if !ok {
		return Document{}, ErrNotRegistered
	}
	if doc.Holder != tx.From {
		return Document{}, ErrNotHolder
	}
	return doc, nil
}

type registration struct {
	contentHash    common.Hash
	cid            string
	holder         common.Address
	issuanceDate   time.Time
	expirationDate time.Time
	documentType   DocumentType
}

// validate checks one registration by tx.From and returns its document. pending holds the ids
// claimed earlier in the same transaction.
func (a *DocuVaultAggregate) validate(tx domain.Tx, r registration, pending map[common.Hash]bool) (common.Hash, Document, error) {
	if r.holder == (common.Address{}) {
		return common.Hash{}, Document{}, ErrZeroAddress
	}
	isIssuer := a.issuers[tx.From]
	if tx.From != r.holder && !isIssuer {
		return common.Hash{}, Document{}, ErrNotAuthorized
	}
	if r.contentHash == (common.Hash{}) || r.cid == "" {
		return common.Hash{}, Document{}, ErrInvalidHash
	}
	issuance := r.issuanceDate
	if issuance.IsZero() {
		issuance = tx.Time
	}
	if !r.expirationDate.After(issuance) {
		return common.Hash{}, Document{}, ErrInvalidDate
	}
	if IsExpired(r.expirationDate, tx.Time) {
		return common.Hash{}, Document{}, ErrExpired
	}
	if !r.documentType.Valid() {
		return common.Hash{}, Document{}, ErrInvalidInput
	}
	id := GenerateDocumentID(r.contentHash, r.holder, r.cid)
	if _, exists := a.documents[id]; exists || pending[id] {
		return common.Hash{}, Document{}, ErrAlreadyRegistered
	}
	return id, Document{
		ContentHash:    r.contentHash,
		CID:            r.cid,
		Issuer:         tx.From,
		Holder:         r.holder,
		IssuanceDate:   issuance,
		ExpirationDate: r.expirationDate,
		Verified:       isIssuer,
		DocumentType:   r.documentType,
	}, nil
}

func (a *DocuVaultAggregate) storeDocument(tx domain.Tx, id common.Hash, doc Document) {
	a.StoreEvent(domainEvents.DocumentStored, domainEvents.DocumentData{
		DocumentID:     id,
		ContentHash:    doc.ContentHash,
		CID:            doc.CID,
		Issuer:         doc.Issuer,
		Holder:         doc.Holder,
		IssuanceDate:   doc.IssuanceDate,
		ExpirationDate: doc.ExpirationDate,
		Verified:       doc.Verified,
		DocumentType:   uint8(doc.DocumentType),
	}, tx.Time)
	a.StoreEvent(domainEvents.DocumentRegistered, domainEvents.DocumentRegisteredData{
		DocumentID: id,
		Issuer:     doc.Issuer,
		Holder:     doc.Holder,
		Timestamp:  tx.Time,
	}, tx.Time)
}

func (a *DocuVaultAggregate) registerDocument(cmd *RegisterDocument) error {
	if err := a.whenNotPaused(); err != nil {
		return err
	}
	id, doc, err := a.validate(cmd.Tx, registration{
		contentHash:    cmd.ContentHash,
		cid:            cmd.CID,
		holder:         cmd.Holder,
		issuanceDate:   cmd.IssuanceDate,
		expirationDate: cmd.ExpirationDate,
		documentType:   cmd.DocumentType,
	}, nil)
	if err != nil {
		return err
	}
	a.storeDocument(cmd.Tx, id, doc)
	return nil
}

// registerDocuments validates every element before storing any of them.
func (a *DocuVaultAggregate) registerDocuments(cmd *RegisterDocuments) error {
	if err := a.whenNotPaused(); err != nil {
		return err
	}
	n := len(cmd.ContentHashes)
	if n == 0 || len(cmd.CIDs) != n || len(cmd.Holders) != n || len(cmd.IssuanceDates) != n ||
		len(cmd.ExpirationDates) != n || len(cmd.DocumentTypes) != n {
		return ErrInvalidInput
	}

	ids := make([]common.Hash, 0, n)
	docs := make([]Document, 0, n)
	pending := map[common.Hash]bool{}
	for i := 0; i < n; i++ {
		id, doc, err := a.validate(cmd.Tx, registration{
			contentHash:    cmd.ContentHashes[i],
			cid:            cmd.CIDs[i],
			holder:         cmd.Holders[i],
			issuanceDate:   cmd.IssuanceDates[i],
			expirationDate: cmd.ExpirationDates[i],
			documentType:   cmd.DocumentTypes[i],
		}, pending)
		if err != nil {
			return fmt.Errorf("document %d: %w", i, err)
		}
		pending[id] = true
		ids = append(ids, id)
		docs = append(docs, doc)
	}

	for i := range ids {
		a.storeDocument(cmd.Tx, ids[i], docs[i])
	}
	a.StoreEvent(domainEvents.DocumentBatchRegistered, domainEvents.BatchData{
		Count:     n,
		Account:   cmd.From,
		Timestamp: cmd.Time,
	}, cmd.Time)
	return nil
}

// updateDocument registers the replacement for the holder of the old document, issued now and
// verified by the calling issuer. The old document is left as is.
func (a *DocuVaultAggregate) updateDocument(cmd *UpdateDocument) error {
	if err := a.whenNotPaused(); err != nil {
		return err
	}
	if err := a.onlyIssuer(cmd.Tx); err != nil {
		return err
	}
	old, ok := a.documents[cmd.OldDocumentID]
	if !ok {
		return ErrNotRegistered
	}
	id, doc, err := a.validate(cmd.Tx, registration{
		contentHash:    cmd.ContentHash,
		cid:            cmd.CID,
		holder:         old.Holder,
		expirationDate: cmd.ExpirationDate,
		documentType:   cmd.DocumentType,
	}, nil)
	if err != nil {
		return err
	}
	a.storeDocument(cmd.Tx, id, doc)
	a.StoreEvent(domainEvents.DocumentUpdated, domainEvents.DocumentUpdatedData{
		OldDocumentID: cmd.OldDocumentID,
		NewDocumentID: id,
		Issuer:        cmd.From,
		Timestamp:     cmd.Time,
	}, cmd.Time)
	return nil
}

func (a *DocuVaultAggregate) verifyDocument(cmd *VerifyDocument) error {
	if err := a.whenNotPaused(); err != nil {
		return err
	}
	if err := a.onlyIssuer(cmd.Tx); err != nil {
		return err
	}
	doc, ok := a.documents[cmd.DocumentID]
	if !ok {
		return ErrNotRegistered
	}
	if doc.Verified {
		return ErrAlreadyVerified
	}
	if IsExpired(doc.ExpirationDate, cmd.Time) {
		return ErrExpired
	}
	a.StoreEvent(domainEvents.DocumentVerified, domainEvents.DocumentVerifiedData{
		DocumentID: cmd.DocumentID,
		Verifier:   cmd.From,
		Timestamp:  cmd.Time,
	}, cmd.Time)
	return nil
}

// verifyDocuments skips unknown, verified and expired documents. The batch event is only stored
// when something was verified.
func (a *DocuVaultAggregate) verifyDocuments(cmd *VerifyDocuments) error {
	if err := a.whenNotPaused(); err != nil {
		return err
	}
	if err := a.onlyIssuer(cmd.Tx); err != nil {
		return err
	}
	if len(cmd.DocumentIDs) == 0 {
		return ErrInvalidInput
	}

	count := 0
	verified := map[common.Hash]bool{}
	for _, id := range cmd.DocumentIDs {
		doc, ok := a.documents[id]
		if !ok || doc.Verified || verified[id] || IsExpired(doc.ExpirationDate, cmd.Time) {
			continue
		}
		verified[id] = true
		count++
		a.StoreEvent(domainEvents.DocumentVerified, domainEvents.DocumentVerifiedData{
			DocumentID: id,
			Verifier:   cmd.From,
			Timestamp:  cmd.Time,
		}, cmd.Time)
	}
	if count > 0 {
		a.StoreEvent(domainEvents.DocumentBatchVerified, domainEvents.BatchData{
			Count:     count,
			Account:   cmd.From,
			Timestamp: cmd.Time,
		}, cmd.Time)
	}
	return nil
}

func (a *DocuVaultAggregate) requestVerification(cmd *RequestVerification) error {
	if err := a.whenNotPaused(); err != nil {
		return err
	}
	doc, err := a.holderDocument(cmd.Tx, cmd.DocumentID)
	if err != nil {
		return err
	}
	if doc.Verified {
		return ErrAlreadyVerified
	}
	if IsExpired(doc.ExpirationDate, cmd.Time) {
		return ErrExpired
	}
	a.StoreEvent(domainEvents.VerificationRequested, domainEvents.VerificationRequestedData{
		DocumentID: cmd.DocumentID,
		Holder:     cmd.From,
		Timestamp:  cmd.Time,
	}, cmd.Time)
	return nil
}

// requestShare (re)opens the consent record for requester as PENDING.
func (a *DocuVaultAggregate) requestShare(cmd *RequestShare) error {
	if err := a.whenNotPaused(); err != nil {
		return err
	}
	if _, err := a.holderDocument(cmd.Tx, cmd.DocumentID); err != nil {
		return err
	}
	if cmd.Requester == (common.Address{}) {
		return ErrZeroAddress
	}
	a.StoreEvent(domainEvents.ShareRequested, domainEvents.ShareData{
		DocumentID: cmd.DocumentID,
		Requester:  cmd.Requester,
		Timestamp:  cmd.Time,
	}, cmd.Time)
	return nil
}

// giveConsent caps a granted validity at the document expiration. A rejection keeps the given
// validity.
func (a *DocuVaultAggregate) giveConsent(cmd *GiveConsent) error {
	if err := a.whenNotPaused(); err != nil {
		return err
	}
	doc, err := a.holderDocument(cmd.Tx, cmd.DocumentID)
	if err != nil {
		return err
	}
	if cmd.Requester == (common.Address{}) {
		return ErrZeroAddress
	}
	if cmd.Consent != Granted && cmd.Consent != Rejected {
		return ErrInvalidInput
	}
	validUntil := cmd.ValidUntil
	if cmd.Consent == Granted && validUntil.After(doc.ExpirationDate) {
		validUntil = doc.ExpirationDate
	}
	a.StoreEvent(domainEvents.ConsentChanged, domainEvents.ConsentData{
		DocumentID: cmd.DocumentID,
		Requester:  cmd.Requester,
		Consent:    uint8(cmd.Consent),
		ValidUntil: validUntil,
		Timestamp:  cmd.Time,
	}, cmd.Time)
	return nil
}

func (a *DocuVaultAggregate) revokeConsent(cmd *RevokeConsent) error {
	if err := a.whenNotPaused(); err != nil {
		return err
	}
	if _, err := a.holderDocument(cmd.Tx, cmd.DocumentID); err != nil {
		return err
	}
	if a.consents[consentKey{cmd.DocumentID, cmd.Requester}].status != Granted {
		return ErrNotGranted
	}
	a.StoreEvent(domainEvents.ConsentRevoked, domainEvents.ShareData{
		DocumentID: cmd.DocumentID,
		Requester:  cmd.Requester,
		Timestamp:  cmd.Time,
	}, cmd.Time)
	return nil
}

// shareDocument fails with ErrExpired both for an expired document and for a lapsed consent.
func (a *DocuVaultAggregate) shareDocument(cmd *ShareDocument) error {
	if err := a.whenNotPaused(); err != nil {
		return err
	}
	doc, err := a.holderDocument(cmd.Tx, cmd.DocumentID)
	if err != nil {
		return err
	}
	if !doc.Verified {
		return ErrNotVerified
	}
	if IsExpired(doc.ExpirationDate, cmd.Time) {
		return ErrExpired
	}
	c := a.consents[consentKey{cmd.DocumentID, cmd.Requester}]
	if c.status != Granted {
		return ErrNotGranted
	}
	if !cmd.Time.Before(c.validUntil) {
		return ErrExpired
	}
	a.StoreEvent(domainEvents.DocumentShared, domainEvents.ShareData{
		DocumentID: cmd.DocumentID,
		Requester:  cmd.Requester,
		Timestamp:  cmd.Time,
	}, cmd.Time)
	return nil
}

func (a *DocuVaultAggregate) registerIssuer(cmd *RegisterIssuer) error {
	if err := a.whenNotPaused(); err != nil {
		return err
	}
	if err := a.onlyAdmin(cmd.Tx); err != nil {
		return err
	}
	if cmd.Issuer == (common.Address{}) {
		return ErrZeroAddress
	}
	if a.issuers[cmd.Issuer] {
		return ErrIssuerRegistered
	}
	a.storeAccountEvent(domainEvents.IssuerRegistered, cmd.Tx, cmd.Issuer)
	return nil
}

// deactivateIssuer is allowed while paused.
func (a *DocuVaultAggregate) deactivateIssuer(cmd *DeactivateIssuer) error {
	if err := a.onlyAdmin(cmd.Tx); err != nil {
		return err
	}
	if cmd.Issuer == (common.Address{}) {
		return ErrZeroAddress
	}
	if !a.issuers[cmd.Issuer] {
		return ErrNotActive
	}
	a.storeAccountEvent(domainEvents.IssuerDeactivated, cmd.Tx, cmd.Issuer)
	return nil
}

// activateIssuer is allowed while paused.
func (a *DocuVaultAggregate) activateIssuer(cmd *ActivateIssuer) error {
	if err := a.onlyAdmin(cmd.Tx); err != nil {
		return err
	}
	if cmd.Issuer == (common.Address{}) {
		return ErrZeroAddress
	}
	if a.issuers[cmd.Issuer] {
		return ErrIsActive
	}
	a.storeAccountEvent(domainEvents.IssuerActivated, cmd.Tx, cmd.Issuer)
	return nil
}

func (a *DocuVaultAggregate) addAdmin(cmd *AddAdmin) error {
	if err := a.whenNotPaused(); err != nil {
		return err
	}
	if err := a.onlyAdmin(cmd.Tx); err != nil {
		return err
	}
	if cmd.Admin == (common.Address{}) {
		return ErrZeroAddress
	}
	if a.roles[AdminRole][cmd.Admin] {
		return ErrAlreadyAdmin
	}
	a.storeAccountEvent(domainEvents.AdminAdded, cmd.Tx, cmd.Admin)
	return nil
}

// removeAdmin revokes ADMIN_ROLE, also from the caller itself.
func (a *DocuVaultAggregate) removeAdmin(cmd *RemoveAdmin) error {
	if err := a.whenNotPaused(); err != nil {
		return err
	}
	if err := a.onlyAdmin(cmd.Tx); err != nil {
		return err
	}
	if cmd.Admin == (common.Address{}) {
		return ErrZeroAddress
	}
	if !a.roles[AdminRole][cmd.Admin] {
		return ErrNotAdmin
	}
	a.storeAccountEvent(domainEvents.AdminRemoved, cmd.Tx, cmd.Admin)
	return nil
}

func (a *DocuVaultAggregate) pause(cmd *Pause) error {
	if err := a.onlyAdmin(cmd.Tx); err != nil {
		return err
	}
	if a.paused {
		return ErrEnforcedPause
	}
	a.storeAccountEvent(domainEvents.Paused, cmd.Tx, cmd.From)
	return nil
}

func (a *DocuVaultAggregate) unpause(cmd *Unpause) error {
	if err := a.onlyAdmin(cmd.Tx); err != nil {
		return err
	}
	if !a.paused {
		return ErrExpectedPause
	}
	a.storeAccountEvent(domainEvents.Unpaused, cmd.Tx, cmd.From)
	return nil
}

func (a *DocuVaultAggregate) storeAccountEvent(eventType eh.EventType, tx domain.Tx, account common.Address) {
	a.StoreEvent(eventType, domainEvents.AccountData{
		Account:   account,
		Timestamp: tx.Time,
	}, tx.Time)
}

func (a *DocuVaultAggregate) ApplyEvent(ctx context.Context, event eh.Event) error {
	switch data := domainEvents.Data(event).(type) {
	case domainEvents.DeployedData:
		a.deployed = true
		a.owner = data.Owner
		a.roles[DefaultAdminRole][data.Owner] = true
		a.roles[AdminRole][data.Owner] = true
	case domainEvents.DocumentData:
		a.documents[data.DocumentID] = Document{
			ContentHash:    data.ContentHash,
			CID:            data.CID,
			Issuer:         data.Issuer,
			Holder:         data.Holder,
			IssuanceDate:   data.IssuanceDate,
			ExpirationDate: data.ExpirationDate,
			Verified:       data.Verified,
			DocumentType:   DocumentType(data.DocumentType),
		}
	case domainEvents.DocumentVerifiedData:
		doc := a.documents[data.DocumentID]
		doc.Verified = true
		a.documents[data.DocumentID] = doc
	case domainEvents.ConsentData:
		a.consents[consentKey{data.DocumentID, data.Requester}] = consent{
			status:     ConsentStatus(data.Consent),
			validUntil: data.ValidUntil,
		}
	case domainEvents.ShareData:
		key := consentKey{data.DocumentID, data.Requester}
		switch event.EventType() {
		case domainEvents.ShareRequested:
			a.consents[key] = consent{status: Pending}
		case domainEvents.ConsentRevoked:
			a.consents[key] = consent{status: Rejected}
		}
	case domainEvents.AccountData:
		a.applyAccountEvent(event.EventType(), data.Account)
	case domainEvents.DocumentRegisteredData, domainEvents.DocumentUpdatedData,
		domainEvents.BatchData, domainEvents.VerificationRequestedData:
		// logs only
	default:
		logger.Logger().Warnf("[DocuVaultAggregate] could not apply event: %s", event.EventType())
	}
	return nil
}

func (a *DocuVaultAggregate) applyAccountEvent(eventType eh.EventType, account common.Address) {
	switch eventType {
	case domainEvents.IssuerRegistered, domainEvents.IssuerActivated:
		a.issuers[account] = true
	case domainEvents.IssuerDeactivated:
		a.issuers[account] = false
	case domainEvents.AdminAdded:
		a.roles[AdminRole][account] = true
	case domainEvents.AdminRemoved:
		a.roles[AdminRole][account] = false
	case domainEvents.Paused:
		a.paused = true
	case domainEvents.Unpaused:
		a.paused = false
	}
}
