/*
 *  DocuVault holds the logic for decentralized document custody
 *  Copyright (C) 2020 DocuVault contributors
 *
 *  This program is free software: you can redistribute it and/or modify
 *  it under the terms of the GNU General Public License as published by
 *  the Free Software Foundation, either version 3 of the License, or
 *  (at your option) any later version.
 *
 *  This program is distributed in the hope that it will be useful,
 *  but WITHOUT ANY WARRANTY; without even the implied warranty of
 *  MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 *  GNU General Public License for more details.
 *
 *  You should have received a copy of the GNU General Public License
 *  along with this program.  If not, see <https://www.gnu.org/licenses/>.
 */

package pkg

import (
	"context"
	"fmt"
	"time"

	"github.com/Modern-Miracle/NGDocuVault-sub001/domain"
	"github.com/Modern-Miracle/NGDocuVault-sub001/domain/index"
	"github.com/Modern-Miracle/NGDocuVault-sub001/domain/vault"
	"github.com/ethereum/go-ethereum/common"
)

// RegisterDocument stores a document as an issuer or, unverified, as its holder. It returns the
// document id.
func (cl *DocuVault) RegisterDocument(ctx context.Context, caller common.Address, r DocumentRegistration) (common.Hash, error) {
	err := cl.handle(ctx, &vault.RegisterDocument{
		ID:             VaultID,
		Tx:             cl.tx(caller),
		ContentHash:    r.ContentHash,
		CID:            r.CID,
		Holder:         r.Holder,
		IssuanceDate:   r.IssuanceDate,
		ExpirationDate: r.ExpirationDate,
		DocumentType:   r.DocumentType,
	})
	if err != nil {
		return common.Hash{}, err
	}
	return vault.GenerateDocumentID(r.ContentHash, r.Holder, r.CID), nil
}

// RegisterDocuments registers all documents or none, in order.
func (cl *DocuVault) RegisterDocuments(ctx context.Context, caller common.Address, rs []DocumentRegistration) ([]common.Hash, error) {
	cmd := &vault.RegisterDocuments{ID: VaultID, Tx: cl.tx(caller)}
	for _, r := range rs {
		cmd.ContentHashes = append(cmd.ContentHashes, r.ContentHash)
		cmd.CIDs = append(cmd.CIDs, r.CID)
		cmd.Holders = append(cmd.Holders, r.Holder)
		cmd.IssuanceDates = append(cmd.IssuanceDates, r.IssuanceDate)
		cmd.ExpirationDates = append(cmd.ExpirationDates, r.ExpirationDate)
		cmd.DocumentTypes = append(cmd.DocumentTypes, r.DocumentType)
	}
	if err := cl.handle(ctx, cmd); err != nil {
		return nil, err
	}
	ids := make([]common.Hash, len(rs))
	for i, r := range rs {
		ids[i] = vault.GenerateDocumentID(r.ContentHash, r.Holder, r.CID)
	}
	return ids, nil
}

// UpdateDocument supersedes oldDocumentID and returns the id of the new version.
func (cl *DocuVault) UpdateDocument(ctx context.Context, caller common.Address, oldDocumentID, contentHash common.Hash, cid string, expirationDate time.Time, documentType vault.DocumentType) (common.Hash, error) {
	cl.mutex.Lock()
	defer cl.mutex.Unlock()

	contract, err := cl.vaultContractLocked(ctx)
	if err != nil {
		return common.Hash{}, err
	}
	old, _ := contract.GetDocument(oldDocumentID)
	err = cl.dispatch(ctx, &vault.UpdateDocument{
		ID:             VaultID,
		Tx:             cl.tx(caller),
		OldDocumentID:  oldDocumentID,
		ContentHash:    contentHash,
		CID:            cid,
		ExpirationDate: expirationDate,
		DocumentType:   documentType,
	})
	if err != nil {
		return common.Hash{}, err
	}
	return vault.GenerateDocumentID(contentHash, old.Holder, cid), nil
}

func (cl *DocuVault) VerifyDocument(ctx context.Context, caller common.Address, documentID common.Hash) error {
	return cl.handle(ctx, &vault.VerifyDocument{ID: VaultID, Tx: cl.tx(caller), DocumentID: documentID})
}

// VerifyDocuments verifies what it can and skips the rest.
func (cl *DocuVault) VerifyDocuments(ctx context.Context, caller common.Address, documentIDs []common.Hash) error {
	return cl.handle(ctx, &vault.VerifyDocuments{ID: VaultID, Tx: cl.tx(caller), DocumentIDs: documentIDs})
}

func (cl *DocuVault) RequestVerification(ctx context.Context, caller common.Address, documentID common.Hash) error {
	return cl.handle(ctx, &vault.RequestVerification{ID: VaultID, Tx: cl.tx(caller), DocumentID: documentID})
}

func (cl *DocuVault) RequestShare(ctx context.Context, caller common.Address, documentID common.Hash, requester common.Address) error {
	return cl.handle(ctx, &vault.RequestShare{ID: VaultID, Tx: cl.tx(caller), DocumentID: documentID, Requester: requester})
}

func (cl *DocuVault) GiveConsent(ctx context.Context, caller common.Address, documentID common.Hash, requester common.Address, consent vault.ConsentStatus, validUntil time.Time) error {
	return cl.handle(ctx, &vault.GiveConsent{ID: VaultID, Tx: cl.tx(caller), DocumentID: documentID, Requester: requester, Consent: consent, ValidUntil: validUntil})
}

func (cl *DocuVault) RevokeConsent(ctx context.Context, caller common.Address, documentID common.Hash, requester common.Address) error {
	return cl.handle(ctx, &vault.RevokeConsent{ID: VaultID, Tx: cl.tx(caller), DocumentID: documentID, Requester: requester})
}

// ShareDocument returns the snapshot of the shared document as of the transaction.
func (cl *DocuVault) ShareDocument(ctx context.Context, caller common.Address, documentID common.Hash, requester common.Address) (vault.DocumentInfo, error) {
	cl.mutex.Lock()
	defer cl.mutex.Unlock()

	tx := cl.tx(caller)
	if err := cl.dispatch(ctx, &vault.ShareDocument{ID: VaultID, Tx: tx, DocumentID: documentID, Requester: requester}); err != nil {
		return vault.DocumentInfo{}, err
	}
	contract, err := cl.vaultContractLocked(ctx)
	if err != nil {
		return vault.DocumentInfo{}, err
	}
	return contract.GetDocumentInfo(documentID, tx.Time), nil
}

func (cl *DocuVault) RegisterIssuer(ctx context.Context, caller, issuer common.Address) error {
	return cl.handle(ctx, &vault.RegisterIssuer{ID: VaultID, Tx: cl.tx(caller), Issuer: issuer})
}

func (cl *DocuVault) DeactivateIssuer(ctx context.Context, caller, issuer common.Address) error {
	return cl.handle(ctx, &vault.DeactivateIssuer{ID: VaultID, Tx: cl.tx(caller), Issuer: issuer})
}

func (cl *DocuVault) ActivateIssuer(ctx context.Context, caller, issuer common.Address) error {
	return cl.handle(ctx, &vault.ActivateIssuer{ID: VaultID, Tx: cl.tx(caller), Issuer: issuer})
}

func (cl *DocuVault) AddAdmin(ctx context.Context, caller, admin common.Address) error {
	return cl.handle(ctx, &vault.AddAdmin{ID: VaultID, Tx: cl.tx(caller), Admin: admin})
}

func (cl *DocuVault) RemoveAdmin(ctx context.Context, caller, admin common.Address) error {
	return cl.handle(ctx, &vault.RemoveAdmin{ID: VaultID, Tx: cl.tx(caller), Admin: admin})
}

func (cl *DocuVault) Pause(ctx context.Context, caller common.Address) error {
	return cl.handle(ctx, &vault.Pause{ID: VaultID, Tx: cl.tx(caller)})
}

func (cl *DocuVault) Unpause(ctx context.Context, caller common.Address) error {
	return cl.handle(ctx, &vault.Unpause{ID: VaultID, Tx: cl.tx(caller)})
}

func (cl *DocuVault) vaultContract(ctx context.Context) (*vault.DocuVaultAggregate, error) {
	cl.mutex.Lock()
	defer cl.mutex.Unlock()
	return cl.vaultContractLocked(ctx)
}

func (cl *DocuVault) vaultContractLocked(ctx context.Context) (*vault.DocuVaultAggregate, error) {
	agg, err := cl.loadLocked(ctx, domain.DocuVaultAggregateType, VaultID)
	if err != nil {
		return nil, err
	}
	contract, ok := agg.(*vault.DocuVaultAggregate)
	if !ok {
		return nil, fmt.Errorf("unexpected aggregate %T for %s", agg, domain.DocuVaultAggregateType)
	}
	return contract, nil
}

func (cl *DocuVault) Paused(ctx context.Context) (bool, error) {
	contract, err := cl.vaultContract(ctx)
	if err != nil {
		return false, err
	}
	return contract.Paused(), nil
}

func (cl *DocuVault) IsAdmin(ctx context.Context, account common.Address) (bool, error) {
	contract, err := cl.vaultContract(ctx)
	if err != nil {
		return false, err
	}
	return contract.IsAdmin(account), nil
}

func (cl *DocuVault) IsIssuerActive(ctx context.Context, issuer common.Address) (bool, error) {
	contract, err := cl.vaultContract(ctx)
	if err != nil {
		return false, err
	}
	return contract.IsIssuerActive(issuer), nil
}

// GetDocument returns the full stored document including its CID.
func (cl *DocuVault) GetDocument(ctx context.Context, documentID common.Hash) (vault.Document, bool, error) {
	contract, err := cl.vaultContract(ctx)
	if err != nil {
		return vault.Document{}, false, err
	}
	doc, ok := contract.GetDocument(documentID)
	return doc, ok, nil
}

// GetDocumentInfo reports unknown documents as expired and unverified.
func (cl *DocuVault) GetDocumentInfo(ctx context.Context, documentID common.Hash) (vault.DocumentInfo, error) {
	contract, err := cl.vaultContract(ctx)
	if err != nil {
		return vault.DocumentInfo{}, err
	}
	return contract.GetDocumentInfo(documentID, TimeNow()), nil
}

func (cl *DocuVault) GetConsentStatus(ctx context.Context, documentID common.Hash, requester common.Address) (vault.ConsentStatus, time.Time, error) {
	contract, err := cl.vaultContract(ctx)
	if err != nil {
		return vault.Pending, time.Time{}, err
	}
	status, validUntil := contract.GetConsentStatus(documentID, requester)
	return status, validUntil, nil
}

// Index returns the read model of the vault. It trails the contract state by the events still
// in flight on the event bus.
func (cl *DocuVault) Index(ctx context.Context) (*index.VaultIndex, error) {
	cl.mutex.Lock()
	if !cl.started {
		cl.mutex.Unlock()
		return nil, ErrNotStarted
	}
	repo := cl.indexRepo
	cl.mutex.Unlock()
	return index.Find(ctx, repo, VaultID)
}

func (cl *DocuVault) GetDocumentsByHolder(ctx context.Context, holder common.Address) ([]common.Hash, error) {
	idx, err := cl.Index(ctx)
	if err != nil {
		return nil, err
	}
	return idx.DocumentsByHolder(holder), nil
}

func (cl *DocuVault) GetDocumentsByIssuer(ctx context.Context, issuer common.Address) ([]common.Hash, error) {
	idx, err := cl.Index(ctx)
	if err != nil {
		return nil, err
	}
	return idx.DocumentsByIssuer(issuer), nil
}

func (cl *DocuVault) GetPendingVerifications(ctx context.Context) ([]common.Hash, error) {
	idx, err := cl.Index(ctx)
	if err != nil {
		return nil, err
	}
	return idx.PendingVerifications(), nil
}
