package index

import (
	"context"
	"errors"
	"fmt"
	"time"

	domainEvents "github.com/Modern-Miracle/NGDocuVault-sub001/domain/events"
	"github.com/Modern-Miracle/NGDocuVault-sub001/pkg/logger"
	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	eh "github.com/looplab/eventhorizon"
	"github.com/looplab/eventhorizon/eventhandler/projector"
)

// VaultIndex is the read model of one vault: who holds and issued which documents, which
// verification requests are open and which documents were superseded.
type VaultIndex struct {
	ID        uuid.UUID
	Version   int
	UpdatedAt time.Time

	ByHolder     map[common.Address][]common.Hash
	ByIssuer     map[common.Address][]common.Hash
	Pending      []common.Hash
	SupersededBy map[common.Hash]common.Hash
}

var _ = eh.Versionable(&VaultIndex{})
var _ = eh.Entity(&VaultIndex{})

func NewVaultIndex() *VaultIndex {
	return &VaultIndex{
		ByHolder:     map[common.Address][]common.Hash{},
		ByIssuer:     map[common.Address][]common.Hash{},
		SupersededBy: map[common.Hash]common.Hash{},
	}
}

func (entity VaultIndex) AggregateVersion() int {
	return entity.Version
}

func (entity VaultIndex) EntityID() uuid.UUID {
	return entity.ID
}

func (entity VaultIndex) DocumentsByHolder(holder common.Address) []common.Hash {
	return append([]common.Hash{}, entity.ByHolder[holder]...)
}

func (entity VaultIndex) DocumentsByIssuer(issuer common.Address) []common.Hash {
	return append([]common.Hash{}, entity.ByIssuer[issuer]...)
}

// PendingVerifications lists requested, not yet verified documents in request order.
func (entity VaultIndex) PendingVerifications() []common.Hash {
	return append([]common.Hash{}, entity.Pending...)
}

// Successor returns the document that superseded documentID, if any.
func (entity VaultIndex) Successor(documentID common.Hash) (common.Hash, bool) {
	next, ok := entity.SupersededBy[documentID]
	return next, ok
}

// copy returns a deep copy, so readers of a stored index never see it change.
func (entity VaultIndex) copy() *VaultIndex {
	c := NewVaultIndex()
	c.ID = entity.ID
	c.Version = entity.Version
	c.UpdatedAt = entity.UpdatedAt
	for k, v := range entity.ByHolder {
		c.ByHolder[k] = append([]common.Hash{}, v...)
	}
	for k, v := range entity.ByIssuer {
		c.ByIssuer[k] = append([]common.Hash{}, v...)
	}
	c.Pending = append([]common.Hash{}, entity.Pending...)
	for k, v := range entity.SupersededBy {
		c.SupersededBy[k] = v
	}
	return c
}

func (entity *VaultIndex) removePending(documentID common.Hash) {
	pending := entity.Pending[:0]
	for _, id := range entity.Pending {
		if id != documentID {
			pending = append(pending, id)
		}
	}
	entity.Pending = pending
}

type Projector struct {
}

func (p Projector) ProjectorType() projector.Type {
	return projector.Type("vault-index")
}

func (p Projector) Project(ctx context.Context, event eh.Event, entity eh.Entity) (eh.Entity, error) {
	current, ok := entity.(*VaultIndex)
	if !ok {
		return nil, errors.New("model is of incorrect type")
	}
	model := current.copy()
	model.ID = event.AggregateID()

	switch data := domainEvents.Data(event).(type) {
	case domainEvents.DocumentData:
		model.ByHolder[data.Holder] = append(model.ByHolder[data.Holder], data.DocumentID)
		model.ByIssuer[data.Issuer] = append(model.ByIssuer[data.Issuer], data.DocumentID)
	case domainEvents.VerificationRequestedData:
		model.removePending(data.DocumentID)
		model.Pending = append(model.Pending, data.DocumentID)
	case domainEvents.DocumentVerifiedData:
		model.removePending(data.DocumentID)
	case domainEvents.DocumentUpdatedData:
		model.SupersededBy[data.OldDocumentID] = data.NewDocumentID
	}

	model.Version = event.Version()
	model.UpdatedAt = event.Timestamp()
	return model, nil
}

// Events lists the event types of a vault; the projection must see all of them to keep its
// version in step with the aggregate.
var Events = []eh.EventType{
	domainEvents.VaultDeployed,
	domainEvents.DocumentStored,
	domainEvents.DocumentRegistered,
	domainEvents.DocumentBatchRegistered,
	domainEvents.DocumentUpdated,
	domainEvents.DocumentVerified,
	domainEvents.DocumentBatchVerified,
	domainEvents.VerificationRequested,
	domainEvents.ShareRequested,
	domainEvents.ConsentChanged,
	domainEvents.ConsentRevoked,
	domainEvents.DocumentShared,
	domainEvents.IssuerRegistered,
	domainEvents.IssuerDeactivated,
	domainEvents.IssuerActivated,
	domainEvents.AdminAdded,
	domainEvents.AdminRemoved,
	domainEvents.Paused,
	domainEvents.Unpaused,
}

// NewEventHandler returns the projector event handler writing into repo.
func NewEventHandler(repo eh.ReadWriteRepo) *projector.EventHandler {
	handler := projector.NewEventHandler(&Projector{}, repo)
	handler.SetEntityFactory(func() eh.Entity { return NewVaultIndex() })
	return handler
}

// Find loads the index of vault id. A vault without events has an empty index.
func Find(ctx context.Context, repo eh.ReadRepo, id uuid.UUID) (*VaultIndex, error) {
	entity, err := repo.Find(ctx, id)
	if rrErr, ok := err.(eh.RepoError); ok && rrErr.Err == eh.ErrEntityNotFound {
		empty := NewVaultIndex()
		empty.ID = id
		return empty, nil
	}
	if err != nil {
		return nil, err
	}
	model, ok := entity.(*VaultIndex)
	if !ok {
		return nil, fmt.Errorf("entity %s is not a vault index", id)
	}
	logger.Logger().Debugf("[VaultIndex] loaded version %d", model.Version)
	return model, nil
}
