package local

import (
	"sync"
	"time"

	"github.com/Modern-Miracle/NGDocuVault-sub001/issuer"
	"github.com/Modern-Miracle/NGDocuVault-sub001/pkg/logger"
	"github.com/ethereum/go-ethereum/common"
)

var TimeNow = time.Now

// LocalIssuer is an in-process issuer. The owner and the accounts it adds may issue.
type LocalIssuer struct {
	owner   common.Address
	mutex   sync.RWMutex
	issuers map[common.Address]bool
	records map[common.Hash]issuer.Record
}

var _ issuer.Issuer = (*LocalIssuer)(nil)

func NewLocalIssuer(owner common.Address) *LocalIssuer {
	return &LocalIssuer{
		owner:   owner,
		issuers: map[common.Address]bool{owner: true},
		records: map[common.Hash]issuer.Record{},
	}
}

func (l *LocalIssuer) AddIssuer(caller, account common.Address) error {
	if caller != l.owner {
		return issuer.ErrOnlyOwner
	}
	l.mutex.Lock()
	defer l.mutex.Unlock()
	l.issuers[account] = true
	return nil
}

func (l *LocalIssuer) onlyIssuer(caller common.Address) error {
	if !l.issuers[caller] {
		return issuer.ErrOnlyIssuer
	}
	return nil
}

func (l *LocalIssuer) IssueDocument(caller common.Address, hash common.Hash) error {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	if err := l.onlyIssuer(caller); err != nil {
		return err
	}
	l.records[hash] = issuer.Record{
		Hash:      hash,
		Issuer:    l.owner,
		Caller:    caller,
		Timestamp: TimeNow(),
	}
	logger.Logger().Debugf("document %s issued by %s", hash.Hex(), caller.Hex())
	return nil
}

func (l *LocalIssuer) RevokeDocument(caller common.Address, hash common.Hash) error {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	if err := l.onlyIssuer(caller); err != nil {
		return err
	}
	if _, ok := l.records[hash]; !ok {
		return issuer.ErrUnknownDocument
	}
	delete(l.records, hash)
	logger.Logger().Debugf("document %s revoked by %s", hash.Hex(), caller.Hex())
	return nil
}

func (l *LocalIssuer) GetDocument(hash common.Hash) issuer.Record {
	l.mutex.RLock()
	defer l.mutex.RUnlock()
	return l.records[hash]
}
