package identity

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	"go.etcd.io/bbolt"
)

var bucketDids = []byte("dids")
var bucketControllers = []byte("controllers")

// BoltRegistry is a Registry persisted in a bbolt database.
type BoltRegistry struct {
	db *bbolt.DB
}

// OpenBoltRegistry opens (or creates) the registry database in dir.
func OpenBoltRegistry(dir string) (*BoltRegistry, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, errors.Wrap(err, "could not create registry directory")
	}
	db, err := bbolt.Open(filepath.Join(dir, "registry.db"), 0600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, errors.Wrap(err, "could not open registry database")
	}
	err = db.Update(func(tx *bbolt.Tx) error {
		for _, name := range [][]byte{bucketDids, bucketControllers} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, errors.Wrap(err, "could not create registry buckets")
	}
	return &BoltRegistry{db: db}, nil
}

func (r *BoltRegistry) Close() error {
	return r.db.Close()
}

func (r *BoltRegistry) RegisterDid(controller common.Address, did, document, publicKey string) error {
	if !ValidDID(did) || controller == (common.Address{}) {
		return ErrInvalidDID
	}
	if document == "" {
		var err error
		if document, err = DefaultDocument(did, controller); err != nil {
			return err
		}
	}
	if err := checkDocument(did, document); err != nil {
		return err
	}
	if err := checkPublicKey(publicKey); err != nil {
		return err
	}

	now := TimeNow()
	record := DidRecord{
		DID:        did,
		Controller: controller,
		Document:   document,
		PublicKey:  publicKey,
		Active:     true,
		Created:    now,
		Updated:    now,
	}
	return r.db.Update(func(tx *bbolt.Tx) error {
		dids := tx.Bucket(bucketDids)
		controllers := tx.Bucket(bucketControllers)
		if dids.Get([]byte(did)) != nil || controllers.Get(controller.Bytes()) != nil {
			return ErrAlreadyRegistered
		}
		if err := putRecord(dids, record); err != nil {
			return err
		}
		return controllers.Put(controller.Bytes(), []byte(did))
	})
}

func (r *BoltRegistry) DeactivateDid(caller common.Address, did string) error {
	return r.setActive(caller, did, false)
}

func (r *BoltRegistry) ReactivateDid(caller common.Address, did string) error {
	return r.setActive(caller, did, true)
}

func (r *BoltRegistry) setActive(caller common.Address, did string, active bool) error {
	return r.db.Update(func(tx *bbolt.Tx) error {
		dids := tx.Bucket(bucketDids)
		record, err := getRecord(dids, did)
		if err != nil {
			return err
		}
		if record.Controller != caller {
			return ErrUnauthorized
		}
		if record.Active == active {
			if active {
				return ErrActive
			}
			return ErrDeactivated
		}
		record.Active = active
		record.Updated = TimeNow()
		return putRecord(dids, *record)
	})
}

func (r *BoltRegistry) ResolveDid(did string) (common.Address, error) {
	record, err := r.GetDidDocument(did)
	if err != nil {
		return common.Address{}, err
	}
	return record.Controller, nil
}

func (r *BoltRegistry) IsActive(did string) (bool, error) {
	record, err := r.GetDidDocument(did)
	if err != nil {
		return false, err
	}
	return record.Active, nil
}

func (r *BoltRegistry) AddressToDID(account common.Address) string {
	var did string
	_ = r.db.View(func(tx *bbolt.Tx) error {
		did = string(tx.Bucket(bucketControllers).Get(account.Bytes()))
		return nil
	})
	return did
}

func (r *BoltRegistry) GetDidDocument(did string) (*DidRecord, error) {
	var record *DidRecord
	err := r.db.View(func(tx *bbolt.Tx) error {
		var err error
		record, err = getRecord(tx.Bucket(bucketDids), did)
		return err
	})
	return record, err
}

func getRecord(bucket *bbolt.Bucket, did string) (*DidRecord, error) {
	if did == "" {
		return nil, ErrInvalidDID
	}
	data := bucket.Get([]byte(did))
	if data == nil {
		return nil, ErrInvalidDID
	}
	record := &DidRecord{}
	if err := json.Unmarshal(data, record); err != nil {
		return nil, errors.Wrapf(err, "corrupt registry record for %s", did)
	}
	return record, nil
}

func putRecord(bucket *bbolt.Bucket, record DidRecord) error {
	data, err := json.Marshal(record)
	if err != nil {
		return errors.Wrap(err, "could not marshal registry record")
	}
	return bucket.Put([]byte(record.DID), data)
}
