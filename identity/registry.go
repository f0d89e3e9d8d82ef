// Package identity contains the DID registry the contracts resolve callers against.
// It maps a DID to its controller address, DID document and activation flag.
package identity

import (
	"context"
	"regexp"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
)

var ErrInvalidDID = errors.New("DidRegistry__InvalidDID")
var ErrAlreadyRegistered = errors.New("DidRegistry__AlreadyRegistered")
var ErrUnauthorized = errors.New("DidRegistry__Unauthorized")
var ErrDeactivated = errors.New("DidRegistry__DeactivatedDID")
var ErrActive = errors.New("DidRegistry__ActiveDID")
var ErrInvalidDocument = errors.New("DidRegistry__InvalidDocument")
var ErrInvalidPublicKey = errors.New("DidRegistry__InvalidPublicKey")

// ErrNoRegistry is returned by contracts that need a registry when none is attached to the context.
var ErrNoRegistry = errors.New("no identity registry available")

// TimeNow returns the current time. This can be overwritten during tests
var TimeNow = func() time.Time {
	return time.Now()
}

// Registry is the identity registry as consumed by the contracts and the service.
type Registry interface {
	// RegisterDid binds did to controller. An empty document is replaced by a generated one.
	RegisterDid(controller common.Address, did, document, publicKey string) error
	DeactivateDid(caller common.Address, did string) error
	ReactivateDid(caller common.Address, did string) error
	// ResolveDid returns the controller of did, or ErrInvalidDID when it is unknown.
	ResolveDid(did string) (common.Address, error)
	// IsActive returns ErrInvalidDID for unknown DIDs.
	IsActive(did string) (bool, error)
	// AddressToDID returns the empty string when account controls no DID.
	AddressToDID(account common.Address) string
	GetDidDocument(did string) (*DidRecord, error)
}

// DidRecord is what the registry stores per DID.
type DidRecord struct {
	DID        string         `json:"did"`
	Controller common.Address `json:"controller"`
	Document   string         `json:"document"`
	PublicKey  string         `json:"publicKey"`
	Active     bool           `json:"active"`
	Created    time.Time      `json:"created"`
	Updated    time.Time      `json:"updated"`
}

var didPattern = regexp.MustCompile(`^did:[a-z0-9]+:[A-Za-z0-9._:%-]+$`)

// ValidDID checks the did:<method>:<identifier> syntax.
func ValidDID(did string) bool {
	return didPattern.MatchString(did)
}

type contextKey struct{}

// NewContext returns a copy of ctx carrying the registry contracts resolve against.
func NewContext(ctx context.Context, registry Registry) context.Context {
	return context.WithValue(ctx, contextKey{}, registry)
}

// FromContext returns the registry attached with NewContext.
func FromContext(ctx context.Context) (Registry, error) {
	if ctx == nil {
		return nil, ErrNoRegistry
	}
	registry, ok := ctx.Value(contextKey{}).(Registry)
	if !ok || registry == nil {
		return nil, ErrNoRegistry
	}
	return registry, nil
}
