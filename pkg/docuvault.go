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
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/Modern-Miracle/NGDocuVault-sub001/domain"
	"github.com/Modern-Miracle/NGDocuVault-sub001/domain/auth"
	"github.com/Modern-Miracle/NGDocuVault-sub001/domain/index"
	"github.com/Modern-Miracle/NGDocuVault-sub001/domain/vault"
	"github.com/Modern-Miracle/NGDocuVault-sub001/domain/verifier"
	"github.com/Modern-Miracle/NGDocuVault-sub001/identity"
	"github.com/Modern-Miracle/NGDocuVault-sub001/issuer"
	localIssuer "github.com/Modern-Miracle/NGDocuVault-sub001/issuer/local"
	"github.com/Modern-Miracle/NGDocuVault-sub001/pkg/logger"
	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	eh "github.com/looplab/eventhorizon"
	"github.com/looplab/eventhorizon/aggregatestore/events"
	"github.com/looplab/eventhorizon/commandhandler/aggregate"
	"github.com/looplab/eventhorizon/commandhandler/bus"
	"github.com/looplab/eventhorizon/eventbus/local"
	"github.com/looplab/eventhorizon/eventstore/memory"
	memoryRepo "github.com/looplab/eventhorizon/repo/memory"
	nutsEventOctClient "github.com/nuts-foundation/nuts-event-octopus/client"
	nutsEventOctopus "github.com/nuts-foundation/nuts-event-octopus/pkg"
	core "github.com/nuts-foundation/nuts-go-core"
)

// ModuleName is the name of the engine.
const ModuleName = "DocuVault"

// ConfigOwner is the config key for the privileged owner address.
const ConfigOwner = "owner"

// ConfigDatadir is the config key for the directory of the identity registry.
const ConfigDatadir = "datadir"

// ConfigGenesis is the config key for the optional genesis file.
const ConfigGenesis = "genesis"

// ConfigMode is the config key for the engine mode, server or client.
const ConfigMode = "mode"

const defaultDatadir = "./data"

// ErrInvalidOwner is returned by Configure when the owner is not a hex address.
var ErrInvalidOwner = errors.New("owner must be a hex encoded address")

// ErrNotStarted is returned by every operation before Start.
var ErrNotStarted = errors.New("docuvault service is not started")

// Contract instance ids.
var AuthID = domain.ContractID("did-auth")
var VerifierID = domain.ContractID("did-verifier")
var VaultID = domain.ContractID("docu-vault")

type DocuVaultConfig struct {
	Owner   string
	Datadir string
	Genesis string
	Mode    string
}

func DefaultDocuVaultConfig() DocuVaultConfig {
	return DocuVaultConfig{
		Datadir: defaultDatadir,
	}
}

// DocuVault runs the three contracts on one event sourced store. Transactions are serialized and
// atomic: a reverted command stores nothing.
type DocuVault struct {
	Config           DocuVaultConfig
	Registry         identity.Registry
	NutsEventOctopus nutsEventOctopus.EventOctopusClient
	EventPublisher   nutsEventOctopus.IEventPublisher
	CommandBus       eh.CommandHandler
	Issuer           issuer.Issuer

	owner          common.Address
	aggregateStore *events.AggregateStore
	eventBus       *local.EventBus
	indexRepo      eh.ReadWriteRepo
	mutex          sync.Mutex
	started        bool
}

var instance *DocuVault
var oneEngine sync.Once

func DocuVaultServiceInstance() *DocuVault {
	oneEngine.Do(func() {
		instance = NewDocuVault(DefaultDocuVaultConfig())
	})
	return instance
}

func NewDocuVault(config DocuVaultConfig) *DocuVault {
	return &DocuVault{Config: config}
}

// Configure resolves the engine mode and checks the owner. Without an owner the service stays
// unconfigured, so CLI helpers run in any mode.
func (cl *DocuVault) Configure() error {
	if cl.Config.Mode == "" {
		cl.Config.Mode = core.NutsConfig().GetEngineMode(cl.Config.Mode)
	}
	if cl.Config.Datadir == "" {
		cl.Config.Datadir = defaultDatadir
	}
	if cl.Config.Owner == "" {
		if cl.Config.Mode == core.ServerEngineMode {
			logger.Logger().Warnf("no %s configured, DocuVault contracts are not deployed", ConfigOwner)
		}
		return nil
	}
	if !common.IsHexAddress(cl.Config.Owner) {
		return fmt.Errorf("%w: '%s'", ErrInvalidOwner, cl.Config.Owner)
	}
	cl.owner = common.HexToAddress(cl.Config.Owner)
	return nil
}

// Owner is the privileged owner every contract was deployed by.
func (cl *DocuVault) Owner() common.Address {
	return cl.owner
}

// Started reports whether the contracts are deployed and accept transactions.
func (cl *DocuVault) Started() bool {
	cl.mutex.Lock()
	defer cl.mutex.Unlock()
	return cl.started
}

// Start opens the registry, wires the event store and deploys the contracts.
func (cl *DocuVault) Start() error {
	if cl.owner == (common.Address{}) {
		if err := cl.Configure(); err != nil {
			return err
		}
		if cl.owner == (common.Address{}) {
			logger.Logger().Debug("no owner configured, DocuVault not started")
			return nil
		}
	}
	if cl.Registry == nil {
		if err := os.MkdirAll(cl.Config.Datadir, os.ModePerm); err != nil {
			return err
		}
		registry, err := identity.OpenBoltRegistry(cl.Config.Datadir)
		if err != nil {
			return err
		}
		cl.Registry = registry
	}

	if cl.Issuer == nil {
		cl.Issuer = localIssuer.NewLocalIssuer(cl.owner)
	}

	eventstore := memory.NewEventStore()
	eventbus := local.NewEventBus(local.NewGroup())
	commandBus := bus.NewCommandHandler()
	cl.eventBus = eventbus

	eventLogger := &logger.EventLogger{}
	eventbus.AddObserver(eh.MatchAny(), eventLogger)

	aggregateStore, err := events.NewAggregateStore(eventstore, eventbus)
	if err != nil {
		return err
	}
	cl.aggregateStore = aggregateStore

	handlers := map[eh.AggregateType][]eh.CommandType{
		domain.DidAuthAggregateType: {
			auth.DeployCmdType,
			auth.GrantDidRoleCmdType,
			auth.RevokeDidRoleCmdType,
			auth.SetTrustedIssuerCmdType,
			auth.SetRoleRequirementCmdType,
			auth.IssueCredentialCmdType,
			auth.RevokeCredentialCmdType,
		},
		domain.DidVerifierAggregateType: {
			verifier.DeployCmdType,
			verifier.SetIssuerTrustStatusCmdType,
		},
		domain.DocuVaultAggregateType: {
			vault.DeployCmdType,
			vault.RegisterDocumentCmdType,
			vault.RegisterDocumentsCmdType,
			vault.UpdateDocumentCmdType,
			vault.VerifyDocumentCmdType,
			vault.VerifyDocumentsCmdType,
			vault.RequestVerificationCmdType,
			vault.RequestShareCmdType,
			vault.GiveConsentCmdType,
			vault.RevokeConsentCmdType,
			vault.ShareDocumentCmdType,
			vault.RegisterIssuerCmdType,
			vault.DeactivateIssuerCmdType,
			vault.ActivateIssuerCmdType,
			vault.AddAdminCmdType,
			vault.RemoveAdminCmdType,
			vault.PauseCmdType,
			vault.UnpauseCmdType,
		},
	}
	for aggregateType, commandTypes := range handlers {
		handler, err := aggregate.NewCommandHandler(aggregateType, aggregateStore)
		if err != nil {
			return err
		}
		logged := eh.UseCommandHandlerMiddleware(handler, eventLogger.CommandLogger)
		for _, commandType := range commandTypes {
			if err := commandBus.SetHandler(logged, commandType); err != nil {
				return err
			}
		}
	}
	cl.CommandBus = commandBus

	cl.indexRepo = memoryRepo.NewRepo()
	eventbus.AddHandler(eh.MatchAnyEventOf(index.Events...), index.NewEventHandler(cl.indexRepo))

	// Only servers forward contract events to the octopus.
	if cl.Config.Mode == core.ServerEngineMode {
		if cl.NutsEventOctopus == nil {
			cl.NutsEventOctopus = nutsEventOctClient.NewEventOctopusClient()
		}
		publisher, err := cl.NutsEventOctopus.EventPublisher("docuvault")
		if err != nil {
			return err
		}
		cl.EventPublisher = publisher
	}
	if cl.EventPublisher != nil {
		eventbus.AddObserver(eh.MatchAny(), &EventForwarder{Publisher: cl.EventPublisher})
	}

	go func() {
		for e := range eventbus.Errors() {
			logger.Logger().WithError(e.Err).Errorf("event bus error on %s", e.Event)
		}
	}()

	cl.mutex.Lock()
	cl.started = true
	cl.mutex.Unlock()
	if err := cl.deploy(); err != nil {
		return err
	}
	if cl.Config.Genesis != "" {
		genesis, err := LoadGenesis(cl.Config.Genesis)
		if err != nil {
			return err
		}
		if err := genesis.Apply(context.Background(), cl); err != nil {
			return err
		}
	}
	logger.Logger().Infof("DocuVault started, owner %s", cl.owner.Hex())
	return nil
}

// deploy runs the constructors as the owner. Contracts deployed before are left alone.
func (cl *DocuVault) deploy() error {
	ctx := context.Background()
	tx := cl.tx(cl.owner)
	deployments := []eh.Command{
		&auth.Deploy{ID: AuthID, Tx: tx},
		&verifier.Deploy{ID: VerifierID, Tx: tx},
		&vault.Deploy{ID: VaultID, Tx: tx},
	}
	for _, cmd := range deployments {
		if err := cl.handle(ctx, cmd); err != nil && !errors.Is(err, domain.ErrAlreadyDeployed) {
			return fmt.Errorf("could not deploy %s: %w", cmd.AggregateType(), err)
		}
	}
	return nil
}

func (cl *DocuVault) Shutdown() error {
	cl.mutex.Lock()
	defer cl.mutex.Unlock()
	cl.started = false
	if closer, ok := cl.Registry.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

func (cl *DocuVault) tx(caller common.Address) domain.Tx {
	return domain.Tx{From: caller, Time: TimeNow()}
}

// handle dispatches one transaction.
func (cl *DocuVault) handle(ctx context.Context, cmd eh.Command) error {
	cl.mutex.Lock()
	defer cl.mutex.Unlock()
	return cl.dispatch(ctx, cmd)
}

func (cl *DocuVault) dispatch(ctx context.Context, cmd eh.Command) error {
	if !cl.started {
		return ErrNotStarted
	}
	return cl.CommandBus.HandleCommand(identity.NewContext(ctx, cl.Registry), cmd)
}

// load returns the committed state of a contract.
func (cl *DocuVault) load(ctx context.Context, aggregateType eh.AggregateType, id uuid.UUID) (eh.Aggregate, error) {
	cl.mutex.Lock()
	defer cl.mutex.Unlock()
	return cl.loadLocked(ctx, aggregateType, id)
}

func (cl *DocuVault) loadLocked(ctx context.Context, aggregateType eh.AggregateType, id uuid.UUID) (eh.Aggregate, error) {
	if !cl.started {
		return nil, ErrNotStarted
	}
	return cl.aggregateStore.Load(ctx, aggregateType, id)
}
