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
	"encoding/base64"
	"encoding/json"
	"fmt"

	domainEvents "github.com/Modern-Miracle/NGDocuVault-sub001/domain/events"
	"github.com/Modern-Miracle/NGDocuVault-sub001/pkg/logger"
	"github.com/google/uuid"
	eh "github.com/looplab/eventhorizon"
	nutsEventOctopus "github.com/nuts-foundation/nuts-event-octopus/pkg"
)

// ChannelDocuVaultEvents is the octopus subject contract events are published on.
const ChannelDocuVaultEvents = "docuvault-events"

// EventForwarder publishes every contract event to the event octopus.
type EventForwarder struct {
	Publisher nutsEventOctopus.IEventPublisher
}

func (f EventForwarder) HandlerType() eh.EventHandlerType {
	return "EventForwarder"
}

func (f EventForwarder) HandleEvent(ctx context.Context, event eh.Event) error {
	octopusEvent, err := ToOctopusEvent(event)
	if err != nil {
		return err
	}
	logger.Logger().Debugf("forwarding %s (%s)", octopusEvent.Name, octopusEvent.UUID)
	return f.Publisher.Publish(ChannelDocuVaultEvents, *octopusEvent)
}

// ToOctopusEvent wraps a contract event: the name is the event type, the payload the base64
// encoded JSON of the event data and the external id the contract instance.
func ToOctopusEvent(event eh.Event) (*nutsEventOctopus.Event, error) {
	data, err := json.Marshal(domainEvents.Data(event))
	if err != nil {
		return nil, fmt.Errorf("could not marshal %s: %w", event.EventType(), err)
	}
	return &nutsEventOctopus.Event{
		UUID:       uuid.New().String(),
		Name:       string(event.EventType()),
		ExternalID: event.AggregateID().String(),
		Payload:    base64.StdEncoding.EncodeToString(data),
	}, nil
}
