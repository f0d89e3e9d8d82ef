package logger

import (
	"context"

	eh "github.com/looplab/eventhorizon"
	"github.com/sirupsen/logrus"
)

func Logger() *logrus.Entry {
	return logrus.StandardLogger().WithField("module", "docuvault")
}

// EventLogger observes every contract event on the event bus.
type EventLogger struct{}

func (e EventLogger) HandlerType() eh.EventHandlerType {
	return eh.EventHandlerType("EventLogger")
}

func (e EventLogger) HandleEvent(ctx context.Context, event eh.Event) error {
	Logger().WithFields(logrus.Fields{
		"aggregate": event.AggregateType(),
		"version":   event.Version(),
	}).Debugf("[EventLogger] %s: %+v", event.EventType(), event.Data())
	return nil
}

// CommandLogger is command handler middleware that logs every transaction before it is handled.
func (e EventLogger) CommandLogger(h eh.CommandHandler) eh.CommandHandler {
	return eh.CommandHandlerFunc(func(ctx context.Context, command eh.Command) error {
		Logger().Debugf("CMD %s %+v", command.CommandType(), command)
		err := h.HandleCommand(ctx, command)
		if err != nil {
			Logger().WithError(err).Debugf("CMD %s reverted", command.CommandType())
		}
		return err
	})
}
