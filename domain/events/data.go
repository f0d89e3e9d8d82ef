package events

import (
	"reflect"

	eh "github.com/looplab/eventhorizon"
)

// Data returns the payload of event as a value. Stores that copy payloads hand them back
// behind a pointer created by the registered factory.
func Data(event eh.Event) eh.EventData {
	v := reflect.ValueOf(event.Data())
	if v.Kind() == reflect.Ptr && !v.IsNil() {
		return v.Elem().Interface()
	}
	return event.Data()
}
