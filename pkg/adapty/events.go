package adapty

import (
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/adaptyteam/AdaptySDK-React-Native-sub002/pkg/adapty/codec"
)

// EventLatestProfileLoad fires whenever the native layer refreshes the
// profile in the background.
const EventLatestProfileLoad = "did_load_latest_profile"

// ProfileHandler receives profiles pushed by the native layer.
type ProfileHandler func(codec.Profile)

// Emitter decodes native event payloads and fans them out to registered
// handlers. The embedding application feeds it the raw event strings the
// native layer emits.
type Emitter struct {
	lggr *zap.Logger

	mu       sync.RWMutex
	handlers []ProfileHandler
}

func NewEmitter(lggr *zap.Logger) *Emitter {
	if lggr == nil {
		lggr = zap.NewNop()
	}
	return &Emitter{lggr: lggr}
}

// OnLatestProfileLoad registers a handler for background profile refreshes.
func (e *Emitter) OnLatestProfileLoad(h ProfileHandler) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.handlers = append(e.handlers, h)
}

// eventEnvelope is the wire shape of a native event: an event id plus the
// flat profile payload.
type eventEnvelope struct {
	ID      string
	Profile codec.Wire
}

var eventCoder = codec.NewCoder[eventEnvelope]("AdaptyEvent",
	codec.String("id", "id", codec.Required,
		codec.BindValue(func(m *eventEnvelope) *string { return &m.ID })),
	codec.Object("profile", "profile", codec.Optional,
		codec.BindMap(func(m *eventEnvelope) *codec.Wire { return &m.Profile })),
)

// HandleEvent decodes one raw event payload and dispatches it. Unknown event
// ids are logged and dropped: the native layer may emit events this version
// does not know yet.
func (e *Emitter) HandleEvent(payload string) error {
	env, err := eventCoder.DecodeJSON([]byte(payload))
	if err != nil {
		return err
	}

	switch env.ID {
	case EventLatestProfileLoad:
		if env.Profile == nil {
			return fmt.Errorf("%w: event %q without profile", codec.ErrMalformedEnvelope, env.ID)
		}
		profile, err := codec.ProfileCoder.Decode(env.Profile)
		if err != nil {
			return err
		}
		e.mu.RLock()
		handlers := make([]ProfileHandler, len(e.handlers))
		copy(handlers, e.handlers)
		e.mu.RUnlock()
		for _, h := range handlers {
			h(profile)
		}
		return nil
	default:
		e.lggr.Debug("dropping unknown native event", zap.String("event_id", env.ID))
		return nil
	}
}
