package dom

// https://dom.spec.whatwg.org/#interface-event
type Event struct {
	Type          string
	Bubbles       bool
	Cancelable    bool
	IsTrusted     bool
	Target        *EventTarget
	CurrentTarget *EventTarget

	defaultPrevented bool
	stopped          bool
}

func NewEvent(eventType string) *Event {
	return &Event{Type: eventType}
}

func (e *Event) PreventDefault() {
	if e.Cancelable {
		e.defaultPrevented = true
	}
}

func (e *Event) DefaultPrevented() bool { return e.defaultPrevented }

func (e *Event) StopImmediatePropagation() { e.stopped = true }

// https://html.spec.whatwg.org/#eventhandler
type EventHandler func(e *Event)

type AddEventListenerOptions struct {
	// Once drops the listener after its first invocation.
	Once bool
	// Passive listeners promise not to cancel; a passive load listener on a
	// frame never holds up unload.
	Passive bool
}

// EventListener identifies one registration; AddEventListener returns it so
// the caller can remove exactly that registration later.
type EventListener struct {
	eventType string
	handler   EventHandler
	opts      AddEventListenerOptions
}

// https://dom.spec.whatwg.org/#interface-eventtarget
type EventTarget struct {
	listeners map[string][]*EventListener
}

func (t *EventTarget) AddEventListener(eventType string, handler EventHandler, opts ...AddEventListenerOptions) *EventListener {
	l := &EventListener{eventType: eventType, handler: handler}
	if len(opts) > 0 {
		l.opts = opts[0]
	}
	if t.listeners == nil {
		t.listeners = map[string][]*EventListener{}
	}
	t.listeners[eventType] = append(t.listeners[eventType], l)
	return l
}

func (t *EventTarget) RemoveEventListener(l *EventListener) {
	if l == nil || t.listeners == nil {
		return
	}
	ls := t.listeners[l.eventType]
	for i := range ls {
		if ls[i] == l {
			t.listeners[l.eventType] = append(ls[:i], ls[i+1:]...)
			return
		}
	}
}

// DispatchEvent runs e's listeners in registration order. Once listeners are
// unregistered before their handler runs, so a handler re-dispatching the
// same event cannot recurse into itself.
func (t *EventTarget) DispatchEvent(e *Event) bool {
	e.Target = t
	if t.listeners == nil {
		return !e.defaultPrevented
	}
	snapshot := append([]*EventListener(nil), t.listeners[e.Type]...)
	for _, l := range snapshot {
		if l.opts.Once {
			t.RemoveEventListener(l)
		}
		e.CurrentTarget = t
		l.handler(e)
		if e.stopped {
			break
		}
	}
	return !e.defaultPrevented
}
