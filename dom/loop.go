package dom

// EventLoop is the single cooperative queue all document work runs on.
// There is no locking anywhere in the model: the loop serializes DOM access
// the way a UI thread does. After every task the loop performs a microtask
// checkpoint, which is where queued mutation batches reach their observers.
// https://html.spec.whatwg.org/#event-loop
type EventLoop struct {
	tasks    []func()
	notify   []*MutationObserver
	spinning bool
}

func NewEventLoop() *EventLoop {
	return &EventLoop{}
}

// QueueTask schedules fn to run on the loop.
func (l *EventLoop) QueueTask(fn func()) {
	l.tasks = append(l.tasks, fn)
}

// Spin runs the loop until both the task queue and the pending observer
// notifications are drained. Re-entrant Spin calls during a task are no-ops;
// the outer Spin picks up whatever was queued.
func (l *EventLoop) Spin() {
	if l.spinning {
		return
	}
	l.spinning = true
	defer func() { l.spinning = false }()

	for len(l.tasks) > 0 || len(l.notify) > 0 {
		if len(l.tasks) > 0 {
			task := l.tasks[0]
			l.tasks = l.tasks[1:]
			task()
		}
		l.checkpoint()
	}
}

func (l *EventLoop) enqueueObserver(o *MutationObserver) {
	for _, queued := range l.notify {
		if queued == o {
			return
		}
	}
	l.notify = append(l.notify, o)
}

// checkpoint delivers every pending observer's queued records as one batch.
func (l *EventLoop) checkpoint() {
	for len(l.notify) > 0 {
		o := l.notify[0]
		l.notify = l.notify[1:]
		records := o.TakeRecords()
		if len(records) == 0 {
			continue
		}
		o.callback(records, o)
	}
}
