package dom

// MutationCallback receives one coalesced batch of records.
type MutationCallback func(records []*MutationRecord, observer *MutationObserver)

type MutationObserverInit struct {
	ChildList  bool
	Subtree    bool
	Attributes bool
}

// https://dom.spec.whatwg.org/#interface-mutationrecord
type MutationRecord struct {
	Type                         string
	Target                       *Node
	AddedNodes, RemovedNodes     NodeList
	PreviousSibling, NextSibling *Node
	AttributeName                string
}

type registeredObserver struct {
	observer *MutationObserver
	options  MutationObserverInit
}

// https://dom.spec.whatwg.org/#interface-mutationobserver
type MutationObserver struct {
	callback MutationCallback
	loop     *EventLoop
	queue    []*MutationRecord
	targets  NodeList
}

func NewMutationObserver(callback MutationCallback) *MutationObserver {
	return &MutationObserver{callback: callback}
}

// Observe registers the observer on target. Observing a target twice
// replaces the earlier options. The observer latches onto the target
// document's event loop for delivery.
func (m *MutationObserver) Observe(target *Node, options MutationObserverInit) {
	for _, reg := range target.registeredObservers {
		if reg.observer == m {
			reg.options = options
			return
		}
	}
	target.registeredObservers = append(target.registeredObservers, &registeredObserver{
		observer: m,
		options:  options,
	})
	m.targets = append(m.targets, target)
	if m.loop == nil {
		if d := target.ownerDocumentNode(); d != nil && d.Document != nil {
			m.loop = d.Document.Loop
		}
	}
}

// Disconnect unregisters the observer everywhere and drops pending records.
func (m *MutationObserver) Disconnect() {
	for _, target := range m.targets {
		regs := target.registeredObservers[:0]
		for _, reg := range target.registeredObservers {
			if reg.observer != m {
				regs = append(regs, reg)
			}
		}
		target.registeredObservers = regs
	}
	m.targets = nil
	m.queue = nil
}

// TakeRecords empties and returns the pending queue.
func (m *MutationObserver) TakeRecords() []*MutationRecord {
	records := m.queue
	m.queue = nil
	return records
}

func (m *MutationObserver) append(record *MutationRecord) {
	m.queue = append(m.queue, record)
	if m.loop != nil {
		m.loop.enqueueObserver(m)
	}
}

func queueTreeMutation(target *Node, added, removed NodeList, prev, next *Node) {
	notifyObservers(target, func(o MutationObserverInit) bool { return o.ChildList }, func() *MutationRecord {
		return &MutationRecord{
			Type:            "childList",
			Target:          target,
			AddedNodes:      added,
			RemovedNodes:    removed,
			PreviousSibling: prev,
			NextSibling:     next,
		}
	})
}

func queueAttributeMutation(target *Node, name string) {
	if target == nil {
		return
	}
	notifyObservers(target, func(o MutationObserverInit) bool { return o.Attributes }, func() *MutationRecord {
		return &MutationRecord{
			Type:          "attributes",
			Target:        target,
			AttributeName: name,
		}
	})
}

// notifyObservers walks target's ancestor chain queueing a record on every
// interested observer, once per observer no matter how many registrations
// match. Ancestor registrations only count when they asked for Subtree.
// https://dom.spec.whatwg.org/#queueing-a-mutation-record
func notifyObservers(target *Node, wants func(MutationObserverInit) bool, record func() *MutationRecord) {
	var seen []*MutationObserver
	for a := target; a != nil; a = a.ParentNode {
		for _, reg := range a.registeredObservers {
			if a != target && !reg.options.Subtree {
				continue
			}
			if !wants(reg.options) {
				continue
			}
			already := false
			for _, s := range seen {
				if s == reg.observer {
					already = true
					break
				}
			}
			if already {
				continue
			}
			seen = append(seen, reg.observer)
			reg.observer.append(record())
		}
	}
}
