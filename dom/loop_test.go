package dom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoopRunsTasksInOrder(t *testing.T) {
	loop := NewEventLoop()
	var order []int
	loop.QueueTask(func() { order = append(order, 1) })
	loop.QueueTask(func() { order = append(order, 2) })
	loop.Spin()
	assert.Equal(t, []int{1, 2}, order)
}

func TestLoopTaskMayQueueMoreWork(t *testing.T) {
	loop := NewEventLoop()
	var order []int
	loop.QueueTask(func() {
		order = append(order, 1)
		loop.QueueTask(func() { order = append(order, 2) })
	})
	loop.Spin()
	assert.Equal(t, []int{1, 2}, order)
}

func TestLoopReentrantSpin(t *testing.T) {
	loop := NewEventLoop()
	ran := false
	loop.QueueTask(func() {
		// spinning from inside a task must not recurse
		loop.Spin()
		ran = true
	})
	loop.Spin()
	assert.True(t, ran)
}

func TestMutationsDeliveredBetweenTasks(t *testing.T) {
	doc := newBlankDocument(NewEventLoop())
	loop := doc.Node.Document.Loop

	var order []string
	o := NewMutationObserver(func([]*MutationRecord, *MutationObserver) {
		order = append(order, "batch")
	})
	o.Observe(doc.Body, MutationObserverInit{ChildList: true, Subtree: true})

	loop.QueueTask(func() {
		order = append(order, "mutate")
		doc.Body.AppendChild(NewDOMElement(doc.Node, "div", Htmlns))
	})
	loop.QueueTask(func() { order = append(order, "next task") })
	loop.Spin()

	assert.Equal(t, []string{"mutate", "batch", "next task"}, order)
}
