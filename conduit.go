// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package coro

import (
	"code.hybscloud.com/lfq"
)

// queueCapacity is the bounded capacity for conduit transport queues.
// 4 balances amortizing producer-side cached-index refresh cost while
// keeping ring buffers within a single cache line.
const queueCapacity = 4

// Endpoint is one side of a conduit pair: it sends S values to the peer
// and receives R values from it. Each direction is a single-producer
// single-consumer bounded lock-free queue, so an endpoint must be used
// from one goroutine at a time.
type Endpoint[S, R any] struct {
	sendQ    *lfq.SPSC[S]
	recvQ    *lfq.SPSC[R]
	sendSlot S
	serial   Serial
}

// Send enqueues v for the peer.
// Non-blocking: returns iox.ErrWouldBlock when the queue is full.
func (ep *Endpoint[S, R]) Send(v S) error {
	ep.sendSlot = v
	return ep.sendQ.Enqueue(&ep.sendSlot)
}

// Recv dequeues the next value from the peer.
// Non-blocking: returns iox.ErrWouldBlock when the queue is empty.
func (ep *Endpoint[S, R]) Recv() (R, error) {
	return ep.recvQ.Dequeue()
}

// Serial returns the serial number assigned to this endpoint's conduit.
func (ep *Endpoint[S, R]) Serial() Serial {
	return ep.serial
}

// conduitPair holds both endpoints and their ring queues in a single
// allocation; only the ring buffers are separate heap objects.
type conduitPair[I, O any] struct {
	driver  Endpoint[I, O]
	host    Endpoint[O, I]
	dataIn  lfq.SPSC[I]
	dataOut lfq.SPSC[O]
}

// NewConduit creates a connected endpoint pair for driving a
// Coroutine[I, O, R] from another goroutine: the driver endpoint sends
// inputs and receives outputs, the host endpoint is handed to [Pump],
// [Exec], or a hand-rolled loop next to the coroutine.
//
// Transport operations are non-blocking: Send and Recv return
// iox.ErrWouldBlock when the peer has not yet consumed or produced.
func NewConduit[I, O any]() (driver *Endpoint[I, O], host *Endpoint[O, I]) {
	s := nextSerial()

	pair := &conduitPair[I, O]{}
	pair.dataIn.Init(queueCapacity)
	pair.dataOut.Init(queueCapacity)

	pair.driver = Endpoint[I, O]{
		sendQ:  &pair.dataIn,
		recvQ:  &pair.dataOut,
		serial: s,
	}
	pair.host = Endpoint[O, I]{
		sendQ:  &pair.dataOut,
		recvQ:  &pair.dataIn,
		serial: s,
	}
	return &pair.driver, &pair.host
}
