package client

import (
	"context"
	"strings"
	"sync"

	"github.com/bizchat/bizchat/internal/bizchat/transcript"
)

// Exchanger runs message exchanges as cancellable asynchronous tasks keyed
// by a monotonically increasing submission counter. Nothing prevents a new
// submission while an earlier one is still in flight; when an older exchange
// resolves after a newer one has already been delivered, its reply is stale
// and is discarded instead of rendered out of order.
type Exchanger struct {
	client *Client
	ts     *transcript.Transcript

	// onReply is invoked for every delivered bot entry, after it has been
	// appended to the transcript. May be nil.
	onReply func(transcript.Entry)

	mu        sync.Mutex
	nextSeq   uint64
	delivered uint64
	cancels   map[uint64]context.CancelFunc
	wg        sync.WaitGroup
}

// NewExchanger creates an exchanger appending to the given transcript.
func NewExchanger(c *Client, ts *transcript.Transcript, onReply func(transcript.Entry)) *Exchanger {
	return &Exchanger{
		client:  c,
		ts:      ts,
		onReply: onReply,
		cancels: make(map[uint64]context.CancelFunc),
	}
}

// Submit trims the input and starts an exchange. Empty or whitespace-only
// input is a silent no-op: no transcript entry, no request. Otherwise the
// trimmed user entry is appended before the request is issued, and the
// eventual reply (or the fallback text) is appended when the exchange
// resolves, unless it is stale by then. Reports whether an exchange started.
func (e *Exchanger) Submit(ctx context.Context, text string) bool {
	text = strings.TrimSpace(text)
	if text == "" {
		return false
	}

	e.ts.Append(text, transcript.OriginUser)

	e.mu.Lock()
	e.nextSeq++
	seq := e.nextSeq
	cctx, cancel := context.WithCancel(ctx)
	e.cancels[seq] = cancel
	e.mu.Unlock()

	e.wg.Add(1)
	go func() {
		defer e.wg.Done()
		defer cancel()
		reply := e.client.Reply(cctx, text)
		e.deliver(seq, reply)
	}()
	return true
}

// deliver appends the reply unless a newer submission already resolved.
func (e *Exchanger) deliver(seq uint64, reply string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	delete(e.cancels, seq)
	if seq < e.delivered {
		return
	}
	e.delivered = seq

	entry := e.ts.Append(reply, transcript.OriginBot)
	if e.onReply != nil {
		e.onReply(entry)
	}
}

// Cancel aborts every in-flight exchange. The cancelled exchanges still
// resolve (with the fallback text) unless a newer reply supersedes them.
func (e *Exchanger) Cancel() {
	e.mu.Lock()
	for _, cancel := range e.cancels {
		cancel()
	}
	e.mu.Unlock()
}

// Wait blocks until all in-flight exchanges have resolved.
func (e *Exchanger) Wait() {
	e.wg.Wait()
}
