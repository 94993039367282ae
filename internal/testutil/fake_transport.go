package testutil

import (
	"bytes"
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/mqscope/mqscope/internal/core/mqi"
	mqierr "github.com/mqscope/mqscope/internal/core/mqi/errors"
)

// FakeMessage seeds one message on a fake queue.
type FakeMessage struct {
	ID          []byte
	CorrelID    []byte
	Payload     []byte
	Format      string
	MsgType     int32
	Persistence int32
	Priority    int32
	PutTime     time.Time
	PutApplName string
}

type fakeQueue struct {
	attrs    mqi.QueueAttributes
	messages []FakeMessage
	// attrsErr, when set, makes attribute inquiry fail while the name still
	// enumerates.
	attrsErr error
}

type openInfo struct {
	conn   mqi.ConnHandle
	queue  string
	mode   mqi.OpenMode
	cursor int
}

// FakeTransport is an in-memory mqi.Transport for engine tests. One fake
// queue manager namespace is shared by all connections, mirroring how
// concurrent actors observe the same real queues.
type FakeTransport struct {
	mu      sync.Mutex
	queues  map[string]*fakeQueue
	conns   map[mqi.ConnHandle]bool
	open    map[mqi.QueueHandle]*openInfo
	connSeq int
	objSeq  int

	minted     []mqi.ConnHandle
	connectErr error
	listErr    error
	truncateAt int

	// ConnectGate, when non-nil, blocks Connect until the channel is closed.
	// Set it before the first Connect.
	ConnectGate chan struct{}
}

var _ mqi.Transport = (*FakeTransport)(nil)

func NewFakeTransport() *FakeTransport {
	return &FakeTransport{
		queues: make(map[string]*fakeQueue),
		conns:  make(map[mqi.ConnHandle]bool),
		open:   make(map[mqi.QueueHandle]*openInfo),
	}
}

// SeedQueue defines a queue with attributes and initial messages.
func (f *FakeTransport) SeedQueue(attrs mqi.QueueAttributes, msgs ...FakeMessage) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.queues[attrs.Name] = &fakeQueue{attrs: attrs, messages: msgs}
}

// FailInquiry makes the attribute inquiry for queue fail while keeping the
// name enumerable.
func (f *FakeTransport) FailInquiry(queue string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if q, ok := f.queues[queue]; ok {
		q.attrsErr = mqierr.FromReturn("MQINQ", mqi.MQCC_FAILED, mqi.MQRC_UNEXPECTED_ERROR)
	}
}

// FailNextConnect makes the next Connect return err.
func (f *FakeTransport) FailNextConnect(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.connectErr = err
}

// FailList makes queue-name enumeration return err until reset with nil.
func (f *FakeTransport) FailList(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listErr = err
}

// TruncateReadsAt caps the payload bytes a browse or get returns. Longer
// messages come back truncated with the full length still reported, the way
// MQGMO_ACCEPT_TRUNCATED_MSG behaves with a short buffer.
func (f *FakeTransport) TruncateReadsAt(n int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.truncateAt = n
}

// MintedHandles returns every connection handle issued so far, in order.
func (f *FakeTransport) MintedHandles() []mqi.ConnHandle {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]mqi.ConnHandle, len(f.minted))
	copy(out, f.minted)
	return out
}

// QueueMessages returns a copy of the current messages on queue.
func (f *FakeTransport) QueueMessages(queue string) []FakeMessage {
	f.mu.Lock()
	defer f.mu.Unlock()
	q, ok := f.queues[queue]
	if !ok {
		return nil
	}
	out := make([]FakeMessage, len(q.messages))
	copy(out, q.messages)
	return out
}

func (f *FakeTransport) Connect(ctx context.Context, cfg mqi.DialConfig) (mqi.ConnHandle, error) {
	if f.ConnectGate != nil {
		select {
		case <-f.ConnectGate:
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.connectErr != nil {
		err := f.connectErr
		f.connectErr = nil
		return "", err
	}
	f.connSeq++
	h := mqi.ConnHandle(fmt.Sprintf("conn-%d", f.connSeq))
	f.conns[h] = true
	f.minted = append(f.minted, h)
	return h, nil
}

func (f *FakeTransport) Disconnect(ctx context.Context, h mqi.ConnHandle) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.conns[h] {
		return mqierr.New("MQDISC", mqierr.ReasonHandleUnavailable)
	}
	delete(f.conns, h)
	for qh, info := range f.open {
		if info.conn == h {
			delete(f.open, qh)
		}
	}
	return nil
}

func (f *FakeTransport) OpenQueue(ctx context.Context, h mqi.ConnHandle, queue string, mode mqi.OpenMode) (mqi.QueueHandle, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.conns[h] {
		return "", mqierr.New("MQOPEN", mqierr.ReasonHandleUnavailable)
	}
	if _, ok := f.queues[queue]; !ok {
		return "", mqierr.FromReturn("MQOPEN", mqi.MQCC_FAILED, mqi.MQRC_UNKNOWN_OBJECT_NAME)
	}
	f.objSeq++
	qh := mqi.QueueHandle(fmt.Sprintf("obj-%d", f.objSeq))
	f.open[qh] = &openInfo{conn: h, queue: queue, mode: mode}
	return qh, nil
}

func (f *FakeTransport) CloseQueue(ctx context.Context, h mqi.ConnHandle, q mqi.QueueHandle) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	info, ok := f.open[q]
	if !ok || info.conn != h {
		return mqierr.New("MQCLOSE", mqierr.ReasonHandleUnavailable)
	}
	delete(f.open, q)
	return nil
}

func (f *FakeTransport) BrowseFirst(ctx context.Context, h mqi.ConnHandle, q mqi.QueueHandle) (*mqi.GetResult, error) {
	return f.browse(h, q, true)
}

func (f *FakeTransport) BrowseNext(ctx context.Context, h mqi.ConnHandle, q mqi.QueueHandle) (*mqi.GetResult, error) {
	return f.browse(h, q, false)
}

func (f *FakeTransport) browse(h mqi.ConnHandle, q mqi.QueueHandle, first bool) (*mqi.GetResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	info, queue, err := f.openQueue(h, q)
	if err != nil {
		return nil, err
	}
	if first {
		info.cursor = 0
	}
	if info.cursor >= len(queue.messages) {
		return nil, noMessage()
	}
	msg := queue.messages[info.cursor]
	info.cursor++
	return f.result(msg), nil
}

func (f *FakeTransport) Get(ctx context.Context, h mqi.ConnHandle, q mqi.QueueHandle) (*mqi.GetResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, queue, err := f.openQueue(h, q)
	if err != nil {
		return nil, err
	}
	if len(queue.messages) == 0 {
		return nil, noMessage()
	}
	msg := queue.messages[0]
	queue.messages = queue.messages[1:]
	return f.result(msg), nil
}

func (f *FakeTransport) GetByMsgID(ctx context.Context, h mqi.ConnHandle, q mqi.QueueHandle, msgID []byte) (*mqi.GetResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, queue, err := f.openQueue(h, q)
	if err != nil {
		return nil, err
	}
	for i, msg := range queue.messages {
		if bytes.Equal(msg.ID, msgID) {
			queue.messages = append(queue.messages[:i], queue.messages[i+1:]...)
			return f.result(msg), nil
		}
	}
	return nil, noMessage()
}

func (f *FakeTransport) Put(ctx context.Context, h mqi.ConnHandle, q mqi.QueueHandle, desc mqi.PutDescriptor, payload []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, queue, err := f.openQueue(h, q)
	if err != nil {
		return err
	}
	if queue.attrs.InhibitPut {
		return mqierr.FromReturn("MQPUT", mqi.MQCC_FAILED, mqi.MQRC_PUT_INHIBITED)
	}
	f.objSeq++
	id := []byte(fmt.Sprintf("fake-msg-id-%010d", f.objSeq))
	queue.messages = append(queue.messages, FakeMessage{
		ID:          id,
		Payload:     payload,
		Format:      desc.Format,
		MsgType:     desc.MsgType,
		Persistence: desc.Persistence,
		Priority:    desc.Priority,
		PutTime:     time.Now().UTC(),
	})
	queue.attrs.CurrentDepth = int32(len(queue.messages))
	return nil
}

func (f *FakeTransport) InquireQueue(ctx context.Context, h mqi.ConnHandle, queue string) (mqi.QueueAttributes, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.conns[h] {
		return mqi.QueueAttributes{}, mqierr.New("MQINQ", mqierr.ReasonHandleUnavailable)
	}
	q, ok := f.queues[queue]
	if !ok {
		return mqi.QueueAttributes{}, mqierr.FromReturn("MQOPEN", mqi.MQCC_FAILED, mqi.MQRC_UNKNOWN_OBJECT_NAME)
	}
	if q.attrsErr != nil {
		return mqi.QueueAttributes{}, q.attrsErr
	}
	attrs := q.attrs
	attrs.CurrentDepth = int32(len(q.messages))
	return attrs, nil
}

func (f *FakeTransport) ListQueueNames(ctx context.Context, h mqi.ConnHandle) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.conns[h] {
		return nil, mqierr.New("MQGET", mqierr.ReasonHandleUnavailable)
	}
	if f.listErr != nil {
		return nil, f.listErr
	}
	names := make([]string, 0, len(f.queues))
	for name := range f.queues {
		names = append(names, name)
	}
	return names, nil
}

func (f *FakeTransport) CreateQueue(ctx context.Context, h mqi.ConnHandle, queue string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.conns[h] {
		return mqierr.New("MQPUT", mqierr.ReasonHandleUnavailable)
	}
	if _, exists := f.queues[queue]; exists {
		return mqierr.FromReturn("PCF", mqi.MQCC_FAILED, mqi.MQRC_OBJECT_IN_USE)
	}
	f.queues[queue] = &fakeQueue{attrs: mqi.QueueAttributes{Name: queue, Type: mqi.MQQT_LOCAL, MaxDepth: 5000}}
	return nil
}

func (f *FakeTransport) DeleteQueue(ctx context.Context, h mqi.ConnHandle, queue string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.conns[h] {
		return mqierr.New("MQPUT", mqierr.ReasonHandleUnavailable)
	}
	if _, exists := f.queues[queue]; !exists {
		return mqierr.FromReturn("PCF", mqi.MQCC_FAILED, mqi.MQRC_UNKNOWN_OBJECT_NAME)
	}
	delete(f.queues, queue)
	return nil
}

func (f *FakeTransport) openQueue(h mqi.ConnHandle, q mqi.QueueHandle) (*openInfo, *fakeQueue, error) {
	info, ok := f.open[q]
	if !ok || info.conn != h {
		return nil, nil, mqierr.New("MQGET", mqierr.ReasonHandleUnavailable)
	}
	queue, ok := f.queues[info.queue]
	if !ok {
		return nil, nil, mqierr.FromReturn("MQGET", mqi.MQCC_FAILED, mqi.MQRC_UNKNOWN_OBJECT_NAME)
	}
	return info, queue, nil
}

func noMessage() error {
	return mqierr.FromReturn("MQGET", mqi.MQCC_FAILED, mqi.MQRC_NO_MSG_AVAILABLE)
}

// result builds a GetResult for msg, honoring the configured read cap.
// The caller holds f.mu.
func (f *FakeTransport) result(msg FakeMessage) *mqi.GetResult {
	id := make([]byte, len(msg.ID))
	copy(id, msg.ID)
	correl := make([]byte, len(msg.CorrelID))
	copy(correl, msg.CorrelID)
	payload := make([]byte, len(msg.Payload))
	copy(payload, msg.Payload)

	truncated := false
	if f.truncateAt > 0 && len(payload) > f.truncateAt {
		payload = payload[:f.truncateAt]
		truncated = true
	}

	format := msg.Format
	if format == "" {
		format = "MQSTR"
	}
	return &mqi.GetResult{
		Desc: mqi.MessageDescriptor{
			MsgID:       id,
			CorrelID:    correl,
			Format:      format,
			MsgType:     msg.MsgType,
			Persistence: msg.Persistence,
			Priority:    msg.Priority,
			PutTime:     msg.PutTime,
			PutApplName: msg.PutApplName,
		},
		Payload:     payload,
		TotalLength: int32(len(msg.Payload)),
		Truncated:   truncated,
	}
}
