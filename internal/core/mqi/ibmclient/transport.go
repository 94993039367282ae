package ibmclient

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	ibmmq "github.com/ibm-messaging/mq-golang/v5/ibmmq"
	"github.com/rs/zerolog/log"

	"github.com/mqscope/mqscope/internal/core/mqi"
	mqierr "github.com/mqscope/mqscope/internal/core/mqi/errors"
)

const (
	// getBufferSize bounds one browse/get round trip. Larger messages are
	// returned truncated with the real length reported.
	getBufferSize = 1024 * 1024

	commandQueue    = "SYSTEM.ADMIN.COMMAND.QUEUE"
	replyModelQueue = "SYSTEM.DEFAULT.MODEL.QUEUE"
	pcfWaitMillis   = 5000
)

type queueEntry struct {
	name string
	obj  ibmmq.MQObject
}

type connEntry struct {
	qmgr   ibmmq.MQQueueManager
	queues map[mqi.QueueHandle]*queueEntry
}

// Transport is the production mqi.Transport backed by the IBM MQ client
// library. Handle tokens map to live MQHCONN/MQHOBJ values held here and
// nowhere else.
type Transport struct {
	mu    sync.Mutex
	conns map[mqi.ConnHandle]*connEntry
}

var _ mqi.Transport = (*Transport)(nil)

func NewTransport() *Transport {
	return &Transport{conns: make(map[mqi.ConnHandle]*connEntry)}
}

func (t *Transport) Connect(ctx context.Context, cfg mqi.DialConfig) (mqi.ConnHandle, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	cno := ibmmq.NewMQCNO()
	cno.Options = ibmmq.MQCNO_CLIENT_BINDING

	cd := ibmmq.NewMQCD()
	cd.ChannelName = cfg.Channel
	cd.ConnectionName = fmt.Sprintf("%s(%d)", cfg.Host, cfg.Port)
	cno.ClientConn = cd

	if cfg.User != "" {
		csp := ibmmq.NewMQCSP()
		csp.AuthenticationType = ibmmq.MQCSP_AUTH_USER_ID_AND_PWD
		csp.UserId = cfg.User
		csp.Password = cfg.Password
		cno.SecurityParms = csp
	}

	qmgr, err := ibmmq.Connx(cfg.QueueManager, cno)
	if err != nil {
		return "", mapReturn("MQCONNX", err)
	}

	h := mqi.ConnHandle(uuid.New().String())
	t.mu.Lock()
	t.conns[h] = &connEntry{qmgr: qmgr, queues: make(map[mqi.QueueHandle]*queueEntry)}
	t.mu.Unlock()

	log.Debug().Str("queue_manager", cfg.QueueManager).Str("conn_name", cd.ConnectionName).Msg("Connected to queue manager")
	return h, nil
}

func (t *Transport) Disconnect(ctx context.Context, h mqi.ConnHandle) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	t.mu.Lock()
	entry, ok := t.conns[h]
	delete(t.conns, h)
	t.mu.Unlock()
	if !ok {
		return mqierr.New("MQDISC", mqierr.ReasonHandleUnavailable)
	}

	// Any still-open object handles go with the connection; MQDISC closes
	// them server side, so local bookkeeping is enough here.
	if err := entry.qmgr.Disc(); err != nil {
		return mapReturn("MQDISC", err)
	}
	return nil
}

func (t *Transport) OpenQueue(ctx context.Context, h mqi.ConnHandle, queue string, mode mqi.OpenMode) (mqi.QueueHandle, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	entry, err := t.conn(h, "MQOPEN")
	if err != nil {
		return "", err
	}

	od := ibmmq.NewMQOD()
	od.ObjectType = ibmmq.MQOT_Q
	od.ObjectName = queue

	options := ibmmq.MQOO_FAIL_IF_QUIESCING
	switch mode {
	case mqi.OpenBrowse:
		options |= ibmmq.MQOO_BROWSE
	case mqi.OpenInput:
		options |= ibmmq.MQOO_INPUT_SHARED
	case mqi.OpenOutput:
		options |= ibmmq.MQOO_OUTPUT
	case mqi.OpenInquire:
		options |= ibmmq.MQOO_INQUIRE
	}

	obj, err := entry.qmgr.Open(od, options)
	if err != nil {
		return "", mapReturn("MQOPEN", err)
	}

	q := mqi.QueueHandle(uuid.New().String())
	t.mu.Lock()
	entry.queues[q] = &queueEntry{name: queue, obj: obj}
	t.mu.Unlock()
	return q, nil
}

func (t *Transport) CloseQueue(ctx context.Context, h mqi.ConnHandle, q mqi.QueueHandle) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	entry, err := t.conn(h, "MQCLOSE")
	if err != nil {
		return err
	}
	t.mu.Lock()
	qe, ok := entry.queues[q]
	delete(entry.queues, q)
	t.mu.Unlock()
	if !ok {
		return mqierr.New("MQCLOSE", mqierr.ReasonHandleUnavailable)
	}
	if err := qe.obj.Close(0); err != nil {
		return mapReturn("MQCLOSE", err)
	}
	return nil
}

func (t *Transport) BrowseFirst(ctx context.Context, h mqi.ConnHandle, q mqi.QueueHandle) (*mqi.GetResult, error) {
	return t.get(ctx, h, q, ibmmq.MQGMO_BROWSE_FIRST, nil)
}

func (t *Transport) BrowseNext(ctx context.Context, h mqi.ConnHandle, q mqi.QueueHandle) (*mqi.GetResult, error) {
	return t.get(ctx, h, q, ibmmq.MQGMO_BROWSE_NEXT, nil)
}

func (t *Transport) Get(ctx context.Context, h mqi.ConnHandle, q mqi.QueueHandle) (*mqi.GetResult, error) {
	return t.get(ctx, h, q, 0, nil)
}

func (t *Transport) GetByMsgID(ctx context.Context, h mqi.ConnHandle, q mqi.QueueHandle, msgID []byte) (*mqi.GetResult, error) {
	return t.get(ctx, h, q, 0, msgID)
}

func (t *Transport) get(ctx context.Context, h mqi.ConnHandle, q mqi.QueueHandle, browseOpt int32, msgID []byte) (*mqi.GetResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	qe, err := t.queue(h, q, "MQGET")
	if err != nil {
		return nil, err
	}

	md := ibmmq.NewMQMD()
	gmo := ibmmq.NewMQGMO()
	gmo.Options = ibmmq.MQGMO_NO_WAIT | ibmmq.MQGMO_FAIL_IF_QUIESCING |
		ibmmq.MQGMO_ACCEPT_TRUNCATED_MSG | browseOpt
	if msgID != nil {
		gmo.MatchOptions = ibmmq.MQMO_MATCH_MSG_ID
		copy(md.MsgId, msgID)
	}

	buffer := make([]byte, getBufferSize)
	datalen, err := qe.obj.Get(md, gmo, buffer)
	truncated := false
	if err != nil {
		mqret, ok := err.(*ibmmq.MQReturn)
		if ok && mqret.MQCC == ibmmq.MQCC_WARNING && mqret.MQRC == ibmmq.MQRC_TRUNCATED_MSG_ACCEPTED {
			truncated = true
		} else {
			return nil, mapReturn("MQGET", err)
		}
	}

	copied := datalen
	if copied > len(buffer) {
		copied = len(buffer)
	}
	payload := make([]byte, copied)
	copy(payload, buffer[:copied])

	return &mqi.GetResult{
		Desc:        descriptorFromMQMD(md),
		Payload:     payload,
		TotalLength: int32(datalen),
		Truncated:   truncated,
	}, nil
}

func (t *Transport) Put(ctx context.Context, h mqi.ConnHandle, q mqi.QueueHandle, desc mqi.PutDescriptor, payload []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	qe, err := t.queue(h, q, "MQPUT")
	if err != nil {
		return err
	}

	md := ibmmq.NewMQMD()
	md.Format = desc.Format
	md.MsgType = desc.MsgType
	md.Persistence = desc.Persistence
	md.Priority = desc.Priority
	md.ReplyToQ = desc.ReplyToQ
	if desc.CorrelID != nil {
		copy(md.CorrelId, desc.CorrelID)
	}

	pmo := ibmmq.NewMQPMO()
	pmo.Options = ibmmq.MQPMO_NEW_MSG_ID | ibmmq.MQPMO_NO_SYNCPOINT | ibmmq.MQPMO_FAIL_IF_QUIESCING

	if err := qe.obj.Put(md, pmo, payload); err != nil {
		return mapReturn("MQPUT", err)
	}
	return nil
}

func (t *Transport) InquireQueue(ctx context.Context, h mqi.ConnHandle, queue string) (mqi.QueueAttributes, error) {
	attrs := mqi.QueueAttributes{Name: queue}
	if err := ctx.Err(); err != nil {
		return attrs, err
	}
	entry, err := t.conn(h, "MQINQ")
	if err != nil {
		return attrs, err
	}

	od := ibmmq.NewMQOD()
	od.ObjectType = ibmmq.MQOT_Q
	od.ObjectName = queue

	obj, err := entry.qmgr.Open(od, ibmmq.MQOO_INQUIRE|ibmmq.MQOO_FAIL_IF_QUIESCING)
	if err != nil {
		return attrs, mapReturn("MQOPEN", err)
	}
	defer obj.Close(0)

	selectors := []int32{
		ibmmq.MQIA_Q_TYPE,
		ibmmq.MQIA_CURRENT_Q_DEPTH,
		ibmmq.MQIA_MAX_Q_DEPTH,
		ibmmq.MQIA_INHIBIT_GET,
		ibmmq.MQIA_INHIBIT_PUT,
	}
	values, err := obj.Inq(selectors)
	if err != nil {
		return attrs, mapReturn("MQINQ", err)
	}

	if v, ok := values[ibmmq.MQIA_Q_TYPE].(int32); ok {
		attrs.Type = v
	}
	if v, ok := values[ibmmq.MQIA_CURRENT_Q_DEPTH].(int32); ok {
		attrs.CurrentDepth = v
	}
	if v, ok := values[ibmmq.MQIA_MAX_Q_DEPTH].(int32); ok {
		attrs.MaxDepth = v
	}
	if v, ok := values[ibmmq.MQIA_INHIBIT_GET].(int32); ok {
		attrs.InhibitGet = v == ibmmq.MQQA_GET_INHIBITED
	}
	if v, ok := values[ibmmq.MQIA_INHIBIT_PUT].(int32); ok {
		attrs.InhibitPut = v == ibmmq.MQQA_PUT_INHIBITED
	}
	return attrs, nil
}

func (t *Transport) ListQueueNames(ctx context.Context, h mqi.ConnHandle) ([]string, error) {
	cfh := ibmmq.NewMQCFH()
	cfh.Command = ibmmq.MQCMD_INQUIRE_Q_NAMES
	cfh.ParameterCount = 2

	buf := cfh.Bytes()

	nameParm := new(ibmmq.PCFParameter)
	nameParm.Type = ibmmq.MQCFT_STRING
	nameParm.Parameter = ibmmq.MQCA_Q_NAME
	nameParm.String = []string{"*"}
	buf = append(buf, nameParm.Bytes()...)

	typeParm := new(ibmmq.PCFParameter)
	typeParm.Type = ibmmq.MQCFT_INTEGER
	typeParm.Parameter = ibmmq.MQIA_Q_TYPE
	typeParm.Int64Value = []int64{int64(ibmmq.MQQT_ALL)}
	buf = append(buf, typeParm.Bytes()...)

	responses, err := t.pcfCommand(ctx, h, buf)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, parm := range responses {
		if parm.Parameter == ibmmq.MQCACF_Q_NAMES {
			for _, s := range parm.String {
				if n := strings.TrimSpace(s); n != "" {
					names = append(names, n)
				}
			}
		}
	}
	return names, nil
}

func (t *Transport) CreateQueue(ctx context.Context, h mqi.ConnHandle, queue string) error {
	cfh := ibmmq.NewMQCFH()
	cfh.Command = ibmmq.MQCMD_CREATE_Q
	cfh.ParameterCount = 2

	buf := cfh.Bytes()

	nameParm := new(ibmmq.PCFParameter)
	nameParm.Type = ibmmq.MQCFT_STRING
	nameParm.Parameter = ibmmq.MQCA_Q_NAME
	nameParm.String = []string{queue}
	buf = append(buf, nameParm.Bytes()...)

	typeParm := new(ibmmq.PCFParameter)
	typeParm.Type = ibmmq.MQCFT_INTEGER
	typeParm.Parameter = ibmmq.MQIA_Q_TYPE
	typeParm.Int64Value = []int64{int64(ibmmq.MQQT_LOCAL)}
	buf = append(buf, typeParm.Bytes()...)

	_, err := t.pcfCommand(ctx, h, buf)
	return err
}

func (t *Transport) DeleteQueue(ctx context.Context, h mqi.ConnHandle, queue string) error {
	cfh := ibmmq.NewMQCFH()
	cfh.Command = ibmmq.MQCMD_DELETE_Q
	cfh.ParameterCount = 1

	buf := cfh.Bytes()

	nameParm := new(ibmmq.PCFParameter)
	nameParm.Type = ibmmq.MQCFT_STRING
	nameParm.Parameter = ibmmq.MQCA_Q_NAME
	nameParm.String = []string{queue}
	buf = append(buf, nameParm.Bytes()...)

	_, err := t.pcfCommand(ctx, h, buf)
	return err
}

// pcfCommand sends one PCF command to the command server via a temporary
// dynamic reply queue and collects the reply parameters across however many
// response messages the command server splits them into.
func (t *Transport) pcfCommand(ctx context.Context, h mqi.ConnHandle, cmd []byte) ([]*ibmmq.PCFParameter, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	entry, err := t.conn(h, "MQPUT")
	if err != nil {
		return nil, err
	}

	odReply := ibmmq.NewMQOD()
	odReply.ObjectType = ibmmq.MQOT_Q
	odReply.ObjectName = replyModelQueue
	odReply.DynamicQName = "MQSCOPE.REPLY.*"

	replyObj, err2 := entry.qmgr.Open(odReply, ibmmq.MQOO_INPUT_EXCLUSIVE|ibmmq.MQOO_FAIL_IF_QUIESCING)
	if err2 != nil {
		return nil, mapReturn("MQOPEN", err2)
	}
	defer replyObj.Close(0)
	replyName := odReply.ObjectName

	odCmd := ibmmq.NewMQOD()
	odCmd.ObjectType = ibmmq.MQOT_Q
	odCmd.ObjectName = commandQueue

	cmdObj, err2 := entry.qmgr.Open(odCmd, ibmmq.MQOO_OUTPUT|ibmmq.MQOO_FAIL_IF_QUIESCING)
	if err2 != nil {
		return nil, mapReturn("MQOPEN", err2)
	}
	defer cmdObj.Close(0)

	md := ibmmq.NewMQMD()
	md.Format = ibmmq.MQFMT_ADMIN
	md.MsgType = ibmmq.MQMT_REQUEST
	md.ReplyToQ = replyName

	pmo := ibmmq.NewMQPMO()
	pmo.Options = ibmmq.MQPMO_NEW_MSG_ID | ibmmq.MQPMO_NO_SYNCPOINT

	if err2 := cmdObj.Put(md, pmo, cmd); err2 != nil {
		return nil, mapReturn("MQPUT", err2)
	}

	var parms []*ibmmq.PCFParameter
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		mdResp := ibmmq.NewMQMD()
		gmo := ibmmq.NewMQGMO()
		gmo.Options = ibmmq.MQGMO_WAIT | ibmmq.MQGMO_CONVERT | ibmmq.MQGMO_FAIL_IF_QUIESCING
		gmo.WaitInterval = pcfWaitMillis

		buffer := make([]byte, getBufferSize)
		datalen, err2 := replyObj.Get(mdResp, gmo, buffer)
		if err2 != nil {
			return nil, mapReturn("MQGET", err2)
		}

		cfh, offset := ibmmq.ReadPCFHeader(buffer[:datalen])
		if cfh == nil {
			return nil, mqierr.New("MQGET", mqierr.ReasonUnknown)
		}
		if cfh.CompCode == ibmmq.MQCC_FAILED {
			return nil, mqierr.FromReturn("PCF", int32(cfh.CompCode), int32(cfh.Reason))
		}
		data := buffer[offset:datalen]
		for len(data) > 0 {
			parm, bytesRead := ibmmq.ReadPCFParameter(data)
			if parm == nil || bytesRead == 0 {
				break
			}
			parms = append(parms, parm)
			data = data[bytesRead:]
		}
		if cfh.Control == ibmmq.MQCFC_LAST {
			break
		}
	}
	return parms, nil
}

func (t *Transport) conn(h mqi.ConnHandle, verb string) (*connEntry, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	entry, ok := t.conns[h]
	if !ok {
		return nil, mqierr.New(verb, mqierr.ReasonHandleUnavailable)
	}
	return entry, nil
}

func (t *Transport) queue(h mqi.ConnHandle, q mqi.QueueHandle, verb string) (*queueEntry, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	entry, ok := t.conns[h]
	if !ok {
		return nil, mqierr.New(verb, mqierr.ReasonHandleUnavailable)
	}
	qe, ok := entry.queues[q]
	if !ok {
		return nil, mqierr.New(verb, mqierr.ReasonHandleUnavailable)
	}
	return qe, nil
}

func descriptorFromMQMD(md *ibmmq.MQMD) mqi.MessageDescriptor {
	msgID := make([]byte, len(md.MsgId))
	copy(msgID, md.MsgId)
	correlID := make([]byte, len(md.CorrelId))
	copy(correlID, md.CorrelId)

	return mqi.MessageDescriptor{
		MsgID:        msgID,
		CorrelID:     correlID,
		Format:       strings.TrimSpace(md.Format),
		MsgType:      md.MsgType,
		Persistence:  md.Persistence,
		Priority:     md.Priority,
		PutTime:      parsePutTimestamp(md.PutDate, md.PutTime),
		PutApplName:  strings.TrimSpace(md.PutApplName),
		ReplyToQ:     strings.TrimSpace(md.ReplyToQ),
		ReplyToQMgr:  strings.TrimSpace(md.ReplyToQMgr),
		MsgSeqNumber: md.MsgSeqNumber,
	}
}

// parsePutTimestamp converts the MQMD put date/time pair (YYYYMMDD and
// HHMMSSTH, UTC) into a time.Time. A zero time is returned when the fields
// are absent or malformed.
func parsePutTimestamp(putDate, putTime string) time.Time {
	if len(putDate) < 8 || len(putTime) < 6 {
		return time.Time{}
	}
	stamp := fmt.Sprintf("%s-%s-%sT%s:%s:%sZ",
		putDate[0:4], putDate[4:6], putDate[6:8],
		putTime[0:2], putTime[2:4], putTime[4:6])
	ts, err := time.Parse("2006-01-02T15:04:05Z", stamp)
	if err != nil {
		return time.Time{}
	}
	return ts
}

func mapReturn(verb string, err error) error {
	mqret, ok := err.(*ibmmq.MQReturn)
	if !ok {
		return mqierr.New(verb, mqierr.ReasonUnknown)
	}
	return mqierr.FromReturn(verb, int32(mqret.MQCC), int32(mqret.MQRC))
}
