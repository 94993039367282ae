package errors

import (
	"fmt"

	"github.com/mqscope/mqscope/internal/core/mqi"
)

type mqiError struct {
	verb     string
	compCode int32
	reason   int32
	mapped   Reason
}

func (e *mqiError) Error() string {
	return fmt.Sprintf("MQI %s failed: %s (CompCode %d, Reason %d)", e.verb, e.mapped, e.compCode, e.reason)
}

func (e *mqiError) CompCode() int32 {
	return e.compCode
}

func (e *mqiError) ReasonCode() int32 {
	return e.reason
}

func (e *mqiError) Reason() Reason {
	return e.mapped
}

func (e *mqiError) Class() Class {
	return ClassOf(e.mapped)
}

func (e *mqiError) Warning() bool {
	return e.compCode == mqi.MQCC_WARNING
}

// FromReturn maps a raw (completion, reason) pair from an MQI verb to a typed
// error. A nil return means the call fully succeeded.
func FromReturn(verb string, compCode, reasonCode int32) MQIError {
	if compCode == mqi.MQCC_OK {
		return nil
	}
	return &mqiError{
		verb:     verb,
		compCode: compCode,
		reason:   reasonCode,
		mapped:   mapReason(reasonCode),
	}
}

// New builds a typed error without a vendor round trip, for conditions the
// adapter detects itself (e.g. an unusable handle token).
func New(verb string, reason Reason) MQIError {
	return &mqiError{verb: verb, compCode: mqi.MQCC_FAILED, mapped: reason}
}

func mapReason(code int32) Reason {
	switch code {
	case mqi.MQRC_NONE:
		return ReasonNone
	case mqi.MQRC_CONNECTION_BROKEN:
		return ReasonConnectionBroken
	case mqi.MQRC_NOT_AUTHORIZED:
		return ReasonNotAuthorized
	case mqi.MQRC_Q_MGR_NOT_AVAILABLE, mqi.MQRC_UNKNOWN_Q_MGR:
		return ReasonQueueManagerUnavailable
	case mqi.MQRC_HOST_NOT_AVAILABLE:
		return ReasonHostUnavailable
	case mqi.MQRC_CHANNEL_NOT_AVAILABLE, mqi.MQRC_UNKNOWN_CHANNEL_NAME:
		return ReasonChannelUnavailable
	case mqi.MQRC_UNKNOWN_OBJECT_NAME:
		return ReasonUnknownObject
	case mqi.MQRC_OBJECT_IN_USE:
		return ReasonObjectInUse
	case mqi.MQRC_OBJECT_CHANGED:
		return ReasonObjectDamaged
	case mqi.MQRC_Q_FULL:
		return ReasonQueueFull
	case mqi.MQRC_PUT_INHIBITED:
		return ReasonPutInhibited
	case mqi.MQRC_GET_INHIBITED:
		return ReasonGetInhibited
	case mqi.MQRC_NO_MSG_AVAILABLE:
		return ReasonNoMessageAvailable
	case mqi.MQRC_TRUNCATED_MSG_ACCEPTED, mqi.MQRC_TRUNCATED_MSG_FAILED:
		return ReasonTruncatedMessage
	case mqi.MQRC_MSG_TOO_BIG_FOR_Q:
		return ReasonMessageTooBig
	case mqi.MQRC_OPTIONS_ERROR:
		return ReasonOptionsError
	case mqi.MQRC_BUFFER_LENGTH_ERROR:
		return ReasonBufferLengthError
	case mqi.MQRC_HCONN_ERROR, mqi.MQRC_HOBJ_ERROR:
		return ReasonHandleUnavailable
	default:
		return ReasonUnknown
	}
}

// IsReason reports whether err is a typed MQI error carrying the given reason.
func IsReason(err error, r Reason) bool {
	me, ok := err.(MQIError)
	return ok && me.Reason() == r
}
