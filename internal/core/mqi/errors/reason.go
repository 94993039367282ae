package errors

// Reason is the closed engine-facing reason set. Vendor codes outside the
// mapping table degrade to ReasonUnknown instead of breaking a match.
type Reason int

const (
	ReasonNone Reason = iota
	ReasonConnectionBroken
	ReasonNotAuthorized
	ReasonQueueManagerUnavailable
	ReasonHostUnavailable
	ReasonChannelUnavailable
	ReasonUnknownObject
	ReasonObjectInUse
	ReasonObjectDamaged
	ReasonQueueFull
	ReasonPutInhibited
	ReasonGetInhibited
	ReasonNoMessageAvailable
	ReasonTruncatedMessage
	ReasonMessageTooBig
	ReasonOptionsError
	ReasonBufferLengthError
	ReasonHandleUnavailable
	ReasonUnknown
)

func (r Reason) String() string {
	switch r {
	case ReasonNone:
		return "none"
	case ReasonConnectionBroken:
		return "connection broken"
	case ReasonNotAuthorized:
		return "not authorized"
	case ReasonQueueManagerUnavailable:
		return "queue manager not available"
	case ReasonHostUnavailable:
		return "host not available"
	case ReasonChannelUnavailable:
		return "channel not available"
	case ReasonUnknownObject:
		return "unknown object name"
	case ReasonObjectInUse:
		return "object in use"
	case ReasonObjectDamaged:
		return "object damaged"
	case ReasonQueueFull:
		return "queue full"
	case ReasonPutInhibited:
		return "put inhibited"
	case ReasonGetInhibited:
		return "get inhibited"
	case ReasonNoMessageAvailable:
		return "no message available"
	case ReasonTruncatedMessage:
		return "message truncated"
	case ReasonMessageTooBig:
		return "message too big for queue"
	case ReasonOptionsError:
		return "options error"
	case ReasonBufferLengthError:
		return "buffer length error"
	case ReasonHandleUnavailable:
		return "handle not usable"
	default:
		return "unknown reason"
	}
}

// ClassOf returns the error class a reason belongs to.
func ClassOf(r Reason) Class {
	switch r {
	case ReasonConnectionBroken, ReasonNotAuthorized, ReasonQueueManagerUnavailable,
		ReasonHostUnavailable, ReasonChannelUnavailable, ReasonHandleUnavailable:
		return ClassConnectivity
	case ReasonUnknownObject, ReasonObjectInUse, ReasonObjectDamaged:
		return ClassObject
	case ReasonQueueFull, ReasonPutInhibited, ReasonGetInhibited:
		return ClassQueueState
	case ReasonNoMessageAvailable, ReasonTruncatedMessage, ReasonMessageTooBig:
		return ClassMessage
	case ReasonOptionsError, ReasonBufferLengthError:
		return ClassValidation
	default:
		return ClassUnknown
	}
}
