package errors

// Class groups reasons into the categories the engine reacts to.
type Class int

const (
	ClassConnectivity Class = iota
	ClassObject
	ClassQueueState
	ClassMessage
	ClassValidation
	ClassIO
	ClassUnknown
)

// MQIError is the typed outcome of a failed or warned MQI call. Raw numeric
// completion/reason codes never cross the adapter boundary except through
// this interface.
type MQIError interface {
	error
	CompCode() int32
	ReasonCode() int32
	Reason() Reason
	Class() Class
	// Warning reports MQCC_WARNING outcomes, which callers treat as success
	// with a caveat (e.g. truncation).
	Warning() bool
}
