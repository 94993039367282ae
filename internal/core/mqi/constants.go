package mqi

// Completion codes returned by every MQI verb.
const (
	MQCC_OK      int32 = 0
	MQCC_WARNING int32 = 1
	MQCC_FAILED  int32 = 2
)

// Reason codes the engine reacts to. The vendor enumeration is much larger;
// anything outside this set maps to ReasonUnknown at the adapter boundary.
const (
	MQRC_NONE                   int32 = 0
	MQRC_CONNECTION_BROKEN      int32 = 2009
	MQRC_GET_INHIBITED          int32 = 2016
	MQRC_NO_MSG_AVAILABLE       int32 = 2033
	MQRC_NOT_AUTHORIZED         int32 = 2035
	MQRC_OBJECT_CHANGED         int32 = 2041
	MQRC_OBJECT_IN_USE          int32 = 2042
	MQRC_OPTIONS_ERROR          int32 = 2046
	MQRC_PUT_INHIBITED          int32 = 2051
	MQRC_Q_FULL                 int32 = 2053
	MQRC_UNKNOWN_OBJECT_NAME    int32 = 2085
	MQRC_UNKNOWN_Q_MGR          int32 = 2058
	MQRC_Q_MGR_NOT_AVAILABLE    int32 = 2059
	MQRC_MSG_TOO_BIG_FOR_Q      int32 = 2030
	MQRC_BUFFER_LENGTH_ERROR    int32 = 2005
	MQRC_TRUNCATED_MSG_ACCEPTED int32 = 2079
	MQRC_TRUNCATED_MSG_FAILED   int32 = 2080
	MQRC_HCONN_ERROR            int32 = 2018
	MQRC_HOBJ_ERROR             int32 = 2019
	MQRC_HOST_NOT_AVAILABLE     int32 = 2538
	MQRC_CHANNEL_NOT_AVAILABLE  int32 = 2537
	MQRC_UNKNOWN_CHANNEL_NAME   int32 = 2540
	MQRC_UNEXPECTED_ERROR       int32 = 2195
)

// Queue type values as reported by MQIA_Q_TYPE.
const (
	MQQT_LOCAL   int32 = 1
	MQQT_MODEL   int32 = 2
	MQQT_ALIAS   int32 = 3
	MQQT_REMOTE  int32 = 6
	MQQT_CLUSTER int32 = 7
)

// Message type values from the message descriptor.
const (
	MQMT_REQUEST  int32 = 1
	MQMT_REPLY    int32 = 2
	MQMT_REPORT   int32 = 4
	MQMT_DATAGRAM int32 = 8
)

// Persistence values from the message descriptor.
const (
	MQPER_NOT_PERSISTENT       int32 = 0
	MQPER_PERSISTENT           int32 = 1
	MQPER_PERSISTENCE_AS_Q_DEF int32 = 2
)

// Field lengths fixed by the MQ object model.
const (
	QMgrNameLength    = 48
	QNameLength       = 48
	ChannelNameLength = 20
	MsgIDLength       = 24
	CorrelIDLength    = 24
)
