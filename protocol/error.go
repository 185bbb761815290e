// Defines constants representing the types
// of errors that the cloud may return to a client,
// and the results of the checks a client performs
// on the cloud's responses.

package protocol

// An ErrorCode implements the built-in error interface type.
type ErrorCode int

// These codes indicate the status of a cloud-client response.
const (
	ReqSuccess ErrorCode = iota + 100
	ReqNotFound
	ReqExisted

	ErrCloud
	ErrCapacityExhausted
	ErrMalformedMessage
)

// These codes indicate the result
// of a consistency check or cryptographic verification.
const (
	CheckPassed ErrorCode = iota + 200
	CheckBadQuery
	CheckBadProbeSequence
	CheckBadLeaf
	CheckBadAuthPath
	CheckBadExistenceFlag
	CheckMalformedProof
	CheckBadUpdate
)

// Errors contains the codes a cloud returns
// without any proof attached.
var Errors = map[ErrorCode]bool{
	ErrCloud:             true,
	ErrCapacityExhausted: true,
	ErrMalformedMessage:  true,
}

var (
	errorMessages = map[ErrorCode]string{
		ReqSuccess:  "[vfs] Successful request",
		ReqNotFound: "[vfs] Requested file not found",
		ReqExisted:  "[vfs] Requested file already exists",

		ErrCloud:             "[vfs] Internal cloud error",
		ErrCapacityExhausted: "[vfs] No free slot left for the file",
		ErrMalformedMessage:  "[vfs] Malformed message",

		CheckPassed:           "[vfs] Consistency checks passed",
		CheckBadQuery:         "[vfs] Proof answers a different query",
		CheckBadProbeSequence: "[vfs] Visited slots do not follow the probe sequence",
		CheckBadLeaf:          "[vfs] Slot does not match its leaf digest",
		CheckBadAuthPath:      "[vfs] Authentication path does not lead to the root",
		CheckBadExistenceFlag: "[vfs] Claimed answer does not match the proof",
		CheckMalformedProof:   "[vfs] Malformed proof",
		CheckBadUpdate:        "[vfs] Cloud root disagrees with the expected root after an update",
	}
)

// Error returns the error message corresponding to the error code e.
func (e ErrorCode) Error() string {
	return errorMessages[e]
}
