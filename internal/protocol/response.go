package protocol

// Response is the single structured reply returned for a request. Decryption
// failures are normal outcomes here, not errors: they surface as a non-zero
// ExitCode plus the classified ErrorCode.
type Response struct {
	// ExitCode is the exit status of the pass invocation, or -1 when the
	// tool could not be launched at all.
	ExitCode int `json:"exitCode"`
	// Stdout is the tool's primary output, decoded as UTF-8 text.
	Stdout string `json:"stdout"`
	// Stderr is the cleaned diagnostic log produced by classification.
	Stderr string `json:"stderr"`
	// ErrorCode is the 16-bit gpg error code, 0 if none was detected.
	ErrorCode int `json:"errorCode"`
	// Version is the passbridge version tag.
	Version string `json:"version"`
}
