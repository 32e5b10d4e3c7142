package service

// AutoBackupState is a state of the automatic backup state machine.
type AutoBackupState string

const (
	StateIdle          AutoBackupState = "idle"
	StateCheckPolicy   AutoBackupState = "check_policy"
	StateObtainSecret  AutoBackupState = "obtain_secret"
	StateBuildEnvelope AutoBackupState = "build_envelope"
	StateUpload        AutoBackupState = "upload"
	StateListExisting  AutoBackupState = "list_existing"
	StatePrune         AutoBackupState = "prune"

	// terminal states
	StateDone    AutoBackupState = "done"
	StateSkipped AutoBackupState = "skipped"
	StateFailed  AutoBackupState = "failed"
)

// SkipReason explains why an automatic run was skipped.
type SkipReason string

const (
	SkipDisabled       SkipReason = "disabled"
	SkipNotConfigured  SkipReason = "not_configured"
	SkipOffline        SkipReason = "offline"
	SkipNoSecret       SkipReason = "no_pin_available"
	SkipAlreadyRunning SkipReason = "already_running"
)

// AutoBackupResult reports how an automatic run ended.
type AutoBackupResult struct {
	RunID string
	// State is StateDone, StateSkipped or StateFailed.
	State AutoBackupState
	// SkipReason is set when State is StateSkipped.
	SkipReason SkipReason
	// FailedAt is the state that failed when State is StateFailed.
	FailedAt AutoBackupState
	// Err is the contained failure when State is StateFailed.
	Err error

	// Key is the uploaded object key; empty when nothing was uploaded.
	Key string
	// Pruned lists the keys deleted by retention, oldest first.
	Pruned []string
	// PruneFailures lists the keys retention failed to delete.
	PruneFailures []string
}

// Uploaded reports whether the run stored a new backup.
func (r AutoBackupResult) Uploaded() bool {
	return r.Key != ""
}

func skipped(reason SkipReason) AutoBackupResult {
	return AutoBackupResult{State: StateSkipped, SkipReason: reason}
}

func failed(at AutoBackupState, err error) AutoBackupResult {
	return AutoBackupResult{State: StateFailed, FailedAt: at, Err: err}
}

// detail is the short journal description of the result.
func (r AutoBackupResult) detail() string {
	switch r.State {
	case StateSkipped:
		return string(r.SkipReason)
	case StateFailed:
		if r.Err != nil {
			return string(r.FailedAt) + ": " + r.Err.Error()
		}
		return string(r.FailedAt)
	}
	return ""
}
