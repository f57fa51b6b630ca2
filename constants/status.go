package constants

// JobStatus is the canonical status for rows in extraction_job.
type JobStatus string

// Stable values (store these exact strings in DB).
const (
	JobStatusPending   JobStatus = "pending"   // created, not yet picked up
	JobStatusRunning   JobStatus = "running"   // extraction in progress
	JobStatusCompleted JobStatus = "completed" // terminal success
	JobStatusFailed    JobStatus = "failed"    // terminal failure
	JobStatusCancelled JobStatus = "cancelled" // cancelled while still pending
)

// Terminal reports whether s is a terminal state. Terminal jobs are
// immutable; repositories refuse further status updates.
func (s JobStatus) Terminal() bool {
	switch s {
	case JobStatusCompleted, JobStatusFailed, JobStatusCancelled:
		return true
	}
	return false
}

// JobStatuses holds the allowed values for the extraction_job status field.
var JobStatuses = []string{
	string(JobStatusPending),
	string(JobStatusRunning),
	string(JobStatusCompleted),
	string(JobStatusFailed),
	string(JobStatusCancelled),
}

// JobMode selects how the backend treats its weights during a run.
type JobMode string

const (
	ModeNoTraining       JobMode = "no_training"       // inference only
	ModeTrainingAssisted JobMode = "training_assisted" // inference with feedback examples
	ModeWarmStart        JobMode = "warm_start"        // resume from a prior artifact
)

// JobModes holds the allowed values for the extraction_job mode field.
var JobModes = []string{
	string(ModeNoTraining),
	string(ModeTrainingAssisted),
	string(ModeWarmStart),
}

// TripleStatus is the review state of a persisted triple.
type TripleStatus string

const (
	TripleStatusRaw      TripleStatus = "raw"      // as emitted by the backend
	TripleStatusAccepted TripleStatus = "accepted" // curator approved
	TripleStatusRejected TripleStatus = "rejected" // curator rejected
	TripleStatusEdited   TripleStatus = "edited"   // curator modified
)

// TripleStatuses holds the allowed values for the triple status field.
var TripleStatuses = []string{
	string(TripleStatusRaw),
	string(TripleStatusAccepted),
	string(TripleStatusRejected),
	string(TripleStatusEdited),
}

// DocumentStatus tracks a stored document from registration onward.
type DocumentStatus string

const (
	DocumentStatusRegistered DocumentStatus = "registered"
	DocumentStatusProcessed  DocumentStatus = "processed"
)
