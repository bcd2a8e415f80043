package domain

type Status string

const (
	StatusDone     Status = "done"
	StatusRejected Status = "rejected"
	StatusFailed   Status = "failed"
)
