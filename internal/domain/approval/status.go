package approval

import (
	"errors"
	"strings"
)

// Status is the approval state shared by overtime and leave records.
// Upstream systems have historically mixed casings ("Approved",
// "APPROVED"); ParseStatus normalizes so nothing downstream ever
// compares raw strings.
type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
	StatusCancelled Status = "cancelled"
)

var ErrUnknownStatus = errors.New("unknown approval status")

func ParseStatus(s string) (Status, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pending", "waiting_approval":
		return StatusPending, nil
	case "approved":
		return StatusApproved, nil
	case "rejected":
		return StatusRejected, nil
	case "cancelled", "canceled":
		return StatusCancelled, nil
	}
	return "", ErrUnknownStatus
}

func (s Status) IsApproved() bool {
	return s == StatusApproved
}
