package performance

const (
	AppealSubmitted   = "Submitted"
	AppealUnderReview = "Under Review"
	AppealResolved    = "Resolved"
)

const (
	ResolutionAccepted = "Accepted"
	ResolutionRejected = "Rejected"
)

// canTransition encodes the appeal state machine:
// Submitted -> Under Review -> Resolved. Resolved is terminal.
func canTransition(from, to string) bool {
	switch from {
	case AppealSubmitted:
		return to == AppealUnderReview || to == AppealResolved
	case AppealUnderReview:
		return to == AppealResolved
	default:
		return false
	}
}

func validAppealStatus(status string) bool {
	switch status {
	case AppealSubmitted, AppealUnderReview, AppealResolved:
		return true
	}
	return false
}

func validResolution(resolution string) bool {
	return resolution == ResolutionAccepted || resolution == ResolutionRejected
}
