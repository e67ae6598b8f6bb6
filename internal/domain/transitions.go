package domain

// DonationTransitions is the authoritative forward-only lifecycle for
// donation records. The server validates every requested transition
// against this table; the dashboard's own next-status hints are never
// trusted.
var DonationTransitions = map[DonationStatus][]DonationStatus{
	DonationStatusPendingConfirmation: {DonationStatusReceived, DonationStatusFailed},
	DonationStatusReceived:            {DonationStatusForwarded, DonationStatusRefunded},
	DonationStatusForwarded:           {DonationStatusCompleted},
	DonationStatusCompleted:           {},
	DonationStatusFailed:              {},
	DonationStatusRefunded:            {},
}

func (s DonationStatus) CanTransitionTo(next DonationStatus) bool {
	for _, allowed := range DonationTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func (s DonationStatus) Valid() bool {
	_, ok := DonationTransitions[s]
	return ok
}

// WireTransferTransitions mirrors the donation table for outbound
// transfers. CONFIRMED, FAILED and CANCELLED are terminal.
var WireTransferTransitions = map[WireTransferStatus][]WireTransferStatus{
	WireTransferStatusPending:   {WireTransferStatusInitiated, WireTransferStatusCancelled},
	WireTransferStatusInitiated: {WireTransferStatusSent, WireTransferStatusFailed, WireTransferStatusCancelled},
	WireTransferStatusSent:      {WireTransferStatusInTransit, WireTransferStatusConfirmed, WireTransferStatusFailed},
	WireTransferStatusInTransit: {WireTransferStatusConfirmed, WireTransferStatusFailed},
	WireTransferStatusConfirmed: {},
	WireTransferStatusFailed:    {},
	WireTransferStatusCancelled: {},
}

func (s WireTransferStatus) CanTransitionTo(next WireTransferStatus) bool {
	for _, allowed := range WireTransferTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func (s WireTransferStatus) Valid() bool {
	_, ok := WireTransferTransitions[s]
	return ok
}
