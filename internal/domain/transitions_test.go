package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDonationStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name    string
		from    DonationStatus
		to      DonationStatus
		allowed bool
	}{
		{"pending to received", DonationStatusPendingConfirmation, DonationStatusReceived, true},
		{"pending to failed", DonationStatusPendingConfirmation, DonationStatusFailed, true},
		{"pending to forwarded skips received", DonationStatusPendingConfirmation, DonationStatusForwarded, false},
		{"received to forwarded", DonationStatusReceived, DonationStatusForwarded, true},
		{"received to refunded", DonationStatusReceived, DonationStatusRefunded, true},
		{"forwarded to completed", DonationStatusForwarded, DonationStatusCompleted, true},
		{"forwarded back to received", DonationStatusForwarded, DonationStatusReceived, false},
		{"completed is terminal", DonationStatusCompleted, DonationStatusReceived, false},
		{"failed is terminal", DonationStatusFailed, DonationStatusReceived, false},
		{"refunded is terminal", DonationStatusRefunded, DonationStatusCompleted, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestDonationStatus_Valid(t *testing.T) {
	assert.True(t, DonationStatusPendingConfirmation.Valid())
	assert.True(t, DonationStatusRefunded.Valid())
	assert.False(t, DonationStatus("SHIPPED").Valid())
	assert.False(t, DonationStatus("").Valid())
}

func TestWireTransferStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name    string
		from    WireTransferStatus
		to      WireTransferStatus
		allowed bool
	}{
		{"pending to initiated", WireTransferStatusPending, WireTransferStatusInitiated, true},
		{"pending to cancelled", WireTransferStatusPending, WireTransferStatusCancelled, true},
		{"pending to sent skips initiated", WireTransferStatusPending, WireTransferStatusSent, false},
		{"initiated to sent", WireTransferStatusInitiated, WireTransferStatusSent, true},
		{"sent can settle directly", WireTransferStatusSent, WireTransferStatusConfirmed, true},
		{"sent to in transit", WireTransferStatusSent, WireTransferStatusInTransit, true},
		{"in transit to confirmed", WireTransferStatusInTransit, WireTransferStatusConfirmed, true},
		{"confirmed is terminal", WireTransferStatusConfirmed, WireTransferStatusFailed, false},
		{"cancelled is terminal", WireTransferStatusCancelled, WireTransferStatusInitiated, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestWireTransferStatus_Valid(t *testing.T) {
	assert.True(t, WireTransferStatusPending.Valid())
	assert.False(t, WireTransferStatus("LOST").Valid())
}
