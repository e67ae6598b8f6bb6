package mailer

import "context"

// Nop discards every message. Used when SMTP is not configured and in
// tests.
type Nop struct{}

var _ Mailer = Nop{}

func NewNop() Nop { return Nop{} }

func (Nop) SendSubmissionReceived(context.Context, SubmissionReceived) error     { return nil }
func (Nop) SendNewSubmissionAlert(context.Context, NewSubmissionAlert) error     { return nil }
func (Nop) SendSubmissionApproved(context.Context, SubmissionApproved) error     { return nil }
func (Nop) SendSubmissionRejected(context.Context, SubmissionRejected) error     { return nil }
func (Nop) SendDonorWelcome(context.Context, DonorWelcome) error                 { return nil }
func (Nop) SendDonationConfirmation(context.Context, DonationConfirmation) error { return nil }
func (Nop) SendDonationAlert(context.Context, DonationAlert) error               { return nil }
func (Nop) SendDonationForwarded(context.Context, DonationForwarded) error       { return nil }
func (Nop) SendContactAlert(context.Context, ContactAlert) error                 { return nil }
