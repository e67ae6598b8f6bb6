package service

import (
	"context"
	"sync"

	"github.com/hromada/hromada-api/internal/mailer"
)

// fakeMailer records every send so tests can assert on notification
// side effects without a relay.
type fakeMailer struct {
	mu sync.Mutex

	received      []mailer.SubmissionReceived
	alerts        []mailer.NewSubmissionAlert
	approved      []mailer.SubmissionApproved
	rejected      []mailer.SubmissionRejected
	welcomes      []mailer.DonorWelcome
	confirmations []mailer.DonationConfirmation
	donations     []mailer.DonationAlert
	forwarded     []mailer.DonationForwarded
	contacts      []mailer.ContactAlert
}

func (f *fakeMailer) SendSubmissionReceived(_ context.Context, m mailer.SubmissionReceived) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.received = append(f.received, m)
	return nil
}

func (f *fakeMailer) SendNewSubmissionAlert(_ context.Context, m mailer.NewSubmissionAlert) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.alerts = append(f.alerts, m)
	return nil
}

func (f *fakeMailer) SendSubmissionApproved(_ context.Context, m mailer.SubmissionApproved) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.approved = append(f.approved, m)
	return nil
}

func (f *fakeMailer) SendSubmissionRejected(_ context.Context, m mailer.SubmissionRejected) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rejected = append(f.rejected, m)
	return nil
}

func (f *fakeMailer) SendDonorWelcome(_ context.Context, m mailer.DonorWelcome) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.welcomes = append(f.welcomes, m)
	return nil
}

func (f *fakeMailer) SendDonationConfirmation(_ context.Context, m mailer.DonationConfirmation) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.confirmations = append(f.confirmations, m)
	return nil
}

func (f *fakeMailer) SendDonationAlert(_ context.Context, m mailer.DonationAlert) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.donations = append(f.donations, m)
	return nil
}

func (f *fakeMailer) SendDonationForwarded(_ context.Context, m mailer.DonationForwarded) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.forwarded = append(f.forwarded, m)
	return nil
}

func (f *fakeMailer) SendContactAlert(_ context.Context, m mailer.ContactAlert) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.contacts = append(f.contacts, m)
	return nil
}

func (f *fakeMailer) welcomeCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.welcomes)
}

func (f *fakeMailer) confirmationCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.confirmations)
}

func (f *fakeMailer) approvedCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.approved)
}

func (f *fakeMailer) rejectedCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.rejected)
}

func (f *fakeMailer) receivedCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.received)
}

func (f *fakeMailer) lastWelcome() mailer.DonorWelcome {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.welcomes[len(f.welcomes)-1]
}
