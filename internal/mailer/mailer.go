// Package mailer sends the platform's transactional email. Sends are
// best-effort side effects: callers log failures and carry on with the
// triggering workflow.
package mailer

import "context"

type SubmissionReceived struct {
	ContactName  string
	ContactEmail string
	FacilityName string
}

type NewSubmissionAlert struct {
	MunicipalityName  string
	MunicipalityEmail string
	Region            string
	FacilityName      string
	Category          string
	ProjectType       string
	Urgency           string
	BriefDescription  string
	ContactName       string
	ContactEmail      string
	ContactPhone      string
}

type SubmissionApproved struct {
	ContactName  string
	ContactEmail string
	FacilityName string
	ProjectID    string
}

type SubmissionRejected struct {
	ContactName  string
	ContactEmail string
	FacilityName string
	Reason       string
}

type DonorWelcome struct {
	DonorName         string
	DonorEmail        string
	TemporaryPassword string
	ProjectName       string
	Amount            *float64
	PaymentMethod     string
}

type DonationConfirmation struct {
	DonorName   string
	DonorEmail  string
	ProjectName string
}

type DonationAlert struct {
	DonorName         string
	DonorEmail        string
	DonorOrganization string
	ProjectName       string
	Amount            *float64
	PaymentMethod     string
	ReferenceNumber   string
	IsNewDonor        bool
}

type DonationForwarded struct {
	DonorName       string
	DonorEmail      string
	ProjectName     string
	Amount          *float64
	PaymentMethod   string
	ReferenceNumber string
}

type ContactAlert struct {
	Name         string
	Email        string
	Organization string
	Message      string
	ProjectName  string
}

type Mailer interface {
	SendSubmissionReceived(ctx context.Context, m SubmissionReceived) error
	SendNewSubmissionAlert(ctx context.Context, m NewSubmissionAlert) error
	SendSubmissionApproved(ctx context.Context, m SubmissionApproved) error
	SendSubmissionRejected(ctx context.Context, m SubmissionRejected) error
	SendDonorWelcome(ctx context.Context, m DonorWelcome) error
	SendDonationConfirmation(ctx context.Context, m DonationConfirmation) error
	SendDonationAlert(ctx context.Context, m DonationAlert) error
	SendDonationForwarded(ctx context.Context, m DonationForwarded) error
	SendContactAlert(ctx context.Context, m ContactAlert) error
}
