package domain

import (
	"context"
	"time"
)

type SubmissionRepository interface {
	CreateSubmission(ctx context.Context, sub *ProjectSubmission) error
	GetSubmission(ctx context.Context, id string) (*ProjectSubmission, error)
	// GetSubmissionOwned scopes the lookup to one owner; an id that
	// exists but belongs to someone else reads as not found.
	GetSubmissionOwned(ctx context.Context, id, userID string) (*ProjectSubmission, error)
	ListSubmissions(ctx context.Context) ([]ProjectSubmission, error)
	ListSubmissionsByUser(ctx context.Context, userID string) ([]ProjectSubmission, error)
	UpdateSubmissionFields(ctx context.Context, id string, fields map[string]interface{}) (*ProjectSubmission, error)
	DeleteSubmission(ctx context.Context, id string) error

	// ApproveSubmission creates the project and marks the submission
	// APPROVED in one transaction. Returns ErrAlreadyReviewed if the
	// submission is no longer PENDING.
	ApproveSubmission(ctx context.Context, id, reviewedBy string, project *Project) error
	RejectSubmission(ctx context.Context, id, reason, reviewedBy string) error
}

type ProjectRepository interface {
	GetProject(ctx context.Context, id string) (*Project, error)
	ListProjects(ctx context.Context) ([]Project, error)
	UpdateProjectStatus(ctx context.Context, id string, status ProjectStatus) (*Project, error)
}

type DonationRepository interface {
	CreateDonation(ctx context.Context, d *DonationRecord) error
	GetDonation(ctx context.Context, id string) (*DonationRecord, error)
	ListDonations(ctx context.Context) ([]DonationRecord, error)
	ListDonationsByDonor(ctx context.Context, donorUserID string) ([]DonationRecord, error)
	// TransitionDonation re-validates the transition against the
	// current persisted status inside a transaction.
	TransitionDonation(ctx context.Context, id string, next DonationStatus, internalNotes *string, at time.Time) (*DonationRecord, error)
}

type WireTransferRepository interface {
	CreateWireTransfer(ctx context.Context, w *WireTransferRecord) error
	GetWireTransfer(ctx context.Context, id string) (*WireTransferRecord, error)
	ListWireTransfers(ctx context.Context) ([]WireTransferRecord, error)
	TransitionWireTransfer(ctx context.Context, id string, next WireTransferStatus, at time.Time) (*WireTransferRecord, error)
}

type UserRepository interface {
	CreateUser(ctx context.Context, u *User) error
	GetUser(ctx context.Context, id string) (*User, error)
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	ListUsers(ctx context.Context) ([]User, error)
	UpdateUserFields(ctx context.Context, id string, fields map[string]interface{}) (*User, error)
	DeleteUser(ctx context.Context, id string) error
	TouchLastLogin(ctx context.Context, id string, at time.Time) error
}

type ContactRepository interface {
	CreateContact(ctx context.Context, c *ContactSubmission) error
	ListContacts(ctx context.Context) ([]ContactSubmission, error)
	SetContactHandled(ctx context.Context, id string, handled bool) (*ContactSubmission, error)
}

type SubscriberRepository interface {
	// UpsertSubscriber subscribes an email, reactivating it if it was
	// unsubscribed earlier.
	UpsertSubscriber(ctx context.Context, email string) (*Subscriber, error)
	UnsubscribeEmail(ctx context.Context, email string) error
	ListSubscribers(ctx context.Context) ([]Subscriber, error)
	DeleteSubscriber(ctx context.Context, id string) error
}

// Repository is the full persistence surface backed by the database of
// record.
type Repository interface {
	SubmissionRepository
	ProjectRepository
	DonationRepository
	WireTransferRepository
	UserRepository
	ContactRepository
	SubscriberRepository
}
