package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hromada/hromada-api/internal/domain"
	"github.com/hromada/hromada-api/pkg/logger"
)

func publishTestProject(t *testing.T, repo domain.Repository) *domain.Project {
	t.Helper()
	ctx := context.Background()

	submissions := NewSubmissionService(repo, &fakeMailer{}, logger.NewNop())
	reviews := NewReviewService(repo, &fakeMailer{}, logger.NewNop())

	sub, err := submissions.Submit(ctx, validSubmissionInput(), nil)
	require.NoError(t, err)
	project, err := reviews.Approve(ctx, sub.ID, "admin")
	require.NoError(t, err)
	return project
}

func TestContactService_Create(t *testing.T) {
	repo := newTestRepo(t)
	mail := &fakeMailer{}
	svc := NewContactService(repo, mail, logger.NewNop())
	ctx := context.Background()

	project := publishTestProject(t, repo)

	contact, err := svc.Create(ctx, ContactInput{
		ProjectID: project.ID,
		Name:      "Jane Smith",
		Email:     "Jane@Example.org",
		Message:   "We would like to fund this project.",
	})
	require.NoError(t, err)

	assert.Equal(t, project.ID, contact.ProjectID)
	assert.Equal(t, "jane@example.org", contact.Email)
	assert.False(t, contact.Handled)

	// The admin alert names the facility, not the project ID.
	require.Eventually(t, func() bool {
		mail.mu.Lock()
		defer mail.mu.Unlock()
		return len(mail.contacts) == 1 && mail.contacts[0].ProjectName == project.FacilityName
	}, 2*time.Second, 10*time.Millisecond)
}

func TestContactService_Create_UnknownProject(t *testing.T) {
	repo := newTestRepo(t)
	svc := NewContactService(repo, &fakeMailer{}, logger.NewNop())

	_, err := svc.Create(context.Background(), ContactInput{
		ProjectID: "nonexistent",
		Name:      "Jane Smith",
		Email:     "jane@example.org",
		Message:   "Hello",
	})
	assert.ErrorIs(t, err, domain.ErrProjectNotFound)
}

func TestContactService_SetHandled(t *testing.T) {
	repo := newTestRepo(t)
	svc := NewContactService(repo, &fakeMailer{}, logger.NewNop())
	ctx := context.Background()

	project := publishTestProject(t, repo)
	contact, err := svc.Create(ctx, ContactInput{
		ProjectID: project.ID,
		Name:      "Jane Smith",
		Email:     "jane@example.org",
		Message:   "Hello",
	})
	require.NoError(t, err)

	updated, err := svc.SetHandled(ctx, contact.ID, true)
	require.NoError(t, err)
	assert.True(t, updated.Handled)

	updated, err = svc.SetHandled(ctx, contact.ID, false)
	require.NoError(t, err)
	assert.False(t, updated.Handled)

	_, err = svc.SetHandled(ctx, "nonexistent", true)
	assert.ErrorIs(t, err, domain.ErrContactNotFound)
}

func TestProjectService_UpdateStatus(t *testing.T) {
	repo := newTestRepo(t)
	svc := NewProjectService(repo, logger.NewNop())
	ctx := context.Background()

	project := publishTestProject(t, repo)

	updated, err := svc.UpdateStatus(ctx, project.ID, domain.ProjectStatusMatched)
	require.NoError(t, err)
	assert.Equal(t, domain.ProjectStatusMatched, updated.Status)

	_, err = svc.UpdateStatus(ctx, project.ID, "ARCHIVED")
	var validationErr *domain.ValidationError
	assert.ErrorAs(t, err, &validationErr)

	_, err = svc.UpdateStatus(ctx, "nonexistent", domain.ProjectStatusOpen)
	assert.ErrorIs(t, err, domain.ErrProjectNotFound)
}

func TestWireTransferService_CreateAndTransition(t *testing.T) {
	repo := newTestRepo(t)
	svc := NewWireTransferService(repo, logger.NewNop())
	ctx := context.Background()

	transfer, err := svc.Create(ctx, WireTransferInput{
		ReferenceNumber: "WT-2026-001",
		RecipientName:   "Kharkiv City Council",
		ProjectName:     "Children's Hospital #5",
		AmountUsd:       "48000",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.WireTransferStatusPending, transfer.Status)
	assert.Equal(t, 48000.0, transfer.AmountUsd)
	assert.Nil(t, transfer.ProjectID)

	updated, err := svc.UpdateStatus(ctx, transfer.ID, domain.WireTransferStatusInitiated)
	require.NoError(t, err)
	assert.Equal(t, domain.WireTransferStatusInitiated, updated.Status)

	var validationErr *domain.ValidationError
	_, err = svc.Create(ctx, WireTransferInput{
		ReferenceNumber: "WT-2026-002",
		RecipientName:   "Kharkiv City Council",
		ProjectName:     "Children's Hospital #5",
	})
	assert.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "amountUsd", validationErr.Field)
}
