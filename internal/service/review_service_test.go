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

func TestReviewService_Approve(t *testing.T) {
	repo := newTestRepo(t)
	mail := &fakeMailer{}
	submissions := NewSubmissionService(repo, mail, logger.NewNop())
	reviews := NewReviewService(repo, mail, logger.NewNop())
	ctx := context.Background()

	sub, err := submissions.Submit(ctx, validSubmissionInput(), nil)
	require.NoError(t, err)

	project, err := reviews.Approve(ctx, sub.ID, "admin@hromada.org")
	require.NoError(t, err)

	assert.Equal(t, domain.ProjectStatusOpen, project.Status)
	assert.Equal(t, sub.FacilityName, project.FacilityName)
	assert.Equal(t, sub.EstimatedCostUsd, project.EstimatedCostUsd)

	reviewed, err := submissions.Get(ctx, sub.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.SubmissionStatusApproved, reviewed.Status)
	require.NotNil(t, reviewed.ApprovedProjectID)
	assert.Equal(t, project.ID, *reviewed.ApprovedProjectID)
	require.NotNil(t, reviewed.ReviewedBy)
	assert.Equal(t, "admin@hromada.org", *reviewed.ReviewedBy)

	require.Eventually(t, func() bool {
		return mail.approvedCount() == 1
	}, 2*time.Second, 10*time.Millisecond)
}

func TestReviewService_Approve_Twice(t *testing.T) {
	repo := newTestRepo(t)
	mail := &fakeMailer{}
	submissions := NewSubmissionService(repo, mail, logger.NewNop())
	reviews := NewReviewService(repo, mail, logger.NewNop())
	ctx := context.Background()

	sub, err := submissions.Submit(ctx, validSubmissionInput(), nil)
	require.NoError(t, err)

	_, err = reviews.Approve(ctx, sub.ID, "admin")
	require.NoError(t, err)

	_, err = reviews.Approve(ctx, sub.ID, "admin")
	assert.ErrorIs(t, err, domain.ErrAlreadyReviewed)
}

func TestReviewService_Reject(t *testing.T) {
	repo := newTestRepo(t)
	mail := &fakeMailer{}
	submissions := NewSubmissionService(repo, mail, logger.NewNop())
	reviews := NewReviewService(repo, mail, logger.NewNop())
	ctx := context.Background()

	sub, err := submissions.Submit(ctx, validSubmissionInput(), nil)
	require.NoError(t, err)

	err = reviews.Reject(ctx, sub.ID, "Outside program scope", "admin")
	require.NoError(t, err)

	rejected, err := submissions.Get(ctx, sub.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.SubmissionStatusRejected, rejected.Status)
	require.NotNil(t, rejected.RejectionReason)
	assert.Equal(t, "Outside program scope", *rejected.RejectionReason)

	require.Eventually(t, func() bool {
		return mail.rejectedCount() == 1
	}, 2*time.Second, 10*time.Millisecond)
}

func TestReviewService_Reject_RequiresReason(t *testing.T) {
	repo := newTestRepo(t)
	mail := &fakeMailer{}
	submissions := NewSubmissionService(repo, mail, logger.NewNop())
	reviews := NewReviewService(repo, mail, logger.NewNop())
	ctx := context.Background()

	sub, err := submissions.Submit(ctx, validSubmissionInput(), nil)
	require.NoError(t, err)

	err = reviews.Reject(ctx, sub.ID, "   ", "admin")
	assert.ErrorIs(t, err, domain.ErrRejectionReasonRequired)

	// The submission stays reviewable.
	pending, err := submissions.Get(ctx, sub.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.SubmissionStatusPending, pending.Status)
}

func TestReviewService_Approve_NotFound(t *testing.T) {
	repo := newTestRepo(t)
	reviews := NewReviewService(repo, &fakeMailer{}, logger.NewNop())

	_, err := reviews.Approve(context.Background(), "nonexistent", "admin")
	assert.ErrorIs(t, err, domain.ErrSubmissionNotFound)
}
