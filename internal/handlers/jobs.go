package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/quickgigs/wallet-service/internal/logger"
	"github.com/quickgigs/wallet-service/internal/middlewares"
	"github.com/quickgigs/wallet-service/internal/models"
	"github.com/quickgigs/wallet-service/internal/repositories"
)

// JobCoordinator defines the interface that the escrow service must implement.
type JobCoordinator interface {
	PostJob(ctx context.Context, clientUserID uuid.UUID, title, description string, budgetMax decimal.Decimal) (*models.Job, error)
	CompleteJob(ctx context.Context, jobID, freelancerWalletID uuid.UUID) (*models.Job, error)
	CancelJob(ctx context.Context, jobID uuid.UUID) (*models.Job, error)
}

// JobOwnerReader resolves jobs for ownership checks.
type JobOwnerReader interface {
	GetByID(ctx context.Context, jobID uuid.UUID) (*models.Job, error)
}

// PostJobRequest represents the JSON body for posting a job
// swagger:model PostJobRequest
type PostJobRequest struct {
	// Job title
	// required: true
	// default: Build a landing page
	Title string `json:"title"`

	// Job description
	// required: true
	Description string `json:"description"`

	// Maximum budget offered to the freelancer
	// required: true
	// default: 500.00
	BudgetMax decimal.Decimal `json:"budget_max"`
}

// CompleteJobRequest represents the JSON body for completing a job
// swagger:model CompleteJobRequest
type CompleteJobRequest struct {
	// Wallet of the freelancer who delivered the work
	// required: true
	FreelancerWalletID uuid.UUID `json:"freelancer_wallet_id"`
}

// ownedJob parses the job id from the URL and verifies the caller posted it.
func ownedJob(ctx context.Context, r *http.Request, jobReader JobOwnerReader) (uuid.UUID, error) {
	jobID, err := uuid.Parse(chi.URLParam(r, "job_id"))
	if err != nil {
		return uuid.Nil, repositories.ErrNotFound
	}

	userID, ok := middlewares.UserIDFromContext(ctx)
	if !ok {
		return uuid.Nil, repositories.ErrNotFound
	}

	job, err := jobReader.GetByID(ctx, jobID)
	if err != nil {
		return uuid.Nil, err
	}
	if job.ClientID != userID {
		return uuid.Nil, repositories.ErrNotFound
	}

	return jobID, nil
}

// NewPostJobHandler returns an HTTP handler that posts a job and escrows its
// budget plus the platform fee from the client's wallet.
// @Summary Post job
// @Description Creates a job and locks budget plus a 10% platform fee in escrow. Fails without side effects if funds are insufficient.
// @Tags jobs
// @Accept json
// @Produce json
// @Param request body handlers.PostJobRequest true "Post Job Request"
// @Success 201 {object} models.Job "Created job"
// @Failure 400 {object} handlers.ErrorResponse "Invalid job or insufficient funds"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /jobs [post]
// @Security BearerAuth
func NewPostJobHandler(svc JobCoordinator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		userID, ok := middlewares.UserIDFromContext(ctx)
		if !ok {
			writeJSON(w, http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
			return
		}

		var req PostJobRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode post job request", "error", err)
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
			return
		}

		job, err := svc.PostJob(ctx, userID, req.Title, req.Description, req.BudgetMax)
		if err != nil {
			logger.Log.Errorw("failed to post job", "userID", userID, "error", err)
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, job)
	}
}

// NewCompleteJobHandler returns an HTTP handler that approves delivered work
// and distributes the escrowed funds: 90% to the freelancer, 10% to the
// platform.
// @Summary Complete job
// @Description Releases escrow on approval. Retrying a completed job is a no-op.
// @Tags jobs
// @Accept json
// @Produce json
// @Param job_id path string true "Job ID"
// @Param request body handlers.CompleteJobRequest true "Complete Job Request"
// @Success 200 {object} models.Job "Completed job"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Job not found"
// @Failure 409 {object} handlers.ErrorResponse "Escrow already settled"
// @Router /jobs/{job_id}/complete [post]
// @Security BearerAuth
func NewCompleteJobHandler(svc JobCoordinator, jobReader JobOwnerReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		jobID, err := ownedJob(ctx, r, jobReader)
		if err != nil {
			writeError(w, err)
			return
		}

		var req CompleteJobRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.FreelancerWalletID == uuid.Nil {
			logger.Log.Errorw("failed to decode complete job request", "error", err)
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
			return
		}

		job, err := svc.CompleteJob(ctx, jobID, req.FreelancerWalletID)
		if err != nil {
			logger.Log.Errorw("failed to complete job", "jobID", jobID, "error", err)
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, job)
	}
}

// NewCancelJobHandler returns an HTTP handler that cancels an active job and
// refunds the escrowed amount to the client.
// @Summary Cancel job
// @Description Cancels a job and returns the escrow hold to the client's available balance.
// @Tags jobs
// @Produce json
// @Param job_id path string true "Job ID"
// @Success 200 {object} models.Job "Cancelled job"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Job not found"
// @Failure 409 {object} handlers.ErrorResponse "Job is not active"
// @Router /jobs/{job_id}/cancel [post]
// @Security BearerAuth
func NewCancelJobHandler(svc JobCoordinator, jobReader JobOwnerReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		jobID, err := ownedJob(ctx, r, jobReader)
		if err != nil {
			writeError(w, err)
			return
		}

		job, err := svc.CancelJob(ctx, jobID)
		if err != nil {
			logger.Log.Errorw("failed to cancel job", "jobID", jobID, "error", err)
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, job)
	}
}
