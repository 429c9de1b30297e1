package handlers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/quickgigs/wallet-service/internal/middlewares"
	"github.com/quickgigs/wallet-service/internal/models"
	"github.com/quickgigs/wallet-service/internal/services"
)

func activeJob(clientID uuid.UUID, title, description string) *models.Job {
	return &models.Job{
		JobID:       uuid.New(),
		ClientID:    clientID,
		Title:       title,
		Description: description,
		BudgetMax:   decimal.RequireFromString("500.00"),
		Status:      models.JobStatusActive,
	}
}

func TestPostJobHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	tests := []struct {
		name           string
		body           string
		mockSetup      func(m *MockJobCoordinator)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Success",
			body: `{"title": "Build a landing page", "description": "5 sections", "budget_max": "500.00"}`,
			mockSetup: func(m *MockJobCoordinator) {
				job := activeJob(userID, "Build a landing page", "5 sections")
				m.EXPECT().PostJob(gomock.Any(), userID, "Build a landing page", "5 sections", gomock.Any()).
					Return(job, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `"status":"active"`,
		},
		{
			name: "BlankTitle",
			body: `{"title": "", "description": "x", "budget_max": "500.00"}`,
			mockSetup: func(m *MockJobCoordinator) {
				m.EXPECT().PostJob(gomock.Any(), userID, "", "x", gomock.Any()).
					Return(nil, services.ErrInvalidJob)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   services.ErrInvalidJob.Error(),
		},
		{
			name: "InsufficientFunds",
			body: `{"title": "Logo", "description": "vector", "budget_max": "500.00"}`,
			mockSetup: func(m *MockJobCoordinator) {
				m.EXPECT().PostJob(gomock.Any(), userID, "Logo", "vector", gomock.Any()).
					Return(nil, services.ErrInsufficientBalance)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"error":"Insufficient funds"`,
		},
		{
			name:           "MalformedBody",
			body:           `{`,
			mockSetup:      func(m *MockJobCoordinator) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"error":"Invalid request body"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockJobCoordinator(ctrl)
			tt.mockSetup(mockSvc)

			handler := NewPostJobHandler(mockSvc)

			req := httptest.NewRequest(http.MethodPost, "/jobs", strings.NewReader(tt.body))
			req = req.WithContext(middlewares.WithUserID(req.Context(), userID))
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tt.expectedBody)
		})
	}
}

func TestCompleteJobHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	clientID := uuid.New()
	freelancerWalletID := uuid.New()
	job := activeJob(clientID, "Logo", "vector")

	foreignJob := activeJob(uuid.New(), "Logo", "vector")

	tests := []struct {
		name           string
		jobID          string
		body           string
		mockSetup      func(svc *MockJobCoordinator, jobs *MockJobOwnerReader)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:  "Success",
			jobID: job.JobID.String(),
			body:  fmt.Sprintf(`{"freelancer_wallet_id": "%s"}`, freelancerWalletID),
			mockSetup: func(svc *MockJobCoordinator, jobs *MockJobOwnerReader) {
				completed := *job
				completed.Status = models.JobStatusCompleted
				jobs.EXPECT().GetByID(gomock.Any(), job.JobID).Return(job, nil)
				svc.EXPECT().CompleteJob(gomock.Any(), job.JobID, freelancerWalletID).
					Return(&completed, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"status":"completed"`,
		},
		{
			name:           "MissingFreelancerWallet",
			jobID:          job.JobID.String(),
			body:           `{}`,
			mockSetup: func(svc *MockJobCoordinator, jobs *MockJobOwnerReader) {
				jobs.EXPECT().GetByID(gomock.Any(), job.JobID).Return(job, nil)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"error":"Invalid request body"`,
		},
		{
			name:  "ForeignJob",
			jobID: foreignJob.JobID.String(),
			body:  fmt.Sprintf(`{"freelancer_wallet_id": "%s"}`, freelancerWalletID),
			mockSetup: func(svc *MockJobCoordinator, jobs *MockJobOwnerReader) {
				jobs.EXPECT().GetByID(gomock.Any(), foreignJob.JobID).Return(foreignJob, nil)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `"error":"Not found"`,
		},
		{
			name:  "EscrowAlreadySettled",
			jobID: job.JobID.String(),
			body:  fmt.Sprintf(`{"freelancer_wallet_id": "%s"}`, freelancerWalletID),
			mockSetup: func(svc *MockJobCoordinator, jobs *MockJobOwnerReader) {
				jobs.EXPECT().GetByID(gomock.Any(), job.JobID).Return(job, nil)
				svc.EXPECT().CompleteJob(gomock.Any(), job.JobID, freelancerWalletID).
					Return(nil, services.ErrInvalidStateTransition)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   services.ErrInvalidStateTransition.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockJobCoordinator(ctrl)
			mockJobs := NewMockJobOwnerReader(ctrl)
			tt.mockSetup(mockSvc, mockJobs)

			router := chi.NewRouter()
			router.Post("/jobs/{job_id}/complete", NewCompleteJobHandler(mockSvc, mockJobs))

			target := fmt.Sprintf("/jobs/%s/complete", tt.jobID)
			req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(tt.body))
			req = req.WithContext(middlewares.WithUserID(req.Context(), clientID))
			rr := httptest.NewRecorder()

			router.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tt.expectedBody)
		})
	}
}

func TestCancelJobHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	clientID := uuid.New()
	job := activeJob(clientID, "Logo", "vector")

	tests := []struct {
		name           string
		mockSetup      func(svc *MockJobCoordinator, jobs *MockJobOwnerReader)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Success",
			mockSetup: func(svc *MockJobCoordinator, jobs *MockJobOwnerReader) {
				cancelled := *job
				cancelled.Status = models.JobStatusCancelled
				jobs.EXPECT().GetByID(gomock.Any(), job.JobID).Return(job, nil)
				svc.EXPECT().CancelJob(gomock.Any(), job.JobID).Return(&cancelled, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"status":"cancelled"`,
		},
		{
			name: "AlreadyCompleted",
			mockSetup: func(svc *MockJobCoordinator, jobs *MockJobOwnerReader) {
				jobs.EXPECT().GetByID(gomock.Any(), job.JobID).Return(job, nil)
				svc.EXPECT().CancelJob(gomock.Any(), job.JobID).
					Return(nil, services.ErrInvalidStateTransition)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   services.ErrInvalidStateTransition.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockJobCoordinator(ctrl)
			mockJobs := NewMockJobOwnerReader(ctrl)
			tt.mockSetup(mockSvc, mockJobs)

			router := chi.NewRouter()
			router.Post("/jobs/{job_id}/cancel", NewCancelJobHandler(mockSvc, mockJobs))

			target := fmt.Sprintf("/jobs/%s/cancel", job.JobID)
			req := httptest.NewRequest(http.MethodPost, target, nil)
			req = req.WithContext(middlewares.WithUserID(req.Context(), clientID))
			rr := httptest.NewRecorder()

			router.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tt.expectedBody)
		})
	}
}
