package http

import (
	"net/http"

	"github.com/cmlabs-hris/hris-records-go/internal/domain/candidate"
	"github.com/cmlabs-hris/hris-records-go/internal/domain/hiringstage"
	"github.com/cmlabs-hris/hris-records-go/internal/domain/jobposting"
	"github.com/cmlabs-hris/hris-records-go/internal/handler/http/response"
)

type RecruitmentHandler interface {
	// Candidates
	ListCandidates(w http.ResponseWriter, r *http.Request)
	GetCandidate(w http.ResponseWriter, r *http.Request)
	CreateCandidate(w http.ResponseWriter, r *http.Request)
	UpdateCandidate(w http.ResponseWriter, r *http.Request)
	DeleteCandidate(w http.ResponseWriter, r *http.Request)

	// Job postings
	ListJobPostings(w http.ResponseWriter, r *http.Request)
	GetJobPosting(w http.ResponseWriter, r *http.Request)
	CreateJobPosting(w http.ResponseWriter, r *http.Request)
	UpdateJobPosting(w http.ResponseWriter, r *http.Request)
	DeleteJobPosting(w http.ResponseWriter, r *http.Request)

	// Hiring stages
	ListHiringStages(w http.ResponseWriter, r *http.Request)
	GetHiringStage(w http.ResponseWriter, r *http.Request)
	CreateHiringStage(w http.ResponseWriter, r *http.Request)
	UpdateHiringStage(w http.ResponseWriter, r *http.Request)
	DeleteHiringStage(w http.ResponseWriter, r *http.Request)
}

type recruitmentHandlerImpl struct {
	candidateService   candidate.CandidateService
	jobPostingService  jobposting.JobPostingService
	hiringStageService hiringstage.HiringStageService
}

func NewRecruitmentHandler(
	candidateService candidate.CandidateService,
	jobPostingService jobposting.JobPostingService,
	hiringStageService hiringstage.HiringStageService,
) RecruitmentHandler {
	return &recruitmentHandlerImpl{
		candidateService:   candidateService,
		jobPostingService:  jobPostingService,
		hiringStageService: hiringStageService,
	}
}

// ========== CANDIDATES ==========

func (h *recruitmentHandlerImpl) ListCandidates(w http.ResponseWriter, r *http.Request) {
	q := newQueryParams(r)
	filter := candidate.CandidateFilter{
		Search:               q.String("search"),
		JobPostingID:         q.Int64("job_posting_id"),
		CurrentHiringStageID: q.Int64("current_hiring_stage_id"),
		Status:               q.String("status"),
		IsActive:             q.String("is_active"),
		AppliedDateFrom:      q.String("applied_date_from"),
		AppliedDateTo:        q.String("applied_date_to"),
	}
	filter.Page, filter.Limit = q.Page()
	if err := q.Err(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.candidateService.ListCandidates(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.List(w, result.Candidates, result.Meta, result.Stats)
}

func (h *recruitmentHandlerImpl) GetCandidate(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}

	result, err := h.candidateService.GetCandidate(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *recruitmentHandlerImpl) CreateCandidate(w http.ResponseWriter, r *http.Request) {
	var req candidate.CreateCandidateRequest
	if !decodeBody(w, r, &req) {
		return
	}

	result, err := h.candidateService.CreateCandidate(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Candidate created successfully", result)
}

func (h *recruitmentHandlerImpl) UpdateCandidate(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}

	var req candidate.UpdateCandidateRequest
	if !decodeBody(w, r, &req) {
		return
	}
	req.ID = id

	result, err := h.candidateService.UpdateCandidate(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Candidate updated successfully", result)
}

func (h *recruitmentHandlerImpl) DeleteCandidate(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}

	if err := h.candidateService.DeleteCandidate(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Candidate deleted successfully", nil)
}

// ========== JOB POSTINGS ==========

func (h *recruitmentHandlerImpl) ListJobPostings(w http.ResponseWriter, r *http.Request) {
	q := newQueryParams(r)
	filter := jobposting.JobPostingFilter{
		Search:         q.String("search"),
		DepartmentID:   q.Int64("department_id"),
		Status:         q.String("status"),
		IsActive:       q.String("is_active"),
		PostedDateFrom: q.String("posted_date_from"),
		PostedDateTo:   q.String("posted_date_to"),
	}
	filter.Page, filter.Limit = q.Page()
	if err := q.Err(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.jobPostingService.ListJobPostings(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.List(w, result.JobPostings, result.Meta, result.Stats)
}

func (h *recruitmentHandlerImpl) GetJobPosting(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}

	result, err := h.jobPostingService.GetJobPosting(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *recruitmentHandlerImpl) CreateJobPosting(w http.ResponseWriter, r *http.Request) {
	var req jobposting.CreateJobPostingRequest
	if !decodeBody(w, r, &req) {
		return
	}

	result, err := h.jobPostingService.CreateJobPosting(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Job posting created successfully", result)
}

func (h *recruitmentHandlerImpl) UpdateJobPosting(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}

	var req jobposting.UpdateJobPostingRequest
	if !decodeBody(w, r, &req) {
		return
	}
	req.ID = id

	result, err := h.jobPostingService.UpdateJobPosting(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Job posting updated successfully", result)
}

func (h *recruitmentHandlerImpl) DeleteJobPosting(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}

	if err := h.jobPostingService.DeleteJobPosting(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Job posting deleted successfully", nil)
}

// ========== HIRING STAGES ==========

func (h *recruitmentHandlerImpl) ListHiringStages(w http.ResponseWriter, r *http.Request) {
	q := newQueryParams(r)
	filter := hiringstage.HiringStageFilter{
		Search:   q.String("search"),
		IsActive: q.String("is_active"),
	}
	filter.Page, filter.Limit = q.Page()
	if err := q.Err(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.hiringStageService.ListHiringStages(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.List(w, result.HiringStages, result.Meta, result.Stats)
}

func (h *recruitmentHandlerImpl) GetHiringStage(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}

	result, err := h.hiringStageService.GetHiringStage(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *recruitmentHandlerImpl) CreateHiringStage(w http.ResponseWriter, r *http.Request) {
	var req hiringstage.CreateHiringStageRequest
	if !decodeBody(w, r, &req) {
		return
	}

	result, err := h.hiringStageService.CreateHiringStage(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Hiring stage created successfully", result)
}

func (h *recruitmentHandlerImpl) UpdateHiringStage(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}

	var req hiringstage.UpdateHiringStageRequest
	if !decodeBody(w, r, &req) {
		return
	}
	req.ID = id

	result, err := h.hiringStageService.UpdateHiringStage(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Hiring stage updated successfully", result)
}

func (h *recruitmentHandlerImpl) DeleteHiringStage(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}

	if err := h.hiringStageService.DeleteHiringStage(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Hiring stage deleted successfully", nil)
}
