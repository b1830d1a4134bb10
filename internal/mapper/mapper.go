// Package mapper converts between domain models and transport DTOs.
package mapper

import (
	"task-management-service/internal/api"
	"task-management-service/internal/entities"
)

// ToProjectResponse builds the flat project projection.
func ToProjectResponse(p *entities.Project) api.ProjectResponse {
	return api.ProjectResponse{
		ID:            p.ID,
		Name:          p.Name,
		Description:   p.Description,
		OwnerID:       p.OwnerID,
		WorkItemCount: len(p.WorkItems),
	}
}

// ToProjectResponseFromSummary builds the flat projection from an owner listing row.
func ToProjectResponseFromSummary(s entities.ProjectSummary) api.ProjectResponse {
	return api.ProjectResponse{
		ID:            s.ID,
		Name:          s.Name,
		Description:   s.Description,
		OwnerID:       s.OwnerID,
		WorkItemCount: s.WorkItemCount,
	}
}

// ToProjectDetailsResponse builds the project projection with work items.
func ToProjectDetailsResponse(p *entities.Project) api.ProjectDetailsResponse {
	items := make([]api.WorkItemResponse, 0, len(p.WorkItems))
	for _, wi := range p.WorkItems {
		items = append(items, ToWorkItemResponse(wi))
	}
	return api.ProjectDetailsResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		OwnerID:     p.OwnerID,
		WorkItems:   items,
	}
}

// ToWorkItemResponse builds the flat work item projection.
func ToWorkItemResponse(wi *entities.WorkItem) api.WorkItemResponse {
	return api.WorkItemResponse{
		ID:          wi.ID,
		Title:       wi.Title,
		Description: wi.Description,
		DueDate:     wi.DueDate,
		Status:      string(wi.Status),
		Priority:    string(wi.Priority),
		ProjectID:   wi.ProjectID,
		CreatedBy:   wi.CreatedBy,
	}
}

// ToWorkItemDetailsResponse builds the work item projection with comments and
// history.
func ToWorkItemDetailsResponse(wi *entities.WorkItem) api.WorkItemDetailsResponse {
	comments := make([]api.CommentResponse, 0, len(wi.Comments))
	for _, c := range wi.Comments {
		comments = append(comments, ToCommentResponse(&c))
	}
	history := make([]api.HistoryResponse, 0, len(wi.History))
	for _, h := range wi.History {
		history = append(history, api.HistoryResponse{
			ID:         h.ID,
			Action:     h.Action,
			Timestamp:  h.Timestamp,
			ModifiedBy: h.ModifiedBy,
		})
	}
	return api.WorkItemDetailsResponse{
		WorkItemResponse: ToWorkItemResponse(wi),
		Comments:         comments,
		History:          history,
	}
}

// ToCommentResponse builds the comment projection.
func ToCommentResponse(c *entities.WorkItemComment) api.CommentResponse {
	return api.CommentResponse{
		ID:        c.ID,
		Content:   c.Content,
		AuthorID:  c.AuthorID,
		CreatedAt: c.CreatedAt,
	}
}

// ToPerformanceReportResponse builds the report projection.
func ToPerformanceReportResponse(r *entities.PerformanceReport) api.PerformanceReportResponse {
	return api.PerformanceReportResponse{
		TotalCompleted:          r.TotalCompleted,
		AverageCompletedPerUser: r.AverageCompletedPerUser,
		FromDate:                r.FromDate,
		ToDate:                  r.ToDate,
	}
}
