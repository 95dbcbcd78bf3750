package dto

import "github.com/google/uuid"

type CreateReportRequest struct {
	ContentType string `json:"content_type"`
	ContentID   string `json:"content_id"`
	Reason      string `json:"reason"`
	Description string `json:"description"`
}

type ActionReportRequest struct {
	Status     string `json:"status"`
	Resolution string `json:"resolution"`
}

type ReportCountsResponse struct {
	Pending   int `json:"pending"`
	Reviewed  int `json:"reviewed"`
	Resolved  int `json:"resolved"`
	Dismissed int `json:"dismissed"`
	Total     int `json:"total"`
}

type BlockUserRequest struct {
	BlockedID uuid.UUID `json:"blocked_id"`
}
