package model

type DashboardStats struct {
	TotalConsultations     int64 `json:"totalConsultations"`
	PendingConsultations   int64 `json:"pendingConsultations"`
	CompletedConsultations int64 `json:"completedConsultations"`
	TotalUsers             int64 `json:"totalUsers"`
	TotalEnquiries         int64 `json:"totalEnquiries"`
	NewEnquiries           int64 `json:"newEnquiries"`
	TotalFeedback          int64 `json:"totalFeedback"`
	UnpublishedFeedback    int64 `json:"unpublishedFeedback"`
}

type DashboardResponse struct {
	Stats DashboardStats `json:"stats"`
}
