package controllers

type StandardResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Meta    interface{} `json:"meta,omitempty"`
	Message string      `json:"message,omitempty"`
}

type AttractionQuery struct {
	Query    string `form:"q"`
	Category string `form:"category" binding:"omitempty,oneof=all restaurant museum historical park entertainment shopping"`
}

type BookmarkQuery struct {
	SortBy string `form:"sortBy" binding:"omitempty,oneof=name distance rating"`
}

type PointsRequest struct {
	Points *int `json:"points" binding:"required"`
}

type ScanRequest struct {
	Data string `json:"data" binding:"required"`
}
