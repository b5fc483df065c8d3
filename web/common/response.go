package common

type ErrorResponse struct {
	Message string `json:"message"`
}

func NewErrorResponse(message string) *ErrorResponse {
	return &ErrorResponse{Message: message}
}

type SuccessResponse struct {
	Data interface{} `json:"data"`
}

func NewSuccessResponse(data interface{}) *SuccessResponse {
	return &SuccessResponse{Data: data}
}

type Pagination struct {
	Total int64 `json:"total"`
}

// ListResponse wraps collection payloads with their size. Collections are
// always returned whole; the total is informational, not a paging cursor.
type ListResponse struct {
	Data       interface{} `json:"data"`
	Pagination Pagination  `json:"pagination"`
}

func NewListResponse(data interface{}, total int64) *ListResponse {
	return &ListResponse{
		Data:       data,
		Pagination: Pagination{Total: total},
	}
}
