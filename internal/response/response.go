package response

import "github.com/yourname/fittracker/internal"

type APIResponse struct {
	Data      interface{}        `json:"data,omitempty"`
	Meta      map[string]any     `json:"meta,omitempty"`
	Error     *internal.AppError `json:"error,omitempty"`
	RequestID string             `json:"request_id,omitempty"`
}

func Success(data interface{}, meta map[string]any) APIResponse {
	return APIResponse{Data: data, Meta: meta}
}

func BadRequest(msg string) APIResponse {
	return APIResponse{Error: internal.NewAppError(400, msg)}
}

func NotFound(msg string) APIResponse {
	return APIResponse{Error: internal.NewAppError(404, msg)}
}

func InternalError(msg string) APIResponse {
	return APIResponse{Error: internal.NewAppError(500, msg)}
}

func NewAppError(status int, msg string) APIResponse {
	return APIResponse{Error: internal.NewAppError(status, msg)}
}

// WithRequestID tags a response with the request's correlation ID.
func (r APIResponse) WithRequestID(id string) APIResponse {
	r.RequestID = id
	return r
}
