package models

// ErrorResponse โครงสร้างมาตรฐานสำหรับการส่ง Error
type ErrorResponse struct {
	Status  int               `json:"status"`            // HTTP Status Code
	Message string            `json:"message"`           // localized message
	Code    string            `json:"code,omitempty"`    // machine readable cause
	Details map[string]string `json:"details,omitempty"` // per-field validation messages
}
