package loggers

const (
	FieldApp        = "app"
	FieldComponent  = "component"
	FieldHttpMethod = "http_method"
	FieldHttpPath   = "http_path"
	FieldHttpStatus = "http_status"

	FieldDuration   = "duration"
	FieldRequestID  = "request_id"
	FieldRunID      = "run_id"
	FieldErrorStack = "error_stack"
	FieldErrorCode  = "error_code"

	FieldFilePath    = "file_path"
	FieldLineNumber  = "line_number"
	FieldChunkIndex  = "chunk_index"
	FieldChunkSize   = "chunk_size"
	FieldCollectorID = "collector_id"
	FieldUserAgent   = "user_agent"
)
