package log

const (
	// Request
	FieldRequestID = "request_id"
	FieldMethod    = "method"
	FieldPath      = "path"
	FieldStatus    = "status"
	FieldLatency   = "latency_ms"
	FieldClientIP  = "client_ip"

	// ID generation
	FieldKind  = "kind"
	FieldCount = "count"

	// Service
	FieldService = "service"
)
