package pkg

const (
	HeaderTraceId   string = "X-Trace-Id"
	HeaderRequestId string = "X-Request-Id"
)

const (
	TraceId   string = "trace_id"
	RequestId string = "request_id"
)

// ChurnThreshold is the probability at or above which a customer is classified as churning.
const ChurnThreshold = 0.5

const WelcomeMessage = "Welcome to the Customer Churn Prediction API"
