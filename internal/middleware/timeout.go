package middleware

import (
	"encoding/json"
	"net/http"
	"time"

	"hr-records/internal/model"
)

// Timeout cuts off handlers that outlive the configured request budget.
// The timeout body uses the same envelope as every other error response.
func Timeout(timeout time.Duration) func(http.Handler) http.Handler {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	body, _ := json.Marshal(model.Response{Success: false, Message: "request timed out"})

	return func(next http.Handler) http.Handler {
		return http.TimeoutHandler(next, timeout, string(body))
	}
}
