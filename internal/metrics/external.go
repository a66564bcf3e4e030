package metrics

import "time"

// Collaborator names used as metric labels
const (
	CollaboratorAI   = "ai"
	CollaboratorS3   = "s3"
	CollaboratorSMTP = "smtp"
)

// RecordExternalRequest records an external collaborator request
func (m *Metrics) RecordExternalRequest(collaborator, operation string, statusCode int, duration time.Duration) {
	m.safeExecute("RecordExternalRequest", func() {
		status := categorizeStatus(statusCode)
		m.ExternalRequestsTotal.WithLabelValues(collaborator, operation, status).Inc()
		m.ExternalRequestDuration.WithLabelValues(collaborator, status).Observe(duration.Seconds())
	})
}

// RecordExternalError records an external collaborator error
func (m *Metrics) RecordExternalError(collaborator, errorType string) {
	m.safeExecute("RecordExternalError", func() {
		m.ExternalErrors.WithLabelValues(collaborator, errorType).Inc()
	})
}
