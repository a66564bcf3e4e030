package metrics

// IncrementProposalCreated increments the proposal creation counter
func (m *Metrics) IncrementProposalCreated() {
	m.safeExecute("IncrementProposalCreated", func() {
		m.ProposalCreatedTotal.Inc()
	})
}

// IncrementProposalAccepted increments the proposal acceptance counter
func (m *Metrics) IncrementProposalAccepted() {
	m.safeExecute("IncrementProposalAccepted", func() {
		m.ProposalAcceptedTotal.Inc()
	})
}

// IncrementTrackerCreated increments the tracker creation counter
func (m *Metrics) IncrementTrackerCreated() {
	m.safeExecute("IncrementTrackerCreated", func() {
		m.TrackerCreatedTotal.Inc()
	})
}

// IncrementTrackerDeleted increments the tracker deletion counter
func (m *Metrics) IncrementTrackerDeleted() {
	m.safeExecute("IncrementTrackerDeleted", func() {
		m.TrackerDeletedTotal.Inc()
	})
}

// IncrementEmailSent increments the sent counter for an email kind
func (m *Metrics) IncrementEmailSent(kind string) {
	m.safeExecute("IncrementEmailSent", func() {
		m.EmailsSentTotal.WithLabelValues(kind).Inc()
	})
}

// IncrementEmailFailed increments the failure counter for an email kind
func (m *Metrics) IncrementEmailFailed(kind string) {
	m.safeExecute("IncrementEmailFailed", func() {
		m.EmailsFailedTotal.WithLabelValues(kind).Inc()
	})
}

// IncrementAIRetry increments the generative content retry counter
func (m *Metrics) IncrementAIRetry() {
	m.safeExecute("IncrementAIRetry", func() {
		m.AIGenerationRetries.Inc()
	})
}

// IncrementVaultVerify increments the vault verification counter with a result label
func (m *Metrics) IncrementVaultVerify(result string) {
	m.safeExecute("IncrementVaultVerify", func() {
		m.VaultVerifyTotal.WithLabelValues(result).Inc()
	})
}

// SetProposalsByStatus sets the per-status proposal gauge
func (m *Metrics) SetProposalsByStatus(status string, count int64) {
	m.safeExecute("SetProposalsByStatus", func() {
		m.ProposalsByStatus.WithLabelValues(status).Set(float64(count))
	})
}

// SetMessagesUnread sets the unread contact message gauge
func (m *Metrics) SetMessagesUnread(count int64) {
	m.safeExecute("SetMessagesUnread", func() {
		m.MessagesUnread.Set(float64(count))
	})
}
