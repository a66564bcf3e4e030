package metrics

import (
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"agency-console-api/internal/domain"
)

// BusinessMetricsCollector periodically refreshes business gauges from the
// database (proposal counts per status, unread inbox size)
type BusinessMetricsCollector struct {
	db      *gorm.DB
	metrics *Metrics
	logger  *zap.Logger
	ticker  *time.Ticker
	done    chan bool
}

// NewBusinessMetricsCollector creates a new collector
func NewBusinessMetricsCollector(db *gorm.DB, metrics *Metrics, logger *zap.Logger) *BusinessMetricsCollector {
	return &BusinessMetricsCollector{
		db:      db,
		metrics: metrics,
		logger:  logger,
		ticker:  time.NewTicker(60 * time.Second),
		done:    make(chan bool),
	}
}

// Start begins collecting metrics
func (c *BusinessMetricsCollector) Start() {
	go func() {
		c.collect()

		for {
			select {
			case <-c.ticker.C:
				c.collect()
			case <-c.done:
				return
			}
		}
	}()
}

// Stop stops the collector
func (c *BusinessMetricsCollector) Stop() {
	c.ticker.Stop()
	c.done <- true
}

func (c *BusinessMetricsCollector) collect() {
	statuses := []domain.ProposalStatus{
		domain.ProposalStatusDraft,
		domain.ProposalStatusPublished,
		domain.ProposalStatusAccepted,
		domain.ProposalStatusNegotiation,
		domain.ProposalStatusRejected,
	}

	for _, status := range statuses {
		var count int64
		if err := c.db.Model(&domain.Proposal{}).Where("status = ?", status).Count(&count).Error; err != nil {
			c.logger.Warn("Failed to count proposals for metrics",
				zap.String("status", string(status)),
				zap.Error(err),
			)
			continue
		}
		c.metrics.SetProposalsByStatus(string(status), count)
	}

	var unread int64
	if err := c.db.Model(&domain.Message{}).Where("read = ?", false).Count(&unread).Error; err != nil {
		c.logger.Warn("Failed to count unread messages for metrics", zap.Error(err))
		return
	}
	c.metrics.SetMessagesUnread(unread)
}
