package cron_feature

import (
	"context"
	"time"

	"studio-crm/internal/features/invoice"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// CronService runs the background maintenance jobs. Today that is one job:
// sweeping sent invoices past their due date into overdue.
type CronService interface {
	InitializeScheduler(ctx context.Context) error
	StopScheduler() error
}

type CronServiceImpl struct {
	InvoiceService invoice.InvoiceService
	Logger         *zap.Logger

	scheduler *cron.Cron
}

func NewCronService(invoiceService invoice.InvoiceService, logger *zap.Logger) CronService {
	return &CronServiceImpl{
		InvoiceService: invoiceService,
		Logger:         logger,
	}
}

func (s *CronServiceImpl) InitializeScheduler(ctx context.Context) error {
	s.scheduler = cron.New()

	if _, err := s.scheduler.AddFunc("@hourly", s.overdueSweep); err != nil {
		return err
	}

	s.scheduler.Start()
	s.Logger.Info("scheduler started")

	// run once on startup so a long-stopped instance catches up immediately
	go s.overdueSweep()
	return nil
}

func (s *CronServiceImpl) StopScheduler() error {
	if s.scheduler != nil {
		<-s.scheduler.Stop().Done()
	}
	return nil
}

func (s *CronServiceImpl) overdueSweep() {
	s.InvoiceService.MarkOverdue(context.Background(), time.Now())
}
