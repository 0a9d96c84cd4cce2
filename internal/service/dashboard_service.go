package service

import (
	"context"

	"golang.org/x/sync/errgroup"

	"kisanbandhu/console/internal/language"
	"kisanbandhu/console/internal/logger"
	"kisanbandhu/console/internal/repository"
	"kisanbandhu/console/internal/upstream"
)

// DashboardStats is the landing page summary.
type DashboardStats struct {
	SchemeCount       int `json:"scheme_count"`
	CropCount         int `json:"crop_count"`
	NewsCount         int `json:"news_count"`
	NotificationCount int `json:"notification_count"`
}

// DashboardService aggregates counts for the landing page.
type DashboardService interface {
	Stats(ctx context.Context) (DashboardStats, error)
}

type dashboardService struct {
	upstream upstream.Client
	history  repository.HistoryRepository
}

// NewDashboardService creates a new dashboard service.
func NewDashboardService(client upstream.Client, history repository.HistoryRepository) DashboardService {
	return &dashboardService{upstream: client, history: history}
}

// Stats fetches the counts concurrently. A failing source logs and counts
// as zero; the dashboard always renders.
func (s *dashboardService) Stats(ctx context.Context) (DashboardStats, error) {
	var stats DashboardStats

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		schemes, err := s.upstream.SchemesByLanguage(ctx, language.DefaultCode)
		if err != nil {
			logger.Warn("dashboard scheme count",
				"module", "dashboard",
				"action", "count",
				"resource", "scheme",
				"result", "failed",
				"error", err,
			)
			return nil
		}
		stats.SchemeCount = len(schemes)
		return nil
	})

	g.Go(func() error {
		crops, err := s.upstream.Crops(ctx)
		if err != nil {
			logger.Warn("dashboard crop count",
				"module", "dashboard",
				"action", "count",
				"resource", "crop",
				"result", "failed",
				"error", err,
			)
			return nil
		}
		stats.CropCount = len(crops)
		return nil
	})

	g.Go(func() error {
		page, err := s.upstream.News(ctx, language.DefaultCode, 1, 1)
		if err != nil {
			logger.Warn("dashboard news count",
				"module", "dashboard",
				"action", "count",
				"resource", "news",
				"result", "failed",
				"error", err,
			)
			return nil
		}
		stats.NewsCount = page.Total
		return nil
	})

	g.Go(func() error {
		records, err := s.history.List(ctx)
		if err != nil {
			logger.Warn("dashboard notification count",
				"module", "dashboard",
				"action", "count",
				"resource", "notification_history",
				"result", "failed",
				"error", err,
			)
			return nil
		}
		stats.NotificationCount = len(records)
		return nil
	})

	if err := g.Wait(); err != nil {
		return DashboardStats{}, err
	}
	return stats, nil
}
