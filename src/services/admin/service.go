package admin

import (
	"context"
	"log"
	"time"

	"Backend-Yeoun-Survey/src/models"
	"Backend-Yeoun-Survey/src/services/catalog"
)

// ResponseLister returns all stored responses, newest first.
type ResponseLister interface {
	List(ctx context.Context) ([]models.SurveyResponse, error)
}

type Service struct {
	responses ResponseLister
	cache     ReportCache
	now       func() time.Time
}

// NewService cache may be nil; the report is then always computed live.
func NewService(responses ResponseLister, cache ReportCache) *Service {
	return &Service{responses: responses, cache: cache, now: time.Now}
}

func (s *Service) Responses(ctx context.Context) ([]models.SurveyResponse, error) {
	return s.responses.List(ctx)
}

// Report returns the cached report, computing it on a miss.
func (s *Service) Report(ctx context.Context) (*models.AdminReport, error) {
	if s.cache != nil {
		cached, err := s.cache.Load(ctx)
		if err != nil {
			log.Println("⚠️ Stats cache read failed:", err)
		}
		if cached != nil {
			return cached, nil
		}
	}
	return s.Refresh(ctx)
}

// Invalidate drops the cached report so the next Report recomputes it.
func (s *Service) Invalidate(ctx context.Context) error {
	if s.cache == nil {
		return nil
	}
	return s.cache.Clear(ctx)
}

// Refresh recomputes the report from the store and caches it.
func (s *Service) Refresh(ctx context.Context) (*models.AdminReport, error) {
	responses, err := s.responses.List(ctx)
	if err != nil {
		return nil, err
	}
	active := catalog.ActiveSongs()
	report := &models.AdminReport{
		Overview:    ComputeOverview(len(active), responses),
		Songs:       ComputeSongStats(active, responses),
		GeneratedAt: s.now(),
	}
	if s.cache != nil {
		if err := s.cache.Save(ctx, report); err != nil {
			log.Println("⚠️ Stats cache write failed:", err)
		}
	}
	return report, nil
}
