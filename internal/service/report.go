package service

import (
	"context"

	"cordelia-backend/internal/domain"
	"cordelia-backend/internal/repository"
)

type reportService struct {
	store repository.Store
}

func NewReportService(store repository.Store) ReportService {
	return &reportService{store: store}
}

func (s *reportService) MonthlyRents(ctx context.Context) ([]domain.MonthlyRentStat, error) {
	return s.store.Reports().MonthlyRents(ctx)
}

func (s *reportService) TopCustomers(ctx context.Context, limit int32) ([]domain.CustomerRentStat, error) {
	if limit < 1 {
		limit = 10
	}
	return s.store.Reports().TopCustomers(ctx, limit)
}

func (s *reportService) CostsVsEarnings(ctx context.Context) ([]domain.MonthlyMoneyStat, error) {
	return s.store.Reports().CostsVsEarnings(ctx)
}

func (s *reportService) RentsByWeekday(ctx context.Context) ([]domain.WeekdayRentStat, error) {
	return s.store.Reports().RentsByWeekday(ctx)
}
