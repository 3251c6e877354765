// Package dashboard aggregates read-side statistics for the admin view. It
// has no invariants of its own; everything is derived from the store.
package dashboard

import (
	"context"
	"fmt"
	"time"

	"barberbook/database/repository/appointment"
	"barberbook/database/repository/catalog"
	"barberbook/database/repository/customer"
	"barberbook/models"
)

// Stats is the admin dashboard summary.
type Stats struct {
	TodayAppointments int64   `json:"today_appointments"`
	TotalCustomers    int64   `json:"total_customers"`
	MonthlyRevenue    float64 `json:"monthly_revenue"`
	TotalAppointments int     `json:"total_appointments"`
}

type Service struct {
	Catalog      catalogRepo.ServiceRepository
	Appointments appointmentRepo.AppointmentRepository
	Customers    customerRepo.CustomerRepository
}

// Stats computes today's scheduled count, the customer total, and the current
// month's completed revenue priced from the catalog.
func (s *Service) Stats(ctx context.Context, now time.Time) (*Stats, error) {
	today := now.Format("2006-01-02")
	todayCount, err := s.Appointments.CountByDateStatus(ctx, today, models.StatusScheduled)
	if err != nil {
		return nil, fmt.Errorf("failed to count today's appointments: %w", err)
	}

	customerCount, err := s.Customers.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count customers: %w", err)
	}

	month := now.Format("2006-01")
	completed, err := s.Appointments.ListMonthByStatus(ctx, month, models.StatusCompleted)
	if err != nil {
		return nil, fmt.Errorf("failed to list month appointments: %w", err)
	}

	// Price from the current catalog, not the snapshot, matching the admin
	// view's definition of revenue.
	var revenue float64
	for _, appt := range completed {
		service, err := s.Catalog.GetByID(ctx, appt.ServiceID)
		if err != nil {
			continue
		}
		revenue += service.Price
	}

	return &Stats{
		TodayAppointments: todayCount,
		TotalCustomers:    customerCount,
		MonthlyRevenue:    revenue,
		TotalAppointments: len(completed),
	}, nil
}
