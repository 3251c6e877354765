package booking

import (
	"context"
	"sync"

	"barberbook/database/repository/appointment"
	"barberbook/database/repository/blocked"
	"barberbook/database/repository/catalog"
	"barberbook/database/repository/customer"
	"barberbook/models"
	"barberbook/scheduling"
	"barberbook/services/notification"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type fakeCatalog struct {
	services map[string]models.Service
	err      error // injected store failure, returned by every read
}

func (f *fakeCatalog) List(ctx context.Context) ([]models.Service, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []models.Service
	for _, s := range f.services {
		out = append(out, s)
	}
	return out, nil
}

func (f *fakeCatalog) GetByID(ctx context.Context, id string) (*models.Service, error) {
	if f.err != nil {
		return nil, f.err
	}
	s, ok := f.services[id]
	if !ok {
		return nil, catalogRepo.ErrNotFound
	}
	return &s, nil
}

func (f *fakeCatalog) Seed(ctx context.Context, services []models.Service) error {
	if len(f.services) > 0 {
		return nil
	}
	for _, s := range services {
		f.services[s.ID] = s
	}
	return nil
}

// fakeAppointments mirrors the Mongo repository's behavior, including the
// unique (date, time) constraint over active appointments.
type fakeAppointments struct {
	mu    sync.Mutex
	appts []models.Appointment
}

func (f *fakeAppointments) Insert(ctx context.Context, appt *models.Appointment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, a := range f.appts {
		if a.Date == appt.Date && a.Time == appt.Time && isActive(a.Status) && isActive(appt.Status) {
			return appointmentRepo.ErrDuplicateSlot
		}
	}
	f.appts = append(f.appts, *appt)
	return nil
}

func isActive(status string) bool {
	return status == models.StatusScheduled || status == models.StatusCompleted
}

func (f *fakeAppointments) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, a := range f.appts {
		if a.ID == id {
			out := a
			return &out, nil
		}
	}
	return nil, appointmentRepo.ErrNotFound
}

func (f *fakeAppointments) ListByDate(ctx context.Context, date, status string) ([]models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Appointment
	for _, a := range f.appts {
		if (date == "" || a.Date == date) && (status == "" || a.Status == status) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAppointments) BookedIntervals(ctx context.Context, date string) ([]models.BookedInterval, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.BookedInterval
	for _, a := range f.appts {
		if a.Date == date && isActive(a.Status) {
			out = append(out, models.BookedInterval{Time: a.Time, DurationMinutes: a.DurationMinutes})
		}
	}
	return out, nil
}

func (f *fakeAppointments) UpdateStatus(ctx context.Context, id, status string) (*models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.appts {
		if f.appts[i].ID == id {
			f.appts[i].Status = status
			out := f.appts[i]
			return &out, nil
		}
	}
	return nil, appointmentRepo.ErrNotFound
}

func (f *fakeAppointments) Delete(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.appts {
		if f.appts[i].ID == id {
			f.appts = append(f.appts[:i], f.appts[i+1:]...)
			return nil
		}
	}
	return appointmentRepo.ErrNotFound
}

func (f *fakeAppointments) CountByDateStatus(ctx context.Context, date, status string) (int64, error) {
	appts, _ := f.ListByDate(ctx, date, status)
	return int64(len(appts)), nil
}

func (f *fakeAppointments) ListMonthByStatus(ctx context.Context, month, status string) ([]models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Appointment
	for _, a := range f.appts {
		if len(a.Date) >= len(month) && a.Date[:len(month)] == month && a.Status == status {
			out = append(out, a)
		}
	}
	return out, nil
}

type fakeBlocked struct {
	mu     sync.Mutex
	blocks []models.BlockedSlot
}

func (f *fakeBlocked) InsertMany(ctx context.Context, blocks []models.BlockedSlot) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.blocks = append(f.blocks, blocks...)
	return nil
}

func (f *fakeBlocked) ListByDate(ctx context.Context, date string) ([]models.BlockedSlot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.BlockedSlot
	for _, b := range f.blocks {
		if b.Date == date {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBlocked) List(ctx context.Context) ([]models.BlockedSlot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.BlockedSlot(nil), f.blocks...), nil
}

func (f *fakeBlocked) Delete(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.blocks {
		if f.blocks[i].ID == id {
			f.blocks = append(f.blocks[:i], f.blocks[i+1:]...)
			return nil
		}
	}
	return blockedRepo.ErrNotFound
}

type fakeCustomers struct {
	mu        sync.Mutex
	customers map[string]models.Customer // by phone
}

func newFakeCustomers() *fakeCustomers {
	return &fakeCustomers{customers: make(map[string]models.Customer)}
}

func (f *fakeCustomers) UpsertByPhone(ctx context.Context, phone, fullName, email, visitDate string) (*models.Customer, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.customers[phone]
	if !ok {
		c = models.Customer{ID: uuid.New().String(), Phone: phone}
	}
	c.FullName = fullName
	if email != "" {
		c.Email = email
	}
	c.LastVisit = visitDate
	c.TotalAppointments++
	f.customers[phone] = c
	return &c, nil
}

func (f *fakeCustomers) GetByPhone(ctx context.Context, phone string) (*models.Customer, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.customers[phone]
	if !ok {
		return nil, customerRepo.ErrNotFound
	}
	return &c, nil
}

func (f *fakeCustomers) List(ctx context.Context) ([]models.Customer, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Customer
	for _, c := range f.customers {
		out = append(out, c)
	}
	return out, nil
}

func (f *fakeCustomers) Count(ctx context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.customers)), nil
}

func (f *fakeCustomers) Update(ctx context.Context, id string, patch models.CustomerPatch) (*models.Customer, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for phone, c := range f.customers {
		if c.ID == id {
			if patch.FullName != "" {
				c.FullName = patch.FullName
			}
			if patch.Email != "" {
				c.Email = patch.Email
			}
			f.customers[phone] = c
			return &c, nil
		}
	}
	return nil, customerRepo.ErrNotFound
}

func (f *fakeCustomers) Delete(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for phone, c := range f.customers {
		if c.ID == id {
			delete(f.customers, phone)
			return nil
		}
	}
	return customerRepo.ErrNotFound
}

type fakeNotifier struct {
	mu   sync.Mutex
	sent []string
	err  error
}

func (f *fakeNotifier) Notify(ctx context.Context, channel, recipient string, payload notification.Payload, locale string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, channel+":"+recipient)
	return f.err
}

const (
	haircutID = "svc-haircut" // 30 minutes
	comboID   = "svc-combo"   // 45 minutes
)

func newTestEngine() (*DefaultSchedulingEngine, *fakeAppointments, *fakeBlocked, *fakeCustomers) {
	catalog := &fakeCatalog{services: map[string]models.Service{
		haircutID: {ID: haircutID, Name: "Men's Haircut", Price: 30, DurationMinutes: 30},
		comboID:   {ID: comboID, Name: "Haircut & Beard", Price: 40, DurationMinutes: 45},
	}}
	appts := &fakeAppointments{}
	blocks := &fakeBlocked{}
	customers := newFakeCustomers()

	engine := &DefaultSchedulingEngine{
		Catalog:      catalog,
		Appointments: appts,
		Blocked:      blocks,
		Customers:    customers,
		Notifier:     &fakeNotifier{},
		Calendar: scheduling.Calendar{
			OpenMinute:    9 * 60,
			CloseMinute:   21 * 60,
			SlotInterval:  30,
			ClosedWeekday: 0, // Sunday
		},
		Logger: zap.NewNop(),
	}
	return engine, appts, blocks, customers
}
