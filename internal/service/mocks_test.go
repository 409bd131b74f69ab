package service

import (
	"context"
	"sort"
	"time"

	"github.com/jdvanegasm/proticket/internal/domain"
	"github.com/jdvanegasm/proticket/internal/repository"
)

// MockOrganizerRepository is an in-memory OrganizerRepository
type MockOrganizerRepository struct {
	organizers map[int64]*domain.Organizer
	nextID     int64
	createErr  error
	updateErr  error
}

func NewMockOrganizerRepository() *MockOrganizerRepository {
	return &MockOrganizerRepository{
		organizers: make(map[int64]*domain.Organizer),
		nextID:     1,
	}
}

func (m *MockOrganizerRepository) Create(ctx context.Context, organizer *domain.Organizer) error {
	if m.createErr != nil {
		return m.createErr
	}
	organizer.ID = m.nextID
	organizer.CreatedAt = time.Now()
	m.nextID++
	m.organizers[organizer.ID] = organizer
	return nil
}

func (m *MockOrganizerRepository) GetByID(ctx context.Context, id int64) (*domain.Organizer, error) {
	organizer, ok := m.organizers[id]
	if !ok {
		return nil, domain.ErrOrganizerNotFound
	}
	return organizer, nil
}

func (m *MockOrganizerRepository) GetByUserID(ctx context.Context, userID string) (*domain.Organizer, error) {
	for _, o := range m.organizers {
		if o.UserID == userID {
			return o, nil
		}
	}
	return nil, nil
}

func (m *MockOrganizerRepository) List(ctx context.Context, limit, offset int) ([]*domain.Organizer, error) {
	ids := make([]int64, 0, len(m.organizers))
	for id := range m.organizers {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	organizers := make([]*domain.Organizer, 0)
	for i, id := range ids {
		if i < offset {
			continue
		}
		if len(organizers) >= limit {
			break
		}
		organizers = append(organizers, m.organizers[id])
	}
	return organizers, nil
}

func (m *MockOrganizerRepository) Update(ctx context.Context, organizer *domain.Organizer) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	if _, ok := m.organizers[organizer.ID]; !ok {
		return domain.ErrOrganizerNotFound
	}
	m.organizers[organizer.ID] = organizer
	return nil
}

func (m *MockOrganizerRepository) Delete(ctx context.Context, id int64) error {
	if _, ok := m.organizers[id]; !ok {
		return domain.ErrOrganizerNotFound
	}
	delete(m.organizers, id)
	return nil
}

func (m *MockOrganizerRepository) AddOrganizer(organizer *domain.Organizer) {
	if organizer.ID == 0 {
		organizer.ID = m.nextID
		m.nextID++
	}
	m.organizers[organizer.ID] = organizer
}

// MockEventRepository is an in-memory EventRepository
type MockEventRepository struct {
	events    map[int64]*domain.Event
	stats     map[int64]*domain.EventStats
	nextID    int64
	createErr error
	updateErr error
	statsErr  error
}

func NewMockEventRepository() *MockEventRepository {
	return &MockEventRepository{
		events: make(map[int64]*domain.Event),
		stats:  make(map[int64]*domain.EventStats),
		nextID: 1,
	}
}

func (m *MockEventRepository) Create(ctx context.Context, event *domain.Event) error {
	if m.createErr != nil {
		return m.createErr
	}
	event.ID = m.nextID
	event.CreatedAt = time.Now()
	m.nextID++
	m.events[event.ID] = event
	return nil
}

func (m *MockEventRepository) GetByID(ctx context.Context, id int64) (*domain.Event, error) {
	event, ok := m.events[id]
	if !ok {
		return nil, domain.ErrEventNotFound
	}
	return event, nil
}

func (m *MockEventRepository) List(ctx context.Context) ([]*domain.Event, error) {
	ids := make([]int64, 0, len(m.events))
	for id := range m.events {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	events := make([]*domain.Event, 0, len(ids))
	for _, id := range ids {
		events = append(events, m.events[id])
	}
	return events, nil
}

func (m *MockEventRepository) ListByCreator(ctx context.Context, creatorUserID string) ([]*domain.Event, error) {
	events := make([]*domain.Event, 0)
	for _, e := range m.events {
		if e.CreatorUserID == creatorUserID {
			events = append(events, e)
		}
	}
	return events, nil
}

func (m *MockEventRepository) Update(ctx context.Context, event *domain.Event) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	if _, ok := m.events[event.ID]; !ok {
		return domain.ErrEventNotFound
	}
	m.events[event.ID] = event
	return nil
}

func (m *MockEventRepository) Delete(ctx context.Context, id int64) error {
	if _, ok := m.events[id]; !ok {
		return domain.ErrEventNotFound
	}
	delete(m.events, id)
	return nil
}

func (m *MockEventRepository) Stats(ctx context.Context, eventID int64) (*domain.EventStats, error) {
	if m.statsErr != nil {
		return nil, m.statsErr
	}
	if stats, ok := m.stats[eventID]; ok {
		return &domain.EventStats{
			TicketsSold: stats.TicketsSold,
			Revenue:     stats.Revenue,
		}, nil
	}
	return &domain.EventStats{}, nil
}

func (m *MockEventRepository) StatsForEvents(ctx context.Context, eventIDs []int64) (map[int64]*domain.EventStats, error) {
	if m.statsErr != nil {
		return nil, m.statsErr
	}
	result := make(map[int64]*domain.EventStats)
	for _, id := range eventIDs {
		if stats, ok := m.stats[id]; ok {
			result[id] = &domain.EventStats{
				TicketsSold: stats.TicketsSold,
				Revenue:     stats.Revenue,
			}
		}
	}
	return result, nil
}

func (m *MockEventRepository) AddEvent(event *domain.Event) {
	if event.ID == 0 {
		event.ID = m.nextID
		m.nextID++
	}
	m.events[event.ID] = event
}

func (m *MockEventRepository) SetStats(eventID int64, stats *domain.EventStats) {
	m.stats[eventID] = stats
}

// MockOrderRepository is an in-memory OrderRepository. Create enforces the
// same capacity contract as the SQL implementation: the sum of ALL existing
// order quantities plus the new one must fit the event's capacity.
type MockOrderRepository struct {
	events    *MockEventRepository
	orders    map[int64]*domain.Order
	nextID    int64
	createErr error
}

func NewMockOrderRepository(events *MockEventRepository) *MockOrderRepository {
	return &MockOrderRepository{
		events: events,
		orders: make(map[int64]*domain.Order),
		nextID: 1,
	}
}

func (m *MockOrderRepository) Create(ctx context.Context, order *domain.Order) error {
	if m.createErr != nil {
		return m.createErr
	}

	event, ok := m.events.events[order.EventID]
	if !ok {
		return domain.ErrEventNotFound
	}

	sold := 0
	for _, o := range m.orders {
		if o.EventID == order.EventID {
			sold += o.Quantity
		}
	}
	if event.Capacity != nil && sold+order.Quantity > *event.Capacity {
		return domain.ErrCapacityExceeded
	}

	order.ID = m.nextID
	order.TotalPrice = event.Price * float64(order.Quantity)
	order.CreatedAt = time.Now()
	m.nextID++
	m.orders[order.ID] = order
	return nil
}

func (m *MockOrderRepository) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	order, ok := m.orders[id]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	return order, nil
}

func (m *MockOrderRepository) ListByBuyer(ctx context.Context, buyerID string) ([]*domain.Order, error) {
	orders := make([]*domain.Order, 0)
	for _, o := range m.orders {
		if o.BuyerID == buyerID {
			orders = append(orders, o)
		}
	}
	return orders, nil
}

func (m *MockOrderRepository) ListByOrganizer(ctx context.Context, creatorUserID string) ([]*domain.OrganizerOrder, error) {
	orders := make([]*domain.OrganizerOrder, 0)
	for _, o := range m.orders {
		event, ok := m.events.events[o.EventID]
		if !ok || event.CreatorUserID != creatorUserID {
			continue
		}
		orders = append(orders, &domain.OrganizerOrder{
			Order:      *o,
			EventTitle: event.Title,
		})
	}
	return orders, nil
}

func (m *MockOrderRepository) UpdateStatus(ctx context.Context, id int64, status domain.OrderStatus) error {
	order, ok := m.orders[id]
	if !ok {
		return domain.ErrOrderNotFound
	}
	order.Status = status
	return nil
}

func (m *MockOrderRepository) AddOrder(order *domain.Order) {
	if order.ID == 0 {
		order.ID = m.nextID
		m.nextID++
	}
	m.orders[order.ID] = order
}

// MockPaymentRepository is an in-memory PaymentRepository
type MockPaymentRepository struct {
	payments  map[string]*domain.Payment
	createErr error
}

func NewMockPaymentRepository() *MockPaymentRepository {
	return &MockPaymentRepository{
		payments: make(map[string]*domain.Payment),
	}
}

func (m *MockPaymentRepository) Create(ctx context.Context, payment *domain.Payment) error {
	if m.createErr != nil {
		return m.createErr
	}
	for _, p := range m.payments {
		if p.ProviderTxnID == payment.ProviderTxnID {
			return domain.ErrDuplicateProviderTxn
		}
	}
	payment.CreatedAt = time.Now()
	payment.UpdatedAt = payment.CreatedAt
	m.payments[payment.ID] = payment
	return nil
}

func (m *MockPaymentRepository) GetByID(ctx context.Context, id string) (*domain.Payment, error) {
	payment, ok := m.payments[id]
	if !ok {
		return nil, domain.ErrPaymentNotFound
	}
	return payment, nil
}

func (m *MockPaymentRepository) GetByProviderTxnID(ctx context.Context, providerTxnID string) (*domain.Payment, error) {
	for _, p := range m.payments {
		if p.ProviderTxnID == providerTxnID {
			return p, nil
		}
	}
	return nil, nil
}

func (m *MockPaymentRepository) UpdateStatus(ctx context.Context, id string, status domain.PaymentStatus) error {
	payment, ok := m.payments[id]
	if !ok {
		return domain.ErrPaymentNotFound
	}
	payment.Status = status
	payment.UpdatedAt = time.Now()
	return nil
}

// MockTicketRepository is an in-memory TicketRepository
type MockTicketRepository struct {
	tickets   map[string]*domain.Ticket
	createErr error
}

func NewMockTicketRepository() *MockTicketRepository {
	return &MockTicketRepository{
		tickets: make(map[string]*domain.Ticket),
	}
}

func (m *MockTicketRepository) Create(ctx context.Context, ticket *domain.Ticket) error {
	if m.createErr != nil {
		return m.createErr
	}
	ticket.IssuedAt = time.Now()
	m.tickets[ticket.ID] = ticket
	return nil
}

func (m *MockTicketRepository) GetByID(ctx context.Context, id string) (*domain.Ticket, error) {
	ticket, ok := m.tickets[id]
	if !ok {
		return nil, domain.ErrTicketNotFound
	}
	return ticket, nil
}

func (m *MockTicketRepository) ListByOrder(ctx context.Context, orderID int64) ([]*domain.Ticket, error) {
	tickets := make([]*domain.Ticket, 0)
	for _, t := range m.tickets {
		if t.OrderID == orderID {
			tickets = append(tickets, t)
		}
	}
	return tickets, nil
}

func (m *MockTicketRepository) GetByCode(ctx context.Context, code string) (*domain.Ticket, error) {
	for _, t := range m.tickets {
		if t.TicketCode == code {
			return t, nil
		}
	}
	return nil, domain.ErrTicketNotFound
}

// Interface checks
var (
	_ repository.OrganizerRepository = (*MockOrganizerRepository)(nil)
	_ repository.EventRepository     = (*MockEventRepository)(nil)
	_ repository.OrderRepository     = (*MockOrderRepository)(nil)
	_ repository.PaymentRepository   = (*MockPaymentRepository)(nil)
	_ repository.TicketRepository    = (*MockTicketRepository)(nil)
)
