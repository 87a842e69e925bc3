package app

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/example/workdesk/internal/logging"
	"github.com/example/workdesk/internal/ports/secondary"
)

// ============================================================================
// Mock Implementations
// ============================================================================

// Ensure mocks implement the interfaces
var (
	_ secondary.ClientRepository    = (*mockClientRepository)(nil)
	_ secondary.WorkTypeRepository  = (*mockWorkTypeRepository)(nil)
	_ secondary.WorkerRepository    = (*mockWorkerRepository)(nil)
	_ secondary.WorkOrderRepository = (*mockWorkOrderRepository)(nil)
)

// mockClientRepository implements secondary.ClientRepository for testing.
type mockClientRepository struct {
	clients   map[int64]*secondary.ClientRecord
	nextID    int64
	createErr error
	getErr    error
}

func newMockClientRepository() *mockClientRepository {
	return &mockClientRepository{
		clients: map[int64]*secondary.ClientRecord{
			0: {ID: 0, FirstName: "Walk-in", LastName: "Customer"},
		},
		nextID: 1,
	}
}

func (m *mockClientRepository) EnsureSchema(ctx context.Context) error { return nil }

func (m *mockClientRepository) Create(ctx context.Context, client *secondary.ClientRecord) (int64, error) {
	if m.createErr != nil {
		return 0, m.createErr
	}
	c := *client
	if c.ID == 0 {
		c.ID = m.nextID
		m.nextID++
	}
	if _, ok := m.clients[c.ID]; ok {
		return 0, fmt.Errorf("UNIQUE constraint failed: client.id")
	}
	m.clients[c.ID] = &c
	return c.ID, nil
}

func (m *mockClientRepository) GetByID(ctx context.Context, id int64) (*secondary.ClientRecord, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	if c, ok := m.clients[id]; ok {
		cp := *c
		return &cp, nil
	}
	return nil, fmt.Errorf("client %d %w", id, secondary.ErrNotFound)
}

func (m *mockClientRepository) List(ctx context.Context) ([]*secondary.ClientRecord, error) {
	ids := make([]int64, 0, len(m.clients))
	for id := range m.clients {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	var out []*secondary.ClientRecord
	for _, id := range ids {
		cp := *m.clients[id]
		out = append(out, &cp)
	}
	return out, nil
}

func (m *mockClientRepository) Update(ctx context.Context, id int64, update secondary.ClientUpdate) error {
	if update.Empty() {
		return nil
	}
	c, ok := m.clients[id]
	if !ok {
		return fmt.Errorf("client %d %w", id, secondary.ErrNotFound)
	}
	if update.FirstName != nil {
		c.FirstName = *update.FirstName
	}
	if update.LastName != nil {
		c.LastName = *update.LastName
	}
	if update.PhoneNumber != nil {
		c.PhoneNumber = *update.PhoneNumber
	}
	return nil
}

func (m *mockClientRepository) Delete(ctx context.Context, id int64) error {
	delete(m.clients, id)
	return nil
}

// mockWorkTypeRepository implements secondary.WorkTypeRepository for testing.
type mockWorkTypeRepository struct {
	workTypes map[int64]*secondary.WorkTypeRecord
	nextID    int64
	createErr error
	getErr    error
}

func newMockWorkTypeRepository() *mockWorkTypeRepository {
	return &mockWorkTypeRepository{
		workTypes: make(map[int64]*secondary.WorkTypeRecord),
		nextID:    1,
	}
}

func (m *mockWorkTypeRepository) EnsureSchema(ctx context.Context) error { return nil }

func (m *mockWorkTypeRepository) Create(ctx context.Context, workType *secondary.WorkTypeRecord) (int64, error) {
	if m.createErr != nil {
		return 0, m.createErr
	}
	wt := *workType
	wt.ID = m.nextID
	m.nextID++
	m.workTypes[wt.ID] = &wt
	return wt.ID, nil
}

func (m *mockWorkTypeRepository) GetByID(ctx context.Context, id int64) (*secondary.WorkTypeRecord, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	if wt, ok := m.workTypes[id]; ok {
		cp := *wt
		return &cp, nil
	}
	return nil, fmt.Errorf("work type %d %w", id, secondary.ErrNotFound)
}

func (m *mockWorkTypeRepository) GetByLabel(ctx context.Context, label string) (*secondary.WorkTypeRecord, error) {
	for id := int64(1); id < m.nextID; id++ {
		if wt, ok := m.workTypes[id]; ok && wt.Label == label {
			cp := *wt
			return &cp, nil
		}
	}
	return nil, fmt.Errorf("work type %q %w", label, secondary.ErrNotFound)
}

func (m *mockWorkTypeRepository) List(ctx context.Context) ([]*secondary.WorkTypeRecord, error) {
	var out []*secondary.WorkTypeRecord
	for id := int64(1); id < m.nextID; id++ {
		if wt, ok := m.workTypes[id]; ok {
			cp := *wt
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (m *mockWorkTypeRepository) Update(ctx context.Context, id int64, update secondary.WorkTypeUpdate) error {
	if update.Empty() {
		return nil
	}
	wt, ok := m.workTypes[id]
	if !ok {
		return fmt.Errorf("work type %d %w", id, secondary.ErrNotFound)
	}
	if update.Description != nil {
		wt.Description = *update.Description
	}
	if update.Payment != nil {
		wt.Payment = *update.Payment
	}
	if update.Label != nil {
		wt.Label = *update.Label
	}
	return nil
}

func (m *mockWorkTypeRepository) Delete(ctx context.Context, id int64) error {
	delete(m.workTypes, id)
	return nil
}

func (m *mockWorkTypeRepository) Clear(ctx context.Context) error {
	m.workTypes = make(map[int64]*secondary.WorkTypeRecord)
	return nil
}

// mockWorkerRepository implements secondary.WorkerRepository for testing.
type mockWorkerRepository struct {
	workers    map[int64]*secondary.WorkerRecord
	posts      map[int64]*secondary.PostRecord
	nextID     int64
	nextPostID int64
	getErr     error
}

func newMockWorkerRepository() *mockWorkerRepository {
	return &mockWorkerRepository{
		workers:    make(map[int64]*secondary.WorkerRecord),
		posts:      make(map[int64]*secondary.PostRecord),
		nextID:     1,
		nextPostID: 1,
	}
}

func (m *mockWorkerRepository) EnsureSchema(ctx context.Context) error { return nil }

func (m *mockWorkerRepository) Create(ctx context.Context, worker *secondary.WorkerRecord) (int64, error) {
	w := *worker
	w.ID = m.nextID
	m.nextID++
	m.workers[w.ID] = &w
	return w.ID, nil
}

func (m *mockWorkerRepository) materialise(w *secondary.WorkerRecord) *secondary.WorkerRecord {
	cp := *w
	if p, ok := m.posts[w.PostID]; ok {
		cp.Post = *p
	}
	return &cp
}

func (m *mockWorkerRepository) GetByID(ctx context.Context, id int64) (*secondary.WorkerRecord, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	if w, ok := m.workers[id]; ok {
		return m.materialise(w), nil
	}
	return nil, fmt.Errorf("worker %d %w", id, secondary.ErrNotFound)
}

func (m *mockWorkerRepository) GetByName(ctx context.Context, fullName string) (*secondary.WorkerRecord, error) {
	var found []*secondary.WorkerRecord
	for id := int64(1); id < m.nextID; id++ {
		if w, ok := m.workers[id]; ok && w.FullName == fullName {
			found = append(found, m.materialise(w))
		}
	}
	switch len(found) {
	case 0:
		return nil, fmt.Errorf("worker %q %w", fullName, secondary.ErrNotFound)
	case 1:
		return found[0], nil
	}
	return nil, fmt.Errorf("worker name %q: %w", fullName, secondary.ErrAmbiguous)
}

func (m *mockWorkerRepository) List(ctx context.Context) ([]*secondary.WorkerRecord, error) {
	var out []*secondary.WorkerRecord
	for id := int64(1); id < m.nextID; id++ {
		if w, ok := m.workers[id]; ok {
			out = append(out, m.materialise(w))
		}
	}
	return out, nil
}

func (m *mockWorkerRepository) Update(ctx context.Context, id int64, update secondary.WorkerUpdate) error {
	if update.Empty() {
		return nil
	}
	w, ok := m.workers[id]
	if !ok {
		return fmt.Errorf("worker %d %w", id, secondary.ErrNotFound)
	}
	if update.FullName != nil {
		w.FullName = *update.FullName
	}
	if update.PhoneNumber != nil {
		w.PhoneNumber = *update.PhoneNumber
	}
	if update.PostID != nil {
		w.PostID = *update.PostID
	}
	if update.Balance != nil {
		w.Balance = *update.Balance
	}
	return nil
}

func (m *mockWorkerRepository) Delete(ctx context.Context, id int64) error {
	delete(m.workers, id)
	return nil
}

func (m *mockWorkerRepository) CreatePost(ctx context.Context, title string, duties []string) (int64, error) {
	id := m.nextPostID
	m.nextPostID++
	m.posts[id] = &secondary.PostRecord{ID: id, Title: title, Duties: append([]string{}, duties...)}
	return id, nil
}

func (m *mockWorkerRepository) GetPost(ctx context.Context, id int64) (*secondary.PostRecord, error) {
	if p, ok := m.posts[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, fmt.Errorf("post %d %w", id, secondary.ErrNotFound)
}

func (m *mockWorkerRepository) ListPosts(ctx context.Context) ([]*secondary.PostRecord, error) {
	var out []*secondary.PostRecord
	for id := int64(1); id < m.nextPostID; id++ {
		if p, ok := m.posts[id]; ok {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

// mockWorkOrderRepository implements secondary.WorkOrderRepository for testing.
// Settle credits balances on the linked worker mock.
type mockWorkOrderRepository struct {
	orders      map[int64]*secondary.WorkOrderRecord
	nextID      int64
	workers     *mockWorkerRepository
	createErr   error
	updateErr   error
	listErr     error
	settleErr   error
	updateCalls int
	settleCalls int
}

func newMockWorkOrderRepository(workers *mockWorkerRepository) *mockWorkOrderRepository {
	return &mockWorkOrderRepository{
		orders:  make(map[int64]*secondary.WorkOrderRecord),
		nextID:  1,
		workers: workers,
	}
}

func (m *mockWorkOrderRepository) EnsureSchema(ctx context.Context) error { return nil }

func (m *mockWorkOrderRepository) Create(ctx context.Context, order *secondary.WorkOrderRecord) (int64, error) {
	if m.createErr != nil {
		return 0, m.createErr
	}
	o := *order
	o.ID = m.nextID
	m.nextID++
	m.orders[o.ID] = &o
	return o.ID, nil
}

func (m *mockWorkOrderRepository) GetByID(ctx context.Context, id int64) (*secondary.WorkOrderRecord, error) {
	if o, ok := m.orders[id]; ok {
		cp := *o
		return &cp, nil
	}
	return nil, fmt.Errorf("work order %d %w", id, secondary.ErrNotFound)
}

func (m *mockWorkOrderRepository) List(ctx context.Context, filters secondary.WorkOrderFilters) ([]*secondary.WorkOrderRecord, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	var out []*secondary.WorkOrderRecord
	for id := int64(1); id < m.nextID; id++ {
		o, ok := m.orders[id]
		if !ok {
			continue
		}
		if filters.AssigneeID != 0 && o.AssigneeID != filters.AssigneeID {
			continue
		}
		if filters.Status != "" && o.Status != filters.Status {
			continue
		}
		cp := *o
		out = append(out, &cp)
	}
	return out, nil
}

func (m *mockWorkOrderRepository) Update(ctx context.Context, id int64, update secondary.WorkOrderUpdate) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	if update.Empty() {
		return nil
	}
	o, ok := m.orders[id]
	if !ok {
		return fmt.Errorf("work order %d %w", id, secondary.ErrNotFound)
	}
	m.updateCalls++
	if update.Label != nil {
		o.Label = *update.Label
	}
	if update.StartTime != nil {
		t := *update.StartTime
		o.StartTime = &t
	}
	if update.EndTime != nil {
		t := *update.EndTime
		o.EndTime = &t
	}
	if update.AssigneeID != nil {
		o.AssigneeID = *update.AssigneeID
	}
	if update.WorkTypeID != nil {
		o.WorkTypeID = *update.WorkTypeID
	}
	if update.Status != nil {
		o.Status = *update.Status
	}
	if update.ClientID != nil {
		o.ClientID = *update.ClientID
	}
	return nil
}

func (m *mockWorkOrderRepository) Delete(ctx context.Context, id int64) error {
	delete(m.orders, id)
	return nil
}

func (m *mockWorkOrderRepository) Settle(ctx context.Context, workOrderID, workerID int64, amount float64) error {
	m.settleCalls++
	if m.settleErr != nil {
		return m.settleErr
	}
	o, ok := m.orders[workOrderID]
	if !ok || o.Status != "done" {
		return fmt.Errorf("work order %d is no longer done: %w", workOrderID, secondary.ErrTransitionConflict)
	}
	w, ok := m.workers.workers[workerID]
	if !ok {
		return fmt.Errorf("worker %d %w", workerID, secondary.ErrNotFound)
	}
	o.Status = "paid"
	w.Balance += amount
	return nil
}

// ============================================================================
// Test Helpers
// ============================================================================

type testRepos struct {
	clients    *mockClientRepository
	workTypes  *mockWorkTypeRepository
	workers    *mockWorkerRepository
	workOrders *mockWorkOrderRepository
}

func newTestRepos() *testRepos {
	workers := newMockWorkerRepository()
	return &testRepos{
		clients:    newMockClientRepository(),
		workTypes:  newMockWorkTypeRepository(),
		workers:    workers,
		workOrders: newMockWorkOrderRepository(workers),
	}
}

// fixedNow is the clock used by work order service tests.
var fixedNow = time.Date(2026, 1, 20, 10, 0, 0, 0, time.Local)

func newTestWorkOrderService() (*WorkOrderServiceImpl, *testRepos) {
	repos := newTestRepos()
	service := NewWorkOrderService(repos.workOrders, repos.workTypes, repos.workers, repos.clients, 0, logging.Discard())
	service.now = func() time.Time { return fixedNow }
	return service, repos
}

func newTestBoardService() (*BoardServiceImpl, *testRepos) {
	repos := newTestRepos()
	return NewBoardService(repos.workOrders, repos.workers, logging.Discard()), repos
}

func (r *testRepos) addWorkType(label string, payment float64) int64 {
	id, _ := r.workTypes.Create(context.Background(), &secondary.WorkTypeRecord{
		Description: label + " work",
		Payment:     payment,
		Label:       label,
	})
	return id
}

func (r *testRepos) addWorker(name, post string, balance float64) int64 {
	var postID int64
	if post != "" {
		postID, _ = r.workers.CreatePost(context.Background(), post, nil)
	}
	id, _ := r.workers.Create(context.Background(), &secondary.WorkerRecord{FullName: name, PostID: postID, Balance: balance})
	return id
}

// addOrder stores a work order directly in the given state.
func (r *testRepos) addOrder(workTypeID int64, label, status string, assignee int64, start, end *time.Time) int64 {
	id, _ := r.workOrders.Create(context.Background(), &secondary.WorkOrderRecord{
		Label:      label,
		WorkTypeID: workTypeID,
		Status:     status,
		AssigneeID: assignee,
		StartTime:  start,
		EndTime:    end,
	})
	return id
}

func at(hour, minute, second int) *time.Time {
	t := time.Date(2026, 1, 20, hour, minute, second, 0, time.Local)
	return &t
}
