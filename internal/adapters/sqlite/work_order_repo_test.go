package sqlite_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/example/workdesk/internal/adapters/sqlite"
	"github.com/example/workdesk/internal/db"
	"github.com/example/workdesk/internal/ports/secondary"
)

func TestWorkOrderRepository_CreateAndGet(t *testing.T) {
	testDB := setupTestDB(t)
	repo := sqlite.NewWorkOrderRepository(testDB)
	ctx := context.Background()

	wt := seedWorkType(t, testDB, "Plumbing", 500)
	id := seedWorkOrder(t, testDB, wt, "Plumbing")

	got, err := repo.GetByID(ctx, id)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}

	want := &secondary.WorkOrderRecord{
		ID:         id,
		Label:      "Plumbing",
		WorkTypeID: wt,
		Status:     "pending",
		ClientID:   db.SentinelClientID,
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %+v, want %+v", got, want)
	}

	if _, err := repo.GetByID(ctx, id+1); !errors.Is(err, secondary.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestWorkOrderRepository_RejectsUnknownStatus(t *testing.T) {
	testDB := setupTestDB(t)
	repo := sqlite.NewWorkOrderRepository(testDB)
	wt := seedWorkType(t, testDB, "Plumbing", 500)

	_, err := repo.Create(context.Background(), &secondary.WorkOrderRecord{WorkTypeID: wt, Status: "cancelled"})
	if err == nil {
		t.Fatal("expected CHECK constraint violation")
	}
}

func TestWorkOrderRepository_RejectsUnknownWorkType(t *testing.T) {
	testDB := setupTestDB(t)
	repo := sqlite.NewWorkOrderRepository(testDB)

	_, err := repo.Create(context.Background(), &secondary.WorkOrderRecord{WorkTypeID: 42, Status: "pending"})
	if err == nil {
		t.Fatal("expected foreign key violation")
	}
}

func TestWorkOrderRepository_TimestampsRoundTrip(t *testing.T) {
	testDB := setupTestDB(t)
	repo := sqlite.NewWorkOrderRepository(testDB)
	ctx := context.Background()

	wt := seedWorkType(t, testDB, "Cleaning", 200)
	w := seedWorker(t, testDB, "Anna", 0, 0)
	id := seedWorkOrder(t, testDB, wt, "Cleaning")

	start := stamp(9, 15, 0)
	err := repo.Update(ctx, id, secondary.WorkOrderUpdate{
		Status:     ptr("in progress"),
		AssigneeID: ptr(w),
		StartTime:  start,
	})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	got, _ := repo.GetByID(ctx, id)
	if got.StartTime == nil || !got.StartTime.Equal(*start) {
		t.Errorf("StartTime = %v, want %v", got.StartTime, start)
	}
	if got.EndTime != nil {
		t.Errorf("EndTime = %v, want nil", got.EndTime)
	}

	var raw string
	if err := testDB.QueryRow("SELECT CAST(start_time AS TEXT) FROM extra_work WHERE id = ?", id).Scan(&raw); err != nil {
		t.Fatalf("raw read failed: %v", err)
	}
	if raw != "2026-02-14 09:15:00" {
		t.Errorf("stored start_time = %q, want %q", raw, "2026-02-14 09:15:00")
	}
}

func TestWorkOrderRepository_PartialUpdateLeavesOtherFields(t *testing.T) {
	testDB := setupTestDB(t)
	repo := sqlite.NewWorkOrderRepository(testDB)
	ctx := context.Background()

	wt := seedWorkType(t, testDB, "Electrical", 650)
	w := seedWorker(t, testDB, "Anna", 0, 0)
	id := seedWorkOrder(t, testDB, wt, "Electrical")
	_ = repo.Update(ctx, id, secondary.WorkOrderUpdate{
		Status:     ptr("in progress"),
		AssigneeID: ptr(w),
		StartTime:  stamp(8, 0, 0),
	})

	before, _ := repo.GetByID(ctx, id)
	if err := repo.Update(ctx, id, secondary.WorkOrderUpdate{EndTime: stamp(10, 30, 0)}); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	after, _ := repo.GetByID(ctx, id)

	if after.EndTime == nil || !after.EndTime.Equal(*stamp(10, 30, 0)) {
		t.Fatalf("EndTime = %v, want 10:30:00", after.EndTime)
	}
	before.EndTime = after.EndTime
	if !reflect.DeepEqual(before, after) {
		t.Errorf("unexpected change:\nbefore %+v\nafter  %+v", before, after)
	}

	if err := repo.Update(ctx, id+50, secondary.WorkOrderUpdate{}); err != nil {
		t.Errorf("empty update should write nothing and succeed, got %v", err)
	}
	if err := repo.Update(ctx, id+50, secondary.WorkOrderUpdate{Label: ptr("x")}); !errors.Is(err, secondary.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestWorkOrderRepository_List(t *testing.T) {
	testDB := setupTestDB(t)
	repo := sqlite.NewWorkOrderRepository(testDB)
	ctx := context.Background()

	wt := seedWorkType(t, testDB, "Furniture", 300)
	ivan := seedWorker(t, testDB, "Ivan", 0, 0)
	anna := seedWorker(t, testDB, "Anna", 0, 0)

	o1 := seedWorkOrder(t, testDB, wt, "Furniture")
	o2 := seedWorkOrder(t, testDB, wt, "Furniture")
	o3 := seedWorkOrder(t, testDB, wt, "Furniture")
	_ = repo.Update(ctx, o1, secondary.WorkOrderUpdate{AssigneeID: ptr(ivan), Status: ptr("in progress")})
	_ = repo.Update(ctx, o2, secondary.WorkOrderUpdate{AssigneeID: ptr(anna), Status: ptr("done")})
	_ = repo.Update(ctx, o3, secondary.WorkOrderUpdate{AssigneeID: ptr(ivan), Status: ptr("paid")})

	tests := []struct {
		name    string
		filters secondary.WorkOrderFilters
		wantIDs []int64
	}{
		{"no filter", secondary.WorkOrderFilters{}, []int64{o1, o2, o3}},
		{"by assignee", secondary.WorkOrderFilters{AssigneeID: ivan}, []int64{o1, o3}},
		{"by status", secondary.WorkOrderFilters{Status: "done"}, []int64{o2}},
		{"by assignee and status", secondary.WorkOrderFilters{AssigneeID: anna, Status: "paid"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orders, err := repo.List(ctx, tt.filters)
			if err != nil {
				t.Fatalf("List failed: %v", err)
			}
			var ids []int64
			for _, o := range orders {
				ids = append(ids, o.ID)
			}
			if !reflect.DeepEqual(ids, tt.wantIDs) {
				t.Errorf("ids = %v, want %v", ids, tt.wantIDs)
			}
		})
	}
}

func TestWorkOrderRepository_Delete(t *testing.T) {
	testDB := setupTestDB(t)
	repo := sqlite.NewWorkOrderRepository(testDB)
	ctx := context.Background()

	wt := seedWorkType(t, testDB, "Plumbing", 500)
	id := seedWorkOrder(t, testDB, wt, "Plumbing")

	for i := 0; i < 2; i++ {
		if err := repo.Delete(ctx, id); err != nil {
			t.Fatalf("Delete #%d failed: %v", i+1, err)
		}
	}
	orders, _ := repo.List(ctx, secondary.WorkOrderFilters{})
	if len(orders) != 0 {
		t.Errorf("expected no orders, got %d", len(orders))
	}
}

func TestWorkOrderRepository_Settle(t *testing.T) {
	testDB := setupTestDB(t)
	orders := sqlite.NewWorkOrderRepository(testDB)
	workers := sqlite.NewWorkerRepository(testDB)
	ctx := context.Background()

	wt := seedWorkType(t, testDB, "Cleaning", 200)
	w := seedWorker(t, testDB, "Anna", 0, 100)
	id := seedWorkOrder(t, testDB, wt, "Cleaning")
	_ = orders.Update(ctx, id, secondary.WorkOrderUpdate{AssigneeID: ptr(w), Status: ptr("done")})

	if err := orders.Settle(ctx, id, w, 200); err != nil {
		t.Fatalf("first Settle failed: %v", err)
	}

	worker, _ := workers.GetByID(ctx, w)
	if worker.Balance != 300 {
		t.Errorf("Balance after first settle = %v, want 300", worker.Balance)
	}
	order, _ := orders.GetByID(ctx, id)
	if order.Status != "paid" {
		t.Errorf("Status = %q, want paid", order.Status)
	}

	// A retried payment finds the order already paid and writes nothing.
	err := orders.Settle(ctx, id, w, 200)
	if !errors.Is(err, secondary.ErrTransitionConflict) {
		t.Fatalf("expected ErrTransitionConflict on retry, got %v", err)
	}
	worker, _ = workers.GetByID(ctx, w)
	if worker.Balance != 300 {
		t.Errorf("Balance after retry = %v, want 300", worker.Balance)
	}
}

func TestWorkOrderRepository_Settle_RollsBackWhenWorkerMissing(t *testing.T) {
	testDB := setupTestDB(t)
	orders := sqlite.NewWorkOrderRepository(testDB)
	ctx := context.Background()

	wt := seedWorkType(t, testDB, "Cleaning", 200)
	w := seedWorker(t, testDB, "Anna", 0, 0)
	id := seedWorkOrder(t, testDB, wt, "Cleaning")
	_ = orders.Update(ctx, id, secondary.WorkOrderUpdate{AssigneeID: ptr(w), Status: ptr("done")})

	err := orders.Settle(ctx, id, w+99, 200)
	if !errors.Is(err, secondary.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	order, _ := orders.GetByID(ctx, id)
	if order.Status != "done" {
		t.Errorf("status write should have rolled back, got %q", order.Status)
	}
}
