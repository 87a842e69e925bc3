package sqlite_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/example/workdesk/internal/adapters/sqlite"
	"github.com/example/workdesk/internal/ports/secondary"
)

func TestWorkerRepository_GetByID_AssemblesPostAndDuties(t *testing.T) {
	testDB := setupTestDB(t)
	repo := sqlite.NewWorkerRepository(testDB)
	ctx := context.Background()

	postID := seedPost(t, testDB, "Plumber", "Fix leaks", "Install fixtures")
	id, err := repo.Create(ctx, &secondary.WorkerRecord{
		FullName:       "Ivan Petrov",
		Sex:            "M",
		PhoneNumber:    "555-0001",
		PassportNumber: "123456",
		PassportSeries: "4500",
		PostID:         postID,
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	got, err := repo.GetByID(ctx, id)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}

	want := &secondary.WorkerRecord{
		ID:             id,
		FullName:       "Ivan Petrov",
		Sex:            "M",
		PhoneNumber:    "555-0001",
		PassportNumber: "123456",
		PassportSeries: "4500",
		PostID:         postID,
		Post:           secondary.PostRecord{ID: postID, Title: "Plumber", Duties: []string{"Fix leaks", "Install fixtures"}},
		Balance:        0,
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %+v\nwant %+v", got, want)
	}
}

func TestWorkerRepository_DutiesHaveNoDuplicates(t *testing.T) {
	testDB := setupTestDB(t)
	repo := sqlite.NewWorkerRepository(testDB)
	ctx := context.Background()

	postID := seedPost(t, testDB, "Handyman", "Assemble", "Repair", "Paint")
	a := seedWorker(t, testDB, "Oleg Smirnov", postID, 0)
	seedWorker(t, testDB, "Second Handyman", postID, 0)

	// A second post sharing nothing must not leak duties.
	seedPost(t, testDB, "Electrician", "Wire")

	got, err := repo.GetByID(ctx, a)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	want := []string{"Assemble", "Repair", "Paint"}
	if !reflect.DeepEqual(got.Post.Duties, want) {
		t.Errorf("duties = %v, want %v", got.Post.Duties, want)
	}

	all, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 workers, got %d", len(all))
	}
	for _, w := range all {
		if !reflect.DeepEqual(w.Post.Duties, want) {
			t.Errorf("worker %d duties = %v, want %v", w.ID, w.Post.Duties, want)
		}
	}
}

func TestWorkerRepository_WorkerWithoutPostIsListed(t *testing.T) {
	testDB := setupTestDB(t)
	repo := sqlite.NewWorkerRepository(testDB)
	ctx := context.Background()

	id := seedWorker(t, testDB, "Floating Worker", 0, 10)

	all, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(all) != 1 || all[0].ID != id {
		t.Fatalf("expected worker %d in list, got %+v", id, all)
	}
	if all[0].PostID != 0 || all[0].Post.Title != "" || all[0].Post.Duties != nil {
		t.Errorf("expected empty post, got %+v", all[0].Post)
	}
	if all[0].Balance != 10 {
		t.Errorf("Balance = %v, want 10", all[0].Balance)
	}
}

func TestWorkerRepository_GetByName(t *testing.T) {
	testDB := setupTestDB(t)
	repo := sqlite.NewWorkerRepository(testDB)
	ctx := context.Background()

	anna := seedWorker(t, testDB, "Anna Sidorova", 0, 0)
	seedWorker(t, testDB, "Twin", 0, 0)
	seedWorker(t, testDB, "Twin", 0, 0)

	t.Run("unique name", func(t *testing.T) {
		got, err := repo.GetByName(ctx, "Anna Sidorova")
		if err != nil {
			t.Fatalf("GetByName failed: %v", err)
		}
		if got.ID != anna {
			t.Errorf("id = %d, want %d", got.ID, anna)
		}
	})

	t.Run("no match", func(t *testing.T) {
		_, err := repo.GetByName(ctx, "Nobody")
		if !errors.Is(err, secondary.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("collision", func(t *testing.T) {
		_, err := repo.GetByName(ctx, "Twin")
		if !errors.Is(err, secondary.ErrAmbiguous) {
			t.Errorf("expected ErrAmbiguous, got %v", err)
		}
	})
}

func TestWorkerRepository_Update(t *testing.T) {
	testDB := setupTestDB(t)
	repo := sqlite.NewWorkerRepository(testDB)
	ctx := context.Background()

	postID := seedPost(t, testDB, "Plumber", "Fix leaks")
	id, _ := repo.Create(ctx, &secondary.WorkerRecord{FullName: "Ivan", PhoneNumber: "1", PostID: postID, Balance: 5})
	before, _ := repo.GetByID(ctx, id)

	if err := repo.Update(ctx, id, secondary.WorkerUpdate{PhoneNumber: ptr("2")}); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	after, _ := repo.GetByID(ctx, id)

	before.PhoneNumber = "2"
	if !reflect.DeepEqual(before, after) {
		t.Errorf("unexpected change:\nbefore %+v\nafter  %+v", before, after)
	}

	if err := repo.Update(ctx, id, secondary.WorkerUpdate{Balance: ptr(42.5)}); err != nil {
		t.Fatalf("Update balance failed: %v", err)
	}
	after, _ = repo.GetByID(ctx, id)
	if after.Balance != 42.5 {
		t.Errorf("Balance = %v, want 42.5", after.Balance)
	}

	if err := repo.Update(ctx, 999, secondary.WorkerUpdate{Balance: ptr(1.0)}); !errors.Is(err, secondary.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestWorkerRepository_Delete(t *testing.T) {
	testDB := setupTestDB(t)
	repo := sqlite.NewWorkerRepository(testDB)
	ctx := context.Background()

	id := seedWorker(t, testDB, "Temp", 0, 0)
	if err := repo.Delete(ctx, id); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if err := repo.Delete(ctx, id); err != nil {
		t.Errorf("repeated Delete should succeed, got %v", err)
	}
	if _, err := repo.GetByID(ctx, id); !errors.Is(err, secondary.ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestWorkerRepository_Posts(t *testing.T) {
	testDB := setupTestDB(t)
	repo := sqlite.NewWorkerRepository(testDB)
	ctx := context.Background()

	plumber := seedPost(t, testDB, "Plumber", "Fix leaks", "Install fixtures")
	empty := seedPost(t, testDB, "Trainee")

	got, err := repo.GetPost(ctx, plumber)
	if err != nil {
		t.Fatalf("GetPost failed: %v", err)
	}
	if got.Title != "Plumber" || len(got.Duties) != 2 {
		t.Errorf("unexpected post: %+v", got)
	}

	posts, err := repo.ListPosts(ctx)
	if err != nil {
		t.Fatalf("ListPosts failed: %v", err)
	}
	if len(posts) != 2 {
		t.Fatalf("expected 2 posts, got %d", len(posts))
	}
	if posts[1].ID != empty || len(posts[1].Duties) != 0 {
		t.Errorf("expected trainee post without duties, got %+v", posts[1])
	}

	if _, err := repo.GetPost(ctx, 999); !errors.Is(err, secondary.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
