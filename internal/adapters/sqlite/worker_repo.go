package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/example/workdesk/internal/db"
	"github.com/example/workdesk/internal/ports/secondary"
)

// WorkerRepository implements secondary.WorkerRepository with SQLite.
// Reads assemble Worker -> Post -> Duties from worker, post, post_duties and duties.
type WorkerRepository struct {
	db *sql.DB
}

// NewWorkerRepository creates a new SQLite worker repository.
func NewWorkerRepository(db *sql.DB) *WorkerRepository {
	return &WorkerRepository{db: db}
}

// Workers without a post are still returned, with an empty post.
const workerSelect = `SELECT w.id, w.full_name, w.sex, w.phone_number, w.passport_number,
	w.passport_series, w.post_id, w.balance, p.title
	FROM worker w
	LEFT JOIN post p ON p.id = w.post_id`

// EnsureSchema creates the post, duties, post_duties and worker tables.
func (r *WorkerRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, db.WorkerSchemaSQL); err != nil {
		return fmt.Errorf("failed to create worker tables: %w", err)
	}
	return nil
}

// Create persists a new worker.
func (r *WorkerRepository) Create(ctx context.Context, worker *secondary.WorkerRecord) (int64, error) {
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO worker (full_name, sex, phone_number, passport_number, passport_series, post_id, balance)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		worker.FullName,
		nullString(worker.Sex),
		nullString(worker.PhoneNumber),
		nullString(worker.PassportNumber),
		nullString(worker.PassportSeries),
		nullID(worker.PostID),
		worker.Balance,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to create worker: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read worker id: %w", err)
	}
	return id, nil
}

// GetByID retrieves a worker with its post and duties.
func (r *WorkerRepository) GetByID(ctx context.Context, id int64) (*secondary.WorkerRecord, error) {
	workers, err := r.query(ctx, workerSelect+" WHERE w.id = ?", id)
	if err != nil {
		return nil, fmt.Errorf("failed to get worker: %w", err)
	}
	if len(workers) == 0 {
		return nil, fmt.Errorf("worker %d %w", id, secondary.ErrNotFound)
	}
	return workers[0], nil
}

// GetByName retrieves the only worker with the given full name.
func (r *WorkerRepository) GetByName(ctx context.Context, fullName string) (*secondary.WorkerRecord, error) {
	workers, err := r.query(ctx, workerSelect+" WHERE w.full_name = ? ORDER BY w.id LIMIT 2", fullName)
	if err != nil {
		return nil, fmt.Errorf("failed to get worker: %w", err)
	}
	switch len(workers) {
	case 0:
		return nil, fmt.Errorf("worker %q %w", fullName, secondary.ErrNotFound)
	case 1:
		return workers[0], nil
	}
	return nil, fmt.Errorf("worker name %q: %w", fullName, secondary.ErrAmbiguous)
}

// List retrieves every worker.
func (r *WorkerRepository) List(ctx context.Context) ([]*secondary.WorkerRecord, error) {
	workers, err := r.query(ctx, workerSelect+" ORDER BY w.id")
	if err != nil {
		return nil, fmt.Errorf("failed to list workers: %w", err)
	}
	return workers, nil
}

// query runs a worker select and then fills in duties. The worker rows are
// drained before duties are fetched so only one cursor is open at a time.
func (r *WorkerRepository) query(ctx context.Context, query string, args ...any) ([]*secondary.WorkerRecord, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}

	var workers []*secondary.WorkerRecord
	for rows.Next() {
		var (
			sex, phone, passportNo, passportSeries sql.NullString
			postID                                 sql.NullInt64
			balance                                sql.NullFloat64
			title                                  sql.NullString
		)

		record := &secondary.WorkerRecord{}
		err := rows.Scan(&record.ID, &record.FullName, &sex, &phone, &passportNo,
			&passportSeries, &postID, &balance, &title)
		if err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan worker: %w", err)
		}

		record.Sex = sex.String
		record.PhoneNumber = phone.String
		record.PassportNumber = passportNo.String
		record.PassportSeries = passportSeries.String
		record.Balance = balance.Float64
		if postID.Valid && title.Valid {
			record.PostID = postID.Int64
			record.Post = secondary.PostRecord{ID: postID.Int64, Title: title.String}
		}

		workers = append(workers, record)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, err
	}
	rows.Close()

	duties := make(map[int64][]string)
	for _, w := range workers {
		if w.PostID == 0 {
			continue
		}
		list, ok := duties[w.PostID]
		if !ok {
			list, err = r.duties(ctx, w.PostID)
			if err != nil {
				return nil, err
			}
			duties[w.PostID] = list
		}
		w.Post.Duties = list
	}

	return workers, nil
}

// duties returns the duty descriptions of a post, ordered by duty id, one
// entry per duty.
func (r *WorkerRepository) duties(ctx context.Context, postID int64) ([]string, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT d.description FROM post_duties pd
		JOIN duties d ON d.id = pd.duty_id
		WHERE pd.post_id = ?
		GROUP BY d.id
		ORDER BY d.id`,
		postID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load duties: %w", err)
	}
	defer rows.Close()

	duties := []string{}
	for rows.Next() {
		var description string
		if err := rows.Scan(&description); err != nil {
			return nil, fmt.Errorf("failed to scan duty: %w", err)
		}
		duties = append(duties, description)
	}
	return duties, rows.Err()
}

// Update applies the non-nil fields of update. An empty update writes nothing.
func (r *WorkerRepository) Update(ctx context.Context, id int64, update secondary.WorkerUpdate) error {
	var set setClause
	if update.FullName != nil {
		set.add("full_name", *update.FullName)
	}
	if update.Sex != nil {
		set.add("sex", *update.Sex)
	}
	if update.PhoneNumber != nil {
		set.add("phone_number", *update.PhoneNumber)
	}
	if update.PassportNumber != nil {
		set.add("passport_number", *update.PassportNumber)
	}
	if update.PassportSeries != nil {
		set.add("passport_series", *update.PassportSeries)
	}
	if update.PostID != nil {
		set.add("post_id", nullID(*update.PostID))
	}
	if update.Balance != nil {
		set.add("balance", *update.Balance)
	}
	if set.empty() {
		return nil
	}

	query, args := set.statement("worker", id)
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update worker: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("worker %d %w", id, secondary.ErrNotFound)
	}
	return nil
}

// Delete removes a worker. Missing keys are ignored.
func (r *WorkerRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM worker WHERE id = ?", id); err != nil {
		return fmt.Errorf("failed to delete worker: %w", err)
	}
	return nil
}

// CreatePost inserts a post, its duties and the join rows in one transaction.
func (r *WorkerRepository) CreatePost(ctx context.Context, title string, duties []string) (int64, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	result, err := tx.ExecContext(ctx, "INSERT INTO post (title) VALUES (?)", title)
	if err != nil {
		return 0, fmt.Errorf("failed to create post: %w", err)
	}
	postID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read post id: %w", err)
	}

	for _, description := range duties {
		result, err := tx.ExecContext(ctx, "INSERT INTO duties (description) VALUES (?)", description)
		if err != nil {
			return 0, fmt.Errorf("failed to create duty: %w", err)
		}
		dutyID, err := result.LastInsertId()
		if err != nil {
			return 0, fmt.Errorf("failed to read duty id: %w", err)
		}
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO post_duties (post_id, duty_id) VALUES (?, ?)", postID, dutyID); err != nil {
			return 0, fmt.Errorf("failed to link duty: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit post: %w", err)
	}
	return postID, nil
}

// GetPost retrieves a post with its duties.
func (r *WorkerRepository) GetPost(ctx context.Context, id int64) (*secondary.PostRecord, error) {
	record := &secondary.PostRecord{}
	err := r.db.QueryRowContext(ctx, "SELECT id, title FROM post WHERE id = ?", id).
		Scan(&record.ID, &record.Title)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("post %d %w", id, secondary.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	record.Duties, err = r.duties(ctx, id)
	if err != nil {
		return nil, err
	}
	return record, nil
}

// ListPosts retrieves every post with its duties.
func (r *WorkerRepository) ListPosts(ctx context.Context) ([]*secondary.PostRecord, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT id, title FROM post ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}

	var posts []*secondary.PostRecord
	for rows.Next() {
		record := &secondary.PostRecord{}
		if err := rows.Scan(&record.ID, &record.Title); err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		posts = append(posts, record)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	rows.Close()

	for _, p := range posts {
		if p.Duties, err = r.duties(ctx, p.ID); err != nil {
			return nil, err
		}
	}
	return posts, nil
}

// Ensure WorkerRepository implements the interface
var _ secondary.WorkerRepository = (*WorkerRepository)(nil)
