package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/medm/attendance/internal/app/models"
	"github.com/medm/attendance/internal/pkg/apperrors"
	"github.com/medm/attendance/internal/pkg/dberrors"
)

// LectureRepository handles database operations for lectures and their
// attendance rosters
type LectureRepository struct {
	db *pgxpool.Pool
}

// NewLectureRepository creates a new lecture repository
func NewLectureRepository(db *pgxpool.Pool) *LectureRepository {
	return &LectureRepository{
		db: db,
	}
}

const lectureColumns = `id, title, description, lecturer, completed`

func scanLecture(row pgx.Row) (*models.Lecture, error) {
	var lecture models.Lecture
	err := row.Scan(
		&lecture.ID,
		&lecture.Title,
		&lecture.Description,
		&lecture.Lecturer,
		&lecture.Completed,
	)
	if err != nil {
		return nil, err
	}
	return &lecture, nil
}

// GetAll retrieves all lectures
func (r *LectureRepository) GetAll(ctx context.Context) ([]*models.Lecture, error) {
	query := `
		SELECT ` + lectureColumns + `
		FROM lectures
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lectures []*models.Lecture
	for rows.Next() {
		lecture, err := scanLecture(rows)
		if err != nil {
			return nil, err
		}
		lectures = append(lectures, lecture)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return lectures, nil
}

// GetByID retrieves a lecture by ID. Returns nil when absent.
func (r *LectureRepository) GetByID(ctx context.Context, id int64) (*models.Lecture, error) {
	query := `
		SELECT ` + lectureColumns + `
		FROM lectures
		WHERE id = $1
	`

	lecture, err := scanLecture(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving lecture: %w", err)
	}

	return lecture, nil
}

// ExistsByTitle checks if a lecture exists with the given title
func (r *LectureRepository) ExistsByTitle(ctx context.Context, title string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM lectures WHERE title = $1)`,
		title).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking lecture existence: %w", err)
	}

	return exists, nil
}

// ExistsByTitleExcluding checks if a lecture other than excludeID
// already uses the given title
func (r *LectureRepository) ExistsByTitleExcluding(ctx context.Context, title string, excludeID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM lectures WHERE title = $1 AND id <> $2)`,
		title, excludeID).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking lecture uniqueness: %w", err)
	}

	return exists, nil
}

// Create creates a new lecture and assigns its id
func (r *LectureRepository) Create(ctx context.Context, lecture *models.Lecture) error {
	query := `
		INSERT INTO lectures (title, description, lecturer, completed)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		lecture.Title, lecture.Description, lecture.Lecturer, lecture.Completed,
	).Scan(&lecture.ID)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrLectureAlreadyExists
		}
		return fmt.Errorf("error creating lecture: %w", err)
	}

	return nil
}

// Update overwrites all mutable lecture fields, including the completed
// flag
func (r *LectureRepository) Update(ctx context.Context, lecture *models.Lecture) error {
	query := `
		UPDATE lectures
		SET title = $1, description = $2, lecturer = $3, completed = $4
		WHERE id = $5
	`

	cmdTag, err := r.db.Exec(ctx, query,
		lecture.Title, lecture.Description, lecture.Lecturer, lecture.Completed, lecture.ID)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrLectureAlreadyExists
		}
		return fmt.Errorf("error updating lecture: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrLectureNotFound
	}

	return nil
}

// Delete deletes a lecture by ID. Roster rows go with it via ON DELETE
// CASCADE.
func (r *LectureRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM lectures WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting lecture: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrLectureNotFound
	}

	return nil
}

// GetAttendees retrieves the users signed up to a lecture
func (r *LectureRepository) GetAttendees(ctx context.Context, lectureID int64) ([]*models.User, error) {
	query := `
		SELECT u.id, u.first_name, u.last_name, u.email, u.password, u.year_of_study, u.field_of_study, u.index_number
		FROM users u
		JOIN user_lectures ul ON ul.user_id = u.id
		WHERE ul.lecture_id = $1
		ORDER BY u.id
	`

	rows, err := r.db.Query(ctx, query, lectureID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*models.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return users, nil
}

// Enroll adds a user to a lecture's roster. The join table has a
// composite primary key, so a repeated sign-up is a no-op.
func (r *LectureRepository) Enroll(ctx context.Context, lectureID, userID int64) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO user_lectures (user_id, lecture_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING`,
		userID, lectureID)
	if err != nil {
		return fmt.Errorf("error enrolling user: %w", err)
	}

	return nil
}

// GetByUserID retrieves the lectures a user is signed up to
func (r *LectureRepository) GetByUserID(ctx context.Context, userID int64) ([]*models.Lecture, error) {
	query := `
		SELECT l.id, l.title, l.description, l.lecturer, l.completed
		FROM lectures l
		JOIN user_lectures ul ON ul.lecture_id = l.id
		WHERE ul.user_id = $1
		ORDER BY l.id
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lectures []*models.Lecture
	for rows.Next() {
		lecture, err := scanLecture(rows)
		if err != nil {
			return nil, err
		}
		lectures = append(lectures, lecture)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return lectures, nil
}
