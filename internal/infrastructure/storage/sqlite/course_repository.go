package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/exp/slog"

	"tutorlink/internal/domain/course"
)

// CourseRepository persists the tutor catalog. Every statement is scoped to
// the owning tutor: updates and deletes that match zero rows, and reads of
// somebody else's entities, come back as course.ErrNotFound.
type CourseRepository struct {
	storage *Storage
	log     *slog.Logger
}

func NewCourseRepository(storage *Storage, log *slog.Logger) *CourseRepository {
	return &CourseRepository{
		storage: storage,
		log:     log,
	}
}

// ==================== Courses ====================

func (r *CourseRepository) CreateCourse(ctx context.Context, tutorID int64, p course.CoursePayload) (int64, error) {
	res, err := r.storage.db.ExecContext(ctx,
		`INSERT INTO courses (tutor_id, title, description, category_id, language, duration, price, thumbnail_url)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		tutorID, p.Title, p.Description, p.CategoryID, p.Language, p.Duration, p.Price, p.ThumbnailURL)
	if err != nil {
		return 0, fmt.Errorf("insert course: %w", err)
	}
	return res.LastInsertId()
}

func (r *CourseRepository) UpdateCourse(ctx context.Context, tutorID, id int64, u course.CourseUpdate) error {
	set, args := updateSet()
	set.add("title", u.Title)
	set.add("description", u.Description)
	set.add("category_id", u.CategoryID)
	set.add("language", u.Language)
	set.add("duration", u.Duration)
	set.add("price", u.Price)
	set.add("thumbnail_url", u.ThumbnailURL)
	if set.empty() {
		return r.exists(ctx, `SELECT 1 FROM courses WHERE id = ? AND tutor_id = ?`, id, tutorID)
	}
	set.raw("updated_at = CURRENT_TIMESTAMP")

	query := "UPDATE courses SET " + set.clause() + " WHERE id = ? AND tutor_id = ?"
	return r.execScoped(ctx, query, append(*args, id, tutorID)...)
}

func (r *CourseRepository) CoursesByTutor(ctx context.Context, tutorID int64) ([]course.RemoteCourse, error) {
	rows, err := r.storage.db.QueryContext(ctx,
		`SELECT id, title, description, category_id, language, duration, price, thumbnail_url
		 FROM courses WHERE tutor_id = ? ORDER BY id`, tutorID)
	if err != nil {
		return nil, fmt.Errorf("query courses: %w", err)
	}
	defer rows.Close()

	out := make([]course.RemoteCourse, 0)
	for rows.Next() {
		var c course.RemoteCourse
		if err := rows.Scan(&c.ID, &c.Title, &c.Description, &c.CategoryID, &c.Language, &c.Duration, &c.Price, &c.ThumbnailURL); err != nil {
			return nil, fmt.Errorf("scan course: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *CourseRepository) SectionTree(ctx context.Context, tutorID, courseID int64) ([]course.RemoteSection, error) {
	if err := r.exists(ctx, `SELECT 1 FROM courses WHERE id = ? AND tutor_id = ?`, courseID, tutorID); err != nil {
		return nil, err
	}

	sections, err := r.sectionsByCourse(ctx, courseID)
	if err != nil {
		return nil, err
	}

	lessonsBySection, lessonIDs, err := r.lessonsByCourse(ctx, courseID)
	if err != nil {
		return nil, err
	}

	resourcesByLesson, err := r.resourcesByLessons(ctx, lessonIDs)
	if err != nil {
		return nil, err
	}

	for i := range sections {
		lessons := lessonsBySection[sections[i].ID]
		for j := range lessons {
			lessons[j].Resources = resourcesByLesson[lessons[j].ID]
			if lessons[j].Resources == nil {
				lessons[j].Resources = []course.RemoteResource{}
			}
		}
		if lessons == nil {
			lessons = []course.RemoteLesson{}
		}
		sections[i].Lessons = lessons
	}
	return sections, nil
}

func (r *CourseRepository) sectionsByCourse(ctx context.Context, courseID int64) ([]course.RemoteSection, error) {
	rows, err := r.storage.db.QueryContext(ctx,
		`SELECT id, course_id, title, description, order_index
		 FROM sections WHERE course_id = ? ORDER BY order_index, id`, courseID)
	if err != nil {
		return nil, fmt.Errorf("query sections: %w", err)
	}
	defer rows.Close()

	out := make([]course.RemoteSection, 0)
	for rows.Next() {
		var s course.RemoteSection
		if err := rows.Scan(&s.ID, &s.CourseID, &s.Title, &s.Description, &s.OrderIndex); err != nil {
			return nil, fmt.Errorf("scan section: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *CourseRepository) lessonsByCourse(ctx context.Context, courseID int64) (map[int64][]course.RemoteLesson, []int64, error) {
	rows, err := r.storage.db.QueryContext(ctx,
		`SELECT l.id, l.section_id, l.title, l.duration, l.lesson_type, l.video_url, l.content, l.order_index
		 FROM lessons l JOIN sections s ON s.id = l.section_id
		 WHERE s.course_id = ? ORDER BY l.order_index, l.id`, courseID)
	if err != nil {
		return nil, nil, fmt.Errorf("query lessons: %w", err)
	}
	defer rows.Close()

	bySection := make(map[int64][]course.RemoteLesson)
	var ids []int64
	for rows.Next() {
		var l course.RemoteLesson
		var lessonType string
		if err := rows.Scan(&l.ID, &l.SectionID, &l.Title, &l.Duration, &lessonType, &l.VideoURL, &l.Content, &l.OrderIndex); err != nil {
			return nil, nil, fmt.Errorf("scan lesson: %w", err)
		}
		l.LessonType = course.LessonType(lessonType)
		bySection[l.SectionID] = append(bySection[l.SectionID], l)
		ids = append(ids, l.ID)
	}
	return bySection, ids, rows.Err()
}

func (r *CourseRepository) resourcesByLessons(ctx context.Context, lessonIDs []int64) (map[int64][]course.RemoteResource, error) {
	byLesson := make(map[int64][]course.RemoteResource)
	if len(lessonIDs) == 0 {
		return byLesson, nil
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(lessonIDs)), ",")
	args := make([]any, len(lessonIDs))
	for i, id := range lessonIDs {
		args[i] = id
	}

	rows, err := r.storage.db.QueryContext(ctx,
		`SELECT id, lesson_id, resource_type, resource_title, resource_url
		 FROM resources WHERE lesson_id IN (`+placeholders+`) ORDER BY id`, args...)
	if err != nil {
		return nil, fmt.Errorf("query resources: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var res course.RemoteResource
		var resourceType string
		if err := rows.Scan(&res.ID, &res.LessonID, &resourceType, &res.ResourceTitle, &res.ResourceURL); err != nil {
			return nil, fmt.Errorf("scan resource: %w", err)
		}
		res.ResourceType = course.ResourceType(resourceType)
		byLesson[res.LessonID] = append(byLesson[res.LessonID], res)
	}
	return byLesson, rows.Err()
}

// ==================== Sections ====================

func (r *CourseRepository) CreateSection(ctx context.Context, tutorID int64, p course.SectionPayload) (int64, error) {
	if err := r.exists(ctx, `SELECT 1 FROM courses WHERE id = ? AND tutor_id = ?`, p.CourseID, tutorID); err != nil {
		return 0, err
	}
	res, err := r.storage.db.ExecContext(ctx,
		`INSERT INTO sections (course_id, title, description, order_index) VALUES (?, ?, ?, ?)`,
		p.CourseID, p.Title, p.Description, p.OrderIndex)
	if err != nil {
		return 0, fmt.Errorf("insert section: %w", err)
	}
	return res.LastInsertId()
}

func (r *CourseRepository) UpdateSection(ctx context.Context, tutorID, id int64, u course.SectionUpdate) error {
	set, args := updateSet()
	set.add("title", u.Title)
	set.add("description", u.Description)
	set.add("order_index", u.OrderIndex)
	if set.empty() {
		return r.exists(ctx, sectionScope, id, tutorID)
	}

	query := "UPDATE sections SET " + set.clause() +
		" WHERE id = ? AND course_id IN (SELECT id FROM courses WHERE tutor_id = ?)"
	return r.execScoped(ctx, query, append(*args, id, tutorID)...)
}

func (r *CourseRepository) DeleteSection(ctx context.Context, tutorID, id int64) error {
	return r.execScoped(ctx,
		`DELETE FROM sections WHERE id = ? AND course_id IN (SELECT id FROM courses WHERE tutor_id = ?)`,
		id, tutorID)
}

// ==================== Lessons ====================

func (r *CourseRepository) CreateLesson(ctx context.Context, tutorID, sectionID int64, p course.LessonPayload) (int64, error) {
	if err := r.exists(ctx, sectionScope, sectionID, tutorID); err != nil {
		return 0, err
	}
	res, err := r.storage.db.ExecContext(ctx,
		`INSERT INTO lessons (section_id, title, duration, lesson_type, video_url, content, order_index)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		sectionID, p.Title, p.Duration, string(p.LessonType), p.VideoURL, p.Content, p.OrderIndex)
	if err != nil {
		return 0, fmt.Errorf("insert lesson: %w", err)
	}
	return res.LastInsertId()
}

func (r *CourseRepository) UpdateLesson(ctx context.Context, tutorID, id int64, u course.LessonUpdate) error {
	set, args := updateSet()
	set.add("title", u.Title)
	set.add("duration", u.Duration)
	if u.LessonType != nil {
		v := string(*u.LessonType)
		set.add("lesson_type", &v)
	}
	set.add("video_url", u.VideoURL)
	set.add("content", u.Content)
	set.add("order_index", u.OrderIndex)
	if set.empty() {
		return r.exists(ctx, lessonScope, id, tutorID)
	}

	query := "UPDATE lessons SET " + set.clause() + lessonWhere
	return r.execScoped(ctx, query, append(*args, id, tutorID)...)
}

func (r *CourseRepository) DeleteLesson(ctx context.Context, tutorID, id int64) error {
	return r.execScoped(ctx, "DELETE FROM lessons"+lessonWhere, id, tutorID)
}

// ==================== Resources ====================

func (r *CourseRepository) CreateResource(ctx context.Context, tutorID, lessonID int64, p course.ResourcePayload) (int64, error) {
	if err := r.exists(ctx, lessonScope, lessonID, tutorID); err != nil {
		return 0, err
	}
	res, err := r.storage.db.ExecContext(ctx,
		`INSERT INTO resources (lesson_id, resource_type, resource_title, resource_url) VALUES (?, ?, ?, ?)`,
		lessonID, string(p.ResourceType), p.ResourceTitle, p.ResourceURL)
	if err != nil {
		return 0, fmt.Errorf("insert resource: %w", err)
	}
	return res.LastInsertId()
}

func (r *CourseRepository) UpdateResource(ctx context.Context, tutorID, id int64, u course.ResourceUpdate) error {
	set, args := updateSet()
	if u.ResourceType != nil {
		v := string(*u.ResourceType)
		set.add("resource_type", &v)
	}
	set.add("resource_title", u.ResourceTitle)
	set.add("resource_url", u.ResourceURL)
	if set.empty() {
		return r.exists(ctx, resourceScope, id, tutorID)
	}

	query := "UPDATE resources SET " + set.clause() + resourceWhere
	return r.execScoped(ctx, query, append(*args, id, tutorID)...)
}

func (r *CourseRepository) DeleteResource(ctx context.Context, tutorID, id int64) error {
	return r.execScoped(ctx, "DELETE FROM resources"+resourceWhere, id, tutorID)
}

// ==================== Plumbing ====================

const (
	sectionScope = `SELECT 1 FROM sections s
		JOIN courses c ON c.id = s.course_id
		WHERE s.id = ? AND c.tutor_id = ?`
	lessonScope = `SELECT 1 FROM lessons l
		JOIN sections s ON s.id = l.section_id
		JOIN courses c ON c.id = s.course_id
		WHERE l.id = ? AND c.tutor_id = ?`
	resourceScope = `SELECT 1 FROM resources res
		JOIN lessons l ON l.id = res.lesson_id
		JOIN sections s ON s.id = l.section_id
		JOIN courses c ON c.id = s.course_id
		WHERE res.id = ? AND c.tutor_id = ?`

	lessonWhere = ` WHERE id = ? AND section_id IN (
		SELECT s.id FROM sections s JOIN courses c ON c.id = s.course_id WHERE c.tutor_id = ?)`
	resourceWhere = ` WHERE id = ? AND lesson_id IN (
		SELECT l.id FROM lessons l
		JOIN sections s ON s.id = l.section_id
		JOIN courses c ON c.id = s.course_id
		WHERE c.tutor_id = ?)`
)

func (r *CourseRepository) exists(ctx context.Context, query string, args ...any) error {
	var one int
	err := r.storage.db.QueryRowContext(ctx, query, args...).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return course.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("ownership check: %w", err)
	}
	return nil
}

func (r *CourseRepository) execScoped(ctx context.Context, query string, args ...any) error {
	res, err := r.storage.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("exec: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return course.ErrNotFound
	}
	return nil
}

// setBuilder accumulates SET clauses for partial updates: only fields the
// client actually sent travel to the database.
type setBuilder struct {
	cols []string
	args *[]any
}

func updateSet() (*setBuilder, *[]any) {
	args := make([]any, 0, 8)
	return &setBuilder{args: &args}, &args
}

func (b *setBuilder) add(col string, v any) {
	switch p := v.(type) {
	case *string:
		if p != nil {
			b.cols = append(b.cols, col+" = ?")
			*b.args = append(*b.args, *p)
		}
	case *int:
		if p != nil {
			b.cols = append(b.cols, col+" = ?")
			*b.args = append(*b.args, *p)
		}
	case *int64:
		if p != nil {
			b.cols = append(b.cols, col+" = ?")
			*b.args = append(*b.args, *p)
		}
	}
}

func (b *setBuilder) raw(clause string) {
	b.cols = append(b.cols, clause)
}

func (b *setBuilder) empty() bool {
	return len(b.cols) == 0
}

func (b *setBuilder) clause() string {
	return strings.Join(b.cols, ", ")
}
