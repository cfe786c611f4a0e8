package httpapi

import (
	"context"
	"database/sql"
	"sort"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"moodblog/internal/common"
	"moodblog/internal/dbx"
	"moodblog/internal/logging"
	"moodblog/internal/server/config"
	"moodblog/internal/server/models"
	postsrepo "moodblog/internal/server/repositories/posts"
	usersrepo "moodblog/internal/server/repositories/users"
	"moodblog/internal/server/services"
)

const testSecret = "test-secret"

// ---- test logger ----

type nopLogger struct{}

func (nopLogger) Info(context.Context, string, ...any)  {}
func (nopLogger) Warn(context.Context, string, ...any)  {}
func (nopLogger) Error(context.Context, string, ...any) {}
func (nopLogger) With(...any) logging.Logger            { return nopLogger{} }

// ---- in-memory repositories ----

type memUsers struct {
	seq   int64
	users map[int64]*models.User
}

func newMemUsers() *memUsers {
	return &memUsers{users: map[int64]*models.User{}}
}

func (m *memUsers) Create(ctx context.Context, u *models.User) (*models.User, error) {
	for _, existing := range m.users {
		if existing.Email == u.Email {
			return nil, common.ErrDuplicateEmail
		}
	}
	m.seq++
	u.ID = m.seq
	u.CreatedAt = time.Now()
	m.users[u.ID] = u
	return u, nil
}

func (m *memUsers) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (m *memUsers) GetByID(ctx context.Context, id int64) (*models.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, common.ErrorNotFound
}

type memPosts struct {
	seq   int64
	posts map[int64]*models.Post
	users *memUsers
}

func newMemPosts(users *memUsers) *memPosts {
	return &memPosts{posts: map[int64]*models.Post{}, users: users}
}

func (m *memPosts) Create(ctx context.Context, p *models.Post) (*models.Post, error) {
	m.seq++
	p.ID = m.seq
	p.CreatedAt = time.Now()
	if author, ok := m.users.users[p.AuthorID]; ok {
		p.AuthorEmail = author.Email
		p.AuthorAvatar = author.Avatar
	}
	m.posts[p.ID] = p
	return p, nil
}

func (m *memPosts) GetByID(ctx context.Context, id int64) (*models.Post, error) {
	if p, ok := m.posts[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, common.ErrorNotFound
}

func (m *memPosts) Update(ctx context.Context, p *models.Post) error {
	if _, ok := m.posts[p.ID]; !ok {
		return common.ErrorNotFound
	}
	m.posts[p.ID] = p
	return nil
}

func (m *memPosts) Delete(ctx context.Context, id int64) error {
	if _, ok := m.posts[id]; !ok {
		return common.ErrorNotFound
	}
	delete(m.posts, id)
	return nil
}

func (m *memPosts) List(ctx context.Context, filter postsrepo.Filter) ([]*models.Post, error) {
	var out []*models.Post
	for _, p := range m.posts {
		if filter.Mood != "" && p.Mood != filter.Mood {
			continue
		}
		if filter.AuthorID != 0 && p.AuthorID != filter.AuthorID {
			continue
		}
		cp := *p
		out = append(out, &cp)
	}
	// newest first; ids are monotonic so they stand in for timestamps
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

type memRepoManager struct {
	u *memUsers
	p *memPosts
}

func (m *memRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *memRepoManager) Users(db dbx.DBTX) usersrepo.Repository      { return m.u }
func (m *memRepoManager) Posts(db dbx.DBTX) postsrepo.Repository      { return m.p }

// ---- server under test ----

func newTestServer(t *testing.T) (*Server, sqlmock.Sqlmock, *memRepoManager) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	// updates run in transactions; let the tests open as many as they need
	mock.MatchExpectationsInOrder(false)

	users := newMemUsers()
	rm := &memRepoManager{u: users, p: newMemPosts(users)}

	cfg := &config.Config{SecretKey: testSecret, TokenValidityDuration: time.Hour}

	us := services.NewUserService(db, rm, cfg)
	ps := services.NewPostService(db, rm, nil)

	return NewServer(":0", nopLogger{}, us, ps), mock, rm
}
