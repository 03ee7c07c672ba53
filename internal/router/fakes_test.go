package router

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/saffco/skincare-backend/internal/domain/entity"
	repo "github.com/saffco/skincare-backend/internal/domain/repository"
)

// In-memory repositories with the same not-found and uniqueness semantics as
// the Postgres implementations.

type memUsers struct {
	mu     sync.Mutex
	nextID int64
	byName map[string]*entity.User
}

func newMemUsers() *memUsers { return &memUsers{byName: map[string]*entity.User{}} }

func (m *memUsers) Create(_ context.Context, username, passwordHash string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.byName[username]; ok {
		return 0, repo.ErrAlreadyExists
	}
	m.nextID++
	now := time.Now()
	m.byName[username] = &entity.User{ID: m.nextID, Username: username, PasswordHash: passwordHash, CreatedAt: now, UpdatedAt: now}
	return m.nextID, nil
}

func (m *memUsers) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.byName[username]
	if !ok {
		return nil, repo.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (m *memUsers) UpdatePassword(_ context.Context, id int64, passwordHash string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.byName {
		if u.ID == id {
			u.PasswordHash = passwordHash
			return nil
		}
	}
	return repo.ErrNotFound
}

func (m *memUsers) UpdateProfile(_ context.Context, username string, in repo.ProfileUpdate) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.byName[username]
	if !ok {
		return repo.ErrNotFound
	}
	u.Email, u.Phone, u.Address = in.Email, in.Phone, in.Address
	if in.AvatarPath != nil {
		u.AvatarPath = in.AvatarPath
	}
	return nil
}

type memArticles struct {
	mu     sync.Mutex
	nextID int64
	rows   map[int64]entity.Article
}

func newMemArticles() *memArticles { return &memArticles{rows: map[int64]entity.Article{}} }

func (m *memArticles) List(_ context.Context) ([]entity.Article, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]entity.Article, 0, len(m.rows))
	for _, a := range m.rows {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memArticles) GetByID(_ context.Context, id int64) (*entity.Article, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.rows[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	return &a, nil
}

func (m *memArticles) Create(_ context.Context, a *entity.Article) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	a.ID = m.nextID
	a.CreatedAt = time.Now()
	a.UpdatedAt = a.CreatedAt
	m.rows[a.ID] = *a
	return nil
}

func (m *memArticles) Update(_ context.Context, a *entity.Article) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	old, ok := m.rows[a.ID]
	if !ok {
		return repo.ErrNotFound
	}
	a.CreatedAt = old.CreatedAt
	a.UpdatedAt = time.Now()
	m.rows[a.ID] = *a
	return nil
}

func (m *memArticles) Delete(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rows[id]; !ok {
		return repo.ErrNotFound
	}
	delete(m.rows, id)
	return nil
}

func (m *memArticles) exists(id int64) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.rows[id]
	return ok
}

type memProducts struct {
	mu     sync.Mutex
	nextID int64
	rows   map[int64]entity.Product
}

func newMemProducts() *memProducts { return &memProducts{rows: map[int64]entity.Product{}} }

func (m *memProducts) List(_ context.Context) ([]entity.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]entity.Product, 0, len(m.rows))
	for _, p := range m.rows {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memProducts) GetByID(_ context.Context, id int64) (*entity.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.rows[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	return &p, nil
}

func (m *memProducts) Create(_ context.Context, p *entity.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	p.ID = m.nextID
	m.rows[p.ID] = *p
	return nil
}

func (m *memProducts) Update(_ context.Context, p *entity.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rows[p.ID]; !ok {
		return repo.ErrNotFound
	}
	m.rows[p.ID] = *p
	return nil
}

func (m *memProducts) Delete(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rows[id]; !ok {
		return repo.ErrNotFound
	}
	delete(m.rows, id)
	return nil
}

type memFavorites struct {
	mu       sync.Mutex
	nextID   int64
	rows     []entity.Favorite
	articles *memArticles
}

func newMemFavorites(articles *memArticles) *memFavorites { return &memFavorites{articles: articles} }

func (m *memFavorites) ListByUsername(_ context.Context, username string) ([]entity.Favorite, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []entity.Favorite
	for _, f := range m.rows {
		if f.Username == username {
			out = append(out, f)
		}
	}
	return out, nil
}

func (m *memFavorites) Create(_ context.Context, f *entity.Favorite) error {
	if f.ArticleID != nil && !m.articles.exists(*f.ArticleID) {
		return repo.ErrNotFound
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	f.ID = m.nextID
	f.CreatedAt = time.Now()
	m.rows = append(m.rows, *f)
	return nil
}

func (m *memFavorites) Delete(_ context.Context, username string, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, f := range m.rows {
		if f.ID == id && f.Username == username {
			m.rows = append(m.rows[:i], m.rows[i+1:]...)
			return nil
		}
	}
	return repo.ErrNotFound
}

var (
	_ repo.UserRepository     = (*memUsers)(nil)
	_ repo.ArticleRepository  = (*memArticles)(nil)
	_ repo.ProductRepository  = (*memProducts)(nil)
	_ repo.FavoriteRepository = (*memFavorites)(nil)
)
