package application

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/recipeshare/recipeshare/internal/domain/apperr"
	"github.com/recipeshare/recipeshare/internal/domain/entity"
	"github.com/recipeshare/recipeshare/internal/domain/repository"
)

// In-memory repository fakes backing the service tests. They mirror the
// store contracts: Create enforces email uniqueness with ErrConflict,
// missing rows surface as ErrNotFound, and the bookmark ledger's
// (user, recipe) pair is unique.

type fakeUserRepo struct {
	mu    sync.Mutex
	seq   int
	users map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*entity.User{}}
}

func (f *fakeUserRepo) nextID() string {
	f.seq++
	return "user-" + strconv.Itoa(f.seq)
}

func (f *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, ex := range f.users {
		if strings.EqualFold(ex.Email, u.Email) {
			return apperr.ErrConflict
		}
	}
	u.ID = f.nextID()
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	cp := *u
	f.users[u.ID] = &cp
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return nil, apperr.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if strings.EqualFold(u.Email, email) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, apperr.ErrNotFound
}

func (f *fakeUserRepo) Update(_ context.Context, u *entity.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.users[u.ID]; !ok {
		return apperr.ErrNotFound
	}
	cp := *u
	cp.UpdatedAt = time.Now()
	f.users[u.ID] = &cp
	return nil
}

func (f *fakeUserRepo) List(_ context.Context) ([]*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*entity.User, 0, len(f.users))
	for _, u := range f.users {
		cp := *u
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeUserRepo) SetRole(_ context.Context, id string, role entity.Role) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return nil, apperr.ErrNotFound
	}
	u.Role = role
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) SetStatus(_ context.Context, id string, status entity.UserStatus) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return nil, apperr.ErrNotFound
	}
	u.Status = status
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) Count(_ context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.users)), nil
}

type fakeRecipeRepo struct {
	mu      sync.Mutex
	seq     int
	recipes map[string]*entity.Recipe
	saved   *fakeSavedRepo // ledger rows removed on recipe delete, when set
}

func newFakeRecipeRepo() *fakeRecipeRepo {
	return &fakeRecipeRepo{recipes: map[string]*entity.Recipe{}}
}

func (f *fakeRecipeRepo) Create(_ context.Context, r *entity.Recipe) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seq++
	r.ID = "recipe-" + strconv.Itoa(f.seq)
	r.CreatedAt = time.Now()
	r.UpdatedAt = r.CreatedAt
	cp := *r
	f.recipes[r.ID] = &cp
	return nil
}

func (f *fakeRecipeRepo) GetByID(_ context.Context, id string) (*entity.Recipe, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.recipes[id]
	if !ok {
		return nil, apperr.ErrNotFound
	}
	cp := *r
	return &cp, nil
}

func (f *fakeRecipeRepo) List(_ context.Context, flt repository.RecipeFilter) ([]*entity.Recipe, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*entity.Recipe, 0, len(f.recipes))
	for _, r := range f.recipes {
		if flt.Category != "" && r.Category != flt.Category {
			continue
		}
		if flt.Query != "" && !strings.Contains(strings.ToLower(r.Title), strings.ToLower(flt.Query)) {
			continue
		}
		if flt.AuthorID != "" && r.AuthorID != flt.AuthorID {
			continue
		}
		cp := *r
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeRecipeRepo) Update(_ context.Context, r *entity.Recipe) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.recipes[r.ID]; !ok {
		return apperr.ErrNotFound
	}
	cp := *r
	cp.UpdatedAt = time.Now()
	f.recipes[r.ID] = &cp
	return nil
}

func (f *fakeRecipeRepo) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.recipes[id]; !ok {
		return apperr.ErrNotFound
	}
	delete(f.recipes, id)
	if f.saved != nil {
		f.saved.dropRecipe(id)
	}
	return nil
}

func (f *fakeRecipeRepo) ApplyModeration(_ context.Context, id string, upd repository.ModerationUpdate) (*entity.Recipe, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.recipes[id]
	if !ok {
		return nil, apperr.ErrNotFound
	}
	if upd.Title != nil {
		r.Title = *upd.Title
	}
	if upd.IsFeatured != nil {
		r.IsFeatured = *upd.IsFeatured
	}
	r.UpdatedAt = time.Now()
	cp := *r
	return &cp, nil
}

func (f *fakeRecipeRepo) BulkDelete(_ context.Context, ids []string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for _, id := range ids {
		if _, ok := f.recipes[id]; ok {
			delete(f.recipes, id)
			if f.saved != nil {
				f.saved.dropRecipe(id)
			}
			n++
		}
	}
	return n, nil
}

func (f *fakeRecipeRepo) ListForModeration(_ context.Context) ([]*repository.ModerationRow, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*repository.ModerationRow, 0, len(f.recipes))
	for _, r := range f.recipes {
		row := &repository.ModerationRow{
			ID:         r.ID,
			Title:      r.Title,
			Category:   r.Category,
			IsFeatured: r.IsFeatured,
			CreatedAt:  r.CreatedAt,
		}
		if r.Author != nil {
			row.AuthorName = r.Author.Name
			row.AuthorEmail = r.Author.Email
		}
		out = append(out, row)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeRecipeRepo) Count(_ context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.recipes)), nil
}

func (f *fakeRecipeRepo) CountByCategory(_ context.Context) (map[string]int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := map[string]int64{}
	for _, r := range f.recipes {
		out[r.Category]++
	}
	return out, nil
}

type savedKey struct{ userID, recipeID string }

type fakeSavedRepo struct {
	mu      sync.Mutex
	rows    map[savedKey]time.Time
	recipes *fakeRecipeRepo
}

func newFakeSavedRepo(recipes *fakeRecipeRepo) *fakeSavedRepo {
	f := &fakeSavedRepo{rows: map[savedKey]time.Time{}, recipes: recipes}
	if recipes != nil {
		recipes.saved = f
	}
	return f
}

func (f *fakeSavedRepo) dropRecipe(recipeID string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for k := range f.rows {
		if k.recipeID == recipeID {
			delete(f.rows, k)
		}
	}
}

func (f *fakeSavedRepo) Save(_ context.Context, userID, recipeID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	k := savedKey{userID, recipeID}
	if _, ok := f.rows[k]; ok {
		return apperr.ErrConflict
	}
	f.rows[k] = time.Now()
	return nil
}

func (f *fakeSavedRepo) Unsave(_ context.Context, userID, recipeID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.rows, savedKey{userID, recipeID})
	return nil
}

func (f *fakeSavedRepo) ListRecipes(ctx context.Context, userID string) ([]*entity.Recipe, error) {
	f.mu.Lock()
	ids := make([]string, 0)
	for k := range f.rows {
		if k.userID == userID {
			ids = append(ids, k.recipeID)
		}
	}
	f.mu.Unlock()
	sort.Strings(ids)
	out := make([]*entity.Recipe, 0, len(ids))
	for _, id := range ids {
		r, err := f.recipes.GetByID(ctx, id)
		if err != nil {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeSavedRepo) ListRecipeIDs(_ context.Context, userID string) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, 0)
	for k := range f.rows {
		if k.userID == userID {
			out = append(out, k.recipeID)
		}
	}
	sort.Strings(out)
	return out, nil
}

func (f *fakeSavedRepo) Count(_ context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.rows)), nil
}

type fakeCategoryRepo struct {
	mu         sync.Mutex
	seq        int
	categories map[string]*entity.Category
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{categories: map[string]*entity.Category{}}
}

func (f *fakeCategoryRepo) Create(_ context.Context, c *entity.Category) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, ex := range f.categories {
		if ex.Name == c.Name {
			return apperr.ErrConflict
		}
	}
	f.seq++
	c.ID = "category-" + strconv.Itoa(f.seq)
	c.CreatedAt = time.Now()
	cp := *c
	f.categories[c.ID] = &cp
	return nil
}

func (f *fakeCategoryRepo) List(_ context.Context) ([]*entity.Category, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*entity.Category, 0, len(f.categories))
	for _, c := range f.categories {
		cp := *c
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (f *fakeCategoryRepo) Update(_ context.Context, c *entity.Category) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	ex, ok := f.categories[c.ID]
	if !ok {
		return apperr.ErrNotFound
	}
	ex.Name = c.Name
	ex.Icon = c.Icon
	return nil
}

func (f *fakeCategoryRepo) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.categories[id]; !ok {
		return apperr.ErrNotFound
	}
	delete(f.categories, id)
	return nil
}

type fakeSettingsRepo struct {
	mu  sync.Mutex
	row *entity.SiteSettings
}

func (f *fakeSettingsRepo) Get(_ context.Context) (*entity.SiteSettings, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.row == nil {
		return nil, apperr.ErrNotFound
	}
	cp := *f.row
	return &cp, nil
}

func (f *fakeSettingsRepo) Upsert(_ context.Context, s *entity.SiteSettings) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *s
	cp.UpdatedAt = time.Now()
	f.row = &cp
	return nil
}

type fakeAuditRepo struct {
	mu      sync.Mutex
	entries []*entity.AuditLogEntry
}

func (f *fakeAuditRepo) Append(_ context.Context, e *entity.AuditLogEntry) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *e
	cp.ID = "audit-" + strconv.Itoa(len(f.entries)+1)
	cp.CreatedAt = time.Now()
	f.entries = append(f.entries, &cp)
	return nil
}

func (f *fakeAuditRepo) ListRecent(_ context.Context, limit int) ([]*entity.AuditLogEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if limit <= 0 {
		limit = 10
	}
	out := make([]*entity.AuditLogEntry, 0, limit)
	for i := len(f.entries) - 1; i >= 0 && len(out) < limit; i-- {
		cp := *f.entries[i]
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeAuditRepo) actions() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, 0, len(f.entries))
	for _, e := range f.entries {
		out = append(out, e.Action)
	}
	return out
}
