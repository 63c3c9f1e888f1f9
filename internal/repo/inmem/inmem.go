// Package inmem holds map-backed implementations of the domain repositories.
// They mirror the gorm repositories' observable behavior (soft deletes,
// pagination, case-insensitive search) and back the usecase and router tests,
// where the relational store is substituted out.
package inmem

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"gorm.io/gorm"

	"listkeeper/internal/domain"
)

func now() time.Time { return time.Now().UTC() }

func deletedNow() gorm.DeletedAt {
	return gorm.DeletedAt{Time: now(), Valid: true}
}

func paginate[T any](all []T, p domain.Page) domain.Paginated[T] {
	p = p.Normalize()
	total := int64(len(all))
	start := p.Offset()
	if start > len(all) {
		start = len(all)
	}
	end := start + p.Limit
	if end > len(all) {
		end = len(all)
	}
	return domain.NewPaginated(append([]T{}, all[start:end]...), total, p)
}

func matches(term string, fields ...string) bool {
	term = strings.ToLower(term)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}

// ---------------- users ----------------

type UserRepo struct {
	mu    sync.RWMutex
	users map[string]domain.User
}

func NewUserRepo() *UserRepo { return &UserRepo{users: map[string]domain.User{}} }

var _ domain.UserRepository = (*UserRepo)(nil)

func (r *UserRepo) Create(_ context.Context, u *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, ex := range r.users {
		if ex.Email == u.Email && !ex.DeletedAt.Valid {
			return fmt.Errorf("duplicate key value violates unique constraint on email")
		}
	}
	u.CreatedAt, u.UpdatedAt = now(), now()
	r.users[u.UUID] = *u
	return nil
}

func (r *UserRepo) Update(_ context.Context, u *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	ex, ok := r.users[u.UUID]
	if !ok || ex.DeletedAt.Valid {
		return nil // repository update is a no-op for absent rows
	}
	ex.Name, ex.Email, ex.Password = u.Name, u.Email, u.Password
	ex.UpdatedAt = now()
	r.users[u.UUID] = ex
	return nil
}

func (r *UserRepo) SoftDelete(_ context.Context, uuid string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if ex, ok := r.users[uuid]; ok && !ex.DeletedAt.Valid {
		ex.DeletedAt = deletedNow()
		r.users[uuid] = ex
	}
	return nil
}

func (r *UserRepo) FindByUUID(_ context.Context, uuid string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if ex, ok := r.users[uuid]; ok && !ex.DeletedAt.Valid {
		u := ex
		return &u, nil
	}
	return nil, nil
}

func (r *UserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, ex := range r.users {
		if ex.Email == email && !ex.DeletedAt.Valid {
			u := ex
			return &u, nil
		}
	}
	return nil, nil
}

func (r *UserRepo) List(_ context.Context, p domain.Page) (domain.Paginated[domain.User], error) {
	return paginate(r.snapshot(func(domain.User) bool { return true }), p), nil
}

func (r *UserRepo) Search(_ context.Context, term string, p domain.Page) (domain.Paginated[domain.User], error) {
	return paginate(r.snapshot(func(u domain.User) bool {
		return matches(term, u.Name, u.Email)
	}), p), nil
}

func (r *UserRepo) snapshot(keep func(domain.User) bool) []domain.User {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.User
	for _, u := range r.users {
		if !u.DeletedAt.Valid && keep(u) {
			out = append(out, u)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

// HardCount reports rows including soft-deleted ones, for tests asserting
// that deletes retain the row.
func (r *UserRepo) HardCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.users)
}

// ---------------- items ----------------

type ItemRepo struct {
	mu    sync.RWMutex
	items map[string]domain.Item
	joins *joinTable
	seq   int // creation order stands in for created_at ordering
	order map[string]int
}

func NewItemRepo() *ItemRepo {
	return &ItemRepo{items: map[string]domain.Item{}, joins: newJoinTable(), order: map[string]int{}}
}

var _ domain.ItemRepository = (*ItemRepo)(nil)

func (r *ItemRepo) Create(_ context.Context, it *domain.Item, listUUID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	it.CreatedAt, it.UpdatedAt = now(), now()
	r.items[it.UUID] = *it
	r.seq++
	r.order[it.UUID] = r.seq
	if listUUID != "" {
		return r.joins.add(listUUID, it.UUID)
	}
	return nil
}

func (r *ItemRepo) Update(_ context.Context, it *domain.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	ex, ok := r.items[it.UUID]
	if !ok || ex.DeletedAt.Valid {
		return nil
	}
	ex.Name, ex.Description, ex.Value = it.Name, it.Description, it.Value
	ex.UpdatedAt = now()
	r.items[it.UUID] = ex
	return nil
}

func (r *ItemRepo) SoftDelete(_ context.Context, uuid string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if ex, ok := r.items[uuid]; ok && !ex.DeletedAt.Valid {
		ex.DeletedAt = deletedNow()
		r.items[uuid] = ex
	}
	return nil
}

func (r *ItemRepo) FindByUUID(_ context.Context, uuid string) (*domain.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if ex, ok := r.items[uuid]; ok && !ex.DeletedAt.Valid {
		it := ex
		return &it, nil
	}
	return nil, nil
}

func (r *ItemRepo) FindByList(_ context.Context, listUUID, userID string) ([]domain.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []domain.Item{}
	for _, itemID := range r.joins.itemsOf(listUUID) {
		if it, ok := r.items[itemID]; ok && !it.DeletedAt.Valid && it.UserID == userID {
			out = append(out, it)
		}
	}
	return out, nil
}

func (r *ItemRepo) ListByUser(_ context.Context, userID string, p domain.Page) (domain.Paginated[domain.Item], error) {
	return paginate(r.snapshot(func(it domain.Item) bool { return it.UserID == userID }), p), nil
}

func (r *ItemRepo) Search(_ context.Context, userID, term string, p domain.Page) (domain.Paginated[domain.Item], error) {
	return paginate(r.snapshot(func(it domain.Item) bool {
		return it.UserID == userID && matches(term, it.Name, it.Description)
	}), p), nil
}

func (r *ItemRepo) snapshot(keep func(domain.Item) bool) []domain.Item {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.Item
	for _, it := range r.items {
		if !it.DeletedAt.Valid && keep(it) {
			out = append(out, it)
		}
	}
	sort.Slice(out, func(i, j int) bool { return r.order[out[i].UUID] > r.order[out[j].UUID] })
	return out
}

func (r *ItemRepo) HardCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}

// ---------------- lists ----------------

type ListRepo struct {
	mu    sync.RWMutex
	lists map[string]domain.List
	items *ItemRepo
	joins *joinTable
}

// NewListRepo shares the item repo's storage and join table, mirroring the
// single list_items table both gorm repositories touch.
func NewListRepo(items *ItemRepo) *ListRepo {
	return &ListRepo{lists: map[string]domain.List{}, items: items, joins: items.joins}
}

var _ domain.ListRepository = (*ListRepo)(nil)

func (r *ListRepo) Create(_ context.Context, l *domain.List) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	l.CreatedAt, l.UpdatedAt = now(), now()
	stored := *l
	stored.Items = nil
	r.lists[l.UUID] = stored
	for _, it := range l.Items {
		if err := r.joins.add(l.UUID, it.UUID); err != nil {
			delete(r.lists, l.UUID) // keep create atomic
			return err
		}
	}
	return nil
}

func (r *ListRepo) Update(_ context.Context, l *domain.List) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	ex, ok := r.lists[l.UUID]
	if !ok || ex.DeletedAt.Valid {
		return nil
	}
	ex.Name, ex.Description = l.Name, l.Description
	ex.UpdatedAt = now()
	r.lists[l.UUID] = ex
	return nil
}

func (r *ListRepo) SoftDelete(_ context.Context, uuid string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if ex, ok := r.lists[uuid]; ok && !ex.DeletedAt.Valid {
		ex.DeletedAt = deletedNow()
		r.lists[uuid] = ex
	}
	return nil
}

func (r *ListRepo) FindByUUID(ctx context.Context, uuid string) (*domain.List, error) {
	r.mu.RLock()
	ex, ok := r.lists[uuid]
	r.mu.RUnlock()
	if !ok || ex.DeletedAt.Valid {
		return nil, nil
	}
	l := ex
	l.Items = r.hydrate(uuid)
	return &l, nil
}

func (r *ListRepo) ListByUser(_ context.Context, userID string, p domain.Page) (domain.Paginated[domain.List], error) {
	r.mu.RLock()
	var out []domain.List
	for _, l := range r.lists {
		if !l.DeletedAt.Valid && l.UserID == userID {
			out = append(out, l)
		}
	}
	r.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	page := paginate(out, p)
	for i := range page.Data {
		page.Data[i].Items = r.hydrate(page.Data[i].UUID)
	}
	return page, nil
}

func (r *ListRepo) AddItem(_ context.Context, listUUID, itemUUID string) error {
	return r.joins.add(listUUID, itemUUID)
}

func (r *ListRepo) RemoveItem(_ context.Context, listUUID, itemUUID string) error {
	r.joins.remove(listUUID, itemUUID)
	return nil
}

func (r *ListRepo) hydrate(listUUID string) []domain.Item {
	out := []domain.Item{}
	r.items.mu.RLock()
	defer r.items.mu.RUnlock()
	for _, itemID := range r.joins.itemsOf(listUUID) {
		if it, ok := r.items.items[itemID]; ok && !it.DeletedAt.Valid {
			out = append(out, it)
		}
	}
	return out
}

func (r *ListRepo) HardCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.lists)
}

// JoinCount reports the number of join rows for a pair, for tests asserting
// the at-most-once invariant.
func (r *ListRepo) JoinCount(listUUID, itemUUID string) int {
	return r.joins.count(listUUID, itemUUID)
}

// ---------------- join table ----------------

type joinTable struct {
	mu   sync.Mutex
	rows map[[2]string]struct{}
	ord  [][2]string
}

func newJoinTable() *joinTable { return &joinTable{rows: map[[2]string]struct{}{}} }

func (j *joinTable) add(listID, itemID string) error {
	j.mu.Lock()
	defer j.mu.Unlock()
	key := [2]string{listID, itemID}
	if _, ok := j.rows[key]; ok {
		return fmt.Errorf("duplicate key value violates list_items primary key")
	}
	j.rows[key] = struct{}{}
	j.ord = append(j.ord, key)
	return nil
}

func (j *joinTable) remove(listID, itemID string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	key := [2]string{listID, itemID}
	delete(j.rows, key)
	for i, k := range j.ord {
		if k == key {
			j.ord = append(j.ord[:i], j.ord[i+1:]...)
			break
		}
	}
}

func (j *joinTable) itemsOf(listID string) []string {
	j.mu.Lock()
	defer j.mu.Unlock()
	var out []string
	for _, k := range j.ord {
		if k[0] == listID {
			out = append(out, k[1])
		}
	}
	return out
}

func (j *joinTable) count(listID, itemID string) int {
	j.mu.Lock()
	defer j.mu.Unlock()
	if _, ok := j.rows[[2]string{listID, itemID}]; ok {
		return 1
	}
	return 0
}
