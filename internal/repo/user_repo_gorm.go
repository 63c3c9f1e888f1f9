package repo

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"listkeeper/internal/domain"
)

type UserRepo struct{ db *gorm.DB }

func NewUserRepo(db *gorm.DB) *UserRepo { return &UserRepo{db: db} }

var _ domain.UserRepository = (*UserRepo)(nil)

func (r *UserRepo) Create(ctx context.Context, u *domain.User) error {
	return r.db.WithContext(ctx).Create(u).Error
}

// Update rewrites the mutable fields by primary key. Absent uuids are a
// no-op; usecases pre-check existence.
func (r *UserRepo) Update(ctx context.Context, u *domain.User) error {
	return r.db.WithContext(ctx).Model(&domain.User{}).
		Where("uuid = ?", u.UUID).
		Updates(map[string]any{
			"name":     u.Name,
			"email":    u.Email,
			"password": u.Password,
		}).Error
}

func (r *UserRepo) SoftDelete(ctx context.Context, uuid string) error {
	return r.db.WithContext(ctx).Where("uuid = ?", uuid).Delete(&domain.User{}).Error
}

func (r *UserRepo) FindByUUID(ctx context.Context, uuid string) (*domain.User, error) {
	var u domain.User
	err := r.db.WithContext(ctx).First(&u, "uuid = ?", uuid).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var u domain.User
	err := r.db.WithContext(ctx).First(&u, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) List(ctx context.Context, p domain.Page) (domain.Paginated[domain.User], error) {
	return r.paginate(ctx, r.db.WithContext(ctx).Model(&domain.User{}), p)
}

func (r *UserRepo) Search(ctx context.Context, term string, p domain.Page) (domain.Paginated[domain.User], error) {
	like := "%" + strings.ToLower(term) + "%"
	q := r.db.WithContext(ctx).Model(&domain.User{}).
		Where("LOWER(name) LIKE ? OR LOWER(email) LIKE ?", like, like)
	return r.paginate(ctx, q, p)
}

func (r *UserRepo) paginate(ctx context.Context, q *gorm.DB, p domain.Page) (domain.Paginated[domain.User], error) {
	p = p.Normalize()
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return domain.Paginated[domain.User]{}, err
	}
	var users []domain.User
	if err := q.Order("created_at desc").Offset(p.Offset()).Limit(p.Limit).Find(&users).Error; err != nil {
		return domain.Paginated[domain.User]{}, err
	}
	return domain.NewPaginated(users, total, p), nil
}
