package http_test

import (
	"context"
	"strings"

	"github.com/gitcsdev/drcoffee-api/internal/domain/entity"
	"github.com/gitcsdev/drcoffee-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Repositorios en memoria para levantar la API completa sin Postgres.
// Respetan el contrato de los puertos: (nil, nil) sin fila, borrado lógico
// idempotente, borrado físico de opciones, etc.
// ──────────────────────────────────────────────────────────────────────────────

type memUserRepo struct {
	users map[string]*entity.User // por email
	roles map[string][]string     // userID → roles
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[string]*entity.User), roles: make(map[string][]string)}
}

func (r *memUserRepo) Create(u *entity.User) error {
	cp := *u
	r.users[strings.ToLower(u.Email)] = &cp
	return nil
}

func (r *memUserRepo) FindByID(id string) (*entity.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) FindByEmail(email string) (*entity.User, error) {
	u, ok := r.users[strings.ToLower(email)]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *memUserRepo) UpdatePassword(userID, passwordHash string) error {
	for _, u := range r.users {
		if u.ID == userID {
			u.PasswordHash = passwordHash
		}
	}
	return nil
}

func (r *memUserRepo) RolesOf(userID string) ([]string, error) {
	return append([]string(nil), r.roles[userID]...), nil
}

func (r *memUserRepo) AddRole(userID, role string) error {
	r.roles[userID] = append(r.roles[userID], role)
	return nil
}

func (r *memUserRepo) HasRole(userID, role string) (bool, error) {
	for _, rr := range r.roles[userID] {
		if rr == role {
			return true, nil
		}
	}
	return false, nil
}

func (r *memUserRepo) EnsureRole(string) error { return nil }

type memCategoryRepo struct {
	nextID     int64
	categories map[int64]*entity.Category
}

func newMemCategoryRepo() *memCategoryRepo {
	return &memCategoryRepo{nextID: 1, categories: make(map[int64]*entity.Category)}
}

func (r *memCategoryRepo) Create(c *entity.Category) error {
	c.ID = r.nextID
	r.nextID++
	cp := *c
	r.categories[c.ID] = &cp
	return nil
}

func (r *memCategoryRepo) GetByID(id int64) (*entity.Category, error) {
	c, ok := r.categories[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *memCategoryRepo) ListAll() ([]*entity.Category, error) {
	out := make([]*entity.Category, 0, len(r.categories))
	for id := int64(1); id < r.nextID; id++ {
		if c, ok := r.categories[id]; ok {
			cp := *c
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memCategoryRepo) Update(c *entity.Category) error {
	cp := *c
	r.categories[c.ID] = &cp
	return nil
}

func (r *memCategoryRepo) SoftDelete(id int64) (bool, error) {
	c, ok := r.categories[id]
	if !ok {
		return false, nil
	}
	c.IsActive = false
	return true, nil
}

func (r *memCategoryRepo) Exists(id int64) (bool, error) {
	_, ok := r.categories[id]
	return ok, nil
}

func (r *memCategoryRepo) NameExists(name string, excludeID int64) (bool, error) {
	for _, c := range r.categories {
		if c.ID != excludeID && strings.EqualFold(c.Name, name) {
			return true, nil
		}
	}
	return false, nil
}

type memProductRepo struct {
	nextID   int64
	products map[int64]*entity.Product
}

func newMemProductRepo() *memProductRepo {
	return &memProductRepo{nextID: 1, products: make(map[int64]*entity.Product)}
}

func (r *memProductRepo) Create(p *entity.Product) error {
	p.ID = r.nextID
	r.nextID++
	for i := range p.Prices {
		p.Prices[i].ID = int64(i + 1)
	}
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *memProductRepo) GetByID(id int64) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *memProductRepo) GetByCode(code string) (*entity.Product, error) {
	for _, p := range r.products {
		if p.ProductCode == code {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memProductRepo) ListActive() ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(r.products))
	for id := int64(1); id < r.nextID; id++ {
		if p, ok := r.products[id]; ok && p.IsActive {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memProductRepo) ListAll() ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(r.products))
	for id := int64(1); id < r.nextID; id++ {
		if p, ok := r.products[id]; ok {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memProductRepo) ListByCategory(categoryID int64) ([]*entity.Product, error) {
	out := make([]*entity.Product, 0)
	for id := int64(1); id < r.nextID; id++ {
		if p, ok := r.products[id]; ok && p.CategoryID == categoryID {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memProductRepo) Update(p *entity.Product, replacePrices, replaceTags, replaceFlavors, replaceOptions bool) error {
	existing, ok := r.products[p.ID]
	if !ok {
		return nil
	}
	cp := *p
	if !replacePrices {
		cp.Prices = existing.Prices
	}
	if !replaceTags {
		cp.Tags = existing.Tags
	}
	if !replaceFlavors {
		cp.Flavors = existing.Flavors
	}
	if !replaceOptions {
		cp.CustomizationOptionIDs = existing.CustomizationOptionIDs
	}
	r.products[p.ID] = &cp
	return nil
}

func (r *memProductRepo) SoftDelete(id int64) (bool, error) {
	p, ok := r.products[id]
	if !ok {
		return false, nil
	}
	p.IsActive = false
	return true, nil
}

func (r *memProductRepo) Exists(id int64) (bool, error) {
	_, ok := r.products[id]
	return ok, nil
}

func (r *memProductRepo) CodeExists(code string, excludeID int64) (bool, error) {
	for _, p := range r.products {
		if p.ID != excludeID && p.ProductCode == code {
			return true, nil
		}
	}
	return false, nil
}

func (r *memProductRepo) Any() (bool, error) {
	return len(r.products) > 0, nil
}

type memOptionRepo struct {
	nextID  int64
	options map[int64]*entity.CustomizationOption
}

func newMemOptionRepo() *memOptionRepo {
	return &memOptionRepo{nextID: 1, options: make(map[int64]*entity.CustomizationOption)}
}

func (r *memOptionRepo) Create(o *entity.CustomizationOption) error {
	o.ID = r.nextID
	r.nextID++
	cp := *o
	r.options[o.ID] = &cp
	return nil
}

func (r *memOptionRepo) GetByID(id int64) (*entity.CustomizationOption, error) {
	o, ok := r.options[id]
	if !ok {
		return nil, nil
	}
	cp := *o
	return &cp, nil
}

func (r *memOptionRepo) ListAll() ([]*entity.CustomizationOption, error) {
	out := make([]*entity.CustomizationOption, 0, len(r.options))
	for id := int64(1); id < r.nextID; id++ {
		if o, ok := r.options[id]; ok {
			cp := *o
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memOptionRepo) ListActive() ([]*entity.CustomizationOption, error) {
	out := make([]*entity.CustomizationOption, 0, len(r.options))
	for id := int64(1); id < r.nextID; id++ {
		if o, ok := r.options[id]; ok && o.IsActive {
			cp := *o
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memOptionRepo) Update(o *entity.CustomizationOption) error {
	cp := *o
	r.options[o.ID] = &cp
	return nil
}

func (r *memOptionRepo) Delete(id int64) (bool, error) {
	if _, ok := r.options[id]; !ok {
		return false, nil
	}
	delete(r.options, id)
	return true, nil
}

func (r *memOptionRepo) Exists(id int64) (bool, error) {
	_, ok := r.options[id]
	return ok, nil
}

func (r *memOptionRepo) CodeExists(code string, excludeID int64) (bool, error) {
	for _, o := range r.options {
		if o.ID != excludeID && o.OptionCode == code {
			return true, nil
		}
	}
	return false, nil
}

type memOrderRepo struct {
	nextID int64
	orders map[int64]*entity.Order
}

func newMemOrderRepo() *memOrderRepo {
	return &memOrderRepo{nextID: 1, orders: make(map[int64]*entity.Order)}
}

func (r *memOrderRepo) Create(o *entity.Order) error {
	o.ID = r.nextID
	r.nextID++
	for i := range o.Items {
		o.Items[i].ID = int64(i + 1)
		o.Items[i].OrderID = o.ID
	}
	cp := *o
	cp.Items = append([]entity.OrderItem(nil), o.Items...)
	r.orders[o.ID] = &cp
	return nil
}

func (r *memOrderRepo) GetByID(id int64) (*entity.Order, error) {
	o, ok := r.orders[id]
	if !ok {
		return nil, nil
	}
	cp := *o
	cp.Items = append([]entity.OrderItem(nil), o.Items...)
	return &cp, nil
}

func (r *memOrderRepo) GetByNumber(number string) (*entity.Order, error) {
	for _, o := range r.orders {
		if o.OrderNumber == number {
			return r.GetByID(o.ID)
		}
	}
	return nil, nil
}

func (r *memOrderRepo) ListSummaries() ([]*entity.OrderSummary, error) {
	out := make([]*entity.OrderSummary, 0, len(r.orders))
	for id := int64(1); id < r.nextID; id++ {
		if o, ok := r.orders[id]; ok {
			out = append(out, orderSummary(o))
		}
	}
	return out, nil
}

func (r *memOrderRepo) ListSummariesByStatus(status string) ([]*entity.OrderSummary, error) {
	out := make([]*entity.OrderSummary, 0)
	for id := int64(1); id < r.nextID; id++ {
		if o, ok := r.orders[id]; ok && o.OrderStatus == status {
			out = append(out, orderSummary(o))
		}
	}
	return out, nil
}

func (r *memOrderRepo) UpdateStatus(id int64, status string) (bool, error) {
	o, ok := r.orders[id]
	if !ok {
		return false, nil
	}
	o.OrderStatus = status
	return true, nil
}

func (r *memOrderRepo) NumberExists(number string) (bool, error) {
	for _, o := range r.orders {
		if o.OrderNumber == number {
			return true, nil
		}
	}
	return false, nil
}

func orderSummary(o *entity.Order) *entity.OrderSummary {
	return &entity.OrderSummary{
		ID:            o.ID,
		OrderNumber:   o.OrderNumber,
		CustomerName:  o.CustomerName,
		CustomerPhone: o.CustomerPhone,
		OrderStatus:   o.OrderStatus,
		TotalAmount:   o.TotalAmount,
		ItemCount:     len(o.Items),
		OrderDate:     o.OrderDate,
	}
}

// memTxRunner ejecuta el callback directamente con los repos en memoria.
type memTxRunner struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
}

func (r *memTxRunner) Run(_ context.Context, fn func(repository.OrderRepository, repository.ProductRepository) error) error {
	return fn(r.orderRepo, r.productRepo)
}
