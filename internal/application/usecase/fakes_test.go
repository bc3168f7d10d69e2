package usecase_test

import (
	"context"
	"strings"

	"github.com/gitcsdev/drcoffee-api/internal/domain/entity"
	"github.com/gitcsdev/drcoffee-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los repositorios. Replican el contrato de los puertos:
// (nil, nil) cuando no hay fila, borrado lógico idempotente, etc.
// ──────────────────────────────────────────────────────────────────────────────

type fakeCategoryRepo struct {
	nextID     int64
	categories map[int64]*entity.Category
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{nextID: 1, categories: make(map[int64]*entity.Category)}
}

func (r *fakeCategoryRepo) Create(c *entity.Category) error {
	c.ID = r.nextID
	r.nextID++
	cp := *c
	r.categories[c.ID] = &cp
	return nil
}

func (r *fakeCategoryRepo) GetByID(id int64) (*entity.Category, error) {
	c, ok := r.categories[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCategoryRepo) ListAll() ([]*entity.Category, error) {
	out := make([]*entity.Category, 0, len(r.categories))
	for id := int64(1); id < r.nextID; id++ {
		if c, ok := r.categories[id]; ok {
			cp := *c
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeCategoryRepo) Update(c *entity.Category) error {
	cp := *c
	r.categories[c.ID] = &cp
	return nil
}

func (r *fakeCategoryRepo) SoftDelete(id int64) (bool, error) {
	c, ok := r.categories[id]
	if !ok {
		return false, nil
	}
	c.IsActive = false
	return true, nil
}

func (r *fakeCategoryRepo) Exists(id int64) (bool, error) {
	_, ok := r.categories[id]
	return ok, nil
}

func (r *fakeCategoryRepo) NameExists(name string, excludeID int64) (bool, error) {
	for _, c := range r.categories {
		if c.ID != excludeID && strings.EqualFold(c.Name, name) {
			return true, nil
		}
	}
	return false, nil
}

type fakeProductRepo struct {
	nextID   int64
	products map[int64]*entity.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{nextID: 1, products: make(map[int64]*entity.Product)}
}

func (r *fakeProductRepo) Create(p *entity.Product) error {
	p.ID = r.nextID
	r.nextID++
	for i := range p.Prices {
		p.Prices[i].ID = int64(i + 1)
	}
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) GetByID(id int64) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) GetByCode(code string) (*entity.Product, error) {
	for _, p := range r.products {
		if p.ProductCode == code {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) ListActive() ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(r.products))
	for id := int64(1); id < r.nextID; id++ {
		if p, ok := r.products[id]; ok && p.IsActive {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) ListAll() ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(r.products))
	for id := int64(1); id < r.nextID; id++ {
		if p, ok := r.products[id]; ok {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) ListByCategory(categoryID int64) ([]*entity.Product, error) {
	out := make([]*entity.Product, 0)
	for id := int64(1); id < r.nextID; id++ {
		if p, ok := r.products[id]; ok && p.CategoryID == categoryID {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) Update(p *entity.Product, replacePrices, replaceTags, replaceFlavors, replaceOptions bool) error {
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

func (r *fakeProductRepo) SoftDelete(id int64) (bool, error) {
	p, ok := r.products[id]
	if !ok {
		return false, nil
	}
	p.IsActive = false
	return true, nil
}

func (r *fakeProductRepo) Exists(id int64) (bool, error) {
	_, ok := r.products[id]
	return ok, nil
}

func (r *fakeProductRepo) Any() (bool, error) {
	return len(r.products) > 0, nil
}

func (r *fakeProductRepo) CodeExists(code string, excludeID int64) (bool, error) {
	for _, p := range r.products {
		if p.ID != excludeID && p.ProductCode == code {
			return true, nil
		}
	}
	return false, nil
}

type fakeOptionRepo struct {
	nextID  int64
	options map[int64]*entity.CustomizationOption
}

func newFakeOptionRepo() *fakeOptionRepo {
	return &fakeOptionRepo{nextID: 1, options: make(map[int64]*entity.CustomizationOption)}
}

func (r *fakeOptionRepo) Create(o *entity.CustomizationOption) error {
	o.ID = r.nextID
	r.nextID++
	cp := *o
	r.options[o.ID] = &cp
	return nil
}

func (r *fakeOptionRepo) GetByID(id int64) (*entity.CustomizationOption, error) {
	o, ok := r.options[id]
	if !ok {
		return nil, nil
	}
	cp := *o
	return &cp, nil
}

func (r *fakeOptionRepo) ListAll() ([]*entity.CustomizationOption, error) {
	out := make([]*entity.CustomizationOption, 0, len(r.options))
	for id := int64(1); id < r.nextID; id++ {
		if o, ok := r.options[id]; ok {
			cp := *o
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeOptionRepo) ListActive() ([]*entity.CustomizationOption, error) {
	out := make([]*entity.CustomizationOption, 0, len(r.options))
	for id := int64(1); id < r.nextID; id++ {
		if o, ok := r.options[id]; ok && o.IsActive {
			cp := *o
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeOptionRepo) Update(o *entity.CustomizationOption) error {
	cp := *o
	r.options[o.ID] = &cp
	return nil
}

func (r *fakeOptionRepo) Delete(id int64) (bool, error) {
	if _, ok := r.options[id]; !ok {
		return false, nil
	}
	delete(r.options, id)
	return true, nil
}

func (r *fakeOptionRepo) Exists(id int64) (bool, error) {
	_, ok := r.options[id]
	return ok, nil
}

func (r *fakeOptionRepo) CodeExists(code string, excludeID int64) (bool, error) {
	for _, o := range r.options {
		if o.ID != excludeID && o.OptionCode == code {
			return true, nil
		}
	}
	return false, nil
}

type fakeOrderRepo struct {
	nextID int64
	orders map[int64]*entity.Order
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{nextID: 1, orders: make(map[int64]*entity.Order)}
}

func (r *fakeOrderRepo) Create(o *entity.Order) error {
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

func (r *fakeOrderRepo) GetByID(id int64) (*entity.Order, error) {
	o, ok := r.orders[id]
	if !ok {
		return nil, nil
	}
	cp := *o
	cp.Items = append([]entity.OrderItem(nil), o.Items...)
	return &cp, nil
}

func (r *fakeOrderRepo) GetByNumber(number string) (*entity.Order, error) {
	for _, o := range r.orders {
		if o.OrderNumber == number {
			return r.GetByID(o.ID)
		}
	}
	return nil, nil
}

func (r *fakeOrderRepo) ListSummaries() ([]*entity.OrderSummary, error) {
	out := make([]*entity.OrderSummary, 0, len(r.orders))
	for id := int64(1); id < r.nextID; id++ {
		if o, ok := r.orders[id]; ok {
			out = append(out, toSummary(o))
		}
	}
	return out, nil
}

func (r *fakeOrderRepo) ListSummariesByStatus(status string) ([]*entity.OrderSummary, error) {
	out := make([]*entity.OrderSummary, 0)
	for id := int64(1); id < r.nextID; id++ {
		if o, ok := r.orders[id]; ok && o.OrderStatus == status {
			out = append(out, toSummary(o))
		}
	}
	return out, nil
}

func (r *fakeOrderRepo) UpdateStatus(id int64, status string) (bool, error) {
	o, ok := r.orders[id]
	if !ok {
		return false, nil
	}
	o.OrderStatus = status
	return true, nil
}

func (r *fakeOrderRepo) NumberExists(number string) (bool, error) {
	for _, o := range r.orders {
		if o.OrderNumber == number {
			return true, nil
		}
	}
	return false, nil
}

func toSummary(o *entity.Order) *entity.OrderSummary {
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

// fakeTxRunner ejecuta el callback directamente con los repos en memoria;
// no hay transacción real que abrir.
type fakeTxRunner struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
}

func (r *fakeTxRunner) Run(_ context.Context, fn func(repository.OrderRepository, repository.ProductRepository) error) error {
	return fn(r.orderRepo, r.productRepo)
}
