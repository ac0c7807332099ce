package controller

import (
	"context"
	"strings"

	"github.com/vrocha/aquagas-api/internal/adapter/repository"
	"github.com/vrocha/aquagas-api/internal/domain/customer"
	"github.com/vrocha/aquagas-api/internal/domain/ledger"
	"github.com/vrocha/aquagas-api/internal/domain/order"
)

// Repositórios em memória para os testes de controller. Implementam as
// interfaces de domínio e devolvem os mesmos erros-sentinela dos
// repositórios Postgres.

type fakeOrderRepo struct {
	orders map[string]*order.Order
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[string]*order.Order)}
}

func (r *fakeOrderRepo) Create(_ context.Context, o *order.Order) error {
	r.orders[o.ID] = o
	return nil
}

func (r *fakeOrderRepo) FindByID(_ context.Context, id string) (*order.Order, error) {
	o, ok := r.orders[id]
	if !ok {
		return nil, repository.ErrOrderNotFound
	}
	return o, nil
}

func (r *fakeOrderRepo) FindByIDs(_ context.Context, ids []string) ([]*order.Order, error) {
	found := make([]*order.Order, 0, len(ids))
	for _, id := range ids {
		if o, ok := r.orders[id]; ok {
			found = append(found, o)
		}
	}
	return found, nil
}

func (r *fakeOrderRepo) List(_ context.Context, limit, offset int) ([]*order.Order, error) {
	all := make([]*order.Order, 0, len(r.orders))
	for _, o := range r.orders {
		all = append(all, o)
	}
	return all, nil
}

func (r *fakeOrderRepo) ListByStatus(_ context.Context, status order.Status, limit, offset int) ([]*order.Order, error) {
	matched := []*order.Order{}
	for _, o := range r.orders {
		if o.Status == status {
			matched = append(matched, o)
		}
	}
	return matched, nil
}

func (r *fakeOrderRepo) UpdateStatusBulk(_ context.Context, ids []string, status order.Status) error {
	for _, id := range ids {
		if o, ok := r.orders[id]; ok {
			o.Status = status
		}
	}
	return nil
}

func (r *fakeOrderRepo) CountAll(_ context.Context) (int, error) {
	return len(r.orders), nil
}

type fakeLedgerRepo struct {
	entries []*ledger.Entry
}

func newFakeLedgerRepo() *fakeLedgerRepo {
	return &fakeLedgerRepo{entries: []*ledger.Entry{}}
}

func (r *fakeLedgerRepo) Create(_ context.Context, e *ledger.Entry) error {
	r.entries = append(r.entries, e)
	return nil
}

func (r *fakeLedgerRepo) FindByID(_ context.Context, id string) (*ledger.Entry, error) {
	for _, e := range r.entries {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, repository.ErrEntryNotFound
}

func (r *fakeLedgerRepo) FindByIDs(_ context.Context, ids []string) ([]*ledger.Entry, error) {
	found := []*ledger.Entry{}
	for _, id := range ids {
		if e, err := r.FindByID(context.Background(), id); err == nil {
			found = append(found, e)
		}
	}
	return found, nil
}

func (r *fakeLedgerRepo) List(_ context.Context) ([]*ledger.Entry, error) {
	return r.entries, nil
}

func (r *fakeLedgerRepo) UpdateType(_ context.Context, id string, t ledger.Type) error {
	for _, e := range r.entries {
		if e.ID == id {
			e.RawType = string(t)
			e.Type = t
			return nil
		}
	}
	return repository.ErrEntryNotFound
}

type fakeCustomerRepo struct {
	customers []*customer.Customer
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{customers: []*customer.Customer{}}
}

func (r *fakeCustomerRepo) Create(_ context.Context, c *customer.Customer) error {
	r.customers = append(r.customers, c)
	return nil
}

func (r *fakeCustomerRepo) CreateBatch(_ context.Context, customers []*customer.Customer) error {
	r.customers = append(r.customers, customers...)
	return nil
}

func (r *fakeCustomerRepo) FindByID(_ context.Context, id string) (*customer.Customer, error) {
	for _, c := range r.customers {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, repository.ErrCustomerNotFound
}

func (r *fakeCustomerRepo) FindByName(_ context.Context, name string) (*customer.Customer, error) {
	for _, c := range r.customers {
		if strings.EqualFold(strings.TrimSpace(c.Name), strings.TrimSpace(name)) {
			return c, nil
		}
	}
	return nil, repository.ErrCustomerNotFound
}

func (r *fakeCustomerRepo) List(_ context.Context, limit, offset int) ([]*customer.Customer, error) {
	return r.customers, nil
}

func (r *fakeCustomerRepo) Search(_ context.Context, query string, limit, offset int) ([]*customer.Customer, error) {
	matched := []*customer.Customer{}
	for _, c := range r.customers {
		if strings.Contains(strings.ToLower(c.Name), strings.ToLower(query)) {
			matched = append(matched, c)
		}
	}
	return matched, nil
}

func (r *fakeCustomerRepo) Update(_ context.Context, c *customer.Customer) error {
	for i, existing := range r.customers {
		if existing.ID == c.ID {
			r.customers[i] = c
			return nil
		}
	}
	return repository.ErrCustomerNotFound
}

func (r *fakeCustomerRepo) CountAll(_ context.Context) (int, error) {
	return len(r.customers), nil
}
