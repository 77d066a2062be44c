package memory

import (
	"context"

	"tms/internal/core/domain/model/kernel"
	"tms/internal/pkg/errs"
)

// collection is the committed state of one aggregate type. Values are
// private copies; nothing outside the store ever holds them.
type collection[A any] struct {
	param string
	rows  map[kernel.UUID]A
	clone func(A) (A, error)
	owner func(A) kernel.UUID

	// conflicts reports whether two distinct aggregates violate a
	// uniqueness constraint of the table.
	conflicts func(a, b A) bool
}

func newCollection[A any](
	param string,
	clone func(A) (A, error),
	owner func(A) kernel.UUID,
	conflicts func(a, b A) bool,
) *collection[A] {
	return &collection[A]{
		param:     param,
		rows:      make(map[kernel.UUID]A),
		clone:     clone,
		owner:     owner,
		conflicts: conflicts,
	}
}

// view reads committed rows through the writes staged by one transaction.
// A nil staged map means every write is applied immediately.
type view[A any] struct {
	store  *Store
	base   *collection[A]
	staged map[kernel.UUID]A
}

func (v view[A]) get(ctx context.Context, companyID, id kernel.UUID) (A, error) {
	var zero A
	if err := ctx.Err(); err != nil {
		return zero, errs.NewStoreError("get "+v.base.param, err)
	}

	row, ok := v.lookup(id)
	if !ok || v.base.owner(row) != companyID {
		return zero, errs.NewObjectNotFoundError(v.base.param, id.String())
	}
	return v.base.clone(row)
}

func (v view[A]) exists(companyID, id kernel.UUID) bool {
	row, ok := v.lookup(id)
	return ok && v.base.owner(row) == companyID
}

func (v view[A]) lookup(id kernel.UUID) (A, bool) {
	if row, ok := v.staged[id]; ok {
		return row, true
	}

	v.store.mu.RLock()
	defer v.store.mu.RUnlock()
	row, ok := v.base.rows[id]
	return row, ok
}

// list returns copies of the company's rows accepted by keep, unordered.
func (v view[A]) list(ctx context.Context, companyID kernel.UUID, keep func(A) bool) ([]A, error) {
	if err := ctx.Err(); err != nil {
		return nil, errs.NewStoreError("list "+v.base.param, err)
	}

	var out []A
	for _, row := range v.snapshot() {
		if v.base.owner(row) != companyID || !keep(row) {
			continue
		}
		c, err := v.base.clone(row)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

// snapshot merges staged rows over the committed ones.
func (v view[A]) snapshot() map[kernel.UUID]A {
	v.store.mu.RLock()
	merged := make(map[kernel.UUID]A, len(v.base.rows)+len(v.staged))
	for id, row := range v.base.rows {
		merged[id] = row
	}
	v.store.mu.RUnlock()

	for id, row := range v.staged {
		merged[id] = row
	}
	return merged
}

func (v view[A]) insert(ctx context.Context, id kernel.UUID, aggregate A) error {
	return v.write(ctx, "add "+v.base.param, func() error {
		if _, ok := v.lookup(id); ok {
			return errs.NewBusinessRuleViolatedError("record already exists")
		}
		if v.base.conflicts != nil {
			for otherID, other := range v.snapshot() {
				if otherID != id && v.base.conflicts(aggregate, other) {
					return errs.NewBusinessRuleViolatedError("record already exists")
				}
			}
		}
		return nil
	}, id, aggregate)
}

// replace overwrites an existing row after check accepts the stored one.
func (v view[A]) replace(ctx context.Context, id kernel.UUID, aggregate A, check func(stored A) error) error {
	return v.write(ctx, "update "+v.base.param, func() error {
		stored, ok := v.lookup(id)
		if !ok || v.base.owner(stored) != v.base.owner(aggregate) {
			return errs.NewObjectNotFoundError(v.base.param, id.String())
		}
		if check != nil {
			return check(stored)
		}
		return nil
	}, id, aggregate)
}

func (v view[A]) write(ctx context.Context, op string, precondition func() error, id kernel.UUID, aggregate A) error {
	if err := ctx.Err(); err != nil {
		return errs.NewStoreError(op, err)
	}

	row, err := v.base.clone(aggregate)
	if err != nil {
		return err
	}

	if v.staged != nil {
		if err = precondition(); err != nil {
			return err
		}
		v.staged[id] = row
		return nil
	}

	// Outside a transaction the write still has to wait for the running one.
	if err = v.store.acquire(ctx); err != nil {
		return errs.NewStoreError(op, err)
	}
	defer v.store.release()

	if err = precondition(); err != nil {
		return err
	}

	v.store.mu.Lock()
	v.base.rows[id] = row
	v.store.mu.Unlock()
	return nil
}

func (v view[A]) commit() {
	for id, row := range v.staged {
		v.base.rows[id] = row
	}
}
