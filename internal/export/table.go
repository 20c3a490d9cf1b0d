// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package export

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/MKhiriev/go-dgc/internal/logger"
	"github.com/MKhiriev/go-dgc/models"
)

// RemoteRefs reports whether any remote client still holds an object.
type RemoteRefs interface {
	IsEmpty(objID models.ObjectID, now time.Time) bool
}

// Export is one entry of the table.
type Export struct {
	ID         models.ObjectID
	Name       string
	Permanent  bool
	LocalRefs  int
	ExportedAt time.Time
}

// Table is an in-memory, concurrency-safe export table.
type Table struct {
	mu      sync.Mutex
	exports map[models.ObjectID]*Export
	nextNum int64

	space  models.UID
	remote RemoteRefs
	now    func() time.Time
	logger *logger.Logger
}

// NewTable creates an empty table allocating ids in space.
func NewTable(space models.UID, remote RemoteRefs, log *logger.Logger) *Table {
	return &Table{
		exports: make(map[models.ObjectID]*Export),
		space:   space,
		remote:  remote,
		now:     time.Now,
		logger:  log.WithComponent("export_table"),
	}
}

// Export registers a new object and returns its id. The export starts with
// one local reference.
func (t *Table) Export(name string, permanent bool) models.ObjectID {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.nextNum++
	id := models.ObjectID{Num: t.nextNum, Space: t.space}
	t.exports[id] = &Export{
		ID:         id,
		Name:       name,
		Permanent:  permanent,
		LocalRefs:  1,
		ExportedAt: t.now(),
	}

	t.logger.Debug().Str("object_id", id.String()).Str("name", name).Msg("object exported")

	return id
}

// Exists reports whether id is currently exported.
func (t *Table) Exists(id models.ObjectID) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	_, ok := t.exports[id]
	return ok
}

// Get returns a copy of the export registered under id.
func (t *Table) Get(id models.ObjectID) (Export, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	e, ok := t.exports[id]
	if !ok {
		return Export{}, false
	}

	return *e, true
}

// List returns copies of all exports ordered by object number.
func (t *Table) List() []Export {
	t.mu.Lock()
	list := make([]Export, 0, len(t.exports))
	for _, e := range t.exports {
		list = append(list, *e)
	}
	t.mu.Unlock()

	sort.Slice(list, func(i, j int) bool { return list[i].ID.Num < list[j].ID.Num })

	return list
}

// Pin adds a local reference to id.
func (t *Table) Pin(id models.ObjectID) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	e, ok := t.exports[id]
	if !ok {
		return ErrObjectNotExported
	}
	e.LocalRefs++

	return nil
}

// Unpin drops a local reference to id. When the last local reference goes
// and no remote client holds the object, the export is removed and Unpin
// reports true.
func (t *Table) Unpin(ctx context.Context, id models.ObjectID) (bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	e, ok := t.exports[id]
	if !ok {
		return false, ErrObjectNotExported
	}
	if e.LocalRefs == 0 {
		return false, ErrNotPinned
	}
	e.LocalRefs--

	return t.reclaimLocked(ctx, e), nil
}

// Reclaim is called once the last remote holder of id is gone. The export
// is removed unless it is permanent, still pinned, or was re-referenced in
// the meantime.
func (t *Table) Reclaim(ctx context.Context, id models.ObjectID) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	e, ok := t.exports[id]
	if !ok {
		return ErrObjectNotExported
	}

	t.reclaimLocked(ctx, e)
	return nil
}

func (t *Table) reclaimLocked(ctx context.Context, e *Export) bool {
	log := logger.FromContext(ctx)

	if e.Permanent || e.LocalRefs > 0 {
		return false
	}
	if t.remote != nil && !t.remote.IsEmpty(e.ID, t.now()) {
		return false
	}

	delete(t.exports, e.ID)
	log.Info().Str("object_id", e.ID.String()).Str("name", e.Name).Msg("export reclaimed")

	return true
}

// Len returns the number of exports.
func (t *Table) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	return len(t.exports)
}
