// Package service contains the generic entity-lifecycle engine and the
// entity services built on top of it.
package service

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/kharvol/tms/internal/errs"
	"github.com/kharvol/tms/internal/model"
	"github.com/kharvol/tms/internal/patch"
	"github.com/kharvol/tms/internal/repository"
	"github.com/kharvol/tms/internal/validation"
)

// Record is a persisted entity exposing its identity/audit envelope.
type Record interface {
	Env() *model.Envelope
}

// Translator maps between a transfer object D and a persisted record M.
// All four operations are pure with respect to the envelope: identity and
// audit fields are never copied from a transfer object.
type Translator[D any, M Record] interface {
	// ToModel builds a new record from d, for creation.
	ToModel(d D) M
	// ToDTO builds a transfer object from m, excluding write-only fields.
	ToDTO(m M) D
	// Overwrite replaces every entity field of m from d: non-nil fields
	// of d are copied, nil fields clear the record field (PUT semantics).
	Overwrite(m M, d D)
	// MergeInto copies only the non-nil fields of d onto m, leaving the
	// rest untouched (PATCH semantics).
	MergeInto(m M, d D)
	// DecodePatch turns a patch document into a sparse transfer object:
	// only the document's valued fields become non-nil.
	DecodePatch(doc patch.Document) (D, error)
}

// Hooks are entity-specific extension points invoked at fixed points in an
// operation's lifecycle. Every hook is optional.
type Hooks[D any, M Record] struct {
	BeforeSave   func(ctx context.Context, d *D, m M) error
	AfterSave    func(ctx context.Context, d *D, m M) error
	BeforeUpdate func(ctx context.Context, d *D, m M) error
	AfterUpdate  func(ctx context.Context, d *D, m M) error
	BeforePatch  func(ctx context.Context, doc patch.Document, m M) error
	AfterPatch   func(ctx context.Context, doc patch.Document, m M) error
	BeforeDelete func(ctx context.Context, id string) error
	AfterDelete  func(ctx context.Context, id string) error

	// ValidateOnExist replaces the default existence check, typically to
	// attach a localized message. It must return errs.ErrNotFound-matching
	// errors for absent ids.
	ValidateOnExist func(ctx context.Context, id string) error
	// ValidateOnDuplicate rejects transfer objects whose natural key is
	// already taken, before any mutation.
	ValidateOnDuplicate func(ctx context.Context, d D) error
	// ValidatePatched runs entity-specific checks against the post-merge
	// transfer object, after schema validation, before persistence.
	ValidatePatched func(ctx context.Context, d D) error
}

// Clearers is the settable-fields-by-name table of one entity: it maps
// patchable field names to closures clearing the field to its zero value.
// A patch naming a field outside the table is malformed.
type Clearers[M Record] map[string]func(m M)

// Base is the generic lifecycle engine. It is stateless between calls and
// safe for concurrent use; isolation between racing calls on one id is the
// storage collaborator's concern.
type Base[D any, M Record] struct {
	store    repository.Store[M]
	tr       Translator[D, M]
	rules    *validation.Rules[D]
	clearers Clearers[M]
	hooks    Hooks[D, M]
	newID    func() string
}

// Option configures optional engine behavior.
type Option[D any, M Record] func(*Base[D, M])

// WithIDGenerator replaces the default time-ordered id generator.
func WithIDGenerator[D any, M Record](gen func() string) Option[D, M] {
	return func(b *Base[D, M]) { b.newID = gen }
}

// NewBase assembles a lifecycle engine from its injected strategies.
func NewBase[D any, M Record](
	store repository.Store[M],
	tr Translator[D, M],
	rules *validation.Rules[D],
	clearers Clearers[M],
	hooks Hooks[D, M],
	opts ...Option[D, M],
) *Base[D, M] {
	b := &Base[D, M]{
		store:    store,
		tr:       tr,
		rules:    rules,
		clearers: clearers,
		hooks:    hooks,
		newID:    NewID,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// NewID returns a fresh UUIDv7 string: globally unique and monotonically
// increasing in generation order, so insertion order is recoverable from
// identifier order alone.
func NewID() string {
	return uuid.Must(uuid.NewV7()).String()
}

// Save validates d against the OnCreate group, runs the duplicate check
// and save hooks, assigns an identifier and persists a new record.
func (s *Base[D, M]) Save(ctx context.Context, d D) (D, error) {
	var zero D
	if err := s.validate(ctx, d, validation.OnCreate, validation.Default); err != nil {
		return zero, err
	}
	if h := s.hooks.ValidateOnDuplicate; h != nil {
		if err := h(ctx, d); err != nil {
			return zero, err
		}
	}

	m := s.tr.ToModel(d)
	if h := s.hooks.BeforeSave; h != nil {
		if err := h(ctx, &d, m); err != nil {
			return zero, err
		}
	}
	s.assignID(m)

	saved, err := s.store.Save(ctx, m)
	if err != nil {
		return zero, err
	}
	if h := s.hooks.AfterSave; h != nil {
		if err := h(ctx, &d, saved); err != nil {
			return zero, err
		}
	}
	return s.tr.ToDTO(saved), nil
}

// FindByID loads one entity; errs.ErrNotFound when absent.
func (s *Base[D, M]) FindByID(ctx context.Context, id string) (D, error) {
	var zero D
	m, err := s.store.FindByID(ctx, id)
	if err != nil {
		return zero, err
	}
	return s.tr.ToDTO(m), nil
}

// FindAll returns every entity ordered by id.
func (s *Base[D, M]) FindAll(ctx context.Context) ([]D, error) {
	models, err := s.store.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	dtos := make([]D, 0, len(models))
	for _, m := range models {
		dtos = append(dtos, s.tr.ToDTO(m))
	}
	return dtos, nil
}

// FindPage returns one page of entities ordered by id.
func (s *Base[D, M]) FindPage(ctx context.Context, page repository.Page) (repository.PageResult[D], error) {
	result, err := s.store.FindPage(ctx, page)
	if err != nil {
		return repository.PageResult[D]{}, err
	}
	dtos := make([]D, 0, len(result.Content))
	for _, m := range result.Content {
		dtos = append(dtos, s.tr.ToDTO(m))
	}
	return repository.PageResult[D]{
		Content:       dtos,
		Number:        result.Number,
		Size:          result.Size,
		TotalElements: result.TotalElements,
		TotalPages:    result.TotalPages,
	}, nil
}

// Update replaces every entity field of the stored record from d
// (PUT semantics: fields absent on d are cleared).
func (s *Base[D, M]) Update(ctx context.Context, id string, d D) (D, error) {
	var zero D
	if err := s.checkExists(ctx, id); err != nil {
		return zero, err
	}
	m, err := s.store.FindByID(ctx, id)
	if err != nil {
		return zero, err
	}

	if h := s.hooks.BeforeUpdate; h != nil {
		if err := h(ctx, &d, m); err != nil {
			return zero, err
		}
	}
	if err := s.validate(ctx, d, validation.OnUpdate, validation.Default); err != nil {
		return zero, err
	}

	s.tr.Overwrite(m, d)
	saved, err := s.store.Save(ctx, m)
	if err != nil {
		return zero, err
	}
	if h := s.hooks.AfterUpdate; h != nil {
		if err := h(ctx, &d, saved); err != nil {
			return zero, err
		}
	}
	return s.tr.ToDTO(saved), nil
}

// Patch applies a sparse three-state update: fields set to null in doc are
// cleared, valued fields are merged, absent fields stay untouched. The
// merged result is validated before anything is persisted; the record
// instance mutated here is a private copy of the stored row, so a
// validation failure leaves storage and concurrent readers unaffected.
func (s *Base[D, M]) Patch(ctx context.Context, id string, doc patch.Document) (D, error) {
	var zero D
	if err := s.checkExists(ctx, id); err != nil {
		return zero, err
	}
	m, err := s.store.FindByID(ctx, id)
	if err != nil {
		return zero, err
	}

	if h := s.hooks.BeforePatch; h != nil {
		if err := h(ctx, doc, m); err != nil {
			return zero, err
		}
	}
	if err := s.clearNullFields(m, doc); err != nil {
		return zero, err
	}
	sparse, err := s.tr.DecodePatch(doc)
	if err != nil {
		return zero, err
	}
	s.tr.MergeInto(m, sparse)
	if h := s.hooks.AfterPatch; h != nil {
		if err := h(ctx, doc, m); err != nil {
			return zero, err
		}
	}

	patched := s.tr.ToDTO(m)
	if err := s.validate(ctx, patched, validation.OnPatch, validation.Default); err != nil {
		return zero, err
	}
	if h := s.hooks.ValidatePatched; h != nil {
		if err := h(ctx, patched); err != nil {
			return zero, err
		}
	}

	saved, err := s.store.Save(ctx, m)
	if err != nil {
		return zero, err
	}
	return s.tr.ToDTO(saved), nil
}

// Delete removes an entity; errs.ErrNotFound when the id is absent.
func (s *Base[D, M]) Delete(ctx context.Context, id string) error {
	if err := s.checkExists(ctx, id); err != nil {
		return err
	}
	if h := s.hooks.BeforeDelete; h != nil {
		if err := h(ctx, id); err != nil {
			return err
		}
	}
	if err := s.store.DeleteByID(ctx, id); err != nil {
		return err
	}
	if h := s.hooks.AfterDelete; h != nil {
		if err := h(ctx, id); err != nil {
			return err
		}
	}
	return nil
}

// clearNullFields is the null-clearing half of the patch merge: every key
// in doc must name a patchable field, and explicitly-null keys clear the
// corresponding record field. Valued keys are applied later by MergeInto.
func (s *Base[D, M]) clearNullFields(m M, doc patch.Document) error {
	for _, name := range doc.Fields() {
		clearer, ok := s.clearers[name]
		if !ok {
			return errs.MalformedPatchf(name)
		}
		if doc.IsNull(name) {
			clearer(m)
		}
	}
	return nil
}

func (s *Base[D, M]) assignID(m M) {
	if env := m.Env(); env.ID == "" {
		env.ID = s.newID()
	}
}

func (s *Base[D, M]) checkExists(ctx context.Context, id string) error {
	if h := s.hooks.ValidateOnExist; h != nil {
		return h(ctx, id)
	}
	exists, err := s.store.ExistsByID(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return errs.ErrNotFound
	}
	return nil
}

func (s *Base[D, M]) validate(ctx context.Context, d D, groups ...validation.Group) error {
	if s.rules == nil {
		return nil
	}
	if violations := s.rules.Validate(ctx, d, groups...); len(violations) > 0 {
		return &errs.ValidationError{Violations: violations}
	}
	return nil
}
