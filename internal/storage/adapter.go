// Package storage serializes the recipe list into a key-value store. It
// seeds starter recipes on first run, backs up unreadable payloads instead
// of discarding them, and folds the legacy key into the canonical one.
package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"

	apperrors "github.com/pageza/recipe-catalog/internal/errors"
	"github.com/pageza/recipe-catalog/internal/kv"
	"github.com/pageza/recipe-catalog/internal/model"
)

const backupInfix = "_backup_"

// Adapter reads and writes the recipe list under a fixed key.
type Adapter struct {
	store           kv.Store
	key             string
	legacyKey       string
	defaultCategory string
	now             func() time.Time

	// unread is set while the canonical key has not been read successfully.
	// A write in that state first backs up whatever is stored there.
	unread atomic.Bool
}

// Option configures an Adapter.
type Option func(*Adapter)

// WithLegacyKey sets the key migrated into the canonical key on load.
func WithLegacyKey(key string) Option {
	return func(a *Adapter) { a.legacyKey = key }
}

// WithDefaultCategory sets the category given to records that lack one.
func WithDefaultCategory(category string) Option {
	return func(a *Adapter) { a.defaultCategory = category }
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(a *Adapter) { a.now = now }
}

// NewAdapter returns an Adapter storing the list under key.
func NewAdapter(store kv.Store, key string, opts ...Option) *Adapter {
	a := &Adapter{
		store:           store,
		key:             key,
		defaultCategory: DefaultCategory,
		now:             time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Key returns the canonical storage key.
func (a *Adapter) Key() string {
	return a.key
}

// Save replaces the stored list. Failures carry ErrStorageUnavailable. If the
// last Load could not read the stored list, Save keeps a backup of it before
// writing, and refuses to write while it still cannot be read.
func (a *Adapter) Save(ctx context.Context, recipes []model.Recipe) error {
	if a.unread.Load() {
		if err := a.preserveUnread(ctx); err != nil {
			return err
		}
	}
	if recipes == nil {
		recipes = []model.Recipe{}
	}
	data, err := json.Marshal(recipes)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternal, "encode recipes", err)
	}
	return a.store.Set(ctx, a.key, string(data))
}

// Load returns the stored list, seeding starter recipes when nothing
// readable is stored. If the store cannot be read or the reconciled list
// cannot be written back, Load still returns the list to use in memory
// together with an ErrStorageUnavailable error.
func (a *Adapter) Load(ctx context.Context) ([]model.Recipe, error) {
	now := a.now()

	raw, ok, err := a.store.Get(ctx, a.key)
	if err != nil {
		a.unread.Store(true)
		log.Warn().Err(err).Str("key", a.key).Msg("Storage unavailable, using starter recipes in memory")
		return Starters(now), err
	}
	a.unread.Store(false)

	var (
		recipes []model.Recipe
		found   bool
		dirty   bool
	)

	if ok {
		records, shape, perr := decode(raw)
		if perr != nil {
			_, _ = a.backup(ctx, a.key, raw, now)
			log.Warn().Err(perr).Str("key", a.key).Msg("Stored recipes are unreadable, reseeding")
		} else {
			found = true
			dirty = shape != shapeArray
			recipes = a.fromStored(records, now, false)
		}
	}

	legacyDone, legacyRecipes := a.readLegacy(ctx, now)
	if legacyDone {
		dirty = true
		if len(legacyRecipes) > 0 {
			found = true
			recipes = append(recipes, legacyRecipes...)
		}
	}

	if unique, dropped := dedupe(recipes); dropped > 0 {
		log.Warn().Int("dropped", dropped).Msg("Dropped recipes with duplicate ids")
		recipes = unique
		dirty = true
	}
	if assignIDs(recipes, now) > 0 {
		dirty = true
	}

	if !found {
		log.Info().Str("key", a.key).Msg("No stored recipes, seeding starters")
		recipes = Starters(now)
		dirty = true
	}

	if dirty {
		if err := a.Save(ctx, recipes); err != nil {
			log.Warn().Err(err).Str("key", a.key).Msg("Failed to write reconciled recipes")
			return recipes, err
		}
	}

	if legacyDone {
		if err := a.store.Delete(ctx, a.legacyKey); err != nil {
			log.Warn().Err(err).Str("key", a.legacyKey).Msg("Failed to clear legacy key")
		}
	}

	return recipes, nil
}

// Backups lists backup keys written for the canonical key, oldest first.
func (a *Adapter) Backups(ctx context.Context) ([]string, error) {
	return a.store.Keys(ctx, a.key+backupInfix)
}

// readLegacy decodes the legacy key. done reports whether the key held
// anything that should now be cleared.
func (a *Adapter) readLegacy(ctx context.Context, now time.Time) (done bool, recipes []model.Recipe) {
	if a.legacyKey == "" {
		return false, nil
	}
	raw, ok, err := a.store.Get(ctx, a.legacyKey)
	if err != nil {
		log.Warn().Err(err).Str("key", a.legacyKey).Msg("Failed to read legacy key")
		return false, nil
	}
	if !ok || raw == "" {
		return false, nil
	}

	records, _, perr := decode(raw)
	if perr != nil {
		_, _ = a.backup(ctx, a.legacyKey, raw, now)
		log.Warn().Err(perr).Str("key", a.legacyKey).Msg("Legacy recipes are unreadable")
		return true, nil
	}

	recipes = a.fromStored(records, now, true)
	log.Info().Int("count", len(recipes)).Str("from", a.legacyKey).Str("to", a.key).Msg("Migrating legacy recipes")
	return true, recipes
}

// backup keeps raw under <key>_backup_<unix ms>, bumping the suffix while a
// backup with that name already exists. It returns the backup key.
func (a *Adapter) backup(ctx context.Context, key, raw string, now time.Time) (string, error) {
	ts := now.UnixMilli()
	for {
		name := key + backupInfix + strconv.FormatInt(ts, 10)
		_, exists, err := a.store.Get(ctx, name)
		if err != nil {
			log.Warn().Err(err).Str("key", name).Msg("Failed to check backup key")
			return "", err
		}
		if exists {
			ts++
			continue
		}
		if err := a.store.Set(ctx, name, raw); err != nil {
			log.Warn().Err(err).Str("key", name).Msg("Failed to back up unreadable recipes")
			return "", err
		}
		log.Warn().Str("key", name).Int("bytes", len(raw)).Msg("Backed up unreadable recipes")
		return name, nil
	}
}

// preserveUnread reads the canonical key that Load could not, and copies
// anything stored there to a backup key before it is overwritten.
func (a *Adapter) preserveUnread(ctx context.Context) error {
	raw, ok, err := a.store.Get(ctx, a.key)
	if err != nil {
		return apperrors.StorageUnavailable("write "+a.key,
			fmt.Errorf("stored recipes have not been read: %w", err))
	}
	if ok && raw != "" {
		name, err := a.backup(ctx, a.key, raw, a.now())
		if err != nil {
			return apperrors.StorageUnavailable("back up "+a.key, err)
		}
		log.Warn().Str("key", a.key).Str("backup", name).Msg("Kept recipes stored before this session under a backup key")
	}
	a.unread.Store(false)
	return nil
}

func dedupe(recipes []model.Recipe) ([]model.Recipe, int) {
	seen := make(map[string]struct{}, len(recipes))
	out := recipes[:0:0]
	for _, r := range recipes {
		// Records without an id get one later and never collide.
		if r.ID == "" {
			out = append(out, r)
			continue
		}
		if _, dup := seen[r.ID]; dup {
			continue
		}
		seen[r.ID] = struct{}{}
		out = append(out, r)
	}
	return out, len(recipes) - len(out)
}

// assignIDs gives records stored without an id a fresh millisecond id that
// no other record uses. It returns how many ids were assigned.
func assignIDs(recipes []model.Recipe, now time.Time) int {
	used := make(map[string]struct{}, len(recipes))
	for _, r := range recipes {
		if r.ID != "" {
			used[r.ID] = struct{}{}
		}
	}

	ms, n := now.UnixMilli(), 0
	for i := range recipes {
		if recipes[i].ID != "" {
			continue
		}
		for {
			id := strconv.FormatInt(ms, 10)
			ms++
			if _, taken := used[id]; !taken {
				used[id] = struct{}{}
				recipes[i].ID = id
				break
			}
		}
		n++
	}
	return n
}
