package content

import (
	"context"
	"log"

	"github.com/GLITCH-in-MATRIX9/VDS-Vikram-Design-Studio--sub000/internal/model"
	"github.com/GLITCH-in-MATRIX9/VDS-Vikram-Design-Studio--sub000/internal/storage"
)

// Deleter is the slice of the asset store the reconciler needs.
type Deleter interface {
	Delete(ctx context.Context, assetID string) error
}

// Reconciler removes remote assets that a committed record mutation stopped
// referencing. It must run only after the owning record's write has been
// durably committed: a crash in between leaves at worst a harmless orphaned
// asset, never a record pointing at a deleted one.
type Reconciler struct {
	store   Deleter
	logger  *log.Logger
	metrics *storage.Metrics
}

// NewReconciler wraps store. logger and metrics may be nil.
func NewReconciler(store Deleter, logger *log.Logger, metrics *storage.Metrics) *Reconciler {
	if logger == nil {
		logger = log.Default()
	}
	return &Reconciler{store: store, logger: logger, metrics: metrics}
}

// AssetIDs collects the provider handles currently referenced by tree.
func AssetIDs(tree model.ContentTree) []string {
	var ids []string
	for _, f := range tree.ImageFields() {
		if f.Ref != nil && f.Ref.AssetID != "" {
			ids = append(ids, f.Ref.AssetID)
		}
	}
	return ids
}

// ReconcileUpdate deletes every asset referenced before the mutation but not
// after it. Failures are logged and swallowed; the record has already
// committed, so a failed cleanup only leaves an orphan for a later sweep.
func (r *Reconciler) ReconcileUpdate(ctx context.Context, before, after []string) {
	kept := make(map[string]struct{}, len(after))
	for _, id := range after {
		kept[id] = struct{}{}
	}
	seen := make(map[string]struct{}, len(before))
	for _, id := range before {
		if _, ok := kept[id]; ok {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		if err := r.store.Delete(ctx, id); err != nil {
			r.logger.Printf("asset cleanup failed: asset=%s cause=%v", id, err)
			if r.metrics != nil {
				r.metrics.OrphanDeletes.WithLabelValues("error").Inc()
			}
			continue
		}
		if r.metrics != nil {
			r.metrics.OrphanDeletes.WithLabelValues("success").Inc()
		}
	}
}

// ReconcileDelete targets every asset of a deleted record.
func (r *Reconciler) ReconcileDelete(ctx context.Context, refs []string) {
	r.ReconcileUpdate(ctx, refs, nil)
}
