package content

import (
	"context"
	"fmt"

	"github.com/GLITCH-in-MATRIX9/VDS-Vikram-Design-Studio--sub000/internal/model"
)

// Uploader is the slice of the asset store the rewriter needs. Satisfied by
// storage.Storage implementations, including the retrying decorator.
type Uploader interface {
	Upload(ctx context.Context, data []byte, format, folder string) (model.StoredAsset, error)
}

// FieldError names the content field that caused a rewrite to abort.
type FieldError struct {
	Path string
	Err  error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("field %s: %v", e.Path, e.Err)
}

func (e *FieldError) Unwrap() error { return e.Err }

// Rewriter converts inline image payloads inside a content tree into stored
// asset references. It is a pure transform over the tree plus Uploader calls;
// it performs no database I/O.
type Rewriter struct {
	validator *Validator
	uploader  Uploader
}

func NewRewriter(validator *Validator, uploader Uploader) *Rewriter {
	return &Rewriter{validator: validator, uploader: uploader}
}

// pendingUpload is a fully screened inline payload awaiting conversion.
type pendingUpload struct {
	field  model.ImageField
	format string
	data   []byte
}

// Rewrite converts every inline image payload inside tree into a stored asset
// reference, mutating the fields in place. Fields already holding an external
// reference are left untouched.
//
// Two phases, all-or-nothing: every field is screened and decoded before the
// first upload starts, so a rejected field can never strand assets uploaded
// for fields walked earlier. Uploads then run sequentially in the tree's
// natural order; the first upload failure aborts with a FieldError and the
// record is not persisted.
func (rw *Rewriter) Rewrite(ctx context.Context, tree model.ContentTree) error {
	folder := tree.AssetFolder()

	var uploads []pendingUpload
	for _, f := range tree.ImageFields() {
		if f.Ref == nil || f.Ref.URL == "" {
			continue
		}
		inline, ok, err := rw.validator.Validate(f.Ref.URL)
		if err != nil {
			return &FieldError{Path: f.Path, Err: err}
		}
		if !ok {
			// Already a stored reference; never re-uploaded.
			continue
		}
		data, err := inline.Decode()
		if err != nil {
			return &FieldError{Path: f.Path, Err: err}
		}
		uploads = append(uploads, pendingUpload{field: f, format: inline.Format, data: data})
	}

	for _, u := range uploads {
		asset, err := rw.uploader.Upload(ctx, u.data, u.format, folder)
		if err != nil {
			return &FieldError{Path: u.field.Path, Err: err}
		}
		u.field.Ref.URL = asset.URL
		u.field.Ref.AssetID = asset.AssetID
	}
	return nil
}
