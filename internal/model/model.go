// Package model contains the domain types shared across layers (HTTP, service,
// storage, persistence). Pure data, no business logic.
package model

// SectionKind tags a content section's variant.
type SectionKind string

const (
	SectionText  SectionKind = "text"
	SectionImage SectionKind = "image"
	SectionGIF   SectionKind = "gif"
)

// StoredAsset is the durable artifact produced by a successful upload:
// a publicly resolvable URL plus the opaque handle the provider needs for
// deletion later.
type StoredAsset struct {
	URL     string `json:"url"`
	AssetID string `json:"asset_id"`
	Size    int64  `json:"size"`
}

// ImageRef is an image-bearing field inside a content tree. Before conversion
// URL holds the inline data URI submitted by the editor; after conversion it
// holds the stored asset's URL and AssetID holds the provider handle.
type ImageRef struct {
	URL     string `json:"url"`
	AssetID string `json:"asset_id,omitempty"`
}

// ImageField pairs an ImageRef with its location inside the owning record, so
// rewrite failures can name the offending field.
type ImageField struct {
	Path string
	Kind SectionKind
	Ref  *ImageRef
}

// ContentTree is implemented by owning records whose content may carry images.
// ImageFields returns pointers into the record itself so a rewrite mutates it
// in place; AssetFolder names the provider-side folder assets are stored under.
type ContentTree interface {
	ImageFields() []ImageField
	AssetFolder() string
}
