package model

import (
	"fmt"
	"strings"
	"time"
)

// Section is one ordered node of an owning record's content tree.
// Text sections carry Body; image/gif sections carry Image.
type Section struct {
	Kind  SectionKind `json:"kind"`
	Name  string      `json:"name,omitempty"`
	Body  string      `json:"body,omitempty"`
	Image *ImageRef   `json:"image,omitempty"`
}

// Project is a portfolio entry edited through the admin panel.
type Project struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Description string    `json:"description,omitempty"`
	Hero        *ImageRef `json:"hero,omitempty"`
	Sections    []Section `json:"sections"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ImageFields returns every image-bearing field of the project, hero first,
// then sections in tree order.
func (p *Project) ImageFields() []ImageField {
	fields := make([]ImageField, 0, len(p.Sections)+1)
	if p.Hero != nil {
		fields = append(fields, ImageField{Path: "hero", Kind: SectionImage, Ref: p.Hero})
	}
	for i := range p.Sections {
		s := &p.Sections[i]
		if (s.Kind == SectionImage || s.Kind == SectionGIF) && s.Image != nil {
			fields = append(fields, ImageField{
				Path: fmt.Sprintf("sections[%d].image", i),
				Kind: s.Kind,
				Ref:  s.Image,
			})
		}
	}
	return fields
}

// AssetFolder derives the provider-side folder for the project's assets from
// its category and name, e.g. "vds/projects/residential/lakehouse".
func (p *Project) AssetFolder() string {
	return strings.TrimRight("vds/projects/"+Slugify(p.Category)+"/"+Slugify(p.Name), "/")
}

// Slugify lowercases s and collapses anything outside [a-z0-9] into single
// hyphens, producing an S3-friendly path segment.
func Slugify(s string) string {
	var b strings.Builder
	hyphen := false
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			hyphen = false
		default:
			if !hyphen && b.Len() > 0 {
				b.WriteByte('-')
				hyphen = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}
