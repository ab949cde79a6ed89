package model

import (
	"fmt"
	"time"
)

// Member is a team roster entry on a page.
type Member struct {
	Name  string    `json:"name"`
	Role  string    `json:"role,omitempty"`
	Photo *ImageRef `json:"photo,omitempty"`
}

// Page is a site page singleton (about, studio, team), created on first admin
// edit and keyed by slug. Sections cover hero/gallery/carousel content;
// Members covers team photos.
type Page struct {
	ID        string    `json:"id"`
	Slug      string    `json:"slug"`
	Title     string    `json:"title"`
	Sections  []Section `json:"sections"`
	Members   []Member  `json:"members,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ImageFields returns every image-bearing field of the page: section images in
// tree order, then member photos.
func (p *Page) ImageFields() []ImageField {
	fields := make([]ImageField, 0, len(p.Sections)+len(p.Members))
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
	for i := range p.Members {
		m := &p.Members[i]
		if m.Photo != nil {
			fields = append(fields, ImageField{
				Path: fmt.Sprintf("members[%d].photo", i),
				Kind: SectionImage,
				Ref:  m.Photo,
			})
		}
	}
	return fields
}

// AssetFolder namespaces page assets by slug, e.g. "vds/pages/about".
func (p *Page) AssetFolder() string {
	return "vds/pages/" + Slugify(p.Slug)
}
