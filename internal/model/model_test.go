package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Residential", "residential"},
		{"Lake House No. 3", "lake-house-no-3"},
		{"  Café & Bar  ", "caf-bar"},
		{"already-slugged", "already-slugged"},
		{"---", ""},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Slugify(tt.in), "Slugify(%q)", tt.in)
	}
}

func TestProjectImageFields(t *testing.T) {
	hero := &ImageRef{URL: "h"}
	img := &ImageRef{URL: "i"}
	gif := &ImageRef{URL: "g"}

	p := &Project{
		Name:     "Lakehouse",
		Category: "Residential",
		Hero:     hero,
		Sections: []Section{
			{Kind: SectionText, Body: "intro"},
			{Kind: SectionImage, Image: img},
			{Kind: SectionGIF, Image: gif},
			{Kind: SectionImage}, // image section without payload is skipped
		},
	}

	fields := p.ImageFields()
	assert.Len(t, fields, 3)
	assert.Equal(t, "hero", fields[0].Path)
	assert.Same(t, hero, fields[0].Ref)
	assert.Equal(t, "sections[1].image", fields[1].Path)
	assert.Equal(t, SectionImage, fields[1].Kind)
	assert.Equal(t, "sections[2].image", fields[2].Path)
	assert.Equal(t, SectionGIF, fields[2].Kind)

	assert.Equal(t, "vds/projects/residential/lakehouse", p.AssetFolder())
}

func TestProjectImageFieldsNoHero(t *testing.T) {
	p := &Project{Name: "Bare", Category: "Commercial"}
	assert.Empty(t, p.ImageFields())
}

func TestPageImageFields(t *testing.T) {
	banner := &ImageRef{URL: "b"}
	photo := &ImageRef{URL: "p"}

	pg := &Page{
		Slug: "Team Page",
		Sections: []Section{
			{Kind: SectionImage, Image: banner},
			{Kind: SectionText, Body: "who we are"},
		},
		Members: []Member{
			{Name: "A"},
			{Name: "B", Photo: photo},
		},
	}

	fields := pg.ImageFields()
	assert.Len(t, fields, 2)
	assert.Equal(t, "sections[0].image", fields[0].Path)
	assert.Equal(t, "members[1].photo", fields[1].Path)
	assert.Same(t, photo, fields[1].Ref)

	assert.Equal(t, "vds/pages/team-page", pg.AssetFolder())
}
