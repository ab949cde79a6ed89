package content

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/GLITCH-in-MATRIX9/VDS-Vikram-Design-Studio--sub000/internal/model"
	storeMocks "github.com/GLITCH-in-MATRIX9/VDS-Vikram-Design-Studio--sub000/internal/storage/mocks"
)

func TestReconciler_ReconcileUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes only assets dropped by the mutation", func(t *testing.T) {
		mStore := new(storeMocks.MockStorage)
		mStore.On("Delete", ctx, "A").Return(nil).Once()

		r := NewReconciler(mStore, nil, nil)
		r.ReconcileUpdate(ctx, []string{"A", "B"}, []string{"B", "C"})

		mStore.AssertExpectations(t)
		mStore.AssertNotCalled(t, "Delete", ctx, "B")
		mStore.AssertNotCalled(t, "Delete", ctx, "C")
	})

	t.Run("no-op when nothing was dropped", func(t *testing.T) {
		mStore := new(storeMocks.MockStorage)

		r := NewReconciler(mStore, nil, nil)
		r.ReconcileUpdate(ctx, []string{"A"}, []string{"A"})

		mStore.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("duplicate references deleted once", func(t *testing.T) {
		mStore := new(storeMocks.MockStorage)
		mStore.On("Delete", ctx, "A").Return(nil).Once()

		r := NewReconciler(mStore, nil, nil)
		r.ReconcileUpdate(ctx, []string{"A", "A"}, nil)

		mStore.AssertExpectations(t)
	})

	t.Run("delete failures are swallowed and the loop continues", func(t *testing.T) {
		mStore := new(storeMocks.MockStorage)
		mStore.On("Delete", ctx, "X").Return(errors.New("remote down")).Once()
		mStore.On("Delete", ctx, "Y").Return(nil).Once()
		mStore.On("Delete", ctx, "Z").Return(errors.New("remote down")).Once()

		r := NewReconciler(mStore, nil, nil)
		r.ReconcileDelete(ctx, []string{"X", "Y", "Z"})

		mStore.AssertExpectations(t)
	})
}

func TestAssetIDs(t *testing.T) {
	proj := &model.Project{
		Name:     "Lakehouse",
		Category: "Residential",
		Hero:     &model.ImageRef{URL: "https://cdn/a.jpeg", AssetID: "a.jpeg"},
		Sections: []model.Section{
			{Kind: model.SectionText, Body: "copy"},
			{Kind: model.SectionImage, Image: &model.ImageRef{URL: "https://cdn/b.png", AssetID: "b.png"}},
			{Kind: model.SectionGIF, Image: &model.ImageRef{URL: "data:image/gif;base64,Zm8="}}, // unconverted, no handle yet
		},
	}

	assert.Equal(t, []string{"a.jpeg", "b.png"}, AssetIDs(proj))
}
