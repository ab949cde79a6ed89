package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/GLITCH-in-MATRIX9/VDS-Vikram-Design-Studio--sub000/internal/model"
)

type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) Upload(ctx context.Context, data []byte, format, folder string) (model.StoredAsset, error) {
	args := m.Called(ctx, data, format, folder)
	if f, ok := args.Get(0).(func(context.Context, []byte, string, string) model.StoredAsset); ok {
		return f(ctx, data, format, folder), args.Error(1)
	}
	return args.Get(0).(model.StoredAsset), args.Error(1)
}

func (m *MockStorage) Delete(ctx context.Context, assetID string) error {
	args := m.Called(ctx, assetID)
	return args.Error(0)
}
