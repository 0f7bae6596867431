package usecase

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/rocketscienceinc/memory-match/internal/entity"
)

type mockSessionRepo struct {
	mock.Mock
}

func (that *mockSessionRepo) Save(ctx context.Context, record *entity.SessionRecord) error {
	args := that.Called(ctx, record)
	return args.Error(0)
}

func (that *mockSessionRepo) GetByID(ctx context.Context, id string) (*entity.SessionRecord, error) {
	args := that.Called(ctx, id)

	record, _ := args.Get(0).(*entity.SessionRecord)

	return record, args.Error(1)
}

func (that *mockSessionRepo) DeleteByID(ctx context.Context, id string) error {
	args := that.Called(ctx, id)
	return args.Error(0)
}
