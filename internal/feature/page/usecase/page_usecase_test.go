package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appentity "wordford/internal/feature/app/domain/entity"
	appusecase "wordford/internal/feature/app/usecase"
	"wordford/internal/feature/page/domain/entity"
)

type mockPageRepository struct {
	CreateFunc    func(ctx context.Context, page *entity.Page) error
	FindByIDFunc  func(ctx context.Context, id uint) (*entity.Page, error)
	ListByAppFunc func(ctx context.Context, appID uint) ([]entity.Page, error)
	DeleteFunc    func(ctx context.Context, id uint) error
}

func (m *mockPageRepository) Create(ctx context.Context, page *entity.Page) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, page)
	}
	return nil
}

func (m *mockPageRepository) FindByID(ctx context.Context, id uint) (*entity.Page, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, ErrPageNotFound
}

func (m *mockPageRepository) ListByApp(ctx context.Context, appID uint) ([]entity.Page, error) {
	if m.ListByAppFunc != nil {
		return m.ListByAppFunc(ctx, appID)
	}
	return []entity.Page{}, nil
}

func (m *mockPageRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

type mockAppFinder struct {
	FindByIDFunc func(ctx context.Context, id uint) (*appentity.App, error)
}

func (m *mockAppFinder) FindByID(ctx context.Context, id uint) (*appentity.App, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return &appentity.App{ID: id}, nil
}

func TestPageUsecase_Create(t *testing.T) {
	t.Run("created under an existing app", func(t *testing.T) {
		pages := &mockPageRepository{
			CreateFunc: func(_ context.Context, page *entity.Page) error {
				page.ID = 4
				return nil
			},
		}
		uc := NewPageUsecase(pages, &mockAppFinder{})

		page, err := uc.Create(context.Background(), 2, "home")

		require.NoError(t, err)
		assert.Equal(t, uint(4), page.ID)
		assert.Equal(t, uint(2), page.AppID)
		assert.Equal(t, "home", page.Name)
	})

	t.Run("missing app", func(t *testing.T) {
		apps := &mockAppFinder{
			FindByIDFunc: func(context.Context, uint) (*appentity.App, error) {
				return nil, appusecase.ErrAppNotFound
			},
		}
		uc := NewPageUsecase(&mockPageRepository{}, apps)

		_, err := uc.Create(context.Background(), 2, "home")

		assert.ErrorIs(t, err, ErrAppNotFound)
	})

	t.Run("app lookup failure", func(t *testing.T) {
		dbErr := errors.New("connection reset")
		apps := &mockAppFinder{
			FindByIDFunc: func(context.Context, uint) (*appentity.App, error) { return nil, dbErr },
		}
		uc := NewPageUsecase(&mockPageRepository{}, apps)

		_, err := uc.Create(context.Background(), 2, "home")

		assert.ErrorIs(t, err, dbErr)
	})
}

func TestPageUsecase_GetAndDelete(t *testing.T) {
	pages := &mockPageRepository{
		FindByIDFunc: func(_ context.Context, id uint) (*entity.Page, error) {
			if id == 1 {
				return &entity.Page{ID: 1, Name: "home"}, nil
			}
			return nil, ErrPageNotFound
		},
		DeleteFunc: func(_ context.Context, id uint) error {
			if id == 1 {
				return nil
			}
			return ErrPageNotFound
		},
	}
	uc := NewPageUsecase(pages, &mockAppFinder{})

	page, err := uc.Get(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "home", page.Name)

	_, err = uc.Get(context.Background(), 2)
	assert.ErrorIs(t, err, ErrPageNotFound)

	assert.NoError(t, uc.Delete(context.Background(), 1))
	assert.ErrorIs(t, uc.Delete(context.Background(), 2), ErrPageNotFound)
}
