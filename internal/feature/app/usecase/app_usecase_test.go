package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wordford/internal/feature/app/domain/entity"
	orgentity "wordford/internal/feature/org/domain/entity"
	orgusecase "wordford/internal/feature/org/usecase"
	pageentity "wordford/internal/feature/page/domain/entity"
)

type mockAppRepository struct {
	CreateFunc   func(ctx context.Context, app *entity.App) error
	FindByIDFunc func(ctx context.Context, id uint) (*entity.App, error)
	DeleteFunc   func(ctx context.Context, id uint) error
}

func (m *mockAppRepository) Create(ctx context.Context, app *entity.App) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, app)
	}
	return nil
}

func (m *mockAppRepository) FindByID(ctx context.Context, id uint) (*entity.App, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, ErrAppNotFound
}

func (m *mockAppRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

type mockOrgFinder struct {
	FindByIDFunc func(ctx context.Context, id uint) (*orgentity.Org, error)
}

func (m *mockOrgFinder) FindByID(ctx context.Context, id uint) (*orgentity.Org, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return &orgentity.Org{ID: id}, nil
}

type mockPageLister struct {
	ListByAppFunc func(ctx context.Context, appID uint) ([]pageentity.Page, error)
}

func (m *mockPageLister) ListByApp(ctx context.Context, appID uint) ([]pageentity.Page, error) {
	if m.ListByAppFunc != nil {
		return m.ListByAppFunc(ctx, appID)
	}
	return []pageentity.Page{}, nil
}

func TestAppUsecase_Create(t *testing.T) {
	in := CreateAppInput{OrgID: 2, Name: "site", Description: "marketing", URL: "https://example.com"}

	t.Run("created under an existing org", func(t *testing.T) {
		var stored *entity.App
		apps := &mockAppRepository{
			CreateFunc: func(_ context.Context, app *entity.App) error {
				app.ID = 11
				stored = app
				return nil
			},
		}
		uc := NewAppUsecase(apps, &mockOrgFinder{}, &mockPageLister{})

		app, err := uc.Create(context.Background(), in)

		require.NoError(t, err)
		assert.Same(t, stored, app)
		assert.Equal(t, uint(2), app.OrgID)
		assert.Equal(t, "site", app.Name)
		assert.Equal(t, "marketing", app.Description)
		assert.Equal(t, "https://example.com", app.URL)
	})

	t.Run("missing org", func(t *testing.T) {
		orgs := &mockOrgFinder{
			FindByIDFunc: func(context.Context, uint) (*orgentity.Org, error) {
				return nil, orgusecase.ErrOrgNotFound
			},
		}
		apps := &mockAppRepository{
			CreateFunc: func(context.Context, *entity.App) error {
				t.Fatal("Create must not be called")
				return nil
			},
		}
		uc := NewAppUsecase(apps, orgs, &mockPageLister{})

		_, err := uc.Create(context.Background(), in)

		assert.ErrorIs(t, err, ErrOrgNotFound)
	})

	t.Run("org lookup failure", func(t *testing.T) {
		dbErr := errors.New("connection reset")
		orgs := &mockOrgFinder{
			FindByIDFunc: func(context.Context, uint) (*orgentity.Org, error) { return nil, dbErr },
		}
		uc := NewAppUsecase(&mockAppRepository{}, orgs, &mockPageLister{})

		_, err := uc.Create(context.Background(), in)

		assert.ErrorIs(t, err, dbErr)
		assert.NotErrorIs(t, err, ErrOrgNotFound)
	})
}

func TestAppUsecase_GetWithPages(t *testing.T) {
	apps := &mockAppRepository{
		FindByIDFunc: func(_ context.Context, id uint) (*entity.App, error) {
			if id == 1 {
				return &entity.App{ID: 1, Name: "site"}, nil
			}
			return nil, ErrAppNotFound
		},
	}

	t.Run("app with pages", func(t *testing.T) {
		pages := &mockPageLister{
			ListByAppFunc: func(_ context.Context, appID uint) ([]pageentity.Page, error) {
				return []pageentity.Page{{ID: 1, AppID: appID, Name: "home"}, {ID: 2, AppID: appID, Name: "about"}}, nil
			},
		}
		uc := NewAppUsecase(apps, &mockOrgFinder{}, pages)

		view, err := uc.GetWithPages(context.Background(), 1)

		require.NoError(t, err)
		assert.Equal(t, "site", view.App.Name)
		require.Len(t, view.Pages, 2)
		assert.Equal(t, "about", view.Pages[1].Name)
	})

	t.Run("missing app", func(t *testing.T) {
		uc := NewAppUsecase(apps, &mockOrgFinder{}, &mockPageLister{})

		_, err := uc.GetWithPages(context.Background(), 2)

		assert.ErrorIs(t, err, ErrAppNotFound)
	})

	t.Run("page listing failure", func(t *testing.T) {
		dbErr := errors.New("timeout")
		pages := &mockPageLister{
			ListByAppFunc: func(context.Context, uint) ([]pageentity.Page, error) { return nil, dbErr },
		}
		uc := NewAppUsecase(apps, &mockOrgFinder{}, pages)

		_, err := uc.GetWithPages(context.Background(), 1)

		assert.ErrorIs(t, err, dbErr)
	})
}
