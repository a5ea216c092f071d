package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/mikevskater/sheet-todo/internal/adapter"
	"github.com/mikevskater/sheet-todo/internal/logger"
	"github.com/mikevskater/sheet-todo/internal/mock"
	"github.com/mikevskater/sheet-todo/internal/store"
	"github.com/mikevskater/sheet-todo/models"
)

type syncFixture struct {
	surface *BufferSurface
	docs    *documentService
	remote  *mock.MockBasketAdapter
	drafts  *mock.MockDraftRepository
	sync    SyncService
}

func newSyncFixture(t *testing.T) *syncFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	surface := NewBufferSurface()
	docs := NewDocumentService(surface)
	docs.AttachObserver(NewObserver(docs, nil))

	remote := mock.NewMockBasketAdapter(ctrl)
	drafts := mock.NewMockDraftRepository(ctrl)

	return &syncFixture{
		surface: surface,
		docs:    docs,
		remote:  remote,
		drafts:  drafts,
		sync:    NewSyncService(docs, remote, drafts, "basket-1", "sheet", logger.Nop()),
	}
}

func TestSyncService_Open(t *testing.T) {
	t.Run("fetch and load, no draft", func(t *testing.T) {
		f := newSyncFixture(t)
		f.remote.EXPECT().Fetch(gomock.Any()).
			Return(models.BasketDocument{Content: "remote", Cursor: models.Cursor{Line: 1, Col: 3}}, nil)
		f.drafts.EXPECT().GetDraft(gomock.Any(), "basket-1", "sheet").
			Return(models.Draft{}, store.ErrDraftNotFound)

		restored, err := f.sync.Open(context.Background())
		require.NoError(t, err)
		assert.False(t, restored)
		assert.Equal(t, "remote", f.surface.Text())
		assert.False(t, f.docs.Dirty())
	})

	t.Run("draft rehydrated over remote baseline", func(t *testing.T) {
		f := newSyncFixture(t)
		f.remote.EXPECT().Fetch(gomock.Any()).
			Return(models.BasketDocument{Content: "remote", Cursor: models.Cursor{Line: 1, Col: 0}}, nil)
		f.drafts.EXPECT().GetDraft(gomock.Any(), "basket-1", "sheet").
			Return(models.Draft{Basket: "basket-1", Name: "sheet", Content: "draft work", Cursor: models.Cursor{Line: 1, Col: 10}}, nil)

		restored, err := f.sync.Open(context.Background())
		require.NoError(t, err)
		assert.True(t, restored)
		assert.Equal(t, "draft work", f.surface.Text())
		assert.True(t, f.docs.Dirty())
		assert.Equal(t, models.Cursor{Line: 1, Col: 10}, f.docs.Cursor())
	})

	t.Run("not configured still opens locally", func(t *testing.T) {
		f := newSyncFixture(t)
		f.remote.EXPECT().Fetch(gomock.Any()).
			Return(models.BasketDocument{}, adapter.ErrNotConfigured)
		f.drafts.EXPECT().GetDraft(gomock.Any(), "basket-1", "sheet").
			Return(models.Draft{Content: "offline draft", Cursor: models.Cursor{Line: 1, Col: 0}}, nil)

		restored, err := f.sync.Open(context.Background())
		require.ErrorIs(t, err, adapter.ErrNotConfigured, "caller gets the error once for reporting")
		assert.True(t, restored)
		assert.Equal(t, "offline draft", f.surface.Text())
	})

	t.Run("fetch failure aborts open", func(t *testing.T) {
		f := newSyncFixture(t)
		fetchErr := &adapter.ProtocolError{Status: 500, Body: "boom"}
		f.remote.EXPECT().Fetch(gomock.Any()).Return(models.BasketDocument{}, fetchErr)

		_, err := f.sync.Open(context.Background())
		var protoErr *adapter.ProtocolError
		require.ErrorAs(t, err, &protoErr)
		assert.Equal(t, "", f.surface.Text(), "document untouched on hard fetch failure")
	})
}

func TestSyncService_Save(t *testing.T) {
	t.Run("push, commit, drop draft", func(t *testing.T) {
		f := newSyncFixture(t)
		f.docs.Load("v1", models.Cursor{Line: 1, Col: 0})
		f.surface.SetText("v2")
		f.surface.SetCursor(models.Cursor{Line: 1, Col: 2})
		f.docs.RecomputeDirty()

		f.remote.EXPECT().Push(gomock.Any(), "v2", models.Cursor{Line: 1, Col: 2}).Return(nil)
		f.drafts.EXPECT().DeleteDraft(gomock.Any(), "basket-1", "sheet").Return(nil)

		require.NoError(t, f.sync.Save(context.Background()))
		assert.False(t, f.docs.Dirty())
		require.NotNil(t, f.docs.Document().SavedContent)
		assert.Equal(t, "v2", *f.docs.Document().SavedContent)
	})

	t.Run("failed push leaves document dirty", func(t *testing.T) {
		f := newSyncFixture(t)
		f.docs.Load("v1", models.Cursor{Line: 1, Col: 0})
		f.surface.SetText("v2")
		f.docs.RecomputeDirty()

		pushErr := errors.New("curl failed with code 7")
		f.remote.EXPECT().Push(gomock.Any(), "v2", gomock.Any()).Return(pushErr)

		err := f.sync.Save(context.Background())
		require.ErrorIs(t, err, pushErr)
		assert.True(t, f.docs.Dirty())
		assert.Equal(t, "v1", *f.docs.Document().SavedContent, "baseline not advanced")
	})

	t.Run("draft delete failure does not fail the save", func(t *testing.T) {
		f := newSyncFixture(t)
		f.docs.Load("v1", models.Cursor{Line: 1, Col: 0})
		f.surface.SetText("v2")
		f.docs.RecomputeDirty()

		f.remote.EXPECT().Push(gomock.Any(), "v2", gomock.Any()).Return(nil)
		f.drafts.EXPECT().DeleteDraft(gomock.Any(), "basket-1", "sheet").Return(errors.New("disk gone"))

		require.NoError(t, f.sync.Save(context.Background()))
		assert.False(t, f.docs.Dirty())
	})
}

func TestSyncService_SaveIfDirty(t *testing.T) {
	t.Run("clean document skips the push", func(t *testing.T) {
		f := newSyncFixture(t)
		f.docs.Load("v1", models.Cursor{Line: 1, Col: 0})

		saved, err := f.sync.SaveIfDirty(context.Background())
		require.NoError(t, err)
		assert.False(t, saved)
	})

	t.Run("dirty document saves", func(t *testing.T) {
		f := newSyncFixture(t)
		f.docs.Load("v1", models.Cursor{Line: 1, Col: 0})
		f.surface.SetText("v2")
		f.docs.RecomputeDirty()

		f.remote.EXPECT().Push(gomock.Any(), "v2", gomock.Any()).Return(nil)
		f.drafts.EXPECT().DeleteDraft(gomock.Any(), "basket-1", "sheet").Return(nil)

		saved, err := f.sync.SaveIfDirty(context.Background())
		require.NoError(t, err)
		assert.True(t, saved)
	})
}

func TestSyncService_Revert(t *testing.T) {
	t.Run("restores baseline and drops draft", func(t *testing.T) {
		f := newSyncFixture(t)
		f.docs.Load("saved", models.Cursor{Line: 1, Col: 0})
		f.surface.SetText("edited")
		f.docs.RecomputeDirty()

		f.drafts.EXPECT().DeleteDraft(gomock.Any(), "basket-1", "sheet").Return(nil)

		content, err := f.sync.Revert(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "saved", content)
		assert.Equal(t, "saved", f.surface.Text())
	})

	t.Run("nothing saved yet keeps the draft", func(t *testing.T) {
		f := newSyncFixture(t)
		f.surface.SetText("only unsaved work")
		f.docs.RecomputeDirty()

		_, err := f.sync.Revert(context.Background())
		require.ErrorIs(t, err, ErrNoSavedContent)
	})
}

func TestSyncService_Close(t *testing.T) {
	t.Run("dirty document persists a draft", func(t *testing.T) {
		f := newSyncFixture(t)
		f.docs.Load("saved", models.Cursor{Line: 1, Col: 0})
		f.surface.SetText("work in progress")
		f.surface.SetCursor(models.Cursor{Line: 1, Col: 7})
		f.docs.RecomputeDirty()

		f.drafts.EXPECT().SaveDraft(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, draft models.Draft) error {
				assert.Equal(t, "basket-1", draft.Basket)
				assert.Equal(t, "sheet", draft.Name)
				assert.Equal(t, "work in progress", draft.Content)
				assert.Equal(t, models.Cursor{Line: 1, Col: 7}, draft.Cursor)
				assert.False(t, draft.SavedAt.IsZero())
				return nil
			})

		require.NoError(t, f.sync.Close(context.Background()))
	})

	t.Run("draft carries the live cursor, not the last captured one", func(t *testing.T) {
		f := newSyncFixture(t)
		f.docs.Load("saved", models.Cursor{Line: 1, Col: 0})
		f.surface.SetText("moved on")
		f.surface.SetCursor(models.Cursor{Line: 1, Col: 3})
		f.docs.RecomputeDirty()
		f.docs.CaptureCursor()

		// More typing after the capture: the persisted draft must reflect
		// where the cursor actually is now.
		f.surface.SetCursor(models.Cursor{Line: 1, Col: 8})

		f.drafts.EXPECT().SaveDraft(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, draft models.Draft) error {
				assert.Equal(t, models.Cursor{Line: 1, Col: 8}, draft.Cursor)
				return nil
			})

		require.NoError(t, f.sync.Close(context.Background()))
	})

	t.Run("clean document leaves the draft store alone", func(t *testing.T) {
		f := newSyncFixture(t)
		f.docs.Load("saved", models.Cursor{Line: 1, Col: 0})

		require.NoError(t, f.sync.Close(context.Background()))
	})

	t.Run("draft save failure is reported", func(t *testing.T) {
		f := newSyncFixture(t)
		f.surface.SetText("unsaved")
		f.docs.RecomputeDirty()

		saveErr := errors.New("database is locked")
		f.drafts.EXPECT().SaveDraft(gomock.Any(), gomock.Any()).Return(saveErr)

		require.ErrorIs(t, f.sync.Close(context.Background()), saveErr)
	})
}
