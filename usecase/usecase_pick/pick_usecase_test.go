package usecase_pick

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/squirtles/musicroad/domain/domain_pick"
	"github.com/squirtles/musicroad/domain/domain_pick/mocks"
	"github.com/squirtles/musicroad/util/geo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type stubFinder struct {
	center geo.Location
	radius float64
	picks  []domain_pick.Pick
	err    error
}

func (f *stubFinder) FindPicksInArea(ctx context.Context, center geo.Location, radius float64) ([]domain_pick.Pick, error) {
	if _, ok := ctx.Deadline(); !ok {
		return nil, errors.New("missing deadline")
	}
	f.center, f.radius = center, radius
	return f.picks, f.err
}

func newTestUsecase(repo domain_pick.PickRepository, finder domain_pick.PickFinder) *pickUsecase {
	uc := NewPickUsecase(repo, finder, time.Second).(*pickUsecase)
	uc.now = func() time.Time { return time.Unix(1700000000, 0) }
	return uc
}

func TestFetchPick(t *testing.T) {
	mockRepo := mocks.NewPickRepository(t)
	doc := newDoc("Hype Boy", seoul)

	t.Run("success", func(t *testing.T) {
		mockRepo.On("GetByID", mock.Anything, doc.ID).Return(&doc, nil).Once()

		uc := newTestUsecase(mockRepo, nil)
		pick, err := uc.FetchPick(context.Background(), doc.ID.Hex())

		require.NoError(t, err)
		assert.Equal(t, "Hype Boy", pick.Song.Title)
		assert.Equal(t, doc.ID.Hex(), pick.ID)
	})

	t.Run("not found", func(t *testing.T) {
		id := primitive.NewObjectID()
		mockRepo.On("GetByID", mock.Anything, id).Return(nil, domain_pick.ErrPickNotFound).Once()

		uc := newTestUsecase(mockRepo, nil)
		_, err := uc.FetchPick(context.Background(), id.Hex())

		assert.ErrorIs(t, err, domain_pick.ErrPickNotFound)
	})

	t.Run("malformed record", func(t *testing.T) {
		bad := domain_pick.PickDocument{ID: primitive.NewObjectID()}
		mockRepo.On("GetByID", mock.Anything, bad.ID).Return(&bad, nil).Once()

		uc := newTestUsecase(mockRepo, nil)
		_, err := uc.FetchPick(context.Background(), bad.ID.Hex())

		assert.ErrorIs(t, err, domain_pick.ErrMalformedPick)
	})

	t.Run("invalid id", func(t *testing.T) {
		uc := newTestUsecase(mockRepo, nil)

		_, err := uc.FetchPick(context.Background(), "not-hex")
		assert.ErrorIs(t, err, domain_pick.ErrInvalidArgument)

		_, err = uc.FetchPick(context.Background(), "")
		assert.ErrorIs(t, err, domain_pick.ErrInvalidArgument)

		// 全零 ObjectID 也是合法十六进制，但不是有效的 pick id
		_, err = uc.FetchPick(context.Background(), primitive.NilObjectID.Hex())
		assert.ErrorIs(t, err, domain_pick.ErrInvalidArgument)
		assert.ErrorIs(t, uc.DeletePick(context.Background(), primitive.NilObjectID.Hex()), domain_pick.ErrInvalidArgument)
	})
}

func TestFetchPicksInArea(t *testing.T) {
	finder := &stubFinder{picks: []domain_pick.Pick{{ID: "1"}}}
	uc := newTestUsecase(mocks.NewPickRepository(t), finder)

	picks, err := uc.FetchPicksInArea(context.Background(), 37.5665, 126.9780, 1000)

	require.NoError(t, err)
	assert.Len(t, picks, 1)
	assert.Equal(t, seoul, finder.center)
	assert.Equal(t, 1000.0, finder.radius)
}

func TestFetchPicksInArea_PropagatesFinderError(t *testing.T) {
	finder := &stubFinder{err: &domain_pick.RemoteQueryFailure{Bound: geo.FullRange, Err: errors.New("boom")}}
	uc := newTestUsecase(mocks.NewPickRepository(t), finder)

	_, err := uc.FetchPicksInArea(context.Background(), 37.5665, 126.9780, 1000)

	assert.ErrorIs(t, err, domain_pick.ErrRemoteQuery)
}

func TestAddPick(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		mockRepo := mocks.NewPickRepository(t)
		newID := primitive.NewObjectID()

		mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(doc *domain_pick.PickDocument) bool {
			return doc.ID.IsZero() &&
				doc.GeoHash == geo.Encode(seoul) &&
				doc.CreatedAt == 1700000000 &&
				doc.FavoriteCount == 0 &&
				doc.Song.Title == "Hype Boy"
		})).Run(func(args mock.Arguments) {
			args.Get(1).(*domain_pick.PickDocument).ID = newID
		}).Return(nil).Once()

		uc := newTestUsecase(mockRepo, nil)
		pick, err := uc.AddPick(context.Background(), &domain_pick.Pick{
			ID:            "client-supplied",
			Song:          domain_pick.Song{Title: "  Hype Boy ", Artists: []string{"NewJeans", " "}},
			FavoriteCount: 99,
			Location:      seoul,
		})

		require.NoError(t, err)
		assert.Equal(t, newID.Hex(), pick.ID)
		assert.Equal(t, int64(1700000000), pick.CreatedAt)
		assert.Zero(t, pick.FavoriteCount)
		assert.Equal(t, []string{"NewJeans"}, pick.Song.Artists)
	})

	t.Run("normalizes to NFC", func(t *testing.T) {
		mockRepo := mocks.NewPickRepository(t)
		mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(doc *domain_pick.PickDocument) bool {
			return doc.Song.Title == "\u00e9t\u00e9"
		})).Return(nil).Once()

		uc := newTestUsecase(mockRepo, nil)
		_, err := uc.AddPick(context.Background(), &domain_pick.Pick{
			Song:     domain_pick.Song{Title: "e\u0301te\u0301"},
			Location: seoul,
		})

		require.NoError(t, err)
	})

	t.Run("validation", func(t *testing.T) {
		uc := newTestUsecase(mocks.NewPickRepository(t), nil)

		_, err := uc.AddPick(context.Background(), nil)
		assert.ErrorIs(t, err, domain_pick.ErrInvalidArgument)

		_, err = uc.AddPick(context.Background(), &domain_pick.Pick{Song: domain_pick.Song{Title: "   "}, Location: seoul})
		assert.ErrorIs(t, err, domain_pick.ErrInvalidArgument)

		_, err = uc.AddPick(context.Background(), &domain_pick.Pick{
			Song:     domain_pick.Song{Title: "x"},
			Location: geo.NewLocation(95, 0),
		})
		assert.ErrorIs(t, err, domain_pick.ErrInvalidArgument)
	})

	t.Run("repository error", func(t *testing.T) {
		mockRepo := mocks.NewPickRepository(t)
		mockRepo.On("Create", mock.Anything, mock.Anything).Return(errors.New("write failed")).Once()

		uc := newTestUsecase(mockRepo, nil)
		_, err := uc.AddPick(context.Background(), &domain_pick.Pick{Song: domain_pick.Song{Title: "x"}, Location: seoul})

		assert.Error(t, err)
	})
}

func TestDeletePick(t *testing.T) {
	mockRepo := mocks.NewPickRepository(t)
	id := primitive.NewObjectID()
	mockRepo.On("Delete", mock.Anything, id).Return(nil).Once()

	uc := newTestUsecase(mockRepo, nil)

	assert.NoError(t, uc.DeletePick(context.Background(), id.Hex()))
	assert.ErrorIs(t, uc.DeletePick(context.Background(), "zzz"), domain_pick.ErrInvalidArgument)
}

func TestFavoritePick(t *testing.T) {
	mockRepo := mocks.NewPickRepository(t)
	doc := newDoc("Ditto", seoul)
	doc.FavoriteCount = 3

	mockRepo.On("IncrementFavorite", mock.Anything, doc.ID, 1).Return(&doc, nil).Once()
	mockRepo.On("IncrementFavorite", mock.Anything, doc.ID, -1).Return(&doc, nil).Once()

	uc := newTestUsecase(mockRepo, nil)

	pick, err := uc.FavoritePick(context.Background(), doc.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, 3, pick.FavoriteCount)

	pick, err = uc.UnfavoritePick(context.Background(), doc.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, 3, pick.FavoriteCount)
}

func TestFinderWiredThroughUsecase(t *testing.T) {
	store := &memStore{docs: []domain_pick.PickDocument{newDoc("here", seoul)}}
	finder := NewProximityPickFinder(geo.GeoHashIndex{}, store, zap.NewNop())
	uc := newTestUsecase(mocks.NewPickRepository(t), finder)

	picks, err := uc.FetchPicksInArea(context.Background(), seoul.Latitude, seoul.Longitude, 50)

	require.NoError(t, err)
	assert.Equal(t, []string{"here"}, titles(picks))
}
