package usecase_pick

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/squirtles/musicroad/domain/domain_pick"
	"github.com/squirtles/musicroad/usecase"
	"github.com/squirtles/musicroad/util/geo"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/text/unicode/norm"
)

type pickUsecase struct {
	repo    domain_pick.PickRepository
	finder  domain_pick.PickFinder
	timeout time.Duration
	now     func() time.Time
}

func NewPickUsecase(
	repo domain_pick.PickRepository,
	finder domain_pick.PickFinder,
	timeout time.Duration,
) domain_pick.PickUsecase {
	return &pickUsecase{
		repo:    repo,
		finder:  finder,
		timeout: timeout,
		now:     time.Now,
	}
}

func (uc *pickUsecase) FetchPick(ctx context.Context, id string) (*domain_pick.Pick, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	objID, err := parsePickID(id)
	if err != nil {
		return nil, err
	}

	doc, err := uc.repo.GetByID(ctx, objID)
	if err != nil {
		return nil, err
	}

	return toPick(doc)
}

func (uc *pickUsecase) FetchPicksInArea(ctx context.Context, lat, lng, radiusInMeters float64) ([]domain_pick.Pick, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	return uc.finder.FindPicksInArea(ctx, geo.NewLocation(lat, lng), radiusInMeters)
}

// AddPick 规范化文本后写入；created_at 与收藏数由服务端决定
func (uc *pickUsecase) AddPick(ctx context.Context, pick *domain_pick.Pick) (*domain_pick.Pick, error) {
	if pick == nil {
		return nil, fmt.Errorf("%w: pick cannot be nil", domain_pick.ErrInvalidArgument)
	}

	p := normalizePick(*pick)
	if p.Song.Title == "" {
		return nil, fmt.Errorf("%w: song title is required", domain_pick.ErrInvalidArgument)
	}
	if err := p.Location.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain_pick.ErrInvalidArgument, err)
	}

	p.ID = ""
	p.CreatedAt = uc.now().Unix()
	p.FavoriteCount = 0

	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	doc := domain_pick.NewPickDocument(p)
	if err := uc.repo.Create(ctx, doc); err != nil {
		return nil, fmt.Errorf("failed to create pick: %w", err)
	}

	p.ID = doc.ID.Hex()
	return &p, nil
}

func (uc *pickUsecase) DeletePick(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	objID, err := parsePickID(id)
	if err != nil {
		return err
	}

	return uc.repo.Delete(ctx, objID)
}

func (uc *pickUsecase) FavoritePick(ctx context.Context, id string) (*domain_pick.Pick, error) {
	return uc.changeFavorite(ctx, id, 1)
}

// UnfavoritePick 收藏数为 0 时保持不变
func (uc *pickUsecase) UnfavoritePick(ctx context.Context, id string) (*domain_pick.Pick, error) {
	return uc.changeFavorite(ctx, id, -1)
}

func (uc *pickUsecase) changeFavorite(ctx context.Context, id string, delta int) (*domain_pick.Pick, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	objID, err := parsePickID(id)
	if err != nil {
		return nil, err
	}

	doc, err := uc.repo.IncrementFavorite(ctx, objID, delta)
	if err != nil {
		return nil, err
	}

	return toPick(doc)
}

func parsePickID(id string) (primitive.ObjectID, error) {
	objID, err := usecase.ParseObjectID(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %v", domain_pick.ErrInvalidArgument, err)
	}
	return objID, nil
}

func toPick(doc *domain_pick.PickDocument) (*domain_pick.Pick, error) {
	pick, ok := doc.ToPick()
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain_pick.ErrMalformedPick, doc.ID.Hex())
	}
	return &pick, nil
}

func normalizePick(p domain_pick.Pick) domain_pick.Pick {
	p.Song.Title = normalizeText(p.Song.Title)
	p.Song.AlbumTitle = normalizeText(p.Song.AlbumTitle)
	p.Song.ImageURL = strings.TrimSpace(p.Song.ImageURL)
	p.Song.PreviewURL = strings.TrimSpace(p.Song.PreviewURL)
	p.Song.ExternalURL = strings.TrimSpace(p.Song.ExternalURL)
	p.Comment = normalizeText(p.Comment)
	p.CreatedBy = normalizeText(p.CreatedBy)

	artists := make([]string, 0, len(p.Song.Artists))
	for _, a := range p.Song.Artists {
		if a = normalizeText(a); a != "" {
			artists = append(artists, a)
		}
	}
	p.Song.Artists = artists

	return p
}

// 统一为 NFC，避免组合字符导致同名歌曲不一致
func normalizeText(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}
