package usecase_pick

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/squirtles/musicroad/domain/domain_pick"
	"github.com/squirtles/musicroad/util/geo"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ProximityPickFinder 查询圆形区域内的 Pick。
// geohash 区间并发扫描，全部返回后去重并按真实距离过滤。
type ProximityPickFinder struct {
	index  domain_pick.GeoIndex
	store  domain_pick.PickRangeQuerier
	logger *zap.Logger
}

func NewProximityPickFinder(
	index domain_pick.GeoIndex,
	store domain_pick.PickRangeQuerier,
	logger *zap.Logger,
) *ProximityPickFinder {
	return &ProximityPickFinder{
		index:  index,
		store:  store,
		logger: logger.Named("proximity"),
	}
}

type pickCandidate struct {
	pick     domain_pick.Pick
	distance float64
}

// FindPicksInArea 返回与 center 的大圆距离不超过 radiusInMeters 的 Pick，按距离升序。
// 任一区间查询失败则整体失败（RemoteQueryFailure），不返回部分结果。
func (f *ProximityPickFinder) FindPicksInArea(
	ctx context.Context,
	center geo.Location,
	radiusInMeters float64,
) ([]domain_pick.Pick, error) {
	if err := validateArea(center, radiusInMeters); err != nil {
		return nil, err
	}

	bounds := f.index.Coverage(center, radiusInMeters)
	batches := make([][]domain_pick.PickDocument, len(bounds))

	g, gctx := errgroup.WithContext(ctx)
	for i, bound := range bounds {
		g.Go(func() error {
			docs, err := f.store.QueryRange(gctx, bound.StartHash, bound.EndHash)
			if err != nil {
				return &domain_pick.RemoteQueryFailure{Bound: bound, Err: err}
			}
			batches[i] = docs
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		// 调用方取消时直接返回 ctx 的错误
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		f.logger.Warn("range query failed",
			zap.Stringer("center", center),
			zap.Float64("radius", radiusInMeters),
			zap.Error(err),
		)
		return nil, err
	}

	picks := f.merge(center, radiusInMeters, batches)
	f.logger.Debug("picks in area",
		zap.Stringer("center", center),
		zap.Float64("radius", radiusInMeters),
		zap.Int("bounds", len(bounds)),
		zap.Int("picks", len(picks)),
	)
	return picks, nil
}

func (f *ProximityPickFinder) merge(
	center geo.Location,
	radiusInMeters float64,
	batches [][]domain_pick.PickDocument,
) []domain_pick.Pick {
	seen := make(map[primitive.ObjectID]struct{})
	candidates := make([]pickCandidate, 0)

	for _, batch := range batches {
		for i := range batch {
			doc := &batch[i]
			if _, dup := seen[doc.ID]; dup {
				continue
			}
			seen[doc.ID] = struct{}{}

			pick, ok := doc.ToPick()
			if !ok {
				f.logger.Debug("skip pick without valid location", zap.String("id", doc.ID.Hex()))
				continue
			}

			// 区间是外接近似，边界附近有误报
			distance := geo.Distance(pick.Location, center)
			if distance > radiusInMeters {
				continue
			}
			candidates = append(candidates, pickCandidate{pick: pick, distance: distance})
		}
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].distance != candidates[j].distance {
			return candidates[i].distance < candidates[j].distance
		}
		return candidates[i].pick.ID < candidates[j].pick.ID
	})

	picks := make([]domain_pick.Pick, len(candidates))
	for i, c := range candidates {
		picks[i] = c.pick
	}
	return picks
}

func validateArea(center geo.Location, radiusInMeters float64) error {
	if math.IsNaN(radiusInMeters) || math.IsInf(radiusInMeters, 0) || radiusInMeters <= 0 {
		return fmt.Errorf("%w: radius must be a positive finite number, got %v", domain_pick.ErrInvalidArgument, radiusInMeters)
	}
	if err := center.Validate(); err != nil {
		return fmt.Errorf("%w: %v", domain_pick.ErrInvalidArgument, err)
	}
	return nil
}
