package service

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"github.com/alictclasses/alict-backend/internal/model"
)

// ErrClassNotFound is returned when a catalog lookup resolves to no class.
var ErrClassNotFound = errors.New("class not found")

// classNameBySlug maps URL slugs to the display names stored in the classes
// table. Unknown slugs fall through to a raw-name lookup.
var classNameBySlug = map[string]string{
	"2025-al":      "2025 A/L",
	"2026-al":      "2026 A/L",
	"2027-al":      "2027 A/L",
	"lesson-packs": "Lesson Packs",
}

// ClassByNameGetter fetches the unique class with a given display name.
type ClassByNameGetter interface {
	GetByName(ctx context.Context, name string) (*model.Class, error)
}

// MonthsByClassLister fetches a class's months in chronological order.
type MonthsByClassLister interface {
	ListByClass(ctx context.Context, classID uuid.UUID) ([]model.Month, error)
}

// VideosByMonthLister fetches a month's videos ordered by order_index.
type VideosByMonthLister interface {
	ListByMonth(ctx context.Context, monthID uuid.UUID) ([]model.Video, error)
}

// NotesByMonthLister fetches a month's notes in store order.
type NotesByMonthLister interface {
	ListByMonth(ctx context.Context, monthID uuid.UUID) ([]model.Note, error)
}

// CatalogService assembles the nested class → months → {videos, notes} view
// served to the public class pages. Read-only; every call builds a fresh tree.
type CatalogService struct {
	classes ClassByNameGetter
	months  MonthsByClassLister
	videos  VideosByMonthLister
	notes   NotesByMonthLister
	log     zerolog.Logger
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(
	classes ClassByNameGetter,
	months MonthsByClassLister,
	videos VideosByMonthLister,
	notes NotesByMonthLister,
	log zerolog.Logger,
) *CatalogService {
	return &CatalogService{
		classes: classes,
		months:  months,
		videos:  videos,
		notes:   notes,
		log:     log.With().Str("component", "catalog_service").Logger(),
	}
}

// ResolveClassName maps a URL slug to its class display name. Unrecognized
// slugs are passed through unchanged as a fallback lookup value.
func ResolveClassName(slug string) string {
	if name, ok := classNameBySlug[slug]; ok {
		return name
	}
	return slug
}

// LoadCatalog resolves a class slug and aggregates the class with its months,
// videos and notes. A class with no months is a valid, empty catalog.
// Failed sub-fetches degrade to empty lists; the aggregation never aborts on
// a partial failure.
func (s *CatalogService) LoadCatalog(ctx context.Context, slug string) (*model.AggregatedClass, error) {
	class, err := s.classes.GetByName(ctx, ResolveClassName(slug))
	if err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			s.log.Warn().Err(err).Str("slug", slug).Msg("class lookup failed")
		}
		return nil, ErrClassNotFound
	}

	months, err := s.months.ListByClass(ctx, class.ID)
	if err != nil {
		s.log.Warn().Err(err).Str("class_id", class.ID.String()).Msg("months fetch failed, serving empty catalog")
		months = nil
	}

	aggregated := make([]model.AggregatedMonth, len(months))

	// Each month's video and note fetches are independent of every other
	// month's; fan them all out and join before merging.
	var wg sync.WaitGroup
	for i, month := range months {
		wg.Add(1)
		go func(i int, month model.Month) {
			defer wg.Done()
			aggregated[i] = s.aggregateMonth(ctx, month)
		}(i, month)
	}
	wg.Wait()

	// The store already orders these, but the contract is ordering by
	// month_number and order_index no matter what came back.
	sort.SliceStable(aggregated, func(a, b int) bool {
		return aggregated[a].MonthNumber < aggregated[b].MonthNumber
	})

	return &model.AggregatedClass{
		Class:  *class,
		Months: aggregated,
	}, nil
}

// aggregateMonth fetches a month's videos and notes concurrently and merges
// them. Either half failing leaves that half empty.
func (s *CatalogService) aggregateMonth(ctx context.Context, month model.Month) model.AggregatedMonth {
	var (
		wg     sync.WaitGroup
		videos []model.Video
		notes  []model.Note
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		var err error
		videos, err = s.videos.ListByMonth(ctx, month.ID)
		if err != nil {
			s.log.Warn().Err(err).Str("month_id", month.ID.String()).Msg("video fetch failed")
			videos = nil
		}
	}()
	go func() {
		defer wg.Done()
		var err error
		notes, err = s.notes.ListByMonth(ctx, month.ID)
		if err != nil {
			s.log.Warn().Err(err).Str("month_id", month.ID.String()).Msg("note fetch failed")
			notes = nil
		}
	}()
	wg.Wait()

	sort.SliceStable(videos, func(a, b int) bool {
		return videos[a].OrderIndex < videos[b].OrderIndex
	})

	// Notes keep store order: they have no sort key.
	if videos == nil {
		videos = []model.Video{}
	}
	if notes == nil {
		notes = []model.Note{}
	}

	return model.AggregatedMonth{
		Month:  month,
		Videos: videos,
		Notes:  notes,
	}
}
