package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"github.com/alictclasses/alict-backend/internal/model"
)

type classesStub struct {
	class *model.Class
	err   error
}

func (s *classesStub) GetByName(ctx context.Context, name string) (*model.Class, error) {
	if s.err != nil {
		return nil, s.err
	}
	if s.class == nil || s.class.Name != name {
		return nil, pgx.ErrNoRows
	}
	return s.class, nil
}

type monthsStub struct {
	months []model.Month
	err    error
}

func (s *monthsStub) ListByClass(ctx context.Context, classID uuid.UUID) ([]model.Month, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.months, nil
}

type videosStub struct {
	byMonth map[uuid.UUID][]model.Video
	failFor map[uuid.UUID]bool
}

func (s *videosStub) ListByMonth(ctx context.Context, monthID uuid.UUID) ([]model.Video, error) {
	if s.failFor[monthID] {
		return nil, errors.New("video store unavailable")
	}
	return s.byMonth[monthID], nil
}

type notesStub struct {
	byMonth map[uuid.UUID][]model.Note
	failFor map[uuid.UUID]bool
}

func (s *notesStub) ListByMonth(ctx context.Context, monthID uuid.UUID) ([]model.Note, error) {
	if s.failFor[monthID] {
		return nil, errors.New("note store unavailable")
	}
	return s.byMonth[monthID], nil
}

func newTestCatalogService(classes ClassByNameGetter, months MonthsByClassLister, videos VideosByMonthLister, notes NotesByMonthLister) *CatalogService {
	if videos == nil {
		videos = &videosStub{}
	}
	if notes == nil {
		notes = &notesStub{}
	}
	return NewCatalogService(classes, months, videos, notes, zerolog.Nop())
}

func TestResolveClassName(t *testing.T) {
	cases := []struct {
		slug string
		want string
	}{
		{"2025-al", "2025 A/L"},
		{"2026-al", "2026 A/L"},
		{"2027-al", "2027 A/L"},
		{"lesson-packs", "Lesson Packs"},
		{"revision-2026", "revision-2026"}, // unknown slugs pass through
	}
	for _, tc := range cases {
		if got := ResolveClassName(tc.slug); got != tc.want {
			t.Errorf("ResolveClassName(%q) = %q, want %q", tc.slug, got, tc.want)
		}
	}
}

func TestLoadCatalogUnknownClass(t *testing.T) {
	svc := newTestCatalogService(&classesStub{}, &monthsStub{}, nil, nil)

	_, err := svc.LoadCatalog(context.Background(), "2025-al")
	if !errors.Is(err, ErrClassNotFound) {
		t.Fatalf("expected ErrClassNotFound, got %v", err)
	}
}

func TestLoadCatalogClassLookupError(t *testing.T) {
	svc := newTestCatalogService(
		&classesStub{err: errors.New("connection refused")},
		&monthsStub{}, nil, nil,
	)

	// Any lookup failure degrades to not-found rather than a 500.
	_, err := svc.LoadCatalog(context.Background(), "2025-al")
	if !errors.Is(err, ErrClassNotFound) {
		t.Fatalf("expected ErrClassNotFound, got %v", err)
	}
}

func TestLoadCatalogEmptyWhenMonthsFail(t *testing.T) {
	class := &model.Class{ID: uuid.New(), Name: "2025 A/L"}
	svc := newTestCatalogService(
		&classesStub{class: class},
		&monthsStub{err: errors.New("timeout")},
		nil, nil,
	)

	catalog, err := svc.LoadCatalog(context.Background(), "2025-al")
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}
	if len(catalog.Months) != 0 {
		t.Fatalf("expected empty months, got %d", len(catalog.Months))
	}
}

func TestLoadCatalogOrdersMonthsAndVideos(t *testing.T) {
	class := &model.Class{ID: uuid.New(), Name: "2026 A/L"}
	m1 := model.Month{ID: uuid.New(), ClassID: class.ID, Name: "January", MonthNumber: 1}
	m2 := model.Month{ID: uuid.New(), ClassID: class.ID, Name: "February", MonthNumber: 2}
	m3 := model.Month{ID: uuid.New(), ClassID: class.ID, Name: "March", MonthNumber: 3}

	videos := &videosStub{byMonth: map[uuid.UUID][]model.Video{
		m1.ID: {
			{ID: uuid.New(), MonthID: m1.ID, Title: "Lesson 3", OrderIndex: 3},
			{ID: uuid.New(), MonthID: m1.ID, Title: "Lesson 1", OrderIndex: 1},
			{ID: uuid.New(), MonthID: m1.ID, Title: "Lesson 2", OrderIndex: 2},
		},
	}}

	svc := newTestCatalogService(
		&classesStub{class: class},
		&monthsStub{months: []model.Month{m3, m1, m2}}, // store order is not trusted
		videos, nil,
	)

	catalog, err := svc.LoadCatalog(context.Background(), "2026-al")
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}
	if len(catalog.Months) != 3 {
		t.Fatalf("expected 3 months, got %d", len(catalog.Months))
	}
	for i, want := range []int{1, 2, 3} {
		if got := catalog.Months[i].MonthNumber; got != want {
			t.Errorf("months[%d].MonthNumber = %d, want %d", i, got, want)
		}
	}

	got := catalog.Months[0].Videos
	if len(got) != 3 {
		t.Fatalf("expected 3 videos, got %d", len(got))
	}
	for i, want := range []string{"Lesson 1", "Lesson 2", "Lesson 3"} {
		if got[i].Title != want {
			t.Errorf("videos[%d].Title = %q, want %q", i, got[i].Title, want)
		}
	}
}

func TestLoadCatalogPartialFailure(t *testing.T) {
	class := &model.Class{ID: uuid.New(), Name: "Lesson Packs"}
	month := model.Month{ID: uuid.New(), ClassID: class.ID, Name: "Pack 1", MonthNumber: 1}

	videos := &videosStub{failFor: map[uuid.UUID]bool{month.ID: true}}
	notes := &notesStub{byMonth: map[uuid.UUID][]model.Note{
		month.ID: {{ID: uuid.New(), MonthID: month.ID, Title: "Theory Notes"}},
	}}

	svc := newTestCatalogService(
		&classesStub{class: class},
		&monthsStub{months: []model.Month{month}},
		videos, notes,
	)

	catalog, err := svc.LoadCatalog(context.Background(), "lesson-packs")
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}

	agg := catalog.Months[0]
	if agg.Videos == nil || len(agg.Videos) != 0 {
		t.Errorf("failed video fetch should yield empty non-nil slice, got %#v", agg.Videos)
	}
	if len(agg.Notes) != 1 || agg.Notes[0].Title != "Theory Notes" {
		t.Errorf("notes half should survive the video failure, got %#v", agg.Notes)
	}
}

func TestLoadCatalogEmptySlicesNotNil(t *testing.T) {
	class := &model.Class{ID: uuid.New(), Name: "2027 A/L"}
	month := model.Month{ID: uuid.New(), ClassID: class.ID, Name: "June", MonthNumber: 6}

	svc := newTestCatalogService(
		&classesStub{class: class},
		&monthsStub{months: []model.Month{month}},
		nil, nil,
	)

	catalog, err := svc.LoadCatalog(context.Background(), "2027-al")
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}

	// Months without content must serialize as [] rather than null.
	agg := catalog.Months[0]
	if agg.Videos == nil {
		t.Error("Videos is nil, want empty slice")
	}
	if agg.Notes == nil {
		t.Error("Notes is nil, want empty slice")
	}
}
