package dashboard

import (
	"context"
	"errors"
	"testing"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scraper-dashboard/internal/export"
	"scraper-dashboard/internal/models"
	"scraper-dashboard/internal/models/mocks"
	"scraper-dashboard/internal/pkg/logger"
	"scraper-dashboard/internal/query"
)

var base = time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)

func candidates() []models.Record {
	return []models.Record{
		models.Article{Base: models.Base{ID: "a1", Title: "Rust vs Go", Category: "tech", CreatedAt: base}},
		models.Article{Base: models.Base{ID: "a2", Title: "Go tips", Category: "tech", CreatedAt: base.AddDate(0, 0, 1)}},
		models.Image{Base: models.Base{ID: "i1", Title: "Mountains", Category: "photos", CreatedAt: base.AddDate(0, 0, 2)}, ImageURL: "https://img/1.png"},
		models.Product{Base: models.Base{ID: "p1", Title: "Go book", CreatedAt: base.AddDate(0, 0, 3)}, ImageURL: "https://img/book.png", Rating: 5},
	}
}

func newService(t *testing.T) (*Service, *mocks.MockDataSource) {
	ctrl := gomock.NewController(t)
	src := mocks.NewMockDataSource(ctrl)
	svc := NewService(src, logger.NewNop())
	svc.now = func() time.Time { return base }
	return svc, src
}

func TestListContent(t *testing.T) {
	svc, src := newService(t)
	src.EXPECT().Records(gomock.Any(), "tech").Return(candidates()[:2], nil)

	listing, err := svc.ListContent(context.Background(), "tech", query.Query{
		SearchText: "go",
		Sort:       query.SortOldest,
		Page:       1,
		PageSize:   1,
	})
	require.NoError(t, err)

	assert.Equal(t, 2, listing.TotalMatches)
	require.Len(t, listing.Items, 1)
	assert.Equal(t, "a1", listing.Items[0].Common().ID)
	assert.Equal(t, 2, listing.Pagination.TotalPages)
	assert.True(t, listing.Pagination.HasNext)
}

func TestListContentInvalidArgument(t *testing.T) {
	svc, src := newService(t)
	src.EXPECT().Records(gomock.Any(), "").Return(candidates(), nil)

	_, err := svc.ListContent(context.Background(), "", query.Query{Page: 0, PageSize: 10})
	assert.ErrorIs(t, err, query.ErrInvalidArgument)
}

func TestListContentSourceError(t *testing.T) {
	svc, src := newService(t)
	boom := errors.New("boom")
	src.EXPECT().Records(gomock.Any(), "").Return(nil, boom)

	_, err := svc.ListContent(context.Background(), "", query.Query{Page: 1, PageSize: 10})
	assert.ErrorIs(t, err, boom)
}

func TestGetContent(t *testing.T) {
	svc, src := newService(t)
	src.EXPECT().Records(gomock.Any(), "").Return(candidates(), nil).Times(2)

	r, err := svc.GetContent(context.Background(), "i1")
	require.NoError(t, err)
	assert.Equal(t, models.TypeImage, r.Type())

	_, err = svc.GetContent(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCategories(t *testing.T) {
	svc, src := newService(t)
	src.EXPECT().Records(gomock.Any(), "").Return(candidates(), nil)

	cats, err := svc.Categories(context.Background())
	require.NoError(t, err)
	require.Len(t, cats, 3)

	assert.Equal(t, "Photos", cats[0].Name)
	assert.Equal(t, []string{"https://img/1.png"}, cats[0].Images)

	assert.Equal(t, "product", cats[1].ID)
	assert.Equal(t, "Product", cats[1].Name)

	assert.Equal(t, "tech", cats[2].ID)
	assert.Equal(t, 2, cats[2].Count)
	assert.Equal(t, base.AddDate(0, 0, 1), cats[2].LastUpdated)
	assert.Empty(t, cats[2].Images)
}

func TestRecentActivities(t *testing.T) {
	svc, src := newService(t)
	src.EXPECT().Activities(gomock.Any()).Return([]models.Activity{
		{ID: "old", Date: base},
		{ID: "new", Date: base.Add(2 * time.Hour)},
		{ID: "mid", Date: base.Add(time.Hour)},
	}, nil).Times(2)

	got, err := svc.RecentActivities(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "new", got[0].ID)
	assert.Equal(t, "mid", got[1].ID)

	all, err := svc.RecentActivities(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestUpdateDisplay(t *testing.T) {
	svc, src := newService(t)
	defaults := models.DefaultSettings()

	want := defaults
	want.Display = models.DisplaySettings{Theme: models.ThemeDark, Layout: models.LayoutList, ItemsPerPage: 50}

	gomock.InOrder(
		src.EXPECT().LoadSettings(gomock.Any()).Return(defaults, nil),
		src.EXPECT().SaveSettings(gomock.Any(), want).Return(nil),
	)

	got, err := svc.UpdateDisplay(context.Background(), want.Display)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestUpdateRejectsInvalidSection(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.UpdateScraping(context.Background(), models.ScrapingSettings{Frequency: "hourly"})
	assert.ErrorIs(t, err, ErrInvalidSettings)

	var verrs validation.Errors
	require.True(t, errors.As(err, &verrs))
	assert.Contains(t, verrs, "frequency")

	_, err = svc.UpdateStorage(context.Background(), models.StorageSettings{Type: "tape", Retention: models.Retention1Month})
	assert.ErrorIs(t, err, ErrInvalidSettings)
}

func TestExport(t *testing.T) {
	svc, src := newService(t)
	src.EXPECT().LoadSettings(gomock.Any()).Return(models.DefaultSettings(), nil)
	src.EXPECT().Records(gomock.Any(), "").Return(candidates(), nil)

	doc, err := svc.Export(context.Background(), export.FormatCSV, "", query.Query{
		Types: []models.ContentType{models.TypeArticle},
		Sort:  query.SortLatest,
	})
	require.NoError(t, err)
	assert.Equal(t, "scraped-data-20250401-000000.csv", doc.Filename)
	assert.Contains(t, string(doc.Body), "a2,article,Go tips")
	assert.NotContains(t, string(doc.Body), "i1")
}

func TestExportDisabledFormat(t *testing.T) {
	svc, src := newService(t)
	src.EXPECT().LoadSettings(gomock.Any()).Return(models.DefaultSettings(), nil)

	_, err := svc.Export(context.Background(), export.FormatExcel, "", query.Query{})
	assert.ErrorIs(t, err, ErrFormatDisabled)
}

func TestExportUnsupportedButEnabledFormat(t *testing.T) {
	svc, src := newService(t)
	src.EXPECT().LoadSettings(gomock.Any()).Return(models.DefaultSettings(), nil)
	src.EXPECT().Records(gomock.Any(), "").Return(candidates(), nil)

	_, err := svc.Export(context.Background(), export.FormatPDF, "", query.Query{})
	assert.ErrorIs(t, err, export.ErrUnsupportedFormat)
}
