package app

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/cinebook/booking-api/api"
	"github.com/cinebook/booking-api/internal/domain"
	"github.com/cinebook/booking-api/internal/mocks"
	"github.com/cinebook/booking-api/internal/validator"
	"github.com/google/go-cmp/cmp"
	"github.com/oapi-codegen/runtime/types"
	"github.com/shopspring/decimal"
)

var showStart = time.Date(2024, 6, 1, 18, 0, 0, 0, time.UTC)

func validShowBody() map[string]any {
	return map[string]any{
		"movieId":   "m1",
		"theaterId": "t1",
		"screenId":  "s1",
		"startTime": showStart.Format(time.RFC3339),
		"price":     "12.50",
	}
}

func TestCreateShow(t *testing.T) {
	tests := []struct {
		name              string
		body              map[string]any
		createCheckedFunc func(context.Context, *domain.Show) error
		wantStatus        int
		wantErrMessage    string
	}{
		{
			name: "created",
			body: validShowBody(),
			createCheckedFunc: func(ctx context.Context, show *domain.Show) error {
				show.ID = "sh1"
				return nil
			},
			wantStatus: http.StatusCreated,
		},
		{
			name: "conflicting start time on the same screen",
			body: validShowBody(),
			createCheckedFunc: func(ctx context.Context, show *domain.Show) error {
				return domain.ErrShowConflict
			},
			wantStatus:     http.StatusConflict,
			wantErrMessage: domain.ErrShowConflict.Error(),
		},
		{
			name: "unknown screen",
			body: validShowBody(),
			createCheckedFunc: func(ctx context.Context, show *domain.Show) error {
				return domain.ErrRecordNotFound
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name: "negative price",
			body: func() map[string]any {
				body := validShowBody()
				body["price"] = "-1"
				return body
			}(),
			wantStatus:     http.StatusUnprocessableEntity,
			wantErrMessage: "must be greater than 0",
		},
		{
			name: "free show",
			body: func() map[string]any {
				body := validShowBody()
				body["price"] = "0"
				return body
			}(),
			wantStatus:     http.StatusUnprocessableEntity,
			wantErrMessage: "must be greater than 0",
		},
		{
			name: "missing screen",
			body: func() map[string]any {
				body := validShowBody()
				delete(body, "screenId")
				return body
			}(),
			wantStatus:     http.StatusUnprocessableEntity,
			wantErrMessage: validator.ErrRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stored *domain.Show

			app := newTestApplication(func(a *Application) {
				a.showRepo = &mocks.MockShowRepo{
					CreateCheckedFunc: func(ctx context.Context, show *domain.Show) error {
						stored = show
						return tt.createCheckedFunc(ctx, show)
					},
				}
			})

			w, r := executeRequest(t, http.MethodPost, "/shows", tt.body)

			app.ShowCreate(w, r)

			if got := w.Code; got != tt.wantStatus {
				t.Fatalf("CreateShow() status = %v, want %v", got, tt.wantStatus)
			}

			if tt.wantStatus == http.StatusCreated {
				var resp api.Show
				if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
					t.Fatalf("Failed to decode response: %v", err)
				}

				if resp.Id != "sh1" || !resp.StartTime.Equal(showStart) || !resp.Price.Equal(decimal.RequireFromString("12.5")) {
					t.Errorf("CreateShow() unexpected response %+v", resp)
				}

				if stored.ScreenID != "s1" || stored.TheaterID != "t1" || stored.MovieID != "m1" {
					t.Errorf("CreateShow() stored %+v", stored)
				}
			}

			checkErrorResponse(t, w, struct {
				wantStatus     int
				wantErrMessage string
			}{
				wantStatus:     tt.wantStatus,
				wantErrMessage: tt.wantErrMessage,
			})
		})
	}
}

func TestUpdateShow(t *testing.T) {
	tests := []struct {
		name       string
		updateErr  error
		wantStatus int
	}{
		{name: "updated", wantStatus: http.StatusOK},
		{name: "conflict", updateErr: domain.ErrShowConflict, wantStatus: http.StatusConflict},
		{name: "not found", updateErr: domain.ErrRecordNotFound, wantStatus: http.StatusNotFound},
		{name: "database error", updateErr: errors.New("boom"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotID string

			app := newTestApplication(func(a *Application) {
				a.showRepo = &mocks.MockShowRepo{
					UpdateCheckedFunc: func(ctx context.Context, show *domain.Show) error {
						gotID = show.ID
						return tt.updateErr
					},
				}
			})

			w, r := executeRequest(t, http.MethodPut, "/shows/sh1", validShowBody())

			app.ShowUpdate(w, r, "sh1")

			if got := w.Code; got != tt.wantStatus {
				t.Errorf("UpdateShow() status = %v, want %v", got, tt.wantStatus)
			}

			if gotID != "sh1" {
				t.Errorf("UpdateShow() updated show %q, want %q", gotID, "sh1")
			}
		})
	}
}

func TestGetShowById_IncludesRelations(t *testing.T) {
	app := newTestApplication(func(a *Application) {
		a.showRepo = &mocks.MockShowRepo{
			GetByIdFunc: func(ctx context.Context, id string) (*domain.Show, error) {
				return &domain.Show{
					ID:        id,
					MovieID:   "m1",
					TheaterID: "t1",
					ScreenID:  "s1",
					StartTime: showStart,
					Price:     decimal.RequireFromString("12.50"),
					Movie:     &domain.Movie{ID: "m1", Title: "Inception", Duration: 148},
					Theater:   &domain.Theater{ID: "t1", Name: "Cineplex", Location: "Main St"},
					Screen:    &domain.Screen{ID: "s1", TheaterID: "t1", Name: "Screen 1", Rows: 10, Columns: 10},
				}, nil
			},
		}
	})

	w, r := executeRequest(t, http.MethodGet, "/shows/sh1", nil)

	app.ShowGetById(w, r, "sh1")

	if w.Code != http.StatusOK {
		t.Fatalf("GetShowById() status = %v, want %v", w.Code, http.StatusOK)
	}

	var resp api.Show
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	if resp.Movie == nil || resp.Theater == nil || resp.Screen == nil {
		t.Fatalf("GetShowById() expected nested movie, theater and screen, got %+v", resp)
	}

	if resp.Movie.Title != "Inception" || resp.Theater.Name != "Cineplex" || resp.Screen.Rows != 10 {
		t.Errorf("GetShowById() unexpected nested objects %+v %+v %+v", resp.Movie, resp.Theater, resp.Screen)
	}
}

func TestSearchShows(t *testing.T) {
	day := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		params      api.ShowGetFilteredParams
		wantFilters domain.ShowFilters
	}{
		{
			name:        "no filters",
			params:      api.ShowGetFilteredParams{},
			wantFilters: domain.ShowFilters{},
		},
		{
			name: "all filters",
			params: api.ShowGetFilteredParams{
				MovieId:   ptr("m1"),
				TheaterId: ptr("t1"),
				Date:      &types.Date{Time: day},
			},
			wantFilters: domain.ShowFilters{
				MovieID:   "m1",
				TheaterID: "t1",
				Date:      &day,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got domain.ShowFilters

			app := newTestApplication(func(a *Application) {
				a.showRepo = &mocks.MockShowRepo{
					GetFilteredFunc: func(ctx context.Context, filters domain.ShowFilters) ([]domain.Show, error) {
						got = filters
						return []domain.Show{}, nil
					},
				}
			})

			w, r := executeRequest(t, http.MethodGet, "/shows/search", nil)

			app.ShowGetFiltered(w, r, tt.params)

			if w.Code != http.StatusOK {
				t.Fatalf("SearchShows() status = %v, want %v", w.Code, http.StatusOK)
			}

			if diff := cmp.Diff(tt.wantFilters, got); diff != "" {
				t.Errorf("SearchShows() filters mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
