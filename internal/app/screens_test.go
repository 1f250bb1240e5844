package app

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/cinebook/booking-api/api"
	"github.com/cinebook/booking-api/internal/domain"
	"github.com/cinebook/booking-api/internal/mocks"
	"github.com/cinebook/booking-api/internal/validator"
)

func TestCreateScreen(t *testing.T) {
	validBody := func() map[string]any {
		return map[string]any{"theaterId": "t1", "name": "Screen 1", "rows": 3, "columns": 4}
	}

	tests := []struct {
		name           string
		body           map[string]any
		createErr      error
		wantStatus     int
		wantErrMessage string
	}{
		{
			name:       "screen with its seat grid",
			body:       validBody(),
			wantStatus: http.StatusCreated,
		},
		{
			name: "more rows than letters",
			body: func() map[string]any {
				body := validBody()
				body["rows"] = 27
				return body
			}(),
			wantStatus:     http.StatusUnprocessableEntity,
			wantErrMessage: "must be less than or equal to 26",
		},
		{
			name: "no columns",
			body: func() map[string]any {
				body := validBody()
				delete(body, "columns")
				return body
			}(),
			wantStatus:     http.StatusUnprocessableEntity,
			wantErrMessage: validator.ErrRequired,
		},
		{
			name:       "unknown theater",
			body:       validBody(),
			createErr:  domain.ErrRecordNotFound,
			wantStatus: http.StatusNotFound,
		},
		{
			name:           "database error",
			body:           validBody(),
			createErr:      errors.New("insert failed"),
			wantStatus:     http.StatusInternalServerError,
			wantErrMessage: "insert failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApplication(func(a *Application) {
				a.screenRepo = &mocks.MockScreenRepo{
					CreateWithSeatsFunc: func(ctx context.Context, screen *domain.Screen) error {
						if tt.createErr != nil {
							return tt.createErr
						}

						screen.ID = "s1"
						screen.Seats = domain.SeatGrid(screen.ID, screen.Rows, screen.Columns)
						return nil
					},
				}
			})

			w, r := executeRequest(t, http.MethodPost, "/screens", tt.body)

			app.ScreenCreate(w, r)

			if got := w.Code; got != tt.wantStatus {
				t.Fatalf("CreateScreen() status = %v, want %v", got, tt.wantStatus)
			}

			if tt.wantStatus == http.StatusCreated {
				var resp api.Screen
				if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
					t.Fatalf("Failed to decode response: %v", err)
				}

				if resp.Id != "s1" || resp.TheaterId != "t1" || resp.Rows != 3 || resp.Columns != 4 {
					t.Errorf("CreateScreen() unexpected response %+v", resp)
				}

				if resp.Seats == nil || len(*resp.Seats) != 12 {
					t.Fatalf("CreateScreen() returned %v seats, want 12", resp.Seats)
				}

				last := (*resp.Seats)[11]
				if last.Row != "C" || last.Number != 12 {
					t.Errorf("CreateScreen() last seat = %s%d, want C12", last.Row, last.Number)
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

func TestGetScreenById(t *testing.T) {
	tests := []struct {
		name       string
		getErr     error
		wantStatus int
	}{
		{name: "found", wantStatus: http.StatusOK},
		{name: "missing", getErr: domain.ErrRecordNotFound, wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApplication(func(a *Application) {
				a.screenRepo = &mocks.MockScreenRepo{
					GetByIdFunc: func(ctx context.Context, id string) (*domain.Screen, error) {
						if tt.getErr != nil {
							return nil, tt.getErr
						}

						return &domain.Screen{
							ID:        id,
							TheaterID: "t1",
							Name:      "Screen 1",
							Rows:      1,
							Columns:   2,
							Theater:   &domain.Theater{ID: "t1", Name: "Cineplex", Location: "Main St"},
							Seats:     domain.SeatGrid(id, 1, 2),
						}, nil
					},
				}
			})

			w, r := executeRequest(t, http.MethodGet, "/screens/s1", nil)

			app.ScreenGetById(w, r, "s1")

			if got := w.Code; got != tt.wantStatus {
				t.Fatalf("GetScreenById() status = %v, want %v", got, tt.wantStatus)
			}

			if tt.wantStatus != http.StatusOK {
				return
			}

			var resp api.Screen
			if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
				t.Fatalf("Failed to decode response: %v", err)
			}

			if resp.Theater == nil || resp.Theater.Name != "Cineplex" {
				t.Errorf("GetScreenById() theater = %+v, want Cineplex", resp.Theater)
			}

			if resp.Seats == nil || len(*resp.Seats) != 2 {
				t.Errorf("GetScreenById() seats = %v, want 2", resp.Seats)
			}
		})
	}
}

func TestGetScreensByTheaterId(t *testing.T) {
	var queried string

	app := newTestApplication(func(a *Application) {
		a.screenRepo = &mocks.MockScreenRepo{
			GetByTheaterIdFunc: func(ctx context.Context, theaterID string) ([]domain.Screen, error) {
				queried = theaterID
				return []domain.Screen{
					{ID: "s1", TheaterID: theaterID, Name: "Screen 1", Rows: 10, Columns: 10},
					{ID: "s2", TheaterID: theaterID, Name: "Screen 2", Rows: 8, Columns: 12},
				}, nil
			},
		}
	})

	w, r := executeRequest(t, http.MethodGet, "/theaters/t1/screens", nil)

	app.ScreenGetByTheaterId(w, r, "t1")

	if w.Code != http.StatusOK {
		t.Fatalf("GetScreensByTheaterId() status = %v, want %v", w.Code, http.StatusOK)
	}

	var resp []api.Screen
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	if queried != "t1" || len(resp) != 2 || resp[1].Name != "Screen 2" {
		t.Errorf("GetScreensByTheaterId() queried %q, got %+v", queried, resp)
	}
}

func TestUpdateScreen(t *testing.T) {
	tests := []struct {
		name           string
		body           map[string]any
		updateErr      error
		wantStatus     int
		wantErrMessage string
	}{
		{name: "renamed", body: map[string]any{"name": "IMAX"}, wantStatus: http.StatusOK},
		{name: "missing name", body: map[string]any{}, wantStatus: http.StatusUnprocessableEntity, wantErrMessage: validator.ErrRequired},
		{name: "missing screen", body: map[string]any{"name": "IMAX"}, updateErr: domain.ErrRecordNotFound, wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stored *domain.Screen

			app := newTestApplication(func(a *Application) {
				a.screenRepo = &mocks.MockScreenRepo{
					UpdateFunc: func(ctx context.Context, screen *domain.Screen) error {
						stored = screen
						return tt.updateErr
					},
				}
			})

			w, r := executeRequest(t, http.MethodPut, "/screens/s1", tt.body)

			app.ScreenUpdate(w, r, "s1")

			if got := w.Code; got != tt.wantStatus {
				t.Fatalf("UpdateScreen() status = %v, want %v", got, tt.wantStatus)
			}

			if tt.wantStatus == http.StatusOK && (stored.ID != "s1" || stored.Name != "IMAX") {
				t.Errorf("UpdateScreen() stored %+v", stored)
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

func TestDeleteScreen(t *testing.T) {
	tests := []struct {
		name       string
		deleteErr  error
		wantStatus int
	}{
		{name: "deleted", wantStatus: http.StatusNoContent},
		{name: "missing", deleteErr: domain.ErrRecordNotFound, wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApplication(func(a *Application) {
				a.screenRepo = &mocks.MockScreenRepo{
					DeleteFunc: func(ctx context.Context, id string) error {
						return tt.deleteErr
					},
				}
			})

			w, r := executeRequest(t, http.MethodDelete, "/screens/s1", nil)

			app.ScreenDelete(w, r, "s1")

			if got := w.Code; got != tt.wantStatus {
				t.Errorf("DeleteScreen() status = %v, want %v", got, tt.wantStatus)
			}
		})
	}
}
