package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/cinebook/booking-api/api"
	"github.com/cinebook/booking-api/internal/domain"
	"github.com/cinebook/booking-api/internal/mocks"
	"github.com/cinebook/booking-api/internal/validator"
	"github.com/google/go-cmp/cmp"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type SeatHoldTestSuite struct {
	suite.Suite
	app         *Application
	redisClient *mocks.MockRedisClient
}

func TestSeatHoldSuite(t *testing.T) {
	suite.Run(t, new(SeatHoldTestSuite))
}

func (s *SeatHoldTestSuite) SetupTest() {
	s.redisClient = new(mocks.MockRedisClient)

	s.app = newTestApplication(func(a *Application) {
		a.redis = s.redisClient
		a.showRepo = &mocks.MockShowRepo{
			GetByIdFunc: func(ctx context.Context, id string) (*domain.Show, error) {
				if id != testShowID {
					return nil, domain.ErrRecordNotFound
				}
				return &domain.Show{ID: id, ScreenID: "s1"}, nil
			},
		}
		a.seatRepo = &mocks.MockSeatRepo{
			GetByIdFunc: func(ctx context.Context, id string) (*domain.Seat, error) {
				switch id {
				case testSeatID:
					return &domain.Seat{ID: id, ScreenID: "s1", Row: "A", Number: 1}, nil
				case "other-screen-seat":
					return &domain.Seat{ID: id, ScreenID: "s2", Row: "A", Number: 1}, nil
				default:
					return nil, domain.ErrRecordNotFound
				}
			},
		}
	})
}

func (s *SeatHoldTestSuite) hold(userID, showID, seatID string) (int, []byte) {
	w, r := executeRequest(s.T(), http.MethodPost, fmt.Sprintf("/shows/%s/seats/%s/hold", showID, seatID), nil)
	r = withSession(r, userID, domain.RoleUser)

	s.app.SeatHold(w, r, showID, seatID)

	return w.Code, w.Body.Bytes()
}

func (s *SeatHoldTestSuite) expectHoldScript(owner string, held int64) {
	key := seatHoldKey(testShowID, testSeatID)
	ttl := int(domain.SeatHoldTTL.Seconds())

	s.redisClient.On("EvalSha", mock.Anything, mock.Anything, []string{key}, owner, ttl).
		Return(redis.NewCmdResult(held, nil))
}

func (s *SeatHoldTestSuite) TestHoldFreeSeat() {
	s.expectHoldScript(testUserID, 1)

	status, body := s.hold(testUserID, testShowID, testSeatID)

	s.Require().Equal(http.StatusOK, status, string(body))

	var resp api.SeatHoldResponse
	s.Require().NoError(json.Unmarshal(body, &resp))
	s.Equal(testShowID, resp.ShowId)
	s.Equal(testSeatID, resp.SeatId)
	s.False(resp.ExpiresAt.IsZero())
	s.redisClient.AssertExpectations(s.T())
}

func (s *SeatHoldTestSuite) TestSameOwnerRefreshesHold() {
	s.expectHoldScript(testUserID, 1)

	status, body := s.hold(testUserID, testShowID, testSeatID)
	s.Equal(http.StatusOK, status, string(body))

	status, body = s.hold(testUserID, testShowID, testSeatID)
	s.Equal(http.StatusOK, status, string(body))

	s.redisClient.AssertNumberOfCalls(s.T(), "EvalSha", 2)
}

func (s *SeatHoldTestSuite) TestHoldIsASingleRoundTrip() {
	s.expectHoldScript(testUserID, 1)

	status, body := s.hold(testUserID, testShowID, testSeatID)

	s.Equal(http.StatusOK, status, string(body))
	s.redisClient.AssertNotCalled(s.T(), "Get", mock.Anything, mock.Anything)
}

func (s *SeatHoldTestSuite) TestSeatHeldByAnotherUser() {
	s.expectHoldScript(testUserID, 0)

	status, body := s.hold(testUserID, testShowID, testSeatID)

	s.Equal(http.StatusConflict, status)

	var resp api.ErrorResponse
	s.Require().NoError(json.Unmarshal(body, &resp))
	s.Equal(api.CONFLICT, resp.Code)
	s.Equal(domain.ErrSeatHeldByOther.Error(), resp.Message)
}

func (s *SeatHoldTestSuite) TestHoldScriptFailure() {
	key := seatHoldKey(testShowID, testSeatID)
	s.redisClient.On("EvalSha", mock.Anything, mock.Anything, []string{key}, testUserID, int(domain.SeatHoldTTL.Seconds())).
		Return(redis.NewCmdResult(nil, errors.New("connection refused")))

	status, _ := s.hold(testUserID, testShowID, testSeatID)

	s.Equal(http.StatusInternalServerError, status)
}

func (s *SeatHoldTestSuite) TestSeatOnAnotherScreen() {
	status, _ := s.hold(testUserID, testShowID, "other-screen-seat")

	s.Equal(http.StatusBadRequest, status)
	s.redisClient.AssertNotCalled(s.T(), "EvalSha", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *SeatHoldTestSuite) TestUnknownShow() {
	status, _ := s.hold(testUserID, "missing", testSeatID)

	s.Equal(http.StatusNotFound, status)
}

func TestCreateSeat(t *testing.T) {
	tests := []struct {
		name           string
		body           api.CreateSeatRequest
		wantStatus     int
		wantErrMessage string
		wantSeat       *domain.Seat
	}{
		{
			name:       "first seat is in row A",
			body:       api.CreateSeatRequest{ScreenId: "s1", Number: 1},
			wantStatus: http.StatusCreated,
			wantSeat:   &domain.Seat{ID: "se1", ScreenID: "s1", Row: "A", Number: 1},
		},
		{
			name:       "eleventh seat with default columns is in row B",
			body:       api.CreateSeatRequest{ScreenId: "s1", Number: 11},
			wantStatus: http.StatusCreated,
			wantSeat:   &domain.Seat{ID: "se1", ScreenID: "s1", Row: "B", Number: 11},
		},
		{
			name:       "custom columns per row",
			body:       api.CreateSeatRequest{ScreenId: "s1", Number: 11, ColumnsPerRow: ptr(5)},
			wantStatus: http.StatusCreated,
			wantSeat:   &domain.Seat{ID: "se1", ScreenID: "s1", Row: "C", Number: 11},
		},
		{
			name:       "last seat of row Z",
			body:       api.CreateSeatRequest{ScreenId: "s1", Number: 260},
			wantStatus: http.StatusCreated,
			wantSeat:   &domain.Seat{ID: "se1", ScreenID: "s1", Row: "Z", Number: 260},
		},
		{
			name:           "seat past row Z",
			body:           api.CreateSeatRequest{ScreenId: "s1", Number: 261},
			wantStatus:     http.StatusUnprocessableEntity,
			wantErrMessage: "must be less than or equal to 260",
		},
		{
			name:           "seat past row Z with custom columns",
			body:           api.CreateSeatRequest{ScreenId: "s1", Number: 79, ColumnsPerRow: ptr(3)},
			wantStatus:     http.StatusUnprocessableEntity,
			wantErrMessage: "must be less than or equal to 78",
		},
		{
			name:           "missing screen",
			body:           api.CreateSeatRequest{Number: 1},
			wantStatus:     http.StatusUnprocessableEntity,
			wantErrMessage: validator.ErrRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stored *domain.Seat

			app := newTestApplication(func(a *Application) {
				a.seatRepo = &mocks.MockSeatRepo{
					CreateFunc: func(ctx context.Context, seat *domain.Seat) error {
						seat.ID = "se1"
						stored = seat
						return nil
					},
				}
			})

			w, r := executeRequest(t, http.MethodPost, "/seats", tt.body)

			app.SeatCreate(w, r)

			if w.Code != tt.wantStatus {
				t.Fatalf("CreateSeat() status = %v, want %v", w.Code, tt.wantStatus)
			}

			if tt.wantSeat != nil {
				if diff := cmp.Diff(tt.wantSeat, stored); diff != "" {
					t.Errorf("CreateSeat() stored seat mismatch (-want +got):\n%s", diff)
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

func TestUpdateSeatBookingStatus(t *testing.T) {
	app := newTestApplication(func(a *Application) {
		a.seatRepo = &mocks.MockSeatRepo{
			UpdateBookingStatusFunc: func(ctx context.Context, id string, isBooked bool) (*domain.Seat, error) {
				return &domain.Seat{ID: id, ScreenID: "s1", Row: "A", Number: 1, IsBooked: isBooked}, nil
			},
		}
	})

	w, r := executeRequest(t, http.MethodPatch, "/seats/se1/booking-status", map[string]any{"isBooked": true})

	app.SeatUpdateBookingStatus(w, r, "se1")

	if w.Code != http.StatusOK {
		t.Fatalf("UpdateSeatBookingStatus() status = %v, want %v", w.Code, http.StatusOK)
	}

	var resp api.Seat
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	if !resp.IsBooked {
		t.Errorf("UpdateSeatBookingStatus() isBooked = false, want true")
	}
}
