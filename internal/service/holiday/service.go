package holiday

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/developnetgeometry/ot-scribe-sub002/internal/domain/holiday"
	"github.com/developnetgeometry/ot-scribe-sub002/internal/domain/notification"
	"github.com/developnetgeometry/ot-scribe-sub002/internal/pkg/claims"
	"github.com/developnetgeometry/ot-scribe-sub002/internal/pkg/holidayapi"
)

type HolidayServiceImpl struct {
	holidayRepository   holiday.Repository
	holidayClient       *holidayapi.Client
	notificationService notification.Service
}

func NewHolidayService(
	holidayRepository holiday.Repository,
	holidayClient *holidayapi.Client,
	notificationService notification.Service,
) holiday.Service {
	return &HolidayServiceImpl{
		holidayRepository:   holidayRepository,
		holidayClient:       holidayClient,
		notificationService: notificationService,
	}
}

// Create implements holiday.Service.
func (s *HolidayServiceImpl) Create(ctx context.Context, req holiday.CreateHolidayRequest) (holiday.HolidayResponse, error) {
	if err := req.Validate(); err != nil {
		return holiday.HolidayResponse{}, err
	}

	actor, err := claims.FromContext(ctx)
	if err != nil {
		return holiday.HolidayResponse{}, err
	}
	companyID, err := actor.MustCompanyID()
	if err != nil {
		return holiday.HolidayResponse{}, err
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return holiday.HolidayResponse{}, fmt.Errorf("failed to parse holiday date: %w", err)
	}

	created, err := s.holidayRepository.Create(ctx, holiday.Holiday{
		CompanyID: &companyID,
		Date:      date,
		Name:      req.Name,
		State:     req.State,
		Source:    holiday.SourceManual,
		IsActive:  true,
	})
	if err != nil {
		return holiday.HolidayResponse{}, err
	}
	return holiday.ToHolidayResponse(created), nil
}

// List implements holiday.Service.
func (s *HolidayServiceImpl) List(ctx context.Context, filter holiday.ListHolidaysFilter) ([]holiday.HolidayResponse, error) {
	actor, err := claims.FromContext(ctx)
	if err != nil {
		return nil, err
	}
	if filter.CompanyID == nil {
		filter.CompanyID = actor.CompanyID
	}

	holidays, err := s.holidayRepository.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]holiday.HolidayResponse, 0, len(holidays))
	for _, h := range holidays {
		responses = append(responses, holiday.ToHolidayResponse(h))
	}
	return responses, nil
}

// Update implements holiday.Service.
func (s *HolidayServiceImpl) Update(ctx context.Context, id string, req holiday.UpdateHolidayRequest) (holiday.HolidayResponse, error) {
	if err := req.Validate(); err != nil {
		return holiday.HolidayResponse{}, err
	}

	existing, err := s.holidayRepository.GetByID(ctx, id)
	if err != nil {
		return holiday.HolidayResponse{}, err
	}

	if req.Name != nil {
		existing.Name = *req.Name
	}
	if req.State != nil {
		existing.State = *req.State
	}
	if req.IsActive != nil {
		existing.IsActive = *req.IsActive
	}

	updated, err := s.holidayRepository.Update(ctx, existing)
	if err != nil {
		return holiday.HolidayResponse{}, err
	}
	return holiday.ToHolidayResponse(updated), nil
}

// Delete implements holiday.Service.
func (s *HolidayServiceImpl) Delete(ctx context.Context, id string) error {
	return s.holidayRepository.Delete(ctx, id)
}

// SyncYear implements holiday.Service. Synced entries are nationwide unless
// the source scopes them to states, in which case one row per state is
// upserted. Manual entries are never touched.
func (s *HolidayServiceImpl) SyncYear(ctx context.Context, year int) (int, error) {
	publicHolidays, err := s.holidayClient.PublicHolidays(ctx, year)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", holiday.ErrSyncFailed, err)
	}

	count := 0
	for _, ph := range publicHolidays {
		date, err := time.Parse("2006-01-02", ph.Date)
		if err != nil {
			slog.Warn("skipping holiday with unparsable date",
				slog.String("date", ph.Date),
				slog.String("name", ph.Name),
			)
			continue
		}

		name := ph.LocalName
		if name == "" {
			name = ph.Name
		}

		states := []string{""}
		if !ph.Global && len(ph.Counties) > 0 {
			states = states[:0]
			for _, county := range ph.Counties {
				states = append(states, strings.TrimPrefix(county, "MY-"))
			}
		}

		for _, state := range states {
			err := s.holidayRepository.Upsert(ctx, holiday.Holiday{
				Date:     date,
				Name:     name,
				State:    state,
				Source:   holiday.SourceSync,
				IsActive: true,
			})
			if err != nil {
				return count, err
			}
			count++
		}
	}

	// Notify the triggering user when the sync was requested interactively.
	// Scheduled runs carry no actor and only log.
	if actor, err := claims.FromContext(ctx); err == nil {
		notifyErr := s.notificationService.Notify(ctx, notification.Notification{
			RecipientID: actor.UserID,
			Type:        notification.TypeHolidaySynced,
			Title:       "Holiday calendar synced",
			Message:     fmt.Sprintf("Imported %d public holiday entries for %d", count, year),
			Data:        map[string]interface{}{"year": year, "count": count},
		})
		if notifyErr != nil {
			slog.Warn("failed to send holiday sync notification", slog.Any("error", notifyErr))
		}
	}

	slog.Info("holiday calendar synced",
		slog.Int("year", year),
		slog.Int("count", count),
	)
	return count, nil
}
