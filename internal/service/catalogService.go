package service

import (
	"context"
	"fmt"
	"time"

	"event-booking/internal/clock"
	repository "event-booking/internal/database/postgres"
	"event-booking/internal/entity"
)

type catalogService struct {
	eventRepo repository.EventRepository
	clock     clock.Clock
}

// NewCatalogService creates the read side of the catalog.
func NewCatalogService(eventRepo repository.EventRepository, clk clock.Clock) CatalogService {
	return &catalogService{eventRepo: eventRepo, clock: clk}
}

func (s *catalogService) GetHome(ctx context.Context) (*HomePage, error) {
	events, err := s.eventRepo.GetAll(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get events: %w", err)
	}

	today := s.clock.Now().Format(entity.DateLayout)

	return &HomePage{
		Upcoming:   upcomingEvents(events, today),
		AllEvents:  events,
		Categories: groupByCategory(events),
		Today:      today,
	}, nil
}

func (s *catalogService) ListEvents(ctx context.Context, search, category string) ([]*entity.Event, error) {
	events, err := s.eventRepo.GetAll(ctx, &entity.EventFilter{
		Title:    search,
		Category: category,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}

	return events, nil
}

func (s *catalogService) GetEvent(ctx context.Context, id string) (*entity.Event, error) {
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return event, nil
}

// upcomingEvents keeps events dated today or later. An event whose date
// does not parse is kept too: a malformed date should not make a listing
// vanish from the home page.
func upcomingEvents(events []*entity.Event, today string) []*entity.Event {
	upcoming := make([]*entity.Event, 0, len(events))
	for _, e := range events {
		if _, err := time.Parse(entity.DateLayout, e.Date); err != nil {
			upcoming = append(upcoming, e)
			continue
		}
		if e.Date >= today {
			upcoming = append(upcoming, e)
		}
	}
	return upcoming
}

// groupByCategory buckets events by category in first-seen order. Events
// without a category land in the default bucket.
func groupByCategory(events []*entity.Event) []*entity.CategoryGroup {
	var groups []*entity.CategoryGroup
	index := make(map[string]*entity.CategoryGroup)

	for _, e := range events {
		name := e.Category
		if name == "" {
			name = entity.DefaultCategory
		}
		group, ok := index[name]
		if !ok {
			group = &entity.CategoryGroup{Name: name}
			index[name] = group
			groups = append(groups, group)
		}
		group.Events = append(group.Events, e)
	}

	return groups
}
