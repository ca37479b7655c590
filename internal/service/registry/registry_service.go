package registry

import (
	"context"
	"fmt"
	"time"

	"github.com/avelis/spacetravel/internal/domain"
	"github.com/avelis/spacetravel/internal/kafka"
	"github.com/avelis/spacetravel/internal/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Pending describes a staged entry awaiting the caller's yes/no decision.
type Pending struct {
	Entity  string
	Key     string
	Summary string
}

// ConfirmFunc is the caller-supplied confirmation step. Returning false, an
// error, or overrunning the configured timeout all count as a negative
// decision and roll the staged entry back.
type ConfirmFunc func(ctx context.Context, pending Pending) (bool, error)

// Confirm wraps a decision already made by the caller into a ConfirmFunc.
func Confirm(decision bool) ConfirmFunc {
	return func(context.Context, Pending) (bool, error) { return decision, nil }
}

type Cache interface {
	InvalidateItineraries(ctx context.Context) error
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

// RegistryUseCase is the write side of the registry: one validated,
// confirm-gated insert per entity type.
type RegistryUseCase interface {
	EnterPlanet(ctx context.Context, p domain.Planet, confirm ConfirmFunc) error
	EnterStation(ctx context.Context, s domain.SpaceStation, confirm ConfirmFunc) error
	EnterSpaceport(ctx context.Context, p domain.Spaceport, confirm ConfirmFunc) (int64, error)
	EnterSpacecraft(ctx context.Context, c domain.SpacecraftType, confirm ConfirmFunc) error
	EnterRoute(ctx context.Context, r domain.Route, confirm ConfirmFunc) (int64, error)
	EnterFlight(ctx context.Context, in FlightInput, confirm ConfirmFunc) error
}

// FlightInput carries a flight plus its schedule days as submitted. Days are
// raw tokens; validation requires exact canonical weekday names.
type FlightInput struct {
	Number         string
	RouteID        int64
	SpacecraftType string
	DepartureTime  string
	DurationHours  float64
	Days           []string
}

type RegistryService struct {
	repo           repository.RegistryRepository
	cache          Cache
	producer       Producer
	entriesTopic   string
	confirmTimeout time.Duration
	log            *zap.SugaredLogger
}

func NewRegistryService(
	repo repository.RegistryRepository,
	cache Cache,
	producer Producer,
	entriesTopic string,
	confirmTimeout time.Duration,
	log *zap.SugaredLogger,
) *RegistryService {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &RegistryService{
		repo:           repo,
		cache:          cache,
		producer:       producer,
		entriesTopic:   entriesTopic,
		confirmTimeout: confirmTimeout,
		log:            log,
	}
}

func (s *RegistryService) EnterPlanet(ctx context.Context, p domain.Planet, confirm ConfirmFunc) error {
	if err := validatePlanet(p); err != nil {
		return err
	}
	pending := Pending{Entity: "planet", Key: p.Name, Summary: fmt.Sprintf("planet %s size=%d population=%d", p.Name, p.Size, p.Population)}
	return s.commitStaged(ctx, pending, confirm, func(ctx context.Context, tx repository.RegistryTx) error {
		return tx.InsertPlanet(ctx, p)
	})
}

func (s *RegistryService) EnterStation(ctx context.Context, st domain.SpaceStation, confirm ConfirmFunc) error {
	if err := validateStation(st); err != nil {
		return err
	}
	if st.Planet != nil {
		ok, err := s.repo.PlanetExists(ctx, *st.Planet)
		if err != nil {
			return &domain.StorageError{Op: "probe planet", Err: err}
		}
		if !ok {
			return &domain.ReferentialError{Entity: "planet", Key: *st.Planet}
		}
	}
	pending := Pending{Entity: "spacestation", Key: st.Name, Summary: fmt.Sprintf("station %s capacity=%d", st.Name, st.Capacity)}
	return s.commitStaged(ctx, pending, confirm, func(ctx context.Context, tx repository.RegistryTx) error {
		return tx.InsertStation(ctx, st)
	})
}

func (s *RegistryService) EnterSpaceport(ctx context.Context, p domain.Spaceport, confirm ConfirmFunc) (int64, error) {
	if err := validateSpaceport(p); err != nil {
		return 0, err
	}
	if p.Planet != nil {
		ok, err := s.repo.PlanetExists(ctx, *p.Planet)
		if err != nil {
			return 0, &domain.StorageError{Op: "probe planet", Err: err}
		}
		if !ok {
			return 0, &domain.ReferentialError{Entity: "planet", Key: *p.Planet}
		}
	}
	if p.Station != nil {
		ok, err := s.repo.StationExists(ctx, *p.Station)
		if err != nil {
			return 0, &domain.StorageError{Op: "probe station", Err: err}
		}
		if !ok {
			return 0, &domain.ReferentialError{Entity: "spacestation", Key: *p.Station}
		}
	}
	var id int64
	pending := Pending{Entity: "spaceport", Key: p.Name, Summary: fmt.Sprintf("spaceport %s capacity=%d fee=%d", p.Name, p.Capacity, p.Fee)}
	err := s.commitStaged(ctx, pending, confirm, func(ctx context.Context, tx repository.RegistryTx) error {
		var err error
		id, err = tx.InsertSpaceport(ctx, p)
		return err
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (s *RegistryService) EnterSpacecraft(ctx context.Context, c domain.SpacecraftType, confirm ConfirmFunc) error {
	if err := validateSpacecraft(c); err != nil {
		return err
	}
	pending := Pending{Entity: "spacecraft", Key: c.Name, Summary: fmt.Sprintf("spacecraft %s capacity=%d range=%d", c.Name, c.Capacity, c.MaxRange)}
	return s.commitStaged(ctx, pending, confirm, func(ctx context.Context, tx repository.RegistryTx) error {
		return tx.InsertSpacecraft(ctx, c)
	})
}

// EnterRoute rejects a route whose endpoints resolve to the same owning
// planet: ports on one body are not routed.
func (s *RegistryService) EnterRoute(ctx context.Context, r domain.Route, confirm ConfirmFunc) (int64, error) {
	if err := validateRoute(r); err != nil {
		return 0, err
	}
	originPlanet, found, err := s.repo.PortPlanet(ctx, r.OriginID)
	if err != nil {
		return 0, &domain.StorageError{Op: "probe origin port", Err: err}
	}
	if !found {
		return 0, &domain.ReferentialError{Entity: "spaceport", Key: fmt.Sprint(r.OriginID)}
	}
	destPlanet, found, err := s.repo.PortPlanet(ctx, r.DestID)
	if err != nil {
		return 0, &domain.StorageError{Op: "probe destination port", Err: err}
	}
	if !found {
		return 0, &domain.ReferentialError{Entity: "spaceport", Key: fmt.Sprint(r.DestID)}
	}
	if originPlanet != nil && destPlanet != nil && *originPlanet == *destPlanet {
		return 0, &domain.ValidationError{Field: "dest_id", Reason: "both ports are owned by planet " + *originPlanet}
	}
	var id int64
	pending := Pending{Entity: "route", Key: fmt.Sprintf("%d->%d", r.OriginID, r.DestID), Summary: fmt.Sprintf("route %d -> %d dist=%d", r.OriginID, r.DestID, r.Distance)}
	err = s.commitStaged(ctx, pending, confirm, func(ctx context.Context, tx repository.RegistryTx) error {
		var err error
		id, err = tx.InsertRoute(ctx, r)
		return err
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

// EnterFlight stages the flight row and every schedule day as one atomic
// group. No flight-without-schedule state can persist: any failure before
// commit rolls the whole group back.
func (s *RegistryService) EnterFlight(ctx context.Context, in FlightInput, confirm ConfirmFunc) error {
	f, err := validateFlight(in)
	if err != nil {
		return err
	}
	dup, err := s.repo.FlightExists(ctx, f.Number)
	if err != nil {
		return &domain.StorageError{Op: "probe flight", Err: err}
	}
	if dup {
		return &domain.ValidationError{Field: "flight_number", Reason: "already exists"}
	}
	distance, found, err := s.repo.RouteDistance(ctx, f.RouteID)
	if err != nil {
		return &domain.StorageError{Op: "probe route", Err: err}
	}
	if !found {
		return &domain.ReferentialError{Entity: "route", Key: fmt.Sprint(f.RouteID)}
	}
	maxRange, found, err := s.repo.SpacecraftRange(ctx, f.SpacecraftType)
	if err != nil {
		return &domain.StorageError{Op: "probe spacecraft", Err: err}
	}
	if !found {
		return &domain.ReferentialError{Entity: "spacecraft", Key: f.SpacecraftType}
	}
	if distance > maxRange {
		return &domain.ValidationError{Field: "route_id", Reason: fmt.Sprintf("route distance %d exceeds spacecraft range %d", distance, maxRange)}
	}
	pending := Pending{Entity: "flight", Key: f.Number, Summary: fmt.Sprintf("flight %s route=%d craft=%s days=%d", f.Number, f.RouteID, f.SpacecraftType, len(f.Days))}
	return s.commitStaged(ctx, pending, confirm, func(ctx context.Context, tx repository.RegistryTx) error {
		if err := tx.InsertFlight(ctx, f); err != nil {
			return err
		}
		for _, day := range f.Days {
			if err := tx.InsertScheduleDay(ctx, f.Number, day); err != nil {
				return err
			}
		}
		return nil
	})
}

// commitStaged runs the shared confirm-then-commit protocol: stage inside a
// transaction, ask the caller, then commit or roll back. Exactly one of the
// two outcomes results from any call.
func (s *RegistryService) commitStaged(ctx context.Context, pending Pending, confirm ConfirmFunc, stage func(ctx context.Context, tx repository.RegistryTx) error) error {
	tx, err := s.repo.Begin(ctx)
	if err != nil {
		return &domain.StorageError{Op: "begin " + pending.Entity, Err: err}
	}
	defer tx.Rollback(ctx)

	if err := stage(ctx, tx); err != nil {
		return &domain.StorageError{Op: "stage " + pending.Entity, Err: err}
	}

	ok, err := s.decide(ctx, pending, confirm)
	if err != nil {
		return err
	}
	if !ok {
		s.log.Infow("entry declined", "entity", pending.Entity, "key", pending.Key)
		return domain.ErrNotConfirmed
	}

	if err := tx.Commit(ctx); err != nil {
		return &domain.StorageError{Op: "commit " + pending.Entity, Err: err}
	}
	s.afterCommit(ctx, pending)
	return nil
}

// decide runs the confirmation callback under the configured timeout. An
// abandoned or failed confirmation counts as a negative answer so no staged
// transaction is held open indefinitely.
func (s *RegistryService) decide(ctx context.Context, pending Pending, confirm ConfirmFunc) (bool, error) {
	if confirm == nil {
		return false, domain.ErrNotConfirmed
	}
	cctx := ctx
	if s.confirmTimeout > 0 {
		var cancel context.CancelFunc
		cctx, cancel = context.WithTimeout(ctx, s.confirmTimeout)
		defer cancel()
	}
	ok, err := confirm(cctx, pending)
	if err != nil {
		s.log.Warnw("confirmation aborted", "entity", pending.Entity, "key", pending.Key, "error", err)
		return false, domain.ErrNotConfirmed
	}
	return ok, nil
}

func (s *RegistryService) afterCommit(ctx context.Context, pending Pending) {
	if s.cache != nil {
		if err := s.cache.InvalidateItineraries(ctx); err != nil {
			s.log.Warnw("invalidate itinerary cache", "error", err)
		}
	}
	if s.producer == nil || s.entriesTopic == "" {
		return
	}
	event := kafka.EntryEvent{
		ID:          uuid.NewString(),
		Entity:      pending.Entity,
		Key:         pending.Key,
		Summary:     pending.Summary,
		CommittedAt: time.Now().UTC(),
	}
	if err := s.producer.Publish(ctx, s.entriesTopic, event.Key, event); err != nil {
		s.log.Warnw("publish entry event", "entity", pending.Entity, "key", pending.Key, "error", err)
	}
}

var _ RegistryUseCase = (*RegistryService)(nil)
