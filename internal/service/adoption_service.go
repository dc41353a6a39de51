package service

import (
	"context"
	"time"

	"badger-buds-be/internal/dto"
	"badger-buds-be/internal/entity"
	"badger-buds-be/internal/mapper"
	"badger-buds-be/internal/pkg/logger"
	"badger-buds-be/internal/pkg/metrics"
	"badger-buds-be/internal/pkg/serverutils"
	"badger-buds-be/internal/repository/specification"
	"badger-buds-be/internal/repository/unitofwork"
	"badger-buds-be/pkg/adoption"
	adoptionEvents "badger-buds-be/pkg/adoption/events"
	"badger-buds-be/pkg/store"
)

const (
	EmptyAvailableMessage = "No buds are available for adoption!"
	EmptyBasketMessage    = "You have no buds in your basket!"
	EmptyAdoptedMessage   = "You have not adopted any buds yet!"
)

type IAdoptionService interface {
	GetCatalog(ctx context.Context, sessionId string) (*dto.CatListResponse, error)
	ShowCat(ctx context.Context, sessionId, catId string) (*dto.CatResponse, error)
	GetAvailable(ctx context.Context, sessionId string) (*dto.CatListResponse, error)
	GetBasket(ctx context.Context, sessionId string) (*dto.CatListResponse, error)
	GetAdopted(ctx context.Context, sessionId string) (*dto.CatListResponse, error)
	GetSelection(ctx context.Context, sessionId string) (*dto.SessionStateResponse, error)
	Save(ctx context.Context, sessionId string, req *dto.SelectCatRequest) (*dto.SelectionResponse, error)
	Unselect(ctx context.Context, sessionId string, req *dto.SelectCatRequest) (*dto.SelectionResponse, error)
	Adopt(ctx context.Context, sessionId string, req *dto.SelectCatRequest) (*dto.SelectionResponse, error)
	EndSession(ctx context.Context, sessionId string) error
}

type adoptionService struct {
	uowFactory     unitofwork.RepositoryFactory
	sessions       store.Backend
	logger         logger.ILogger
	events         adoptionEvents.Publisher
	publisher      IPublisherService
	metrics        *metrics.SelectionMetrics
	responseMapper *mapper.CatResponseMapper
	locks          *sessionLocks
}

func NewAdoptionService(
	uowFactory unitofwork.RepositoryFactory,
	sessions store.Backend,
	logger logger.ILogger,
	events adoptionEvents.Publisher,
	publisher IPublisherService,
	metrics *metrics.SelectionMetrics,
	imageBaseURL string,
) IAdoptionService {
	return &adoptionService{
		uowFactory:     uowFactory,
		sessions:       sessions,
		logger:         logger,
		events:         events,
		publisher:      publisher,
		metrics:        metrics,
		responseMapper: mapper.NewCatResponseMapper(imageBaseURL),
		locks:          newSessionLocks(),
	}
}

func (s *adoptionService) selectorFor(sessionId string) (*adoption.Selector, *store.SessionState) {
	state := store.NewSessionState(s.sessions, sessionId, s.logger)
	return adoption.NewSelector(state), state
}

func (s *adoptionService) loadCatalog(ctx context.Context) ([]entity.Cat, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	cats, err := uow.CatRepository().FindAll(ctx,
		specification.OrderBy{Field: "created_at"},
		specification.OrderBy{Field: "id"},
	)
	if err != nil {
		return nil, err
	}

	catalog := make([]entity.Cat, 0, len(cats))
	for _, c := range cats {
		catalog = append(catalog, *c)
	}
	return catalog, nil
}

func (s *adoptionService) findCat(ctx context.Context, catId string) (*entity.Cat, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	cat, err := uow.CatRepository().FindOne(ctx, specification.ByID{ID: catId})
	if err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, serverutils.NotFound("Cat %s not found", catId)
	}
	return cat, nil
}

func (s *adoptionService) GetCatalog(ctx context.Context, sessionId string) (*dto.CatListResponse, error) {
	catalog, err := s.loadCatalog(ctx)
	if err != nil {
		return nil, err
	}

	selector, _ := s.selectorFor(sessionId)
	res := &dto.CatListResponse{
		Cats:  make([]*dto.CatResponse, 0, len(catalog)),
		Count: len(catalog),
	}
	for i := range catalog {
		status := selector.Classify(ctx, catalog[i].Id)
		res.Cats = append(res.Cats, s.responseMapper.ToResponse(&catalog[i], string(status)))
	}
	if len(catalog) == 0 {
		res.EmptyMessage = EmptyAvailableMessage
	}
	s.metrics.ObserveList("catalog", len(catalog))
	return res, nil
}

func (s *adoptionService) ShowCat(ctx context.Context, sessionId, catId string) (*dto.CatResponse, error) {
	cat, err := s.findCat(ctx, catId)
	if err != nil {
		return nil, err
	}

	selector, _ := s.selectorFor(sessionId)
	return s.responseMapper.ToResponse(cat, string(selector.Classify(ctx, cat.Id))), nil
}

func (s *adoptionService) GetAvailable(ctx context.Context, sessionId string) (*dto.CatListResponse, error) {
	catalog, err := s.loadCatalog(ctx)
	if err != nil {
		return nil, err
	}

	selector, _ := s.selectorFor(sessionId)
	available := selector.ListAvailable(ctx, catalog)
	s.metrics.ObserveList("available", len(available))
	return s.responseMapper.ToListResponse(available, string(adoption.StatusAvailable), EmptyAvailableMessage), nil
}

func (s *adoptionService) GetBasket(ctx context.Context, sessionId string) (*dto.CatListResponse, error) {
	catalog, err := s.loadCatalog(ctx)
	if err != nil {
		return nil, err
	}

	selector, _ := s.selectorFor(sessionId)
	basket := selector.ListBasket(ctx, catalog)
	s.metrics.ObserveList("basket", len(basket))
	return s.responseMapper.ToListResponse(basket, string(adoption.StatusSaved), EmptyBasketMessage), nil
}

func (s *adoptionService) GetAdopted(ctx context.Context, sessionId string) (*dto.CatListResponse, error) {
	catalog, err := s.loadCatalog(ctx)
	if err != nil {
		return nil, err
	}

	selector, _ := s.selectorFor(sessionId)
	adopted := selector.ListAdopted(ctx, catalog)
	s.metrics.ObserveList("adopted", len(adopted))
	return s.responseMapper.ToListResponse(adopted, string(adoption.StatusAdopted), EmptyAdoptedMessage), nil
}

func (s *adoptionService) GetSelection(ctx context.Context, sessionId string) (*dto.SessionStateResponse, error) {
	selector, _ := s.selectorFor(sessionId)
	saved := selector.SavedIds(ctx)
	adopted := selector.AdoptedIds(ctx)

	return &dto.SessionStateResponse{
		SessionId:     sessionId,
		SavedCatIds:   saved,
		AdoptedCatIds: adopted,
		SavedCount:    len(saved),
		AdoptedCount:  len(adopted),
	}, nil
}

func (s *adoptionService) Save(ctx context.Context, sessionId string, req *dto.SelectCatRequest) (*dto.SelectionResponse, error) {
	cat, err := s.findCat(ctx, req.CatId)
	if err != nil {
		s.metrics.ObserveOperation("save", metrics.OutcomeRejected)
		return nil, err
	}

	unlock := s.locks.Lock(sessionId)
	defer unlock()

	selector, _ := s.selectorFor(sessionId)
	if selector.Classify(ctx, cat.Id) == adoption.StatusAdopted {
		s.metrics.ObserveOperation("save", metrics.OutcomeRejected)
		return nil, serverutils.Conflict("%s has already been adopted", cat.Name)
	}

	if err := selector.Save(ctx, cat.Id); err != nil {
		s.metrics.ObserveOperation("save", metrics.OutcomeError)
		s.logger.Error("ADOPTION", "Failed to save cat", map[string]interface{}{
			"session_id": sessionId,
			"cat_id":     cat.Id,
			"error":      err.Error(),
		})
		return nil, err
	}

	s.metrics.ObserveOperation("save", metrics.OutcomeOK)
	s.events.PublishCatSaved(ctx, sessionId, cat)
	s.logger.Info("ADOPTION", "Cat saved to basket", map[string]interface{}{
		"session_id": sessionId,
		"cat_id":     cat.Id,
	})

	return &dto.SelectionResponse{
		CatId:  cat.Id,
		Name:   cat.Name,
		Status: string(adoption.StatusSaved),
	}, nil
}

// Unselect does not require the cat to exist: removing an unknown id is a no-op.
func (s *adoptionService) Unselect(ctx context.Context, sessionId string, req *dto.SelectCatRequest) (*dto.SelectionResponse, error) {
	name := ""
	if cat, err := s.findCat(ctx, req.CatId); err == nil {
		name = cat.Name
	}

	unlock := s.locks.Lock(sessionId)
	defer unlock()

	selector, _ := s.selectorFor(sessionId)
	if err := selector.Unselect(ctx, req.CatId); err != nil {
		s.metrics.ObserveOperation("unselect", metrics.OutcomeError)
		s.logger.Error("ADOPTION", "Failed to unselect cat", map[string]interface{}{
			"session_id": sessionId,
			"cat_id":     req.CatId,
			"error":      err.Error(),
		})
		return nil, err
	}

	s.metrics.ObserveOperation("unselect", metrics.OutcomeOK)
	s.events.PublishCatUnselected(ctx, sessionId, req.CatId)
	s.logger.Info("ADOPTION", "Cat removed from basket", map[string]interface{}{
		"session_id": sessionId,
		"cat_id":     req.CatId,
	})

	return &dto.SelectionResponse{
		CatId:  req.CatId,
		Name:   name,
		Status: string(selector.Classify(ctx, req.CatId)),
	}, nil
}

// Adopt is only reachable from the basket. Adopting an adopted cat again succeeds
// without changing anything.
func (s *adoptionService) Adopt(ctx context.Context, sessionId string, req *dto.SelectCatRequest) (*dto.SelectionResponse, error) {
	cat, err := s.findCat(ctx, req.CatId)
	if err != nil {
		s.metrics.ObserveOperation("adopt", metrics.OutcomeRejected)
		return nil, err
	}

	unlock := s.locks.Lock(sessionId)
	defer unlock()

	selector, _ := s.selectorFor(sessionId)
	status := selector.Classify(ctx, cat.Id)
	if status == adoption.StatusAvailable {
		s.metrics.ObserveOperation("adopt", metrics.OutcomeRejected)
		return nil, serverutils.Conflict("%s is not in your basket", cat.Name)
	}

	res := &dto.SelectionResponse{
		CatId:  cat.Id,
		Name:   cat.Name,
		Status: string(adoption.StatusAdopted),
	}
	if status == adoption.StatusAdopted {
		s.metrics.ObserveOperation("adopt", metrics.OutcomeOK)
		return res, nil
	}

	if err := selector.Adopt(ctx, cat.Id); err != nil {
		s.metrics.ObserveOperation("adopt", metrics.OutcomeError)
		s.logger.Error("ADOPTION", "Failed to adopt cat", map[string]interface{}{
			"session_id": sessionId,
			"cat_id":     cat.Id,
			"error":      err.Error(),
		})
		return nil, err
	}

	s.metrics.ObserveOperation("adopt", metrics.OutcomeOK)
	s.events.PublishCatAdopted(ctx, sessionId, cat)
	if err := s.publisher.PublishAdoption(ctx, dto.PublishAdoptionMessage{
		SessionId: sessionId,
		CatId:     cat.Id,
		CatName:   cat.Name,
		AdoptedAt: time.Now(),
	}); err != nil {
		s.logger.Error("ADOPTION", "Failed to queue adoption record", map[string]interface{}{
			"cat_id": cat.Id,
			"error":  err.Error(),
		})
	}
	s.logger.Info("ADOPTION", "Cat adopted", map[string]interface{}{
		"session_id": sessionId,
		"cat_id":     cat.Id,
	})

	return res, nil
}

func (s *adoptionService) EndSession(ctx context.Context, sessionId string) error {
	unlock := s.locks.Lock(sessionId)
	defer unlock()

	_, state := s.selectorFor(sessionId)
	if err := state.Clear(ctx); err != nil {
		return err
	}

	s.logger.Info("SESSION", "Session ended", map[string]interface{}{"session_id": sessionId})
	return nil
}
