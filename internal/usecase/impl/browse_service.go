package impl

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"time"

	"directorio/config"
	"directorio/internal/domain/entity"
	domainerrors "directorio/internal/domain/errors"
	"directorio/internal/domain/filter"
	"directorio/internal/domain/repository"
	"directorio/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const browseFetchTimeout = 15 * time.Second

// browseSession is one client's filter store plus the list it is looking at.
// Lock order: store before mu. Never call the store while holding mu.
type browseSession struct {
	id          uuid.UUID
	store       *filter.Store
	unsubscribe func()

	mu        sync.Mutex
	gen       uint64
	state     filter.State
	page      repository.Page
	status    usecase.BrowseStatus
	items     []*entity.Business
	hasMore   bool
	fetchErr  *usecase.BrowseError
	cancel    context.CancelFunc
	done      chan struct{}
	favorites []uuid.UUID
	recent    []uuid.UUID
	updatedAt time.Time
	touchedAt time.Time
}

type browseService struct {
	directory usecase.DirectoryUsecase
	pageSize  int
	recentMax int
	now       func() time.Time
	logger    *slog.Logger

	baseCtx    context.Context
	cancelBase context.CancelFunc
	fetches    sync.WaitGroup

	mu       sync.RWMutex
	sessions map[uuid.UUID]*browseSession
}

// BrowseServiceParams holds dependencies for BrowseService, injected by Fx.
type BrowseServiceParams struct {
	fx.In

	Directory usecase.DirectoryUsecase
	Config    *config.Config
	Logger    *slog.Logger
	Lifecycle fx.Lifecycle `optional:"true"`
}

// NewBrowseService creates the browse session manager. In-flight fetches are cancelled on stop.
func NewBrowseService(params BrowseServiceParams) usecase.BrowseUsecase {
	baseCtx, cancel := context.WithCancel(context.Background())

	srv := &browseService{
		directory:  params.Directory,
		pageSize:   params.Config.Directory.PageSize,
		recentMax:  params.Config.Directory.RecentlyViewedMax,
		now:        time.Now,
		logger:     params.Logger,
		baseCtx:    baseCtx,
		cancelBase: cancel,
		sessions:   make(map[uuid.UUID]*browseSession),
	}

	if params.Lifecycle != nil {
		params.Lifecycle.Append(fx.Hook{
			OnStop: func(context.Context) error {
				srv.shutdown()

				return nil
			},
		})
	}

	return srv
}

func (srv *browseService) shutdown() {
	srv.cancelBase()
	srv.fetches.Wait()
}

// Open starts a session with initial as its active filter and issues the first fetch.
func (srv *browseService) Open(ctx context.Context, initial filter.State) (*usecase.BrowseSnapshot, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate session id")
	}

	sess := &browseSession{
		id:        id,
		store:     filter.NewStore(initial),
		touchedAt: srv.now(),
	}
	sess.unsubscribe = sess.store.Subscribe(func(active filter.State) {
		sess.mu.Lock()
		defer sess.mu.Unlock()
		srv.startFetchLocked(sess, active, repository.Page{Limit: srv.pageSize}, false)
	})

	sess.mu.Lock()
	srv.startFetchLocked(sess, initial.Clone(), repository.Page{Limit: srv.pageSize}, false)
	sess.mu.Unlock()

	srv.mu.Lock()
	srv.sessions[id] = sess
	srv.mu.Unlock()

	srv.logger.Debug("Browse session opened", slog.String("sessionID", id.String()))

	return srv.snapshot(sess), nil
}

func (srv *browseService) session(id uuid.UUID) (*browseSession, error) {
	srv.mu.RLock()
	sess, ok := srv.sessions[id]
	srv.mu.RUnlock()
	if !ok {
		return nil, errors.WithStack(domainerrors.ErrSessionNotFound)
	}

	sess.mu.Lock()
	sess.touchedAt = srv.now()
	sess.mu.Unlock()

	return sess, nil
}

// Snapshot returns the current state of a session without waiting.
func (srv *browseService) Snapshot(id uuid.UUID) (*usecase.BrowseSnapshot, error) {
	sess, err := srv.session(id)
	if err != nil {
		return nil, err
	}

	return srv.snapshot(sess), nil
}

// Await blocks until the latest fetch of the session settles or ctx ends.
func (srv *browseService) Await(ctx context.Context, id uuid.UUID) (*usecase.BrowseSnapshot, error) {
	sess, err := srv.session(id)
	if err != nil {
		return nil, err
	}

	for {
		sess.mu.Lock()
		status, done := sess.status, sess.done
		sess.mu.Unlock()

		if status != usecase.BrowseStatusLoading {
			return srv.snapshot(sess), nil
		}

		select {
		case <-done:
		case <-ctx.Done():
			return nil, errors.WithStack(ctx.Err())
		}
	}
}

// SetFilter merges patch into the active filter and refetches.
func (srv *browseService) SetFilter(id uuid.UUID, patch filter.Patch) (*usecase.BrowseSnapshot, error) {
	sess, err := srv.session(id)
	if err != nil {
		return nil, err
	}
	if err := validatePatch(patch); err != nil {
		return nil, err
	}

	sess.store.SetFilter(patch)

	return srv.snapshot(sess), nil
}

// ClearFilters removes every constraint and refetches.
func (srv *browseService) ClearFilters(id uuid.UUID) (*usecase.BrowseSnapshot, error) {
	sess, err := srv.session(id)
	if err != nil {
		return nil, err
	}

	sess.store.ClearFilters()

	return srv.snapshot(sess), nil
}

// StageFilter edits the draft without fetching.
func (srv *browseService) StageFilter(id uuid.UUID, patch filter.Patch) (*usecase.BrowseSnapshot, error) {
	sess, err := srv.session(id)
	if err != nil {
		return nil, err
	}
	if err := validatePatch(patch); err != nil {
		return nil, err
	}

	sess.store.StageFilter(patch)

	return srv.snapshot(sess), nil
}

// ApplyStaged commits the draft and refetches.
func (srv *browseService) ApplyStaged(id uuid.UUID) (*usecase.BrowseSnapshot, error) {
	sess, err := srv.session(id)
	if err != nil {
		return nil, err
	}

	sess.store.ApplyStaged()

	return srv.snapshot(sess), nil
}

// DiscardStaged drops the draft.
func (srv *browseService) DiscardStaged(id uuid.UUID) (*usecase.BrowseSnapshot, error) {
	sess, err := srv.session(id)
	if err != nil {
		return nil, err
	}

	sess.store.DiscardStaged()

	return srv.snapshot(sess), nil
}

// Refresh re-issues the last query from the first page.
func (srv *browseService) Refresh(id uuid.UUID) (*usecase.BrowseSnapshot, error) {
	sess, err := srv.session(id)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	srv.startFetchLocked(sess, sess.state, repository.Page{Limit: srv.pageSize}, false)
	sess.mu.Unlock()

	return srv.snapshot(sess), nil
}

// LoadMore appends the next page of the current query.
func (srv *browseService) LoadMore(id uuid.UUID) (*usecase.BrowseSnapshot, error) {
	sess, err := srv.session(id)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	if sess.status != usecase.BrowseStatusReady || !sess.hasMore {
		sess.mu.Unlock()

		return nil, errors.WithStack(domainerrors.ErrNoMoreResults)
	}
	srv.startFetchLocked(sess, sess.state, sess.page.Next(), true)
	sess.mu.Unlock()

	return srv.snapshot(sess), nil
}

// ToggleFavorite flips the favorite mark and reports the new value.
func (srv *browseService) ToggleFavorite(id, businessID uuid.UUID) (bool, error) {
	sess, err := srv.session(id)
	if err != nil {
		return false, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if i := slices.Index(sess.favorites, businessID); i >= 0 {
		sess.favorites = slices.Delete(sess.favorites, i, i+1)

		return false, nil
	}
	sess.favorites = append(sess.favorites, businessID)

	return true, nil
}

// View returns a business, preferring the loaded list, and records it as recently viewed.
func (srv *browseService) View(ctx context.Context, id, businessID uuid.UUID) (*entity.Business, error) {
	sess, err := srv.session(id)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	var found *entity.Business
	for _, b := range sess.items {
		if b.ID == businessID {
			found = b

			break
		}
	}
	sess.mu.Unlock()

	if found == nil {
		found, err = srv.directory.GetBusiness(ctx, businessID)
		if err != nil {
			return nil, err
		}
	}

	sess.mu.Lock()
	sess.recent = pushRecent(sess.recent, businessID, srv.recentMax)
	sess.mu.Unlock()

	return found, nil
}

// pushRecent moves id to the front, dropping duplicates and anything past limit.
func pushRecent(recent []uuid.UUID, id uuid.UUID, limit int) []uuid.UUID {
	out := make([]uuid.UUID, 0, min(len(recent)+1, limit))
	out = append(out, id)
	for _, r := range recent {
		if len(out) >= limit {
			break
		}
		if r != id {
			out = append(out, r)
		}
	}

	return out
}

// Close ends a session and cancels its fetch.
func (srv *browseService) Close(id uuid.UUID) error {
	srv.mu.Lock()
	sess, ok := srv.sessions[id]
	delete(srv.sessions, id)
	srv.mu.Unlock()
	if !ok {
		return errors.WithStack(domainerrors.ErrSessionNotFound)
	}

	srv.release(sess)

	return nil
}

// EvictIdle closes sessions untouched since cutoff and returns how many were closed.
func (srv *browseService) EvictIdle(cutoff time.Time) int {
	srv.mu.Lock()
	var idle []*browseSession
	for id, sess := range srv.sessions {
		sess.mu.Lock()
		stale := sess.touchedAt.Before(cutoff)
		sess.mu.Unlock()
		if stale {
			idle = append(idle, sess)
			delete(srv.sessions, id)
		}
	}
	srv.mu.Unlock()

	for _, sess := range idle {
		srv.release(sess)
	}
	if len(idle) > 0 {
		srv.logger.Debug("Evicted idle browse sessions", slog.Int("count", len(idle)))
	}

	return len(idle)
}

func (srv *browseService) release(sess *browseSession) {
	sess.unsubscribe()

	sess.mu.Lock()
	defer sess.mu.Unlock()

	sess.gen++
	if sess.cancel != nil {
		sess.cancel()
		sess.cancel = nil
	}
}

// startFetchLocked supersedes any running fetch. Results of older generations are dropped.
func (srv *browseService) startFetchLocked(sess *browseSession, state filter.State, page repository.Page, appendPage bool) {
	sess.gen++
	gen := sess.gen
	if sess.cancel != nil {
		sess.cancel()
	}

	ctx, cancel := context.WithTimeout(srv.baseCtx, browseFetchTimeout)
	done := make(chan struct{})

	sess.cancel = cancel
	sess.done = done
	sess.state = state.Clone()
	sess.status = usecase.BrowseStatusLoading
	sess.fetchErr = nil

	srv.fetches.Add(1)
	go func() {
		defer srv.fetches.Done()
		defer close(done)
		defer cancel()

		result, err := srv.directory.ListBusinesses(ctx, state, page)

		sess.mu.Lock()
		defer sess.mu.Unlock()

		if gen != sess.gen {
			return
		}
		sess.cancel = nil
		sess.updatedAt = srv.now()

		if err != nil {
			srv.logger.Warn("Browse fetch failed", slog.String("sessionID", sess.id.String()), slog.Any("error", err))
			sess.status = usecase.BrowseStatusFailed
			sess.fetchErr = browseError(err)

			return
		}

		items := result.Items
		if appendPage {
			items = append(slices.Clone(sess.items), result.Items...)
			filter.SortByName(items)
		}
		sess.items = items
		sess.page = page
		sess.hasMore = result.HasMore
		sess.status = usecase.BrowseStatusReady
	}()
}

func browseError(err error) *usecase.BrowseError {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) && appErr.HTTPCode() < 500 {
		return &usecase.BrowseError{Code: appErr.ErrorCode(), Message: appErr.Message()}
	}

	return &usecase.BrowseError{
		Code:    domainerrors.ErrFetchFailed.ErrorCode(),
		Message: domainerrors.ErrFetchFailed.Message(),
	}
}

func (srv *browseService) snapshot(sess *browseSession) *usecase.BrowseSnapshot {
	active := sess.store.Active()
	staged := sess.store.Staged()

	sess.mu.Lock()
	defer sess.mu.Unlock()

	snap := &usecase.BrowseSnapshot{
		SessionID:      sess.id,
		Generation:     sess.gen,
		Status:         sess.status,
		Active:         active,
		Staged:         staged,
		Items:          slices.Clone(sess.items),
		HasMore:        sess.hasMore,
		Flags:          filter.Summarize(sess.items),
		Favorites:      slices.Clone(sess.favorites),
		RecentlyViewed: slices.Clone(sess.recent),
		UpdatedAt:      sess.updatedAt,
	}
	if snap.Items == nil {
		snap.Items = []*entity.Business{}
	}
	if snap.Favorites == nil {
		snap.Favorites = []uuid.UUID{}
	}
	if snap.RecentlyViewed == nil {
		snap.RecentlyViewed = []uuid.UUID{}
	}
	if sess.fetchErr != nil {
		e := *sess.fetchErr
		snap.Error = &e
	}

	return snap
}

func validatePatch(patch filter.Patch) error {
	violations := patch.Validate()
	if len(violations) == 0 {
		return nil
	}

	fields := make([]domainerrors.FieldViolation, 0, len(violations))
	for _, v := range violations {
		fields = append(fields, domainerrors.FieldViolation{Field: v.Field, Message: v.Message})
	}

	return errors.WithStack(domainerrors.NewValidationError(fields...))
}
