package request

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"go-hris-console/internal/audit"
	"go-hris-console/internal/events"
	"go-hris-console/internal/messaging/kafka"
	requesterrors "go-hris-console/internal/request/errors"
	"go-hris-console/internal/session"
	"go-hris-console/internal/shared/apperror"
	"go-hris-console/internal/shared/contextutil"
	"go-hris-console/internal/upstream"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const FlashStatusUpdated = "Request status updated successfully"

//go:generate mockgen -source=request_service.go -destination=mock/request_service_mock.go -package=mock
type Service interface {
	List(ctx context.Context, s *session.Session) (ListResult, error)
	SetDraft(ctx context.Context, s *session.Session, draft FilterSet) (FilterState, error)
	ApplyFilters(ctx context.Context, s *session.Session) (FilterState, error)
	ClearFilters(ctx context.Context, s *session.Session) (FilterState, error)
	// UpdateStatus writes the new status upstream and returns the
	// re-fetched list. The local copy is never patched.
	UpdateStatus(ctx context.Context, s *session.Session, requestID, status string) (ListResult, error)
}

type service struct {
	client    upstream.Client
	store     StateStore
	publisher kafka.Publisher
	audit     audit.Logger
	flashTTL  time.Duration
	now       func() time.Time
	logger    *zap.Logger
}

func NewService(
	client upstream.Client,
	store StateStore,
	publisher kafka.Publisher,
	auditLogger audit.Logger,
	flashTTL time.Duration,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("request.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("request.service")
	}
	if flashTTL <= 0 {
		flashTTL = 3 * time.Second
	}
	return &service{
		client:    client,
		store:     store,
		publisher: publisher,
		audit:     auditLogger,
		flashTTL:  flashTTL,
		now:       time.Now,
		logger:    l,
	}
}

func (s *service) List(ctx context.Context, sess *session.Session) (ListResult, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	raw, err := s.client.Fetch(ctx, sess.Token, upstream.ResourceRequests)
	if err != nil {
		log.Warn("fetch requests failed", zap.Error(err))
		return ListResult{}, wrapUpstream(err, requesterrors.ErrLoadFailed)
	}
	records, err := upstream.DecodeList(raw)
	if err != nil {
		log.Error("decode requests failed", zap.Error(err))
		return ListResult{}, err
	}
	all := fromRecords(records)

	state, err := s.store.LoadFilters(ctx, sess.Key)
	if err != nil {
		log.Warn("load filters failed, showing unfiltered list", zap.Error(err))
		state = FilterState{}
	}

	flash, err := s.store.Flash(ctx, sess.Key)
	if err != nil {
		log.Warn("load flash failed", zap.Error(err))
		flash = ""
	}

	return ListResult{
		Requests: state.Visible(all),
		Total:    len(all),
		Filters:  state,
		Flash:    flash,
	}, nil
}

func (s *service) SetDraft(ctx context.Context, sess *session.Session, draft FilterSet) (FilterState, error) {
	if draft.Status != "" {
		status, err := ParseStatus(draft.Status)
		if err != nil {
			return FilterState{}, err
		}
		draft.Status = string(status)
	}
	return s.updateFilters(ctx, sess, func(st FilterState) FilterState { return st.WithDraft(draft) })
}

func (s *service) ApplyFilters(ctx context.Context, sess *session.Session) (FilterState, error) {
	return s.updateFilters(ctx, sess, FilterState.Commit)
}

func (s *service) ClearFilters(ctx context.Context, sess *session.Session) (FilterState, error) {
	return s.updateFilters(ctx, sess, FilterState.Clear)
}

func (s *service) updateFilters(ctx context.Context, sess *session.Session, next func(FilterState) FilterState) (FilterState, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	current, err := s.store.LoadFilters(ctx, sess.Key)
	if err != nil {
		log.Error("load filters failed", zap.Error(err))
		return FilterState{}, err
	}

	updated := next(current)
	if err := s.store.SaveFilters(ctx, sess.Key, updated); err != nil {
		log.Error("save filters failed", zap.Error(err))
		return FilterState{}, err
	}
	return updated, nil
}

func (s *service) UpdateStatus(ctx context.Context, sess *session.Session, requestID, status string) (ListResult, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	requestID = strings.TrimSpace(requestID)
	if requestID == "" {
		return ListResult{}, requesterrors.ErrRequestIDRequired
	}
	parsed, err := ParseStatus(status)
	if err != nil {
		return ListResult{}, err
	}

	log.Debug("update request status requested",
		zap.String("request_id", requestID),
		zap.String("status", string(parsed)),
	)

	if err := s.client.UpdateRequestStatus(ctx, sess.Token, requestID, string(parsed)); err != nil {
		log.Warn("update request status failed", zap.String("request_id", requestID), zap.Error(err))
		return ListResult{}, wrapUpstream(err, requesterrors.ErrUpdateFailed)
	}

	if err := s.store.SetFlash(ctx, sess.Key, FlashStatusUpdated, s.flashTTL); err != nil {
		log.Warn("store flash failed", zap.Error(err))
	}

	actor := ""
	if sess.User != nil {
		actor = sess.User.Username
	}
	s.publishStatusUpdated(ctx, requestID, parsed, actor)
	s.audit.Log(ctx, audit.Entry{
		Action:  audit.ActionRequestStatusUpdate,
		Message: "request status updated",
		Actor:   actor,
		Meta:    map[string]any{"request_id": requestID, "status": string(parsed)},
	})

	return s.List(ctx, sess)
}

// publishStatusUpdated is best effort; the backend already holds the
// change.
func (s *service) publishStatusUpdated(ctx context.Context, requestID string, status Status, actor string) {
	event := events.RequestStatusUpdatedEvent{
		EventID:    uuid.NewString(),
		EventType:  events.RequestStatusUpdatedEventType,
		RequestID:  requestID,
		Status:     string(status),
		UpdatedBy:  actor,
		OccurredAt: s.now().UTC(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		contextutil.GetLogger(ctx, s.logger).Error("marshal request status event failed", zap.Error(err))
		return
	}

	err = s.publisher.Publish(ctx, kafka.Message{
		Topic:         events.RequestStatusTopic,
		Key:           requestID,
		EventType:     event.EventType,
		AggregateType: "request",
		Payload:       payload,
	})
	if err != nil {
		contextutil.GetLogger(ctx, s.logger).Warn("publish request status event failed",
			zap.String("request_id", requestID),
			zap.Error(err),
		)
	}
}

// wrapUpstream keeps the backend's own message when there is one and
// falls back to a generic banner otherwise.
func wrapUpstream(err error, fallback *apperror.AppError) error {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return err
	}
	return fallback.WithCause(err)
}
