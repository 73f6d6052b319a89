package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"focuscam-be/internal/dto"
	"focuscam-be/internal/entity"
	"focuscam-be/internal/repository/memory"
	"focuscam-be/internal/repository/specification"
	"focuscam-be/internal/repository/unitofwork"
	"focuscam-be/pkg/stats"
	"focuscam-be/pkg/table"

	"github.com/google/uuid"
)

var ErrSessionNotFound = errors.New("session not found")

// ListOptions carries one request's view state: filters, sort and page.
// The zero value renders the default table (start time descending,
// first page, ten rows).
type ListOptions struct {
	Predicates []table.Predicate
	SortColumn table.Column
	SortDesc   bool
	HasSort    bool
	Page       int
	PageSize   int
}

type ISessionService interface {
	StartSession(ctx context.Context, userId uuid.UUID, req *dto.StartSessionRequest) (*dto.SessionDetailResponse, error)
	EndSession(ctx context.Context, userId uuid.UUID, sessionId uuid.UUID, req *dto.EndSessionRequest) (*dto.SessionDetailResponse, error)
	AddSamples(ctx context.Context, userId uuid.UUID, sessionId uuid.UUID, req *dto.AddSamplesRequest) (int, error)
	GetSession(ctx context.Context, userId uuid.UUID, sessionId uuid.UUID) (*dto.SessionDetailResponse, error)
	ListSessions(ctx context.Context, userId uuid.UUID, opts ListOptions) (*dto.SessionListResponse, error)
	GetUserSessionRows(ctx context.Context, userId uuid.UUID) ([]*entity.SessionRow, error)
	GetTodayProgress(ctx context.Context, userId uuid.UUID) (*dto.TodayProgressResponse, error)
}

type sessionService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	rowCache         *memory.RowCache
}

func NewSessionService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	rowCache *memory.RowCache,
) ISessionService {
	return &sessionService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
		rowCache:         rowCache,
	}
}

func (s *sessionService) StartSession(ctx context.Context, userId uuid.UUID, req *dto.StartSessionRequest) (*dto.SessionDetailResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	session := &entity.Session{
		Id:           uuid.New(),
		UserId:       userId,
		StartTime:    time.Now(),
		ScreenWidth:  req.ScreenWidth,
		ScreenHeight: req.ScreenHeight,
		CreatedAt:    time.Now(),
	}

	if err := uow.SessionRepository().Create(ctx, session); err != nil {
		return nil, err
	}

	s.rowCache.Invalidate(userId)

	return toSessionDetail(session, nil), nil
}

func (s *sessionService) EndSession(ctx context.Context, userId uuid.UUID, sessionId uuid.UUID, req *dto.EndSessionRequest) (*dto.SessionDetailResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	session, err := uow.SessionRepository().FindOne(ctx,
		specification.ByID{ID: sessionId},
		specification.OwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}

	now := time.Now()
	session.EndTime = &now
	if req.DurationSeconds != nil {
		session.DurationSeconds = *req.DurationSeconds
	} else {
		session.DurationSeconds = int(now.Sub(session.StartTime).Seconds())
	}
	if session.DurationSeconds < 0 {
		session.DurationSeconds = 0
	}

	if err := uow.SessionRepository().Update(ctx, session); err != nil {
		return nil, err
	}

	s.rowCache.Invalidate(userId)

	// Hand the session to the report builder. The row stays scoreless
	// until the build lands.
	msgPayload := dto.PublishBuildReportMessage{SessionId: session.Id}
	msgJson, err := json.Marshal(msgPayload)
	if err != nil {
		return nil, err
	}
	if err := s.publisherService.Publish(ctx, msgJson); err != nil {
		fmt.Printf("[WARN] Failed to queue report build for session %s: %v\n", session.Id, err)
	}

	return toSessionDetail(session, nil), nil
}

func (s *sessionService) AddSamples(ctx context.Context, userId uuid.UUID, sessionId uuid.UUID, req *dto.AddSamplesRequest) (int, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	session, err := uow.SessionRepository().FindOne(ctx,
		specification.ByID{ID: sessionId},
		specification.OwnedBy{UserID: userId},
	)
	if err != nil {
		return 0, err
	}
	if session == nil {
		return 0, ErrSessionNotFound
	}

	samples := make([]*entity.FocusSample, 0, len(req.Samples))
	for _, p := range req.Samples {
		samples = append(samples, &entity.FocusSample{
			Id:             uuid.New(),
			SessionId:      session.Id,
			Timestamp:      p.Timestamp,
			AttentionState: p.AttentionState,
			FocusScore:     p.FocusScore,
		})
	}

	if err := uow.FocusSampleRepository().CreateBatch(ctx, samples); err != nil {
		return 0, err
	}

	return len(samples), nil
}

func (s *sessionService) GetSession(ctx context.Context, userId uuid.UUID, sessionId uuid.UUID) (*dto.SessionDetailResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	session, err := uow.SessionRepository().FindOne(ctx,
		specification.ByID{ID: sessionId},
		specification.OwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}

	report, err := uow.ReportRepository().FindOne(ctx, specification.ByID{ID: session.Id})
	if err != nil {
		return nil, err
	}

	return toSessionDetail(session, report), nil
}

// GetUserSessionRows joins the user's sessions with their reports.
// Sessions and reports live in separate tables and are fetched
// concurrently; the join happens only after both arrive, so a session
// whose report is still being built simply renders without a score.
func (s *sessionService) GetUserSessionRows(ctx context.Context, userId uuid.UUID) ([]*entity.SessionRow, error) {
	if rows, ok := s.rowCache.Get(userId); ok {
		return rows, nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	var (
		wg          sync.WaitGroup
		sessions    []*entity.Session
		reports     []*entity.Report
		sessionsErr error
		reportsErr  error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		sessions, sessionsErr = uow.SessionRepository().FindAll(ctx,
			specification.OwnedBy{UserID: userId},
			specification.OrderBy{Field: "start_time", Desc: true},
		)
	}()
	go func() {
		defer wg.Done()
		reports, reportsErr = uow.ReportRepository().FindAll(ctx,
			specification.OwnedBy{UserID: userId},
			specification.OrderBy{Field: "created_at", Desc: true},
		)
	}()
	wg.Wait()

	if sessionsErr != nil {
		return nil, sessionsErr
	}
	if reportsErr != nil {
		return nil, reportsErr
	}

	rows := stats.JoinSessionRows(sessions, reports)
	s.rowCache.Save(userId, rows)
	return rows, nil
}

func (s *sessionService) ListSessions(ctx context.Context, userId uuid.UUID, opts ListOptions) (*dto.SessionListResponse, error) {
	rows, err := s.GetUserSessionRows(ctx, userId)
	if err != nil {
		return nil, err
	}

	view := table.NewView(rows)
	if len(opts.Predicates) > 0 {
		view.SetFilters(opts.Predicates...)
	}
	if opts.HasSort {
		view.SetSort(opts.SortColumn, opts.SortDesc)
	}
	if opts.PageSize > 0 {
		view.SetPageSize(opts.PageSize)
	}
	view.SetPage(opts.Page)

	uow := s.uowFactory.NewUnitOfWork(ctx)
	reports, err := uow.ReportRepository().FindAll(ctx, specification.OwnedBy{UserID: userId})
	if err != nil {
		return nil, err
	}

	totalFocus := stats.CalcTotalFocusTime(reports)
	resp := &dto.SessionListResponse{
		Stats: dto.SessionStatsResponse{
			TotalSessions:  len(rows),
			TotalFocusTime: stats.FormatDuration(totalFocus),
			TotalFocusSecs: totalFocus,
			AvgFocusScore:  stats.CalcAvgFocusScore(reports),
		},
		Rows:            make([]dto.SessionRowResponse, 0, view.PageSize()),
		Page:            view.PageIndex(),
		PageSize:        view.PageSize(),
		TotalPages:      view.PageCount(),
		FilteredSummary: view.Summary(),
	}

	for _, row := range view.VisibleRows() {
		resp.Rows = append(resp.Rows, dto.SessionRowResponse{
			Id:              row.Id,
			StartTime:       row.StartTime,
			DurationSeconds: row.DurationSeconds,
			Duration:        stats.FormatDuration(float64(row.DurationSeconds)),
			AvgFocusScore:   row.AvgFocusScore,
		})
	}

	return resp, nil
}

func (s *sessionService) GetTodayProgress(ctx context.Context, userId uuid.UUID) (*dto.TodayProgressResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	now := time.Now()
	y, m, d := now.Date()
	dayStart := time.Date(y, m, d, 0, 0, 0, 0, now.Location())

	sessions, err := uow.SessionRepository().FindAll(ctx,
		specification.OwnedBy{UserID: userId},
		specification.StartedAfter{Cutoff: dayStart},
	)
	if err != nil {
		return nil, err
	}

	reports, err := uow.ReportRepository().FindAll(ctx, specification.OwnedBy{UserID: userId})
	if err != nil {
		return nil, err
	}

	progress := stats.CalcTodayProgress(sessions, reports, now)
	return &dto.TodayProgressResponse{
		Sessions:      progress.Sessions,
		FocusTime:     stats.FormatDuration(progress.FocusTime),
		AvgFocusScore: progress.AvgFocusScore,
	}, nil
}

func toSessionDetail(session *entity.Session, report *entity.Report) *dto.SessionDetailResponse {
	resp := &dto.SessionDetailResponse{
		Id:              session.Id,
		UserId:          session.UserId,
		StartTime:       session.StartTime,
		EndTime:         session.EndTime,
		DurationSeconds: session.DurationSeconds,
		Duration:        stats.FormatDuration(float64(session.DurationSeconds)),
		ScreenWidth:     session.ScreenWidth,
		ScreenHeight:    session.ScreenHeight,
		CreatedAt:       session.CreatedAt,
	}
	if report != nil {
		resp.Report = &dto.ReportResponse{
			SessionId:            report.SessionId,
			AvgFocusScore:        report.AvgFocusScore,
			TotalFocusTime:       report.TotalFocusTime,
			TotalDistractionTime: report.TotalDistractionTime,
			CreatedAt:            report.CreatedAt,
		}
	}
	return resp
}
