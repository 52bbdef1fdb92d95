package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/tickerdraft/tickerdraft/internal/domain/roster"
	"github.com/tickerdraft/tickerdraft/internal/domain/scoring"
	"github.com/tickerdraft/tickerdraft/internal/domain/stock"
)

// scoringMultiplier converts a daily percentage move into fantasy points.
const scoringMultiplier = 5

const defaultUpsertWorkers = 8

// ScoringService runs the weekly scoring job: every roster slot across every
// league is priced against the previous trading day and the resulting points
// are upserted keyed by (league, user, stock, week).
type ScoringService struct {
	rosterRepo    roster.Repository
	stockRepo     stock.Repository
	scoringRepo   scoring.Repository
	quotes        *QuoteService
	now           func() time.Time
	upsertWorkers int
}

func NewScoringService(
	rosterRepo roster.Repository,
	stockRepo stock.Repository,
	scoringRepo scoring.Repository,
	quotes *QuoteService,
) *ScoringService {
	return &ScoringService{
		rosterRepo:    rosterRepo,
		stockRepo:     stockRepo,
		scoringRepo:   scoringRepo,
		quotes:        quotes,
		now:           time.Now,
		upsertWorkers: defaultUpsertWorkers,
	}
}

type ScoreWeekResult struct {
	Week    int
	Scored  int
	Skipped int
	Scores  []scoring.WeeklyScore
}

// ScoreWeek scores all roster slots for the given week. Slots whose ticker
// has no usable quote are skipped and counted, never failed. Any persistence
// error aborts the run; because writes are upserts, a rerun after a partial
// failure converges to the same rows.
func (s *ScoringService) ScoreWeek(ctx context.Context, week int) (ScoreWeekResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScoringService.ScoreWeek")
	defer span.End()

	if week <= 0 {
		return ScoreWeekResult{}, fmt.Errorf("%w: week must be a positive integer", ErrInvalidInput)
	}

	slots, err := s.rosterRepo.ListAllActive(ctx)
	if err != nil {
		return ScoreWeekResult{}, fmt.Errorf("list roster slots: %w", err)
	}
	if len(slots) == 0 {
		return ScoreWeekResult{Week: week}, nil
	}

	stockByID, err := s.loadSlotStocks(ctx, slots)
	if err != nil {
		return ScoreWeekResult{}, err
	}

	tickers := make([]string, 0, len(stockByID))
	for _, st := range stockByID {
		tickers = append(tickers, st.Ticker)
	}
	quotesByTicker, err := s.quotes.GetDailyQuotes(ctx, tickers)
	if err != nil {
		return ScoreWeekResult{}, fmt.Errorf("fetch quotes: %w", err)
	}

	scoredAt := s.now().UTC()
	rows := make([]scoring.WeeklyScore, 0, len(slots))
	skipped := 0
	for _, slot := range slots {
		st, ok := stockByID[slot.StockID]
		if !ok {
			skipped++
			continue
		}
		q, ok := quotesByTicker[st.Ticker]
		if !ok || q.Open == 0 {
			skipped++
			continue
		}
		rows = append(rows, scoring.WeeklyScore{
			LeagueID:   slot.LeagueID,
			UserID:     slot.UserID,
			StockID:    slot.StockID,
			Week:       week,
			PriceOpen:  q.Open,
			PriceClose: q.Close,
			PctChange:  q.ChangePct,
			Points:     round2(q.ChangePct * scoringMultiplier),
			ScoredAt:   scoredAt,
		})
	}

	saved, err := s.persistScores(ctx, rows)
	if err != nil {
		return ScoreWeekResult{}, err
	}

	sort.SliceStable(saved, func(i, j int) bool {
		if saved[i].LeagueID != saved[j].LeagueID {
			return saved[i].LeagueID < saved[j].LeagueID
		}
		if saved[i].UserID != saved[j].UserID {
			return saved[i].UserID < saved[j].UserID
		}
		return saved[i].StockID < saved[j].StockID
	})

	return ScoreWeekResult{
		Week:    week,
		Scored:  len(saved),
		Skipped: skipped,
		Scores:  saved,
	}, nil
}

func (s *ScoringService) loadSlotStocks(ctx context.Context, slots []roster.Slot) (map[string]stock.Stock, error) {
	idSet := make(map[string]struct{}, len(slots))
	ids := make([]string, 0, len(slots))
	for _, slot := range slots {
		if _, ok := idSet[slot.StockID]; ok {
			continue
		}
		idSet[slot.StockID] = struct{}{}
		ids = append(ids, slot.StockID)
	}

	stocks, err := s.stockRepo.ListByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("load roster stocks: %w", err)
	}

	byID := make(map[string]stock.Stock, len(stocks))
	for _, st := range stocks {
		byID[st.ID] = st
	}
	return byID, nil
}

func (s *ScoringService) persistScores(ctx context.Context, rows []scoring.WeeklyScore) ([]scoring.WeeklyScore, error) {
	if len(rows) == 0 {
		return nil, nil
	}

	workerCount := s.upsertWorkers
	if workerCount > len(rows) {
		workerCount = len(rows)
	}

	wp, err := ants.NewPool(workerCount)
	if err != nil {
		return nil, fmt.Errorf("create upsert pool: %w", err)
	}
	defer wp.Release()

	saved := make([]scoring.WeeklyScore, 0, len(rows))
	var mu sync.Mutex
	var firstErr error
	var submitErr error
	var workers sync.WaitGroup
	for _, row := range rows {
		row := row
		workers.Add(1)
		if err := wp.Submit(func() {
			defer workers.Done()

			persisted, err := s.scoringRepo.Upsert(ctx, row)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				if firstErr == nil {
					firstErr = fmt.Errorf("persist weekly score %s/%s/%s: %w", row.LeagueID, row.UserID, row.StockID, err)
				}
				return
			}
			saved = append(saved, persisted)
		}); err != nil {
			workers.Done()
			submitErr = fmt.Errorf("submit upsert to pool: %w", err)
			break
		}
	}
	// In-flight upserts must drain before the error is reported, otherwise
	// writes race past the caller.
	workers.Wait()

	if submitErr != nil {
		return nil, submitErr
	}
	if firstErr != nil {
		return nil, firstErr
	}
	return saved, nil
}
