package memory

import (
	"time"

	"github.com/tickerdraft/tickerdraft/internal/domain/league"
	"github.com/tickerdraft/tickerdraft/internal/domain/matchup"
	"github.com/tickerdraft/tickerdraft/internal/domain/roster"
	"github.com/tickerdraft/tickerdraft/internal/domain/stock"
)

const (
	LeagueIDWallStreetBets = "league-wall-street-legends"
	LeagueIDDividendClub   = "league-dividend-club"

	UserIDAlice = "user-alice"
	UserIDBob   = "user-bob"
	UserIDCarol = "user-carol"
	UserIDDave  = "user-dave"
)

func SeedStocks() []stock.Stock {
	return []stock.Stock{
		{ID: "stk-aapl", Ticker: "AAPL", Name: "Apple Inc.", Sector: "Technology", CapClass: stock.CapLarge},
		{ID: "stk-msft", Ticker: "MSFT", Name: "Microsoft Corporation", Sector: "Technology", CapClass: stock.CapLarge},
		{ID: "stk-nvda", Ticker: "NVDA", Name: "NVIDIA Corporation", Sector: "Technology", CapClass: stock.CapLarge},
		{ID: "stk-tsla", Ticker: "TSLA", Name: "Tesla, Inc.", Sector: "Consumer Cyclical", CapClass: stock.CapLarge},
		{ID: "stk-jpm", Ticker: "JPM", Name: "JPMorgan Chase & Co.", Sector: "Financial Services", CapClass: stock.CapLarge},
		{ID: "stk-ko", Ticker: "KO", Name: "The Coca-Cola Company", Sector: "Consumer Defensive", CapClass: stock.CapLarge},
		{ID: "stk-amd", Ticker: "AMD", Name: "Advanced Micro Devices", Sector: "Technology", CapClass: stock.CapLarge},
		{ID: "stk-sq", Ticker: "SQ", Name: "Block, Inc.", Sector: "Financial Services", CapClass: stock.CapMid},
		{ID: "stk-etsy", Ticker: "ETSY", Name: "Etsy, Inc.", Sector: "Consumer Cyclical", CapClass: stock.CapMid},
		{ID: "stk-pltr", Ticker: "PLTR", Name: "Palantir Technologies", Sector: "Technology", CapClass: stock.CapMid},
		{ID: "stk-sofi", Ticker: "SOFI", Name: "SoFi Technologies", Sector: "Financial Services", CapClass: stock.CapSmall},
		{ID: "stk-rklb", Ticker: "RKLB", Name: "Rocket Lab USA", Sector: "Industrials", CapClass: stock.CapSmall},
	}
}

func SeedLeagues() []league.League {
	return []league.League{
		{
			ID:             LeagueIDWallStreetBets,
			Name:           "Wall Street Legends",
			InviteCode:     "WSL-2026",
			Status:         league.StatusActive,
			CurrentWeek:    3,
			CommissionerID: UserIDAlice,
			IsPublic:       true,
			CreatedAt:      time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC),
		},
		{
			ID:             LeagueIDDividendClub,
			Name:           "Dividend Club",
			InviteCode:     "DIV-2026",
			Status:         league.StatusDrafting,
			CurrentWeek:    1,
			CommissionerID: UserIDCarol,
			IsPublic:       false,
			CreatedAt:      time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC),
		},
	}
}

func SeedMemberships() []league.Membership {
	return []league.Membership{
		{ID: "mem-001", LeagueID: LeagueIDWallStreetBets, UserID: UserIDAlice, TeamName: "Bull Run Capital", JoinedAt: time.Date(2026, 1, 5, 9, 5, 0, 0, time.UTC)},
		{ID: "mem-002", LeagueID: LeagueIDWallStreetBets, UserID: UserIDBob, TeamName: "Margin Call Mavericks", JoinedAt: time.Date(2026, 1, 5, 10, 0, 0, 0, time.UTC)},
		{ID: "mem-003", LeagueID: LeagueIDWallStreetBets, UserID: UserIDCarol, TeamName: "Blue Chip Bandits", JoinedAt: time.Date(2026, 1, 6, 8, 30, 0, 0, time.UTC)},
		{ID: "mem-004", LeagueID: LeagueIDWallStreetBets, UserID: UserIDDave, TeamName: "Short Squeeze Syndicate", JoinedAt: time.Date(2026, 1, 6, 19, 15, 0, 0, time.UTC)},
		{ID: "mem-005", LeagueID: LeagueIDDividendClub, UserID: UserIDCarol, TeamName: "Yield Hunters", JoinedAt: time.Date(2026, 2, 1, 9, 10, 0, 0, time.UTC)},
		{ID: "mem-006", LeagueID: LeagueIDDividendClub, UserID: UserIDAlice, TeamName: "Compound Interest", JoinedAt: time.Date(2026, 2, 2, 12, 0, 0, 0, time.UTC)},
	}
}

func SeedRosterSlots() []roster.Slot {
	return []roster.Slot{
		{ID: "slot-001", LeagueID: LeagueIDWallStreetBets, UserID: UserIDAlice, StockID: "stk-aapl", AddedAt: time.Date(2026, 1, 7, 14, 0, 0, 0, time.UTC)},
		{ID: "slot-002", LeagueID: LeagueIDWallStreetBets, UserID: UserIDAlice, StockID: "stk-nvda", AddedAt: time.Date(2026, 1, 7, 14, 1, 0, 0, time.UTC)},
		{ID: "slot-003", LeagueID: LeagueIDWallStreetBets, UserID: UserIDBob, StockID: "stk-tsla", AddedAt: time.Date(2026, 1, 7, 14, 2, 0, 0, time.UTC)},
		{ID: "slot-004", LeagueID: LeagueIDWallStreetBets, UserID: UserIDBob, StockID: "stk-amd", AddedAt: time.Date(2026, 1, 7, 14, 3, 0, 0, time.UTC)},
		{ID: "slot-005", LeagueID: LeagueIDWallStreetBets, UserID: UserIDCarol, StockID: "stk-msft", AddedAt: time.Date(2026, 1, 7, 14, 4, 0, 0, time.UTC)},
		{ID: "slot-006", LeagueID: LeagueIDWallStreetBets, UserID: UserIDCarol, StockID: "stk-jpm", AddedAt: time.Date(2026, 1, 7, 14, 5, 0, 0, time.UTC)},
		{ID: "slot-007", LeagueID: LeagueIDWallStreetBets, UserID: UserIDDave, StockID: "stk-pltr", AddedAt: time.Date(2026, 1, 7, 14, 6, 0, 0, time.UTC)},
		{ID: "slot-008", LeagueID: LeagueIDWallStreetBets, UserID: UserIDDave, StockID: "stk-sofi", AddedAt: time.Date(2026, 1, 7, 14, 7, 0, 0, time.UTC)},
		{ID: "slot-009", LeagueID: LeagueIDDividendClub, UserID: UserIDCarol, StockID: "stk-ko", AddedAt: time.Date(2026, 2, 3, 10, 0, 0, 0, time.UTC)},
		{ID: "slot-010", LeagueID: LeagueIDDividendClub, UserID: UserIDAlice, StockID: "stk-jpm", AddedAt: time.Date(2026, 2, 3, 10, 5, 0, 0, time.UTC)},
	}
}

func SeedMatchups() []matchup.Matchup {
	return []matchup.Matchup{
		{
			ID:           "mch-001",
			LeagueID:     LeagueIDWallStreetBets,
			Week:         1,
			TeamAUserID:  UserIDAlice,
			TeamBUserID:  UserIDBob,
			ScoreA:       18.5,
			ScoreB:       -4.2,
			WinnerUserID: UserIDAlice,
			IsComplete:   true,
		},
		{
			ID:           "mch-002",
			LeagueID:     LeagueIDWallStreetBets,
			Week:         1,
			TeamAUserID:  UserIDCarol,
			TeamBUserID:  UserIDDave,
			ScoreA:       7.1,
			ScoreB:       12.9,
			WinnerUserID: UserIDDave,
			IsComplete:   true,
		},
		{
			ID:           "mch-003",
			LeagueID:     LeagueIDWallStreetBets,
			Week:         2,
			TeamAUserID:  UserIDAlice,
			TeamBUserID:  UserIDCarol,
			ScoreA:       9.3,
			ScoreB:       6.0,
			WinnerUserID: UserIDAlice,
			IsComplete:   true,
		},
		{
			ID:           "mch-004",
			LeagueID:     LeagueIDWallStreetBets,
			Week:         2,
			TeamAUserID:  UserIDBob,
			TeamBUserID:  UserIDDave,
			ScoreA:       3.4,
			ScoreB:       3.4,
			WinnerUserID: "",
			IsComplete:   true,
		},
		{
			ID:          "mch-005",
			LeagueID:    LeagueIDWallStreetBets,
			Week:        3,
			TeamAUserID: UserIDAlice,
			TeamBUserID: UserIDDave,
		},
		{
			ID:          "mch-006",
			LeagueID:    LeagueIDWallStreetBets,
			Week:        3,
			TeamAUserID: UserIDBob,
			TeamBUserID: UserIDCarol,
		},
	}
}
