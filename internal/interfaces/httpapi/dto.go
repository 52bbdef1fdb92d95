package httpapi

import (
	"time"

	"github.com/tickerdraft/tickerdraft/internal/domain/league"
	"github.com/tickerdraft/tickerdraft/internal/domain/matchup"
	"github.com/tickerdraft/tickerdraft/internal/domain/roster"
	"github.com/tickerdraft/tickerdraft/internal/domain/scoring"
	"github.com/tickerdraft/tickerdraft/internal/domain/standings"
	"github.com/tickerdraft/tickerdraft/internal/domain/stock"
	"github.com/tickerdraft/tickerdraft/internal/usecase"
)

type stockDTO struct {
	ID       string `json:"id"`
	Ticker   string `json:"ticker"`
	Name     string `json:"name"`
	Sector   string `json:"sector"`
	CapClass string `json:"capClass"`
}

func stockToDTO(s stock.Stock) stockDTO {
	return stockDTO{
		ID:       s.ID,
		Ticker:   s.Ticker,
		Name:     s.Name,
		Sector:   s.Sector,
		CapClass: string(s.CapClass),
	}
}

type quoteDTO struct {
	Ticker    string  `json:"ticker"`
	Open      float64 `json:"open"`
	High      float64 `json:"high"`
	Low       float64 `json:"low"`
	Close     float64 `json:"close"`
	Volume    float64 `json:"volume"`
	Change    float64 `json:"change"`
	ChangePct float64 `json:"changePct"`
}

func quoteToDTO(q usecase.Quote) quoteDTO {
	return quoteDTO{
		Ticker:    q.Ticker,
		Open:      q.Open,
		High:      q.High,
		Low:       q.Low,
		Close:     q.Close,
		Volume:    q.Volume,
		Change:    q.Change,
		ChangePct: q.ChangePct,
	}
}

type leagueDTO struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	InviteCode     string    `json:"inviteCode"`
	Status         string    `json:"status"`
	CurrentWeek    int       `json:"currentWeek"`
	CommissionerID string    `json:"commissionerId"`
	IsPublic       bool      `json:"isPublic"`
	CreatedAt      time.Time `json:"createdAt"`
}

func leagueToDTO(l league.League) leagueDTO {
	return leagueDTO{
		ID:             l.ID,
		Name:           l.Name,
		InviteCode:     l.InviteCode,
		Status:         string(l.Status),
		CurrentWeek:    l.CurrentWeek,
		CommissionerID: l.CommissionerID,
		IsPublic:       l.IsPublic,
		CreatedAt:      l.CreatedAt,
	}
}

type membershipDTO struct {
	ID       string    `json:"id"`
	LeagueID string    `json:"leagueId"`
	UserID   string    `json:"userId"`
	TeamName string    `json:"teamName"`
	JoinedAt time.Time `json:"joinedAt"`
}

func membershipToDTO(m league.Membership) membershipDTO {
	return membershipDTO{
		ID:       m.ID,
		LeagueID: m.LeagueID,
		UserID:   m.UserID,
		TeamName: m.TeamName,
		JoinedAt: m.JoinedAt,
	}
}

type standingsRowDTO struct {
	Rank        int     `json:"rank"`
	UserID      string  `json:"userId"`
	TeamName    string  `json:"teamName"`
	TotalPoints float64 `json:"totalPoints"`
	Wins        int     `json:"wins"`
	Losses      int     `json:"losses"`
}

func standingsRowToDTO(row standings.Row) standingsRowDTO {
	return standingsRowDTO{
		Rank:        row.Rank,
		UserID:      row.UserID,
		TeamName:    row.TeamName,
		TotalPoints: row.TotalPoints,
		Wins:        row.Wins,
		Losses:      row.Losses,
	}
}

type matchupDTO struct {
	ID           string  `json:"id"`
	LeagueID     string  `json:"leagueId"`
	Week         int     `json:"week"`
	TeamAUserID  string  `json:"teamAUserId"`
	TeamBUserID  string  `json:"teamBUserId"`
	ScoreA       float64 `json:"scoreA"`
	ScoreB       float64 `json:"scoreB"`
	WinnerUserID string  `json:"winnerUserId,omitempty"`
	IsComplete   bool    `json:"isComplete"`
}

func matchupToDTO(m matchup.Matchup) matchupDTO {
	return matchupDTO{
		ID:           m.ID,
		LeagueID:     m.LeagueID,
		Week:         m.Week,
		TeamAUserID:  m.TeamAUserID,
		TeamBUserID:  m.TeamBUserID,
		ScoreA:       m.ScoreA,
		ScoreB:       m.ScoreB,
		WinnerUserID: m.WinnerUserID,
		IsComplete:   m.IsComplete,
	}
}

type rosterSlotDTO struct {
	ID       string    `json:"id"`
	LeagueID string    `json:"leagueId"`
	UserID   string    `json:"userId"`
	StockID  string    `json:"stockId"`
	AddedAt  time.Time `json:"addedAt"`
}

func rosterSlotToDTO(s roster.Slot) rosterSlotDTO {
	return rosterSlotDTO{
		ID:       s.ID,
		LeagueID: s.LeagueID,
		UserID:   s.UserID,
		StockID:  s.StockID,
		AddedAt:  s.AddedAt,
	}
}

type weeklyScoreDTO struct {
	ID         string    `json:"id"`
	LeagueID   string    `json:"leagueId"`
	UserID     string    `json:"userId"`
	StockID    string    `json:"stockId"`
	Week       int       `json:"week"`
	PriceOpen  float64   `json:"priceOpen"`
	PriceClose float64   `json:"priceClose"`
	PctChange  float64   `json:"pctChange"`
	Points     float64   `json:"points"`
	ScoredAt   time.Time `json:"scoredAt"`
}

func weeklyScoreToDTO(s scoring.WeeklyScore) weeklyScoreDTO {
	return weeklyScoreDTO{
		ID:         s.ID,
		LeagueID:   s.LeagueID,
		UserID:     s.UserID,
		StockID:    s.StockID,
		Week:       s.Week,
		PriceOpen:  s.PriceOpen,
		PriceClose: s.PriceClose,
		PctChange:  s.PctChange,
		Points:     s.Points,
		ScoredAt:   s.ScoredAt,
	}
}

type dashboardHoldingDTO struct {
	Slot  rosterSlotDTO `json:"slot"`
	Stock stockDTO      `json:"stock"`
}

type dashboardLeagueDTO struct {
	League   leagueDTO             `json:"league"`
	Team     membershipDTO         `json:"team"`
	Standing standingsRowDTO       `json:"standing"`
	Roster   []dashboardHoldingDTO `json:"roster"`
}

type dashboardDTO struct {
	UserID  string               `json:"userId"`
	Leagues []dashboardLeagueDTO `json:"leagues"`
}

func dashboardToDTO(d usecase.Dashboard) dashboardDTO {
	leagues := make([]dashboardLeagueDTO, 0, len(d.Leagues))
	for _, entry := range d.Leagues {
		holdings := make([]dashboardHoldingDTO, 0, len(entry.Roster))
		for _, holding := range entry.Roster {
			holdings = append(holdings, dashboardHoldingDTO{
				Slot:  rosterSlotToDTO(holding.Slot),
				Stock: stockToDTO(holding.Stock),
			})
		}
		leagues = append(leagues, dashboardLeagueDTO{
			League:   leagueToDTO(entry.League),
			Team:     membershipToDTO(entry.Team),
			Standing: standingsRowToDTO(entry.Standing),
			Roster:   holdings,
		})
	}

	return dashboardDTO{UserID: d.UserID, Leagues: leagues}
}
