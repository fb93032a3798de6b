package nfl

import "time"

// Competitive status buckets for the playoff picture.
const (
	StatusClinched   = "Clinched"
	StatusContender  = "Contender"
	StatusBubble     = "Bubble"
	StatusEliminated = "Eliminated"
)

// Game lifecycle states as reported by the scoreboard feed.
const (
	GamePre  = "pre"
	GameIn   = "in"
	GamePost = "post"
)

// QBStats holds the starting quarterback's season passing line.
type QBStats struct {
	Name          string  `json:"name,omitempty"`
	PassingYards  float64 `json:"passing_yards"`
	PassingTDs    int     `json:"passing_tds"`
	Interceptions int     `json:"interceptions"`
}

// Team is a franchise as seen by the projection pipeline. Optional fields
// are pointers; a nil pointer means the upstream feed did not supply the
// value and downstream code must use its documented default.
type Team struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Abbreviation string   `json:"abbreviation"`
	LogoURL      string   `json:"logo_url,omitempty"`
	Color        string   `json:"color,omitempty"`
	Record       string   `json:"record,omitempty"`   // e.g. "10-4-0"
	Standing     string   `json:"standing,omitempty"` // e.g. "1st AFC West"
	Status       string   `json:"status,omitempty"`   // Clinched/Contender/Bubble/Eliminated
	KeyInjuries  []string `json:"key_injuries,omitempty"`
	Score        *int     `json:"score,omitempty"` // live score, nil before kickoff
	QB           *QBStats `json:"qb_stats,omitempty"`
}

// BettingData is the market line attached to a game. Spread is the book's
// notation, favorite abbreviation plus signed points ("BUF -13.5").
type BettingData struct {
	Spread           string  `json:"spread"`
	Total            float64 `json:"total"`
	PublicBettingPct int     `json:"public_betting_pct"`
}

// Game is one scheduled matchup. Games arrive from the schedule adapter and
// are never mutated by the engine.
type Game struct {
	ID       string       `json:"id"`
	Week     int          `json:"week"`
	Date     string       `json:"date"` // display string, e.g. "Sun, Dec 21 • 1:00 PM ET"
	Kickoff  time.Time    `json:"kickoff,omitempty"`
	Venue    string       `json:"venue"`
	HomeTeam Team         `json:"home_team"`
	AwayTeam Team         `json:"away_team"`
	Status   string       `json:"status,omitempty"` // pre/in/post
	Clock    string       `json:"clock,omitempty"`  // e.g. "10:35 4th"
	Betting  *BettingData `json:"betting_data,omitempty"`
}

// ScheduleMeta describes the provenance of a schedule snapshot.
type ScheduleMeta struct {
	Season    int       `json:"season"`
	Week      int       `json:"week"`
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Source    string    `json:"source"`
}

// Schedule is a normalized scoreboard response.
type Schedule struct {
	Meta  ScheduleMeta `json:"meta"`
	Games []Game       `json:"data"`
}

// NewsArticle is one item from the news feed.
type NewsArticle struct {
	Headline    string    `json:"headline"`
	Description string    `json:"description,omitempty"`
	Published   time.Time `json:"published,omitempty"`
	Teams       []string  `json:"teams,omitempty"` // team abbreviations tagged on the article
}

// Leverage is the home team's share (0-100) of a positional advantage.
type Leverage struct {
	Offense int `json:"offense"`
	Defense int `json:"defense"`
	QB      int `json:"qb"`
}

// Weather is environmental flavor attached to an analysis.
type Weather struct {
	Temp            int    `json:"temp"`
	Condition       string `json:"condition"`
	WindSpeed       int    `json:"wind_speed"`
	ImpactOnPassing string `json:"impact_on_passing"` // Low/Moderate/High
}

// Retrospective grades an analysis after the game goes final.
type Retrospective struct {
	Result             string   `json:"result"`
	KeyToVictory       string   `json:"key_to_victory"`
	StandoutPerformers []string `json:"standout_performers"`
}

// AnalysisResult is the engine's full output for one game. It is a pure
// function of its inputs and is never persisted, only cached.
type AnalysisResult struct {
	GameID           string         `json:"game_id"`
	WinnerPrediction string         `json:"winner_prediction"`
	HomeScore        int            `json:"home_score_prediction"`
	AwayScore        int            `json:"away_score_prediction"`
	ConfidenceScore  int            `json:"confidence_score"` // 0-99
	Summary          string         `json:"summary"`
	Narrative        string         `json:"narrative"`
	KeyFactors       []string       `json:"key_factors"`
	JinxScore        int            `json:"jinx_score"` // 1-10 trap-game risk
	JinxAnalysis     string         `json:"jinx_analysis"`
	UpsetProbability int            `json:"upset_probability"`
	QuickTake        string         `json:"quick_take,omitempty"`
	ExecutionRating  int            `json:"execution_rating"` // 0-99
	ExplosiveRating  int            `json:"explosive_rating"` // 0-99
	LatestNews       []string       `json:"latest_news,omitempty"`
	Weather          Weather        `json:"weather"`
	Leverage         Leverage       `json:"leverage"`
	Retrospective    *Retrospective `json:"retrospective,omitempty"`
}

// UserPrediction is the persisted pick for one game: the engine's projection
// at save time plus the user's own numbers. At most one per game id; later
// saves overwrite.
type UserPrediction struct {
	GameID          string `json:"game_id"`
	HomeScore       string `json:"home_score"`
	AwayScore       string `json:"away_score"`
	PredictedWinner string `json:"predicted_winner"`

	UserHomeScore       string `json:"user_home_score,omitempty"`
	UserAwayScore       string `json:"user_away_score,omitempty"`
	UserPredictedWinner string `json:"user_predicted_winner,omitempty"`
}

// GameResult is the frozen final of a game, captured once when the game goes
// post. It carries enough team identity to grade spreads later without
// re-fetching the game.
type GameResult struct {
	GameID    string `json:"game_id"`
	HomeScore int    `json:"home_score"`
	AwayScore int    `json:"away_score"`
	Spread    string `json:"spread"` // line in effect at capture time
	HomeAbbr  string `json:"home_abbr"`
	AwayAbbr  string `json:"away_abbr"`
	HomeName  string `json:"home_name"`
	AwayName  string `json:"away_name"`
}

// StandingsRecord is a graded win/loss ledger, straight-up and ATS.
type StandingsRecord struct {
	Wins      int `json:"wins"`
	Losses    int `json:"losses"`
	ATSWins   int `json:"ats_wins"`
	ATSLosses int `json:"ats_losses"`
	ATSPushes int `json:"ats_pushes"`
}

// Standings holds the two independently graded tracks.
type Standings struct {
	User   StandingsRecord `json:"user"`
	Engine StandingsRecord `json:"engine"`
	Graded int             `json:"graded_games"`
}
