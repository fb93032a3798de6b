package nfl

// SeedTeam pairs a Team with its calibrated baseline strength numbers.
// Baselines are reference data only; live tiers and ratings are recomputed
// per analysis by the rating engine.
type SeedTeam struct {
	Team
	BaseTier    int
	BaseOffense int
	BaseDefense int
}

const logoBase = "https://a.espncdn.com/i/teamlogos/nfl/500/"

func seed(id, name, abbr, logo, color string, tier, off, def int, record, standing, status string, injuries ...string) SeedTeam {
	return SeedTeam{
		Team: Team{
			ID:           id,
			Name:         name,
			Abbreviation: abbr,
			LogoURL:      logoBase + logo + ".png",
			Color:        color,
			Record:       record,
			Standing:     standing,
			Status:       status,
			KeyInjuries:  injuries,
		},
		BaseTier:    tier,
		BaseOffense: off,
		BaseDefense: def,
	}
}

// Teams is the calibrated Week 16 reference dataset, keyed by abbreviation.
var Teams = map[string]SeedTeam{
	// AFC West
	"DEN": seed("DEN", "Denver Broncos", "DEN", "den", "#FB4F14", 1, 96, 94, "12-2-0", "1st AFC West", StatusClinched),
	"LAC": seed("LAC", "Los Angeles Chargers", "LAC", "lac", "#0080C6", 1, 92, 88, "10-4-0", "3rd AFC West", StatusContender),
	"KC":  seed("KC", "Kansas City Chiefs", "KC", "kc", "#E31837", 4, 70, 80, "6-8-0", "4th AFC West", StatusEliminated, "P. Mahomes (ACL - IR)", "T. Kelce (Rest)"),
	"LV":  seed("LV", "Las Vegas Raiders", "LV", "lv", "#000000", 5, 60, 65, "2-12-0", "4th AFC West", StatusEliminated),

	// AFC East
	"NE":  seed("NE", "New England Patriots", "NE", "ne", "#002244", 1, 92, 94, "11-3-0", "1st AFC East", StatusContender),
	"BUF": seed("BUF", "Buffalo Bills", "BUF", "buf", "#00338D", 2, 88, 82, "10-4-0", "2nd AFC East", StatusContender),
	"MIA": seed("MIA", "Miami Dolphins", "MIA", "mia", "#008E97", 4, 70, 68, "6-8-0", "3rd AFC East", StatusEliminated),
	"NYJ": seed("NYJ", "New York Jets", "NYJ", "nyj", "#125740", 5, 65, 70, "3-11-0", "4th AFC East", StatusEliminated),

	// AFC South
	"JAX": seed("JAX", "Jacksonville Jaguars", "JAX", "jax", "#006778", 2, 88, 80, "10-4-0", "1st AFC South", StatusContender),
	"HOU": seed("HOU", "Houston Texans", "HOU", "hou", "#03202F", 2, 85, 78, "9-5-0", "2nd AFC South", StatusContender),
	"IND": seed("IND", "Indianapolis Colts", "IND", "ind", "#002C5F", 3, 80, 75, "8-6-0", "3rd AFC South", StatusBubble, "NEWS: P. Rivers Signed"),
	"TEN": seed("TEN", "Tennessee Titans", "TEN", "ten", "#4B92DB", 5, 60, 65, "2-12-0", "4th AFC South", StatusEliminated),

	// AFC North
	"PIT": seed("PIT", "Pittsburgh Steelers", "PIT", "pit", "#FFB612", 2, 88, 88, "8-6-0", "1st AFC North", StatusContender, "QB1: A. Rodgers"),
	"BAL": seed("BAL", "Baltimore Ravens", "BAL", "bal", "#241773", 3, 78, 80, "7-7-0", "2nd AFC North", StatusBubble),
	"CIN": seed("CIN", "Cincinnati Bengals", "CIN", "cin", "#FB4F14", 4, 70, 68, "4-10-0", "3rd AFC North", StatusEliminated, "J. Burrow (IR)"),
	"CLE": seed("CLE", "Cleveland Browns", "CLE", "cle", "#311D00", 5, 60, 75, "3-11-0", "4th AFC North", StatusEliminated),

	// NFC West
	"LAR": seed("LAR", "Los Angeles Rams", "LAR", "lar", "#003594", 1, 92, 88, "11-3-0", "1st NFC West", StatusClinched),
	"SEA": seed("SEA", "Seattle Seahawks", "SEA", "sea", "#002244", 1, 88, 90, "11-3-0", "2nd NFC West", StatusContender),
	"SF":  seed("SF", "San Francisco 49ers", "SF", "sf", "#AA0000", 1, 90, 90, "10-4-0", "3rd NFC West", StatusContender),
	"ARI": seed("ARI", "Arizona Cardinals", "ARI", "ari", "#97233F", 5, 65, 60, "3-11-0", "4th NFC West", StatusEliminated),

	// NFC North
	"CHI": seed("CHI", "Chicago Bears", "CHI", "chi", "#0B162A", 1, 90, 88, "10-4-0", "1st NFC North", StatusContender),
	"GB":  seed("GB", "Green Bay Packers", "GB", "gb", "#203731", 2, 88, 80, "9-4-1", "2nd NFC North", StatusContender),
	"DET": seed("DET", "Detroit Lions", "DET", "det", "#0076B6", 3, 85, 78, "8-6-0", "3rd NFC North", StatusBubble),
	"MIN": seed("MIN", "Minnesota Vikings", "MIN", "min", "#4F2683", 4, 78, 75, "6-8-0", "4th NFC North", StatusBubble),

	// NFC South
	"TB":  seed("TB", "Tampa Bay Buccaneers", "TB", "tb", "#D50A0A", 3, 80, 75, "7-7-0", "1st NFC South", StatusContender),
	"CAR": seed("CAR", "Carolina Panthers", "CAR", "car", "#0085CA", 3, 78, 72, "7-7-0", "2nd NFC South", StatusBubble),
	"ATL": seed("ATL", "Atlanta Falcons", "ATL", "atl", "#A71930", 4, 70, 68, "5-9-0", "3rd NFC South", StatusEliminated),
	"NO":  seed("NO", "New Orleans Saints", "NO", "no", "#D3BC8D", 5, 65, 65, "4-10-0", "4th NFC South", StatusEliminated),

	// NFC East
	"PHI": seed("PHI", "Philadelphia Eagles", "PHI", "phi", "#004C54", 2, 90, 86, "9-5", "1st NFC East", StatusContender),
	"DAL": seed("DAL", "Dallas Cowboys", "DAL", "dal", "#003594", 4, 75, 70, "6-7-1", "3rd NFC East", StatusBubble),
	"WAS": seed("WAS", "Washington Commanders", "WAS", "wsh", "#5A1414", 4, 70, 68, "4-10-0", "3rd NFC East", StatusEliminated),
	"NYG": seed("NYG", "New York Giants", "NYG", "nyg", "#0B2265", 5, 60, 60, "2-12-0", "4th NFC East", StatusEliminated),
}

// TeamByID resolves a team by id or abbreviation.
func TeamByID(id string) (SeedTeam, bool) {
	if t, ok := Teams[id]; ok {
		return t, true
	}
	for _, t := range Teams {
		if t.ID == id {
			return t, true
		}
	}
	return SeedTeam{}, false
}

// Nicknames maps abbreviations to the short name fans and headlines use.
// Used by the narrative generator's third-team filter.
var Nicknames = map[string]string{
	"DEN": "Broncos", "LAC": "Chargers", "KC": "Chiefs", "LV": "Raiders",
	"NE": "Patriots", "BUF": "Bills", "MIA": "Dolphins", "NYJ": "Jets",
	"JAX": "Jaguars", "HOU": "Texans", "IND": "Colts", "TEN": "Titans",
	"PIT": "Steelers", "BAL": "Ravens", "CIN": "Bengals", "CLE": "Browns",
	"LAR": "Rams", "SEA": "Seahawks", "SF": "49ers", "ARI": "Cardinals",
	"CHI": "Bears", "GB": "Packers", "DET": "Lions", "MIN": "Vikings",
	"TB": "Buccaneers", "CAR": "Panthers", "ATL": "Falcons", "NO": "Saints",
	"PHI": "Eagles", "DAL": "Cowboys", "WAS": "Commanders", "NYG": "Giants",
}

func gameOf(id string, week int, date, venue, awayAbbr, homeAbbr string, betting *BettingData) Game {
	return Game{
		ID:       id,
		Week:     week,
		Date:     date,
		Venue:    venue,
		AwayTeam: Teams[awayAbbr].Team,
		HomeTeam: Teams[homeAbbr].Team,
		Status:   GamePre,
		Betting:  betting,
	}
}

func line(spread string, total float64, publicPct int) *BettingData {
	return &BettingData{Spread: spread, Total: total, PublicBettingPct: publicPct}
}

// Week16Schedule is the fixed fallback slate, used whenever the live
// scoreboard is unreachable.
var Week16Schedule = []Game{
	gameOf("w16-1", 16, "Thu, Dec 18 • 8:15 PM ET", "Lumen Field", "LAR", "SEA", line("SEA -1.5", 47.5, 55)),
	gameOf("w16-2", 16, "Sat, Dec 20 • 5:00 PM ET", "FedExField", "PHI", "WAS", line("PHI -9.5", 44.0, 82)),
	gameOf("w16-3", 16, "Sat, Dec 20 • 8:20 PM ET", "Soldier Field", "GB", "CHI", line("CHI -2.5", 41.5, 60)),
	gameOf("w16-4", 16, "Sun, Dec 21 • 1:00 PM ET", "M&T Bank Stadium", "NE", "BAL", line("NE -3.0", 43.0, 58)),
	gameOf("w16-5", 16, "Sun, Dec 21 • 1:00 PM ET", "Bank of America Stadium", "TB", "CAR", line("CAR -1.0", 39.5, 45)),
	gameOf("w16-6", 16, "Sun, Dec 21 • 1:00 PM ET", "Cleveland Browns Stadium", "BUF", "CLE", line("BUF -13.5", 45.0, 90)),
	gameOf("w16-7", 16, "Sun, Dec 21 • 1:00 PM ET", "AT&T Stadium", "LAC", "DAL", line("LAC -6.5", 48.5, 75)),
	gameOf("w16-8", 16, "Sun, Dec 21 • 1:00 PM ET", "Caesars Superdome", "NYJ", "NO", line("NO -2.5", 36.0, 40)),
	gameOf("w16-9", 16, "Sun, Dec 21 • 1:00 PM ET", "MetLife Stadium", "MIN", "NYG", line("MIN -7.0", 40.5, 85)),
	gameOf("w16-10", 16, "Sun, Dec 21 • 1:00 PM ET", "Nissan Stadium", "KC", "TEN", line("KC -3.5", 38.0, 65)),
	gameOf("w16-11", 16, "Sun, Dec 21 • 1:00 PM ET", "Hard Rock Stadium", "CIN", "MIA", line("MIA -4.0", 42.5, 70)),
	gameOf("w16-12", 16, "Sun, Dec 21 • 4:05 PM ET", "State Farm Stadium", "ATL", "ARI", line("ATL -3.0", 44.0, 60)),
	gameOf("w16-13", 16, "Sun, Dec 21 • 4:05 PM ET", "Empower Field at Mile High", "JAX", "DEN", line("DEN -5.5", 46.5, 72)),
	gameOf("w16-14", 16, "Sun, Dec 21 • 4:25 PM ET", "Ford Field", "PIT", "DET", line("DET -4.5", 49.0, 68)),
	gameOf("w16-15", 16, "Sun, Dec 21 • 4:25 PM ET", "NRG Stadium", "LV", "HOU", line("HOU -10.5", 43.5, 88)),
	gameOf("w16-16", 16, "Mon, Dec 22 • 8:15 PM ET", "Lucas Oil Stadium", "SF", "IND", line("SF -6.0", 45.5, 78)),
}
