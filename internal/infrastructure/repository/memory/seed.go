package memory

import (
	"github.com/cricketlabs/livestats/internal/domain/player"
	"github.com/cricketlabs/livestats/internal/domain/team"
	"github.com/cricketlabs/livestats/internal/domain/venue"
)

// Seed data backs the dev-mode stores and the first-boot database fill.
// Career numbers are plausible all-format aggregates, not live figures.

func SeedTeams() []team.Team {
	return []team.Team{
		{Name: "India", Country: "India", MatchesPlayed: 1050, MatchesWon: 560, MatchesLost: 420, WinPercentage: 53.33},
		{Name: "Australia", Country: "Australia", MatchesPlayed: 1020, MatchesWon: 590, MatchesLost: 370, WinPercentage: 57.84},
		{Name: "England", Country: "England", MatchesPlayed: 990, MatchesWon: 500, MatchesLost: 430, WinPercentage: 50.51},
		{Name: "New Zealand", Country: "New Zealand", MatchesPlayed: 850, MatchesWon: 400, MatchesLost: 390, WinPercentage: 47.06},
		{Name: "Pakistan", Country: "Pakistan", MatchesPlayed: 920, MatchesWon: 450, MatchesLost: 410, WinPercentage: 48.91},
		{Name: "South Africa", Country: "South Africa", MatchesPlayed: 780, MatchesWon: 420, MatchesLost: 320, WinPercentage: 53.85},
		{Name: "Sri Lanka", Country: "Sri Lanka", MatchesPlayed: 860, MatchesWon: 390, MatchesLost: 420, WinPercentage: 45.35},
		{Name: "West Indies", Country: "West Indies", MatchesPlayed: 880, MatchesWon: 400, MatchesLost: 430, WinPercentage: 45.45},
	}
}

func SeedVenues() []venue.Venue {
	return []venue.Venue{
		{Name: "Narendra Modi Stadium", City: "Ahmedabad", Country: "India", Capacity: 132000},
		{Name: "Melbourne Cricket Ground", City: "Melbourne", Country: "Australia", Capacity: 100024},
		{Name: "Eden Gardens", City: "Kolkata", Country: "India", Capacity: 66000},
		{Name: "Sydney Cricket Ground", City: "Sydney", Country: "Australia", Capacity: 48000},
		{Name: "Wankhede Stadium", City: "Mumbai", Country: "India", Capacity: 33108},
		{Name: "Lord's", City: "London", Country: "England", Capacity: 31100},
		{Name: "Gaddafi Stadium", City: "Lahore", Country: "Pakistan", Capacity: 27000},
		{Name: "The Oval", City: "London", Country: "England", Capacity: 25500},
	}
}

func SeedPlayers() []player.Player {
	return []player.Player{
		{Name: "Virat Kohli", Country: "India", PlayingRole: player.RoleBatsman, BattingStyle: "Right-hand bat", BowlingStyle: "Right-arm medium", TotalRuns: 25000, TotalWickets: 4, BattingAverage: 53.5, BowlingAverage: 166.25, EconomyRate: 6.22, StrikeRate: 93.6, MatchesPlayed: 500, Centuries: 80, Fifties: 140},
		{Name: "Rohit Sharma", Country: "India", PlayingRole: player.RoleBatsman, BattingStyle: "Right-hand bat", BowlingStyle: "Right-arm off break", TotalRuns: 18000, TotalWickets: 8, BattingAverage: 48.9, BowlingAverage: 61.3, EconomyRate: 5.2, StrikeRate: 90.1, MatchesPlayed: 450, Centuries: 48, Fifties: 105},
		{Name: "Jasprit Bumrah", Country: "India", PlayingRole: player.RoleBowler, BattingStyle: "Right-hand bat", BowlingStyle: "Right-arm fast", TotalRuns: 400, TotalWickets: 400, BattingAverage: 7.5, BowlingAverage: 21.9, EconomyRate: 4.6, StrikeRate: 45.0, MatchesPlayed: 200, Centuries: 0, Fifties: 0},
		{Name: "Ravindra Jadeja", Country: "India", PlayingRole: player.RoleAllRounder, BattingStyle: "Left-hand bat", BowlingStyle: "Left-arm orthodox", TotalRuns: 5500, TotalWickets: 550, BattingAverage: 35.2, BowlingAverage: 24.2, EconomyRate: 4.9, StrikeRate: 86.0, MatchesPlayed: 320, Centuries: 4, Fifties: 40},
		{Name: "Steve Smith", Country: "Australia", PlayingRole: player.RoleBatsman, BattingStyle: "Right-hand bat", BowlingStyle: "Right-arm leg break", TotalRuns: 15000, TotalWickets: 30, BattingAverage: 56.1, BowlingAverage: 41.2, EconomyRate: 5.1, StrikeRate: 86.4, MatchesPlayed: 350, Centuries: 45, Fifties: 80},
		{Name: "Pat Cummins", Country: "Australia", PlayingRole: player.RoleBowler, BattingStyle: "Right-hand bat", BowlingStyle: "Right-arm fast", TotalRuns: 1500, TotalWickets: 450, BattingAverage: 16.8, BowlingAverage: 22.5, EconomyRate: 4.8, StrikeRate: 70.0, MatchesPlayed: 250, Centuries: 0, Fifties: 2},
		{Name: "Joe Root", Country: "England", PlayingRole: player.RoleBatsman, BattingStyle: "Right-hand bat", BowlingStyle: "Right-arm off break", TotalRuns: 18500, TotalWickets: 60, BattingAverage: 50.8, BowlingAverage: 48.7, EconomyRate: 5.6, StrikeRate: 87.2, MatchesPlayed: 400, Centuries: 50, Fifties: 100},
		{Name: "Ben Stokes", Country: "England", PlayingRole: player.RoleAllRounder, BattingStyle: "Left-hand bat", BowlingStyle: "Right-arm fast-medium", TotalRuns: 10000, TotalWickets: 300, BattingAverage: 38.4, BowlingAverage: 31.9, EconomyRate: 5.7, StrikeRate: 92.3, MatchesPlayed: 300, Centuries: 18, Fifties: 60},
		{Name: "Jos Buttler", Country: "England", PlayingRole: player.RoleWicketKeeperBatsman, BattingStyle: "Right-hand bat", BowlingStyle: "", TotalRuns: 9000, TotalWickets: 0, BattingAverage: 41.2, BowlingAverage: 0, EconomyRate: 0, StrikeRate: 118.4, MatchesPlayed: 280, Centuries: 15, Fifties: 55},
		{Name: "Kane Williamson", Country: "New Zealand", PlayingRole: player.RoleBatsman, BattingStyle: "Right-hand bat", BowlingStyle: "Right-arm off break", TotalRuns: 14000, TotalWickets: 30, BattingAverage: 52.3, BowlingAverage: 45.1, EconomyRate: 5.3, StrikeRate: 81.5, MatchesPlayed: 330, Centuries: 40, Fifties: 90},
	}
}
