package analytics

// Catalog returns the curated query set in presentation order, three tiers of
// increasing SQL complexity. All SQL targets the players/teams/venues/matches
// schema and takes no parameters.
func Catalog() []Query {
	return []Query{
		{
			ID:          "indian-players",
			Title:       "All Indian Players",
			Description: "Find all players who represent India with their playing details",
			Level:       LevelBeginner,
			SQL: `SELECT name AS "Player Name",
       playing_role AS "Role",
       batting_style AS "Batting Style",
       bowling_style AS "Bowling Style"
FROM players
WHERE country = 'India'
ORDER BY name`,
		},
		{
			ID:          "recent-matches",
			Title:       "Recent Matches (Last 30 Days)",
			Description: "Show cricket matches from the last 30 days with venue details",
			Level:       LevelBeginner,
			SQL: `SELECT m.match_description AS "Match Description",
       t1.team_name AS "Team 1",
       t2.team_name AS "Team 2",
       v.venue_name || ', ' || v.city AS "Venue",
       m.match_date AS "Match Date"
FROM matches m
LEFT JOIN teams t1 ON m.team1_id = t1.team_id
LEFT JOIN teams t2 ON m.team2_id = t2.team_id
LEFT JOIN venues v ON m.venue_id = v.venue_id
WHERE m.match_date >= CURRENT_DATE - INTERVAL '30 days'
ORDER BY m.match_date DESC`,
		},
		{
			ID:          "top-run-scorers",
			Title:       "Top 10 Run Scorers",
			Description: "List the top 10 highest run scorers with their statistics",
			Level:       LevelBeginner,
			SQL: `SELECT name AS "Player Name",
       country AS "Country",
       total_runs AS "Total Runs",
       batting_average AS "Batting Average",
       centuries AS "Centuries"
FROM players
WHERE total_runs > 0
ORDER BY total_runs DESC
LIMIT 10`,
		},
		{
			ID:          "large-venues",
			Title:       "Large Capacity Venues",
			Description: "Display venues with seating capacity greater than 50,000",
			Level:       LevelBeginner,
			SQL: `SELECT venue_name AS "Venue Name",
       city AS "City",
       country AS "Country",
       capacity AS "Seating Capacity"
FROM venues
WHERE capacity > 50000
ORDER BY capacity DESC`,
		},
		{
			ID:          "team-wins",
			Title:       "Team Win Statistics",
			Description: "Calculate total wins for each team ordered by performance",
			Level:       LevelBeginner,
			SQL: `SELECT team_name AS "Team Name",
       country AS "Country",
       matches_won AS "Total Wins",
       matches_played AS "Matches Played",
       win_percentage AS "Win Percentage"
FROM teams
ORDER BY matches_won DESC`,
		},
		{
			ID:          "players-by-role",
			Title:       "Players Count by Role",
			Description: "Count number of players in each playing role category",
			Level:       LevelBeginner,
			SQL: `SELECT playing_role AS "Playing Role",
       COUNT(*) AS "Number of Players"
FROM players
GROUP BY playing_role
ORDER BY COUNT(*) DESC`,
		},
		{
			ID:          "highest-scores",
			Title:       "Highest Individual Scores",
			Description: "Find highest batting scores achieved in cricket",
			Level:       LevelBeginner,
			SQL: `SELECT name AS "Player Name",
       country AS "Country",
       total_runs AS "Career Runs",
       batting_average AS "Average",
       centuries AS "Hundreds"
FROM players
WHERE total_runs > 0
ORDER BY total_runs DESC
LIMIT 15`,
		},
		{
			ID:          "series-info",
			Title:       "Cricket Series Information",
			Description: "Show cricket series with match details and venues",
			Level:       LevelBeginner,
			SQL: `SELECT DISTINCT m.series_name AS "Series Name",
       v.country AS "Host Country",
       m.match_format AS "Match Format",
       COUNT(*) AS "Total Matches"
FROM matches m
LEFT JOIN venues v ON m.venue_id = v.venue_id
WHERE m.series_name IS NOT NULL
GROUP BY m.series_name, v.country, m.match_format
ORDER BY COUNT(*) DESC`,
		},
		{
			ID:          "all-rounders",
			Title:       "All-rounders Performance",
			Description: "Find all-rounders with significant runs and wickets",
			Level:       LevelIntermediate,
			SQL: `SELECT name AS "All-rounder",
       country AS "Country",
       total_runs AS "Career Runs",
       total_wickets AS "Career Wickets",
       batting_average AS "Batting Average",
       bowling_average AS "Bowling Average"
FROM players
WHERE playing_role = 'All-rounder'
  AND total_runs > 1000
  AND total_wickets > 20
ORDER BY (total_runs + total_wickets * 50) DESC`,
		},
		{
			ID:          "recent-results",
			Title:       "Recent Match Results",
			Description: "Get detailed results of recently completed matches",
			Level:       LevelIntermediate,
			SQL: `SELECT m.match_description AS "Match",
       t1.team_name || ' vs ' || t2.team_name AS "Teams",
       m.winning_team AS "Winner",
       m.victory_margin AS "Victory Margin",
       v.venue_name AS "Venue",
       m.match_date AS "Date"
FROM matches m
LEFT JOIN teams t1 ON m.team1_id = t1.team_id
LEFT JOIN teams t2 ON m.team2_id = t2.team_id
LEFT JOIN venues v ON m.venue_id = v.venue_id
WHERE m.match_status = 'Completed'
ORDER BY m.match_date DESC
LIMIT 20`,
		},
		{
			ID:          "multi-format-analysis",
			Title:       "Multi-format Player Analysis",
			Description: "Compare player performance across different cricket formats",
			Level:       LevelIntermediate,
			SQL: `SELECT p.name AS "Player Name",
       p.country AS "Country",
       p.total_runs AS "Total Career Runs",
       p.batting_average AS "Overall Batting Average",
       p.strike_rate AS "Strike Rate",
       p.matches_played AS "Total Matches",
       CASE
           WHEN p.matches_played >= 100 THEN 'Veteran Player'
           WHEN p.matches_played >= 50 THEN 'Experienced Player'
           ELSE 'Emerging Player'
       END AS "Experience Level"
FROM players p
WHERE p.matches_played >= 20
ORDER BY p.batting_average DESC
LIMIT 15`,
		},
		{
			ID:          "team-performance",
			Title:       "Team Performance Analysis",
			Description: "Analyze team performance with win-loss ratios",
			Level:       LevelIntermediate,
			SQL: `SELECT t.team_name AS "Team Name",
       t.country AS "Country",
       t.matches_played AS "Matches Played",
       t.matches_won AS "Matches Won",
       t.matches_lost AS "Matches Lost",
       ROUND((t.matches_won * 100.0 / t.matches_played), 2) AS "Win Percentage",
       CASE
           WHEN t.win_percentage >= 60 THEN 'Excellent'
           WHEN t.win_percentage >= 50 THEN 'Good'
           WHEN t.win_percentage >= 40 THEN 'Average'
           ELSE 'Below Average'
       END AS "Performance Rating"
FROM teams t
WHERE t.matches_played > 0
ORDER BY t.win_percentage DESC`,
		},
		{
			ID:          "batting-combinations",
			Title:       "Successful Batting Combinations",
			Description: "Identify potential successful batting partnerships by country",
			Level:       LevelIntermediate,
			SQL: `SELECT p1.name || ' & ' || p2.name AS "Batting Partnership",
       p1.country AS "Country",
       p1.playing_role AS "Player 1 Role",
       p2.playing_role AS "Player 2 Role",
       (p1.total_runs + p2.total_runs) AS "Combined Career Runs",
       ROUND((p1.batting_average + p2.batting_average) / 2, 2) AS "Average Partnership Rating"
FROM players p1
JOIN players p2 ON p1.country = p2.country AND p1.player_id < p2.player_id
WHERE p1.total_runs > 3000 AND p2.total_runs > 3000
  AND p1.playing_role IN ('Batsman', 'All-rounder', 'Wicket-keeper-Batsman')
  AND p2.playing_role IN ('Batsman', 'All-rounder', 'Wicket-keeper-Batsman')
ORDER BY (p1.total_runs + p2.total_runs) DESC
LIMIT 10`,
		},
		{
			ID:          "bowling-performance",
			Title:       "Bowling Performance Analysis",
			Description: "Examine bowling performance with economy rate focus",
			Level:       LevelIntermediate,
			SQL: `SELECT p.name AS "Bowler Name",
       p.country AS "Country",
       p.total_wickets AS "Total Wickets",
       p.bowling_average AS "Bowling Average",
       p.economy_rate AS "Economy Rate",
       p.matches_played AS "Matches Played",
       CASE
           WHEN p.economy_rate <= 4.0 THEN 'Economical'
           WHEN p.economy_rate <= 5.5 THEN 'Moderate'
           ELSE 'Expensive'
       END AS "Economy Classification"
FROM players p
WHERE p.total_wickets > 0 AND p.matches_played >= 10
ORDER BY p.economy_rate ASC
LIMIT 15`,
		},
		{
			ID:          "high-impact-players",
			Title:       "High-Impact Players",
			Description: "Identify players who perform exceptionally in important matches",
			Level:       LevelIntermediate,
			SQL: `SELECT p.name AS "Player Name",
       p.country AS "Country",
       p.batting_average AS "Batting Average",
       p.total_runs AS "Career Runs",
       p.centuries AS "Centuries",
       p.matches_played AS "Matches Played",
       CASE
           WHEN p.batting_average >= 50 AND p.centuries >= 20 THEN 'Match Winner'
           WHEN p.batting_average >= 40 AND p.centuries >= 10 THEN 'Consistent Performer'
           WHEN p.batting_average >= 30 THEN 'Reliable Player'
           ELSE 'Developing Player'
       END AS "Player Category"
FROM players p
WHERE p.batting_average > 25 AND p.matches_played > 30
ORDER BY p.batting_average DESC, p.centuries DESC
LIMIT 20`,
		},
		{
			ID:          "career-progression",
			Title:       "Career Progression Trends",
			Description: "Track player career progression and current form",
			Level:       LevelIntermediate,
			SQL: `SELECT p.name AS "Player Name",
       p.country AS "Country",
       p.strike_rate AS "Strike Rate",
       p.batting_average AS "Career Average",
       p.matches_played AS "Experience (Matches)",
       ROUND(p.total_runs::numeric / p.matches_played, 2) AS "Runs Per Match",
       CASE
           WHEN p.strike_rate >= 90 AND p.batting_average >= 40 THEN 'Elite Form'
           WHEN p.strike_rate >= 80 AND p.batting_average >= 35 THEN 'Excellent Form'
           WHEN p.strike_rate >= 70 AND p.batting_average >= 30 THEN 'Good Form'
           ELSE 'Average Form'
       END AS "Current Form Status"
FROM players p
WHERE p.matches_played >= 20 AND p.total_runs > 0
ORDER BY p.strike_rate DESC, p.batting_average DESC
LIMIT 25`,
		},
		{
			ID:          "toss-impact",
			Title:       "Toss Impact Analysis",
			Description: "Investigate toss winning advantage in cricket matches",
			Level:       LevelAdvanced,
			SQL: `SELECT m.toss_decision AS "Toss Decision",
       COUNT(*) AS "Total Matches with Data",
       SUM(CASE WHEN m.toss_winner = m.winning_team THEN 1 ELSE 0 END) AS "Toss Winner Also Won Match",
       ROUND(
           SUM(CASE WHEN m.toss_winner = m.winning_team THEN 1 ELSE 0 END) * 100.0 / COUNT(*),
           2
       ) AS "Toss Winner Success Rate (%)"
FROM matches m
WHERE m.toss_winner IS NOT NULL
  AND m.winning_team IS NOT NULL
  AND m.toss_decision IS NOT NULL
GROUP BY m.toss_decision
ORDER BY 4 DESC`,
		},
		{
			ID:          "economical-bowlers",
			Title:       "Most Economical Bowlers",
			Description: "Find most economical bowlers in limited-overs cricket with minimum experience",
			Level:       LevelAdvanced,
			SQL: `SELECT p.name AS "Bowler Name",
       p.country AS "Country",
       p.economy_rate AS "Economy Rate",
       p.total_wickets AS "Total Wickets",
       p.bowling_average AS "Bowling Average",
       p.matches_played AS "Matches Played",
       ROUND(p.total_wickets::numeric / p.matches_played, 2) AS "Wickets Per Match"
FROM players p
WHERE p.total_wickets > 20
  AND p.matches_played >= 15
  AND p.economy_rate > 0
ORDER BY p.economy_rate ASC, p.bowling_average ASC
LIMIT 12`,
		},
		{
			ID:          "batting-consistency",
			Title:       "Batting Consistency Analysis",
			Description: "Determine most consistent batsmen by analyzing scoring patterns",
			Level:       LevelAdvanced,
			SQL: `SELECT p.name AS "Player Name",
       p.country AS "Country",
       p.batting_average AS "Career Average",
       p.total_runs AS "Total Runs",
       p.matches_played AS "Matches",
       ROUND(p.total_runs::numeric / p.matches_played, 2) AS "Runs Per Match",
       p.centuries AS "Centuries",
       p.fifties AS "Half Centuries",
       ROUND(
           (p.centuries + p.fifties) * 100.0 / p.matches_played,
           2
       ) AS "Big Score Frequency (%)",
       CASE
           WHEN p.batting_average > 45 AND (p.centuries + p.fifties) * 100.0 / p.matches_played > 30 THEN 'Highly Consistent'
           WHEN p.batting_average > 35 AND (p.centuries + p.fifties) * 100.0 / p.matches_played > 20 THEN 'Consistent'
           WHEN p.batting_average > 25 THEN 'Moderately Consistent'
           ELSE 'Inconsistent'
       END AS "Consistency Rating"
FROM players p
WHERE p.matches_played >= 30 AND p.total_runs > 0
ORDER BY p.batting_average DESC, 9 DESC
LIMIT 20`,
		},
		{
			ID:          "format-versatility",
			Title:       "Comprehensive Player Format Analysis",
			Description: "Analyze players who have excelled across multiple cricket formats",
			Level:       LevelAdvanced,
			SQL: `SELECT p.name AS "Player Name",
       p.country AS "Country",
       p.playing_role AS "Primary Role",
       p.matches_played AS "Total International Matches",
       p.total_runs AS "Career Runs",
       p.batting_average AS "Batting Average",
       p.total_wickets AS "Career Wickets",
       p.bowling_average AS "Bowling Average",
       CASE
           WHEN p.matches_played >= 200 AND p.batting_average >= 40 THEN 'Legend Status'
           WHEN p.matches_played >= 100 AND p.batting_average >= 35 THEN 'Veteran Player'
           WHEN p.matches_played >= 50 AND p.batting_average >= 30 THEN 'Established Player'
           WHEN p.matches_played >= 20 AND p.batting_average >= 25 THEN 'Developing Player'
           ELSE 'Emerging Talent'
       END AS "Career Status"
FROM players p
WHERE p.matches_played >= 20
ORDER BY p.matches_played DESC, p.batting_average DESC
LIMIT 25`,
		},
		{
			ID:          "performance-ranking",
			Title:       "Weighted Performance Ranking System",
			Description: "Create comprehensive performance ranking combining batting, bowling, and fielding",
			Level:       LevelAdvanced,
			SQL: `SELECT p.name AS "Player Name",
       p.country AS "Country",
       p.playing_role AS "Role",
       ROUND(
           (p.total_runs * 0.01) +
           (p.batting_average * 0.5) +
           (p.strike_rate * 0.3)
       , 2) AS "Batting Score",
       ROUND(
           (p.total_wickets * 2) +
           (GREATEST(0, 50 - COALESCE(p.bowling_average, 50)) * 0.5) +
           (GREATEST(0, 6 - COALESCE(p.economy_rate, 6)) * 2)
       , 2) AS "Bowling Score",
       ROUND(
           (p.total_runs * 0.01) +
           (p.batting_average * 0.5) +
           (p.strike_rate * 0.3) +
           (p.total_wickets * 2) +
           (GREATEST(0, 50 - COALESCE(p.bowling_average, 50)) * 0.5) +
           (GREATEST(0, 6 - COALESCE(p.economy_rate, 6)) * 2)
       , 2) AS "Overall Performance Score"
FROM players p
WHERE p.matches_played >= 20
ORDER BY 6 DESC
LIMIT 20`,
		},
		{
			ID:          "head-to-head",
			Title:       "Head-to-Head Team Analysis",
			Description: "Build comprehensive head-to-head analysis between cricket teams",
			Level:       LevelAdvanced,
			SQL: `SELECT t1.team_name || ' vs ' || t2.team_name AS "Head-to-Head Matchup",
       COUNT(*) AS "Total Matches Played",
       SUM(CASE WHEN m.winning_team = t1.team_name THEN 1 ELSE 0 END) AS "Team 1 Victories",
       SUM(CASE WHEN m.winning_team = t2.team_name THEN 1 ELSE 0 END) AS "Team 2 Victories",
       ROUND(
           SUM(CASE WHEN m.winning_team = t1.team_name THEN 1 ELSE 0 END) * 100.0 / COUNT(*),
           1
       ) AS "Team 1 Win Percentage",
       ROUND(
           SUM(CASE WHEN m.winning_team = t2.team_name THEN 1 ELSE 0 END) * 100.0 / COUNT(*),
           1
       ) AS "Team 2 Win Percentage"
FROM matches m
JOIN teams t1 ON m.team1_id = t1.team_id
JOIN teams t2 ON m.team2_id = t2.team_id
WHERE m.winning_team IS NOT NULL
GROUP BY t1.team_name, t2.team_name
HAVING COUNT(*) >= 3
ORDER BY COUNT(*) DESC`,
		},
		{
			ID:          "form-momentum",
			Title:       "Current Form and Momentum Analysis",
			Description: "Analyze recent player form and performance momentum",
			Level:       LevelAdvanced,
			SQL: `SELECT p.name AS "Player Name",
       p.country AS "Country",
       p.total_runs AS "Career Runs",
       p.batting_average AS "Career Average",
       p.strike_rate AS "Strike Rate",
       p.centuries AS "Career Hundreds",
       p.matches_played AS "Total Matches",
       CASE
           WHEN p.batting_average >= 50 AND p.strike_rate >= 85 THEN 'Excellent Current Form'
           WHEN p.batting_average >= 40 AND p.strike_rate >= 75 THEN 'Good Current Form'
           WHEN p.batting_average >= 30 AND p.strike_rate >= 65 THEN 'Average Current Form'
           ELSE 'Below Par Form'
       END AS "Form Assessment",
       CASE
           WHEN p.batting_average > 45 AND p.strike_rate > 85 THEN 'Peak Performance'
           WHEN p.batting_average BETWEEN 35 AND 45 THEN 'Stable Performance'
           ELSE 'Declining Performance'
       END AS "Career Trajectory"
FROM players p
WHERE p.matches_played >= 15 AND p.total_runs > 0
ORDER BY p.batting_average DESC, p.strike_rate DESC
LIMIT 25`,
		},
		{
			ID:          "elite-partnerships",
			Title:       "Elite Batting Partnership Matrix",
			Description: "Study most successful batting partnerships with comprehensive metrics",
			Level:       LevelAdvanced,
			SQL: `SELECT p1.name || ' & ' || p2.name AS "Elite Partnership",
       p1.country AS "Team Country",
       p1.playing_role || ' + ' || p2.playing_role AS "Role Combination",
       (p1.total_runs + p2.total_runs) AS "Combined Career Runs",
       ROUND((p1.batting_average + p2.batting_average) / 2, 2) AS "Combined Batting Average",
       (p1.centuries + p2.centuries) AS "Combined Centuries",
       (p1.fifties + p2.fifties) AS "Combined Half-Centuries",
       ROUND(
           ((p1.centuries + p2.centuries) + (p1.fifties + p2.fifties)) * 100.0 /
           (p1.matches_played + p2.matches_played),
           2
       ) AS "Partnership Success Rate (%)",
       CASE
           WHEN (p1.total_runs + p2.total_runs) > 20000 AND (p1.batting_average + p2.batting_average) / 2 > 40 THEN 'Legendary Partnership'
           WHEN (p1.total_runs + p2.total_runs) > 15000 AND (p1.batting_average + p2.batting_average) / 2 > 35 THEN 'Elite Partnership'
           WHEN (p1.total_runs + p2.total_runs) > 10000 THEN 'Strong Partnership'
           ELSE 'Good Partnership'
       END AS "Partnership Grade"
FROM players p1
JOIN players p2 ON p1.country = p2.country AND p1.player_id < p2.player_id
WHERE p1.total_runs > 5000 AND p2.total_runs > 5000
  AND p1.matches_played >= 30 AND p2.matches_played >= 30
ORDER BY (p1.total_runs + p2.total_runs) DESC, 4 DESC
LIMIT 15`,
		},
		{
			ID:          "career-legacy",
			Title:       "Career Evolution and Legacy Analysis",
			Description: "Comprehensive analysis of player career evolution and future trajectory",
			Level:       LevelAdvanced,
			SQL: `SELECT p.name AS "Player Name",
       p.country AS "Country",
       p.matches_played AS "Career Span (Matches)",
       p.total_runs AS "Career Runs",
       p.batting_average AS "Career Average",
       p.centuries AS "Career Centuries",
       p.total_wickets AS "Career Wickets",
       CASE
           WHEN p.matches_played >= 250 AND p.batting_average >= 45 THEN 'Cricket Legend'
           WHEN p.matches_played >= 150 AND p.batting_average >= 40 THEN 'Cricket Icon'
           WHEN p.matches_played >= 100 AND p.batting_average >= 35 THEN 'Veteran Star'
           WHEN p.matches_played >= 50 AND p.batting_average >= 30 THEN 'Established Professional'
           WHEN p.matches_played >= 20 AND p.batting_average >= 25 THEN 'Developing Talent'
           ELSE 'Emerging Player'
       END AS "Career Legacy Status",
       CASE
           WHEN p.batting_average > 45 AND p.strike_rate > 80 THEN 'Career Peak - Ascending'
           WHEN p.batting_average BETWEEN 35 AND 45 AND p.strike_rate > 70 THEN 'Career Prime - Stable'
           WHEN p.batting_average BETWEEN 25 AND 35 THEN 'Career Plateau - Maintaining'
           ELSE 'Career Challenge - Rebuilding'
       END AS "Current Career Phase",
       CASE
           WHEN p.matches_played < 100 AND p.batting_average > 40 THEN 'High Future Potential'
           WHEN p.matches_played < 50 AND p.batting_average > 35 THEN 'Strong Future Prospects'
           WHEN p.matches_played < 30 AND p.batting_average > 25 THEN 'Developing Future Star'
           ELSE 'Established Career Track'
       END AS "Future Trajectory"
FROM players p
WHERE p.total_runs > 0 AND p.matches_played >= 10
ORDER BY p.matches_played DESC, p.batting_average DESC, p.total_runs DESC
LIMIT 30`,
		},
	}
}

// CatalogByID returns the catalog keyed by query id.
func CatalogByID() map[string]Query {
	queries := Catalog()
	out := make(map[string]Query, len(queries))
	for _, q := range queries {
		out[q.ID] = q
	}
	return out
}
