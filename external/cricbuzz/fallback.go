package cricbuzz

// FallbackPayload mirrors the shape of the live provider response so the
// normalizer and everything downstream process it identically to real data.
// A fresh map is built per call; callers may mutate the result freely.
func FallbackPayload() map[string]any {
	return map[string]any{
		"typeMatches": []any{
			map[string]any{
				"matchType": "International",
				"seriesMatches": []any{
					map[string]any{
						"seriesAdWrapper": map[string]any{
							"seriesName": "India vs Australia Test Series 2024",
							"matches": []any{
								map[string]any{
									"matchInfo": map[string]any{
										"matchId":     12345,
										"matchDesc":   "1st Test",
										"matchFormat": "TEST",
										"startDate":   "2024-08-28T09:30:00.000Z",
										"state":       "Live",
										"status":      "Day 1 - India 245/4 (75.0 Ovs)",
										"team1":       map[string]any{"teamName": "India"},
										"team2":       map[string]any{"teamName": "Australia"},
										"venueInfo": map[string]any{
											"ground": "Wankhede Stadium",
											"city":   "Mumbai",
										},
									},
								},
								map[string]any{
									"matchInfo": map[string]any{
										"matchId":     12346,
										"matchDesc":   "2nd Test",
										"matchFormat": "TEST",
										"startDate":   "2024-08-25T09:30:00.000Z",
										"state":       "Complete",
										"status":      "India won by 8 wickets",
										"team1":       map[string]any{"teamName": "India"},
										"team2":       map[string]any{"teamName": "Australia"},
										"venueInfo": map[string]any{
											"ground": "Eden Gardens",
											"city":   "Kolkata",
										},
									},
								},
							},
						},
					},
				},
			},
		},
	}
}
