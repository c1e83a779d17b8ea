package footballdata

const providerName = "footballdata"

type matchesResponse struct {
	Matches   []matchResponse `json:"matches"`
	ResultSet resultSet       `json:"resultSet"`
}

type matchResponse struct {
	ID          int           `json:"id"`
	UTCDate     string        `json:"utcDate"`
	Status      string        `json:"status"`
	Matchday    int           `json:"matchday"`
	HomeTeam    teamResponse  `json:"homeTeam"`
	AwayTeam    teamResponse  `json:"awayTeam"`
	Score       scoreResponse `json:"score"`
	Competition competition   `json:"competition"`
}

type teamResponse struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	ShortName string `json:"shortName"`
	TLA       string `json:"tla"`
}

type scoreResponse struct {
	FullTime scorePair `json:"fullTime"`
}

type scorePair struct {
	Home *int `json:"home"`
	Away *int `json:"away"`
}

type competition struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

type resultSet struct {
	Count int `json:"count"`
}
