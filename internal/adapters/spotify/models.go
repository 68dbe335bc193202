package spotify

// Wire types for the subset of the Spotify Web API this adapter consumes.

type artistRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type playlistTrack struct {
	ID      string      `json:"id"`
	Name    string      `json:"name"`
	Artists []artistRef `json:"artists"`
}

// playlistTracksPage is one page of GET /playlists/{id}/tracks. Next carries
// the absolute URL of the following page, or null on the last one.
type playlistTracksPage struct {
	Items []struct {
		Track playlistTrack `json:"track"`
	} `json:"items"`
	Next string `json:"next"`
}

type audioFeatures struct {
	ID               string  `json:"id"`
	Key              int     `json:"key"`
	Mode             int     `json:"mode"`
	Tempo            float64 `json:"tempo"`
	Speechiness      float64 `json:"speechiness"`
	Acousticness     float64 `json:"acousticness"`
	Instrumentalness float64 `json:"instrumentalness"`
	Liveness         float64 `json:"liveness"`
	Valence          float64 `json:"valence"`
	Danceability     float64 `json:"danceability"`
	Energy           float64 `json:"energy"`
}

// audioFeaturesPage is the body of GET /audio-features?ids=... Entries for
// unanalyzable tracks come back as null.
type audioFeaturesPage struct {
	AudioFeatures []*audioFeatures `json:"audio_features"`
}

type artistDetail struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Genres []string `json:"genres"`
}
