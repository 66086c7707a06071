package catalog

// Raw wire types for the catalog service's JSON responses.

// pagedResponse is the envelope shared by every listing and search endpoint
type pagedResponse struct {
	Page         int         `json:"page"`
	Results      []resultDTO `json:"results"`
	TotalPages   int         `json:"total_pages"`
	TotalResults int         `json:"total_results"`
}

// resultDTO is the union of movie and show payload fields. Movies carry
// "title"/"release_date", shows carry "name"/"first_air_date"; multi-search
// results additionally carry "media_type".
type resultDTO struct {
	ID           int     `json:"id"`
	MediaType    string  `json:"media_type"`
	Title        string  `json:"title"`
	Name         string  `json:"name"`
	Overview     string  `json:"overview"`
	PosterPath   string  `json:"poster_path"`
	BackdropPath string  `json:"backdrop_path"`
	ReleaseDate  string  `json:"release_date"`
	FirstAirDate string  `json:"first_air_date"`
	VoteAverage  float64 `json:"vote_average"`
	VoteCount    int     `json:"vote_count"`
	Popularity   float64 `json:"popularity"`
	Language     string  `json:"original_language"`
	GenreIDs     []int   `json:"genre_ids"`
}

// statusResponse is the error body the service returns on non-200 statuses
type statusResponse struct {
	StatusCode    int    `json:"status_code"`
	StatusMessage string `json:"status_message"`
}
