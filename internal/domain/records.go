package domain

import "time"

// Durable records owned by the hosted database. The client reads and writes
// them through the admin store and treats validation as the server's job.

// Role is the access level stored on a user profile
type Role string

const (
	RoleUser      Role = "user"
	RoleModerator Role = "moderator"
	RoleAdmin     Role = "admin"
)

// CanAccessAdmin reports whether this role may open the admin panel
func (r Role) CanAccessAdmin() bool {
	return r == RoleAdmin || r == RoleModerator
}

// Profile is a user account row
type Profile struct {
	ID                 string
	Email              string
	FullName           string
	Role               Role
	SubscriptionStatus string
	CreatedAt          time.Time
}

// ContentRecord is a catalog row in the hosted database
type ContentRecord struct {
	ID           string
	Kind         ContentKind
	Title        string
	Overview     string
	PosterPath   string
	BackdropPath string
	ReleaseDate  string
	Runtime      int // minutes
	Status       string
	Rating       float64
	VoteCount    int
	Featured     bool
	VideoURL     string
	CreatedAt    time.Time
}

// Genre is a named genre row with a many-to-many link to content
type Genre struct {
	ID   int
	Name string
}

// Favorite is a user-to-content favorite join row
type Favorite struct {
	UserID    string
	ContentID string
	CreatedAt time.Time
}

// WatchlistEntry is a user-to-content watchlist join row
type WatchlistEntry struct {
	UserID    string
	ContentID string
	CreatedAt time.Time
}

// WatchHistoryEntry records playback progress for one user and content row
type WatchHistoryEntry struct {
	UserID          string
	ContentID       string
	ProgressSeconds int
	WatchedAt       time.Time
}
