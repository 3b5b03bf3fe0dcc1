package dataset

// UserRecord pinterest_users.csv 的一行，id 为生成器侧的 UUID
type UserRecord struct {
	UserID              string    `csv:"user_id"`
	Username            string    `csv:"username"`
	Email               string    `csv:"email"`
	FirstName           string    `csv:"first_name"`
	LastName            string    `csv:"last_name"`
	Bio                 string    `csv:"bio"`
	Location            string    `csv:"location"`
	FollowersCount      int       `csv:"followers_count"`
	FollowingCount      int       `csv:"following_count"`
	BoardsCount         int       `csv:"boards_count"`
	PinsCount           int       `csv:"pins_count"`
	AccountType         string    `csv:"account_type"`
	CreatedAt           Timestamp `csv:"created_at"`
	LastActive          Timestamp `csv:"last_active"`
	IsVerified          bool      `csv:"is_verified"`
	PreferredCategories List      `csv:"preferred_categories"`
}

// BoardRecord pinterest_boards.csv 的一行
type BoardRecord struct {
	BoardID        string    `csv:"board_id"`
	UserID         string    `csv:"user_id"`
	Title          string    `csv:"title"`
	Description    string    `csv:"description"`
	Category       string    `csv:"category"`
	Subcategory    string    `csv:"subcategory"`
	IsPrivate      bool      `csv:"is_private"`
	PinsCount      int       `csv:"pins_count"`
	FollowersCount int       `csv:"followers_count"`
	CreatedAt      Timestamp `csv:"created_at"`
	UpdatedAt      Timestamp `csv:"updated_at"`
}

// PinRecord pinterest_pins.csv 的一行
type PinRecord struct {
	PinID            string    `csv:"pin_id"`
	BoardID          string    `csv:"board_id"`
	UserID           string    `csv:"user_id"`
	Title            string    `csv:"title"`
	Description      string    `csv:"description"`
	ImageURL         string    `csv:"image_url"`
	SourceURL        string    `csv:"source_url"`
	Category         string    `csv:"category"`
	Subcategory      string    `csv:"subcategory"`
	Width            int       `csv:"width"`
	Height           int       `csv:"height"`
	ColorPalette     List      `csv:"color_palette"`
	SavesCount       int       `csv:"saves_count"`
	LikesCount       int       `csv:"likes_count"`
	CommentsCount    int       `csv:"comments_count"`
	SharesCount      int       `csv:"shares_count"`
	ClicksCount      int       `csv:"clicks_count"`
	ImpressionsCount int       `csv:"impressions_count"`
	TrendingScore    float64   `csv:"trending_score"`
	IsPromoted       bool      `csv:"is_promoted"`
	Tags             List      `csv:"tags"`
	CreatedAt        Timestamp `csv:"created_at"`
	UpdatedAt        Timestamp `csv:"updated_at"`
}

// InteractionRecord pinterest_interactions.csv 的一行
type InteractionRecord struct {
	InteractionID   string    `csv:"interaction_id"`
	UserID          string    `csv:"user_id"`
	PinID           string    `csv:"pin_id"`
	InteractionType string    `csv:"interaction_type"`
	Timestamp       Timestamp `csv:"timestamp"`
	SessionID       string    `csv:"session_id"`
	DeviceType      string    `csv:"device_type"`
	Referrer        string    `csv:"referrer"`
}

// SearchQueryRecord pinterest_searches.csv 的一行
type SearchQueryRecord struct {
	QueryID        string    `csv:"query_id"`
	UserID         string    `csv:"user_id"`
	QueryText      string    `csv:"query_text"`
	Timestamp      Timestamp `csv:"timestamp"`
	ResultsCount   int       `csv:"results_count"`
	ClickedResults int       `csv:"clicked_results"`
	SessionID      string    `csv:"session_id"`
}

// Dataset 一次生成的五类数据
type Dataset struct {
	Users        []UserRecord
	Boards       []BoardRecord
	Pins         []PinRecord
	Interactions []InteractionRecord
	Searches     []SearchQueryRecord
}

// Counts 各实体行数
func (d *Dataset) Counts() map[string]int {
	return map[string]int{
		EntityUsers:        len(d.Users),
		EntityBoards:       len(d.Boards),
		EntityPins:         len(d.Pins),
		EntityInteractions: len(d.Interactions),
		EntitySearches:     len(d.Searches),
	}
}
