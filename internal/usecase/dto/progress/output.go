package progressdto

type LevelOutput struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	MinPoints       float64 `json:"min_points"`
	CashbackPercent float64 `json:"cashback_percent"`
	Color           string  `json:"color"`
	Benefits        string  `json:"benefits"`
}

type PrizeOutput struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	ImageURL    string  `json:"image_url"`
	PointsCost  float64 `json:"points_cost"`
	Quantity    int32   `json:"quantity"`
	Enabled     bool    `json:"enabled"`
}

// UserProgramOutput is one card of the user dashboard: the program
// configuration joined with the caller's progress and resolved tier.
type UserProgramOutput struct {
	ProgramID         string        `json:"id"`
	Title             string        `json:"title"`
	Description       string        `json:"description"`
	FullDescription   string        `json:"full_description"`
	ImageURL          string        `json:"image_url"`
	RequestButtonText string        `json:"request_button_text"`
	MinThreshold      float64       `json:"min_threshold"`
	BonusPoints       float64       `json:"bonus_points"`
	YearlyTotal       float64       `json:"yearly_total"`
	YearlyOrderCount  int32         `json:"yearly_order_count"`
	CurrentYear       int           `json:"current_year"`
	BonusRequested    bool          `json:"bonus_requested"`
	CurrentLevel      *LevelOutput  `json:"current_level"`
	NextLevel         *LevelOutput  `json:"next_level"`
	AmountToNextLevel float64       `json:"amount_to_next_level"`
	Levels            []LevelOutput `json:"levels"`
	Prizes            []PrizeOutput `json:"prizes"`
}

// ProgramUserOutput is one row of the admin issuance queue.
type ProgramUserOutput struct {
	UserID           string  `json:"user_id"`
	BonusPoints      float64 `json:"bonus_points"`
	YearlyTotal      float64 `json:"yearly_total"`
	YearlyOrderCount int32   `json:"yearly_order_count"`
	CurrentYear      int     `json:"current_year"`
	BonusRequested   bool    `json:"bonus_requested"`
}
