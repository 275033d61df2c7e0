package programdto

type LevelInput struct {
	Name            string
	MinPoints       float64
	CashbackPercent float64
	Color           string
	Benefits        string
}

type PrizeInput struct {
	Name        string
	Description string
	ImageURL    string
	PointsCost  float64
	Quantity    int32
	Enabled     bool
}

type CreateProgramInput struct {
	Title             string
	Description       string
	FullDescription   string
	ImageURL          string
	RequestButtonText string
	MinThreshold      float64
	MaxAmount         float64
	Enabled           bool
	Levels            []LevelInput
	Prizes            []PrizeInput
}

type UpdateProgramInput struct {
	ID                string
	Title             string
	Description       string
	FullDescription   string
	ImageURL          string
	RequestButtonText string
	MinThreshold      float64
	MaxAmount         float64
	Enabled           bool
	Levels            []LevelInput
	Prizes            []PrizeInput
}
