package constants

// Minimum terminal size that fits the border, the starting creature and the score line
const (
	MinWidth  = 20
	MinHeight = 10
)

// Playfield layout relative to the terminal height H:
// row 0 top border, rows 1..H-3 playable, row H-2 bottom border, row H-1 score line
const (
	TopBorderRow      = 0
	BottomBorderInset = 2
	ScoreLineInset    = 1
)

// Starting creature
const (
	StartHeadX     = 7
	StartHeadY     = 5
	StartBodyCount = 3
)

// InitialFruitCount is how many fruits are placed on every field reset
const InitialFruitCount = 5

// Fruit placement retry budget after the first random miss
const FruitPlacementRetries = 10

// ScorePerSegment is the score awarded for each segment grown beyond the start
const ScorePerSegment = 10

// Ledger limits
const (
	LedgerCapacity  = 10
	LedgerNameLimit = 8
	LedgerVersion   = 1
	LedgerFileName  = "wurm-highscores.yaml"
	LedgerAnonName  = "anon"
)

// Overlay text
const (
	TextGameOver    = "-=[ GAME OVER ]=-"
	TextWin         = "-=[ YOU BEAT THE GAME ]=-"
	TextPaused      = "Game is paused"
	TextPressAnyKey = "press any key to continue"
	TextHighscores  = "Highscores"
	TextNamePrompt  = "New highscore! Name:"
	ScoreFormat     = "[Score: %d]"
)
