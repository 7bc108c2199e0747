package parser

// Command represents a top-level line typed at the score table.
type Command struct {
	Start    *StartCmd    `parser:"( @@"`
	Score    *ScoreCmd    `parser:"| @@"`
	Count    *CountCmd    `parser:"| @@"`
	Strike   *StrikeCmd   `parser:"| @@"`
	Straight *StraightCmd `parser:"| @@"`
	Combo    *ComboCmd    `parser:"| @@"`
	Sheet    *SheetCmd    `parser:"| @@"`
	Rank     *RankCmd     `parser:"| @@"`
	Hint     *HintCmd     `parser:"| @@"`
	Reset    *ResetCmd    `parser:"| @@"`
	Help     *HelpCmd     `parser:"| @@ )"`
}

// ActorExpr maps parsing the optional "by: Someone" block
type ActorExpr struct {
	Keyword string `parser:"\"by\" \":\""`
	Name    string `parser:"@(Ident|String)"`
}

// StartCmd seats the players: start with: Anna and: Bert [mode: triple]
type StartCmd struct {
	Keyword string   `parser:"@\"start\""`
	Players []string `parser:"\"with\" \":\" @(Ident|String) ( \"and\" \":\" @(Ident|String) )*"`
	Mode    string   `parser:"( \"mode\" \":\" @(Ident|Int) )?"`
}

// ScoreCmd enters a typed value, or a quoted rule expression, into a cell.
type ScoreCmd struct {
	Keyword string     `parser:"@\"score\""`
	Actor   *ActorExpr `parser:"@@?"`
	Column  int        `parser:"( \"col\" \":\" @Int )?"`
	Row     string     `parser:"\"row\" \":\" @(Ident|Int)"`
	Value   *int       `parser:"\"value\" \":\" ( @Int"`
	Expr    *string    `parser:"| @String )"`
}

// CountCmd is the numeric row shortcut: how many dice show the row's face.
type CountCmd struct {
	Keyword string     `parser:"@\"count\""`
	Actor   *ActorExpr `parser:"@@?"`
	Column  int        `parser:"( \"col\" \":\" @Int )?"`
	Row     string     `parser:"\"row\" \":\" @(Ident|Int)"`
	Dice    int        `parser:"\"dice\" \":\" @Int"`
}

// StrikeCmd crosses out a cell with zero.
type StrikeCmd struct {
	Keyword string     `parser:"@\"strike\""`
	Actor   *ActorExpr `parser:"@@?"`
	Column  int        `parser:"( \"col\" \":\" @Int )?"`
	Row     string     `parser:"\"row\" \":\" @(Ident|Int)"`
}

// StraightCmd is the direct small/large straight toggle.
type StraightCmd struct {
	Keyword string     `parser:"@\"straight\""`
	Actor   *ActorExpr `parser:"@@?"`
	Column  int        `parser:"( \"col\" \":\" @Int )?"`
	Size    string     `parser:"@(\"small\"|\"large\")"`
	Served  bool       `parser:"@\"served\"?"`
}

// ComboCmd declares the faces of a combination and lets the rules price it.
type ComboCmd struct {
	Keyword string     `parser:"@\"combo\""`
	Actor   *ActorExpr `parser:"@@?"`
	Column  int        `parser:"( \"col\" \":\" @Int )?"`
	Row     string     `parser:"\"row\" \":\" @(Ident|Int)"`
	Main    string     `parser:"\"main\" \":\" @(Ident|Int)"`
	Pair    string     `parser:"( \"pair\" \":\" @(Ident|Int) )?"`
	Served  bool       `parser:"@\"served\"?"`
}

// SheetCmd prints the score sheet.
type SheetCmd struct {
	Keyword string `parser:"@\"sheet\""`
}

// RankCmd prints the current standings.
type RankCmd struct {
	Keyword string `parser:"@\"rank\""`
}

// HintCmd explains whose turn it is and what is left to fill.
type HintCmd struct {
	Keyword string `parser:"@\"hint\""`
}

// ResetCmd abandons the table.
type ResetCmd struct {
	Keyword string `parser:"@\"reset\""`
}

// HelpCmd provides usage guidance
type HelpCmd struct {
	Keyword string `parser:"@\"help\""`
	Topic   string `parser:"@Ident?"`
}
