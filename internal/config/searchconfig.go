package config

// searchConfiguration holds the tunables for the pieces of search and
// evaluation that are actually implemented; knobs for techniques out of
// scope for this engine (opening books, pondering, SEE, killer moves,
// IID, LMR) are not modeled here since there is nothing to tune.
type searchConfiguration struct {
	UseQuiescence bool

	UseTT  bool
	TTSize int // megabytes

	UseNullMove    bool
	NullMoveMinDepth int
	NullMoveReduction int

	// UseMvvLva orders captures by most-valuable-victim/least-valuable-
	// attacker ahead of quiet moves. Disabling it falls back to plain
	// generation order (with the TT move still searched first).
	UseMvvLva bool

	// PollInterval is the node count between deadline checks during
	// iterative deepening; time.Now() is too expensive to call every node.
	PollInterval int

	// EndgameMaterialThreshold is the non-king material sum (in
	// centipawns, both sides combined) below which evaluation switches
	// to the endgame piece-square tables.
	EndgameMaterialThreshold int

	// DefaultMovetimeMs is the time budget handed to Go when the
	// driver does not supply one of its own.
	DefaultMovetimeMs int
}

func init() {
	Settings.Search.UseQuiescence = true

	Settings.Search.UseTT = true
	Settings.Search.TTSize = 64

	Settings.Search.UseNullMove = true
	Settings.Search.NullMoveMinDepth = 3
	Settings.Search.NullMoveReduction = 2

	Settings.Search.UseMvvLva = true
	Settings.Search.PollInterval = 2048

	Settings.Search.EndgameMaterialThreshold = 2400

	Settings.Search.DefaultMovetimeMs = 1000
}
