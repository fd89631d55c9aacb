package requests

// Dimension selects rows or columns.
type Dimension string

const (
	Rows    Dimension = "ROWS"
	Columns Dimension = "COLUMNS"
)

// MergeType controls how a range is merged.
type MergeType string

const (
	MergeAll     MergeType = "MERGE_ALL"
	MergeColumns MergeType = "MERGE_COLUMNS"
	MergeRows    MergeType = "MERGE_ROWS"
)

// ValueInputOption controls how the remote service interprets written values.
type ValueInputOption string

const (
	// Raw stores values verbatim.
	Raw ValueInputOption = "RAW"
	// UserEntered parses values as if typed into the UI, so formulas and locale
	// formatted numbers are interpreted.
	UserEntered ValueInputOption = "USER_ENTERED"
)

// DefaultFields is the field mask used by format operations when none is given.
const DefaultFields = "userEnteredFormat"
