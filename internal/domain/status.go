package domain

// Badge is the display metadata for a status code: a short label, a terminal
// glyph, and a color name understood by the presenter.
type Badge struct {
	Label string
	Icon  string
	Color string
}

// pendingBadge is the neutral fallback for any code not in the table.
var pendingBadge = Badge{Label: "Pending", Icon: "?", Color: "yellow"}

var statusBadges = map[string]Badge{
	"Paid":         {Label: "Paid", Icon: "+", Color: "green"},
	"Fee_Paid":     {Label: "Fee Paid", Icon: "+", Color: "green"},
	"Cleared":      {Label: "Cleared", Icon: "+", Color: "green"},
	"Not_Due":      {Label: "Not Due", Icon: "-", Color: "gray"},
	"Pending":      {Label: "Pending", Icon: "?", Color: "yellow"},
	"Fee_Pending":  {Label: "Fee Pending", Icon: "?", Color: "yellow"},
	"Exam_Pending": {Label: "Exam Pending", Icon: "?", Color: "yellow"},
	"Partial":      {Label: "Partial", Icon: "~", Color: "yellow"},
	"Due":          {Label: "Due", Icon: "!", Color: "red"},
	"Overdue":      {Label: "Overdue", Icon: "!", Color: "red"},
	"Back_Pending": {Label: "Back Pending", Icon: "!", Color: "red"},

	"Pass": {Label: "Pass", Icon: "+", Color: "green"},
	"Fail": {Label: "Fail", Icon: "x", Color: "red"},

	"Active":    {Label: "Active", Icon: "+", Color: "green"},
	"Completed": {Label: "Completed", Icon: "+", Color: "cyan"},
	"Inactive":  {Label: "Inactive", Icon: "-", Color: "gray"},
	"Dropped":   {Label: "Dropped", Icon: "x", Color: "red"},
	"Suspended": {Label: "Suspended", Icon: "!", Color: "red"},
}

// Classify maps a status code to its display badge. It is total: unrecognized
// codes get the neutral pending badge rather than an error, so a new or
// misspelled server-side code can never break rendering.
func Classify(code string) Badge {
	if b, ok := statusBadges[code]; ok {
		return b
	}
	return pendingBadge
}
