package event

type Kind int

const (
	KindUndefined Kind = iota
	KindPrice
	KindStock
)

func (k Kind) String() string {
	return [...]string{
		"KindUndefined",
		"KindPrice",
		"KindStock",
	}[k]
}

// Event is a detected difference between two consecutive fact snapshots of one watch.
// Events are consumed immediately by the notification dispatcher and never persisted.
type Event struct {
	UserId   string
	Url      string
	Kind     Kind
	Title    string
	OldPrice string
	NewPrice string
	OldStock bool
	NewStock bool
}
