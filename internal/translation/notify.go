package translation

// Level of a Notice.
type Level string

const (
	LevelInfo     Level = "info"
	LevelProgress Level = "progress"
	LevelError    Level = "error"
)

// Notice is a user-facing message emitted while translating. It is the side
// channel for progress and failures; the return value stays a plain Result.
type Notice struct {
	Level Level
	Text  string
}

// Notifier receives notices. Done is called once after every Progress.
type Notifier interface {
	Notify(n Notice)
	Done()
}

// Notices collects notices in order. It is meant for one action at a time.
type Notices struct {
	List []Notice
}

func (c *Notices) Notify(n Notice) {
	c.List = append(c.List, n)
}

func (c *Notices) Done() {}

type discard struct{}

func (discard) Notify(Notice) {}
func (discard) Done()         {}
