package form

// Status is the lifecycle position of the form.
type Status int

const (
	StatusIdle Status = iota
	StatusValidating
	StatusSubmitting
	StatusError
	StatusSuccess
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusValidating:
		return "validating"
	case StatusSubmitting:
		return "submitting"
	case StatusError:
		return "error"
	case StatusSuccess:
		return "success"
	default:
		return "unknown"
	}
}

// State is a snapshot of the form used for rendering.
type State struct {
	Status   Status
	Input    string
	Message  string
	ShortURL string
	Copied   bool
}

// Busy reports whether a submission is in progress; input and submit are
// disabled meanwhile.
func (s State) Busy() bool {
	return s.Status == StatusValidating || s.Status == StatusSubmitting
}
