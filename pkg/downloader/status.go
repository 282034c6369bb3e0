package downloader

// Status tells whether a requested file had to be fetched or was already in
// the repository.
type Status int

const (
	// StatusUnknown is the zero value; no outcome has been recorded.
	StatusUnknown Status = iota
	// StatusFetched means the file was retrieved from the remote backend.
	StatusFetched
	// StatusAlreadyPresent means the repository already held the file and no
	// remote request was made.
	StatusAlreadyPresent
)

func (s Status) String() string {
	switch s {
	case StatusFetched:
		return "fetched"
	case StatusAlreadyPresent:
		return "already present"
	default:
		return "unknown"
	}
}

// Result pairs a file name with the outcome of retrieving it.
type Result struct {
	File   string
	Status Status
}
