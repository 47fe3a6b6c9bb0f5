package ids

import "github.com/segmentio/ksuid"

// New returns a sortable unique ID for locally created records
// (device identity, form sessions).
func New() string {
	return ksuid.New().String()
}
