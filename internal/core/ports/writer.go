package ports

import "github.com/harmoniq-labs/setlist/internal/core/domain"

// SetlistWriter exports a setlist for human consumption and returns the
// location it was written to.
type SetlistWriter interface {
	Write(s domain.Setlist) (string, error)
}
