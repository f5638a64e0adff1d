package scaffold

import "fmt"

// DestinationExistsError is returned when a destination path is
// already occupied by a file or a directory.
type DestinationExistsError struct {
	// Path is an occupied destination path.
	Path string
}

// Error returns error message with the offending path.
func (e *DestinationExistsError) Error() string {
	return fmt.Sprintf("destination already exists: %s", e.Path)
}
