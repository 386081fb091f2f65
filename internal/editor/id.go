package editor

import "github.com/google/uuid"

// newRecipeID returns a fresh, unique recipe ID.
func newRecipeID() string {
	return "r-" + uuid.NewString()
}
