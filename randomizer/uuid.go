package randomizer

import "github.com/google/uuid"

// UUID returns a version 4 UUID whose 16 bytes come from the facade, so it is
// reproducible under a fixed seed (unlike uuid.New, which reads crypto/rand).
func (r *Randomizer) UUID() uuid.UUID {
	u, err := uuid.NewRandomFromReader(r)
	if err != nil {
		// Read never fails; keep the zero UUID rather than panic.
		return uuid.Nil
	}

	return u
}
