package driving

import "context"

// LikeService registers likes for documents on behalf of external actors.
type LikeService interface {
	// Like marks id as liked and sends the signal in the background.
	// It reports whether the id was newly liked.
	Like(ctx context.Context, id, query string) bool

	// Liked reports whether id has been liked.
	Liked(id string) bool

	// Wait blocks until all in-flight like calls have finished.
	Wait()
}

// SessionFactory creates independent search sessions.
type SessionFactory func() SearchSession

