package pkg

const (
	// UNMATCHED marks a left/right vertex that currently has no partner.
	UNMATCHED int32 = -1

	// INF_DIST marks a left vertex not yet reached by the bfs layering.
	INF_DIST int32 = 1 << 30
)

const (
	DEBUG = false
)
