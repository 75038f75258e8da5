package workout

import "context"

type Repository interface {
	Insert(ctx context.Context, memberID int, req LogRequest) (*Entry, error)
	// History returns the member's full log, newest first.
	History(ctx context.Context, memberID int) ([]Entry, error)
	FitnessGoals(ctx context.Context, memberID int) ([]string, error)
}
