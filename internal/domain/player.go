package domain

import "time"

// Player is the Player Directory's view of a player. The directory owns
// the data; only the fields the transfer pipeline needs are carried here.
type Player struct {
	ID          int64
	UPIN        int64
	Name        string
	DateOfBirth time.Time
}
