package practice

import prac "github.com/abhisek/mathdrill/internal/practice"

// advanceMsg fires once the auto-advance delay after a correct answer elapses.
type advanceMsg struct {
	Ticket prac.Ticket
}
