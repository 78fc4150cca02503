// Package board builds snakes-and-ladders Markov chains.
//
// Every cell of the board is a state. A cell holding the foot of a ladder or the
// head of a snake has a single forced transition to its destination; any other
// cell moves forward by one die roll, so it has one transition per face that
// stays on the board. The last cell is terminal.
package board
