// Package random supplies the shuffles used to randomize keypad layouts.
//
// The default Shuffler draws from crypto/rand so that the layout cannot be
// predicted by an observer of the device. Tests inject a seeded source.
package random
