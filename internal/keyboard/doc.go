// Package keyboard implements the secret entry keyboards: the numeric PIN
// keypad with a randomized digit layout and the four page multi-tap
// passphrase keyboard.
//
// Both keep their input in fixed-capacity buffers. Input beyond capacity is
// rejected and leaves the buffer unchanged.
//
// The multi-tap engine is shared: pressing the same key repeatedly cycles the
// last character through the key's character set until the key changes or
// the pending timeout fires. The timeout is an ordinary timer event matched
// by its exact token.
package keyboard
