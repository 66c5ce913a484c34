/*
Package song renders the lyrics of "99 Bottles of Beer".

A verse is rendered from one of three fixed text templates, chosen by the
number of bottles left on the wall: the general hand-off verse, the last
bottle, and the empty wall that sends everyone back to the store. The
Generator walks the count from Start down to zero and writes every verse,
each followed by a blank line, to an io.Writer.

The output is fully deterministic: rendering the song twice yields the same
bytes.
*/
package song
