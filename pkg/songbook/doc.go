/*
Package songbook stores a rendered song in a SQLite database and replays it.

Verses are keyed by their bottle count, so recording the same song any number
of times leaves exactly one row per verse. Replay writes the stored verses in
the order they are sung, byte for byte in the same format as the song package.
*/
package songbook
