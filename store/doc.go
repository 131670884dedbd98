// Package store keeps the frames of a time-lapse extraction in a badger
// key-value database, so long sequences need not stay in memory and partial
// runs survive restarts.
//
// Frames are msgpack records under "frame/<index>" with big-endian indices,
// so iteration returns them in frame order. The image name and parameter
// headers live under "meta". An empty path opens an in-memory database.
package store
