package core

// LocalID is a dense, internal identifier for an observation within a single
// index. It is strictly 32-bit, allowing for max 4 Billion observations per index.
// Used for all hot-path structures (graph adjacency, bitmap sets, spatial entries).
type LocalID uint32

// MaxLocalID is the maximum possible value for a LocalID.
const MaxLocalID = ^LocalID(0)
