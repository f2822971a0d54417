// Package raft is the deliberately inert stand-in for the "aspirational
// Raft replication module" spec.md names as out of scope. It is adapted
// from original_source/raft/src/lib.rs's commented-out Node/Proposal
// scaffold (a kv_pairs map fed by proposals flowing through a raft
// group) down to the one shape that module actually needs to expose: a
// Propose call site on every SET, so the stub is wired into the dispatch
// path rather than left dangling.
package raft

// Replicator is the narrow interface proxy.Dispatch calls into on every
// SET. A real implementation would propose the write through a Raft
// group (as original_source's Node.step/on_ready sketch did) and only
// acknowledge once committed; that consensus layer is out of scope here.
type Replicator interface {
	// Propose records that key was set to value. Implementations that
	// don't need the write acknowledged before replying to the client
	// (such as NullReplicator) may return immediately.
	Propose(key string, value []byte)
}

// NullReplicator is a no-op Replicator used whenever no replication
// backend is configured. It is the default for proxy.Server.
type NullReplicator struct{}

// Propose discards the write; there is no replication group to feed it to.
func (NullReplicator) Propose(string, []byte) {}
