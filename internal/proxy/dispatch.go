package proxy

import (
	"strings"

	"github.com/yametech/celeritas/internal/raft"
	"github.com/yametech/celeritas/pkg/command"
	"github.com/yametech/celeritas/pkg/resp3"
)

// Action mirrors the teacher's redhub.Action: what the connection loop
// should do after a dispatched command returns.
type Action int

const (
	// None leaves the connection open.
	None Action = iota
	// CloseConn closes the connection after writing the reply.
	CloseConn
)

// Dispatch interprets one parsed command, per spec.md §4.F item 3: a
// case-insensitive switch on the operator, grounded on the teacher's
// example/server.go and example/memory_kv/server.go handler switches
// (PING/QUIT/SET/GET/DEL/CONFIG) plus original_source's
// server/src/redis.rs COMMAND case.
func Dispatch(store *Store, replicator raft.Replicator, cmd *command.Command) (resp3.Value, Action) {
	if cmd.Argc() == 0 {
		return resp3.SimpleErr("ERR unknown command"), None
	}
	op, err := cmd.GetStr(0)
	if err != nil {
		return resp3.SimpleErr("ERR invalid command name"), None
	}

	switch strings.ToLower(op) {
	case "ping":
		return resp3.SimpleStr("PONG"), None

	case "quit":
		return resp3.SimpleStr("OK"), CloseConn

	case "set":
		if cmd.Argc() != 3 {
			return wrongArgs(op), None
		}
		key, _ := cmd.GetStr(1)
		val, _ := cmd.GetVec(2)
		store.Set(key, val)
		if replicator != nil {
			replicator.Propose(key, val)
		}
		return resp3.SimpleStr("OK"), None

	case "get":
		if cmd.Argc() != 2 {
			return wrongArgs(op), None
		}
		key, _ := cmd.GetStr(1)
		val, ok := store.Get(key)
		if !ok {
			return resp3.Null(), None
		}
		return resp3.Bulk(val), None

	case "del":
		if cmd.Argc() != 2 {
			return wrongArgs(op), None
		}
		key, _ := cmd.GetStr(1)
		if store.Del(key) {
			return resp3.Int(1), None
		}
		return resp3.Int(0), None

	case "command":
		// Mirrors original_source's server/src/redis.rs COMMAND reply:
		// an array headed by a placeholder subcommand name and arity.
		return resp3.Array(resp3.Bulk([]byte("watch")), resp3.Int(-2)), None

	case "config":
		// Blank-but-well-formed reply so redis-benchmark-style clients
		// that probe CONFIG GET before running are satisfied, per the
		// teacher's example binaries.
		if cmd.Argc() < 3 {
			return resp3.Array(), None
		}
		arg, _ := cmd.GetVec(2)
		return resp3.Array(resp3.Bulk(arg), resp3.BulkString("")), None

	default:
		return resp3.SimpleStr("not supported"), None
	}
}

func wrongArgs(op string) resp3.Value {
	return resp3.SimpleErr("ERR wrong number of arguments for '" + op + "' command")
}
