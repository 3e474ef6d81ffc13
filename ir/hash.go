package ir

import (
	"encoding/binary"
	"hash/maphash"
)

// hashSeed is shared so hashes are comparable across nodes within a
// process. They are not stable across runs.
var hashSeed = maphash.MakeSeed()

// Hash returns a 64-bit structural hash of the node, consistent with
// Equal: equal nodes hash identically. It panics if n is nil.
func (n *Node) Hash() uint64 {
	if n == nil {
		panic("ir: Hash called on nil node")
	}

	var h maphash.Hash
	h.SetSeed(hashSeed)

	h.WriteByte(byte(n.Type))

	switch n.Type {
	case BoolType:
		if n.Bool {
			h.WriteByte(1)
		} else {
			h.WriteByte(0)
		}
	case VarType:
		h.WriteString(n.Name)
	case NotType, AndType, OrType:
		// Children are kept in canonical order, so combining child
		// hashes in sequence preserves set equality for And/Or.
		var b [8]byte
		for _, v := range n.Values {
			binary.LittleEndian.PutUint64(b[:], v.Hash())
			h.Write(b[:])
		}
	}
	return h.Sum64()
}
