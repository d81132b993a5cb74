package green

import (
	"encoding/binary"
	"fmt"
	"hash"

	"github.com/ipfs/go-cid"
	"github.com/multiformats/go-multihash"
	"lukechampine.com/blake3"
)

// Fingerprint computes a content hash over t's full kind/offset/text shape
// as a CIDv1/raw/BLAKE3 value. Two trees with the same Fingerprint are
// structurally identical; this gives Scenario E's "two handles reach
// structurally equal pure data" a concrete, ecosystem-grounded assertion
// beyond reflect.DeepEqual, and is otherwise unused by the library itself
// — nothing is ever written to a block store.
func (t Tree) Fingerprint() cid.Cid {
	h := blake3.New(32, nil)
	fingerprintRec(h, t)

	mh, err := multihash.Encode(h.Sum(nil), multihash.BLAKE3)
	if err != nil {
		panic(fmt.Errorf("green: fingerprint multihash: %w", err))
	}
	return cid.NewCidV1(cid.Raw, mh)
}

func fingerprintRec(h hash.Hash, t Tree) {
	writeFPString(h, t.Kind())
	for _, c := range t.data.children {
		if c.kind == KindTree {
			h.Write([]byte{0})
			fingerprintRec(h, c.tree)
		} else {
			h.Write([]byte{1})
			writeFPString(h, c.token.Kind())
			writeFPString(h, c.token.Text())
		}
	}
}

func writeFPString(h hash.Hash, s string) {
	var lenBuf [8]byte
	binary.BigEndian.PutUint64(lenBuf[:], uint64(len(s)))
	h.Write(lenBuf[:])
	h.Write([]byte(s))
}
