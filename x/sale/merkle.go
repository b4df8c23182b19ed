package sale

import (
	"bytes"
	"crypto/sha256"
)

// leafHash returns the merkle tree leaf of an allowlist member.
func leafHash(member []byte) []byte {
	h := sha256.Sum256(member)
	return h[:]
}

// verifyProof checks that member belongs to the allowlist committed to by
// root. Proof is the list of sibling hashes on the path from the member
// leaf to the root, ordered leaf first. Each pair of nodes is hashed in
// lexicographical order so the proof carries no position information. An
// empty proof is valid only for a tree of a single leaf.
func verifyProof(root []byte, member []byte, proof [][]byte) bool {
	if len(root) != sha256.Size {
		return false
	}
	node := leafHash(member)
	for _, sibling := range proof {
		if len(sibling) != sha256.Size {
			return false
		}
		node = hashPair(node, sibling)
	}
	return bytes.Equal(node, root)
}

// hashPair combines two merkle tree nodes, smaller one first.
func hashPair(a, b []byte) []byte {
	if bytes.Compare(a, b) > 0 {
		a, b = b, a
	}
	h := sha256.New()
	h.Write(a)
	h.Write(b)
	return h.Sum(nil)
}
