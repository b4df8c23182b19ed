package sale

import "testing"

func TestVerifyProofSingleLeaf(t *testing.T) {
	member := []byte("the-only-member")
	if !verifyProof(leafHash(member), member, nil) {
		t.Fatal("single leaf tree must verify with an empty proof")
	}
}

func TestVerifyProofTwoLeaves(t *testing.T) {
	alice := []byte("alice")
	bob := []byte("bob")
	root := hashPair(leafHash(alice), leafHash(bob))

	if !verifyProof(root, alice, [][]byte{leafHash(bob)}) {
		t.Fatal("alice proof must verify")
	}
	if !verifyProof(root, bob, [][]byte{leafHash(alice)}) {
		t.Fatal("bob proof must verify")
	}
	if verifyProof(root, []byte("mallory"), [][]byte{leafHash(bob)}) {
		t.Fatal("mallory is not in the tree")
	}
}

func TestVerifyProofFourLeaves(t *testing.T) {
	members := [][]byte{
		[]byte("member-a"),
		[]byte("member-b"),
		[]byte("member-c"),
		[]byte("member-d"),
	}
	leaves := make([][]byte, len(members))
	for i, m := range members {
		leaves[i] = leafHash(m)
	}
	nab := hashPair(leaves[0], leaves[1])
	ncd := hashPair(leaves[2], leaves[3])
	root := hashPair(nab, ncd)

	proofs := [][][]byte{
		{leaves[1], ncd},
		{leaves[0], ncd},
		{leaves[3], nab},
		{leaves[2], nab},
	}
	for i, m := range members {
		if !verifyProof(root, m, proofs[i]) {
			t.Fatalf("member %d proof must verify", i)
		}
	}

	// Siblings must be ordered from the leaf up.
	if verifyProof(root, members[0], [][]byte{ncd, leaves[1]}) {
		t.Fatal("shuffled proof must not verify")
	}
	// A valid proof belongs to a single member only.
	if verifyProof(root, members[1], proofs[0]) {
		t.Fatal("proof of another member must not verify")
	}
}

func TestVerifyProofRejectsMalformedInput(t *testing.T) {
	member := []byte("member")
	sibling := leafHash([]byte("sibling"))
	root := hashPair(leafHash(member), sibling)

	cases := map[string]struct {
		Root   []byte
		Member []byte
		Proof  [][]byte
	}{
		"unset root": {
			Root:   nil,
			Member: member,
			Proof:  [][]byte{sibling},
		},
		"truncated root": {
			Root:   root[:16],
			Member: member,
			Proof:  [][]byte{sibling},
		},
		"truncated sibling": {
			Root:   root,
			Member: member,
			Proof:  [][]byte{sibling[:8]},
		},
		"empty proof for a two leaf tree": {
			Root:   root,
			Member: member,
			Proof:  nil,
		},
		"raw member instead of a leaf hash": {
			Root:   hashPair(member, sibling),
			Member: member,
			Proof:  [][]byte{sibling},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			if verifyProof(tc.Root, tc.Member, tc.Proof) {
				t.Fatal("proof must not verify")
			}
		})
	}
}
