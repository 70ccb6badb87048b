// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2021 The JaxNetwork developers
// Copyright (c) 2024 The PawCoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chainhash

// HashMerkleBranches takes two hashes, treated as the left and right tree
// nodes, and returns the hash of their concatenation.
func HashMerkleBranches(left *Hash, right *Hash) *Hash {
	// Concatenate the left and right nodes.
	var h [HashSize * 2]byte
	copy(h[:HashSize], left[:])
	copy(h[HashSize:], right[:])

	newHash := DoubleHashH(h[:])
	return &newHash
}

// MerkleTreeRoot computes the root of the merkle tree built over hashes.
// When a level has an odd number of nodes the last node is paired with
// itself.  The root of a single leaf is the leaf; the root of no leaves is
// the zero hash.
func MerkleTreeRoot(hashes []Hash) Hash {
	if len(hashes) == 0 {
		return ZeroHash
	}

	level := make([]Hash, len(hashes))
	copy(level, hashes)

	for len(level) > 1 {
		next := make([]Hash, 0, (len(level)+1)/2)
		for i := 0; i < len(level); i += 2 {
			right := &level[i]
			if i+1 < len(level) {
				right = &level[i+1]
			}
			next = append(next, *HashMerkleBranches(&level[i], right))
		}
		level = next
	}

	return level[0]
}

// BuildMerkleTreeProof returns the sibling hashes on the path from the first
// leaf to the root, ordered from the bottom of the tree.
func BuildMerkleTreeProof(hashes []Hash) []Hash {
	proof := make([]Hash, 0)
	if len(hashes) < 2 {
		return proof
	}

	level := make([]Hash, len(hashes))
	copy(level, hashes)

	for len(level) > 1 {
		proof = append(proof, level[1])

		next := make([]Hash, 0, (len(level)+1)/2)
		for i := 0; i < len(level); i += 2 {
			right := &level[i]
			if i+1 < len(level) {
				right = &level[i+1]
			}
			next = append(next, *HashMerkleBranches(&level[i], right))
		}
		level = next
	}

	return proof
}

// ValidateMerkleTreeProof folds proof into the first leaf and reports whether
// the result equals root.
func ValidateMerkleTreeProof(first Hash, proof []Hash, root Hash) bool {
	acc := first
	for i := range proof {
		acc = *HashMerkleBranches(&acc, &proof[i])
	}
	return acc == root
}
