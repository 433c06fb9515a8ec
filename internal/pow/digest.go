package pow

import (
	"encoding/binary"
	"encoding/hex"
)

// DeriveDigest builds the work digest for a farming session.
// Layout is BE32(sessionIndex) || BE64(nonce) || BE64(entropy). The identity
// is accepted so callers pass the full challenge, but it does not affect the bytes.
func DeriveDigest(sessionIndex uint32, nonce, entropy uint64, identity string) []byte {
	_ = identity

	digest := make([]byte, DigestSize)
	binary.BigEndian.PutUint32(digest[sessionOffset:], sessionIndex)
	binary.BigEndian.PutUint64(digest[nonceOffset:], nonce)
	binary.BigEndian.PutUint64(digest[entropyOffset:], entropy)
	return digest
}

// CountLeadingZeroRun scores a digest.
// Every leading 0x00 byte is worth 2. The first non-zero byte is worth 1 when
// its high nibble is zero, and scanning stops there.
func CountLeadingZeroRun(digest []byte) uint32 {
	var zeros uint32
	for _, b := range digest {
		if b == 0 {
			zeros += 2
			continue
		}
		if b < 16 {
			zeros++
		}
		break
	}
	return zeros
}

// Verify recomputes the digest and compares its run against the claim
func Verify(sessionIndex uint32, nonce, entropy uint64, identity string, claimed uint32) (uint32, bool) {
	actual := CountLeadingZeroRun(DeriveDigest(sessionIndex, nonce, entropy, identity))
	return actual, actual >= claimed
}

// EncodeDigest renders a digest as lowercase hex
func EncodeDigest(digest []byte) string {
	return hex.EncodeToString(digest)
}
