package identicon

import "crypto/md5"

// DigestFunc maps input bytes to a fixed-length digest. The digest is a
// deterministic randomness source, not an integrity check, so MD5 is
// acceptable here. Implementations must be pure: the same input must
// always produce the same digest.
type DigestFunc func(data []byte) [DigestSize]byte

// MD5 is the default digest function.
func MD5(data []byte) [DigestSize]byte {
	return md5.Sum(data)
}
