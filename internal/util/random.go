package util

import "math/rand"

const keyCharset = "abcdefghijklmnopqrstuvwxyz0123456789"

// GenerateRandomKey produces a lowercase-alphanumeric key with a length
// uniformly chosen in [10,16]. Keys are shared secrets handed out by an
// admin, not security tokens, so math/rand is acceptable here.
func GenerateRandomKey() string {
	length := rand.Intn(7) + 10
	key := make([]byte, length)
	for i := range key {
		key[i] = keyCharset[rand.Intn(len(keyCharset))]
	}
	return string(key)
}
