package strfind

// PrefixAccepted returns the length of the longest prefix of text made up
// entirely of bytes found in accepted. Equivalent to libc's strspn.
//
// serial.c's sz_prefix_accepted_serial returns 0 unconditionally — flagged
// by spec.md as unimplemented in the source, not a deliberate contract. This
// gives it the intended strspn semantics.
func PrefixAccepted[B Bytes](text, accepted B) int {
	set := newByteSet(accepted)
	i := 0
	for i < len(text) && set.contains(text[i]) {
		i++
	}
	return i
}

// PrefixRejected returns the length of the longest prefix of text made up
// entirely of bytes not found in rejected. Equivalent to libc's strcspn.
func PrefixRejected[B Bytes](text, rejected B) int {
	set := newByteSet(rejected)
	i := 0
	for i < len(text) && !set.contains(text[i]) {
		i++
	}
	return i
}

// byteSet is a 256-bit membership set packed into four uint64 words, the
// same shape veloz/ascii/ascii_search_kernels.go's indexAnyGo builds inline.
type byteSet [4]uint64

func newByteSet[B Bytes](members B) byteSet {
	var set byteSet
	for i := 0; i < len(members); i++ {
		b := members[i]
		set[b>>6] |= 1 << (b & 63)
	}
	return set
}

func (s byteSet) contains(b byte) bool {
	return s[b>>6]&(1<<(b&63)) != 0
}
