package ecckd

import (
	"encoding/hex"
)

// KeyVersion is the four byte prefix of a serialized extended key.  It
// determines both the network and whether the key is private.
type KeyVersion [4]byte

var (
	BitcoinMainnetPublic  = KeyVersion{0x04, 0x88, 0xb2, 0x1e} // xpub
	BitcoinMainnetPrivate = KeyVersion{0x04, 0x88, 0xad, 0xe4} // xprv
	BitcoinTestnetPublic  = KeyVersion{0x04, 0x35, 0x87, 0xcf} // tpub
	BitcoinTestnetPrivate = KeyVersion{0x04, 0x35, 0x83, 0x94} // tprv
)

// IsPrivate returns true if the version is for a private key
func (kv KeyVersion) IsPrivate() bool {
	switch kv {
	case BitcoinMainnetPrivate, BitcoinTestnetPrivate:
		return true
	}
	return false
}

// IsKnown returns true if the version is one of the versions above.
func (kv KeyVersion) IsKnown() bool {
	switch kv {
	case BitcoinMainnetPublic, BitcoinMainnetPrivate,
		BitcoinTestnetPublic, BitcoinTestnetPrivate:
		return true
	}
	return false
}

// ToPublic returns the public version for the same network.  Public versions
// are returned unaltered.
func (kv KeyVersion) ToPublic() KeyVersion {
	switch kv {
	case BitcoinMainnetPrivate:
		return BitcoinMainnetPublic
	case BitcoinTestnetPrivate:
		return BitcoinTestnetPublic
	}
	return kv
}

func (kv KeyVersion) String() string {
	return hex.EncodeToString(kv[:])
}
