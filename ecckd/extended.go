package ecckd

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/ModChain/secp256k1"
	"github.com/btcsuite/btcd/btcutil/base58"
)

const (
	// HardenedBit is set in the index of hardened children.
	HardenedBit = uint32(0x80000000)

	// serializedKeyLen is the length of a serialized extended key without
	// its checksum:
	//   version (4) || depth (1) || parent fingerprint (4)) ||
	//   child num (4) || chain code (32) || key data (33)
	serializedKeyLen = 4 + 1 + 4 + 4 + 32 + 33

	// minSeedLen and maxSeedLen bound the length of a master seed.
	minSeedLen = 16
	maxSeedLen = 64
)

type ExtendedKey struct {
	Version     KeyVersion
	Depth       uint8
	Fingerprint [4]byte
	ChildNumber uint32 // ser32(i) for i in xi = xpar/i, with xi the key being serialized. (0x00000000 if master key)
	KeyData     []byte // 32 bytes ser256(k) for private keys, 33 bytes serP(K) for public keys
	ChainCode   []byte // 32 bytes, the chain code
}

// FromBitcoinSeed returns a master node for a bitcoin wallet
func FromBitcoinSeed(seed []byte) (*ExtendedKey, error) {
	return FromSeed(seed, []byte("Bitcoin seed"))
}

// FromSeed returns a master node for the given seed, keyed by masterSecret.
// The seed must be between 128 and 512 bits.
func FromSeed(seed, masterSecret []byte) (*ExtendedKey, error) {
	if len(seed) < minSeedLen || len(seed) > maxSeedLen {
		return nil, ErrInvalidSeed
	}

	key, chainCode, err := hmacCKD(seed, masterSecret)
	if err != nil {
		return nil, ErrInvalidMasterKey
	}

	keyData := key.Bytes()
	res := &ExtendedKey{
		Version:     BitcoinMainnetPrivate,
		Depth:       0,
		Fingerprint: [4]byte{0, 0, 0, 0},
		ChildNumber: 0,
		KeyData:     keyData[:],
		ChainCode:   chainCode,
	}
	return res, nil
}

// FromPublicKey returns a master public node for the given point and chain
// code.
func FromPublicKey(pub secp256k1.Point, chainCode []byte) (*ExtendedKey, error) {
	if pub.IsInfinity() {
		return nil, ErrInvalidKey
	}
	if len(chainCode) != 32 {
		return nil, ErrInvalidChainCode
	}

	res := &ExtendedKey{
		Version:   BitcoinMainnetPublic,
		KeyData:   pub.SerializeCompressed(),
		ChainCode: append([]byte(nil), chainCode...),
	}
	return res, nil
}

func FromString(str string) (*ExtendedKey, error) {
	e := &ExtendedKey{}
	if err := e.UnmarshalBinary(base58.Decode(str)); err != nil {
		return nil, err
	}
	return e, nil
}

func (k *ExtendedKey) IsPrivate() bool {
	return k.Version.IsPrivate()
}

// Child derives extended key at a given index i.
// If parent is private, then derived key is also private. If parent is public, then derived is public.
//
// If i >= HardenedBit, then hardened key is generated.
// You can only generate hardened keys from private parent keys.
// If you try generating hardened key form public parent key, ErrDerivingHardenedFromPublic is returned.
//
// There are four CKD (child key derivation) scenarios:
// 1) Private extended key -> Hardened child private extended key
// 2) Private extended key -> Non-hardened child private extended key
// 3) Public extended key -> Non-hardened child public extended key
// 4) Public extended key -> Hardened child public extended key (INVALID!)
func (k *ExtendedKey) Child(i uint32) (*ExtendedKey, error) {
	child, _, err := k.child(i)
	return child, err
}

// child derives the extended key at index i and also returns the tweak IL
// that was applied to the parent key.
func (k *ExtendedKey) child(i uint32) (*ExtendedKey, secp256k1.ModNScalar, error) {
	var il secp256k1.ModNScalar
	if k.Depth == 0xff {
		return nil, il, ErrMaxDepthExceeded
	}

	// A hardened child may not be created from a public extended key (Case #4).
	isChildHardened := i&HardenedBit == HardenedBit
	if !k.IsPrivate() && isChildHardened {
		return nil, il, ErrDerivingHardenedFromPublic
	}

	parentPub, err := k.pubKeyBytes()
	if err != nil {
		return nil, il, err
	}

	keyLen := 33
	seed := make([]byte, keyLen+4)
	if isChildHardened {
		// Case #1: 0x00 || ser256(parentKey) || ser32(i)
		copy(seed[1:], k.KeyData) // 0x00 || ser256(parentKey)
	} else {
		// Case #2 and #3: serP(parentPubKey) || ser32(i)
		copy(seed, parentPub)
	}
	binary.BigEndian.PutUint32(seed[keyLen:], i)

	il, chainCode, err := hmacCKD(seed, k.ChainCode)
	if err != nil {
		return nil, il, err
	}

	child := &ExtendedKey{
		ChainCode:   chainCode,
		Depth:       k.Depth + 1,
		ChildNumber: i,
	}
	// The fingerprint for the derived child is the first 4 bytes of the
	// parent's key identifier.
	copy(child.Fingerprint[:], rmd160sha256(parentPub))

	if k.IsPrivate() {
		// Case #1 or #2: childKey = parse256(IL) + parentKey
		parentKey, err := k.PrivateScalar()
		if err != nil {
			return nil, il, err
		}
		childKey := il.Add(parentKey)
		if childKey.IsZero() {
			return nil, il, ErrInvalidKey
		}

		// The scalar always serializes to the full 32 bytes, so children
		// of this key hash the same seed as every other implementation.
		keyData := childKey.Bytes()
		child.KeyData = keyData[:]
		child.Version = k.Version
	} else {
		// Case #3: childKey = serP(point(parse256(IL)) + parentKey)
		parentKey, err := k.PublicPoint()
		if err != nil {
			return nil, il, err
		}
		childKey, err := secp256k1.Add(secp256k1.ScalarBaseMult(il), parentKey)
		if err != nil {
			return nil, il, err
		}
		if childKey.IsInfinity() {
			return nil, il, ErrInvalidKey
		}
		child.KeyData = childKey.SerializeCompressed()
		child.Version = k.Version.ToPublic()
	}
	return child, il, nil
}

// Derive returns a derived child key at a given path
func (k *ExtendedKey) Derive(path []uint32) (*ExtendedKey, error) {
	_, extKey, err := k.DeriveWithIL(path)
	return extKey, err
}

// DeriveWithIL returns a derived child key at a given path along with the sum
// of every tweak IL applied on the way, modulo the group order.  For private
// keys the derived key is the parent key plus that sum, and for public keys it
// is the parent point plus the sum times the base point.
func (k *ExtendedKey) DeriveWithIL(path []uint32) (secp256k1.ModNScalar, *ExtendedKey, error) {
	var sum secp256k1.ModNScalar
	extKey := k
	for _, i := range path {
		child, il, err := extKey.child(i)
		if err != nil {
			return sum, nil, fmt.Errorf("%w: index %d: %w",
				ErrDerivingChild, i, err)
		}
		sum = sum.Add(il)
		extKey = child
	}

	return sum, extKey, nil
}

// Public returns a new extended public key from a give extended private key.
// If the input extended key is already public, it will be returned unaltered.
func (k *ExtendedKey) Public() (*ExtendedKey, error) {
	// Already an extended public key.
	if !k.IsPrivate() {
		return k, nil
	}

	// Convert it to an extended public key.  The key for the new extended
	// key will simply be the pubkey of the current extended private key.
	pub, err := k.pubKeyBytes()
	if err != nil {
		return nil, err
	}
	return &ExtendedKey{
		Version:     k.Version.ToPublic(),
		KeyData:     pub,
		ChainCode:   k.ChainCode,
		Fingerprint: k.Fingerprint,
		Depth:       k.Depth,
		ChildNumber: k.ChildNumber,
	}, nil
}

// PrivateScalar returns the private key of a private extended key.
func (k *ExtendedKey) PrivateScalar() (secp256k1.ModNScalar, error) {
	if !k.IsPrivate() {
		return secp256k1.ModNScalar{}, ErrNotPrivate
	}
	if len(k.KeyData) != 32 {
		return secp256k1.ModNScalar{}, ErrInvalidKey
	}
	var b [32]byte
	copy(b[:], k.KeyData)
	key, err := secp256k1.ParseModNScalar(&b)
	if err != nil || key.IsZero() {
		return secp256k1.ModNScalar{}, ErrInvalidKey
	}
	return key, nil
}

// PublicPoint returns the public key of the extended key as a curve point.
func (k *ExtendedKey) PublicPoint() (secp256k1.Point, error) {
	if k.IsPrivate() {
		key, err := k.PrivateScalar()
		if err != nil {
			return secp256k1.Point{}, err
		}
		return secp256k1.ScalarBaseMult(key), nil
	}

	if len(k.KeyData) != secp256k1.PointBytesLenCompressed {
		return secp256k1.Point{}, ErrInvalidKey
	}
	return secp256k1.ParsePoint(k.KeyData)
}

// MarshalBinary encodes the key in standard format that can be base58 encoded for humans
func (k *ExtendedKey) MarshalBinary() ([]byte, error) {
	var childNumBytes [4]byte
	binary.BigEndian.PutUint32(childNumBytes[:], k.ChildNumber)

	// The serialized format is:
	//   version (4) || depth (1) || parent fingerprint (4)) ||
	//   child num (4) || chain code (32) || key data (33) || checksum (4)
	serializedBytes := make([]byte, 0, serializedKeyLen+4)
	serializedBytes = append(serializedBytes, k.Version[:]...)
	serializedBytes = append(serializedBytes, k.Depth)
	serializedBytes = append(serializedBytes, k.Fingerprint[:]...)
	serializedBytes = append(serializedBytes, childNumBytes[:]...)
	serializedBytes = append(serializedBytes, k.ChainCode...)
	if k.IsPrivate() {
		key, err := k.PrivateScalar()
		if err != nil {
			return nil, err
		}
		keyData := key.Bytes()
		serializedBytes = append(serializedBytes, 0x00)
		serializedBytes = append(serializedBytes, keyData[:]...)
	} else {
		pub, err := k.pubKeyBytes()
		if err != nil {
			return nil, err
		}
		serializedBytes = append(serializedBytes, pub...)
	}
	if len(serializedBytes) != serializedKeyLen {
		return nil, ErrInvalidKeyLen
	}

	serializedBytes = append(serializedBytes, checksum(serializedBytes)...)
	return serializedBytes, nil
}

func (k *ExtendedKey) String() string {
	bin, err := k.MarshalBinary()
	if err != nil {
		return ""
	}
	return base58.Encode(bin)
}

// pubKeyBytes returns bytes for the serialized compressed public key associated
// with this extended key.
//
// When the extended key is already a public key, the key is simply returned as
// is since it's already in the correct form.
func (k *ExtendedKey) pubKeyBytes() ([]byte, error) {
	// Just return the key if it's already an extended public key.
	if !k.IsPrivate() {
		return k.KeyData, nil
	}

	pub, err := k.PublicPoint()
	if err != nil {
		return nil, err
	}
	return pub.SerializeCompressed(), nil
}

func (k *ExtendedKey) UnmarshalBinary(data []byte) error {
	if len(data) != serializedKeyLen+4 {
		return ErrInvalidKeyLen
	}

	// The serialized format is:
	//   version (4) || depth (1) || parent fingerprint (4)) ||
	//   child num (4) || chain code (32) || key data (33) || checksum (4)

	// Split the payload and checksum up and ensure the checksum matches.
	payload := data[:len(data)-4]
	if !bytes.Equal(data[len(data)-4:], checksum(payload)) {
		return ErrBadChecksum
	}

	// Deserialize each of the payload fields.
	var version KeyVersion
	copy(version[:], payload[:4])
	if !version.IsKnown() {
		return ErrUnknownVersion
	}
	depth := payload[4]
	var fingerprint [4]byte
	copy(fingerprint[:], payload[5:9])
	childNumber := binary.BigEndian.Uint32(payload[9:13])
	chainCode := append([]byte(nil), payload[13:45]...)
	keyData := append([]byte(nil), payload[45:78]...)

	// The key data is a private key if it starts with 0x00.  Serialized
	// compressed pubkeys either start with 0x02 or 0x03.
	isPrivate := keyData[0] == 0x00
	if isPrivate != version.IsPrivate() {
		return ErrInvalidPrivateFlag
	}

	if isPrivate {
		keyData = keyData[1:]
	}
	key := &ExtendedKey{Version: version, KeyData: keyData}

	// Ensure the private key is within the range of the order of the
	// secp256k1 curve and not zero, or that the public key parses and is
	// actually on the curve.
	if _, err := key.PublicPoint(); err != nil {
		return err
	}

	k.Version = version
	k.KeyData = keyData
	k.ChainCode = chainCode
	k.Fingerprint = fingerprint
	k.Depth = depth
	k.ChildNumber = childNumber
	return nil
}
