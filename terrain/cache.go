package terrain

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fxamacker/cbor/v2"
	"github.com/klauspost/compress/zstd"
	"github.com/zeebo/xxh3"

	"github.com/lixenwraith/flanker/parameter"
)

// Cache file layout:
//
//	magic   [7]byte  "FLKTERR"
//	version uint8
//	sum     uint64   xxh3 of body, little endian
//	body    zstd(cbor(Terrain))
const headerSize = len(parameter.TerrainCacheMagic) + 1 + 8

// Encode serialises a terrain into the cache format
func Encode(t *Terrain) ([]byte, error) {
	raw, err := cbor.Marshal(t)
	if err != nil {
		return nil, fmt.Errorf("cbor encode: %w", err)
	}

	enc, err := zstd.NewWriter(nil)
	if err != nil {
		return nil, err
	}
	body := enc.EncodeAll(raw, nil)
	if err := enc.Close(); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.Grow(headerSize + len(body))
	buf.WriteString(parameter.TerrainCacheMagic)
	buf.WriteByte(parameter.TerrainCacheVersion)
	var sum [8]byte
	binary.LittleEndian.PutUint64(sum[:], xxh3.Hash(body))
	buf.Write(sum[:])
	buf.Write(body)
	return buf.Bytes(), nil
}

// Decode parses cache bytes, verifying magic, version and checksum
func Decode(data []byte) (*Terrain, error) {
	if len(data) < headerSize {
		return nil, fmt.Errorf("%w: short file", ErrBadCache)
	}
	magicLen := len(parameter.TerrainCacheMagic)
	if string(data[:magicLen]) != parameter.TerrainCacheMagic {
		return nil, fmt.Errorf("%w: magic", ErrBadCache)
	}
	if v := data[magicLen]; v != parameter.TerrainCacheVersion {
		return nil, fmt.Errorf("%w: version %d", ErrBadCache, v)
	}
	want := binary.LittleEndian.Uint64(data[magicLen+1 : headerSize])
	body := data[headerSize:]
	if got := xxh3.Hash(body); got != want {
		return nil, fmt.Errorf("%w: checksum %016x != %016x", ErrBadCache, got, want)
	}

	dec, err := zstd.NewReader(nil, zstd.WithDecoderConcurrency(1))
	if err != nil {
		return nil, err
	}
	defer dec.Close()

	raw, err := dec.DecodeAll(body, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadCache, err)
	}

	var t Terrain
	if err := cbor.Unmarshal(raw, &t); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadCache, err)
	}
	if !t.valid() {
		return nil, fmt.Errorf("%w: grid %dx%d does not match sample count", ErrBadCache, t.Width, t.Height)
	}
	return &t, nil
}

// WriteCache writes the encoded terrain, creating the parent directory
// The file is written to a temp name and renamed so a crash never leaves a torn cache
func WriteCache(path string, t *Terrain) error {
	data, err := Encode(t)
	if err != nil {
		return assetErr("write", path, err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return assetErr("write", path, err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return assetErr("write", path, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return assetErr("write", path, err)
	}
	return nil
}

// ReadCache loads a cache file
func ReadCache(path string) (*Terrain, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, assetErr("read", path, err)
	}
	t, err := Decode(data)
	if err != nil {
		return nil, assetErr("decode", path, err)
	}
	return t, nil
}
