package core

import (
	"time"

	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/varint"
)

// Hand-written MUS serializers for the types that cross the storage
// boundary. Timestamps are encoded as microsecond Unix values.

// IDMUS serializes ID values as varint-encoded uint64.
var IDMUS = idMUS{}

type idMUS struct{}

func (idMUS) Marshal(id ID, bs []byte) int {
	return varint.Uint64.Marshal(uint64(id), bs)
}

func (idMUS) Unmarshal(bs []byte) (ID, int, error) {
	v, n, err := varint.Uint64.Unmarshal(bs)
	return ID(v), n, err
}

func (idMUS) Size(id ID) int {
	return varint.Uint64.Size(uint64(id))
}

func (idMUS) Skip(bs []byte) (int, error) {
	return varint.Uint64.Skip(bs)
}

// DocumentMUS serializes Document values field by field in declaration order.
var DocumentMUS = documentMUS{}

type documentMUS struct{}

func (documentMUS) Marshal(doc Document, bs []byte) (n int) {
	n = IDMUS.Marshal(doc.Id, bs)
	n += ord.String.Marshal(doc.Source, bs[n:])
	n += ord.String.Marshal(doc.Label, bs[n:])
	n += varint.Int64.Marshal(int64(doc.Chars), bs[n:])
	n += varint.Int64.Marshal(int64(doc.ChunkStart), bs[n:])
	n += varint.Int64.Marshal(int64(doc.ChunkCount), bs[n:])
	n += varint.Int64.Marshal(doc.IndexedAt.UnixMicro(), bs[n:])
	return n
}

func (documentMUS) Unmarshal(bs []byte) (doc Document, n int, err error) {
	doc.Id, n, err = IDMUS.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	doc.Source, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	doc.Label, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	var v int64
	v, n1, err = varint.Int64.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	doc.Chars = int(v)
	v, n1, err = varint.Int64.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	doc.ChunkStart = int(v)
	v, n1, err = varint.Int64.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	doc.ChunkCount = int(v)
	v, n1, err = varint.Int64.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	doc.IndexedAt = time.UnixMicro(v).UTC()
	return
}

func (documentMUS) Size(doc Document) (size int) {
	size = IDMUS.Size(doc.Id)
	size += ord.String.Size(doc.Source)
	size += ord.String.Size(doc.Label)
	size += varint.Int64.Size(int64(doc.Chars))
	size += varint.Int64.Size(int64(doc.ChunkStart))
	size += varint.Int64.Size(int64(doc.ChunkCount))
	size += varint.Int64.Size(doc.IndexedAt.UnixMicro())
	return size
}
