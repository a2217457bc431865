package storage

import (
	"testing"
	"time"

	"github.com/poiesic/lexindex/core"
	"github.com/stretchr/testify/require"
)

func TestMarshalUnmarshalID(t *testing.T) {
	id := core.IDFromContent("dataset/kanoon/2002/case.pdf")

	data := MarshalID(id)
	decoded, err := UnmarshalID(data)
	require.NoError(t, err)
	require.Equal(t, id, decoded)
}

func TestMarshalUnmarshalDocument(t *testing.T) {
	doc := &core.Document{
		Id:         core.IDFromContent("dataset/kanoon/2002/case.pdf"),
		Source:     "dataset/kanoon/2002/case.pdf",
		Label:      "2002",
		Chars:      9000,
		ChunkStart: 120,
		ChunkCount: 20,
		IndexedAt:  time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC),
	}

	data := MarshalDocument(doc)
	decoded, err := UnmarshalDocument(data)
	require.NoError(t, err)
	require.Equal(t, doc, decoded)
}

func TestUnmarshalDocument_Truncated(t *testing.T) {
	doc := &core.Document{Source: "a.pdf", IndexedAt: time.Now().UTC()}
	data := MarshalDocument(doc)

	_, err := UnmarshalDocument(data[:1])
	require.Error(t, err)
}
