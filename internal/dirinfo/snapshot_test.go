package dirinfo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotAccessorsReturnCopies(t *testing.T) {
	snapshot := mustWalk(t, scenarioTree(t))

	files := snapshot.Files()
	require.NotEmpty(t, files)

	original := files[0]
	files[0] = Entry{Name: "tampered"}

	assert.Equal(t, original, snapshot.Files()[0])

	entries := snapshot.Entries()
	entries[0] = Entry{Name: "tampered"}
	assert.NotEqual(t, "tampered", snapshot.Entries()[0].Name)
}

func TestSubsetsPreserveVisitOrder(t *testing.T) {
	snapshot := mustWalk(t, scenarioTree(t))

	// Each subset must list its entries in the same relative order as the
	// full sequence.
	var filesInOrder []string

	for _, entry := range snapshot.Entries() {
		if entry.Kind == KindFile {
			filesInOrder = append(filesInOrder, entry.Path)
		}
	}

	subset := make([]string, 0, len(snapshot.Files()))
	for _, entry := range snapshot.Files() {
		subset = append(subset, entry.Path)
	}

	assert.Equal(t, filesInOrder, subset)
}

func TestSubsetsPartitionEntries(t *testing.T) {
	snapshot := newSnapshot("root", []Entry{
		{Kind: KindFile, Name: "f1"},
		{Kind: KindDirectory, Name: "d1"},
		{Kind: KindSymlink, Name: "s1"},
		{Kind: KindFile, Name: "f2"},
	}, nil)

	assert.Equal(t, 2, snapshot.FileCount())
	assert.Equal(t, 1, snapshot.DirectoryCount())
	assert.Equal(t, 1, snapshot.SymlinkCount())
	assert.Len(t, snapshot.Entries(),
		snapshot.FileCount()+snapshot.DirectoryCount()+snapshot.SymlinkCount())
}

func TestByKind(t *testing.T) {
	snapshot := newSnapshot("root", []Entry{{Kind: KindFile, Name: "f"}}, nil)

	assert.Len(t, snapshot.byKind(KindFile), 1)
	assert.Empty(t, snapshot.byKind(KindDirectory))
	assert.Empty(t, snapshot.byKind(KindSymlink))
	assert.Nil(t, snapshot.byKind(Kind(99)))
}
