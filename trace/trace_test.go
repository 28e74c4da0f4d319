package trace

import (
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

func TestFileName(t *testing.T) {
	require.Equal(t, "gameTrace-true-5-100.txt", FileName(true, 5*time.Second, 100))
	require.Equal(t, "gameTrace-false-30-12.txt", FileName(false, 30*time.Second, 12))
}

func TestFileSinkWrites(t *testing.T) {
	fs := afero.NewMemMapFs()
	sink, err := NewFileSink(fs, "gameTrace-true-5-100.txt")
	require.NoError(t, err)

	sink.WriteString("Next player: Attacker\n")
	sink.WriteString("aV9 moved from C4 to B4\n")
	require.NoError(t, sink.Close())

	content, err := afero.ReadFile(fs, "gameTrace-true-5-100.txt")
	require.NoError(t, err)
	require.Equal(t, "Next player: Attacker\naV9 moved from C4 to B4\n", string(content))
}

func TestFileSinkTruncatesOldTranscript(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "trace.txt", []byte("stale transcript"), 0o644))

	sink, err := NewFileSink(fs, "trace.txt")
	require.NoError(t, err)
	sink.WriteString("fresh")
	require.NoError(t, sink.Close())

	content, err := afero.ReadFile(fs, "trace.txt")
	require.NoError(t, err)
	require.Equal(t, "fresh", string(content))
}

func TestNopSink(t *testing.T) {
	var sink Sink = Nop{}
	sink.WriteString("dropped")
	require.NoError(t, sink.Close())
}
