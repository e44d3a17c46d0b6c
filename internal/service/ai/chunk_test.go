package ai_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/CICEROsandbox/oversetter/internal/service/ai"
)

func TestSplitChunks_ShortTextSingleChunk(t *testing.T) {
	chunks := ai.SplitChunks("Kort tekst.", 4000)
	require.Equal(t, []string{"Kort tekst."}, chunks)
}

func TestSplitChunks_ZeroLimitMeansUnlimited(t *testing.T) {
	long := strings.Repeat("a", 10000)
	chunks := ai.SplitChunks(long, 0)
	require.Equal(t, []string{long}, chunks)
}

func TestSplitChunks_PrefersParagraphBreak(t *testing.T) {
	text := "Første avsnitt her.\n\nAndre avsnitt kommer etterpå og er lengre."
	chunks := ai.SplitChunks(text, 40)
	require.Equal(t, "Første avsnitt her.", chunks[0])
	require.Equal(t, "Andre avsnitt kommer etterpå og er lengre.", strings.Join(chunks[1:], " "))
}

func TestSplitChunks_FallsBackToSentenceEnd(t *testing.T) {
	text := "En setning slutter her. Neste setning fortsetter med flere ord."
	chunks := ai.SplitChunks(text, 30)
	require.Equal(t, "En setning slutter her.", chunks[0])
}

func TestSplitChunks_FallsBackToWordBoundary(t *testing.T) {
	text := "ord en to tre fire fem seks sju åtte ni ti elleve tolv"
	chunks := ai.SplitChunks(text, 20)
	for _, c := range chunks {
		require.LessOrEqual(t, len([]rune(c)), 20)
		require.False(t, strings.HasPrefix(c, " "))
		require.False(t, strings.HasSuffix(c, " "))
	}
	require.Equal(t, strings.Fields(text), strings.Fields(strings.Join(chunks, " ")))
}

func TestSplitChunks_HardCutWithoutWhitespace(t *testing.T) {
	text := strings.Repeat("x", 95)
	chunks := ai.SplitChunks(text, 30)
	require.Equal(t, []string{
		strings.Repeat("x", 30),
		strings.Repeat("x", 30),
		strings.Repeat("x", 30),
		strings.Repeat("x", 5),
	}, chunks)
}

func TestSplitChunks_NoContentLost(t *testing.T) {
	text := "Klimaendringene er her. Havnivået stiger år for år.\n\nIsen smelter raskere enn før. Økosystemene flytter seg."
	chunks := ai.SplitChunks(text, 35)
	require.Greater(t, len(chunks), 1)
	require.Equal(t, strings.Fields(text), strings.Fields(strings.Join(chunks, " ")))
}

func TestSplitChunks_RuneCountNotByteCount(t *testing.T) {
	// Norwegian vowels are two bytes each; the limit counts runes.
	text := strings.Repeat("ø", 50)
	chunks := ai.SplitChunks(text, 25)
	require.Len(t, chunks, 2)
	require.Equal(t, 25, len([]rune(chunks[0])))
}
