package ai_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/CICEROsandbox/oversetter/internal/service/ai"
)

func TestHTMLToText_ParagraphsSeparated(t *testing.T) {
	got := ai.HTMLToText("<p>Hello world</p><p>Second paragraph</p>")
	require.Equal(t, "Hello world\n\nSecond paragraph", got)
}

func TestHTMLToText_InlineTagsJoined(t *testing.T) {
	got := ai.HTMLToText("Text with <b>bold</b> inline.")
	require.Equal(t, "Text with bold inline.", got)
}

func TestHTMLToText_DropsScriptAndStyle(t *testing.T) {
	got := ai.HTMLToText("<p>Keep</p><script>var x = 1;</script><style>p{}</style>")
	require.Equal(t, "Keep", got)
}

func TestHTMLToText_ListItemsBecomeParagraphs(t *testing.T) {
	got := ai.HTMLToText("<ul><li>En</li><li>To</li></ul>")
	require.Equal(t, "En\n\nTo", got)
}

func TestHTMLToText_PlainText(t *testing.T) {
	require.Equal(t, "Bare tekst", ai.HTMLToText("Bare tekst"))
}

func TestHTMLToText_Empty(t *testing.T) {
	require.Equal(t, "", ai.HTMLToText(""))
}

func TestJoinFragments(t *testing.T) {
	require.Equal(t, "a b c", ai.JoinFragments([]string{"a", "b", "c"}))
	require.Equal(t, "a c", ai.JoinFragments([]string{"a", "", "c"}))
	require.Equal(t, "", ai.JoinFragments(nil))
	require.Equal(t, "single", ai.JoinFragments([]string{"single"}))
}
