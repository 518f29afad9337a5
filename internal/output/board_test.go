package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/notation"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

func TestRenderBoard_Plain(t *testing.T) {
	pos := notation.StartPosition()
	var buf bytes.Buffer
	testutil.AssertNoError(t, RenderBoard(&buf, &pos, false))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	testutil.AssertEqual(t, len(lines), 10)
	testutil.AssertEqual(t, lines[0], filesLine)
	testutil.AssertEqual(t, lines[1], "8  r  n  b  q  k  b  n  r  8")
	testutil.AssertEqual(t, lines[5], "4  .  .  .  .  .  .  .  .  4")
	testutil.AssertEqual(t, lines[8], "1  R  N  B  Q  K  B  N  R  1")
	testutil.AssertEqual(t, lines[9], filesLine)
}

func TestRenderBoard_Colour(t *testing.T) {
	pos := testutil.MustParseFEN(t, "4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	var buf bytes.Buffer
	testutil.AssertNoError(t, RenderBoard(&buf, &pos, true))

	out := buf.String()
	testutil.AssertTrue(t, strings.Contains(out, "\x1b["), "expected ANSI escapes")
	testutil.AssertTrue(t, strings.Contains(out, " K "), "white king")
	testutil.AssertTrue(t, strings.Contains(out, " k "), "black king")
}
