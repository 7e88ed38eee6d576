package repl

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/danieldeazevedo/shark/session"
)

func TestEvaluateLine_PrintsYellowResult(t *testing.T) {
	var out strings.Builder
	r := NewRepl("", "test", "", "", "", "")
	sess := session.New(&out)

	r.evaluateLine(&out, sess, "1 + 1;")
	assert.Contains(t, out.String(), "2")
}

func TestEvaluateLine_PrintsRedError(t *testing.T) {
	var out strings.Builder
	r := NewRepl("", "test", "", "", "", "")
	sess := session.New(&out)

	r.evaluateLine(&out, sess, "1 / 0;")
	assert.Contains(t, out.String(), "DivisionByZero")
}

func TestEvaluateLine_SuppressesUnitDisplay(t *testing.T) {
	var out strings.Builder
	r := NewRepl("", "test", "", "", "", "")
	sess := session.New(&out)

	r.evaluateLine(&out, sess, "var x = 1;")
	assert.Equal(t, "", out.String())
}

func TestPrintBannerInfo_IncludesVersionAndBanner(t *testing.T) {
	var out strings.Builder
	r := NewRepl("SHARK-BANNER", "v0.1.0", "shark", "----", "MIT", "shark>> ")
	r.PrintBannerInfo(&out)
	text := out.String()
	assert.Contains(t, text, "SHARK-BANNER")
	assert.Contains(t, text, "v0.1.0")
}
