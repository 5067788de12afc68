package hdl_test

import (
	"testing"

	"github.com/db47h/hacksim/internal/hdl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLexer(t *testing.T) {
	l := hdl.NewLexer(" a_1[12..3] = x, 42 ?")
	want := []hdl.Type{
		hdl.Ident, hdl.BracketOpen, hdl.Int, hdl.Range, hdl.Int, hdl.BracketClose,
		hdl.Equal, hdl.Ident, hdl.Comma, hdl.Int, hdl.Raw, hdl.EOF, hdl.EOF,
	}
	for i, w := range want {
		it := l.Lex()
		assert.Equal(t, w, it.Type, "token %d: %v", i, it)
	}
}

func TestParseIO(t *testing.T) {
	ds, err := hdl.ParseIO("in[16], load ,address[3]")
	require.NoError(t, err)
	assert.Equal(t, []hdl.Decl{
		{Name: "in", Width: 16, Pos: 0},
		{Name: "load", Width: 1, Pos: 8},
		{Name: "address", Width: 3, Pos: 14},
	}, ds)

	ds, err = hdl.ParseIO("  ")
	require.NoError(t, err)
	assert.Empty(t, ds)

	for _, s := range []string{"a,", "a b", "a[", "a[]", "a[2", "3", "a[x]"} {
		_, err := hdl.ParseIO(s)
		assert.Error(t, err, s)
	}
}

func TestParseConnections(t *testing.T) {
	as, err := hdl.ParseConnections("a=b, out[3]=x[0..2], in[7..0]=12")
	require.NoError(t, err)
	require.Len(t, as, 3)

	assert.Equal(t, hdl.Pin{Name: "a", Pos: 0}, as[0].LHS)
	assert.Equal(t, hdl.Pin{Name: "b", Pos: 2}, as[0].RHS)
	assert.Equal(t, hdl.PinIndex{Pin: hdl.Pin{Name: "out", Pos: 5}, Index: 3}, as[1].LHS)
	assert.Equal(t, hdl.PinRange{Pin: hdl.Pin{Name: "x", Pos: 12}, Start: 0, End: 2}, as[1].RHS)
	// reversed ranges are normalized
	assert.Equal(t, hdl.PinRange{Pin: hdl.Pin{Name: "in", Pos: 21}, Start: 0, End: 7}, as[2].LHS)
	assert.Equal(t, hdl.Literal{Value: 12, Pos: 30}, as[2].RHS)

	as, err = hdl.ParseConnections("")
	require.NoError(t, err)
	assert.Empty(t, as)

	for _, s := range []string{"a", "a=", "a=b,", "a=b=c", "1=a", "a[1..x]=b", "a=b[1", ",a=b"} {
		_, err := hdl.ParseConnections(s)
		assert.Error(t, err, s)
	}
}

func TestParsePin(t *testing.T) {
	td := []struct {
		in  string
		out interface{}
	}{
		{"x", hdl.Pin{Name: "x"}},
		{" x[4]", hdl.PinIndex{Pin: hdl.Pin{Name: "x", Pos: 1}, Index: 4}},
		{"x[4..5] ", hdl.PinRange{Pin: hdl.Pin{Name: "x"}, Start: 4, End: 5}},
	}
	for _, d := range td {
		v, err := hdl.ParsePin(d.in)
		require.NoError(t, err, d.in)
		assert.Equal(t, d.out, v, d.in)
	}
	for _, s := range []string{"", "x=y", "x, y", "x[", "4"} {
		_, err := hdl.ParsePin(s)
		assert.Error(t, err, s)
	}
}
