// SPDX-License-Identifier: MIT

package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock(l *Logger) *Logger {
	l.now = func() time.Time { return time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC) }
	return l
}

func TestParseLevel(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want Level
	}{
		{"quiet", Quiet}, {"Normal", Normal}, {" verbose ", Verbose}, {"DEBUG", Debug},
	} {
		got, err := ParseLevel(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got)
		assert.Equal(t, strings.ToLower(strings.TrimSpace(tc.in)), got.String())
	}

	_, err := ParseLevel("loud")
	require.Error(t, err)
	assert.Equal(t, "level(9)", Level(9).String())
}

func TestLogger_Format(t *testing.T) {
	var buf bytes.Buffer
	l := fixedClock(New("request", &buf, Debug))

	l.Infof("ran %d checkpoints", 3)
	assert.Equal(t, "[2024-05-01 12:30:00.000] [request] [INFO] ran 3 checkpoints\n", buf.String())
}

func TestLogger_LevelFiltering(t *testing.T) {
	cases := map[Level][]string{
		Quiet:   nil,
		Normal:  {"ERROR", "WARN"},
		Verbose: {"ERROR", "WARN", "INFO"},
		Debug:   {"ERROR", "WARN", "INFO", "DEBUG"},
	}
	for lvl, want := range cases {
		var buf bytes.Buffer
		l := New("c", &buf, lvl)
		l.Errorf("e")
		l.Warnf("w")
		l.Infof("i")
		l.Debugf("d")

		lines := strings.FieldsFunc(buf.String(), func(r rune) bool { return r == '\n' })
		require.Len(t, lines, len(want), "level %s", lvl)
		for i, tag := range want {
			assert.Contains(t, lines[i], "["+tag+"]")
		}
	}
}

func TestLogger_WithSharesSink(t *testing.T) {
	var buf bytes.Buffer
	parent := New("cmd", &buf, Verbose)
	child := parent.With("request")

	parent.Infof("a")
	child.Infof("b")
	assert.Contains(t, buf.String(), "[cmd] [INFO] a")
	assert.Contains(t, buf.String(), "[request] [INFO] b")
	assert.Equal(t, Verbose, child.Level())
}

func TestLogger_NilIsSilent(t *testing.T) {
	var l *Logger
	assert.NotPanics(t, func() {
		l.Errorf("x")
		l.Debugf("x")
		assert.Nil(t, l.With("y"))
		assert.False(t, l.Enabled(Quiet))
		assert.Equal(t, Quiet, l.Level())
		assert.NoError(t, l.Close())
	})
}

func TestSessionID_Stable(t *testing.T) {
	id := SessionID()
	_, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.Equal(t, id, SessionID())
}

func TestNewFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")

	l, err := NewFile(dir, "cmd", Normal)
	require.NoError(t, err)
	l.Warnf("disk %s", "ok")
	require.NoError(t, l.Close())
	require.NoError(t, l.Close())

	data, err := os.ReadFile(filepath.Join(dir, SessionID()+"-seqmem.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "[cmd] [WARN] disk ok")
}
