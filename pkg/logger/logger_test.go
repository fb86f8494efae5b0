package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/tdewolff/test"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestAnsiToHTML(t *testing.T) {
	var tests = []struct {
		in  string
		out string
	}{
		{"", "<pre></pre>"},
		{"plain", "<pre>plain</pre>"},
		{"\033[32mINFO\033[0m done", `<pre><span style="color: green;">INFO</span> done</pre>`},
		{"\033[31mERROR\033[0m a<b", `<pre><span style="color: red;">ERROR</span> a&lt;b</pre>`},
		{"\033[36mx", `<pre><span style="color: cyan;">x</span></pre>`},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			test.String(t, ansiToHTML(tt.in), tt.out)
		})
	}
}

func TestLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, WithLevel(zapcore.InfoLevel), WithoutColor())
	log.Debug("hidden")
	log.Info("shown", zap.Int("sites", 3))
	log.Warn("warned")

	out := buf.String()
	test.That(t, !strings.Contains(out, "hidden"))
	test.That(t, strings.Contains(out, "shown"))
	test.That(t, strings.Contains(out, "sites"))
	test.That(t, strings.Contains(out, "WARN"))
}

func TestBuffered(t *testing.T) {
	log := NewBuffered(WithLevel(zapcore.DebugLevel))
	log.Debug("first")
	log.UpdateLogs()
	test.T(t, len(log.Logs), 1)
	test.That(t, strings.Contains(log.Logs[0], "first"))
	test.That(t, strings.Contains(log.Logs[0], `<span style="color: cyan;">`))

	log.ClearLogs()
	test.T(t, len(log.Logs), 0)
	log.UpdateLogs()
	test.String(t, log.Logs[0], "<pre></pre>")
}

func TestNop(t *testing.T) {
	log := Nop()
	log.Info("ignored")
	log.UpdateLogs()
	test.T(t, len(log.Logs), 0)
}
