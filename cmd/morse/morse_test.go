package morse

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gigurra/morse/cmd/morse/codec"
)

func defaultParams(text ...string) *Params {
	return &Params{
		Text:      text,
		Device:    "bell",
		Unit:      100,
		Frequency: 440,
		Repeat:    1,
		Short:     ".",
		Long:      "-",
	}
}

type recordingEmitter struct {
	tones []time.Duration
	freqs []int
}

func (r *recordingEmitter) EmitTone(_ context.Context, frequency int, duration time.Duration) error {
	r.tones = append(r.tones, duration)
	r.freqs = append(r.freqs, frequency)
	return nil
}

func (r *recordingEmitter) Pause(context.Context, time.Duration) error { return nil }

func useEmitter(t *testing.T, e codec.ToneEmitter) *string {
	t.Helper()
	var device string
	orig := newEmitter
	newEmitter = func(name string, _ io.Writer) (codec.ToneEmitter, error) {
		device = name
		return e, nil
	}
	t.Cleanup(func() { newEmitter = orig })
	return &device
}

func run(params *Params, stdin string) (int, string, string) {
	var stdout, stderr bytes.Buffer
	code := Run(context.Background(), params, strings.NewReader(stdin), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRun_Encode(t *testing.T) {
	code, stdout, stderr := run(defaultParams("SOS"), "")
	if code != 0 {
		t.Fatalf("exit code %d, stderr: %s", code, stderr)
	}
	if stdout != "... --- ...\n" {
		t.Errorf("stdout = %q, want %q", stdout, "... --- ...\n")
	}
}

func TestRun_EncodeJoinsArgs(t *testing.T) {
	code, stdout, _ := run(defaultParams("hello", "world"), "")
	if code != 0 {
		t.Fatalf("exit code %d", code)
	}
	want := ".... . .-.. .-.. ---   .-- --- .-. .-.. -..\n"
	if stdout != want {
		t.Errorf("stdout = %q, want %q", stdout, want)
	}
}

func TestRun_Decode(t *testing.T) {
	params := defaultParams("... --- ...")
	params.Decode = true
	code, stdout, stderr := run(params, "")
	if code != 0 {
		t.Fatalf("exit code %d, stderr: %s", code, stderr)
	}
	if stdout != "SOS\n" {
		t.Errorf("stdout = %q, want %q", stdout, "SOS\n")
	}
}

func TestRun_CustomGlyphs(t *testing.T) {
	params := defaultParams("SOS")
	params.Short, params.Long, params.Sep = "0", "1", "/"
	_, stdout, _ := run(params, "")
	if stdout != "000/111/000\n" {
		t.Errorf("stdout = %q, want %q", stdout, "000/111/000\n")
	}
}

func TestRun_Stdin(t *testing.T) {
	code, stdout, _ := run(defaultParams(), "e\n\nt\n")
	if code != 0 {
		t.Fatalf("exit code %d", code)
	}
	if stdout != ".\n-\n" {
		t.Errorf("stdout = %q, want %q", stdout, ".\n-\n")
	}
}

func TestRun_InvalidCharacter(t *testing.T) {
	code, stdout, stderr := run(defaultParams("SOS!"), "")
	if code != 1 {
		t.Errorf("exit code %d, want 1", code)
	}
	if stdout != "" {
		t.Errorf("stdout = %q, want nothing", stdout)
	}
	if !strings.Contains(stderr, "invalid character") {
		t.Errorf("stderr = %q", stderr)
	}
}

func TestRun_GlyphCollision(t *testing.T) {
	params := defaultParams("A")
	params.Long = "."
	code, _, stderr := run(params, "")
	if code != 1 || !strings.Contains(stderr, "must all differ") {
		t.Errorf("exit code %d, stderr %q", code, stderr)
	}
}

func TestRun_MultiCharacterGlyph(t *testing.T) {
	params := defaultParams("A")
	params.Short = "dit"
	code, _, stderr := run(params, "")
	if code != 1 || !strings.Contains(stderr, "--short must be a single character") {
		t.Errorf("exit code %d, stderr %q", code, stderr)
	}
}

func TestRun_Table(t *testing.T) {
	params := defaultParams()
	params.Table = true
	code, stdout, _ := run(params, "")
	if code != 0 {
		t.Fatalf("exit code %d", code)
	}
	for _, want := range []string{"Char", "-..-", "010101", "×"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("table output missing %q", want)
		}
	}
}

func TestRun_Beep(t *testing.T) {
	e := &recordingEmitter{}
	device := useEmitter(t, e)

	params := defaultParams("SOS")
	params.Beep = true
	params.Frequency = 700
	params.Unit = 1
	params.Device = "system"
	code, _, stderr := run(params, "")
	if code != 0 {
		t.Fatalf("exit code %d, stderr: %s", code, stderr)
	}
	if *device != "system" {
		t.Errorf("device = %q, want %q", *device, "system")
	}
	if len(e.tones) != 9 {
		t.Fatalf("played %d tones, want 9", len(e.tones))
	}
	if e.freqs[0] != 700 {
		t.Errorf("frequency = %d, want 700", e.freqs[0])
	}
	if e.tones[3] != 3*time.Millisecond {
		t.Errorf("long tone = %v, want 3ms", e.tones[3])
	}
}

func TestRun_BeepWithSignalsAndWPM(t *testing.T) {
	e := &recordingEmitter{}
	useEmitter(t, e)

	params := defaultParams("E")
	params.Beep = true
	params.WPM = 20
	params.Start = true
	params.End = true
	params.Repeat = 2
	if code, _, stderr := run(params, ""); code != 0 {
		t.Fatalf("exit code %d, stderr: %s", code, stderr)
	}
	// "= E E +"
	if len(e.tones) != 5+1+1+5 {
		t.Fatalf("played %d tones, want 12", len(e.tones))
	}
	if e.tones[0] != 180*time.Millisecond {
		t.Errorf("first tone = %v, want 180ms at 20 wpm", e.tones[0])
	}
}

func TestRun_InvalidRepeat(t *testing.T) {
	useEmitter(t, &recordingEmitter{})
	params := defaultParams("E")
	params.Beep = true
	params.Repeat = 0
	code, stdout, stderr := run(params, "")
	if code != 1 || !strings.Contains(stderr, "repeat") {
		t.Errorf("exit code %d, stderr %q", code, stderr)
	}
	if stdout != ".\n" {
		t.Errorf("stdout = %q", stdout)
	}
}

func TestRun_OutputWav(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sos.wav")
	params := defaultParams("SOS")
	params.Output = path
	params.Unit = 10

	code, stdout, stderr := run(params, "")
	if code != 0 {
		t.Fatalf("exit code %d, stderr: %s", code, stderr)
	}
	if stdout != "... --- ...\n" {
		t.Errorf("stdout = %q", stdout)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("wav not written: %v", err)
	}
	if info.Size() <= 44 {
		t.Errorf("wav is only %d bytes", info.Size())
	}
}

func TestRun_Clip(t *testing.T) {
	var copied string
	orig := clipboardWriteAll
	clipboardWriteAll = func(s string) error {
		copied = s
		return nil
	}
	defer func() { clipboardWriteAll = orig }()

	params := defaultParams("SOS")
	params.Clip = true
	if code, _, stderr := run(params, ""); code != 0 {
		t.Fatalf("exit code %d, stderr: %s", code, stderr)
	}
	if copied != "... --- ..." {
		t.Errorf("copied %q, want %q", copied, "... --- ...")
	}
}

func TestUnits(t *testing.T) {
	tests := []struct {
		pattern  codec.Pattern
		expected int
	}{
		{"0", 1},
		{"1", 3},
		{"01", 5},
		{"000", 5},
		{"111", 11},
	}
	for _, tt := range tests {
		if got := units(tt.pattern); got != tt.expected {
			t.Errorf("units(%q) = %d, want %d", tt.pattern, got, tt.expected)
		}
	}
}
