package morse

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/atotto/clipboard"
	"github.com/gigurra/morse/cmd/common"
	"github.com/gigurra/morse/cmd/morse/audio"
	"github.com/gigurra/morse/cmd/morse/codec"
	"github.com/spf13/cobra"
)

var (
	clipboardWriteAll = clipboard.WriteAll
	newEmitter        = audio.New
)

type Params struct {
	Text      []string `pos:"true" optional:"true" help:"Text to encode/decode. If none provided, reads from stdin."`
	Decode    bool     `short:"d" help:"Decode morse code to text." default:"false"`
	Beep      bool     `short:"b" help:"Play the message as audio after printing it." default:"false"`
	Output    string   `short:"o" optional:"true" help:"Write the audio to this WAV file instead of playing it."`
	Device    string   `optional:"true" help:"Audio device: speaker, system or bell." default:"speaker"`
	WPM       int      `short:"w" optional:"true" help:"Words per minute (PARIS timing). Overrides --unit when set." default:"0"`
	Unit      int      `short:"u" optional:"true" help:"Duration of one short pulse in milliseconds." default:"100"`
	Frequency int      `short:"f" optional:"true" help:"Tone frequency in Hz (37-32767)." default:"440"`
	Repeat    int      `short:"r" optional:"true" help:"Number of times the message is played." default:"1"`
	Start     bool     `optional:"true" help:"Send the start-of-transmission signal (=) first."`
	End       bool     `optional:"true" help:"Send the end-of-transmission signal (+) last."`
	Short     string   `optional:"true" help:"Glyph for short pulses." default:"."`
	Long      string   `optional:"true" help:"Glyph for long pulses." default:"-"`
	Sep       string   `optional:"true" help:"Glyph between characters (default: space)."`
	Table     bool     `short:"t" optional:"true" help:"Print the symbol table and exit."`
	Clip      bool     `short:"c" optional:"true" help:"Copy the output to the clipboard."`
	Verbose   bool     `short:"v" optional:"true" help:"Log playback details to stderr."`
}

func Cmd() *cobra.Command {
	return boa.CmdT[Params]{
		Use:   "morse",
		Short: "Encode/decode Morse code",
		Long: `Convert text to Morse code or decode Morse code back to text.

Supported characters: A-Z 0-9 space and . , ? _ + - × ^ / @ ( ) " ' =
Use -b to play the result, or -o file.wav to record it.`,
		ParamEnrich: common.DefaultParamEnricher(),
		RunFunc: func(params *Params, cmd *cobra.Command, args []string) {
			common.SetupLogging(params.Verbose)
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			exitCode := Run(ctx, params, os.Stdin, os.Stdout, os.Stderr)
			if exitCode != 0 {
				os.Exit(exitCode)
			}
		},
	}.ToCobra()
}

func Run(ctx context.Context, params *Params, stdin io.Reader, stdout, stderr io.Writer) int {
	if ctx == nil {
		ctx = context.Background()
	}
	if params.Table {
		printTable(stdout)
		return 0
	}

	opts, err := options(params)
	if err != nil {
		fmt.Fprintf(stderr, "morse: %v\n", err)
		return 1
	}

	var lines []string
	if len(params.Text) > 0 {
		lines = []string{strings.Join(params.Text, " ")}
	} else {
		scanner := bufio.NewScanner(stdin)
		for scanner.Scan() {
			lines = append(lines, scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			fmt.Fprintf(stderr, "morse: error reading: %v\n", err)
			return 1
		}
	}

	var messages []*codec.Message
	var output []string
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		m, err := convert(line, params.Decode, opts)
		if err != nil {
			fmt.Fprintf(stderr, "morse: %v\n", err)
			return 1
		}
		messages = append(messages, m)
		if params.Decode {
			output = append(output, m.Text())
		} else {
			output = append(output, m.Encoded())
		}
	}

	for _, line := range output {
		fmt.Fprintln(stdout, line)
	}

	if params.Clip && len(output) > 0 {
		if err := clipboardWriteAll(strings.Join(output, "\n")); err != nil {
			fmt.Fprintf(stderr, "morse: copying to clipboard: %v\n", err)
			return 1
		}
	}

	if err := sound(ctx, params, messages, stderr); err != nil {
		fmt.Fprintf(stderr, "morse: %v\n", err)
		return 1
	}
	return 0
}

func convert(line string, decode bool, opts codec.Options) (*codec.Message, error) {
	if decode {
		return codec.Parse(line, opts)
	}
	return codec.Encode(line, opts)
}

func options(params *Params) (codec.Options, error) {
	opts := codec.Options{
		Frequency:    params.Frequency,
		UnitDuration: params.Unit,
	}
	if params.WPM > 0 {
		opts.UnitDuration = codec.UnitFromWPM(params.WPM)
	}

	var err error
	if opts.Short, err = glyph("short", params.Short); err != nil {
		return opts, err
	}
	if opts.Long, err = glyph("long", params.Long); err != nil {
		return opts, err
	}
	if opts.Separator, err = glyph("sep", params.Sep); err != nil {
		return opts, err
	}
	return opts, nil
}

// glyph returns the single rune in s, or 0 (the default) when s is empty.
func glyph(name, s string) (rune, error) {
	r := []rune(s)
	switch len(r) {
	case 0:
		return 0, nil
	case 1:
		return r[0], nil
	default:
		return 0, fmt.Errorf("--%s must be a single character, got %q", name, s)
	}
}

func sound(ctx context.Context, params *Params, messages []*codec.Message, stderr io.Writer) error {
	if len(messages) == 0 || (!params.Beep && params.Output == "") {
		return nil
	}

	playOpts := codec.PlayOptions{
		Repeat:   params.Repeat,
		Leading:  params.Start,
		Trailing: params.End,
	}

	if params.Output != "" {
		rec := audio.NewRecorder()
		player := codec.NewPlayer(rec, slog.Default())
		for _, m := range messages {
			if err := player.Play(ctx, m, playOpts); err != nil {
				return err
			}
		}
		if err := rec.Save(params.Output); err != nil {
			return err
		}
		slog.Debug("wrote wav", "file", params.Output, "duration", rec.Duration())
		return nil
	}

	emitter, err := newEmitter(params.Device, stderr)
	if err != nil {
		return err
	}
	player := codec.NewPlayer(emitter, slog.Default())
	for _, m := range messages {
		if err := player.Play(ctx, m, playOpts); err != nil {
			return err
		}
	}
	return nil
}
