// ABOUTME: Entry point for the Tung Tung Sahur alarm generator
// ABOUTME: Parses CLI flags, asks for choices and writes the alarm clip
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/harperreed/sahur-alarm/internal/alarm"
	"github.com/harperreed/sahur-alarm/internal/config"
	"github.com/harperreed/sahur-alarm/internal/tts"
	"github.com/harperreed/sahur-alarm/internal/ui"
	"github.com/harperreed/sahur-alarm/internal/version"
	"github.com/harperreed/sahur-alarm/pkg/audio/output"
	"github.com/harperreed/sahur-alarm/pkg/audio/synth"
)

var (
	configPath  = flag.String("config", "", "YAML config file (default: built-in settings)")
	logFile     = flag.String("log-file", "sahur-alarm.log", "Log file path")
	verbose     = flag.Bool("verbose", false, "Also write logs to stdout")
	character   = flag.String("character", "", "Character name (skips the prompt)")
	message     = flag.String("message", "", "Sahur message (skips the prompt)")
	beat        = flag.String("beat", "", "Beat style: fast or slow (skips the prompt)")
	outputPath  = flag.String("output", "", "Output file, .mp3 or .wav (default from config)")
	voiceFile   = flag.String("voice-file", "", "Use a recorded voice file instead of online speech")
	seed        = flag.Uint64("seed", 0, "Random seed for repeatable alarms (0: time based)")
	play        = flag.Bool("play", false, "Play the alarm after saving it")
	noTUI       = flag.Bool("no-tui", false, "Ask questions on plain stdin/stdout")
	metricsFile = flag.String("metrics-file", "", "Write Prometheus metrics to this textfile")
	showVersion = flag.Bool("version", false, "Print version and exit")
)

func main() {
	flag.Parse()

	if *showVersion {
		fmt.Printf("%s %s\n", version.Product, version.Version)
		return
	}

	// Set up logging
	f, err := os.OpenFile(*logFile, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		log.Fatalf("error opening log file: %v", err)
	}
	defer func() { _ = f.Close() }()

	if *verbose {
		log.SetOutput(io.MultiWriter(os.Stdout, f))
	} else {
		log.SetOutput(f)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		if errors.Is(err, ui.ErrCancelled) {
			fmt.Println("Cancelled.")
			return
		}
		log.Printf("Alarm generation failed: %v", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		_ = f.Close()
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	settings, err := config.Load(*configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log.Printf("Starting %s %s", version.Product, version.Version)

	var speech tts.Synthesizer
	if *voiceFile != "" {
		speech = &tts.VoiceFile{Path: *voiceFile}
		log.Printf("Using recorded voice: %s", *voiceFile)
	} else {
		speech = tts.NewGoogleTranslate(settings.TTS.Endpoint, settings.TTS.Language, settings.TTS.GetTimeoutDuration())
	}

	cfg := alarm.Config{Settings: settings, Speech: speech}
	if *seed != 0 {
		cfg.Rand = alarm.NewRand(*seed)
	}

	gen, err := alarm.New(cfg)
	if err != nil {
		return err
	}

	fmt.Println("Welcome to the Tung Tung Tung Sahur Alarm Generator!")
	fmt.Println("Create a funny Sahur wake-up alarm with Free Fire vibes and a catchy jingle.")

	var prompter ui.Prompter = ui.TUIPrompter{}
	if *noTUI {
		prompter = ui.LinePrompter{In: os.Stdin, Out: os.Stdout}
	}

	answers, err := prompter.Ask(ui.Questions(settings.Characters, settings.Drum.DefaultBeat), ui.Answers{
		Character: *character,
		Message:   *message,
		Beat:      *beat,
	})
	if err != nil {
		return err
	}

	char := gen.ResolveCharacter(answers.Character)
	if char.Notice != "" {
		fmt.Println(char.Notice)
	}
	msg := gen.ResolveMessage(answers.Message)
	tempo := gen.ResolveBeat(answers.Beat)
	if tempo.Notice != "" {
		fmt.Println(tempo.Notice)
	}

	res, err := gen.Generate(ctx, alarm.Request{
		Character:  char.Value,
		Message:    msg.Value,
		Beat:       synth.Tempo(tempo.Value),
		OutputPath: *outputPath,
	})
	if *metricsFile != "" {
		if werr := gen.Metrics().WriteTextfile(*metricsFile); werr != nil {
			log.Printf("Failed to write metrics: %v", werr)
		}
	}
	if err != nil {
		return err
	}

	fmt.Printf("Alarm saved as %s\n", res.OutputPath)

	if *play {
		log.Printf("Playing alarm (%dms)", res.Alarm.Milliseconds())
		if err := output.Play(ctx, output.NewOto(), res.Alarm); err != nil {
			log.Printf("Playback failed: %v", err)
			fmt.Fprintf(os.Stderr, "Playback failed: %v\n", err)
		}
	}

	fmt.Println("Upload this to GitHub and share the Sahur jingle with the world!")
	return nil
}
