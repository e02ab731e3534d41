// ABOUTME: Alarm generation package
// ABOUTME: Resolves choices, speaks the script, mixes and exports the clip
// Package alarm turns a character, message and beat into a finished alarm.
//
// The Generator resolves user choices, builds the chant script, asks a
// tts.Synthesizer for speech, fetches a drum hit from a DrumSource and
// mixes both with mix.BuildAlarm before exporting the result. Transient
// files (the voice spool and the drum cache) are removed after every run.
//
// Example:
//
//	gen, err := alarm.New(alarm.Config{Settings: cfg, Speech: speech})
//	res, err := gen.Generate(ctx, alarm.Request{
//		Character: "Kelly",
//		Message:   "Rise and shine, it's Sahur time!",
//		Beat:      synth.Fast,
//	})
package alarm
