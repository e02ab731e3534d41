// ABOUTME: Text-to-speech package
// ABOUTME: Speech sources and decoding to the mixing format
// Package tts produces the spoken part of the alarm.
//
// GoogleTranslate fetches MP3 speech over HTTP, VoiceFile replays a
// recording, and Decode turns either into a mono 44.1kHz buffer.
package tts
