package narrator

import (
	"context"
	"encoding/binary"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"google.golang.org/genai"

	"github.com/nguyentantai21042004/video-digest/internal/artifact"
	"github.com/nguyentantai21042004/video-digest/internal/gemini"
)

const (
	defaultSampleRate = 24000
	pcmBitDepth       = 16
	pcmChannels       = 1
	wavFormatPCM      = 1
)

type geminiSpeaker struct {
	models   gemini.ContentGenerator
	model    string
	voice    string
	maxChunk int
}

// NewGeminiSpeaker narrates with a Gemini text-to-speech model. Long text is
// sent in chunks of at most maxChunk characters and stitched into one WAV.
func NewGeminiSpeaker(models gemini.ContentGenerator, model, voice string, maxChunk int) Speaker {
	if maxChunk <= 0 {
		maxChunk = 4000
	}
	return &geminiSpeaker{
		models:   models,
		model:    model,
		voice:    voice,
		maxChunk: maxChunk,
	}
}

func (s *geminiSpeaker) Extension() string { return "wav" }

func (s *geminiSpeaker) Speak(ctx context.Context, text, outputPath string) error {
	config := &genai.GenerateContentConfig{
		ResponseModalities: []string{"AUDIO"},
		SpeechConfig: &genai.SpeechConfig{
			VoiceConfig: &genai.VoiceConfig{
				PrebuiltVoiceConfig: &genai.PrebuiltVoiceConfig{VoiceName: s.voice},
			},
		},
	}

	var (
		pcm        []byte
		sampleRate int
	)
	for i, chunk := range chunkText(text, s.maxChunk) {
		result, err := s.models.GenerateContent(ctx, s.model, genai.Text(chunk), config)
		if err != nil {
			return fmt.Errorf("generate speech chunk %d: %w", i+1, err)
		}
		data, mimeType, err := gemini.ResponseAudio(result)
		if err != nil {
			return fmt.Errorf("speech chunk %d: %w", i+1, err)
		}
		rate := sampleRateFromMIME(mimeType)
		if sampleRate == 0 {
			sampleRate = rate
		} else if rate != sampleRate {
			return fmt.Errorf("speech chunk %d: sample rate %d differs from %d", i+1, rate, sampleRate)
		}
		pcm = append(pcm, data...)
	}
	if len(pcm) == 0 {
		return fmt.Errorf("no text to speak")
	}

	return artifact.WriteFile(outputPath, func(w io.WriteSeeker) error {
		return writeWAV(w, pcm, sampleRate)
	})
}

// writeWAV wraps little-endian 16-bit mono PCM in a WAV container.
func writeWAV(w io.WriteSeeker, pcm []byte, sampleRate int) error {
	samples := make([]int, len(pcm)/2)
	for i := range samples {
		samples[i] = int(int16(binary.LittleEndian.Uint16(pcm[2*i:])))
	}

	enc := wav.NewEncoder(w, sampleRate, pcmBitDepth, pcmChannels, wavFormatPCM)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: pcmChannels, SampleRate: sampleRate},
		Data:           samples,
		SourceBitDepth: pcmBitDepth,
	}
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("encode wav: %w", err)
	}
	return enc.Close()
}

// sampleRateFromMIME reads the rate parameter of e.g.
// "audio/L16;codec=pcm;rate=24000".
func sampleRateFromMIME(mimeType string) int {
	for _, param := range strings.Split(mimeType, ";") {
		key, value, ok := strings.Cut(strings.TrimSpace(param), "=")
		if !ok || !strings.EqualFold(key, "rate") {
			continue
		}
		if rate, err := strconv.Atoi(value); err == nil && rate > 0 {
			return rate
		}
	}
	return defaultSampleRate
}

// chunkText splits text at whitespace into pieces of at most max characters
// (runes). A single word longer than max becomes its own chunk.
func chunkText(text string, max int) []string {
	var (
		chunks []string
		b      strings.Builder
		size   int
	)
	for _, word := range strings.Fields(text) {
		n := utf8.RuneCountInString(word)
		if size > 0 && size+1+n > max {
			chunks = append(chunks, b.String())
			b.Reset()
			size = 0
		}
		if size > 0 {
			b.WriteByte(' ')
			size++
		}
		b.WriteString(word)
		size += n
	}
	if b.Len() > 0 {
		chunks = append(chunks, b.String())
	}
	return chunks
}
