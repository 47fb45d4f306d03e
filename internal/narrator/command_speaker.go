package narrator

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nguyentantai21042004/video-digest/pkg/executor"
)

const (
	outputPlaceholder = "{output}"
	textPlaceholder   = "{text}"
)

type commandSpeaker struct {
	executor  executor.Executor
	command   string
	args      []string
	extension string
}

// NewCommandSpeaker narrates by running an external TTS binary, for example
// espeak-ng -w {output} --stdin. "{output}" in args is replaced by the target
// file; "{text}" passes the text as an argument, otherwise it goes to stdin.
func NewCommandSpeaker(exec executor.Executor, command string, args []string, extension string) Speaker {
	if extension == "" {
		extension = "wav"
	}
	return &commandSpeaker{
		executor:  exec,
		command:   command,
		args:      args,
		extension: strings.TrimPrefix(extension, "."),
	}
}

func (s *commandSpeaker) Extension() string { return s.extension }

func (s *commandSpeaker) Speak(ctx context.Context, text, outputPath string) error {
	// Isolated temp dir so the binary sees the real file name and extension.
	tempDir, err := os.MkdirTemp(filepath.Dir(outputPath), ".tts-*")
	if err != nil {
		return fmt.Errorf("create temp dir: %w", err)
	}
	defer os.RemoveAll(tempDir)

	tempOutput := filepath.Join(tempDir, filepath.Base(outputPath))

	args := make([]string, len(s.args))
	textAsArg := false
	for i, a := range s.args {
		a = strings.ReplaceAll(a, outputPlaceholder, tempOutput)
		if strings.Contains(a, textPlaceholder) {
			textAsArg = true
			a = strings.ReplaceAll(a, textPlaceholder, text)
		}
		args[i] = a
	}

	if textAsArg {
		_, err = s.executor.Execute(ctx, s.command, args...)
	} else {
		_, err = s.executor.ExecuteWithInput(ctx, strings.NewReader(text), s.command, args...)
	}
	if err != nil {
		return fmt.Errorf("run %s: %w", s.command, err)
	}

	if _, err := os.Stat(tempOutput); err != nil {
		return fmt.Errorf("%s produced no output: %w", s.command, err)
	}
	if err := os.Rename(tempOutput, outputPath); err != nil {
		return fmt.Errorf("move audio into place: %w", err)
	}
	return nil
}
