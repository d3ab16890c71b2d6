// Command replay turns a scripted round into its deterministic tape.
// It reads a RoundSpec as JSON from a file (or stdin with "-") and
// prints the tape, or the ReplayError, as JSON.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"blackjack-lite/replay"
)

type response struct {
	OK    bool                `json:"ok"`
	Tape  *replay.RoundTape   `json:"tape,omitempty"`
	Error *replay.ReplayError `json:"error,omitempty"`
}

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "usage: %s <spec.json | ->\n", os.Args[0])
		os.Exit(2)
	}

	raw, err := readSpec(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "read spec: %v\n", err)
		os.Exit(1)
	}

	resp := run(raw)
	out, _ := json.MarshalIndent(resp, "", "  ")
	fmt.Println(string(out))
	if !resp.OK {
		os.Exit(1)
	}
}

func readSpec(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func run(raw []byte) response {
	var spec replay.RoundSpec
	if err := json.Unmarshal(raw, &spec); err != nil {
		return response{
			Error: &replay.ReplayError{StepIndex: -1, Reason: "invalid_json", Message: err.Error()},
		}
	}

	tape, err := replay.GenerateRoundTape(spec)
	if err != nil {
		var replayErr *replay.ReplayError
		if errors.As(err, &replayErr) {
			return response{Error: replayErr}
		}
		return response{
			Error: &replay.ReplayError{StepIndex: -1, Reason: "replay_generation_failed", Message: err.Error()},
		}
	}
	return response{OK: true, Tape: tape}
}
