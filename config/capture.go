package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// CaptureRequest is sent to the capture-namespace helper on its stdin.
type CaptureRequest struct {
	AnchorDir     string `json:"anchor_dir"`
	AnchorPath    string `json:"anchor_path"`
	AnchorOptions string `json:"anchor_options"`
	NamespacePath string `json:"namespace_path"`
}

func NewCaptureRequest(paths Paths, namespacePath string) CaptureRequest {
	return CaptureRequest{
		AnchorDir:     paths.AnchorDir,
		AnchorPath:    paths.AnchorPath(),
		AnchorOptions: paths.AnchorOptions,
		NamespacePath: namespacePath,
	}
}

func UnmarshalCaptureRequest(input io.Reader) (CaptureRequest, error) {
	r := CaptureRequest{}

	err := json.NewDecoder(input).Decode(&r)
	if err != nil {
		return r, fmt.Errorf("json decode: %s", err)
	}

	if r.AnchorDir == "" || r.AnchorPath == "" || r.NamespacePath == "" {
		return r, errors.New("incomplete capture request")
	}

	return r, nil
}

func (r CaptureRequest) Marshal(output io.Writer) error {
	err := json.NewEncoder(output).Encode(&r)
	if err != nil {
		return fmt.Errorf("json encode: %s", err) // not tested
	}

	return nil
}
