package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fwojciec/coursecat"
)

// Run executes the decode command.
func (c *DecodeCmd) Run(deps *Dependencies) error {
	data, err := c.read(deps.Stdin)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", coursecat.ErrorMessage(err))
		return err
	}

	resp, err := parseResponse(data)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", coursecat.ErrorMessage(err))
		return err
	}

	courses, err := deps.Decoder.Decode(resp)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", coursecat.ErrorMessage(err))
		var malformed *coursecat.MalformedInputError
		if errors.As(err, &malformed) && malformed.Err != nil {
			fmt.Fprintf(deps.Stderr, "  %v\n", malformed.Err)
		}
		return err
	}

	return renderCourses(deps.Stdout, courses, c.Format)
}

func (c *DecodeCmd) read(stdin io.Reader) ([]byte, error) {
	if c.File == "-" {
		return io.ReadAll(stdin)
	}
	data, err := os.ReadFile(c.File)
	if os.IsNotExist(err) {
		return nil, coursecat.Errorf(coursecat.ENOTFOUND, "file %q not found", c.File)
	}
	return data, err
}

// parseResponse accepts either a search response object or bare markup.
func parseResponse(data []byte) (*coursecat.SearchResponse, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, coursecat.Errorf(coursecat.EINVALID, "empty response")
	}
	if trimmed[0] != '{' {
		return &coursecat.SearchResponse{HTML: string(data)}, nil
	}

	var resp coursecat.SearchResponse
	if err := json.Unmarshal(trimmed, &resp); err != nil {
		return nil, coursecat.Errorf(coursecat.EINVALID, "invalid response JSON: %v", err)
	}
	return &resp, nil
}
