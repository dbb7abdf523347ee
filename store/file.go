/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */

// Package store persists tournaments: locally as JSON files, and
// optionally archived to Amazon S3.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mikeb26/swisstd/swiss"
)

// SaveFile writes the tournament's record to path as JSON. The write is
// atomic: the file is staged alongside the destination and renamed into
// place.
func SaveFile(path string, t *swiss.Tournament) error {
	data, err := json.MarshalIndent(t.ToRecord(), "", "    ")
	if err != nil {
		return fmt.Errorf("unable to encode tournament: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".swisstd-*.json")
	if err != nil {
		return fmt.Errorf("unable to stage tournament file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("unable to write tournament file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("unable to write tournament file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("unable to replace tournament file: %w", err)
	}

	return nil
}

// LoadFile reads a tournament record from path and reconstructs the
// tournament. Malformed content surfaces as a swiss.DecodeError.
func LoadFile(path string) (*swiss.Tournament, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read tournament file: %w", err)
	}

	return Decode(data)
}

// Decode reconstructs a tournament from raw record JSON.
func Decode(data []byte) (*swiss.Tournament, error) {
	var rec swiss.Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, &swiss.DecodeError{
			Msg: fmt.Sprintf("tournament file is not valid JSON: %v", err),
		}
	}

	return swiss.FromRecord(&rec)
}
