package api

import (
	"fmt"
	"log"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/gogo/protobuf/proto"
	"github.com/google/uuid"
)

// MarshalSnapshot encodes a snapshot in protobuf wire format.
func MarshalSnapshot(s *Snapshot) ([]byte, error) {
	data, err := proto.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	return data, nil
}

// UnmarshalSnapshot decodes and validates a snapshot. A snapshot recorded without a game id is
// given a fresh one, since every decode starts a new game instance.
func UnmarshalSnapshot(data []byte) (*Snapshot, error) {
	s := &Snapshot{}
	if err := proto.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	if s.GameId == "" {
		s.GameId = uuid.NewString()
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// LoadSnapshot reads a recorded snapshot from disk.
func LoadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	s, err := UnmarshalSnapshot(data)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", path, err)
	}
	log.Printf("loaded snapshot %v: %v (%s)", path, s, humanize.Bytes(uint64(len(data))))
	return s, nil
}

// SaveSnapshot records a snapshot to disk.
func SaveSnapshot(path string, s *Snapshot) error {
	data, err := MarshalSnapshot(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
