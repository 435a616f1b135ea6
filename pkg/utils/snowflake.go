package utils

import (
	"errors"
	"sync"
	"time"
)

const (
	epoch             = int64(1704067200000) // 2024-01-01 UTC, in milliseconds
	datacenterIDBits  = uint(5)
	workerIDBits      = uint(5)
	sequenceBits      = uint(12)
	maxDatacenterID   = int64(-1 ^ (-1 << datacenterIDBits))
	maxWorkerID       = int64(-1 ^ (-1 << workerIDBits))
	maxSequence       = int64(-1 ^ (-1 << sequenceBits))
	timestampShift    = sequenceBits + workerIDBits + datacenterIDBits
	datacenterIDShift = sequenceBits + workerIDBits
	workerIDShift     = sequenceBits
)

// Snowflake issues time-ordered 63-bit ids. Ids from one generator are
// strictly increasing.
type Snowflake struct {
	mutex        sync.Mutex
	lastTime     int64
	workerID     int64
	datacenterID int64
	sequence     int64
}

func NewSnowflake(workerID, datacenterID int64) (*Snowflake, error) {
	if workerID < 0 || workerID > maxWorkerID {
		return nil, errors.New("worker ID out of range")
	}
	if datacenterID < 0 || datacenterID > maxDatacenterID {
		return nil, errors.New("datacenter ID out of range")
	}
	return &Snowflake{
		workerID:     workerID,
		datacenterID: datacenterID,
	}, nil
}

func (s *Snowflake) GenerateID() int64 {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	now := time.Now().UnixMilli()
	if now < s.lastTime {
		// clock moved backwards
		time.Sleep(time.Duration(s.lastTime-now) * time.Millisecond)
		now = time.Now().UnixMilli()
	}

	if now == s.lastTime {
		s.sequence = (s.sequence + 1) & maxSequence
		if s.sequence == 0 {
			for now <= s.lastTime {
				now = time.Now().UnixMilli()
			}
		}
	} else {
		s.sequence = 0
	}

	s.lastTime = now
	return ((now - epoch) << timestampShift) |
		(s.datacenterID << datacenterIDShift) |
		(s.workerID << workerIDShift) |
		s.sequence
}

var (
	globalSnowflake *Snowflake
	snowflakeOnce   sync.Once
)

// InitSnowflake configures the process-wide generator. It must run before
// the first GenerateID call to take effect.
func InitSnowflake(workerID, datacenterID int64) (err error) {
	snowflakeOnce.Do(func() {
		globalSnowflake, err = NewSnowflake(workerID, datacenterID)
	})
	return err
}

// GenerateID returns the next id of the process-wide generator.
func GenerateID() int64 {
	snowflakeOnce.Do(func() {
		globalSnowflake, _ = NewSnowflake(1, 1)
	})
	return globalSnowflake.GenerateID()
}
