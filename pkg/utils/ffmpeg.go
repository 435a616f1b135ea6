package utils

import (
	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
	ffmpeg "github.com/u2takey/ffmpeg-go"
)

// ProbeDuration reads the container duration of a media file in seconds.
func ProbeDuration(path string) (float64, error) {
	out, err := ffmpeg.Probe(path)
	if err != nil {
		return 0, errors.WithMessage(err, "Failed to probe media")
	}
	duration := gjson.Get(out, "format.duration")
	if !duration.Exists() {
		return 0, errors.New("probe output has no duration")
	}
	return duration.Float(), nil
}
